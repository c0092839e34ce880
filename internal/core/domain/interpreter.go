package domain

import (
	"path/filepath"
	"strings"
)

// Variant is the kind of Python installation found at a home directory.
type Variant string

const (
	// VariantExecutable is a home that points directly at an interpreter binary.
	VariantExecutable Variant = "executable"
	// VariantVirtualenv is an isolated environment created by virtualenv.
	VariantVirtualenv Variant = "virtualenv"
	// VariantJython is a Jython installation.
	VariantJython Variant = "jython"
	// VariantPyPy is a PyPy installation.
	VariantPyPy Variant = "pypy"
	// VariantIronPython is an IronPython installation.
	VariantIronPython Variant = "ironpython"
	// VariantCPython is a standard CPython installation.
	VariantCPython Variant = "cpython"
)

// Variants returns every variant in resolution priority order.
// The first variant accepting a home wins.
func Variants() []Variant {
	return []Variant{
		VariantExecutable,
		VariantVirtualenv,
		VariantJython,
		VariantPyPy,
		VariantIronPython,
		VariantCPython,
	}
}

type variantRules struct {
	names      []string
	markers    func(osys OS) []string
	homeIsFile bool
	env        func(home string, osys OS, clean bool) EnvVars
}

var rules = map[Variant]variantRules{
	VariantExecutable: {
		homeIsFile: true,
		env: func(home string, _ OS, _ bool) EnvVars {
			return EnvVars{"PATH+": filepath.Dir(home)}
		},
	},
	VariantVirtualenv: {
		names: []string{"python3", "python"},
		markers: func(osys OS) []string {
			if osys.IsWindows() {
				return []string{filepath.Join("Scripts", "activate.bat")}
			}
			return []string{filepath.Join("bin", "activate")}
		},
		env: func(home string, osys OS, _ bool) EnvVars {
			return EnvVars{
				"VIRTUAL_ENV": home,
				"PYTHONHOME":  "",
				"PATH+":       BinDir(home, osys),
			}
		},
	},
	VariantJython: {
		names: []string{"jython"},
		env: func(home string, _ OS, clean bool) EnvVars {
			env := EnvVars{
				"JYTHON_HOME": home,
				"PATH+":       filepath.Join(home, "bin"),
			}
			if clean {
				env["JYTHON_HOME"] = ""
			}
			return env
		},
	},
	VariantPyPy: {
		names: []string{"pypy3", "pypy"},
		env: func(home string, osys OS, _ bool) EnvVars {
			env := EnvVars{
				"PYTHONHOME": "",
				"PATH+":      filepath.Join(home, "bin"),
			}
			if !osys.IsWindows() {
				env["LD_LIBRARY_PATH+"] = filepath.Join(home, "lib")
			}
			return env
		},
	},
	VariantIronPython: {
		names: []string{"ipy", "ipy64"},
		env: func(home string, _ OS, clean bool) EnvVars {
			env := EnvVars{
				"IRONPYTHONPATH": filepath.Join(home, "Lib"),
				"PATH+":          home,
			}
			if clean {
				env["IRONPYTHONPATH"] = ""
			}
			return env
		},
	},
	VariantCPython: {
		names: []string{"python3", "python"},
		env: func(home string, osys OS, clean bool) EnvVars {
			env := EnvVars{"PYTHONHOME": home}
			if clean {
				env["PYTHONHOME"] = ""
			}
			if osys.IsWindows() {
				env["PATH+"] = home + osys.PathListSeparator() + filepath.Join(home, "Scripts")
			} else {
				env["PATH+"] = filepath.Join(home, "bin")
				env["LD_LIBRARY_PATH+"] = filepath.Join(home, "lib")
			}
			return env
		},
	},
}

// HomeIsFile reports whether the variant expects its home to be the interpreter binary itself.
func (v Variant) HomeIsFile() bool {
	return rules[v].homeIsFile
}

// ExecutableNames returns the file names probed to find the variant's interpreter.
func (v Variant) ExecutableNames(osys OS) []string {
	return ExecutableCandidates(osys, rules[v].names...)
}

// Markers returns paths relative to home of which at least one must exist.
// A nil result means the variant has no marker requirement.
func (v Variant) Markers(osys OS) []string {
	if m := rules[v].markers; m != nil {
		return m(osys)
	}
	return nil
}

// ExecutableCandidates expands base names into the file names an executable
// may carry on the given operating system.
func ExecutableCandidates(osys OS, names ...string) []string {
	if !osys.IsWindows() {
		return append([]string(nil), names...)
	}
	out := make([]string, 0, len(names)*2)
	for _, name := range names {
		out = append(out, name+".exe", name+".bat")
	}
	return out
}

// SearchDirs returns the directories probed for executables below home, in order.
func SearchDirs(home string) []string {
	return []string{
		filepath.Join(home, "bin"),
		filepath.Join(home, "Scripts"),
		home,
	}
}

// BinDir returns the directory holding the executables of an environment.
func BinDir(home string, osys OS) string {
	if osys.IsWindows() {
		return filepath.Join(home, "Scripts")
	}
	return filepath.Join(home, "bin")
}

// Interpreter is a resolved Python installation.
type Interpreter struct {
	// Home is the absolute installation home.
	Home string
	// Variant is the installation kind that recognized Home.
	Variant Variant
	// Executable is the interpreter binary.
	Executable string
	// OS is the operating system of the node the installation lives on.
	OS OS
}

// Environment returns the variant's contribution to a process environment.
// A clean contribution deletes the installation home variables instead of setting them.
func (i *Interpreter) Environment(clean bool) EnvVars {
	r, ok := rules[i.Variant]
	if !ok || r.env == nil {
		return EnvVars{}
	}
	return r.env(i.Home, i.OS, clean)
}

// LibDir returns the directory holding the installation shared libraries.
func (i *Interpreter) LibDir() string {
	if i.Variant == VariantExecutable {
		return filepath.Join(filepath.Dir(filepath.Dir(i.Home)), "lib")
	}
	return filepath.Join(i.Home, "lib")
}

// IsSharedLibrary reports whether name looks like a native shared library.
func IsSharedLibrary(name string) bool {
	return strings.HasSuffix(name, ".so") ||
		strings.Contains(name, ".so.") ||
		strings.HasSuffix(name, ".dylib") ||
		strings.HasSuffix(name, ".dll")
}
