package shell

import (
	"strings"

	"go.trai.ch/venvkit/internal/core/domain"
	"go.trai.ch/zerr"
)

const batchExitTrailer = "exit %ERRORLEVEL%"

// Script is a command spec rendered for a specific operating system.
type Script struct {
	// Content is the exact text written to the script file.
	Content string
	// Ext is the script file extension, including the dot.
	Ext string
	// Env is an extra environment layer the script must run with.
	Env domain.EnvVars
}

// Materialize renders spec for osys. workDir is added to PATH for
// translated scripts on POSIX hosts so local tools run without "./".
func Materialize(osys domain.OS, spec domain.CommandSpec, workDir string) Script {
	content := domain.NormalizeLineEndings(spec.Script)

	if spec.Nature == domain.NaturePython {
		return Script{Content: content, Ext: ".py", Env: domain.EnvVars{}}
	}

	env := domain.EnvVars{}
	if spec.Nature == domain.NatureXShell {
		if osys.IsWindows() {
			content = ToBatch(content)
		} else {
			content = ToShell(content)
			env["PATH+"] = workDir
		}
	}

	if !strings.HasPrefix(content, "\n") && !strings.HasPrefix(content, "#!") {
		content = "\n" + content
	}

	if !osys.IsWindows() {
		return Script{Content: content, Ext: ".sh", Env: env}
	}

	if spec.Nature == domain.NatureXShell {
		if !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		content += batchExitTrailer + "\n"
	}
	return Script{Content: content, Ext: ".bat", Env: env}
}

// Invocation returns the argv that runs the script stored at path.
func Invocation(osys domain.OS, spec domain.CommandSpec, script Script, path string) ([]string, error) {
	if spec.Nature == domain.NaturePython {
		if spec.Executable == "" {
			return nil, zerr.With(domain.ErrMissingExecutable, "nature", string(spec.Nature))
		}
		return []string{spec.Executable, path}, nil
	}

	if osys.IsWindows() {
		return []string{"cmd", "/c", "call", path}, nil
	}

	if sb := parseShebang(script.Content); sb.Found {
		argv := append([]string{sb.Interpreter}, sb.Args...)
		return append(argv, path), nil
	}

	flags := "-xe"
	if spec.IgnoreExitCode {
		flags = "-x"
	}
	return []string{"sh", flags, path}, nil
}
