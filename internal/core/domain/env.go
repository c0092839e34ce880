package domain

import (
	"maps"
	"slices"
	"strings"
)

// EnvVars is a flat process environment keyed by variable name.
//
// Inside a layer passed to ComposeEnv two conventions apply: a key of the
// form "NAME+" (or "NAME+suffix") prepends its value to NAME using the
// target path list separator, and an empty value deletes the variable.
type EnvVars map[string]string

// EnvFromSlice converts "KEY=VALUE" entries, as returned by os.Environ, into EnvVars.
func EnvFromSlice(entries []string) EnvVars {
	env := make(EnvVars, len(entries))
	for _, entry := range entries {
		k, v, ok := strings.Cut(entry, "=")
		if !ok || k == "" {
			continue
		}
		env[k] = v
	}
	return env
}

// Slice returns the environment as sorted "KEY=VALUE" entries.
func (e EnvVars) Slice() []string {
	keys := slices.Sorted(maps.Keys(e))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+e[k])
	}
	return out
}

// Clone returns a copy of the environment.
func (e EnvVars) Clone() EnvVars {
	if e == nil {
		return EnvVars{}
	}
	return maps.Clone(e)
}

// Get returns the value of name. Lookups are case-insensitive on Windows.
func (e EnvVars) Get(osys OS, name string) (string, bool) {
	key, ok := e.lookupKey(osys, name)
	if !ok {
		return "", false
	}
	return e[key], true
}

func (e EnvVars) lookupKey(osys OS, name string) (string, bool) {
	if _, ok := e[name]; ok {
		return name, true
	}
	if !osys.IsWindows() {
		return "", false
	}
	for k := range e {
		if strings.EqualFold(k, name) {
			return k, true
		}
	}
	return "", false
}

// ComposeEnv layers contributions over base and returns a new environment.
// Layers are applied in order; within a layer keys are applied in sorted
// order so the result does not depend on map iteration. base is not modified.
func ComposeEnv(osys OS, base EnvVars, layers ...EnvVars) EnvVars {
	result := base.Clone()
	sep := osys.PathListSeparator()

	for _, layer := range layers {
		for _, key := range slices.Sorted(maps.Keys(layer)) {
			value := layer[key]

			if name, _, isPrepend := strings.Cut(key, "+"); isPrepend {
				if value == "" || name == "" {
					continue
				}
				existing, ok := result.lookupKey(osys, name)
				if !ok {
					result[name] = value
					continue
				}
				if cur := result[existing]; cur != "" {
					result[existing] = value + sep + cur
				} else {
					result[existing] = value
				}
				continue
			}

			existing, ok := result.lookupKey(osys, key)
			if value == "" {
				if ok {
					delete(result, existing)
				}
				continue
			}
			if ok {
				key = existing
			}
			result[key] = value
		}
	}

	return result
}
