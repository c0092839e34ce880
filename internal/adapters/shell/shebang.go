package shell

import "strings"

// shebang is the interpreter directive of a script's first line.
type shebang struct {
	Interpreter string
	Args        []string
	Found       bool
}

// parseShebang extracts the interpreter directive from content.
// "#!/usr/bin/env prog" resolves prog through PATH, including the -S form.
func parseShebang(content string) shebang {
	firstLine, _, _ := strings.Cut(content, "\n")
	firstLine = strings.TrimSpace(strings.TrimSuffix(firstLine, "\r"))

	if !strings.HasPrefix(firstLine, "#!") {
		return shebang{}
	}

	parts := strings.Fields(strings.TrimPrefix(firstLine, "#!"))
	if len(parts) == 0 {
		return shebang{}
	}

	interp, args := parts[0], parts[1:]
	if interp != "/usr/bin/env" && interp != "/bin/env" {
		return shebang{Interpreter: interp, Args: args, Found: true}
	}

	if len(args) > 0 && args[0] == "-S" {
		args = args[1:]
	}
	if len(args) == 0 {
		return shebang{}
	}
	return shebang{Interpreter: args[0], Args: args[1:], Found: true}
}
