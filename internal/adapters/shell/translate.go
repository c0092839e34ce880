package shell

import (
	"regexp"
	"strings"
)

var (
	// batchVarPattern matches a whole %NAME% reference.
	batchVarPattern = regexp.MustCompile(`%(\w+)%`)
	// shellVarPattern matches a whole $NAME or ${NAME} reference.
	shellVarPattern = regexp.MustCompile(`\$\{?(\w+)\}?`)
)

// ToShell rewrites a batch-flavored script for a POSIX shell: backslashes
// become slashes, then every %NAME% becomes ${NAME}.
func ToShell(script string) string {
	script = strings.ReplaceAll(script, `\`, "/")
	return batchVarPattern.ReplaceAllString(script, "$${${1}}")
}

// ToBatch rewrites a POSIX-flavored script for cmd.exe: slashes become
// backslashes, then every $NAME or ${NAME} becomes %NAME%.
func ToBatch(script string) string {
	script = strings.ReplaceAll(script, "/", `\`)
	return shellVarPattern.ReplaceAllString(script, "%${1}%")
}
