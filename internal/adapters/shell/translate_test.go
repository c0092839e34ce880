package shell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/venvkit/internal/adapters/shell"
)

func TestToShell(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "variable", in: "echo %X%", want: "echo ${X}"},
		{name: "several variables", in: "%A%%B% %C_1%", want: "${A}${B} ${C_1}"},
		{name: "separators", in: `dir a\b\c`, want: "dir a/b/c"},
		{name: "lone percent is kept", in: "echo 100% done", want: "echo 100% done"},
		{name: "non-word token is kept", in: "echo %A-B%", want: "echo %A-B%"},
		{name: "existing shell syntax is kept", in: "echo ${HOME}", want: "echo ${HOME}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shell.ToShell(tt.in))
		})
	}
}

func TestToBatch(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "braced variable", in: "echo ${X}", want: "echo %X%"},
		{name: "bare variable", in: "echo $X_Y", want: "echo %X_Y%"},
		{name: "separators", in: "dir a/b/c", want: `dir a\b\c`},
		{name: "lone dollar is kept", in: "cost $ 5", want: "cost $ 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shell.ToBatch(tt.in))
		})
	}
}

func TestTranslation_TokenProperty(t *testing.T) {
	for _, name := range []string{"X", "PATH", "a_1", "_"} {
		assert.Equal(t, "${"+name+"}", shell.ToShell("%"+name+"%"))
		assert.Equal(t, "%"+name+"%", shell.ToBatch("${"+name+"}"))
		assert.Equal(t, "%"+name+"%", shell.ToBatch("$"+name))
	}
}
