package tj

import (
	"os"

	"github.com/ukaji3/tj-go/pkg/tj/graph"
	"golang.org/x/term"
)

// TerminalColumns returns the width of the terminal attached to stdout, or
// 80 when stdout is not a terminal.
func TerminalColumns() int {
	return columnsOf(int(os.Stdout.Fd()))
}

func columnsOf(fd int) int {
	if !term.IsTerminal(fd) {
		return graph.DefaultColumns
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return graph.DefaultColumns
	}
	return w
}
