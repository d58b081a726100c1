package debugger

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// RunCLI drives a line-oriented REPL over d until the user quits or the
// input stream ends.
func RunCLI(d *Debugger, in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(out, "(mips-dbg) ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "quit", "q", "exit":
			return
		case "":
			fmt.Fprint(out, "(mips-dbg) ")
			continue
		}

		d.ExecuteCommand(line)
		fmt.Fprint(out, d.GetOutput())

		if d.LastError != nil {
			fmt.Fprintf(out, "runtime error: %v\n", d.LastError)
			return
		}
		fmt.Fprint(out, "(mips-dbg) ")
	}
}

// RunTUI starts the tview/tcell text user interface over d.
func RunTUI(d *Debugger) error {
	return NewTUI(d).Run()
}
