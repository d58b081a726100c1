package debugger

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// TUI is the text user interface over a Debugger: a register pane, an
// output/log pane, and a command input line, laid out with tview.
type TUI struct {
	dbg  *Debugger
	app  *tview.Application
	regs *tview.TextView
	log  *tview.TextView
	cmd  *tview.InputField
}

// NewTUI builds a TUI over dbg without starting the event loop.
func NewTUI(dbg *Debugger) *TUI {
	t := &TUI{
		dbg:  dbg,
		app:  tview.NewApplication(),
		regs: tview.NewTextView().SetDynamicColors(true),
		log:  tview.NewTextView().SetDynamicColors(true).SetScrollable(true),
	}
	t.regs.SetBorder(true).SetTitle("registers")
	t.log.SetBorder(true).SetTitle("output")

	t.cmd = tview.NewInputField().SetLabel("(mips-dbg) ")
	t.cmd.SetDoneFunc(func(key tcell.Key) {
		if key != tcell.KeyEnter {
			return
		}
		line := t.cmd.GetText()
		t.cmd.SetText("")
		if line == "quit" || line == "q" || line == "exit" {
			t.app.Stop()
			return
		}
		dbg.ExecuteCommand(line)
		fmt.Fprint(t.log, dbg.GetOutput())
		t.refreshRegisters()
	})

	return t
}

func (t *TUI) refreshRegisters() {
	t.regs.Clear()
	for i := 0; i < 32; i += 2 {
		fmt.Fprintf(t.regs, "R%-2d=0x%08X  R%-2d=0x%08X\n",
			i, t.dbg.VM.CPU.GetRegister(i), i+1, t.dbg.VM.CPU.GetRegister(i+1))
	}
	fmt.Fprintf(t.regs, "HI=0x%08X LO=0x%08X PC=%s\n",
		t.dbg.VM.CPU.HI, t.dbg.VM.CPU.LO, t.dbg.symbolicAddr(t.dbg.VM.CPU.PC))
}

// Run starts the TUI event loop; it blocks until the user quits.
func (t *TUI) Run() error {
	t.refreshRegisters()

	top := tview.NewFlex().
		AddItem(t.regs, 0, 1, false).
		AddItem(t.log, 0, 2, false)

	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(top, 0, 1, false).
		AddItem(t.cmd, 1, 0, true)

	return t.app.SetRoot(root, true).SetFocus(t.cmd).Run()
}
