// Package debugger provides an interactive, breakpoint-driven front end
// over a vm.VM: a line-oriented REPL and a tcell/tview text UI, both
// built on the same command execution core.
package debugger

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mips32emu/mips32emu/vm"
)

// Debugger wraps a VM with breakpoints and step/continue control, and
// buffers command output the way a REPL or a TUI pane expects to
// consume it.
type Debugger struct {
	VM          *vm.VM
	Symbols     map[uint32]string
	Breakpoints map[uint32]bool
	Running     bool
	LastError   error

	output strings.Builder
}

// NewDebugger returns a Debugger wrapping m, with symbols (may be nil)
// used to resolve symbol names in commands and to label printed addresses.
func NewDebugger(m *vm.VM, symbols map[uint32]string) *Debugger {
	return &Debugger{
		VM:          m,
		Symbols:     symbols,
		Breakpoints: make(map[uint32]bool),
	}
}

// Printf appends formatted text to the debugger's output buffer.
func (d *Debugger) Printf(format string, args ...any) {
	fmt.Fprintf(&d.output, format, args...)
}

// Println appends a line to the debugger's output buffer.
func (d *Debugger) Println(s string) {
	d.output.WriteString(s)
	d.output.WriteByte('\n')
}

// GetOutput drains and returns everything written to the output buffer
// since the last call.
func (d *Debugger) GetOutput() string {
	s := d.output.String()
	d.output.Reset()
	return s
}

// ShouldBreak reports whether execution should stop at the VM's current
// PC: either a breakpoint is set there, or the program has halted.
func (d *Debugger) ShouldBreak() bool {
	if d.VM.Halted {
		return true
	}
	return d.Breakpoints[d.VM.CPU.PC]
}

// ResolveAddress parses a numeric address (0x-prefixed hex or decimal)
// or looks s up as a symbol name.
func (d *Debugger) ResolveAddress(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid address %q: %w", s, err)
		}
		return uint32(v), nil
	}
	if v, err := strconv.ParseUint(s, 10, 32); err == nil {
		return uint32(v), nil
	}
	for addr, name := range d.Symbols {
		if name == s {
			return addr, nil
		}
	}
	return 0, fmt.Errorf("unknown symbol %q", s)
}

// symbolicAddr formats addr as "0xXXXXXXXX" or, when some known symbol
// lies at or below addr, "0xXXXXXXXX <label+offset>". It uses the closest
// such symbol among the functions the loader read from .symtab; symbol
// sizes are not checked.
func (d *Debugger) symbolicAddr(addr uint32) string {
	plain := fmt.Sprintf("0x%08X", addr)
	var bestAddr uint32
	var bestName string
	found := false
	for symAddr, name := range d.Symbols {
		if symAddr <= addr && (!found || symAddr > bestAddr) {
			bestAddr, bestName, found = symAddr, name, true
		}
	}
	if !found {
		return plain
	}
	if offset := addr - bestAddr; offset != 0 {
		return fmt.Sprintf("%s <%s+0x%X>", plain, bestName, offset)
	}
	return fmt.Sprintf("%s <%s>", plain, bestName)
}

// ExecuteCommand parses and runs a single debugger command line,
// writing its result to the output buffer.
func (d *Debugger) ExecuteCommand(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "run", "r":
		d.Running = true
		d.cmdContinue()
	case "continue", "c":
		d.cmdContinue()
	case "step", "s", "si":
		d.cmdStep()
	case "break", "b":
		d.cmdBreak(args)
	case "delete", "d":
		d.cmdDelete(args)
	case "info", "i":
		d.cmdInfo(args)
	case "print", "p":
		d.cmdPrint(args)
	case "reset":
		d.VM.Reset()
		d.Running = false
		d.Println("registers and cycle count reset")
	case "help", "h", "?":
		d.cmdHelp()
	default:
		d.Printf("unknown command: %s\n", cmd)
	}
}

func (d *Debugger) cmdContinue() {
	d.Running = true
	for {
		done, err := d.VM.Step()
		if err != nil {
			d.LastError = err
			d.Running = false
			d.Printf("runtime error: %v\n", err)
			return
		}
		if done {
			d.Running = false
			d.Printf("program exited with code %d\n", d.VM.ExitCode)
			return
		}
		if d.ShouldBreak() {
			d.Printf("stopped: breakpoint at PC=%s\n", d.symbolicAddr(d.VM.CPU.PC))
			return
		}
	}
}

func (d *Debugger) cmdStep() {
	done, err := d.VM.Step()
	if err != nil {
		d.LastError = err
		d.Printf("runtime error: %v\n", err)
		return
	}
	if done {
		d.Running = false
		d.Printf("program exited with code %d\n", d.VM.ExitCode)
		return
	}
	d.Printf("PC=%s\n", d.symbolicAddr(d.VM.CPU.PC))
}

func (d *Debugger) cmdBreak(args []string) {
	if len(args) != 1 {
		d.Println("usage: break <address|symbol>")
		return
	}
	addr, err := d.ResolveAddress(args[0])
	if err != nil {
		d.Printf("%v\n", err)
		return
	}
	d.Breakpoints[addr] = true
	d.Printf("breakpoint set at %s\n", d.symbolicAddr(addr))
}

func (d *Debugger) cmdDelete(args []string) {
	if len(args) != 1 {
		d.Println("usage: delete <address|symbol>")
		return
	}
	addr, err := d.ResolveAddress(args[0])
	if err != nil {
		d.Printf("%v\n", err)
		return
	}
	delete(d.Breakpoints, addr)
	d.Printf("breakpoint at %s removed\n", d.symbolicAddr(addr))
}

func (d *Debugger) cmdInfo(args []string) {
	if len(args) == 0 {
		d.Println("usage: info registers|breakpoints")
		return
	}
	switch args[0] {
	case "registers", "reg":
		d.printRegisters()
	case "breakpoints", "break":
		d.printBreakpoints()
	default:
		d.Printf("unknown info target: %s\n", args[0])
	}
}

func (d *Debugger) printRegisters() {
	for i := 0; i < 32; i += 4 {
		d.Printf("R%-2d=0x%08X  R%-2d=0x%08X  R%-2d=0x%08X  R%-2d=0x%08X\n",
			i, d.VM.CPU.GetRegister(i),
			i+1, d.VM.CPU.GetRegister(i+1),
			i+2, d.VM.CPU.GetRegister(i+2),
			i+3, d.VM.CPU.GetRegister(i+3))
	}
	d.Printf("HI=0x%08X LO=0x%08X PC=%s\n", d.VM.CPU.HI, d.VM.CPU.LO, d.symbolicAddr(d.VM.CPU.PC))
}

func (d *Debugger) printBreakpoints() {
	addrs := make([]uint32, 0, len(d.Breakpoints))
	for a := range d.Breakpoints {
		addrs = append(addrs, a)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	for _, a := range addrs {
		d.Printf("%s\n", d.symbolicAddr(a))
	}
}

func (d *Debugger) cmdPrint(args []string) {
	if len(args) != 1 {
		d.Println("usage: print <register|address>")
		return
	}
	if reg, ok := registerNumber(args[0]); ok {
		d.Printf("%s = 0x%08X (%d)\n", args[0], d.VM.CPU.GetRegister(reg), d.VM.CPU.SignedRegister(reg))
		return
	}
	addr, err := d.ResolveAddress(args[0])
	if err != nil {
		d.Printf("%v\n", err)
		return
	}
	w, err := d.VM.Memory.FetchWord(addr)
	if err != nil {
		d.Printf("%v\n", err)
		return
	}
	d.Printf("[%s] = 0x%08X (%d)\n", d.symbolicAddr(addr), w, vm.AsInt32(w))
}

func (d *Debugger) cmdHelp() {
	d.Println("commands: run|r, continue|c, step|s, break|b <addr>, delete|d <addr>, info|i registers|breakpoints, print|p <reg|addr>, reset, help|h")
}

// registerNumber resolves a register mnemonic ($v0, $a0, $sp, $ra, $8,
// r8, ...) to its number.
func registerNumber(name string) (int, bool) {
	name = strings.TrimPrefix(strings.ToLower(name), "$")
	switch name {
	case "zero":
		return vm.RegZero, true
	case "v0":
		return vm.RegV0, true
	case "a0":
		return vm.RegA0, true
	case "a1":
		return vm.RegA1, true
	case "sp":
		return vm.RegSP, true
	case "ra":
		return vm.RegRA, true
	}
	name = strings.TrimPrefix(name, "r")
	if n, err := strconv.Atoi(name); err == nil && n >= 0 && n < 32 {
		return n, true
	}
	return 0, false
}
