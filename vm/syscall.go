package vm

import (
	"bufio"
	"fmt"
)

// A memory fault while servicing a syscall (e.g. print_string walking an
// unmapped address) is fatal and aborts the run the same as any other
// memory fault. An unknown syscall number is not fatal — it is reported
// to stderr and execution continues at PC+4, exactly like any other
// instruction that completed without changing control flow.

// dispatchSyscall services the syscall named by v0 (R2), using a0/a1 as
// its arguments. It returns (halt, err): halt is true only for syscall 10
// (exit); err is non-nil only for a fatal memory fault encountered while
// servicing the call.
func (m *VM) dispatchSyscall() (halt bool, err error) {
	switch m.CPU.GetRegister(RegV0) {
	case SyscallPrintInt:
		fmt.Fprintf(m.Stdout, "%d\n", m.CPU.SignedRegister(RegA0))
		return false, nil

	case SyscallPrintString:
		s, ferr := m.Memory.ReadCString(m.CPU.GetRegister(RegA0))
		if ferr != nil {
			return false, fmt.Errorf("print_string: %w", ferr)
		}
		m.Stdout.Write(s)
		return false, nil

	case SyscallReadInt:
		line, rerr := m.readLine()
		if rerr != nil {
			m.CPU.SetRegister(RegV0, 0)
			return false, nil
		}
		var v int32
		if _, serr := fmt.Sscanf(line, "%d", &v); serr != nil {
			v = 0
		}
		m.CPU.SetRegister(RegV0, uint32(v))
		return false, nil

	case SyscallReadString:
		bufAddr := m.CPU.GetRegister(RegA0)
		maxLen := m.CPU.GetRegister(RegA1)
		line, _ := m.readLine()
		if maxLen > 0 && uint32(len(line)) > maxLen-1 {
			line = line[:maxLen-1]
		}
		if ferr := m.Memory.WriteCString(bufAddr, []byte(line)); ferr != nil {
			return false, fmt.Errorf("read_string: %w", ferr)
		}
		return false, nil

	case SyscallExit:
		m.ExitCode = 0
		return true, nil

	default:
		fmt.Fprintf(m.Stderr, "warning: unknown syscall %d at PC=0x%08X, ignored\n",
			m.CPU.GetRegister(RegV0), m.CPU.PC)
		return false, nil
	}
}

func (m *VM) readLine() (string, error) {
	if m.stdinReader == nil {
		m.stdinReader = bufio.NewReader(m.Stdin)
	}
	line, err := m.stdinReader.ReadString('\n')
	if len(line) > 0 && line[len(line)-1] == '\n' {
		line = line[:len(line)-1]
	}
	if len(line) > 0 && line[len(line)-1] == '\r' {
		line = line[:len(line)-1]
	}
	return line, err
}
