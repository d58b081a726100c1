package vm

import (
	"bufio"
	"fmt"
	"io"
)

// VM is the top-level simulator: the register/HI-LO/PC context, the
// memory image, and the host I/O streams syscalls read and write.
type VM struct {
	CPU    Context
	Memory *Image

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	EntryPoint uint32
	MaxCycles  uint64

	// StackSize overrides the user stack region's size. Zero means the
	// loader should fall back to StackRegionSize.
	StackSize uint32

	// ExitCode is always 0 after an orderly exit syscall; the syscall
	// carries no exit-status argument to read, so the guest cannot
	// influence it.
	ExitCode int
	Halted   bool

	// Trace, when non-nil, receives one line per retired instruction.
	// This is a debugging aid layered on top of the fetch-execute loop;
	// it has no effect on simulated semantics.
	Trace io.Writer

	stdinReader *bufio.Reader
}

// NewVM returns a VM with an empty memory image and host stdio wired as
// the default I/O streams.
func NewVM(stdin io.Reader, stdout, stderr io.Writer) *VM {
	return &VM{
		Memory: NewImage(),
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}
}

// Reset clears CPU state, the exit code and the halted flag. The memory
// image is left untouched; reloading a program is the loader's job.
func (m *VM) Reset() {
	m.CPU.Reset()
	m.ExitCode = 0
	m.Halted = false
}

// Fetch reads the instruction word at PC, enforcing the PC%4==0
// invariant and surfacing an unmapped address as a fetch fault.
func (m *VM) Fetch() (uint32, error) {
	if m.CPU.PC%4 != 0 {
		return 0, fmt.Errorf("misaligned PC 0x%08X", m.CPU.PC)
	}
	word, err := m.Memory.FetchWord(m.CPU.PC)
	if err != nil {
		return 0, fmt.Errorf("instruction fetch at 0x%08X: %w", m.CPU.PC, err)
	}
	return word, nil
}

// Step executes exactly one instruction: fetch, decode, execute, and
// exactly one PC update. It returns true once the program
// has halted (via the exit syscall) so Run can stop driving it.
func (m *VM) Step() (bool, error) {
	if m.Halted {
		return true, nil
	}

	word, err := m.Fetch()
	if err != nil {
		return true, err
	}
	inst := Decode(word)
	pc := m.CPU.PC
	pcNext := pc + 4

	newPC, halt, err := m.execute(inst, pc, pcNext)
	if err != nil {
		return true, err
	}
	m.CPU.PC = newPC
	m.CPU.Cycles++

	if m.Trace != nil {
		fmt.Fprintf(m.Trace, "%08d PC=0x%08X raw=0x%08X\n", m.CPU.Cycles, pc, word)
	}

	if halt {
		m.Halted = true
		return true, nil
	}
	return false, nil
}

// Run drives Step until the program halts, a fatal error occurs, or
// MaxCycles instructions have retired (when MaxCycles is non-zero).
func (m *VM) Run() error {
	for {
		if m.MaxCycles != 0 && m.CPU.Cycles >= m.MaxCycles {
			return fmt.Errorf("exceeded max cycles (%d) without reaching exit syscall", m.MaxCycles)
		}
		done, err := m.Step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// execute dispatches a decoded instruction using a two-level tagged
// scheme: opcode 0 (SPECIAL) dispatches further on Func, opcode 0x01
// (REGIMM) dispatches further on Rt, and every other opcode is a direct
// I/J-type instruction.
func (m *VM) execute(i Instruction, pc, pcNext uint32) (newPC uint32, halt bool, err error) {
	newPC = pcNext

	switch i.Opcode {
	case OpSpecial:
		switch i.Func {
		case FuncSll:
			m.CPU.execSll(i)
		case FuncSrl:
			m.CPU.execSrl(i)
		case FuncSra:
			m.CPU.execSra(i)
		case FuncSllv:
			m.CPU.execSllv(i)
		case FuncSrlv:
			m.CPU.execSrlv(i)
		case FuncSrav:
			m.CPU.execSrav(i)
		case FuncJr:
			newPC = m.CPU.execJr(i)
		case FuncJalr:
			newPC = m.CPU.execJalr(i, pc)
		case FuncSyscall:
			halt, err = m.dispatchSyscall()
		case FuncMfhi:
			m.CPU.execMfhi(i)
		case FuncMthi:
			m.CPU.execMthi(i)
		case FuncMflo:
			m.CPU.execMflo(i)
		case FuncMtlo:
			m.CPU.execMtlo(i)
		case FuncMult:
			m.CPU.execMult(i)
		case FuncMultu:
			m.CPU.execMultu(i)
		case FuncDiv:
			m.CPU.execDiv(i)
		case FuncDivu:
			m.CPU.execDivu(i)
		case FuncAdd:
			m.CPU.execAdd(i)
		case FuncAddu:
			m.CPU.execAddu(i)
		case FuncSub:
			m.CPU.execSub(i)
		case FuncSubu:
			m.CPU.execSubu(i)
		case FuncAnd:
			m.CPU.execAnd(i)
		case FuncOr:
			m.CPU.execOr(i)
		case FuncXor:
			m.CPU.execXor(i)
		case FuncNor:
			m.CPU.execNor(i)
		case FuncSlt:
			m.CPU.execSlt(i)
		case FuncSltu:
			m.CPU.execSltu(i)
		default:
			err = fmt.Errorf("illegal instruction: SPECIAL func 0x%02X at PC=0x%08X", i.Func, pc)
		}

	case OpRegimm:
		switch i.Rt {
		case RtBltz:
			newPC = m.CPU.execBltz(i, pcNext)
		case RtBgez:
			newPC = m.CPU.execBgez(i, pcNext)
		case RtBltzal:
			newPC = m.CPU.execBltzal(i, pc, pcNext)
		case RtBgezal:
			newPC = m.CPU.execBgezal(i, pc, pcNext)
		default:
			err = fmt.Errorf("illegal instruction: REGIMM rt 0x%02X at PC=0x%08X", i.Rt, pc)
		}

	case OpJ:
		newPC = m.CPU.execJ(i, pcNext)
	case OpJal:
		newPC = m.CPU.execJal(i, pc, pcNext)
	case OpBeq:
		newPC = m.CPU.execBeq(i, pcNext)
	case OpBne:
		newPC = m.CPU.execBne(i, pcNext)
	case OpBlez:
		newPC = m.CPU.execBlez(i, pcNext)
	case OpBgtz:
		newPC = m.CPU.execBgtz(i, pcNext)
	case OpAddi:
		m.CPU.execAddi(i)
	case OpAddiu:
		m.CPU.execAddiu(i)
	case OpSlti:
		m.CPU.execSlti(i)
	case OpSltiu:
		m.CPU.execSltiu(i)
	case OpAndi:
		m.CPU.execAndi(i)
	case OpOri:
		m.CPU.execOri(i)
	case OpXori:
		m.CPU.execXori(i)
	case OpLui:
		m.CPU.execLui(i)
	case OpLb:
		err = m.execLb(i)
	case OpLbu:
		err = m.execLbu(i)
	case OpLh:
		err = m.execLh(i)
	case OpLhu:
		err = m.execLhu(i)
	case OpLw:
		err = m.execLw(i)
	case OpSb:
		err = m.execSb(i)
	case OpSh:
		err = m.execSh(i)
	case OpSw:
		err = m.execSw(i)

	default:
		err = fmt.Errorf("illegal instruction: opcode 0x%02X at PC=0x%08X", i.Opcode, pc)
	}

	return newPC, halt, err
}
