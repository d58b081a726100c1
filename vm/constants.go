package vm

// Instruction field bit positions, shared between the decoder and the
// test-only instruction encoders.
const (
	OpcodeShift = 26 // bits 31-26
	RsShift     = 21 // bits 25-21
	RtShift     = 16 // bits 20-16
	RdShift     = 11 // bits 15-11
	ShamtShift  = 6  // bits 10-6
	FuncMask    = 0x3F
	RegMask     = 0x1F
	ImmMask     = 0xFFFF
	TargetMask  = 0x03FFFFFF
)

// Opcode field values (bits 31-26). Zero selects the SPECIAL (R-type)
// table via Func; 0x01 selects the REGIMM table via Rt.
const (
	OpSpecial = 0x00
	OpRegimm  = 0x01
	OpJ       = 0x02
	OpJal     = 0x03
	OpBeq     = 0x04
	OpBne     = 0x05
	OpBlez    = 0x06
	OpBgtz    = 0x07
	OpAddi    = 0x08
	OpAddiu   = 0x09
	OpSlti    = 0x0A
	OpSltiu   = 0x0B
	OpAndi    = 0x0C
	OpOri     = 0x0D
	OpXori    = 0x0E
	OpLui     = 0x0F
	OpLb      = 0x20
	OpLh      = 0x21
	OpLw      = 0x23
	OpLbu     = 0x24
	OpLhu     = 0x25
	OpSb      = 0x28
	OpSh      = 0x29
	OpSw      = 0x2B
)

// SPECIAL (opcode 0) function codes, bits 5-0.
const (
	FuncSll     = 0x00
	FuncSrl     = 0x02
	FuncSra     = 0x03
	FuncSllv    = 0x04
	FuncSrlv    = 0x06
	FuncSrav    = 0x07
	FuncJr      = 0x08
	FuncJalr    = 0x09
	FuncSyscall = 0x0C
	FuncMfhi    = 0x10
	FuncMthi    = 0x11
	FuncMflo    = 0x12
	FuncMtlo    = 0x13
	FuncMult    = 0x18
	FuncMultu   = 0x19
	FuncDiv     = 0x1A
	FuncDivu    = 0x1B
	FuncAdd     = 0x20
	FuncAddu    = 0x21
	FuncSub     = 0x22
	FuncSubu    = 0x23
	FuncAnd     = 0x24
	FuncOr      = 0x25
	FuncXor     = 0x26
	FuncNor     = 0x27
	FuncSlt     = 0x2A
	FuncSltu    = 0x2B
)

// REGIMM (opcode 0x01) rt-field selectors.
const (
	RtBltz   = 0x00
	RtBgez   = 0x01
	RtBltzal = 0x10
	RtBgezal = 0x11
)

// Register aliases, per the MIPS o32 calling convention.
const (
	RegZero = 0
	RegV0   = 2
	RegA0   = 4
	RegA1   = 5
	RegSP   = 29
	RegRA   = 31
)

// Syscall numbers dispatched by the Syscall Dispatcher.
const (
	SyscallPrintInt    = 1
	SyscallPrintString = 4
	SyscallReadInt     = 5
	SyscallReadString  = 8
	SyscallExit        = 10
)

// Layout of the guest address space. The stack region sits at the top of
// a 32-bit address space the way a MIPS user binary expects; text and
// data regions come from the ELF program headers themselves.
const (
	StackRegionBase = 0xC0000000
	StackRegionSize = 0x8000

	// DefaultMaxCycles is a cycle bound a caller may assign to
	// VM.MaxCycles. Nothing applies it automatically: a VM whose
	// MaxCycles is zero runs until the exit syscall or a fault.
	DefaultMaxCycles = 100_000_000
)
