package vm

// Instruction is a decoded MIPS-I word. Every field is populated
// regardless of format; which fields are meaningful for a given opcode
// is determined by the dispatch tables in executor.go.
type Instruction struct {
	Raw    uint32
	Opcode uint32
	Rs     uint32
	Rt     uint32
	Rd     uint32
	Shamt  uint32
	Func   uint32
	Imm    uint32 // zero-extended 16-bit immediate, as encoded
	Target uint32 // 26-bit jump target, as encoded
}

// Decode splits a raw instruction word into its R/I/J fields. Every
// field is extracted unconditionally; callers index only the ones their
// opcode/func table says are meaningful.
func Decode(word uint32) Instruction {
	return Instruction{
		Raw:    word,
		Opcode: (word >> OpcodeShift) & FuncMask,
		Rs:     (word >> RsShift) & RegMask,
		Rt:     (word >> RtShift) & RegMask,
		Rd:     (word >> RdShift) & RegMask,
		Shamt:  (word >> ShamtShift) & RegMask,
		Func:   word & FuncMask,
		Imm:    word & ImmMask,
		Target: word & TargetMask,
	}
}

// SignExtendImm16 sign-extends the instruction's 16-bit immediate field,
// used by ADDI/ADDIU/SLTI/SLTIU/branches and all load/store offsets.
func (i Instruction) SignExtendImm16() int32 {
	return int32(int16(i.Imm))
}

// ZeroExtendImm16 zero-extends the instruction's 16-bit immediate field,
// used by ANDI/ORI/XORI/LUI.
func (i Instruction) ZeroExtendImm16() uint32 {
	return i.Imm
}
