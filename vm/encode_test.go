package vm

// Test-only instruction encoders, the inverse of Decode, so test cases
// can be written as assembly-shaped calls instead of hand-rolled hex
// literals.

func encodeR(opcode, rs, rt, rd, shamt, fn uint32) uint32 {
	return opcode<<OpcodeShift | rs<<RsShift | rt<<RtShift | rd<<RdShift | shamt<<ShamtShift | fn
}

func encodeI(opcode, rs, rt uint32, imm uint16) uint32 {
	return opcode<<OpcodeShift | rs<<RsShift | rt<<RtShift | uint32(imm)
}

func encodeJ(opcode, target uint32) uint32 {
	return opcode<<OpcodeShift | (target & TargetMask)
}

func encSyscall() uint32 { return encodeR(OpSpecial, 0, 0, 0, 0, FuncSyscall) }
