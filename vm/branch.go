package vm

// Branch and jump target computation. Delay slots are not modeled: the
// target, once computed, is installed as the very next PC, and the
// instruction physically following the branch in memory is simply
// skipped rather than executed unconditionally as real MIPS hardware
// would.

// branchTarget computes the target of a conditional branch whose base
// is the address of the instruction following the branch itself.
func branchTarget(pcNext uint32, i Instruction) uint32 {
	return uint32(int64(pcNext) + int64(i.SignExtendImm16())<<2)
}

// jumpTarget computes the target of J/JAL.
func jumpTarget(pcNext uint32, i Instruction) uint32 {
	return (pcNext & 0xF0000000) | (i.Target << 2)
}

func (c *Context) execBeq(i Instruction, pcNext uint32) uint32 {
	if c.GetRegister(int(i.Rs)) == c.GetRegister(int(i.Rt)) {
		return branchTarget(pcNext, i)
	}
	return pcNext
}

func (c *Context) execBne(i Instruction, pcNext uint32) uint32 {
	if c.GetRegister(int(i.Rs)) != c.GetRegister(int(i.Rt)) {
		return branchTarget(pcNext, i)
	}
	return pcNext
}

func (c *Context) execBlez(i Instruction, pcNext uint32) uint32 {
	if c.SignedRegister(int(i.Rs)) <= 0 {
		return branchTarget(pcNext, i)
	}
	return pcNext
}

func (c *Context) execBgtz(i Instruction, pcNext uint32) uint32 {
	if c.SignedRegister(int(i.Rs)) > 0 {
		return branchTarget(pcNext, i)
	}
	return pcNext
}

func (c *Context) execBltz(i Instruction, pcNext uint32) uint32 {
	if c.SignedRegister(int(i.Rs)) < 0 {
		return branchTarget(pcNext, i)
	}
	return pcNext
}

func (c *Context) execBgez(i Instruction, pcNext uint32) uint32 {
	if c.SignedRegister(int(i.Rs)) >= 0 {
		return branchTarget(pcNext, i)
	}
	return pcNext
}

// Link variants write PC+8 to R31 before the branch/jump target takes
// effect, regardless of whether the branch is taken.

func (c *Context) execBltzal(i Instruction, pc, pcNext uint32) uint32 {
	c.SetRegister(RegRA, pc+8)
	if c.SignedRegister(int(i.Rs)) < 0 {
		return branchTarget(pcNext, i)
	}
	return pcNext
}

func (c *Context) execBgezal(i Instruction, pc, pcNext uint32) uint32 {
	c.SetRegister(RegRA, pc+8)
	if c.SignedRegister(int(i.Rs)) >= 0 {
		return branchTarget(pcNext, i)
	}
	return pcNext
}

func (c *Context) execJ(i Instruction, pcNext uint32) uint32 {
	return jumpTarget(pcNext, i)
}

func (c *Context) execJal(i Instruction, pc, pcNext uint32) uint32 {
	c.SetRegister(RegRA, pc+8)
	return jumpTarget(pcNext, i)
}

func (c *Context) execJr(i Instruction) uint32 {
	return c.GetRegister(int(i.Rs))
}

func (c *Context) execJalr(i Instruction, pc uint32) uint32 {
	target := c.GetRegister(int(i.Rs))
	rd := i.Rd
	if rd == 0 {
		rd = RegRA
	}
	c.SetRegister(int(rd), pc+8)
	return target
}
