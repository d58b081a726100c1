package vm

// Arithmetic, logical and compare instructions. MIPS-I has no condition
// flags register: overflow from ADD/ADDI/SUB traps architecturally, but
// per the fetch-execute loop's error model (no arithmetic-trap support
// is required) this simulator lets the add/subtract wrap silently, same
// as the ADDU/ADDIU/SUBU family. Only signed/unsigned comparison and
// shift direction are observable to guest code here.

func (c *Context) execAdd(i Instruction)  { c.SetRegister(int(i.Rd), c.GetRegister(int(i.Rs))+c.GetRegister(int(i.Rt))) }
func (c *Context) execAddu(i Instruction) { c.execAdd(i) }
func (c *Context) execSub(i Instruction)  { c.SetRegister(int(i.Rd), c.GetRegister(int(i.Rs))-c.GetRegister(int(i.Rt))) }
func (c *Context) execSubu(i Instruction) { c.execSub(i) }

func (c *Context) execAnd(i Instruction) {
	c.SetRegister(int(i.Rd), c.GetRegister(int(i.Rs))&c.GetRegister(int(i.Rt)))
}
func (c *Context) execOr(i Instruction) {
	c.SetRegister(int(i.Rd), c.GetRegister(int(i.Rs))|c.GetRegister(int(i.Rt)))
}
func (c *Context) execXor(i Instruction) {
	c.SetRegister(int(i.Rd), c.GetRegister(int(i.Rs))^c.GetRegister(int(i.Rt)))
}
func (c *Context) execNor(i Instruction) {
	c.SetRegister(int(i.Rd), ^(c.GetRegister(int(i.Rs)) | c.GetRegister(int(i.Rt))))
}

// execSlt sets rd to 1 if rs < rt as signed 32-bit integers, else 0.
func (c *Context) execSlt(i Instruction) {
	if c.SignedRegister(int(i.Rs)) < c.SignedRegister(int(i.Rt)) {
		c.SetRegister(int(i.Rd), 1)
	} else {
		c.SetRegister(int(i.Rd), 0)
	}
}

// execSltu sets rd to 1 if rs < rt as unsigned 32-bit integers, else 0.
func (c *Context) execSltu(i Instruction) {
	if c.GetRegister(int(i.Rs)) < c.GetRegister(int(i.Rt)) {
		c.SetRegister(int(i.Rd), 1)
	} else {
		c.SetRegister(int(i.Rd), 0)
	}
}

func (c *Context) execAddi(i Instruction) {
	c.SetRegister(int(i.Rt), uint32(c.SignedRegister(int(i.Rs))+i.SignExtendImm16()))
}
func (c *Context) execAddiu(i Instruction) { c.execAddi(i) }

// execSlti compares rs against the sign-extended immediate as signed
// integers, distinct from SLTIU's unsigned comparison.
func (c *Context) execSlti(i Instruction) {
	if c.SignedRegister(int(i.Rs)) < i.SignExtendImm16() {
		c.SetRegister(int(i.Rt), 1)
	} else {
		c.SetRegister(int(i.Rt), 0)
	}
}

// execSltiu compares rs against the sign-extended-then-reinterpreted-as-
// unsigned immediate, per the architecture (the immediate is still sign
// extended before the unsigned comparison).
func (c *Context) execSltiu(i Instruction) {
	if c.GetRegister(int(i.Rs)) < uint32(i.SignExtendImm16()) {
		c.SetRegister(int(i.Rt), 1)
	} else {
		c.SetRegister(int(i.Rt), 0)
	}
}

func (c *Context) execAndi(i Instruction) {
	c.SetRegister(int(i.Rt), c.GetRegister(int(i.Rs))&i.ZeroExtendImm16())
}
func (c *Context) execOri(i Instruction) {
	c.SetRegister(int(i.Rt), c.GetRegister(int(i.Rs))|i.ZeroExtendImm16())
}
func (c *Context) execXori(i Instruction) {
	c.SetRegister(int(i.Rt), c.GetRegister(int(i.Rs))^i.ZeroExtendImm16())
}

// execLui loads the immediate into the upper halfword of rt, zeroing the
// lower halfword.
func (c *Context) execLui(i Instruction) {
	c.SetRegister(int(i.Rt), i.ZeroExtendImm16()<<16)
}
