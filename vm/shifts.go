package vm

// execSll shifts rt left by the instruction's shamt field, logically.
func (c *Context) execSll(i Instruction) {
	c.SetRegister(int(i.Rd), c.GetRegister(int(i.Rt))<<i.Shamt)
}

// execSrl shifts rt right by shamt, filling with zeros.
func (c *Context) execSrl(i Instruction) {
	c.SetRegister(int(i.Rd), c.GetRegister(int(i.Rt))>>i.Shamt)
}

// execSra shifts rt right by shamt, preserving the sign bit.
func (c *Context) execSra(i Instruction) {
	c.SetRegister(int(i.Rd), uint32(c.SignedRegister(int(i.Rt))>>i.Shamt))
}

// execSllv shifts rt left by the low 5 bits of rs.
func (c *Context) execSllv(i Instruction) {
	c.SetRegister(int(i.Rd), c.GetRegister(int(i.Rt))<<(c.GetRegister(int(i.Rs))&RegMask))
}

// execSrlv shifts rt right logically by the low 5 bits of rs.
func (c *Context) execSrlv(i Instruction) {
	c.SetRegister(int(i.Rd), c.GetRegister(int(i.Rt))>>(c.GetRegister(int(i.Rs))&RegMask))
}

// execSrav shifts rt right arithmetically by the low 5 bits of rs.
func (c *Context) execSrav(i Instruction) {
	c.SetRegister(int(i.Rd), uint32(c.SignedRegister(int(i.Rt))>>(c.GetRegister(int(i.Rs))&RegMask)))
}
