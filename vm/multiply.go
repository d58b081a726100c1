package vm

// Multiply and divide write their results to the HI/LO register pair,
// not to a general-purpose register. The reference source this spec
// corrects routed the result through rd instead; HI/LO is the
// architectural behavior and is what MFHI/MFLO read back.

func (c *Context) execMult(i Instruction) {
	product := int64(c.SignedRegister(int(i.Rs))) * int64(c.SignedRegister(int(i.Rt)))
	c.LO = uint32(product)
	c.HI = uint32(product >> 32)
}

func (c *Context) execMultu(i Instruction) {
	product := uint64(c.GetRegister(int(i.Rs))) * uint64(c.GetRegister(int(i.Rt)))
	c.LO = uint32(product)
	c.HI = uint32(product >> 32)
}

// execDiv divides rs by rt as signed integers. Division by zero leaves
// HI/LO architecturally undefined; this simulator leaves them unchanged
// rather than panicking, since arithmetic traps are not modeled.
func (c *Context) execDiv(i Instruction) {
	divisor := c.SignedRegister(int(i.Rt))
	if divisor == 0 {
		return
	}
	dividend := c.SignedRegister(int(i.Rs))
	c.LO = uint32(dividend / divisor)
	c.HI = uint32(dividend % divisor)
}

func (c *Context) execDivu(i Instruction) {
	divisor := c.GetRegister(int(i.Rt))
	if divisor == 0 {
		return
	}
	dividend := c.GetRegister(int(i.Rs))
	c.LO = dividend / divisor
	c.HI = dividend % divisor
}

func (c *Context) execMfhi(i Instruction) { c.SetRegister(int(i.Rd), c.HI) }
func (c *Context) execMflo(i Instruction) { c.SetRegister(int(i.Rd), c.LO) }
func (c *Context) execMthi(i Instruction) { c.HI = c.GetRegister(int(i.Rs)) }
func (c *Context) execMtlo(i Instruction) { c.LO = c.GetRegister(int(i.Rs)) }
