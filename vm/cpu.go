package vm

// Context holds the architectural state of a single MIPS-I hart: the
// general purpose register file, the HI/LO multiply-divide registers and
// the program counter. R[0] is wired to zero exactly as the architecture
// requires; SetRegister silently discards writes to it rather than
// special-casing every caller.
type Context struct {
	R  [32]uint32
	HI uint32
	LO uint32
	PC uint32

	// Cycles counts retired instructions, used for MaxCycles enforcement
	// and for the execution trace.
	Cycles uint64
}

// NewContext returns a zeroed Context.
func NewContext() *Context {
	return &Context{}
}

// Reset zeroes every register, HI/LO, PC and the cycle counter. Setting PC
// back to the ELF entry point is left to the caller.
func (c *Context) Reset() {
	for i := range c.R {
		c.R[i] = 0
	}
	c.HI = 0
	c.LO = 0
	c.PC = 0
	c.Cycles = 0
}

// GetRegister returns the value of register r. Reading R0 always yields 0.
func (c *Context) GetRegister(r int) uint32 {
	if r == RegZero {
		return 0
	}
	return c.R[r&RegMask]
}

// SetRegister writes value to register r. Writes to R0 are discarded.
func (c *Context) SetRegister(r int, value uint32) {
	if r == RegZero {
		return
	}
	c.R[r&RegMask] = value
}

// SignedRegister returns the two's-complement interpretation of register
// r, used by print_int and by any signed comparison instruction.
func (c *Context) SignedRegister(r int) int32 {
	return int32(c.GetRegister(r))
}

// IncrementPC advances PC by one instruction word. VM.Step does not call
// it: Step assigns PC exactly once per instruction, to either the next
// word or the branch/jump target.
func (c *Context) IncrementPC() {
	c.PC += 4
}
