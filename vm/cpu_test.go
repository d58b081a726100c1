package vm

import "testing"

func TestR0AlwaysZero(t *testing.T) {
	c := NewContext()
	c.SetRegister(RegZero, 0xDEADBEEF)
	if got := c.GetRegister(RegZero); got != 0 {
		t.Errorf("R0 = 0x%08X, want 0", got)
	}
}

func TestSetRegisterRoundTrip(t *testing.T) {
	c := NewContext()
	c.SetRegister(8, 0x12345678)
	if got := c.GetRegister(8); got != 0x12345678 {
		t.Errorf("R8 = 0x%08X, want 0x12345678", got)
	}
}

func TestSignedRegister(t *testing.T) {
	c := NewContext()
	c.SetRegister(1, 0xFFFFFFFF)
	if got := c.SignedRegister(1); got != -1 {
		t.Errorf("SignedRegister(1) = %d, want -1", got)
	}
}

func TestReset(t *testing.T) {
	c := NewContext()
	c.SetRegister(5, 42)
	c.HI = 1
	c.LO = 2
	c.PC = 0x1000
	c.Cycles = 10
	c.Reset()
	if c.GetRegister(5) != 0 || c.HI != 0 || c.LO != 0 || c.PC != 0 || c.Cycles != 0 {
		t.Errorf("Reset left non-zero state: %+v", c)
	}
}
