package vm

import "testing"

func TestAddiNegativeOne(t *testing.T) {
	c := NewContext()
	c.execAddi(Decode(encodeI(OpAddi, RegZero, 1, 0xFFFF)))
	if got := c.GetRegister(1); got != 0xFFFFFFFF {
		t.Errorf("ADDI r1,r0,-1 -> 0x%08X, want 0xFFFFFFFF", got)
	}
}

func TestOriZeroExtends(t *testing.T) {
	c := NewContext()
	c.execOri(Decode(encodeI(OpOri, RegZero, 1, 0xFFFF)))
	if got := c.GetRegister(1); got != 0x0000FFFF {
		t.Errorf("ORI r1,r0,0xFFFF -> 0x%08X, want 0x0000FFFF", got)
	}
}

func TestAndiZeroExtends(t *testing.T) {
	c := NewContext()
	c.SetRegister(2, 0xFFFFFFFF)
	c.execAndi(Decode(encodeI(OpAndi, 2, 1, 0xFFFF)))
	if got := c.GetRegister(1); got != 0x0000FFFF {
		t.Errorf("ANDI r1,r2,0xFFFF -> 0x%08X, want 0x0000FFFF", got)
	}
}

func TestSltSigned(t *testing.T) {
	c := NewContext()
	c.SetRegister(1, 0xFFFFFFFF) // -1
	c.SetRegister(2, 1)
	c.execSlt(Decode(encodeR(OpSpecial, 1, 2, 3, 0, FuncSlt)))
	if got := c.GetRegister(3); got != 1 {
		t.Errorf("SLT(-1, 1) = %d, want 1", got)
	}
}

func TestSltuUnsigned(t *testing.T) {
	c := NewContext()
	c.SetRegister(1, 0xFFFFFFFF) // huge unsigned
	c.SetRegister(2, 1)
	c.execSltu(Decode(encodeR(OpSpecial, 1, 2, 3, 0, FuncSltu)))
	if got := c.GetRegister(3); got != 0 {
		t.Errorf("SLTU(0xFFFFFFFF, 1) = %d, want 0", got)
	}
}

func TestSltiProperlySigned(t *testing.T) {
	c := NewContext()
	c.SetRegister(1, 0xFFFFFFFF) // -1
	c.execSlti(Decode(encodeI(OpSlti, 1, 2, 0x0000))) // compare -1 < 0
	if got := c.GetRegister(2); got != 1 {
		t.Errorf("SLTI(-1, 0) = %d, want 1", got)
	}
}

func TestLui(t *testing.T) {
	c := NewContext()
	c.execLui(Decode(encodeI(OpLui, 0, 1, 0x1234)))
	if got := c.GetRegister(1); got != 0x12340000 {
		t.Errorf("LUI r1, 0x1234 -> 0x%08X, want 0x12340000", got)
	}
}
