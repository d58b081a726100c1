package vm

import "testing"

func TestJumpTargetComposition(t *testing.T) {
	c := NewContext()
	p := uint32(0x1000)
	target := uint32(0x0040) // word address
	got := c.execJ(Decode(encodeJ(OpJ, target)), p+4)
	want := ((p + 4) & 0xF0000000) | (target << 2)
	if got != want {
		t.Errorf("J target = 0x%08X, want 0x%08X", got, want)
	}
}

func TestJalLinkSemantics(t *testing.T) {
	c := NewContext()
	p := uint32(0x2000)
	c.execJal(Decode(encodeJ(OpJal, 0)), p, p+4)
	if got := c.GetRegister(RegRA); got != p+8 {
		t.Errorf("R31 after JAL = 0x%08X, want 0x%08X", got, p+8)
	}
}

func TestBeqTakenSkipsTwoWords(t *testing.T) {
	c := NewContext()
	c.SetRegister(8, 5)
	c.SetRegister(9, 5)
	p := uint32(0x100)
	got := c.execBeq(Decode(encodeI(OpBeq, 8, 9, 2)), p+4)
	if want := p + 4 + 2*4; got != want {
		t.Errorf("BEQ taken target = 0x%08X, want 0x%08X", got, want)
	}
}

func TestBneNotTakenFallsThrough(t *testing.T) {
	c := NewContext()
	c.SetRegister(8, 5)
	c.SetRegister(9, 5)
	p := uint32(0x100)
	got := c.execBne(Decode(encodeI(OpBne, 8, 9, 2)), p+4)
	if want := p + 4; got != want {
		t.Errorf("BNE not-taken target = 0x%08X, want 0x%08X", got, want)
	}
}

func TestJrReturnsToLinkedAddress(t *testing.T) {
	c := NewContext()
	c.SetRegister(RegRA, 0x3008)
	got := c.execJr(Decode(encodeR(OpSpecial, RegRA, 0, 0, 0, FuncJr)))
	if got != 0x3008 {
		t.Errorf("JR ra = 0x%08X, want 0x3008", got)
	}
}
