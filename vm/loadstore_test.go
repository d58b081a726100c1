package vm

import (
	"bytes"
	"testing"
)

func newTestVM() *VM {
	m := NewVM(bytes.NewReader(nil), &bytes.Buffer{}, &bytes.Buffer{})
	if err := m.Memory.AddRegion("data", 0x1000, 0x100); err != nil {
		panic(err)
	}
	return m
}

func TestLbSignExtension(t *testing.T) {
	m := newTestVM()
	if err := m.Memory.StoreWord(0x1000, 0x000000FF); err != nil {
		t.Fatal(err)
	}
	m.CPU.SetRegister(4, 0x1000) // base
	if err := m.execLb(Decode(encodeI(OpLb, 4, 1, 0))); err != nil {
		t.Fatal(err)
	}
	if got := m.CPU.GetRegister(1); got != 0xFFFFFFFF {
		t.Errorf("LB from A = 0x%08X, want 0xFFFFFFFF", got)
	}

	if err := m.execLb(Decode(encodeI(OpLb, 4, 2, 1))); err != nil {
		t.Fatal(err)
	}
	if got := m.CPU.GetRegister(2); got != 0x00000000 {
		t.Errorf("LB from A+1 = 0x%08X, want 0x00000000", got)
	}
}

func TestLwSwRoundTrip(t *testing.T) {
	m := newTestVM()
	m.CPU.SetRegister(4, 0x1000)
	m.CPU.SetRegister(5, 0xABCD1234)
	if err := m.execSw(Decode(encodeI(OpSw, 4, 5, 0))); err != nil {
		t.Fatal(err)
	}
	if err := m.execLw(Decode(encodeI(OpLw, 4, 6, 0))); err != nil {
		t.Fatal(err)
	}
	if got := m.CPU.GetRegister(6); got != 0xABCD1234 {
		t.Errorf("LW after SW = 0x%08X, want 0xABCD1234", got)
	}
}

func TestLwUnmappedFaults(t *testing.T) {
	m := newTestVM()
	m.CPU.SetRegister(4, 0x0)
	if err := m.execLw(Decode(encodeI(OpLw, 4, 6, 0))); err == nil {
		t.Error("expected LW from unmapped address to fault")
	}
}
