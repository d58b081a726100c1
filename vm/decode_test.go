package vm

import "testing"

func TestDecodeRType(t *testing.T) {
	// add $t0, $t1, $t2 -> rd=8, rs=9, rt=10
	word := encodeR(OpSpecial, 9, 10, 8, 0, FuncAdd)
	i := Decode(word)
	if i.Opcode != OpSpecial || i.Rs != 9 || i.Rt != 10 || i.Rd != 8 || i.Func != FuncAdd {
		t.Errorf("Decode(%#x) = %+v", word, i)
	}
}

func TestDecodeIType(t *testing.T) {
	word := encodeI(OpAddi, 5, 6, 0xFFFF)
	i := Decode(word)
	if i.Opcode != OpAddi || i.Rs != 5 || i.Rt != 6 || i.Imm != 0xFFFF {
		t.Errorf("Decode(%#x) = %+v", word, i)
	}
	if i.SignExtendImm16() != -1 {
		t.Errorf("SignExtendImm16() = %d, want -1", i.SignExtendImm16())
	}
	if i.ZeroExtendImm16() != 0xFFFF {
		t.Errorf("ZeroExtendImm16() = %#x, want 0xFFFF", i.ZeroExtendImm16())
	}
}

func TestDecodeJType(t *testing.T) {
	word := encodeJ(OpJ, 0x03FFFFFF)
	i := Decode(word)
	if i.Opcode != OpJ || i.Target != 0x03FFFFFF {
		t.Errorf("Decode(%#x) = %+v", word, i)
	}
}
