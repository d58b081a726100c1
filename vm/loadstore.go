package vm

import "fmt"

// Load/store effective addresses are always rs + sign-extended offset.
func effectiveAddress(c *Context, i Instruction) uint32 {
	return uint32(c.SignedRegister(int(i.Rs)) + i.SignExtendImm16())
}

func (m *VM) execLb(i Instruction) error {
	addr := effectiveAddress(&m.CPU, i)
	b, err := m.Memory.LoadByte(addr)
	if err != nil {
		return fmt.Errorf("LB: %w", err)
	}
	m.CPU.SetRegister(int(i.Rt), uint32(int32(int8(b))))
	return nil
}

func (m *VM) execLbu(i Instruction) error {
	addr := effectiveAddress(&m.CPU, i)
	b, err := m.Memory.LoadByte(addr)
	if err != nil {
		return fmt.Errorf("LBU: %w", err)
	}
	m.CPU.SetRegister(int(i.Rt), uint32(b))
	return nil
}

func (m *VM) execLh(i Instruction) error {
	addr := effectiveAddress(&m.CPU, i)
	h, err := m.Memory.LoadHalfword(addr)
	if err != nil {
		return fmt.Errorf("LH: %w", err)
	}
	m.CPU.SetRegister(int(i.Rt), uint32(int32(int16(h))))
	return nil
}

func (m *VM) execLhu(i Instruction) error {
	addr := effectiveAddress(&m.CPU, i)
	h, err := m.Memory.LoadHalfword(addr)
	if err != nil {
		return fmt.Errorf("LHU: %w", err)
	}
	m.CPU.SetRegister(int(i.Rt), uint32(h))
	return nil
}

func (m *VM) execLw(i Instruction) error {
	addr := effectiveAddress(&m.CPU, i)
	w, err := m.Memory.FetchWord(addr)
	if err != nil {
		return fmt.Errorf("LW: %w", err)
	}
	m.CPU.SetRegister(int(i.Rt), w)
	return nil
}

func (m *VM) execSb(i Instruction) error {
	addr := effectiveAddress(&m.CPU, i)
	if err := m.Memory.StoreByte(addr, byte(m.CPU.GetRegister(int(i.Rt)))); err != nil {
		return fmt.Errorf("SB: %w", err)
	}
	return nil
}

func (m *VM) execSh(i Instruction) error {
	addr := effectiveAddress(&m.CPU, i)
	if err := m.Memory.StoreHalfword(addr, uint16(m.CPU.GetRegister(int(i.Rt)))); err != nil {
		return fmt.Errorf("SH: %w", err)
	}
	return nil
}

func (m *VM) execSw(i Instruction) error {
	addr := effectiveAddress(&m.CPU, i)
	if err := m.Memory.StoreWord(addr, m.CPU.GetRegister(int(i.Rt))); err != nil {
		return fmt.Errorf("SW: %w", err)
	}
	return nil
}
