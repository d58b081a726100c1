// Package loader maps a statically linked little-endian 32-bit MIPS ELF
// executable into a vm.VM's memory image and establishes its entry point
// and initial stack.
//
// ELF parsing uses the standard library's debug/elf rather than a
// third-party package: the one ELF library referenced elsewhere in this
// project's dependency survey (yalue/elf_reader) exposes section headers,
// not the program headers a loader needs to find PT_LOAD segments, so it
// cannot do this job. debug/elf's Program Header API is the only
// candidate that actually fits.
package loader

import (
	"debug/elf"
	"fmt"

	"github.com/mips32emu/mips32emu/vm"
)

// Loaded describes the result of loading an ELF binary: the entry point
// the VM's PC should start at, and (best-effort) a symbol table for the
// debugger's label+offset address display.
type Loaded struct {
	EntryPoint uint32
	Symbols    map[uint32]string
}

// requiredClass, requiredData, requiredMachine and requiredType enumerate
// the ELF header fields a supported little-endian 32-bit MIPS executable
// must have.
const (
	requiredClass   = elf.ELFCLASS32
	requiredData    = elf.ELFDATA2LSB
	requiredMachine = elf.EM_MIPS
	requiredType    = elf.ET_EXEC
)

// Load parses the ELF file at path, validates its header against the
// required little-endian 32-bit MIPS executable profile, maps each
// PT_LOAD segment into m's memory image, and allocates the user stack
// region.
func Load(path string, m *vm.VM) (*Loaded, error) {
	f, err := elf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ELF %q: %w", path, err)
	}
	defer f.Close()

	if f.Class != requiredClass {
		return nil, fmt.Errorf("unsupported ELF class %v, want ELFCLASS32", f.Class)
	}
	if f.Data != requiredData {
		return nil, fmt.Errorf("unsupported ELF data encoding %v, want little-endian", f.Data)
	}
	if f.Machine != requiredMachine {
		return nil, fmt.Errorf("unsupported ELF machine %v, want EM_MIPS", f.Machine)
	}
	if f.Type != requiredType {
		return nil, fmt.Errorf("unsupported ELF type %v, want ET_EXEC (statically linked)", f.Type)
	}

	for idx, prog := range f.Progs {
		if prog.Type != elf.PT_LOAD {
			continue
		}
		if err := mapSegment(m, idx, prog); err != nil {
			return nil, err
		}
	}

	stackSize := m.StackSize
	if stackSize == 0 {
		stackSize = vm.StackRegionSize
	}
	if err := m.Memory.AddRegion("stack", vm.StackRegionBase, stackSize); err != nil {
		return nil, fmt.Errorf("map stack region: %w", err)
	}
	m.CPU.SetRegister(vm.RegSP, vm.StackRegionBase+stackSize-4)

	entry := uint32(f.Entry)
	m.CPU.PC = entry
	m.EntryPoint = entry

	return &Loaded{
		EntryPoint: entry,
		Symbols:    readSymbols(f),
	}, nil
}

// mapSegment maps one PT_LOAD program header into the memory image. A
// region's mapped size must be word-aligned (an Image invariant), so
// p_memsz is rounded up to the next multiple of 4; the extra padding
// bytes stay zeroed, exactly like the rest of BSS.
func mapSegment(m *vm.VM, idx int, prog *elf.Prog) error {
	memSize := (uint32(prog.Memsz) + 3) &^ 3
	if memSize == 0 {
		return nil
	}
	name := fmt.Sprintf("segment%d@0x%08X", idx, prog.Vaddr)
	if err := m.Memory.AddRegion(name, uint32(prog.Vaddr), memSize); err != nil {
		return fmt.Errorf("map PT_LOAD segment at 0x%08X: %w", prog.Vaddr, err)
	}

	data := make([]byte, prog.Filesz)
	if _, err := prog.ReadAt(data, 0); err != nil {
		return fmt.Errorf("read PT_LOAD segment at 0x%08X: %w", prog.Vaddr, err)
	}
	if err := m.Memory.LoadBytes(uint32(prog.Vaddr), data); err != nil {
		return fmt.Errorf("load PT_LOAD segment at 0x%08X: %w", prog.Vaddr, err)
	}
	return nil
}

// readSymbols reads .symtab when present. Symbols are purely a debugger
// convenience — label+offset addresses — and have no effect on
// simulated semantics, so a missing or malformed symbol table is not an
// error.
func readSymbols(f *elf.File) map[uint32]string {
	syms, err := f.Symbols()
	if err != nil {
		return nil
	}
	out := make(map[uint32]string, len(syms))
	for _, s := range syms {
		if s.Name == "" || elf.ST_TYPE(s.Info) != elf.STT_FUNC {
			continue
		}
		out[uint32(s.Value)] = s.Name
	}
	return out
}
