package vm

import "testing"

func TestWordRoundTrip(t *testing.T) {
	img := NewImage()
	if err := img.AddRegion("data", 0x1000, 0x100); err != nil {
		t.Fatal(err)
	}
	if err := img.StoreWord(0x1004, 0xCAFEBABE); err != nil {
		t.Fatal(err)
	}
	got, err := img.FetchWord(0x1004)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0xCAFEBABE {
		t.Errorf("FetchWord = 0x%08X, want 0xCAFEBABE", got)
	}
}

func TestUnalignedWordFaults(t *testing.T) {
	img := NewImage()
	img.AddRegion("data", 0x1000, 0x100)
	if _, err := img.FetchWord(0x1001); err == nil {
		t.Error("expected unaligned access to fault")
	}
}

func TestUnmappedAddressFaults(t *testing.T) {
	img := NewImage()
	img.AddRegion("data", 0x1000, 0x100)
	if _, err := img.FetchWord(0x0); err == nil {
		t.Error("expected unmapped access to fault")
	}
}

func TestOverlappingRegionRejected(t *testing.T) {
	img := NewImage()
	if err := img.AddRegion("a", 0x1000, 0x100); err != nil {
		t.Fatal(err)
	}
	if err := img.AddRegion("b", 0x1080, 0x100); err == nil {
		t.Error("expected overlapping region to be rejected")
	}
}

func TestByteLaneLittleEndian(t *testing.T) {
	img := NewImage()
	img.AddRegion("data", 0x1000, 0x100)
	if err := img.StoreWord(0x1000, 0x000000FF); err != nil {
		t.Fatal(err)
	}
	b0, _ := img.LoadByte(0x1000)
	b1, _ := img.LoadByte(0x1001)
	if b0 != 0xFF || b1 != 0x00 {
		t.Errorf("byte lanes = %02X %02X, want FF 00", b0, b1)
	}
}

func TestReadWriteCString(t *testing.T) {
	img := NewImage()
	img.AddRegion("data", 0x1000, 0x100)
	if err := img.WriteCString(0x1000, []byte("hi")); err != nil {
		t.Fatal(err)
	}
	got, err := img.ReadCString(0x1000)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hi" {
		t.Errorf("ReadCString = %q, want %q", got, "hi")
	}
}
