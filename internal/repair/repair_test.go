package repair

import (
	"encoding/binary"
	"testing"

	"github.com/boxkit/boxkit/internal/codec"
	"github.com/boxkit/boxkit/internal/format"
	"github.com/boxkit/boxkit/internal/section"
	"github.com/boxkit/boxkit/pkg/types"
)

func encoded(mutate func(*types.Record)) []byte {
	r := &types.Record{
		PID:        0xCAFEF00D,
		OTID:       0x11112222,
		Nickname:   "ZIGZAGOON",
		Language:   format.LangEnglish,
		OTName:     "BRENDAN",
		Species:    263,
		Experience: 1000, // level 10 on the default curve
		MetLevel:   10,
		Ball:       4,
		Moves:      [4]uint16{33},
		PP:         [4]byte{35},
	}
	if mutate != nil {
		mutate(r)
	}
	return codec.Encode(r)
}

func decode(t *testing.T, b []byte) *types.Record {
	t.Helper()
	r, err := codec.Decode(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return r
}

func TestChecksumRepair(t *testing.T) {
	b := encoded(nil)
	binary.LittleEndian.PutUint16(b[format.RecChecksumOffset:], 0xDEAD)

	out, err := Checksum(b)
	if err != nil {
		t.Fatalf("Checksum: %v", err)
	}
	if !out.Changed || !out.ChecksumOK {
		t.Fatalf("outcome: %+v", out)
	}
	if !decode(t, b).ChecksumOK {
		t.Fatal("record still fails after repair")
	}

	// Idempotent.
	out, _ = Checksum(b)
	if out.Changed {
		t.Fatal("second application reported a change")
	}
}

func TestLocaleRepair(t *testing.T) {
	b := encoded(func(r *types.Record) { r.Language = 0x0BAD })
	out, err := Locale(b, 0)
	if err != nil {
		t.Fatalf("Locale: %v", err)
	}
	if !out.Changed {
		t.Fatal("unknown language not rewritten")
	}
	r := decode(t, b)
	if r.Language != format.LangEnglish {
		t.Fatalf("language = %#x", r.Language)
	}
	if !r.ChecksumOK {
		t.Fatal("plaintext repair disturbed the checksum")
	}

	out, _ = Locale(b, 0)
	if out.Changed {
		t.Fatal("known language rewritten")
	}
}

func TestLocaleRepairChosenDefault(t *testing.T) {
	b := encoded(func(r *types.Record) { r.Language = 0x0BAD })
	out, err := Locale(b, format.LangFrench)
	if err != nil {
		t.Fatalf("Locale: %v", err)
	}
	if !out.Changed {
		t.Fatal("unknown language not rewritten")
	}
	if r := decode(t, b); r.Language != format.LangFrench {
		t.Fatalf("language = %#x, want %#x", r.Language, format.LangFrench)
	}

	// A record already carrying a known language keeps it, whatever the
	// replacement would have been.
	b = encoded(nil)
	out, _ = Locale(b, format.LangFrench)
	if out.Changed {
		t.Fatal("known language rewritten")
	}
	if r := decode(t, b); r.Language != format.LangEnglish {
		t.Fatalf("language = %#x", r.Language)
	}
}

func TestMetLevelRepair(t *testing.T) {
	b := encoded(func(r *types.Record) {
		r.MetLevel = 50
		r.OTFemale = true
	})
	out, err := MetLevel(b)
	if err != nil {
		t.Fatalf("MetLevel: %v", err)
	}
	if !out.Changed || !out.ChecksumOK {
		t.Fatalf("outcome: %+v", out)
	}
	r := decode(t, b)
	if r.MetLevel != 10 {
		t.Fatalf("met level = %d, want 10", r.MetLevel)
	}
	// Neighbouring origins bits survive.
	if !r.OTFemale || r.Ball != 4 {
		t.Fatalf("origins bits clobbered: %+v", r)
	}

	out, _ = MetLevel(b)
	if out.Changed {
		t.Fatal("second application reported a change")
	}
}

func TestEggFlagRepair(t *testing.T) {
	b := encoded(func(r *types.Record) { r.IsEgg = true })
	out, err := EggFlag(b)
	if err != nil {
		t.Fatalf("EggFlag: %v", err)
	}
	if !out.Changed {
		t.Fatal("egg flag not cleared")
	}
	r := decode(t, b)
	if r.IsEgg {
		t.Fatal("egg flag still set")
	}
	if !r.ChecksumOK {
		t.Fatal("checksum not resealed after commit")
	}
}

func TestBadEggComposite(t *testing.T) {
	b := encoded(func(r *types.Record) {
		r.Language = 0x0BAD
		r.MetLevel = 50
		r.IsEgg = true
	})
	binary.LittleEndian.PutUint16(b[format.RecChecksumOffset:], 0xDEAD)

	out, err := BadEgg(b, 0)
	if err != nil {
		t.Fatalf("BadEgg: %v", err)
	}
	if !out.Changed || !out.ChecksumOK {
		t.Fatalf("outcome: %+v", out)
	}
	r := decode(t, b)
	if r.Language != format.LangEnglish || r.MetLevel != 10 || r.IsEgg || !r.ChecksumOK {
		t.Fatalf("composite repair incomplete: %+v", r)
	}

	out, _ = BadEgg(b, 0)
	if out.Changed {
		t.Fatal("second application reported a change")
	}
}

// buildSave assembles a valid 128 KiB image with section id i in sector i.
func buildSave() []byte {
	save := make([]byte, format.SaveSize)
	for blk := 0; blk < format.SaveBlockCount; blk++ {
		for i := 0; i < format.SectorsPerBlock; i++ {
			off := blk*format.SaveBlockSize + i*format.SectorSize
			sector := save[off : off+format.SectorSize]
			binary.LittleEndian.PutUint16(sector[format.SectorIDOffset:], uint16(i))
			binary.LittleEndian.PutUint32(sector[format.SectorSignatureOffset:], format.SectorSignature)
			binary.LittleEndian.PutUint32(sector[format.SectorCounterOffset:], uint32(2-blk))
			binary.LittleEndian.PutUint16(sector[format.SectorChecksumOffset:], format.SectionChecksum(sector))
		}
	}
	return save
}

func TestSweepCorruptSlots(t *testing.T) {
	save := buildSave()
	s, err := section.Parse(save)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	good := encoded(nil)
	bad := encoded(nil)
	bad[format.RecCryptOffset+7] ^= 0xFF

	if _, err := s.Inject([]types.Placement{
		{SlotRef: types.SlotRef{Box: 0, Slot: 0}, Data: good},
		{SlotRef: types.SlotRef{Box: 3, Slot: 12}, Data: bad},
		{SlotRef: types.SlotRef{Box: 1, Slot: 19}, Data: bad}, // straddles two sections
	}); err != nil {
		t.Fatalf("Inject: %v", err)
	}

	res, err := SweepCorruptSlots(s)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if res.Scanned != 3 || res.Cleared != 2 {
		t.Fatalf("result: %+v", res)
	}

	stored := s.ExtractRecords()
	if len(stored) != 1 || stored[0].Box != 0 || stored[0].Slot != 0 {
		t.Fatalf("survivors: %+v", stored)
	}

	// Every sector's stored checksum must still validate.
	for i := 0; i < format.SectorsPerBlock; i++ {
		off := s.ActiveBlock()*format.SaveBlockSize + i*format.SectorSize
		sector := save[off : off+format.SectorSize]
		stored := binary.LittleEndian.Uint16(sector[format.SectorChecksumOffset:])
		if stored != format.SectionChecksum(sector) {
			t.Fatalf("sector %d checksum stale after sweep", i)
		}
	}

	res, _ = SweepCorruptSlots(s)
	if res.Cleared != 0 {
		t.Fatalf("second sweep cleared %d slots", res.Cleared)
	}
}
