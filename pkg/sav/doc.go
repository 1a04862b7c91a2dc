// Package sav is the public surface of the box-storage toolkit: record
// codec, save-image parsing, legacy extraction and conversion, targeted
// repairs and integrity validation.
//
// # Overview
//
// The toolkit works on three save-image generations. The modern 128 KiB
// image stores 420 box records of 80 bytes each, encrypted and shuffled per
// record; the two legacy 32 KiB formats store smaller big-endian records.
// Everything operates on byte buffers; no game knowledge is required beyond
// what the package derives itself.
//
// # Quick Start
//
// Pull every record out of a save file:
//
//	s, err := sav.ReadSaveFile("box.sav")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	records, err := s.ExtractBoxRecords()
//	for _, rec := range records {
//	    fmt.Printf("box %d slot %d: %s (species %d)\n",
//	        rec.Box+1, rec.Slot+1, rec.Record.Nickname, rec.Record.Species)
//	}
//
// Move a record from an old save into a modern one:
//
//	old, _ := sav.ReadSaveFile("legacy.sav")
//	mons, _ := old.LegacyRecords()
//	res, _ := sav.ConvertLegacyToModern(mons[0], sav.ConvertOptions{})
//
//	target, _ := sav.ReadSaveFile("box.sav")
//	empty, _ := target.FindEmptySlots()
//	target.InjectBoxRecords([]types.Placement{{SlotRef: empty[0], Data: res.Data}})
//	sav.WriteSaveFile("box.sav", target)
//
// # Mutation Model
//
// A Save owns a private copy of the parsed image. Mutating operations edit
// that copy in place and reseal the affected section checksums; Bytes (and
// WriteSaveFile) always reflect the current state. The caller's original
// buffer is never touched.
package sav
