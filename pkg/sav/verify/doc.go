// Package verify provides non-mutating validation for box-storage save
// images.
//
// # Overview
//
// The package answers two questions about a byte buffer: which save
// generation it is, and whether its native integrity checksums hold. Nothing
// here writes; repairs live elsewhere.
//
// Detection accepts the modern 128 KiB sectioned image (with or without the
// 16-byte emulator header) and the two legacy 32 KiB formats, including the
// oversized legacy shapes emulators produce (doubled images, small trailers).
//
// # Quick Start
//
// Audit an image in one call:
//
//	data, _ := os.ReadFile("box.sav")
//	rep, err := verify.Report(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%s save, player %q, all checksums ok: %v\n",
//	    rep.Kind, rep.PlayerName, rep.AllOK())
//	for _, c := range rep.Checks {
//	    if !c.OK {
//	        fmt.Printf("  %s: stored %#x, computed %#x\n", c.Location, c.Stored, c.Computed)
//	    }
//	}
//
// Detection alone:
//
//	kind, img, err := verify.Detect(data)
//
// # ValidationError
//
// Structural failures are reported as *ValidationError:
//
//	type ValidationError struct {
//	    Type    string                 // check category, e.g. "Detect"
//	    Message string                 // human-readable description
//	    Offset  int                    // file offset, -1 if not applicable
//	    Details map[string]interface{} // additional context
//	}
//
// # Checksums Recomputed
//
// Per generation:
//   - modern: the folded 16-bit sum of every signed sector in both blocks
//   - legacy 1: the complemented 8-bit sum over the primary data range
//   - legacy 2: two little-endian 16-bit sums (primary and secondary ranges)
package verify
