// Package types defines the public data model and typed errors shared by the
// boxkit API: decoded box records, legacy-format records, slot addressing,
// repair outcomes and validation reports.
//
// Errors carry an ErrKind so callers can branch on category:
//
//	if terr, ok := err.(*types.Error); ok && terr.Kind == types.ErrKindFormat {
//	    // re-acquire input; the buffer itself is unusable
//	}
//
// A failed checksum is deliberately NOT an error: Record.ChecksumOK is a flag
// and all fields remain populated, so diagnostic and repair flows never have
// to special-case the common "corrupt but parseable" case.
package types
