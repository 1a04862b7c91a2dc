package tables

import "testing"

func TestInternalNationalIdentityRange(t *testing.T) {
	for n := uint16(1); n <= 251; n++ {
		// National 201 maps to its form-block representative, not itself.
		if n != FormBlockNational {
			if got := InternalFromNational(n); got != n {
				t.Fatalf("InternalFromNational(%d) = %d", n, got)
			}
		}
		if got := NationalFromInternal(n); got != n {
			t.Fatalf("NationalFromInternal(%d) = %d", n, got)
		}
	}
}

func TestFormBlockCollapse(t *testing.T) {
	for i := uint16(FormBlockFirst); i <= FormBlockLast; i++ {
		if got := NationalFromInternal(i); got != FormBlockNational {
			t.Fatalf("NationalFromInternal(%d) = %d, want %d", i, got, FormBlockNational)
		}
	}
	if got := InternalFromNational(FormBlockNational); got != FormBlockFirst {
		t.Fatalf("representative = %d, want %d", got, FormBlockFirst)
	}
}

func TestLaterBlockBijection(t *testing.T) {
	seen := make(map[uint16]uint16)
	for i := uint16(LaterBlockFirst); i <= MaxInternal; i++ {
		n := NationalFromInternal(i)
		if n < 252 || n > MaxNational {
			t.Fatalf("NationalFromInternal(%d) = %d out of range", i, n)
		}
		if prev, dup := seen[n]; dup {
			t.Fatalf("national %d produced by both %d and %d", n, prev, i)
		}
		seen[n] = i
		if back := InternalFromNational(n); back != i {
			t.Fatalf("round trip %d -> %d -> %d", i, n, back)
		}
	}
	if len(seen) != MaxNational-251 {
		t.Fatalf("later block covers %d nationals, want %d", len(seen), MaxNational-251)
	}
}

func TestNationalFromInternalUnknown(t *testing.T) {
	if NationalFromInternal(0) != 0 || NationalFromInternal(MaxInternal+1) != 0 {
		t.Fatal("out-of-range internal index should map to 0")
	}
	if InternalFromNational(0) != 0 || InternalFromNational(MaxNational+1) != 0 {
		t.Fatal("out-of-range national number should map to 0")
	}
}

func TestGen1SpeciesTable(t *testing.T) {
	cases := map[byte]uint16{
		0x01: 112, // first index
		0x15: 151,
		0x54: 25,
		0x99: 1,
		0xBE: 71, // last index
		0x1F: 0,  // glitch hole
		0x00: 0,
	}
	for idx, want := range cases {
		if got := NationalFromGen1(idx); got != want {
			t.Fatalf("NationalFromGen1(%#x) = %d, want %d", idx, got, want)
		}
	}
	if NationalFromGen1(0xFF) != 0 {
		t.Fatal("out-of-range index should map to 0")
	}
}

func TestGen2SpeciesIdentity(t *testing.T) {
	if NationalFromGen2(25) != 25 || NationalFromGen2(251) != 251 {
		t.Fatal("in-range identity broken")
	}
	if NationalFromGen2(0) != 0 || NationalFromGen2(252) != 0 {
		t.Fatal("out-of-range index should map to 0")
	}
}

func TestMinimumLevel(t *testing.T) {
	if MinimumLevel(149) != 55 {
		t.Fatalf("MinimumLevel(149) = %d", MinimumLevel(149))
	}
	if MinimumLevel(25) != 1 {
		t.Fatalf("MinimumLevel(25) = %d", MinimumLevel(25))
	}
}
