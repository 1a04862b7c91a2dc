package tables

import "testing"

func TestExperienceKnownValues(t *testing.T) {
	cases := []struct {
		curve Curve
		level int
		want  uint32
	}{
		{CurveMediumFast, 1, 1},
		{CurveMediumFast, 10, 1000},
		{CurveMediumFast, 100, 1000000},
		{CurveFast, 100, 800000},
		{CurveSlow, 100, 1250000},
		{CurveMediumSlow, 100, 1059860},
		{CurveMediumSlow, 5, 135},
	}
	for _, c := range cases {
		if got := c.curve.Experience(c.level); got != c.want {
			t.Fatalf("%v.Experience(%d) = %d, want %d", c.curve, c.level, got, c.want)
		}
	}
}

func TestExperienceClamps(t *testing.T) {
	if got := CurveMediumFast.Experience(0); got != 1 {
		t.Fatalf("Experience(0) = %d, want level-1 value", got)
	}
	if got := CurveMediumFast.Experience(101); got != 1000000 {
		t.Fatalf("Experience(101) = %d", got)
	}
}

func TestLevelInvertsExperience(t *testing.T) {
	for _, curve := range []Curve{CurveMediumFast, CurveMediumSlow, CurveFast, CurveSlow} {
		for level := MinLevel; level <= MaxLevel; level++ {
			exp := curve.Experience(level)
			if got := curve.Level(exp); got != level {
				t.Fatalf("%v.Level(Experience(%d)) = %d", curve, level, got)
			}
		}
		// Mid-level experience resolves to the level already reached.
		exp := curve.Experience(40) + 1
		if got := curve.Level(exp); got != 40 {
			t.Fatalf("%v.Level(mid) = %d, want 40", curve, got)
		}
	}
}

func TestCurveFor(t *testing.T) {
	if CurveFor(1) != CurveMediumSlow {
		t.Fatal("species 1 should be medium-slow")
	}
	if CurveFor(150) != CurveSlow {
		t.Fatal("species 150 should be slow")
	}
	if CurveFor(35) != CurveFast {
		t.Fatal("species 35 should be fast")
	}
	if CurveFor(19) != CurveMediumFast {
		t.Fatal("unlisted species should default to medium-fast")
	}
}

func TestFallbackMove(t *testing.T) {
	if FallbackMove(25) != 84 {
		t.Fatalf("FallbackMove(25) = %d", FallbackMove(25))
	}
	if FallbackMove(999) != UniversalFallbackMove {
		t.Fatalf("unlisted species should fall back to %d", UniversalFallbackMove)
	}
}

func TestMoveTablesBounds(t *testing.T) {
	if ModernMoveFromGen1(0) != 0 || ModernMoveFromGen1(166) != 0 {
		t.Fatal("gen1 move bounds")
	}
	if ModernMoveFromGen1(33) != 33 || ModernMoveFromGen2(251) != 251 {
		t.Fatal("in-range moves should survive translation")
	}
	if ModernMoveFromGen2(252) != 0 {
		t.Fatal("gen2 move bounds")
	}
}

func TestMoveTablesNonIdentityEntries(t *testing.T) {
	type xlate func(byte) uint16
	for name, f := range map[string]xlate{"gen1": ModernMoveFromGen1, "gen2": ModernMoveFromGen2} {
		if f(82) != 83 || f(83) != 82 {
			t.Fatalf("%s: transposed pair 82/83 not honored: %d, %d", name, f(82), f(83))
		}
		if f(119) != 0 || f(144) != 0 {
			t.Fatalf("%s: ids without a modern counterpart should map to 0", name)
		}
	}
}

func TestItemTable(t *testing.T) {
	if ModernItemFromGen2(0x51) != 221 {
		t.Fatalf("leftovers = %d", ModernItemFromGen2(0x51))
	}
	if ModernItemFromGen2(0x00) != 0 || ModernItemFromGen2(0x90) != 0 {
		t.Fatal("unknown items should map to 0")
	}
}
