package bincalc_test

import (
	"testing"

	"github.com/campkeith/bincalc"
)

func TestParseEncoding(t *testing.T) {
	names := []string{"s8", "s16", "s32", "s64", "u8", "u16", "u32", "u64", "f32", "f64"}
	for _, name := range names {
		e, ok := bincalc.ParseEncoding(name)
		if !ok {
			t.Errorf("ParseEncoding(%q) failed", name)
			continue
		}
		if e.String() != name {
			t.Errorf("ParseEncoding(%q).String() = %q", name, e.String())
		}
	}
	for _, name := range []string{"", "s7", "S8", "f16", "u128", "s8 "} {
		if e, ok := bincalc.ParseEncoding(name); ok {
			t.Errorf("ParseEncoding(%q) = %v, want failure", name, e)
		}
	}
}

func TestEncodingBits(t *testing.T) {
	cases := []struct {
		name string
		bits int
	}{
		{"s8", 8}, {"u8", 8},
		{"s16", 16}, {"u16", 16},
		{"s32", 32}, {"u32", 32}, {"f32", 32},
		{"s64", 64}, {"u64", 64}, {"f64", 64},
	}
	for _, c := range cases {
		e, ok := bincalc.ParseEncoding(c.name)
		if !ok {
			t.Fatalf("ParseEncoding(%q) failed", c.name)
		}
		if e.Bits() != c.bits {
			t.Errorf("%s.Bits() = %d, want %d", c.name, e.Bits(), c.bits)
		}
	}
}
