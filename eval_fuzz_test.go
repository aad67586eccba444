package bincalc_test

import (
	"errors"
	"testing"

	"github.com/campkeith/bincalc"
)

var fuzzModes = []string{"s8", "s16", "s32", "s64", "u8", "u16", "u32", "u64", "f32", "f64"}

func FuzzEvaluate(f *testing.F) {
	f.Add("2 + 3 * 4")
	f.Add("x00 - x01")
	f.Add("~(1 << 7)")
	f.Add("-1.5e3 / 2")
	f.Add("((((1))))")
	f.Fuzz(func(t *testing.T, s string) {
		for _, mode := range fuzzModes {
			enc, _ := bincalc.ParseEncoding(mode)
			quiet, err1 := bincalc.Evaluate(s, enc, false)
			loud, err2 := bincalc.Evaluate(s, enc, true)
			if (err1 == nil) != (err2 == nil) {
				t.Errorf("%s %q: verbose changed outcome: %v vs %v", mode, s, err1, err2)
				continue
			}
			if err1 != nil {
				var fault bincalc.Fault
				if !errors.As(err1, &fault) {
					t.Errorf("%s %q: error %#v is not a Fault", mode, s, err1)
					continue
				}
				if fault.Pos() < 0 || fault.Pos() > len(s) {
					t.Errorf("%s %q: fault position %d outside line", mode, s, fault.Pos())
				}
				continue
			}
			if quiet.Dec != loud.Dec || quiet.Hex != loud.Hex {
				t.Errorf("%s %q: verbose changed result: %s (%s) vs %s (%s)",
					mode, s, quiet.Dec, quiet.Hex, loud.Dec, loud.Hex)
			}
		}
	})
}
