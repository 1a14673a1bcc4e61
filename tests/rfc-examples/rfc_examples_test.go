package tests

import (
	"encoding/hex"
	"testing"

	cbor "github.com/fernbridge-labs/cbor-stream/cbor"
)

func parseHex(t *testing.T, hexStr string) []string {
	t.Helper()
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		t.Fatalf("bad hex %q: %v", hexStr, err)
	}
	p := cbor.NewParser(cbor.NewSliceSource(b), cbor.NewConfig())
	defer p.Close()
	rv := &recordingVisitor{}
	if err := p.Parse(rv); err != nil {
		t.Fatalf("parse %q: %v", hexStr, err)
	}
	return rv.events
}

func assertEvents(t *testing.T, got []string, want ...string) {
	t.Helper()
	want = append(want, "flush")
	if len(got) != len(want) {
		t.Fatalf("event count mismatch\n got: %v\nwant: %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d mismatch: got %q want %q\n full got: %v", i, got[i], want[i], got)
		}
	}
}

func TestRFCZero(t *testing.T) {
	assertEvents(t, parseHex(t, "00"), "uint64(0,none)")
}

func TestRFCNegativeOne(t *testing.T) {
	assertEvents(t, parseHex(t, "20"), "int64(-1,none)")
}

func TestRFCTextA(t *testing.T) {
	assertEvents(t, parseHex(t, "6161"), `string("a",none)`)
}

func TestRFCArrayOneTwoThree(t *testing.T) {
	assertEvents(t, parseHex(t, "83010203"),
		"begin_array(3,true,none,0)",
		"uint64(1,none)",
		"uint64(2,none)",
		"uint64(3,none)",
		"end_array",
	)
}

func TestRFCMapAB(t *testing.T) {
	assertEvents(t, parseHex(t, "A2616101616202"),
		"begin_object(2,true,none,0)",
		`key("a")`,
		"uint64(1,none)",
		`key("b")`,
		"uint64(2,none)",
		"end_object",
	)
}

func TestRFCTagTimestamp(t *testing.T) {
	assertEvents(t, parseHex(t, "C11A514B67B0"), "uint64(1363896240,timestamp)")
}

func TestRFCTagBigDec(t *testing.T) {
	assertEvents(t, parseHex(t, "C48221196AB3"), `string("273.15",bigdec)`)
}

func TestRFCIndefiniteText(t *testing.T) {
	assertEvents(t, parseHex(t, "7F61616162FF"), `string("ab",none)`)
}

func TestRFCStringref(t *testing.T) {
	assertEvents(t, parseHex(t, "D901008263616161D81900"),
		"begin_array(2,true,none,0)",
		`string("aaa",none)`,
		`string("aaa",none)`,
		"end_array",
	)
}
