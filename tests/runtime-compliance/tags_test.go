package tests

import (
	"encoding/hex"
	"reflect"
	"testing"

	cbor "github.com/fernbridge-labs/cbor-stream/cbor"
)

func parseOne(t *testing.T, hexStr string) *recordingVisitor {
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
	return rv
}

// TestTypedArrayUint32LittleEndian covers tag 0x46 (uint32, little-endian).
func TestTypedArrayUint32LittleEndian(t *testing.T) {
	// tag(70) = 0xd8 0x46, byte string of 16 bytes = four little-endian u32s.
	rv := parseOne(t, "d8465001000000020000000300000004000000")
	if len(rv.events) != 2 {
		t.Fatalf("events: %v", rv.events)
	}
	want := "typed_array(kind=2,len=4,none)"
	if rv.events[0] != want {
		t.Fatalf("got %q want %q", rv.events[0], want)
	}
}

// TestTypedArrayEndiannessSwapPreservesElements encodes the same four
// uint16 elements as both big- and little-endian typed arrays (tags
// 0x41 and 0x45) and checks both decode to arrays of the same length
// and kind holding the same elements.
func TestTypedArrayEndiannessSwapPreservesElements(t *testing.T) {
	be := parseOne(t, "d841480001000200030004") // tag(65), 8-byte payload, BE u16
	le := parseOne(t, "d845480100020003000400") // tag(69), 8-byte payload, LE u16

	if len(be.events) != 2 || len(le.events) != 2 {
		t.Fatalf("unexpected event counts: be=%v le=%v", be.events, le.events)
	}
	if be.events[0] != le.events[0] {
		t.Fatalf("element counts/kinds differ: be=%q le=%q", be.events[0], le.events[0])
	}

	want := []uint16{1, 2, 3, 4}
	for _, h := range []string{"d841480001000200030004", "d845480100020003000400"} {
		c := &typedArrayCapture{}
		p := cbor.NewParser(cbor.NewSliceSource(hexBytes(t, h)), cbor.NewConfig())
		err := p.Parse(c)
		p.Close()
		if err != nil {
			t.Fatalf("parse %q: %v", h, err)
		}
		if !reflect.DeepEqual(c.ta.Uint16, want) {
			t.Fatalf("%s: got elements %v want %v", h, c.ta.Uint16, want)
		}
	}
}

// typedArrayCapture keeps the last typed array the parser hands it.
type typedArrayCapture struct {
	sinkVisitor
	ta cbor.TypedArray
}

func (c *typedArrayCapture) TypedArrayValue(ta cbor.TypedArray, tag cbor.Tag) (bool, error) {
	c.ta = ta
	return true, nil
}

// TestTypedArrayClampedU8Tag checks the clamped-u8 typed array (tag
// 0x44) is surfaced with the Clamped tag rather than None.
func TestTypedArrayClampedU8Tag(t *testing.T) {
	rv := parseOne(t, "d84443010203")
	if len(rv.events) != 2 {
		t.Fatalf("events: %v", rv.events)
	}
	if rv.events[0] != "typed_array(kind=0,len=3,clamped)" {
		t.Fatalf("got %q", rv.events[0])
	}
}

// TestTypedArrayMisalignedPayloadFails checks that a byte string whose
// length is not a multiple of the element width is rejected.
func TestTypedArrayMisalignedPayloadFails(t *testing.T) {
	// tag(70)=u32 LE, 3-byte payload: not a multiple of the 4-byte width.
	err := parseAll(hexBytes(t, "d84643010203"))
	if err == nil {
		t.Fatal("expected an error for misaligned typed array payload")
	}
	if got := errKind(t, err); got != cbor.KindInvalidTypedArray {
		t.Fatalf("got error kind %v, want invalid-typed-array", got)
	}
}

func hexBytes(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

// TestBigDecPrettyPrintThresholds covers jsoncons's plain-vs-scientific
// rendering threshold (decimal exponent in [-4,17] renders plain).
func TestBigDecPrettyPrintThresholds(t *testing.T) {
	cases := []struct {
		hex  string
		want string
	}{
		{"c48221196ab3", "273.15"},         // exponent -2, mantissa 27315
		{"c4820003", "3"},                  // exponent 0, mantissa 3
		{"c4822301", "0.0001"},             // decimal exponent -4: plain
		{"c4822401", "1e-5"},               // decimal exponent -5: scientific
		{"c4821101", "100000000000000000"}, // decimal exponent 17: plain
		{"c4821201", "1e+18"},              // decimal exponent 18: scientific
	}
	for _, tc := range cases {
		rv := parseOne(t, tc.hex)
		got := rv.events[0]
		want := `string("` + tc.want + `",bigdec)`
		if got != want {
			t.Fatalf("%s: got %q want %q", tc.hex, got, want)
		}
	}
}

// TestBigFloatRendersHexMantissa checks tag 5 (bigfloat) renders as a
// hex-mantissa/decimal-exponent string.
func TestBigFloatRendersHexMantissa(t *testing.T) {
	// tag(5), array(2): exponent=1, mantissa=3 -> 3 * 2^1 = 0x3p1
	rv := parseOne(t, "c5820103")
	want := `string("0x3p1",bigfloat)`
	if rv.events[0] != want {
		t.Fatalf("got %q want %q", rv.events[0], want)
	}
}

// TestBigDecMalformedArrayLengthFails checks the array must have
// exactly two elements.
func TestBigDecMalformedArrayLengthFails(t *testing.T) {
	err := parseAll(hexBytes(t, "c48100")) // tag(4), array(1)
	if err == nil {
		t.Fatal("expected an error")
	}
	if got := errKind(t, err); got != cbor.KindInvalidBigDec {
		t.Fatalf("got error kind %v, want invalid-bigdec", got)
	}
}

// TestStringrefResolvesRegisteredEntry checks a stringref index resolves
// to the string registered at that index within the active namespace.
func TestStringrefResolvesRegisteredEntry(t *testing.T) {
	rv := parseOne(t, "d901008263616161d81900")
	if len(rv.events) != 5 { // begin_array, string, string, end_array, flush
		t.Fatalf("events: %v", rv.events)
	}
	if rv.events[1] != rv.events[2] {
		t.Fatalf("stringref did not resolve to the same text: %q vs %q", rv.events[1], rv.events[2])
	}
}

// TestStringrefOutOfBoundsFails checks referencing an index beyond the
// active dictionary's size fails rather than silently returning junk.
func TestStringrefOutOfBoundsFails(t *testing.T) {
	// tag(256) namespace, array(2): one string "aaa", then stringref(5).
	err := parseAll(hexBytes(t, "d901008263616161d81905"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if got := errKind(t, err); got != cbor.KindStringrefTooLarge {
		t.Fatalf("got error kind %v, want stringref-too-large", got)
	}
}

// TestStringrefSubThresholdStringsNotRegistered checks a string shorter
// than the minimum-length threshold is never added to the dictionary,
// so a later reference to "the first entry" after only short strings
// were seen fails rather than resolving to one of them.
func TestStringrefSubThresholdStringsNotRegistered(t *testing.T) {
	// namespace, array(2): "ab" (2 bytes, below the 3-byte threshold for
	// a dictionary this small), then stringref(0).
	err := parseAll(hexBytes(t, "d9010082626162d81900"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if got := errKind(t, err); got != cbor.KindStringrefTooLarge {
		t.Fatalf("got error kind %v, want stringref-too-large", got)
	}
}

// TestInvalidUTF8TextStringRejected checks malformed UTF-8 bytes inside
// a text string are rejected rather than passed through.
func TestInvalidUTF8TextStringRejected(t *testing.T) {
	// text string of length 1 containing the invalid byte 0xff.
	err := parseAll(hexBytes(t, "61ff"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if got := errKind(t, err); got != cbor.KindInvalidUTF8TextString {
		t.Fatalf("got error kind %v, want invalid-utf8-text-string", got)
	}
}

// TestEpochTimestampTagSurfaced checks tag(1) over an integer is
// surfaced as a Uint64Value/Int64Value tagged Timestamp.
func TestEpochTimestampTagSurfaced(t *testing.T) {
	rv := parseOne(t, "c11a514b67b0")
	if rv.events[0] != "uint64(1363896240,timestamp)" {
		t.Fatalf("got %q", rv.events[0])
	}
}

// TestBase16ByteStringPassthrough checks tag 23 (expected base16
// conversion) passes the raw bytes through unmodified, tagged.
func TestBase16ByteStringPassthrough(t *testing.T) {
	rv := parseOne(t, "d7434142ff") // ff is not 2-digit-valid base16 but bytes pass through raw
	if rv.events[0] != "bytes(4142ff,base16)" {
		t.Fatalf("got %q", rv.events[0])
	}
}
