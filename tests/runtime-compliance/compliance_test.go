package tests

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	cbor "github.com/fernbridge-labs/cbor-stream/cbor"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

func errKind(t *testing.T, err error) cbor.ErrorKind {
	t.Helper()
	var pe *cbor.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *cbor.ParseError, got %T: %v", err, err)
	}
	return pe.Kind
}

// TestNestingBoundRejectsDeepArrays checks that structural depth beyond
// the configured limit fails with max-nesting-depth-exceeded rather than
// overflowing the host stack.
func TestNestingBoundRejectsDeepArrays(t *testing.T) {
	var buf bytes.Buffer
	for i := 0; i < 10000; i++ {
		buf.WriteByte(0x81) // array of 1
	}
	buf.WriteByte(0x00) // innermost element

	err := parseAll(buf.Bytes())
	if err == nil {
		t.Fatal("expected an error for a deeply nested array")
	}
	if got := errKind(t, err); got != cbor.KindMaxNestingDepthExceeded {
		t.Fatalf("got error kind %v, want max-nesting-depth-exceeded", got)
	}
}

// TestNestingBoundHonorsConfig checks SetMaxNestingDepth actually moves
// the ceiling rather than being ignored.
func TestNestingBoundHonorsConfig(t *testing.T) {
	var buf bytes.Buffer
	for i := 0; i < 5; i++ {
		buf.WriteByte(0x81)
	}
	buf.WriteByte(0x00)

	cfg := cbor.NewConfig()
	cfg.SetMaxNestingDepth(3)
	p := cbor.NewParser(cbor.NewSliceSource(buf.Bytes()), cfg)
	defer p.Close()

	err := p.Parse(sinkVisitor{})
	if err == nil {
		t.Fatal("expected an error")
	}
	if got := errKind(t, err); got != cbor.KindMaxNestingDepthExceeded {
		t.Fatalf("got error kind %v, want max-nesting-depth-exceeded", got)
	}
}

// TestPrefixMonotonicity checks that truncating a well-formed document
// produces unexpected-eof at every proper prefix, so truncation never
// masquerades as a different structural error.
func TestPrefixMonotonicity(t *testing.T) {
	full := mustHex(t, "a261610161623820") // {"a":1,"b":-33}

	for cut := 1; cut < len(full); cut++ {
		err := parseAll(full[:cut])
		if err == nil {
			t.Fatalf("prefix of length %d unexpectedly parsed without error", cut)
		}
		if got := errKind(t, err); got != cbor.KindUnexpectedEOF {
			t.Fatalf("prefix of length %d: got error kind %v, want unexpected-eof", cut, got)
		}
	}

	if err := parseAll(full); err != nil {
		t.Fatalf("full document failed to parse: %v", err)
	}
}

// TestIndefiniteDefiniteEquivalence checks that an array encoded both
// ways produces the same event sequence (aside from the begin header's
// hasLength flag).
func TestIndefiniteDefiniteEquivalence(t *testing.T) {
	definite := mustHex(t, "83010203")
	indefinite := mustHex(t, "9f010203ff")

	p1 := cbor.NewParser(cbor.NewSliceSource(definite), cbor.NewConfig())
	defer p1.Close()
	rv1 := &recordingVisitor{}
	if err := p1.Parse(rv1); err != nil {
		t.Fatalf("definite parse: %v", err)
	}

	p2 := cbor.NewParser(cbor.NewSliceSource(indefinite), cbor.NewConfig())
	defer p2.Close()
	rv2 := &recordingVisitor{}
	if err := p2.Parse(rv2); err != nil {
		t.Fatalf("indefinite parse: %v", err)
	}

	if len(rv1.events) != len(rv2.events) {
		t.Fatalf("event count differs: definite=%v indefinite=%v", rv1.events, rv2.events)
	}
	for i := 1; i < len(rv1.events); i++ {
		if rv1.events[i] != rv2.events[i] {
			t.Fatalf("event %d differs: %q vs %q", i, rv1.events[i], rv2.events[i])
		}
	}
}

// TestReservedAdditionalInfoRejected checks that additional-info values
// 28-30 are rejected everywhere they can appear, not just in arrays.
func TestReservedAdditionalInfoRejected(t *testing.T) {
	for _, tc := range []struct {
		name string
		hex  string
	}{
		{"uint", "1c"},
		{"negint", "3c"},
		{"bytes", "5c"},
		{"text", "7c"},
		{"array", "9c"},
		{"map", "bc"},
		{"tag", "dc"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := parseAll(mustHex(t, tc.hex))
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := errKind(t, err); got != cbor.KindUnknownType {
				t.Fatalf("got error kind %v, want unknown-type", got)
			}
		})
	}
}

func TestValidateWellFormedAcceptsGoodInput(t *testing.T) {
	if err := cbor.ValidateWellFormedBytes(mustHex(t, "a26161016162616131")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateWellFormedRejectsTruncatedInput(t *testing.T) {
	err := cbor.ValidateWellFormedBytes(mustHex(t, "a1"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if got := errKind(t, err); got != cbor.KindUnexpectedEOF {
		t.Fatalf("got error kind %v, want unexpected-eof", got)
	}
}
