package cbor

import "strconv"

// ErrorKind enumerates the stable, externally observable failure modes of
// the parser (spec §7). Callers that need to branch on failure mode should
// switch on ErrorKind rather than compare error values, since every error
// that originates inside the parser is a *ParseError wrapping one of
// these. Errors returned by a Visitor are passed through unchanged.
type ErrorKind uint8

const (
	KindUnexpectedEOF ErrorKind = iota
	KindInvalidUTF8TextString
	KindUnknownType
	KindNumberTooLarge
	KindMaxNestingDepthExceeded
	KindInvalidBigDec
	KindInvalidBigFloat
	KindStringrefTooLarge
	KindUnexpectedBreak
	KindIllegalChunkType
	// KindInvalidTypedArray is an addition beyond spec §7's ten kinds: a
	// typed-array byte string (tag 0x40-0x56) whose length is not a
	// multiple of its declared element width. Reserved tag bytes in that
	// range are not typed arrays and pass through as plain byte strings.
	// See SPEC_FULL.md / DESIGN.md for why this needed its own kind
	// rather than being folded into one of the ten.
	KindInvalidTypedArray
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnexpectedEOF:
		return "unexpected-eof"
	case KindInvalidUTF8TextString:
		return "invalid-utf8-text-string"
	case KindUnknownType:
		return "unknown-type"
	case KindNumberTooLarge:
		return "number-too-large"
	case KindMaxNestingDepthExceeded:
		return "max-nesting-depth-exceeded"
	case KindInvalidBigDec:
		return "invalid-bigdec"
	case KindInvalidBigFloat:
		return "invalid-bigfloat"
	case KindStringrefTooLarge:
		return "stringref-too-large"
	case KindUnexpectedBreak:
		return "unexpected-break"
	case KindIllegalChunkType:
		return "illegal-chunk-type"
	case KindInvalidTypedArray:
		return "invalid-typed-array"
	default:
		return "unknown-error-kind"
	}
}

// Error is the interface satisfied by errors that originate from this
// package.
type Error interface {
	error

	// Resumable reports whether the stream might still be decodable past
	// this point. The parser never attempts partial recovery (spec §4.10),
	// so every ParseError this package produces is non-resumable; the
	// method is kept for parity with errors returned by a Visitor, which
	// may mark its own errors resumable.
	Resumable() bool
}

// ParseError is returned by Parser.Parse and by the standalone byte-level
// helpers (ValidateWellFormed, the stringref/bignum/typed-array decoders)
// for every failure that originates inside this package.
type ParseError struct {
	Kind   ErrorKind
	Offset int64
	Detail string
	cause  error
}

func newParseError(kind ErrorKind, offset int64, detail string) *ParseError {
	return &ParseError{Kind: kind, Offset: offset, Detail: detail}
}

func (e *ParseError) Error() string {
	out := "cbor: " + e.Kind.String()
	if e.Detail != "" {
		out += ": " + e.Detail
	}
	out += " at offset " + strconv.FormatInt(e.Offset, 10)
	return out
}

// Resumable always reports false: spec §4.10 mandates no partial recovery
// ("the caller discards the parser on error").
func (e *ParseError) Resumable() bool { return false }

// Unwrap returns the underlying cause, if any (e.g. the exponent or
// mantissa decode error behind an invalid-bigdec or invalid-bigfloat).
func (e *ParseError) Unwrap() error { return e.cause }

func (e *ParseError) withCause(cause error) *ParseError {
	o := *e
	o.cause = cause
	return &o
}
