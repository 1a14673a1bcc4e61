package cbor

// CBOR major types (3 bits), RFC 8949 §3.
const (
	majorTypeUint   = 0 // unsigned integer
	majorTypeNegInt = 1 // negative integer
	majorTypeBytes  = 2 // byte string
	majorTypeText   = 3 // text string (UTF-8)
	majorTypeArray  = 4 // array
	majorTypeMap    = 5 // map
	majorTypeTag    = 6 // semantic tag
	majorTypeSimple = 7 // float, simple values, break
)

// Additional info values (5 bits).
const (
	addInfoDirect     = 23 // max direct value
	addInfoUint8      = 24 // 1-byte uint8 follows
	addInfoUint16     = 25 // 2-byte uint16 follows
	addInfoUint32     = 26 // 4-byte uint32 follows
	addInfoUint64     = 27 // 8-byte uint64 follows
	addInfoIndefinite = 31 // indefinite length (for bytes, text, array, map)
)

// Simple values in major type 7.
const (
	simpleFalse     = 20
	simpleTrue      = 21
	simpleNull      = 22
	simpleUndefined = 23
	simpleFloat16   = 25
	simpleFloat32   = 26
	simpleFloat64   = 27
	simpleBreak     = 31
)

// Semantic tags recognized by the tag collector (spec §4.3).
const (
	tagDateTimeString  = 0   // RFC3339 date/time string
	tagEpochTimestamp  = 1   // Unix timestamp (int or float)
	tagPosBignum       = 2   // positive bignum
	tagNegBignum       = 3   // negative bignum
	tagDecimalFraction = 4   // [exponent, mantissa]
	tagBigfloat        = 5   // [exponent, mantissa], base-2
	tagBase64URLBytes  = 21  // byte string, expected base64url rendering
	tagBase64Bytes     = 22  // byte string, expected base64 rendering
	tagBase16Bytes     = 23  // byte string, expected base16 rendering
	tagStringref       = 25  // reference into the current stringref dictionary
	tagURI             = 32  // text string, URI
	tagBase64URLText   = 33  // text string, already base64url
	tagBase64Text      = 34  // text string, already base64
	tagRowMajorArray   = 40  // multi-dimensional array, row-major
	tagStringrefNS     = 256 // stringref namespace for the following container
	tagColMajorArray   = 1040
)

// Typed-array tag range, RFC 8746.
const (
	tagTypedArrayLo = 0x40
	tagTypedArrayHi = 0x56
)

// ValidateUTF8OnDecode controls whether text strings are checked for
// well-formed UTF-8 during decode. Enabled by default for spec
// compliance; callers that already trust their input can disable it on
// hot paths.
var ValidateUTF8OnDecode = true

// UnsafeStringDecode controls whether decoded text is converted
// zero-copy via UnsafeString instead of allocating a new string.
// Disabled by default.
var UnsafeStringDecode = false

// getMajorType extracts the major type from a CBOR initial byte.
func getMajorType(b byte) uint8 {
	return (b >> 5) & 0x07
}

// getAddInfo extracts the additional info from a CBOR initial byte.
func getAddInfo(b byte) uint8 {
	return b & 0x1f
}
