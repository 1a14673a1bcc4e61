package cbor

// Tag is the closed set of semantic annotations the parser can attach to a
// value it hands to a Visitor (spec §6).
type Tag uint8

const (
	TagNone Tag = iota
	TagDateTime
	TagTimestamp
	TagURI
	TagBase64
	TagBase64URL
	TagBase16
	TagBigInt
	TagBigDec
	TagBigFloat
	TagClamped
	TagMultiDimRowMajor
	TagMultiDimColumnMajor
	TagUndefined
)

func (t Tag) String() string {
	switch t {
	case TagNone:
		return "none"
	case TagDateTime:
		return "datetime"
	case TagTimestamp:
		return "timestamp"
	case TagURI:
		return "uri"
	case TagBase64:
		return "base64"
	case TagBase64URL:
		return "base64url"
	case TagBase16:
		return "base16"
	case TagBigInt:
		return "bigint"
	case TagBigDec:
		return "bigdec"
	case TagBigFloat:
		return "bigfloat"
	case TagClamped:
		return "clamped"
	case TagMultiDimRowMajor:
		return "multi_dim_row_major"
	case TagMultiDimColumnMajor:
		return "multi_dim_column_major"
	case TagUndefined:
		return "undefined"
	default:
		return "none"
	}
}

// TypedArrayKind enumerates the element type of a decoded typed array
// (spec §4.7, RFC 8746). Exactly one of TypedArray's data fields is
// populated, matching Kind.
type TypedArrayKind uint8

const (
	TAUint8 TypedArrayKind = iota
	TAUint16
	TAUint32
	TAUint64
	TAInt8
	TAInt16
	TAInt32
	TAInt64
	TAHalf
	TAFloat32
	TAFloat64
)

// TypedArray carries the decoded elements of a tag 0x40-0x56 byte string.
// Per spec §9's open question, half-precision typed arrays are converted
// to float32 eagerly (the array is a "typed-array sink"); scalar half
// values reach the visitor as raw bits through HalfValue instead.
type TypedArray struct {
	Kind    TypedArrayKind
	Uint8   []uint8
	Uint16  []uint16
	Uint32  []uint32
	Uint64  []uint64
	Int8    []int8
	Int16   []int16
	Int32   []int32
	Int64   []int64
	Half    []float32
	Float32 []float32
	Float64 []float64
}

// Len returns the element count regardless of Kind.
func (t TypedArray) Len() int {
	switch t.Kind {
	case TAUint8:
		return len(t.Uint8)
	case TAUint16:
		return len(t.Uint16)
	case TAUint32:
		return len(t.Uint32)
	case TAUint64:
		return len(t.Uint64)
	case TAInt8:
		return len(t.Int8)
	case TAInt16:
		return len(t.Int16)
	case TAInt32:
		return len(t.Int32)
	case TAInt64:
		return len(t.Int64)
	case TAHalf:
		return len(t.Half)
	case TAFloat32:
		return len(t.Float32)
	case TAFloat64:
		return len(t.Float64)
	default:
		return 0
	}
}

// Visitor is the downstream sink the parser drives (spec §6). Every
// callback returns a continue flag; returning (false, nil) asks the parser
// to stop cooperatively (spec §5), while returning a non-nil error fails
// the parse with that error surfaced unchanged (spec §4.10).
//
// ItemTagValue carries the raw number of the last tag preceding a value,
// other than the stringref tags 25 and 256, so that tags outside the
// classifying set of spec §4.3 are surfaced rather than silently dropped
// (the Open Question in spec §9, resolved in SPEC_FULL.md). It is also
// passed alongside a classifying Tag (e.g. 1 with TagTimestamp, 32 with
// TagURI). It is zero when no tag preceded the value, when the tag was 0,
// and for bignum, base64url/base64/base16 byte strings and
// bigdec/bigfloat strings.
type Visitor interface {
	BeginArray(length int, hasLength bool, tag Tag, itemTagValue uint64) (bool, error)
	EndArray() (bool, error)

	BeginObject(length int, hasLength bool, tag Tag, itemTagValue uint64) (bool, error)
	EndObject() (bool, error)

	Key(text string) (bool, error)

	// NullValue is called for both the "null" and "undefined" simple
	// values (major 7, info 22 and 23); they are distinguished by tag
	// (TagNone vs TagUndefined), per the closed tag enumeration in §6.
	NullValue(tag Tag, itemTagValue uint64) (bool, error)
	BoolValue(b bool, tag Tag, itemTagValue uint64) (bool, error)

	Uint64Value(u uint64, tag Tag, itemTagValue uint64) (bool, error)
	Int64Value(i int64, tag Tag, itemTagValue uint64) (bool, error)

	// HalfValue carries the raw 16 bits of a half-precision float (major
	// 7, info 25) unconverted; see spec §9's open question. Single- and
	// double-precision floats (info 26/27) both widen to float64 and are
	// delivered through DoubleValue.
	HalfValue(bits uint16, tag Tag, itemTagValue uint64) (bool, error)
	DoubleValue(f float64, tag Tag, itemTagValue uint64) (bool, error)

	StringValue(s string, tag Tag, itemTagValue uint64) (bool, error)
	ByteStringValue(b []byte, tag Tag, itemTagValue uint64) (bool, error)

	TypedArrayValue(ta TypedArray, tag Tag) (bool, error)

	BeginMultiDim(shape []uint64, tag Tag) (bool, error)
	EndMultiDim() (bool, error)

	// Flush is called once after the root item completes successfully.
	Flush() error
}
