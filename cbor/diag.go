package cbor

import (
	"encoding/hex"
	"math"
	"strconv"
)

// DiagVisitor renders the items it receives in an RFC 8949 §8-flavored
// diagnostic notation. Unlike the byte-oriented diagnostic renderer this
// package used to ship, it consumes Visitor events rather than re-walking
// raw bytes, so it sees values already through this package's semantic
// transforms (a bignum arrives as a decimal string, not as a tag+bytes
// pair) and annotates them with the semantic tag name rather than the
// original CBOR tag number.
type DiagVisitor struct {
	buf *ByteBuffer

	// needComma[i] is true once the current container at nesting level i
	// has emitted its first child; further children get a ", " prefix.
	needComma []bool

	// suppressSep is set after writing a map key's trailing ": " so the
	// value that follows does not also get a comma/separator.
	suppressSep bool
}

// NewDiagVisitor returns a ready-to-use DiagVisitor.
func NewDiagVisitor() *DiagVisitor {
	return &DiagVisitor{buf: GetByteBuffer()}
}

// String returns the diagnostic text accumulated so far.
func (d *DiagVisitor) String() string {
	return string(d.buf.Bytes())
}

// Close releases the pooled scratch buffer.
func (d *DiagVisitor) Close() {
	if d.buf != nil {
		PutByteBuffer(d.buf)
		d.buf = nil
	}
}

func (d *DiagVisitor) sep() {
	if d.suppressSep {
		d.suppressSep = false
		return
	}
	if n := len(d.needComma); n > 0 {
		if d.needComma[n-1] {
			d.buf.WriteString(", ")
		} else {
			d.needComma[n-1] = true
		}
	}
}

// tagAnnotate wraps write's output in "<name>(...)" when tag or itemTagValue carries
// semantic information, per the rendering convention described above.
func (d *DiagVisitor) tagAnnotate(write func(), tag Tag, itemTagValue uint64) {
	switch {
	case tag != TagNone:
		d.buf.WriteString(tag.String())
		d.buf.WriteString("(")
		write()
		d.buf.WriteString(")")
	case itemTagValue != 0:
		d.buf.WriteString(strconv.FormatUint(itemTagValue, 10))
		d.buf.WriteString("(")
		write()
		d.buf.WriteString(")")
	default:
		write()
	}
}

func (d *DiagVisitor) BeginArray(length int, hasLength bool, tag Tag, itemTagValue uint64) (bool, error) {
	d.sep()
	d.tagAnnotate(func() {
		if hasLength {
			d.buf.WriteString("[")
		} else {
			d.buf.WriteString("[_ ")
		}
		d.needComma = append(d.needComma, false)
	}, tag, itemTagValue)
	return true, nil
}

func (d *DiagVisitor) EndArray() (bool, error) {
	d.needComma = d.needComma[:len(d.needComma)-1]
	d.buf.WriteString("]")
	return true, nil
}

func (d *DiagVisitor) BeginObject(length int, hasLength bool, tag Tag, itemTagValue uint64) (bool, error) {
	d.sep()
	d.tagAnnotate(func() {
		if hasLength {
			d.buf.WriteString("{")
		} else {
			d.buf.WriteString("{_ ")
		}
		d.needComma = append(d.needComma, false)
	}, tag, itemTagValue)
	return true, nil
}

func (d *DiagVisitor) EndObject() (bool, error) {
	d.needComma = d.needComma[:len(d.needComma)-1]
	d.buf.WriteString("}")
	return true, nil
}

func (d *DiagVisitor) Key(text string) (bool, error) {
	d.sep()
	d.buf.WriteString(strconv.Quote(text))
	d.buf.WriteString(": ")
	d.suppressSep = true
	return true, nil
}

func (d *DiagVisitor) NullValue(tag Tag, itemTagValue uint64) (bool, error) {
	d.sep()
	if tag == TagUndefined {
		d.buf.WriteString("undefined")
	} else {
		d.buf.WriteString("null")
	}
	return true, nil
}

func (d *DiagVisitor) BoolValue(b bool, tag Tag, itemTagValue uint64) (bool, error) {
	d.sep()
	if b {
		d.buf.WriteString("true")
	} else {
		d.buf.WriteString("false")
	}
	return true, nil
}

func (d *DiagVisitor) Uint64Value(u uint64, tag Tag, itemTagValue uint64) (bool, error) {
	d.sep()
	d.tagAnnotate(func() { d.buf.WriteString(strconv.FormatUint(u, 10)) }, tag, itemTagValue)
	return true, nil
}

func (d *DiagVisitor) Int64Value(i int64, tag Tag, itemTagValue uint64) (bool, error) {
	d.sep()
	d.tagAnnotate(func() { d.buf.WriteString(strconv.FormatInt(i, 10)) }, tag, itemTagValue)
	return true, nil
}

func (d *DiagVisitor) HalfValue(bits uint16, tag Tag, itemTagValue uint64) (bool, error) {
	d.sep()
	f := halfBitsToFloat32(bits)
	d.buf.WriteString(formatFloat32Diag(f))
	return true, nil
}

func (d *DiagVisitor) DoubleValue(f float64, tag Tag, itemTagValue uint64) (bool, error) {
	d.sep()
	d.buf.WriteString(formatFloat64Diag(f))
	return true, nil
}

func (d *DiagVisitor) StringValue(s string, tag Tag, itemTagValue uint64) (bool, error) {
	d.sep()
	d.tagAnnotate(func() { d.buf.WriteString(strconv.Quote(s)) }, tag, itemTagValue)
	return true, nil
}

func (d *DiagVisitor) ByteStringValue(b []byte, tag Tag, itemTagValue uint64) (bool, error) {
	d.sep()
	d.tagAnnotate(func() { d.writeHex(b) }, tag, itemTagValue)
	return true, nil
}

func (d *DiagVisitor) writeHex(b []byte) {
	d.buf.WriteString("h'")
	dst := d.buf.Extend(hex.EncodedLen(len(b)))
	hex.Encode(dst, b)
	d.buf.WriteString("'")
}

func (d *DiagVisitor) TypedArrayValue(ta TypedArray, tag Tag) (bool, error) {
	d.sep()
	d.buf.WriteString(tag.String())
	if tag == TagNone {
		d.buf.WriteString("typed-array")
	}
	d.buf.WriteString("[")
	for i := 0; i < ta.Len(); i++ {
		if i > 0 {
			d.buf.WriteString(", ")
		}
		d.writeTypedArrayElement(ta, i)
	}
	d.buf.WriteString("]")
	return true, nil
}

func (d *DiagVisitor) writeTypedArrayElement(ta TypedArray, i int) {
	switch ta.Kind {
	case TAUint8:
		d.buf.WriteString(strconv.FormatUint(uint64(ta.Uint8[i]), 10))
	case TAUint16:
		d.buf.WriteString(strconv.FormatUint(uint64(ta.Uint16[i]), 10))
	case TAUint32:
		d.buf.WriteString(strconv.FormatUint(uint64(ta.Uint32[i]), 10))
	case TAUint64:
		d.buf.WriteString(strconv.FormatUint(ta.Uint64[i], 10))
	case TAInt8:
		d.buf.WriteString(strconv.FormatInt(int64(ta.Int8[i]), 10))
	case TAInt16:
		d.buf.WriteString(strconv.FormatInt(int64(ta.Int16[i]), 10))
	case TAInt32:
		d.buf.WriteString(strconv.FormatInt(int64(ta.Int32[i]), 10))
	case TAInt64:
		d.buf.WriteString(strconv.FormatInt(ta.Int64[i], 10))
	case TAHalf:
		d.buf.WriteString(formatFloat32Diag(ta.Half[i]))
	case TAFloat32:
		d.buf.WriteString(formatFloat32Diag(ta.Float32[i]))
	case TAFloat64:
		d.buf.WriteString(formatFloat64Diag(ta.Float64[i]))
	}
}

func (d *DiagVisitor) BeginMultiDim(shape []uint64, tag Tag) (bool, error) {
	d.sep()
	d.buf.WriteString(tag.String())
	d.buf.WriteString("(shape=[")
	for i, s := range shape {
		if i > 0 {
			d.buf.WriteString(", ")
		}
		d.buf.WriteString(strconv.FormatUint(s, 10))
	}
	d.buf.WriteString("], data=")
	d.needComma = append(d.needComma, false)
	d.suppressSep = true
	return true, nil
}

func (d *DiagVisitor) EndMultiDim() (bool, error) {
	d.needComma = d.needComma[:len(d.needComma)-1]
	d.buf.WriteString(")")
	return true, nil
}

func (d *DiagVisitor) Flush() error { return nil }

// formatFloat64Diag renders f the way RFC 8949's diagnostic-notation
// examples do: fixed-point for ordinary magnitudes, falling back to
// scientific notation rather than ever truncating precision.
func formatFloat64Diag(f float64) string {
	if math.IsInf(f, +1) {
		return "Infinity"
	}
	if math.IsInf(f, -1) {
		return "-Infinity"
	}
	if math.IsNaN(f) {
		return "NaN"
	}
	af := math.Abs(f)
	if af == 0 || af < 1e15 {
		return trimTrailingZerosDot(strconv.FormatFloat(f, 'f', -1, 64))
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatFloat32Diag(f float32) string {
	if math.IsInf(float64(f), +1) {
		return "Infinity"
	}
	if math.IsInf(float64(f), -1) {
		return "-Infinity"
	}
	if math.IsNaN(float64(f)) {
		return "NaN"
	}
	af := math.Abs(float64(f))
	if af == 0 || af < 1e15 {
		return trimTrailingZerosDot(strconv.FormatFloat(float64(f), 'f', -1, 32))
	}
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func trimTrailingZerosDot(s string) string {
	i := len(s)
	for i > 0 && s[i-1] == '0' {
		i--
	}
	if i > 0 && s[i-1] == '.' {
		i--
	}
	return s[:i]
}
