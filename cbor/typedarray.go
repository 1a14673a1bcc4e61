package cbor

import (
	"encoding/binary"
	"math"
)

// typedArrayLayout describes how to decode a tag 0x40-0x56 byte string
// (spec §4.7, RFC 8746).
type typedArrayLayout struct {
	kind     TypedArrayKind
	width    int
	little   bool
	clamped  bool
}

// typedArrayLayouts maps every recognized tag byte in the 0x40-0x56
// range to its layout. Tags absent from this table (the "reserved"
// entries in RFC 8746's table, e.g. 0x4c) decode as a plain byte string
// with no tag, per spec §4.7's "otherwise" row (see isTypedArrayTag).
var typedArrayLayouts = map[uint64]typedArrayLayout{
	0x40: {kind: TAUint8, width: 1},
	0x44: {kind: TAUint8, width: 1, clamped: true},
	0x41: {kind: TAUint16, width: 2, little: false},
	0x45: {kind: TAUint16, width: 2, little: true},
	0x42: {kind: TAUint32, width: 4, little: false},
	0x46: {kind: TAUint32, width: 4, little: true},
	0x43: {kind: TAUint64, width: 8, little: false},
	0x47: {kind: TAUint64, width: 8, little: true},
	0x48: {kind: TAInt8, width: 1},
	0x49: {kind: TAInt16, width: 2, little: false},
	0x4d: {kind: TAInt16, width: 2, little: true},
	0x4a: {kind: TAInt32, width: 4, little: false},
	0x4e: {kind: TAInt32, width: 4, little: true},
	0x4b: {kind: TAInt64, width: 8, little: false},
	0x4f: {kind: TAInt64, width: 8, little: true},
	0x50: {kind: TAHalf, width: 2, little: false},
	0x54: {kind: TAHalf, width: 2, little: true},
	0x51: {kind: TAFloat32, width: 4, little: false},
	0x55: {kind: TAFloat32, width: 4, little: true},
	0x52: {kind: TAFloat64, width: 8, little: false},
	0x56: {kind: TAFloat64, width: 8, little: true},
}

// decodeTypedArray interprets payload according to the layout registered
// for tag. The parser only calls it once isTypedArrayTag has confirmed tag
// is in typedArrayLayouts; a tag absent from the table is rejected here.
func decodeTypedArray(tag uint64, payload []byte, offset int64) (TypedArray, error) {
	layout, ok := typedArrayLayouts[tag]
	if !ok {
		return TypedArray{}, newParseError(KindInvalidTypedArray, offset, "reserved typed-array tag")
	}
	if layout.width > 1 && len(payload)%layout.width != 0 {
		return TypedArray{}, newParseError(KindInvalidTypedArray, offset, "payload length not a multiple of element width")
	}
	n := len(payload) / layout.width
	order := binary.ByteOrder(binary.BigEndian)
	if layout.little {
		order = binary.LittleEndian
	}

	ta := TypedArray{Kind: layout.kind}
	switch layout.kind {
	case TAUint8:
		out := make([]uint8, n)
		copy(out, payload)
		ta.Uint8 = out
	case TAInt8:
		out := make([]int8, n)
		for i := range out {
			out[i] = int8(payload[i])
		}
		ta.Int8 = out
	case TAUint16:
		out := make([]uint16, n)
		for i := range out {
			out[i] = order.Uint16(payload[i*2:])
		}
		ta.Uint16 = out
	case TAInt16:
		out := make([]int16, n)
		for i := range out {
			out[i] = int16(order.Uint16(payload[i*2:]))
		}
		ta.Int16 = out
	case TAUint32:
		out := make([]uint32, n)
		for i := range out {
			out[i] = order.Uint32(payload[i*4:])
		}
		ta.Uint32 = out
	case TAInt32:
		out := make([]int32, n)
		for i := range out {
			out[i] = int32(order.Uint32(payload[i*4:]))
		}
		ta.Int32 = out
	case TAUint64:
		out := make([]uint64, n)
		for i := range out {
			out[i] = order.Uint64(payload[i*8:])
		}
		ta.Uint64 = out
	case TAInt64:
		out := make([]int64, n)
		for i := range out {
			out[i] = int64(order.Uint64(payload[i*8:]))
		}
		ta.Int64 = out
	case TAHalf:
		// Spec §9: a typed-array sink converts half-precision elements
		// in place rather than leaving raw bits for the caller.
		out := make([]float32, n)
		for i := range out {
			out[i] = halfBitsToFloat32(order.Uint16(payload[i*2:]))
		}
		ta.Half = out
	case TAFloat32:
		out := make([]float32, n)
		for i := range out {
			out[i] = math.Float32frombits(order.Uint32(payload[i*4:]))
		}
		ta.Float32 = out
	case TAFloat64:
		out := make([]float64, n)
		for i := range out {
			out[i] = math.Float64frombits(order.Uint64(payload[i*8:]))
		}
		ta.Float64 = out
	}

	_ = layout.clamped // clamping affects encoding only; decoding is a plain widen
	return ta, nil
}

// typedArrayTag reports the Tag annotation RFC 8746 assigns the u8
// "clamped" variant (0x44); every other typed-array tag carries TagNone.
func typedArrayTag(tag uint64) Tag {
	if tag == 0x44 {
		return TagClamped
	}
	return TagNone
}
