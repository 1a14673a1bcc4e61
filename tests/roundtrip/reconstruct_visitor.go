package roundtrip

import (
	"fmt"

	cbor "github.com/fernbridge-labs/cbor-stream/cbor"
)

// reconstructVisitor rebuilds a generic Go value (nil, bool, uint64,
// int64, float64, string, []byte, []any, map[string]any) from a stream
// of Visitor callbacks, so a decoded document can be compared against
// the value that was marshaled into it by an independent encoder.
type reconstructVisitor struct {
	root     any
	haveRoot bool
	stack    []frame
}

type frame struct {
	isMap   bool
	arr     []any
	m       map[string]any
	nextKey string
	haveKey bool
}

func (r *reconstructVisitor) place(v any) (bool, error) {
	if len(r.stack) == 0 {
		if r.haveRoot {
			return false, fmt.Errorf("reconstructVisitor: multiple root values")
		}
		r.root = v
		r.haveRoot = true
		return true, nil
	}
	top := &r.stack[len(r.stack)-1]
	if top.isMap {
		if !top.haveKey {
			return false, fmt.Errorf("reconstructVisitor: map value without a key")
		}
		top.m[top.nextKey] = v
		top.haveKey = false
	} else {
		top.arr = append(top.arr, v)
	}
	return true, nil
}

func (r *reconstructVisitor) BeginArray(length int, hasLength bool, tag cbor.Tag, itemTagValue uint64) (bool, error) {
	capacity := 0
	if hasLength {
		capacity = length
	}
	r.stack = append(r.stack, frame{arr: make([]any, 0, capacity)})
	return true, nil
}

func (r *reconstructVisitor) EndArray() (bool, error) {
	f := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	return r.place(f.arr)
}

func (r *reconstructVisitor) BeginObject(length int, hasLength bool, tag cbor.Tag, itemTagValue uint64) (bool, error) {
	r.stack = append(r.stack, frame{isMap: true, m: make(map[string]any)})
	return true, nil
}

func (r *reconstructVisitor) EndObject() (bool, error) {
	f := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	return r.place(f.m)
}

func (r *reconstructVisitor) Key(text string) (bool, error) {
	top := &r.stack[len(r.stack)-1]
	top.nextKey = text
	top.haveKey = true
	return true, nil
}

func (r *reconstructVisitor) NullValue(tag cbor.Tag, itemTagValue uint64) (bool, error) {
	return r.place(nil)
}
func (r *reconstructVisitor) BoolValue(b bool, tag cbor.Tag, itemTagValue uint64) (bool, error) {
	return r.place(b)
}
func (r *reconstructVisitor) Uint64Value(u uint64, tag cbor.Tag, itemTagValue uint64) (bool, error) {
	return r.place(u)
}
func (r *reconstructVisitor) Int64Value(i int64, tag cbor.Tag, itemTagValue uint64) (bool, error) {
	return r.place(i)
}
func (r *reconstructVisitor) HalfValue(bits uint16, tag cbor.Tag, itemTagValue uint64) (bool, error) {
	return r.place(bits)
}
func (r *reconstructVisitor) DoubleValue(f float64, tag cbor.Tag, itemTagValue uint64) (bool, error) {
	return r.place(f)
}
func (r *reconstructVisitor) StringValue(s string, tag cbor.Tag, itemTagValue uint64) (bool, error) {
	return r.place(s)
}
func (r *reconstructVisitor) ByteStringValue(b []byte, tag cbor.Tag, itemTagValue uint64) (bool, error) {
	cp := make([]byte, len(b))
	copy(cp, b)
	return r.place(cp)
}
func (r *reconstructVisitor) TypedArrayValue(ta cbor.TypedArray, tag cbor.Tag) (bool, error) {
	return r.place(ta)
}
func (r *reconstructVisitor) BeginMultiDim(shape []uint64, tag cbor.Tag) (bool, error) {
	r.stack = append(r.stack, frame{arr: make([]any, 0, 1)})
	return true, nil
}
func (r *reconstructVisitor) EndMultiDim() (bool, error) {
	f := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	return r.place(f.arr)
}
func (r *reconstructVisitor) Flush() error { return nil }
