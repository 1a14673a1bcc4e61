package tests

import (
	"fmt"

	cbor "github.com/fernbridge-labs/cbor-stream/cbor"
)

// recordingVisitor implements cbor.Visitor by appending a one-line
// description of each callback it receives, so a test can assert on the
// exact event sequence a document produces.
type recordingVisitor struct {
	events []string
}

func (r *recordingVisitor) record(format string, args ...any) (bool, error) {
	r.events = append(r.events, fmt.Sprintf(format, args...))
	return true, nil
}

func (r *recordingVisitor) BeginArray(length int, hasLength bool, tag cbor.Tag, itemTagValue uint64) (bool, error) {
	return r.record("begin_array(%d,%v,%s,%d)", length, hasLength, tag, itemTagValue)
}
func (r *recordingVisitor) EndArray() (bool, error) { return r.record("end_array") }

func (r *recordingVisitor) BeginObject(length int, hasLength bool, tag cbor.Tag, itemTagValue uint64) (bool, error) {
	return r.record("begin_object(%d,%v,%s,%d)", length, hasLength, tag, itemTagValue)
}
func (r *recordingVisitor) EndObject() (bool, error) { return r.record("end_object") }

func (r *recordingVisitor) Key(text string) (bool, error) { return r.record("key(%q)", text) }

func (r *recordingVisitor) NullValue(tag cbor.Tag, itemTagValue uint64) (bool, error) {
	return r.record("null(%s)", tag)
}
func (r *recordingVisitor) BoolValue(b bool, tag cbor.Tag, itemTagValue uint64) (bool, error) {
	return r.record("bool(%v,%s)", b, tag)
}
func (r *recordingVisitor) Uint64Value(u uint64, tag cbor.Tag, itemTagValue uint64) (bool, error) {
	return r.record("uint64(%d,%s)", u, tag)
}
func (r *recordingVisitor) Int64Value(i int64, tag cbor.Tag, itemTagValue uint64) (bool, error) {
	return r.record("int64(%d,%s)", i, tag)
}
func (r *recordingVisitor) HalfValue(bits uint16, tag cbor.Tag, itemTagValue uint64) (bool, error) {
	return r.record("half(%d,%s)", bits, tag)
}
func (r *recordingVisitor) DoubleValue(f float64, tag cbor.Tag, itemTagValue uint64) (bool, error) {
	return r.record("double(%v,%s)", f, tag)
}
func (r *recordingVisitor) StringValue(s string, tag cbor.Tag, itemTagValue uint64) (bool, error) {
	return r.record("string(%q,%s)", s, tag)
}
func (r *recordingVisitor) ByteStringValue(b []byte, tag cbor.Tag, itemTagValue uint64) (bool, error) {
	return r.record("bytes(%x,%s)", b, tag)
}
func (r *recordingVisitor) TypedArrayValue(ta cbor.TypedArray, tag cbor.Tag) (bool, error) {
	return r.record("typed_array(kind=%d,len=%d,%s)", ta.Kind, ta.Len(), tag)
}
func (r *recordingVisitor) BeginMultiDim(shape []uint64, tag cbor.Tag) (bool, error) {
	return r.record("begin_multi_dim(%v,%s)", shape, tag)
}
func (r *recordingVisitor) EndMultiDim() (bool, error) { return r.record("end_multi_dim") }

func (r *recordingVisitor) Flush() error {
	r.events = append(r.events, "flush")
	return nil
}
