package tests

import cbor "github.com/fernbridge-labs/cbor-stream/cbor"

// sinkVisitor implements cbor.Visitor by discarding every event and
// always asking the parser to continue. It exists to drive the parser
// to completion (or to its first error) without caring about the
// decoded content, for fuzzing and for compliance checks that only
// care whether parsing succeeds or which error kind it produces.
type sinkVisitor struct{}

func (sinkVisitor) BeginArray(int, bool, cbor.Tag, uint64) (bool, error)  { return true, nil }
func (sinkVisitor) EndArray() (bool, error)                              { return true, nil }
func (sinkVisitor) BeginObject(int, bool, cbor.Tag, uint64) (bool, error) { return true, nil }
func (sinkVisitor) EndObject() (bool, error)                             { return true, nil }
func (sinkVisitor) Key(string) (bool, error)                             { return true, nil }
func (sinkVisitor) NullValue(cbor.Tag, uint64) (bool, error)             { return true, nil }
func (sinkVisitor) BoolValue(bool, cbor.Tag, uint64) (bool, error)       { return true, nil }
func (sinkVisitor) Uint64Value(uint64, cbor.Tag, uint64) (bool, error)   { return true, nil }
func (sinkVisitor) Int64Value(int64, cbor.Tag, uint64) (bool, error)     { return true, nil }
func (sinkVisitor) HalfValue(uint16, cbor.Tag, uint64) (bool, error)     { return true, nil }
func (sinkVisitor) DoubleValue(float64, cbor.Tag, uint64) (bool, error)  { return true, nil }
func (sinkVisitor) StringValue(string, cbor.Tag, uint64) (bool, error)   { return true, nil }
func (sinkVisitor) ByteStringValue([]byte, cbor.Tag, uint64) (bool, error) {
	return true, nil
}
func (sinkVisitor) TypedArrayValue(cbor.TypedArray, cbor.Tag) (bool, error) { return true, nil }
func (sinkVisitor) BeginMultiDim([]uint64, cbor.Tag) (bool, error)          { return true, nil }
func (sinkVisitor) EndMultiDim() (bool, error)                              { return true, nil }
func (sinkVisitor) Flush() error                                            { return nil }

func parseAll(data []byte) error {
	p := cbor.NewParser(cbor.NewSliceSource(data), cbor.NewConfig())
	defer p.Close()
	return p.Parse(sinkVisitor{})
}
