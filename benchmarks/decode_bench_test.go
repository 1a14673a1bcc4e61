package benchmarks

import (
	"testing"

	fxcbor "github.com/fxamacker/cbor/v2"
	msgp "github.com/tinylib/msgp/msgp"

	cbor "github.com/fernbridge-labs/cbor-stream/cbor"
)

// benchPerson mirrors a small record shape used across the decode
// benchmarks so the comparison is apples-to-apples across libraries.
type benchPerson struct {
	Name string `cbor:"name"`
	Age  int64  `cbor:"age"`
	Data []byte `cbor:"data"`
}

func newPerson() benchPerson {
	return benchPerson{Name: "Alice", Age: 42, Data: []byte("hello world")}
}

type sinkVisitor struct{}

func (sinkVisitor) BeginArray(int, bool, cbor.Tag, uint64) (bool, error)   { return true, nil }
func (sinkVisitor) EndArray() (bool, error)                               { return true, nil }
func (sinkVisitor) BeginObject(int, bool, cbor.Tag, uint64) (bool, error)  { return true, nil }
func (sinkVisitor) EndObject() (bool, error)                              { return true, nil }
func (sinkVisitor) Key(string) (bool, error)                              { return true, nil }
func (sinkVisitor) NullValue(cbor.Tag, uint64) (bool, error)              { return true, nil }
func (sinkVisitor) BoolValue(bool, cbor.Tag, uint64) (bool, error)        { return true, nil }
func (sinkVisitor) Uint64Value(uint64, cbor.Tag, uint64) (bool, error)    { return true, nil }
func (sinkVisitor) Int64Value(int64, cbor.Tag, uint64) (bool, error)      { return true, nil }
func (sinkVisitor) HalfValue(uint16, cbor.Tag, uint64) (bool, error)      { return true, nil }
func (sinkVisitor) DoubleValue(float64, cbor.Tag, uint64) (bool, error)   { return true, nil }
func (sinkVisitor) StringValue(string, cbor.Tag, uint64) (bool, error)    { return true, nil }
func (sinkVisitor) ByteStringValue([]byte, cbor.Tag, uint64) (bool, error) {
	return true, nil
}
func (sinkVisitor) TypedArrayValue(cbor.TypedArray, cbor.Tag) (bool, error) { return true, nil }
func (sinkVisitor) BeginMultiDim([]uint64, cbor.Tag) (bool, error)          { return true, nil }
func (sinkVisitor) EndMultiDim() (bool, error)                              { return true, nil }
func (sinkVisitor) Flush() error                                            { return nil }

func BenchmarkCBORStream_Struct_Decode(b *testing.B) {
	p := newPerson()
	enc, err := fxcbor.Marshal(p)
	if err != nil {
		b.Fatalf("fxcbor Marshal: %v", err)
	}
	cfg := cbor.NewConfig()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		parser := cbor.NewParser(cbor.NewSliceSource(enc), cfg)
		if err := parser.Parse(sinkVisitor{}); err != nil {
			b.Fatalf("Parse: %v", err)
		}
		parser.Close()
	}
}

func BenchmarkCBORStream_Validate(b *testing.B) {
	p := newPerson()
	enc, err := fxcbor.Marshal(p)
	if err != nil {
		b.Fatalf("fxcbor Marshal: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := cbor.ValidateWellFormedBytes(enc); err != nil {
			b.Fatalf("ValidateWellFormedBytes: %v", err)
		}
	}
}

func BenchmarkFXCBOR_Struct_Decode(b *testing.B) {
	p := newPerson()
	enc, err := fxcbor.Marshal(p)
	if err != nil {
		b.Fatalf("fxcbor Marshal: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var out benchPerson
		if err := fxcbor.Unmarshal(enc, &out); err != nil {
			b.Fatalf("fxcbor Unmarshal: %v", err)
		}
	}
}

func BenchmarkMsgp_Map_Decode(b *testing.B) {
	p := newPerson()
	m := map[string]any{"name": p.Name, "age": p.Age, "data": p.Data}
	enc, err := msgp.AppendIntf(nil, m)
	if err != nil {
		b.Fatalf("msgp AppendIntf: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := msgp.ReadIntfBytes(enc); err != nil {
			b.Fatalf("msgp ReadIntfBytes: %v", err)
		}
	}
}

func BenchmarkCBORStream_ItemSequence_Validate(b *testing.B) {
	var buf []byte
	for i := 0; i < 1000; i++ {
		buf = append(buf, 0x00) // 1000 top-level zero integers, validated as one multi-item document
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := cbor.ValidateDocument(cbor.NewSliceSource(buf)); err != nil {
			b.Fatalf("ValidateDocument: %v", err)
		}
	}
}
