package cbor

import (
	"math"
	"math/big"
)

// DefaultMaxNestingDepth bounds container recursion absent an explicit
// Config override (spec §4.4: "default limit should be on the order of
// a few hundred").
const DefaultMaxNestingDepth = 256

// Config configures a Parser. The zero value is not ready to use; call
// NewConfig to get sane defaults and its Set* methods to override them.
type Config struct {
	maxNestingDepth uint32
}

// NewConfig returns a Config with DefaultMaxNestingDepth applied.
func NewConfig() Config {
	return Config{maxNestingDepth: DefaultMaxNestingDepth}
}

// SetMaxNestingDepth overrides the container-depth ceiling. A value of
// zero is treated as DefaultMaxNestingDepth rather than "unlimited":
// an unbounded parser defeats the hostile-input guard spec §5 requires.
func (c *Config) SetMaxNestingDepth(n uint32) {
	if n == 0 {
		n = DefaultMaxNestingDepth
	}
	c.maxNestingDepth = n
}

// Parser drives a Visitor over a ByteSource, implementing the streaming
// item reader of spec §4.4. A Parser is single-use: call Parse once and
// discard it, per spec §4.10 (no partial recovery after an error).
type Parser struct {
	src    ByteSource
	config Config

	stack stateStack
	refs  stringrefStack

	pendingStringref   bool
	pendingStringrefNS bool
	pendingItemTag     bool
	pendingItemTagVal  uint64

	scratch *ByteBuffer
}

// NewParser constructs a Parser reading from src with the given config.
func NewParser(src ByteSource, config Config) *Parser {
	return &Parser{src: src, config: config, scratch: GetByteBuffer()}
}

// Close releases the Parser's pooled scratch buffer. Call it when
// finished with the Parser, successful parse or not.
func (p *Parser) Close() {
	if p.scratch != nil {
		PutByteBuffer(p.scratch)
		p.scratch = nil
	}
}

func (p *Parser) offset() int64 { return int64(p.src.Position()) }

func (p *Parser) eof() error {
	return newParseError(KindUnexpectedEOF, p.offset(), "")
}

// Parse runs the item-reader state machine to completion (spec §4.4),
// driving v with every decoded item. It returns on the first error, on
// v requesting early termination, or after v.Flush succeeds following a
// fully consumed root item.
func (p *Parser) Parse(v Visitor) error {
	p.stack = stateStack{}
	p.stack.push(frame{mode: modeRoot})

	for {
		top := p.stack.top()
		if top == nil {
			return nil
		}

		switch top.mode {
		case modeRoot:
			top.mode = modeBeforeDone
			cont, err := p.readItem(v, false)
			if err != nil {
				return err
			}
			if !cont {
				return nil
			}

		case modeBeforeDone:
			return v.Flush()

		case modeArray:
			if top.index < top.length {
				top.index++
				cont, err := p.readItem(v, false)
				if err != nil {
					return err
				}
				if !cont {
					return nil
				}
				continue
			}
			popNS := top.popStringrefOnExit
			p.stack.pop()
			if popNS {
				p.refs.pop()
			}
			cont, err := v.EndArray()
			if err != nil {
				return err
			}
			if !cont {
				return nil
			}

		case modeIndefiniteArray:
			b, ok, err := p.src.Peek()
			if err != nil {
				return err
			}
			if !ok {
				return p.eof()
			}
			if b == 0xff {
				if _, err := p.src.ReadExact(1); err != nil {
					return err
				}
				popNS := top.popStringrefOnExit
				p.stack.pop()
				if popNS {
					p.refs.pop()
				}
				cont, err := v.EndArray()
				if err != nil {
					return err
				}
				if !cont {
					return nil
				}
				continue
			}
			cont, err := p.readItem(v, false)
			if err != nil {
				return err
			}
			if !cont {
				return nil
			}

		case modeMapKey:
			if top.index < top.length {
				top.index++
				top.mode = modeMapValue
				cont, err := p.readItem(v, true)
				if err != nil {
					return err
				}
				if !cont {
					return nil
				}
				continue
			}
			popNS := top.popStringrefOnExit
			p.stack.pop()
			if popNS {
				p.refs.pop()
			}
			cont, err := v.EndObject()
			if err != nil {
				return err
			}
			if !cont {
				return nil
			}

		case modeMapValue:
			top.mode = modeMapKey
			cont, err := p.readItem(v, false)
			if err != nil {
				return err
			}
			if !cont {
				return nil
			}

		case modeIndefiniteMapKey:
			b, ok, err := p.src.Peek()
			if err != nil {
				return err
			}
			if !ok {
				return p.eof()
			}
			if b == 0xff {
				if _, err := p.src.ReadExact(1); err != nil {
					return err
				}
				popNS := top.popStringrefOnExit
				p.stack.pop()
				if popNS {
					p.refs.pop()
				}
				cont, err := v.EndObject()
				if err != nil {
					return err
				}
				if !cont {
					return nil
				}
				continue
			}
			top.mode = modeIndefiniteMapValue
			cont, err := p.readItem(v, true)
			if err != nil {
				return err
			}
			if !cont {
				return nil
			}

		case modeIndefiniteMapValue:
			top.mode = modeIndefiniteMapKey
			cont, err := p.readItem(v, false)
			if err != nil {
				return err
			}
			if !cont {
				return nil
			}

		case modeMultiDim:
			if top.index == 0 {
				top.index = 1
				cont, err := p.readItem(v, false)
				if err != nil {
					return err
				}
				if !cont {
					return nil
				}
				continue
			}
			p.stack.pop()
			cont, err := v.EndMultiDim()
			if err != nil {
				return err
			}
			if !cont {
				return nil
			}
		}
	}
}

// readHeader consumes one initial byte and returns its major type and
// additional info.
func (p *Parser) readHeader() (major, info uint8, err error) {
	return readInitialByte(p.src)
}

// readArg consumes the argument bytes following an initial byte with
// the given additional info (spec §4.2).
func (p *Parser) readArg(info uint8) (arg uint64, indefinite bool, err error) {
	return readArgument(p.src, info)
}

// readInitialByte and readArgument are free functions (rather than
// Parser methods) so ValidateWellFormed can reuse the same primitive
// decode logic without a Visitor or a full Parser.
func readInitialByte(src ByteSource) (major, info uint8, err error) {
	b, err := src.ReadExact(1)
	if err != nil {
		return 0, 0, err
	}
	return getMajorType(b[0]), getAddInfo(b[0]), nil
}

func readArgument(src ByteSource, info uint8) (arg uint64, indefinite bool, err error) {
	switch {
	case info <= addInfoDirect:
		return uint64(info), false, nil
	case info == addInfoUint8:
		b, err := src.ReadExact(1)
		if err != nil {
			return 0, false, err
		}
		return uint64(b[0]), false, nil
	case info == addInfoUint16:
		b, err := src.ReadExact(2)
		if err != nil {
			return 0, false, err
		}
		return uint64(b[0])<<8 | uint64(b[1]), false, nil
	case info == addInfoUint32:
		b, err := src.ReadExact(4)
		if err != nil {
			return 0, false, err
		}
		return uint64(b[0])<<24 | uint64(b[1])<<16 | uint64(b[2])<<8 | uint64(b[3]), false, nil
	case info == addInfoUint64:
		b, err := src.ReadExact(8)
		if err != nil {
			return 0, false, err
		}
		var v uint64
		for i := 0; i < 8; i++ {
			v = v<<8 | uint64(b[i])
		}
		return v, false, nil
	case info == addInfoIndefinite:
		return 0, true, nil
	default:
		return 0, false, newParseError(KindUnknownType, int64(src.Position()), "reserved additional info")
	}
}

// readHeaderArg is readHeader followed by readArg.
func (p *Parser) readHeaderArg() (major uint8, arg uint64, indefinite bool, err error) {
	major, info, err := p.readHeader()
	if err != nil {
		return 0, 0, false, err
	}
	arg, indefinite, err = p.readArg(info)
	return major, arg, indefinite, err
}

// collectTags runs the tag collector (spec §4.3) ahead of one data item.
func (p *Parser) collectTags() error {
	p.pendingStringref = false
	p.pendingStringrefNS = false
	p.pendingItemTag = false
	p.pendingItemTagVal = 0

	for {
		b, ok, err := p.src.Peek()
		if err != nil {
			return err
		}
		if !ok {
			return p.eof()
		}
		if getMajorType(b) != majorTypeTag {
			return nil
		}
		_, arg, indefinite, err := p.readHeaderArg()
		if err != nil {
			return err
		}
		if indefinite {
			return newParseError(KindUnknownType, p.offset(), "indefinite tag argument")
		}
		switch arg {
		case tagStringref:
			p.pendingStringref = true
		case tagStringrefNS:
			p.pendingStringrefNS = true
		default:
			// Every other tag, classified or not, is surfaced to the
			// visitor as the last-seen item-tag value (spec §4.3's
			// "only the last item-tag value wins", extended per the
			// Open Question resolution to cover unclassified tags too).
			p.pendingItemTag = true
			p.pendingItemTagVal = arg
		}
	}
}

// readItem reads one data item after consuming its tag prefix, driving
// v. keySlot routes string results through v.Key instead of
// v.StringValue/v.ByteStringValue.
func (p *Parser) readItem(v Visitor, keySlot bool) (bool, error) {
	if err := p.collectTags(); err != nil {
		return false, err
	}

	b, ok, err := p.src.Peek()
	if err != nil {
		return false, err
	}
	if !ok {
		return false, p.eof()
	}
	major := getMajorType(b)

	switch major {
	case majorTypeUint:
		return p.readUint(v, keySlot)
	case majorTypeNegInt:
		return p.readNegInt(v, keySlot)
	case majorTypeBytes:
		return p.readByteStringItem(v, keySlot)
	case majorTypeText:
		return p.readTextStringItem(v, keySlot)
	case majorTypeArray:
		return p.readArrayItem(v, keySlot)
	case majorTypeMap:
		return p.readMapItem(v, keySlot)
	case majorTypeSimple:
		return p.readSimple(v, keySlot)
	default:
		return false, newParseError(KindUnknownType, p.offset(), "")
	}
}

func (p *Parser) readUint(v Visitor, keySlot bool) (bool, error) {
	_, arg, indefinite, err := p.readHeaderArg()
	if err != nil {
		return false, err
	}
	if indefinite {
		return false, newParseError(KindUnknownType, p.offset(), "indefinite integer")
	}

	if p.pendingStringref && p.refs.active() != nil {
		entry, err := resolveStringref(p.refs.active(), arg, p.offset())
		if err != nil {
			return false, err
		}
		return p.emitStringrefEntry(v, entry, keySlot)
	}

	if keySlot {
		return false, newParseError(KindUnknownType, p.offset(), "non-string map key")
	}

	tag := TagNone
	if p.pendingItemTagVal == tagEpochTimestamp {
		tag = TagTimestamp
	}
	return v.Uint64Value(arg, tag, p.pendingItemTagVal)
}

func (p *Parser) readNegInt(v Visitor, keySlot bool) (bool, error) {
	_, arg, indefinite, err := p.readHeaderArg()
	if err != nil {
		return false, err
	}
	if indefinite {
		return false, newParseError(KindUnknownType, p.offset(), "indefinite integer")
	}
	if arg > math.MaxInt64 {
		return false, newParseError(KindNumberTooLarge, p.offset(), "")
	}
	if keySlot {
		return false, newParseError(KindUnknownType, p.offset(), "non-string map key")
	}
	iv := -1 - int64(arg)
	tag := TagNone
	if p.pendingItemTagVal == tagEpochTimestamp {
		tag = TagTimestamp
	}
	return v.Int64Value(iv, tag, p.pendingItemTagVal)
}

func (p *Parser) emitStringrefEntry(v Visitor, e stringrefEntry, keySlot bool) (bool, error) {
	if keySlot {
		if e.isText {
			return v.Key(e.text)
		}
		return v.Key(decodedString(e.bytes))
	}
	if e.isText {
		return v.StringValue(e.text, TagNone, 0)
	}
	return v.ByteStringValue(e.bytes, TagNone, 0)
}

// readStringPayload assembles the raw content of a major-2 or major-3
// item (definite or chunked indefinite), per spec §4.5. It does not
// interpret tags or validate UTF-8; callers do that.
func (p *Parser) readStringPayload(major uint8) (payload []byte, indefinite bool, err error) {
	_, info, err := p.readHeaderFor(major)
	if err != nil {
		return nil, false, err
	}
	arg, indefinite, err := p.readArg(info)
	if err != nil {
		return nil, false, err
	}
	if !indefinite {
		payload, err = p.src.ReadExact(int(arg))
		return payload, false, err
	}

	p.scratch.Reset()
	for {
		b, ok, err := p.src.Peek()
		if err != nil {
			return nil, true, err
		}
		if !ok {
			return nil, true, p.eof()
		}
		if b == 0xff {
			if _, err := p.src.ReadExact(1); err != nil {
				return nil, true, err
			}
			out := make([]byte, p.scratch.Len())
			copy(out, p.scratch.Bytes())
			return out, true, nil
		}
		chunkMajor := getMajorType(b)
		if chunkMajor != major {
			return nil, true, newParseError(KindIllegalChunkType, p.offset(), "")
		}
		_, chunkInfo, err := p.readHeader()
		if err != nil {
			return nil, true, err
		}
		chunkArg, chunkIndef, err := p.readArg(chunkInfo)
		if err != nil {
			return nil, true, err
		}
		if chunkIndef {
			return nil, true, newParseError(KindIllegalChunkType, p.offset(), "nested indefinite chunk")
		}
		chunk, err := p.src.ReadExact(int(chunkArg))
		if err != nil {
			return nil, true, err
		}
		p.scratch.Write(chunk)
	}
}

// readHeaderFor consumes the initial byte, verifying it carries the
// expected major type. Used when the caller has already peeked and
// knows the major type but still needs to consume + decode info.
func (p *Parser) readHeaderFor(expectMajor uint8) (major, info uint8, err error) {
	major, info, err = p.readHeader()
	if err != nil {
		return 0, 0, err
	}
	if major != expectMajor {
		return 0, 0, newParseError(KindUnknownType, p.offset(), "")
	}
	return major, info, nil
}

func (p *Parser) readByteStringItem(v Visitor, keySlot bool) (bool, error) {
	startDictSize := -1
	if dict := p.refs.active(); dict != nil {
		startDictSize = dict.size()
	}
	payload, indefinite, err := p.readStringPayload(majorTypeBytes)
	if err != nil {
		return false, err
	}
	if startDictSize >= 0 && !indefinite {
		maybeRegisterBytes(p.refs.active(), payload)
	}

	if keySlot {
		return v.Key(decodedString(payload))
	}

	tagVal := p.pendingItemTagVal
	switch tagVal {
	case tagPosBignum, tagNegBignum:
		s := bignumToDecimalString(payload, tagVal == tagNegBignum)
		return v.StringValue(s, TagBigInt, 0)
	case tagBase64URLBytes:
		return v.ByteStringValue(payload, TagBase64URL, 0)
	case tagBase64Bytes:
		return v.ByteStringValue(payload, TagBase64, 0)
	case tagBase16Bytes:
		return v.ByteStringValue(payload, TagBase16, 0)
	}
	if isTypedArrayTag(tagVal) {
		ta, err := decodeTypedArray(tagVal, payload, p.offset())
		if err != nil {
			return false, err
		}
		return v.TypedArrayValue(ta, typedArrayTag(tagVal))
	}
	return v.ByteStringValue(payload, TagNone, tagVal)
}

// isTypedArrayTag reports whether tag is one of the typed-array tags listed
// in typedArrayLayouts; reserved codes in 0x40-0x56 are not.
func isTypedArrayTag(tag uint64) bool {
	if tag < tagTypedArrayLo || tag > tagTypedArrayHi {
		return false
	}
	_, ok := typedArrayLayouts[tag]
	return ok
}

func (p *Parser) readTextStringItem(v Visitor, keySlot bool) (bool, error) {
	startDictSize := -1
	if dict := p.refs.active(); dict != nil {
		startDictSize = dict.size()
	}
	payload, indefinite, err := p.readStringPayload(majorTypeText)
	if err != nil {
		return false, err
	}
	if ValidateUTF8OnDecode && !isUTF8Valid(payload) {
		return false, newParseError(KindInvalidUTF8TextString, p.offset(), "")
	}
	s := decodedString(payload)
	if startDictSize >= 0 && !indefinite {
		maybeRegisterText(p.refs.active(), s)
	}

	if keySlot {
		return v.Key(s)
	}

	tag := TagNone
	switch p.pendingItemTagVal {
	case tagDateTimeString:
		if p.pendingItemTag {
			tag = TagDateTime
		}
	case tagURI:
		tag = TagURI
	case tagBase64URLText:
		tag = TagBase64URL
	case tagBase64Text:
		tag = TagBase64
	}
	return v.StringValue(s, tag, p.pendingItemTagVal)
}

func (p *Parser) readArrayItem(v Visitor, keySlot bool) (bool, error) {
	if keySlot {
		return false, newParseError(KindUnknownType, p.offset(), "non-string map key")
	}

	switch p.pendingItemTagVal {
	case tagDecimalFraction:
		return p.readBigDecOrFloat(v, true)
	case tagBigfloat:
		return p.readBigDecOrFloat(v, false)
	case tagRowMajorArray:
		return p.beginMultiDim(v, false)
	case tagColMajorArray:
		return p.beginMultiDim(v, true)
	}

	_, info, err := p.readHeaderFor(majorTypeArray)
	if err != nil {
		return false, err
	}
	arg, indefinite, err := p.readArg(info)
	if err != nil {
		return false, err
	}
	return p.pushContainer(v, false, arg, indefinite)
}

func (p *Parser) readMapItem(v Visitor, keySlot bool) (bool, error) {
	if keySlot {
		return false, newParseError(KindUnknownType, p.offset(), "non-string map key")
	}
	_, info, err := p.readHeaderFor(majorTypeMap)
	if err != nil {
		return false, err
	}
	arg, indefinite, err := p.readArg(info)
	if err != nil {
		return false, err
	}
	return p.pushContainer(v, true, arg, indefinite)
}

func (p *Parser) pushContainer(v Visitor, isMap bool, arg uint64, indefinite bool) (bool, error) {
	if p.stack.depth() >= int(p.config.maxNestingDepth) {
		return false, newParseError(KindMaxNestingDepthExceeded, p.offset(), "")
	}

	popNS := false
	if p.pendingStringrefNS {
		p.refs.push()
		popNS = true
	}

	f := frame{popStringrefOnExit: popNS}
	switch {
	case isMap && indefinite:
		f.mode = modeIndefiniteMapKey
	case isMap:
		f.mode = modeMapKey
	case indefinite:
		f.mode = modeIndefiniteArray
	default:
		f.mode = modeArray
	}
	if !indefinite {
		f.length = arg
	}
	p.stack.push(f)

	itemTagVal := p.pendingItemTagVal
	if isMap {
		return v.BeginObject(int(arg), !indefinite, TagNone, itemTagVal)
	}
	return v.BeginArray(int(arg), !indefinite, TagNone, itemTagVal)
}

// readBigDecOrFloat implements spec §4.8 for tags 4 (isDec) and 5.
func (p *Parser) readBigDecOrFloat(v Visitor, isDec bool) (bool, error) {
	kind := KindInvalidBigFloat
	if isDec {
		kind = KindInvalidBigDec
	}

	_, info, err := p.readHeaderFor(majorTypeArray)
	if err != nil {
		return false, err
	}
	arg, indefinite, err := p.readArg(info)
	if err != nil {
		return false, err
	}
	if indefinite || arg != 2 {
		return false, newParseError(kind, p.offset(), "expected array of length 2")
	}

	exp, err := p.readPlainInteger()
	if err != nil {
		return false, newParseError(kind, p.offset(), "exponent").withCause(err)
	}
	mantissa, err := p.readMantissa()
	if err != nil {
		return false, newParseError(kind, p.offset(), "mantissa").withCause(err)
	}

	if isDec {
		s := renderBigDec(exp, mantissa)
		return v.StringValue(s, TagBigDec, 0)
	}
	s := renderBigFloat(exp, mantissa)
	return v.StringValue(s, TagBigFloat, 0)
}

// readPlainInteger reads a bare major-0/1 integer with no tags, for use
// inside bigdec/bigfloat payloads.
func (p *Parser) readPlainInteger() (int64, error) {
	major, arg, indefinite, err := p.readHeaderArg()
	if err != nil {
		return 0, err
	}
	if indefinite {
		return 0, newParseError(KindUnknownType, p.offset(), "indefinite integer")
	}
	switch major {
	case majorTypeUint:
		if arg > math.MaxInt64 {
			return 0, newParseError(KindNumberTooLarge, p.offset(), "")
		}
		return int64(arg), nil
	case majorTypeNegInt:
		if arg > math.MaxInt64 {
			return 0, newParseError(KindNumberTooLarge, p.offset(), "")
		}
		return -1 - int64(arg), nil
	default:
		return 0, newParseError(KindUnknownType, p.offset(), "expected integer")
	}
}

// readMantissa reads the mantissa element of a bigdec/bigfloat payload:
// either a bare integer or a tag-2/tag-3 bignum byte string.
func (p *Parser) readMantissa() (*big.Int, error) {
	b, ok, err := p.src.Peek()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, p.eof()
	}

	if getMajorType(b) == majorTypeTag {
		_, arg, indefinite, err := p.readHeaderArg()
		if err != nil {
			return nil, err
		}
		if indefinite || (arg != tagPosBignum && arg != tagNegBignum) {
			return nil, newParseError(KindUnknownType, p.offset(), "expected bignum tag")
		}
		payload, _, err := p.readStringPayload(majorTypeBytes)
		if err != nil {
			return nil, err
		}
		n := new(big.Int).SetBytes(payload)
		if arg == tagNegBignum {
			n.Neg(n)
		}
		return n, nil
	}

	iv, err := p.readPlainInteger()
	if err != nil {
		return nil, err
	}
	return big.NewInt(iv), nil
}

// beginMultiDim implements spec §4.9 for tags 40/1040.
func (p *Parser) beginMultiDim(v Visitor, colMajor bool) (bool, error) {
	shape, err := p.readShape()
	if err != nil {
		return false, err
	}
	if p.stack.depth() >= int(p.config.maxNestingDepth) {
		return false, newParseError(KindMaxNestingDepthExceeded, p.offset(), "")
	}
	p.stack.push(frame{mode: modeMultiDim, shape: shape, colMajor: colMajor})

	tag := TagMultiDimRowMajor
	if colMajor {
		tag = TagMultiDimColumnMajor
	}
	return v.BeginMultiDim(shape, tag)
}

// readShape reads the shape vector preceding a multi-dim payload: an
// array (definite or indefinite) of non-negative integers.
func (p *Parser) readShape() ([]uint64, error) {
	_, info, err := p.readHeaderFor(majorTypeArray)
	if err != nil {
		return nil, err
	}
	arg, indefinite, err := p.readArg(info)
	if err != nil {
		return nil, err
	}

	var shape []uint64
	if !indefinite {
		shape = make([]uint64, 0, arg)
		for i := uint64(0); i < arg; i++ {
			n, err := p.readShapeElement()
			if err != nil {
				return nil, err
			}
			shape = append(shape, n)
		}
		return shape, nil
	}

	for {
		b, ok, err := p.src.Peek()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, p.eof()
		}
		if b == 0xff {
			if _, err := p.src.ReadExact(1); err != nil {
				return nil, err
			}
			return shape, nil
		}
		n, err := p.readShapeElement()
		if err != nil {
			return nil, err
		}
		shape = append(shape, n)
	}
}

func (p *Parser) readShapeElement() (uint64, error) {
	major, arg, indefinite, err := p.readHeaderArg()
	if err != nil {
		return 0, err
	}
	if indefinite || major != majorTypeUint {
		return 0, newParseError(KindUnknownType, p.offset(), "expected non-negative shape element")
	}
	return arg, nil
}

func (p *Parser) readSimple(v Visitor, keySlot bool) (bool, error) {
	if keySlot {
		return false, newParseError(KindUnknownType, p.offset(), "non-string map key")
	}
	_, info, err := p.readHeaderFor(majorTypeSimple)
	if err != nil {
		return false, err
	}
	tagVal := p.pendingItemTagVal

	switch info {
	case simpleFalse:
		return v.BoolValue(false, TagNone, tagVal)
	case simpleTrue:
		return v.BoolValue(true, TagNone, tagVal)
	case simpleNull:
		return v.NullValue(TagNone, tagVal)
	case simpleUndefined:
		return v.NullValue(TagUndefined, tagVal)
	case simpleFloat16:
		b, err := p.src.ReadExact(2)
		if err != nil {
			return false, err
		}
		bits := uint16(b[0])<<8 | uint16(b[1])
		return v.HalfValue(bits, TagNone, tagVal)
	case simpleFloat32:
		b, err := p.src.ReadExact(4)
		if err != nil {
			return false, err
		}
		bits := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
		return v.DoubleValue(float64(math.Float32frombits(bits)), TagNone, tagVal)
	case simpleFloat64:
		b, err := p.src.ReadExact(8)
		if err != nil {
			return false, err
		}
		var bits uint64
		for i := 0; i < 8; i++ {
			bits = bits<<8 | uint64(b[i])
		}
		return v.DoubleValue(math.Float64frombits(bits), TagNone, tagVal)
	case simpleBreak:
		return false, newParseError(KindUnexpectedBreak, p.offset(), "")
	default:
		return false, newParseError(KindUnknownType, p.offset(), "")
	}
}
