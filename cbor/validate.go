package cbor

// ValidateWellFormed checks that the next CBOR data item read from src is
// structurally well-formed per RFC 8949, without interpreting any of the
// semantic tags in spec §4.3/§4.7. It is the cheap pre-flight check a
// caller can run before committing to a full Parser.Parse, e.g. to
// reject garbage before allocating a Visitor.
//
// Checks performed: correct nesting of arrays/maps/tags/indefinite
// containers, UTF-8 validity of text strings, and rejection of the
// reserved additional-info values 28-30.
func ValidateWellFormed(src ByteSource) error {
	return validateItem(src, 0)
}

// ValidateWellFormedBytes is ValidateWellFormed over an in-memory buffer.
func ValidateWellFormedBytes(b []byte) error {
	return ValidateWellFormed(NewSliceSource(b))
}

// ValidateDocument validates every item in src until EOF, the RFC 8949
// "sequence of data items" framing some transports use.
func ValidateDocument(src ByteSource) error {
	for !src.EOF() {
		if err := validateItem(src, 0); err != nil {
			return err
		}
	}
	return nil
}

func validateItem(src ByteSource, depth uint32) error {
	if depth > DefaultMaxNestingDepth {
		return newParseError(KindMaxNestingDepthExceeded, int64(src.Position()), "")
	}

	major, info, err := readInitialByte(src)
	if err != nil {
		return err
	}
	if info == 28 || info == 29 || info == 30 {
		return newParseError(KindUnknownType, int64(src.Position()), "reserved additional info")
	}

	switch major {
	case majorTypeUint, majorTypeNegInt:
		_, _, err := readArgument(src, info)
		return err

	case majorTypeTag:
		_, indefinite, err := readArgument(src, info)
		if err != nil {
			return err
		}
		if indefinite {
			return newParseError(KindUnknownType, int64(src.Position()), "indefinite tag argument")
		}
		return validateItem(src, depth+1)

	case majorTypeBytes, majorTypeText:
		return validateStringPayload(src, major, info)

	case majorTypeArray:
		arg, indefinite, err := readArgument(src, info)
		if err != nil {
			return err
		}
		if indefinite {
			return validateIndefiniteSeq(src, depth, 1)
		}
		for i := uint64(0); i < arg; i++ {
			if err := validateItem(src, depth+1); err != nil {
				return err
			}
		}
		return nil

	case majorTypeMap:
		arg, indefinite, err := readArgument(src, info)
		if err != nil {
			return err
		}
		if indefinite {
			return validateIndefiniteSeq(src, depth, 2)
		}
		for i := uint64(0); i < arg; i++ {
			if err := validateItem(src, depth+1); err != nil {
				return err
			}
			if err := validateItem(src, depth+1); err != nil {
				return err
			}
		}
		return nil

	case majorTypeSimple:
		return validateSimple(src, info)
	}

	return newParseError(KindUnknownType, int64(src.Position()), "")
}

// validateIndefiniteSeq reads items per unit until a break byte, where
// unit is 1 for an indefinite array and 2 for an indefinite map (a
// key/value pair per iteration).
func validateIndefiniteSeq(src ByteSource, depth uint32, unit int) error {
	for {
		b, ok, err := src.Peek()
		if err != nil {
			return err
		}
		if !ok {
			return newParseError(KindUnexpectedEOF, int64(src.Position()), "")
		}
		if b == 0xff {
			_, err := src.ReadExact(1)
			return err
		}
		for i := 0; i < unit; i++ {
			if err := validateItem(src, depth+1); err != nil {
				return err
			}
		}
	}
}

func validateStringPayload(src ByteSource, major, info uint8) error {
	if info == addInfoIndefinite {
		for {
			b, ok, err := src.Peek()
			if err != nil {
				return err
			}
			if !ok {
				return newParseError(KindUnexpectedEOF, int64(src.Position()), "")
			}
			if b == 0xff {
				_, err := src.ReadExact(1)
				return err
			}
			chunkMajor, chunkInfo, err := readInitialByte(src)
			if err != nil {
				return err
			}
			if chunkMajor != major {
				return newParseError(KindIllegalChunkType, int64(src.Position()), "")
			}
			arg, indefinite, err := readArgument(src, chunkInfo)
			if err != nil {
				return err
			}
			if indefinite {
				return newParseError(KindIllegalChunkType, int64(src.Position()), "nested indefinite chunk")
			}
			chunk, err := src.ReadExact(int(arg))
			if err != nil {
				return err
			}
			if major == majorTypeText && !isUTF8Valid(chunk) {
				return newParseError(KindInvalidUTF8TextString, int64(src.Position()), "")
			}
		}
	}

	arg, _, err := readArgument(src, info)
	if err != nil {
		return err
	}
	payload, err := src.ReadExact(int(arg))
	if err != nil {
		return err
	}
	if major == majorTypeText && !isUTF8Valid(payload) {
		return newParseError(KindInvalidUTF8TextString, int64(src.Position()), "")
	}
	return nil
}

func validateSimple(src ByteSource, info uint8) error {
	switch info {
	case simpleFalse, simpleTrue, simpleNull, simpleUndefined:
		return nil
	case simpleFloat16:
		_, err := src.ReadExact(2)
		return err
	case simpleFloat32:
		_, err := src.ReadExact(4)
		return err
	case simpleFloat64:
		_, err := src.ReadExact(8)
		return err
	case addInfoUint8:
		_, err := src.ReadExact(1)
		return err
	case simpleBreak:
		return newParseError(KindUnexpectedBreak, int64(src.Position()), "")
	default:
		if info < 20 {
			return nil
		}
		return newParseError(KindUnknownType, int64(src.Position()), "")
	}
}
