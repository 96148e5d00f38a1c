package legacy

const (
	modeStore      = 1
	modeCompressed = 3
)

// Decompress decodes a legacy pre-DEFLATE WeakAuras payload, enforcing
// that the decoded size (the stored payload length in store mode, the
// declared original size in compressed mode) does not exceed maxSize.
func Decompress(input []byte, maxSize int) ([]byte, error) {
	if len(input) == 0 {
		return nil, ErrInvalidPrefix
	}

	switch input[0] {
	case modeStore:
		if len(input)-1 > maxSize {
			return nil, ErrDataExceedsMaxSize
		}
		return input[1:], nil
	case modeCompressed:
		// fall through
	default:
		return nil, ErrInvalidPrefix
	}

	if len(input) < 5 {
		return nil, ErrInputIsTooSmall
	}

	if input[1] == 0xFF {
		return nil, ErrInvalidData
	}
	numSymbols := int(input[1]) + 1

	originalSize := int(input[2]) | int(input[3])<<8 | int(input[4])<<16
	if originalSize == 0 {
		return nil, ErrInputIsTooSmall
	}
	if originalSize > maxSize {
		return nil, ErrDataExceedsMaxSize
	}

	src := &byteSource{data: input, pos: 5}

	var buf bitBuffer
	codes := make([]codeEntry, 0, numSymbols)
	minCodeLen := 64

	for i := 0; i < numSymbols; i++ {
		raw, ok := src.next()
		if !ok {
			return nil, ErrUnexpectedEOF
		}
		symbol, ok := buf.insertAndExtractByte(raw)
		if !ok {
			return nil, ErrInvalidData
		}

		for {
			nb, ok := src.next()
			if !ok {
				return nil, ErrUnexpectedEOF
			}
			if !buf.insertByte(nb) {
				return nil, ErrInvalidData
			}

			code, codeLen, found, err := getCode(&buf)
			if err != nil {
				return nil, err
			}
			if found {
				unescaped, unescapedLen := unescapeCode(code, codeLen)
				if unescapedLen < minCodeLen {
					minCodeLen = unescapedLen
				}
				codes = append(codes, codeEntry{code: unescaped, codeLen: unescapedLen, symbol: symbol})
				break
			}
		}
	}

	lut, err := buildLookupTable(codes)
	if err != nil {
		return nil, err
	}

	result := make([]byte, 0, originalSize)
	for {
		buf.fillFrom(src)
		priorLen := buf.len()

		if buf.len() < minCodeLen {
			break
		}

		cursor := &lut[buf.peekByte()]
		if buf.len() < cursor.codeLength {
			break
		}

		next := buf
		for next.len() >= cursor.codeLength {
			if cursor.codeLength == 0 {
				return nil, ErrInvalidData
			}

			if cursor.ref != nil {
				next.discardBits(cursor.codeLength)
				cursor = &cursor.ref[next.peekByte()]
				continue
			}

			result = append(result, cursor.symbol)
			if len(result) == originalSize {
				return result, nil
			}
			buf = next
			buf.discardBits(cursor.codeLength)
			break
		}

		if buf.len() == priorLen {
			return nil, ErrInvalidData
		}
	}

	if len(result) == originalSize {
		return result, nil
	}
	return nil, ErrInvalidData
}
