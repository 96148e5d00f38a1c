package legacy

import "sort"

type codeEntry struct {
	code    uint32
	codeLen int
	symbol  byte
}

// tableEntry is one of the 256 slots in a lookup level: either a leaf
// carrying the symbol a code of codeLength bits decodes to, or a
// reference to a second-level table reached after discarding
// codeLength bits. A zero-value entry (codeLength 0, data nil) means no
// code claims this slot, which the decode loop treats as corrupt input.
type tableEntry struct {
	codeLength int
	symbol     byte
	ref        *[256]tableEntry
}

const maxTableLevels = 2

// buildLookupTable arranges codes into a (possibly two-level) 256-entry
// lookup table indexed by the low 8 bits of the bit buffer: a code
// shorter than 8 bits claims every slot whose low codeLen bits match it,
// and a code longer than 8 bits is grouped by its low-8-bit prefix into
// a second-level table over its remaining bits.
func buildLookupTable(codes []codeEntry) (*[256]tableEntry, error) {
	sorted := make([]codeEntry, len(codes))
	copy(sorted, codes)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].codeLen != sorted[j].codeLen {
			return sorted[i].codeLen < sorted[j].codeLen
		}
		return sorted[i].code < sorted[j].code
	})

	return buildLevel(sorted, 0)
}

func buildLevel(codes []codeEntry, level int) (*[256]tableEntry, error) {
	var table [256]tableEntry
	filled := [256]bool{}

	var long []codeEntry
	for _, c := range codes {
		if c.codeLen > 8 {
			long = append(long, c)
			continue
		}
		mask := uint32(1)<<uint(c.codeLen) - 1
		for idx := 0; idx < 256; idx++ {
			if uint32(idx)&mask != c.code {
				continue
			}
			if filled[idx] {
				return nil, ErrInvalidData
			}
			table[idx] = tableEntry{codeLength: c.codeLen, symbol: c.symbol}
			filled[idx] = true
		}
	}

	if len(long) > 0 {
		if level+1 >= maxTableLevels {
			return nil, ErrInvalidData
		}

		groups := make(map[byte][]codeEntry)
		for _, c := range long {
			prefix := byte(c.code & 0xFF)
			groups[prefix] = append(groups[prefix], codeEntry{
				code:    c.code >> 8,
				codeLen: c.codeLen - 8,
				symbol:  c.symbol,
			})
		}

		for prefix, sub := range groups {
			if filled[prefix] {
				return nil, ErrInvalidData
			}
			subTable, err := buildLevel(sub, level+1)
			if err != nil {
				return nil, err
			}
			table[prefix] = tableEntry{codeLength: 8, ref: subTable}
			filled[prefix] = true
		}
	}

	return &table, nil
}
