package base64

import "math"

// alphabet is the 64-symbol table, index 0..63: a..z, A..Z, 0..9, (, ).
var alphabet = [64]byte{
	'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm',
	'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z',
	'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M',
	'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z',
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9',
	'(', ')',
}

// invalidIndex marks a byte outside the alphabet in the reverse table.
const invalidIndex = 0xff

// reverse maps an input byte to its 6-bit alphabet index, or invalidIndex
// if the byte is not part of the alphabet. Built once at init from
// alphabet so the two tables can never drift apart.
var reverse = buildReverseTable()

func buildReverseTable() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = invalidIndex
	}
	for i, b := range alphabet {
		t[b] = byte(i)
	}

	return t
}

// EncodedLen returns the encoded length of n input bytes: 4*floor(n/3)
// plus 0, 2 or 3 for remainder 0, 1, 2. Returns ErrDataIsTooLarge if the
// computation would overflow an int.
func EncodedLen(n int) (int, error) {
	if n < 0 {
		return 0, ErrDataIsTooLarge
	}

	const maxN = (math.MaxInt - 3) / 4 * 3
	if n > maxN {
		return 0, ErrDataIsTooLarge
	}

	full := n / 3
	rem := n % 3
	length := full * 4
	switch rem {
	case 1:
		length += 2
	case 2:
		length += 3
	}

	return length, nil
}

// DecodedLen returns the decoded length of m input symbols: 3*floor(m/4)
// plus 0, 1 or 2 for remainder 0, 2, 3. A remainder of 1 is invalid and
// reported as ErrInvalidLength.
func DecodedLen(m int) (int, error) {
	if m < 0 {
		return 0, ErrInvalidLength
	}

	full := m / 4
	rem := m % 4
	if rem == 1 {
		return 0, ErrInvalidLength
	}

	length := full * 3
	switch rem {
	case 2:
		length++
	case 3:
		length += 2
	}

	return length, nil
}
