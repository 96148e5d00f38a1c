package binary

import "strconv"

// parseDecimalText parses a FloatStrPos/FloatStrNeg payload, which is
// always a non-negative decimal ASCII literal (the sign lives in the
// tag, not the text).
func parseDecimalText(raw []byte) (float64, error) {
	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return 0, ErrInvalidFloatNumber
	}
	return f, nil
}
