package text

import (
	"math"
	"strconv"
)

// parseNumberText parses a number's raw decimal text, recognizing the
// infinity tokens alongside standard float syntax.
func parseNumberText(raw []byte) (float64, error) {
	s := string(raw)
	switch s {
	case "inf", "1.#INF":
		return math.Inf(1), nil
	case "-inf", "-1.#INF":
		return math.Inf(-1), nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidFloatNumber
	}
	return f, nil
}

// formatNumberText renders n using the plain "^N" decimal form.
func formatNumberText(n float64) string {
	switch {
	case math.IsInf(n, 1):
		return "inf"
	case math.IsInf(n, -1):
		return "-inf"
	default:
		return strconv.FormatFloat(n, 'g', -1, 64)
	}
}
