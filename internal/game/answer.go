package game

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidAnswer is returned for blank, non-numeric or non-finite answer
// input. The
// host should prompt again; nothing has been judged.
var ErrInvalidAnswer = errors.New("invalid answer")

// MaxAnswerLen caps the answer input, matching the on-screen keypad.
const MaxAnswerLen = 12

// ParseAnswer converts the learner's input into a number.
//
// Normalization rules:
// - Whitespace is trimmed
// - A comma is accepted as the decimal separator ("2,5" is 2.5)
// - A leading "+" or "-" sign is allowed
func ParseAnswer(input string) (float64, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, ErrInvalidAnswer
	}
	s = strings.Replace(s, ",", ".", 1)

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !isFinite(v) {
		return 0, ErrInvalidAnswer
	}
	return v, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// FormatNumber renders an answer without trailing zeros, e.g. 4 and 2.5.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
