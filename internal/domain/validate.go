package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
)

// Credit-hour bounds for a single course.
const (
	MinCredits = 1
	MaxCredits = 4
)

var (
	// ErrInvalidGrade is returned when a grade token is outside the table.
	ErrInvalidGrade = errors.New("invalid grade token")

	// ErrInvalidCredits is returned when credits fall outside [1,4].
	ErrInvalidCredits = fmt.Errorf("credits must be an integer in [%d,%d]", MinCredits, MaxCredits)
)

// gradeShape is the loose shape check; table membership is still required, so
// regex-passing strays like "B-" are rejected.
var gradeShape = regexp.MustCompile(`^[A-D][+-]?$|^F$`)

// ValidateRecord reports why r is outside the valid domain, or nil.
func ValidateRecord(r CreditRecord) error {
	if !gradeShape.MatchString(string(r.Grade)) || !KnownGrade(r.Grade) {
		return fmt.Errorf("%w: %q", ErrInvalidGrade, r.Grade)
	}
	if r.Credits < MinCredits || r.Credits > MaxCredits {
		return fmt.Errorf("%w: got %d", ErrInvalidCredits, r.Credits)
	}
	return nil
}

// ValidateRecords returns l unchanged if every record is valid, or an error
// naming the first offending record.
func ValidateRecords(l CreditList) (CreditList, error) {
	for i, r := range l {
		if err := ValidateRecord(r); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}
	return l, nil
}

// DecodeRecords parses raw JSON into a validated CreditList. This is the
// parse-then-check path for untrusted storage bytes; callers collapse any
// failure into "use the empty list".
func DecodeRecords(raw []byte) (CreditList, error) {
	var l CreditList
	if err := json.Unmarshal(raw, &l); err != nil {
		return nil, fmt.Errorf("decode credits: %w", err)
	}
	return ValidateRecords(l)
}

// EncodeRecords renders l in the persisted wire shape.
func EncodeRecords(l CreditList) ([]byte, error) {
	if l == nil {
		l = CreditList{}
	}
	return json.Marshal(l)
}
