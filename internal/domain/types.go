package domain

// Grade is a letter-grade token, e.g. "A" or "B+".
type Grade string

func (g Grade) String() string { return string(g) }

// CreditRecord pairs a letter grade with the credit-hours it was earned over.
type CreditRecord struct {
	Grade   Grade  `json:"grade"`
	Credits int    `json:"credits"`
	Note    string `json:"note,omitempty"`
}

// CreditList is an insertion-ordered sequence of credit records. Order carries
// no meaning beyond display and index-based removal.
type CreditList []CreditRecord

// Clone returns an independent copy, safe to hand to callers.
func (l CreditList) Clone() CreditList {
	if l == nil {
		return nil
	}
	out := make(CreditList, len(l))
	copy(out, l)
	return out
}

// TotalCredits sums the credit-hours across the list.
func (l CreditList) TotalCredits() int {
	total := 0
	for _, r := range l {
		total += r.Credits
	}
	return total
}
