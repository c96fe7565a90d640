package domain

// Grade tokens on the fixed 4.0 scale.
const (
	GradeA     Grade = "A"
	GradeBPlus Grade = "B+"
	GradeB     Grade = "B"
	GradeCPlus Grade = "C+"
	GradeC     Grade = "C"
	GradeDPlus Grade = "D+"
	GradeD     Grade = "D"
	GradeF     Grade = "F"
)

// qualityByGrade maps each letter grade to its quality value.
var qualityByGrade = map[Grade]float64{
	GradeA:     4.0,
	GradeBPlus: 3.5,
	GradeB:     3.0,
	GradeCPlus: 2.5,
	GradeC:     2.0,
	GradeDPlus: 1.5,
	GradeD:     1.0,
	GradeF:     0.0,
}

// Quality returns the quality value for g; ok is false for unknown tokens.
func Quality(g Grade) (float64, bool) {
	q, ok := qualityByGrade[g]
	return q, ok
}

// KnownGrade reports whether g is one of the eight table tokens.
func KnownGrade(g Grade) bool {
	_, ok := qualityByGrade[g]
	return ok
}

// Grades returns the grade domain from best to worst, for option pickers and
// help text.
func Grades() []Grade {
	return []Grade{
		GradeA, GradeBPlus, GradeB, GradeCPlus,
		GradeC, GradeDPlus, GradeD, GradeF,
	}
}
