package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gradebook/internal/domain"
)

func TestQuality(t *testing.T) {
	want := map[domain.Grade]float64{
		"A": 4.0, "B+": 3.5, "B": 3.0, "C+": 2.5,
		"C": 2.0, "D+": 1.5, "D": 1.0, "F": 0.0,
	}
	for g, q := range want {
		got, ok := domain.Quality(g)
		assert.True(t, ok, "grade %q", g)
		assert.Equal(t, q, got, "grade %q", g)
	}

	_, ok := domain.Quality("B-")
	assert.False(t, ok)
}

func TestGrades_DescendingQuality(t *testing.T) {
	grades := domain.Grades()
	assert.Len(t, grades, 8)
	for i := 1; i < len(grades); i++ {
		prev, _ := domain.Quality(grades[i-1])
		cur, _ := domain.Quality(grades[i])
		assert.Greater(t, prev, cur)
	}
}
