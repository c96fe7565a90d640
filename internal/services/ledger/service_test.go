package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gradebook/internal/domain"
	"gradebook/internal/services/ledger"
	"gradebook/internal/store"
)

func newLedger(t *testing.T) (*ledger.Service, *store.MemKV) {
	t.Helper()
	kv := store.NewMemKV()
	svc := ledger.New(kv, nil)
	svc.Load()
	return svc, kv
}

func TestAddRemove_Scenario(t *testing.T) {
	svc, _ := newLedger(t)

	require.NoError(t, svc.Add(domain.GradeA, 3, ""))
	assert.Equal(t, 4.0, svc.GPA())

	require.NoError(t, svc.Add(domain.GradeB, 2, "stats"))
	assert.InDelta(t, 3.6, svc.GPA(), 1e-12)
	assert.Equal(t, "3.60", svc.FormatGPA())

	require.NoError(t, svc.Remove(0))
	assert.Equal(t, 3.0, svc.GPA())
	assert.Equal(t, domain.CreditList{{Grade: domain.GradeB, Credits: 2, Note: "stats"}}, svc.Records())

	require.NoError(t, svc.Remove(0))
	assert.Equal(t, 0.0, svc.GPA())
	assert.Empty(t, svc.Records())
}

func TestAdd_InvalidEntryIsNoOp(t *testing.T) {
	svc, kv := newLedger(t)
	require.NoError(t, svc.Add(domain.GradeA, 3, ""))
	before, ok, err := kv.Get(ledger.CreditsKey)
	require.NoError(t, err)
	require.True(t, ok)

	// Unknown grade, missing grade, credits out of range: list, GPA, and the
	// stored bytes all stay untouched.
	require.NoError(t, svc.Add("X", 3, ""))
	require.NoError(t, svc.Add("", 3, ""))
	require.NoError(t, svc.Add(domain.GradeB, 0, ""))
	require.NoError(t, svc.Add(domain.GradeB, 5, ""))

	assert.Equal(t, 4.0, svc.GPA())
	assert.Len(t, svc.Records(), 1)

	after, ok, err := kv.Get(ledger.CreditsKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, before, after)
}

func TestRemove_OutOfRangeIsNoOp(t *testing.T) {
	svc, _ := newLedger(t)
	require.NoError(t, svc.Add(domain.GradeCPlus, 2, ""))

	require.NoError(t, svc.Remove(-1))
	require.NoError(t, svc.Remove(1))
	require.NoError(t, svc.Remove(42))

	assert.Len(t, svc.Records(), 1)
	assert.Equal(t, 2.5, svc.GPA())
}

func TestRemove_PreservesOrder(t *testing.T) {
	svc, _ := newLedger(t)
	require.NoError(t, svc.Add(domain.GradeA, 1, "first"))
	require.NoError(t, svc.Add(domain.GradeB, 2, "second"))
	require.NoError(t, svc.Add(domain.GradeC, 3, "third"))

	require.NoError(t, svc.Remove(1))

	records := svc.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "first", records[0].Note)
	assert.Equal(t, "third", records[1].Note)
}

func TestRemoveAll_DeletesStorageKey(t *testing.T) {
	svc, kv := newLedger(t)
	require.NoError(t, svc.Add(domain.GradeA, 3, ""))

	require.NoError(t, svc.RemoveAll())

	assert.Equal(t, 0.0, svc.GPA())
	assert.Empty(t, svc.Records())

	// The key is gone, not set to an empty array.
	_, ok, err := kv.Get(ledger.CreditsKey)
	require.NoError(t, err)
	assert.False(t, ok)

	// A later hydration takes the missing-key path.
	svc.Load()
	assert.Empty(t, svc.Records())
	assert.Equal(t, 0.0, svc.GPA())
}

func TestLoad_RoundTrip(t *testing.T) {
	svc, kv := newLedger(t)
	require.NoError(t, svc.Add(domain.GradeA, 3, "calc"))
	require.NoError(t, svc.Add(domain.GradeDPlus, 4, ""))

	// A fresh service over the same backend sees the same list and GPA.
	reloaded := ledger.New(kv, nil)
	reloaded.Load()
	assert.Equal(t, svc.Records(), reloaded.Records())
	assert.Equal(t, svc.GPA(), reloaded.GPA())
}

func TestLoad_InvalidPersistedStateFallsBackEmpty(t *testing.T) {
	cases := map[string]string{
		"unknown grade":  `[{"grade":"X","credits":3}]`,
		"malformed json": `[{"grade"`,
		"bad credits":    `[{"grade":"A","credits":9}]`,
	}
	for name, raw := range cases {
		kv := store.NewMemKV()
		require.NoError(t, kv.Set(ledger.CreditsKey, []byte(raw)))

		svc := ledger.New(kv, nil)
		svc.Load()
		assert.Empty(t, svc.Records(), name)
		assert.Equal(t, 0.0, svc.GPA(), name)
	}
}

func TestReplace(t *testing.T) {
	svc, _ := newLedger(t)
	require.NoError(t, svc.Add(domain.GradeF, 4, ""))

	next := domain.CreditList{{Grade: domain.GradeA, Credits: 3}}
	require.NoError(t, svc.Replace(next))
	assert.Equal(t, 4.0, svc.GPA())

	// An invalid list is rejected wholesale; the current list stays.
	err := svc.Replace(domain.CreditList{{Grade: "X", Credits: 3}})
	assert.ErrorIs(t, err, domain.ErrInvalidGrade)
	assert.Equal(t, next, svc.Records())
}
