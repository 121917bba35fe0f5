//go:build vecmap_contracts

package vecmap

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContractsEnabled(t *testing.T) {
	require.True(t, ContractsEnabled)
}

// captureViolation runs fn, expects it to panic with a ContractViolation
// and returns it along with whatever the contract logger wrote.
func captureViolation(t *testing.T, fn func()) (*ContractViolation, string) {
	t.Helper()

	var buf bytes.Buffer
	SetContractLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { SetContractLogger(nil) })

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		fn()
	}()

	require.NotNil(t, recovered, "expected a contract violation")

	cv, ok := recovered.(*ContractViolation)
	require.True(t, ok, "panic value %T is not a *ContractViolation", recovered)
	require.True(t, errors.Is(cv, ErrContractViolation))

	return cv, buf.String()
}

func TestContract_CleanOperations(t *testing.T) {
	m := New[string, int]()

	require.NotPanics(t, func() {
		m.Insert("a", 1)
		m.Insert("b", 2)
		m.Insert("a", 3)
		m.InsertUnchecked("c", 4)
		m.Remove("b")
		m.Remove("zzz")
		m.Retain(func(string, int) bool { return true })
		FromEntries([]Entry[string, int]{{"x", 1}, {"x", 2}})
	})
}

func TestContract_InsertUnchecked_Duplicate(t *testing.T) {
	m := New[string, int]()
	m.Insert("a", 1)

	cv, logged := captureViolation(t, func() {
		m.InsertUnchecked("a", 2)
	})

	assert.Equal(t, "InsertUnchecked", cv.Op)
	assert.Equal(t, 0, cv.Index)
	assert.Contains(t, logged, "vecmap contract violated")
	assert.Contains(t, logged, "op=InsertUnchecked")
}

func TestContract_Insert_DuplicateAfterKeyMutation(t *testing.T) {
	m := FromEntries([]Entry[string, int]{{"a", 1}, {"b", 2}, {"c", 3}})
	*m.KeyMutUnchecked(2) = "a"

	cv, _ := captureViolation(t, func() {
		m.Insert("a", 10)
	})

	assert.Equal(t, "Insert", cv.Op)
	assert.Equal(t, "duplicate key", cv.Reason)
	assert.Equal(t, 2, cv.Index)
}

func TestContract_Remove_DuplicateAfterKeyMutation(t *testing.T) {
	m := FromEntries([]Entry[int, int]{{1, 1}, {2, 2}})
	keys, _ := m.SlicesUnchecked()
	keys[1] = 1

	cv, _ := captureViolation(t, func() {
		m.Remove(1)
	})

	assert.Equal(t, "Remove", cv.Op)
	assert.Equal(t, 1, cv.Index)
}

// The hooks continue the search Insert already did, so with contracts on a
// hit still costs Len comparisons in total rather than two full scans.
func TestContract_Insert_ReusesSearch(t *testing.T) {
	var calls int
	m := NewFunc[int, int](countingEqual[int](&calls))
	for i := range 10 {
		m.Insert(i, i)
	}

	calls = 0
	m.Insert(4, 40)

	// find: 5 comparisons, replaced slot check: 1, tail scan: 5.
	require.Equal(t, 11, calls)
}

func TestContractViolation_Error(t *testing.T) {
	cv := &ContractViolation{Op: "Insert", Reason: "duplicate key", Index: 3, Len: 5}

	assert.Equal(t, "vecmap: Insert: duplicate key (index 3, len 5)", cv.Error())
	assert.ErrorIs(t, cv, ErrContractViolation)
}
