package vecmap

import (
	"fmt"
	"log/slog"
	"sync/atomic"
)

// ContractViolation is the panic value raised when the map detects a broken
// invariant. It is only ever raised in builds with the vecmap_contracts tag.
//
// The violation can be matched with errors.Is(err, ErrContractViolation).
type ContractViolation struct {
	Op     string
	Reason string
	Index  int
	Len    int
}

func (e *ContractViolation) Error() string {
	return fmt.Sprintf("vecmap: %s: %s (index %d, len %d)", e.Op, e.Reason, e.Index, e.Len)
}

func (e *ContractViolation) Unwrap() error { return ErrContractViolation }

var contractLogger atomic.Pointer[slog.Logger]

// SetContractLogger sets the logger that reports contract violations before
// the panic. A nil logger restores slog.Default().
func SetContractLogger(l *slog.Logger) {
	contractLogger.Store(l)
}

func violate(op, reason string, index, length int) {
	cv := &ContractViolation{
		Op:     op,
		Reason: reason,
		Index:  index,
		Len:    length,
	}

	logger := contractLogger.Load()
	if logger == nil {
		logger = slog.Default()
	}

	logger.Error("vecmap contract violated",
		slog.String("op", op),
		slog.String("reason", reason),
		slog.Int("index", index),
		slog.Int("len", length),
	)

	panic(cv)
}

// validate walks the whole table. It's O(n^2) and never runs on a hot path.
func (t *table[K, V]) validate() error {
	if len(t.keys) != len(t.values) {
		return fmt.Errorf("%w: %d keys, %d values", ErrLengthMismatch, len(t.keys), len(t.values))
	}

	for i := range t.keys {
		for j := i + 1; j < len(t.keys); j++ {
			if t.equal(t.keys[i], t.keys[j]) {
				return fmt.Errorf("%w: entries %d and %d", ErrDuplicateKey, i, j)
			}
		}
	}

	return nil
}
