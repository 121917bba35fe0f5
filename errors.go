package vecmap

import "errors"

var (
	// ErrContractViolation is wrapped by every ContractViolation panic.
	ErrContractViolation = errors.New("vecmap: contract violation")

	// ErrDuplicateKey is returned by Validate when two stored keys are equal.
	ErrDuplicateKey = errors.New("vecmap: duplicate key")

	// ErrLengthMismatch is returned by Validate when the key and value
	// slices have diverged.
	ErrLengthMismatch = errors.New("vecmap: keys and values length mismatch")
)
