package fixed

import "errors"

var (
	ErrContractViolation = errors.New("fixed: source yielded fewer elements than declared")
	ErrLengthMismatch    = errors.New("fixed: length mismatch")
	ErrNotReversible     = errors.New("fixed: sequence cannot be traversed backwards")
	ErrZeroStride        = errors.New("fixed: step must be positive")
)
