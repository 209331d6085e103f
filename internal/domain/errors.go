package domain

import "errors"

// --- Error Definitions ---
var (
	ErrUnknownActivityCode = errors.New("unknown activity code")
	ErrArityMismatch       = errors.New("wrong number of parameters for activity")
	ErrInvalidParameter    = errors.New("invalid workout parameter")
	ErrComputationFault    = errors.New("workout metrics cannot be computed")
)
