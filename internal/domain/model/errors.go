package model

import "errors"

// Failure taxonomy for the storage core. Handlers map these onto HTTP
// statuses and a retryable flag for the capture client.
var (
	// ErrInvalidCapture marks bad input rejected before any I/O.
	ErrInvalidCapture = errors.New("invalid capture")

	// ErrSizeExceeded marks a payload over the per-file ceiling.
	ErrSizeExceeded = errors.New("size exceeded")

	// ErrStorageWriteFailed marks a blob store fault. No ledger row exists.
	ErrStorageWriteFailed = errors.New("storage write failed")

	// ErrLedgerWriteFailed marks a database fault after a successful blob
	// write. The blob has been removed by the compensating delete.
	ErrLedgerWriteFailed = errors.New("ledger write failed")

	// ErrNotFound marks a record or blob that does not exist.
	ErrNotFound = errors.New("not found")
)

// Retryable reports whether the capture client may usefully retry the
// same request. Invalid input and policy violations are client-fixable,
// storage and ledger faults are transient server-side conditions.
func Retryable(err error) bool {
	return errors.Is(err, ErrStorageWriteFailed) || errors.Is(err, ErrLedgerWriteFailed)
}
