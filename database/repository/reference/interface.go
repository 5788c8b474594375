package referenceRepo

import (
	"context"
	"errors"
)

// ErrCodeTaken is returned by Reserve when the code has already been issued.
var ErrCodeTaken = errors.New("booking reference code already issued")

// ReferenceRepository is the ledger of issued booking reference codes. The
// ledger grows monotonically; codes are never released.
type ReferenceRepository interface {
	// Reserve records a code as issued. Reservation must be atomic with the
	// existence check: two concurrent reservations of the same code must
	// yield exactly one success and one ErrCodeTaken.
	Reserve(ctx context.Context, code string) error
	Exists(ctx context.Context, code string) (bool, error)
}
