package booking

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	referenceRepo "eventra/database/repository/reference"
)

// referenceAlphabet deliberately omits "0" so a printed code is never
// misread against "O".
const referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ123456789"

const (
	referenceLength      = 10
	maxReferenceAttempts = 8
)

// ReferenceGenerator produces short unique human-readable booking codes.
// Every accepted candidate is written to the ledger before it is returned,
// and the ledger's unique constraint arbitrates concurrent generation: two
// calls can never hand out the same code.
type ReferenceGenerator struct {
	Refs referenceRepo.ReferenceRepository
}

// Generate returns a fresh booking reference. Collisions are retried
// internally; only an exhausted retry budget or a storage failure surfaces
// as an error.
func (g *ReferenceGenerator) Generate(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxReferenceAttempts; attempt++ {
		code, err := randomCode(referenceLength)
		if err != nil {
			return "", &InfrastructureError{Op: "generate booking reference", Err: err}
		}
		err = g.Refs.Reserve(ctx, code)
		if err == nil {
			return code, nil
		}
		if err == referenceRepo.ErrCodeTaken {
			continue
		}
		return "", &InfrastructureError{Op: "reserve booking reference", Err: err}
	}
	return "", &InfrastructureError{
		Op:  "generate booking reference",
		Err: fmt.Errorf("no unique code after %d attempts", maxReferenceAttempts),
	}
}

func randomCode(length int) (string, error) {
	max := big.NewInt(int64(len(referenceAlphabet)))
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = referenceAlphabet[n.Int64()]
	}
	return string(buf), nil
}
