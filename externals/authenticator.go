package externals

import (
	"context"
	"errors"
)

var ErrInvalidToken = errors.New("invalid authentication token")

// Identity is what an identity provider vouches for
type Identity struct {
	UID   string
	Email string
	Admin bool
}

type TokenVerifier interface {
	VerifyToken(ctx context.Context, idToken string) (Identity, error)
}
