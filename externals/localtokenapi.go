package externals

import (
	"context"
	"fmt"
	"github.com/golang-jwt/jwt/v5"
	"time"
)

// LocalClaims are carried by the tokens signed by the server itself,
// used for local runs and tests instead of firebase
type LocalClaims struct {
	Email string `json:"email,omitempty"`
	Admin bool   `json:"admin,omitempty"`
	jwt.RegisteredClaims
}

type LocalTokenVerifier struct {
	secret []byte
}

func NewLocalTokenVerifier(secret string) *LocalTokenVerifier {
	return &LocalTokenVerifier{secret: []byte(secret)}
}

func (verifier *LocalTokenVerifier) IssueToken(uid, email string, admin bool, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := LocalClaims{
		Email: email,
		Admin: admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(verifier.secret)
}

func (verifier *LocalTokenVerifier) VerifyToken(ctx context.Context, idToken string) (Identity, error) {
	claims := &LocalClaims{}
	token, err := jwt.ParseWithClaims(idToken, claims, func(token *jwt.Token) (interface{}, error) {
		return verifier.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return Identity{}, ErrInvalidToken
	}

	return Identity{UID: claims.Subject, Email: claims.Email, Admin: claims.Admin}, nil
}
