package externals

import (
	"context"
	"firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"fmt"
	"google.golang.org/api/option"
)

// admin custom claim, set on staff accounts through the firebase admin sdk
const adminClaim = "admin"

type FirebaseVerifier struct {
	authClient *auth.Client
}

func NewFirebaseVerifier(ctx context.Context, credentialsFile string) (*FirebaseVerifier, error) {
	opt := option.WithCredentialsFile(credentialsFile)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase admin sdk: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase auth client: %w", err)
	}

	return &FirebaseVerifier{authClient: authClient}, nil
}

func (verifier *FirebaseVerifier) VerifyToken(ctx context.Context, idToken string) (Identity, error) {
	token, err := verifier.authClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return identityFromClaims(token.UID, token.Claims), nil
}

func identityFromClaims(uid string, claims map[string]interface{}) Identity {
	identity := Identity{UID: uid}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if admin, ok := claims[adminClaim].(bool); ok {
		identity.Admin = admin
	}
	return identity
}
