package handlers

import (
	"errors"
	"log"
	"net/http"
	"railway-booking-server/db"
	"railway-booking-server/externals"
	"railway-booking-server/policy"
	"strings"
)

var (
	tokenVerifier externals.TokenVerifier
	authorizer    *policy.Authorizer
)

func InitializeAuthentication(verifier externals.TokenVerifier, requestAuthorizer *policy.Authorizer) {
	tokenVerifier = verifier
	authorizer = requestAuthorizer
}

// authenticateRequest resolves the bearer token to an actor, provisioning the user
// on its first request. A request without Authorization header is anonymous.
func authenticateRequest(r *http.Request) (policy.Actor, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return policy.Actor{}, nil
	}
	idToken, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || idToken == "" {
		return policy.Actor{}, externals.ErrInvalidToken
	}

	identity, err := tokenVerifier.VerifyToken(r.Context(), idToken)
	if err != nil {
		return policy.Actor{}, err
	}

	userDAO := db.NewUserDAO(db.GetDB())
	user, err := userDAO.GetOrCreateUserByFirebaseUID(identity.UID, identity.Email)
	if err != nil {
		return policy.Actor{}, err
	}

	return policy.NewActor(user.UserID, identity.Admin || user.IsStaff), nil
}

// authorizeRequest authenticates the caller and applies the access policy for the
// kind of resource. When it returns false the response has already been written.
func authorizeRequest(w http.ResponseWriter, r *http.Request, resource policy.Resource) (policy.Actor, bool) {
	actor, err := authenticateRequest(r)
	if errors.Is(err, externals.ErrInvalidToken) {
		log.Println("Unauthorized: ", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return policy.Actor{}, false
	}
	if err != nil {
		log.Println("Error authenticating request: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return policy.Actor{}, false
	}

	err = authorizer.Authorize(r.Context(), actor, r.Method, resource)
	if err != nil {
		writeError(w, err)
		return policy.Actor{}, false
	}

	return actor, true
}
