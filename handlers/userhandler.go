package handlers

import (
	"net/http"
	"railway-booking-server/db"
	"railway-booking-server/policy"
)

// HandleUsers returns the caller, provisioned on its first authenticated request
func HandleUsers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getCurrentUser(w, r)
	default:
		methodNotSupported(w)
	}
}

func getCurrentUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := authorizeRequest(w, r, policy.ResourceUser)
	if !ok {
		return
	}

	userDAO := db.NewUserDAO(db.GetDB())
	user, err := userDAO.GetUserById(actor.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
