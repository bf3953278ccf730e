package handlers

import (
	"log"
	"net/http"
	"railway-booking-server/db"
)

func HandleResetTestDatabase(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "POST":
		resetTestDatabase(w, r)
	default:
		methodNotSupported(w)
	}
}

func resetTestDatabase(w http.ResponseWriter, r *http.Request) {
	err := db.ResetTestDatabase()
	if err != nil {
		log.Println("Error resetting test database: ", err)
		http.Error(w, "Error resetting test database", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
