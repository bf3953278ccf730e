package handlers

import (
	"encoding/json"
	"errors"
	"gorm.io/gorm"
	"log"
	"net/http"
	"railway-booking-server/internals"
	"railway-booking-server/policy"
	"strconv"
	"strings"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type SeatErrorResponse struct {
	Error   string `json:"error"`
	Field   string `json:"field"`
	Value   int    `json:"value"`
	Max     int    `json:"max"`
	Message string `json:"message"`
}

type SeatConflictResponse struct {
	Error   string `json:"error"`
	Journey int    `json:"journey"`
	Cargo   int    `json:"cargo"`
	Seat    int    `json:"seat"`
	Message string `json:"message"`
}

type FieldErrorResponse struct {
	Error   string `json:"error"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, value interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(value)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
	}
}

// writeError renders the booking and policy errors, anything else is an opaque 500
func writeError(w http.ResponseWriter, err error) {
	var seatErr *internals.SeatError
	var conflictErr *internals.SeatConflictError
	var fieldErr *internals.FieldError

	switch {
	case errors.As(err, &seatErr):
		kind := "invalid_seat"
		if errors.Is(seatErr, internals.ErrInvalidCargo) {
			kind = "invalid_cargo"
		}
		writeJSON(w, http.StatusBadRequest, SeatErrorResponse{
			Error:   kind,
			Field:   seatErr.Field,
			Value:   seatErr.Value,
			Max:     seatErr.Max,
			Message: seatErr.Error(),
		})
	case errors.As(err, &conflictErr):
		writeJSON(w, http.StatusConflict, SeatConflictResponse{
			Error:   "seat_conflict",
			Journey: conflictErr.JourneyID,
			Cargo:   conflictErr.Cargo,
			Seat:    conflictErr.Seat,
			Message: conflictErr.Error(),
		})
	case errors.Is(err, internals.ErrEmptyOrder):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "empty_order", Message: err.Error()})
	case errors.Is(err, internals.ErrJourneyNotFound):
		writeJSON(w, http.StatusBadRequest, FieldErrorResponse{Error: "journey_not_found", Field: "journey", Message: err.Error()})
	case errors.As(err, &fieldErr):
		writeJSON(w, http.StatusBadRequest, FieldErrorResponse{Error: "invalid_field", Field: fieldErr.Field, Message: fieldErr.Message})
	case errors.Is(err, gorm.ErrRecordNotFound):
		http.Error(w, "Not found", http.StatusNotFound)
	case errors.Is(err, policy.ErrUnauthenticated):
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	case errors.Is(err, policy.ErrForbidden):
		http.Error(w, "Forbidden", http.StatusForbidden)
	default:
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func methodNotSupported(w http.ResponseWriter) {
	log.Println("Method not supported")
	http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
}

// extractID reads the id from paths like /orders/{id}
func extractID(w http.ResponseWriter, r *http.Request) (int, bool) {
	parts := strings.Split(r.URL.Path, "/")
	if len(parts) != 3 || parts[2] == "" {
		log.Println("Invalid path")
		http.Error(w, "ID not provided", http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.Atoi(parts[2])
	if err != nil || id <= 0 {
		log.Println("Invalid ID")
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, value interface{}) bool {
	defer func() {
		err := r.Body.Close()
		if err != nil {
			log.Println("Error closing request body: ", err)
		}
	}()

	err := json.NewDecoder(r.Body).Decode(value)
	if err != nil {
		log.Println("Error decoding JSON: ", err)
		http.Error(w, "Invalid data format", http.StatusBadRequest)
		return false
	}
	return true
}
