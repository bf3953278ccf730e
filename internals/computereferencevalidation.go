package internals

import (
	"strings"
	"time"
)

func ValidateRoute(sourceID, destinationID, distance int) error {
	if sourceID == destinationID {
		return &FieldError{Field: "destination", Message: "destination must differ from source"}
	}
	if distance <= 0 {
		return &FieldError{Field: "distance", Message: "distance must be a positive number of kilometers"}
	}
	return nil
}

func ValidateTrain(name string, cargoNum, placeInCargo int) error {
	if strings.TrimSpace(name) == "" {
		return &FieldError{Field: "name", Message: "name is required"}
	}
	if cargoNum <= 0 {
		return &FieldError{Field: "cargo_num", Message: "cargo_num must be positive"}
	}
	if placeInCargo <= 0 {
		return &FieldError{Field: "place_in_cargo", Message: "place_in_cargo must be positive"}
	}
	return nil
}

func ValidateJourney(departureTime, arrivalTime time.Time) error {
	if departureTime.IsZero() {
		return &FieldError{Field: "departure_time", Message: "departure_time is required"}
	}
	if !arrivalTime.After(departureTime) {
		return &FieldError{Field: "arrival_time", Message: "arrival_time must be after departure_time"}
	}
	return nil
}

func ValidateStation(name string, latitude, longitude float64) error {
	if strings.TrimSpace(name) == "" {
		return &FieldError{Field: "name", Message: "name is required"}
	}
	if latitude < -90 || latitude > 90 {
		return &FieldError{Field: "latitude", Message: "latitude must be between -90 and 90"}
	}
	if longitude < -180 || longitude > 180 {
		return &FieldError{Field: "longitude", Message: "longitude must be between -180 and 180"}
	}
	return nil
}

// ValidateName is used for train types and crew members
func ValidateName(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &FieldError{Field: field, Message: field + " is required"}
	}
	return nil
}
