package internals

// ValidateSeat checks a (cargo, seat) pair against the capacity of a train.
// Cargo is checked first, so when both are out of range only the cargo error is returned.
func ValidateSeat(cargo, seat, cargoNum, placeInCargo int) error {
	if cargo < 1 || cargo > cargoNum {
		return &SeatError{Kind: ErrInvalidCargo, Field: "cargo", Value: cargo, Max: cargoNum}
	}
	if seat < 1 || seat > placeInCargo {
		return &SeatError{Kind: ErrInvalidSeat, Field: "seat", Value: seat, Max: placeInCargo}
	}
	return nil
}

// ComputeCapacity returns the total number of seats of a train
func ComputeCapacity(cargoNum, placeInCargo int) int {
	return cargoNum * placeInCargo
}
