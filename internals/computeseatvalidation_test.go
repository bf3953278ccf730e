package internals

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestValidateSeat(t *testing.T) {
	tests := []struct {
		name    string
		cargo   int
		seat    int
		wantErr error
		message string
	}{
		{name: "first seat", cargo: 1, seat: 1},
		{name: "last seat", cargo: 5, seat: 20},
		{name: "cargo too low", cargo: 0, seat: 1, wantErr: ErrInvalidCargo, message: "cargo must be between 1 and 5, not 0"},
		{name: "cargo too high", cargo: 6, seat: 1, wantErr: ErrInvalidCargo, message: "cargo must be between 1 and 5, not 6"},
		{name: "seat too low", cargo: 1, seat: 0, wantErr: ErrInvalidSeat, message: "seat must be between 1 and 20, not 0"},
		{name: "seat too high", cargo: 1, seat: 21, wantErr: ErrInvalidSeat, message: "seat must be between 1 and 20, not 21"},
		{name: "both invalid reports cargo only", cargo: -1, seat: 99, wantErr: ErrInvalidCargo, message: "cargo must be between 1 and 5, not -1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSeat(tt.cargo, tt.seat, 5, 20)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
			assert.Equal(t, tt.message, err.Error())

			var seatErr *SeatError
			require.True(t, errors.As(err, &seatErr))
			if errors.Is(err, ErrInvalidCargo) {
				assert.Equal(t, "cargo", seatErr.Field)
				assert.Equal(t, tt.cargo, seatErr.Value)
				assert.Equal(t, 5, seatErr.Max)
			} else {
				assert.Equal(t, "seat", seatErr.Field)
				assert.Equal(t, tt.seat, seatErr.Value)
				assert.Equal(t, 20, seatErr.Max)
			}
		})
	}
}

func TestValidateSeatExhaustive(t *testing.T) {
	// succeeds iff 1 <= cargo <= cargoNum and 1 <= seat <= placeInCargo
	for cargoNum := 1; cargoNum <= 3; cargoNum++ {
		for placeInCargo := 1; placeInCargo <= 3; placeInCargo++ {
			for cargo := -1; cargo <= cargoNum+1; cargo++ {
				for seat := -1; seat <= placeInCargo+1; seat++ {
					valid := cargo >= 1 && cargo <= cargoNum && seat >= 1 && seat <= placeInCargo
					err := ValidateSeat(cargo, seat, cargoNum, placeInCargo)
					assert.Equal(t, valid, err == nil, "cargo=%d seat=%d cargoNum=%d placeInCargo=%d", cargo, seat, cargoNum, placeInCargo)
				}
			}
		}
	}
}

func TestSeatConflictError(t *testing.T) {
	err := error(&SeatConflictError{JourneyID: 3, Cargo: 1, Seat: 10})

	assert.True(t, errors.Is(err, ErrSeatConflict))
	assert.Equal(t, "cargo 1 seat 10 on journey 3 is already taken", err.Error())
}

func TestComputeCapacity(t *testing.T) {
	assert.Equal(t, 100, ComputeCapacity(5, 20))
}
