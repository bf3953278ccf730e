package db

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"railway-booking-server/internals"
	"railway-booking-server/model"
	"testing"
	"time"
)

func TestGetJourneyTrainResolvesTheJourneysTrain(t *testing.T) {
	database := openTestDB(t)
	n := seedNetwork(t, database)
	trainDAO := NewTrainDAO(database)

	_, err := trainDAO.CreateTrain(model.TrainRequest{Name: "Regional", CargoNum: 1, PlaceInCargo: 1, TrainType: n.trainType.TrainTypeID})
	require.NoError(t, err)
	large, err := trainDAO.CreateTrain(model.TrainRequest{Name: "Intercity", CargoNum: 5, PlaceInCargo: 20, TrainType: n.trainType.TrainTypeID})
	require.NoError(t, err)

	journey, err := NewJourneyDAO(database).CreateJourney(model.JourneyRequest{
		Route:         n.route.RouteID,
		Train:         large.TrainID,
		DepartureTime: departure,
		ArrivalTime:   departure.Add(5 * time.Hour),
	})
	require.NoError(t, err)
	// the lookup must not depend on the two ids being equal
	require.NotEqual(t, journey.JourneyID, large.TrainID)

	resolved, err := NewJourneyDAO(database).GetJourneyTrain(journey.JourneyID)
	require.NoError(t, err)
	require.NotNil(t, resolved.Train)
	assert.Equal(t, journey.TrainID, resolved.Train.TrainID)
	assert.Equal(t, "Intercity", resolved.Train.Name)

	// capacity follows the 5x20 train
	actor := seedActor(t, database, "alice")
	order, err := NewOrderDAO(database).CreateOrder(actor, []model.TicketRequest{{Cargo: 3, Seat: 3, JourneyID: journey.JourneyID}})
	require.NoError(t, err)
	assert.Len(t, order.Tickets, 1)

	_, err = NewOrderDAO(database).CreateOrder(actor, []model.TicketRequest{{Cargo: 6, Seat: 1, JourneyID: journey.JourneyID}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, internals.ErrInvalidCargo))
	assert.Equal(t, "cargo must be between 1 and 5, not 6", err.Error())

	available, err := NewSeatLedgerDAO(database).AvailableCount(journey.JourneyID)
	require.NoError(t, err)
	assert.Equal(t, 99, available)
}

func TestGetJourneyDetailsLoadsRouteAndTrain(t *testing.T) {
	database := openTestDB(t)
	n := seedNetwork(t, database)
	seedJourney(t, database, n, 2, 10)
	journey := seedJourney(t, database, n, 5, 20)

	details, err := NewJourneyDAO(database).GetJourneyDetails(journey.JourneyID)
	require.NoError(t, err)
	require.NotNil(t, details.Route)
	require.NotNil(t, details.Train)
	assert.Equal(t, journey.TrainID, details.Train.TrainID)
	assert.Equal(t, "Intercity 5x20: cargo: 5, place: 20, train_type: express", details.Train.String())
	assert.Equal(t, "Kyiv - Lviv: 540km.", details.Route.String())
}

func TestGetJourneysByIdsOnlyReadsTheGivenJourneys(t *testing.T) {
	database := openTestDB(t)
	n := seedNetwork(t, database)
	first := seedJourney(t, database, n, 5, 20)
	second := seedJourney(t, database, n, 2, 10)
	bookSeats(t, database, second, 1, 2)

	journeys, err := NewJourneyDAO(database).GetJourneysByIds([]int{second.JourneyID, 999})
	require.NoError(t, err)
	require.Len(t, journeys, 1)
	assert.Equal(t, second.JourneyID, journeys[0].JourneyID)
	require.NotNil(t, journeys[0].Train)
	assert.Equal(t, second.TrainID, journeys[0].Train.TrainID)

	availability, err := NewSeatLedgerDAO(database).JourneyAvailability([]int{second.JourneyID})
	require.NoError(t, err)
	assert.Equal(t, map[int]int{second.JourneyID: 18}, availability)
	assert.NotContains(t, availability, first.JourneyID)

	empty, err := NewJourneyDAO(database).GetJourneysByIds(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
