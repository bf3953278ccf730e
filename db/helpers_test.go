package db

import (
	"errors"
	"fmt"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"path/filepath"
	"railway-booking-server/config"
	"railway-booking-server/model"
	"railway-booking-server/policy"
	"testing"
	"time"
)

var departure = time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

// openTestDB opens a fresh sqlite database through InitDB, the same path used by the server
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := InitDB(config.Config{
		TestMode:   "test",
		DBDriver:   config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "railway.db"),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = CloseDBConnection()
	})
	return database
}

type network struct {
	source      model.Station
	destination model.Station
	route       model.Route
	trainType   model.TrainType
}

func seedNetwork(t *testing.T, database *gorm.DB) network {
	t.Helper()
	stationDAO := NewStationDAO(database)

	source, err := stationDAO.CreateStation(model.Station{Name: "Kyiv", Latitude: 50.45, Longitude: 30.52})
	require.NoError(t, err)
	destination, err := stationDAO.CreateStation(model.Station{Name: "Lviv", Latitude: 49.84, Longitude: 24.03})
	require.NoError(t, err)

	route, err := NewRouteDAO(database).CreateRoute(model.RouteRequest{
		Source:      source.StationID,
		Destination: destination.StationID,
		Distance:    540,
	})
	require.NoError(t, err)

	trainType, err := NewTrainDAO(database).CreateTrainType(model.TrainType{Name: "express"})
	require.NoError(t, err)

	// a train without journeys, so that train ids and journey ids never coincide
	_, err = NewTrainDAO(database).CreateTrain(model.TrainRequest{
		Name:         "Reserve 1x1",
		CargoNum:     1,
		PlaceInCargo: 1,
		TrainType:    trainType.TrainTypeID,
	})
	require.NoError(t, err)

	return network{source: source, destination: destination, route: route, trainType: trainType}
}

func seedJourney(t *testing.T, database *gorm.DB, n network, cargoNum, placeInCargo int) model.Journey {
	t.Helper()

	train, err := NewTrainDAO(database).CreateTrain(model.TrainRequest{
		Name:         fmt.Sprintf("Intercity %dx%d", cargoNum, placeInCargo),
		CargoNum:     cargoNum,
		PlaceInCargo: placeInCargo,
		TrainType:    n.trainType.TrainTypeID,
	})
	require.NoError(t, err)

	journey, err := NewJourneyDAO(database).CreateJourney(model.JourneyRequest{
		Route:         n.route.RouteID,
		Train:         train.TrainID,
		DepartureTime: departure,
		ArrivalTime:   departure.Add(5 * time.Hour),
	})
	require.NoError(t, err)
	return journey
}

func seedActor(t *testing.T, database *gorm.DB, uid string) policy.Actor {
	t.Helper()

	user, err := NewUserDAO(database).GetOrCreateUserByFirebaseUID(uid, uid+"@example.com")
	require.NoError(t, err)
	return policy.NewActor(user.UserID, false)
}

func countRows(t *testing.T, database *gorm.DB, value interface{}) int64 {
	t.Helper()

	var count int64
	require.NoError(t, database.Model(value).Count(&count).Error)
	return count
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
