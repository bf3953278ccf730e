package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"railway-booking-server/config"
	"railway-booking-server/db"
	"railway-booking-server/externals"
	"railway-booking-server/model"
	"railway-booking-server/policy"
	"testing"
	"time"
)

var testVerifier = externals.NewLocalTokenVerifier("test-secret")

func setupHandlers(t *testing.T) {
	t.Helper()

	_, err := db.InitDB(config.Config{
		TestMode:   "test",
		DBDriver:   config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "railway.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.CloseDBConnection()
	})

	requestAuthorizer, err := policy.NewAuthorizer(context.Background())
	require.NoError(t, err)
	InitializeAuthentication(testVerifier, requestAuthorizer)
}

func tokenFor(t *testing.T, uid string, admin bool) string {
	t.Helper()

	token, err := testVerifier.IssueToken(uid, uid+"@example.com", admin, time.Hour)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, handler http.HandlerFunc, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var payload bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&payload).Encode(body))
	}
	r := httptest.NewRequest(method, path, &payload)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	handler(w, r)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder, value interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(w.Body).Decode(value), w.Body.String())
}

// seedJourney creates the reference data of one journey through the api, as an administrator
func seedJourney(t *testing.T, adminToken string, cargoNum, placeInCargo int) model.JourneySummary {
	t.Helper()

	var source, destination model.Station
	w := doRequest(t, HandleStations, "POST", "/stations", adminToken, model.Station{Name: "Kyiv", Latitude: 50.45, Longitude: 30.52})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	decodeResponse(t, w, &source)
	w = doRequest(t, HandleStations, "POST", "/stations", adminToken, model.Station{Name: "Lviv", Latitude: 49.84, Longitude: 24.03})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	decodeResponse(t, w, &destination)

	var route RouteResponse
	w = doRequest(t, HandleRoutes, "POST", "/routes", adminToken, model.RouteRequest{
		Source: source.StationID, Destination: destination.StationID, Distance: 540,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	decodeResponse(t, w, &route)

	var trainType model.TrainType
	w = doRequest(t, HandleTrainTypes, "POST", "/train-types", adminToken, model.TrainType{Name: fmt.Sprintf("type-%dx%d-%s", cargoNum, placeInCargo, t.Name())})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	decodeResponse(t, w, &trainType)

	// an idle train first, so that the train id differs from the journey id
	w = doRequest(t, HandleTrains, "POST", "/trains", adminToken, model.TrainRequest{
		Name: "Reserve", CargoNum: 1, PlaceInCargo: 1, TrainType: trainType.TrainTypeID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var train model.Train
	w = doRequest(t, HandleTrains, "POST", "/trains", adminToken, model.TrainRequest{
		Name: "Intercity", CargoNum: cargoNum, PlaceInCargo: placeInCargo, TrainType: trainType.TrainTypeID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	decodeResponse(t, w, &train)

	departure := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	var journey model.JourneySummary
	w = doRequest(t, HandleJourneys, "POST", "/journeys", adminToken, model.JourneyRequest{
		Route: route.RouteID, Train: train.TrainID, DepartureTime: departure, ArrivalTime: departure.Add(5 * time.Hour),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	decodeResponse(t, w, &journey)
	return journey
}

func orderBody(tickets ...model.TicketRequest) model.OrderRequest {
	return model.OrderRequest{Tickets: tickets}
}
