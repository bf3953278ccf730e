package handlers

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"railway-booking-server/model"
	"testing"
)

func TestCustomersCannotMutateReferenceData(t *testing.T) {
	setupHandlers(t)
	alice := tokenFor(t, "alice", false)

	w := doRequest(t, HandleStations, "POST", "/stations", alice, model.Station{Name: "Odesa", Latitude: 46.48, Longitude: 30.72})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(t, HandleStations, "GET", "/stations", alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = doRequest(t, HandleStations, "GET", "/stations", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, HandleTrain, "DELETE", "/trains/1", alice, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestReferenceDataValidation(t *testing.T) {
	setupHandlers(t)
	admin := tokenFor(t, "admin", true)

	w := doRequest(t, HandleTrains, "POST", "/trains", admin, model.TrainRequest{Name: "Broken", CargoNum: 0, PlaceInCargo: 10, TrainType: 1})
	require.Equal(t, http.StatusBadRequest, w.Code)
	var fieldErr FieldErrorResponse
	decodeResponse(t, w, &fieldErr)
	assert.Equal(t, "invalid_field", fieldErr.Error)
	assert.Equal(t, "cargo_num", fieldErr.Field)

	w = doRequest(t, HandleCrew, "POST", "/crew", admin, model.Crew{FirstName: "John", LastName: "Doe"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = doRequest(t, HandleCrew, "GET", "/crew", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var crew []model.Crew
	decodeResponse(t, w, &crew)
	require.Len(t, crew, 1)
	assert.Equal(t, "John Doe", crew[0].String())
}

func TestDeleteJourneyRemovesTickets(t *testing.T) {
	setupHandlers(t)
	admin := tokenFor(t, "admin", true)
	alice := tokenFor(t, "alice", false)
	journey := seedJourney(t, admin, 2, 2)

	w := doRequest(t, HandleOrders, "POST", "/orders", alice, orderBody(model.TicketRequest{Cargo: 1, Seat: 1, JourneyID: journey.JourneyID}))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doRequest(t, HandleJourneys, "GET", "/journeys", alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var journeys []model.JourneySummary
	decodeResponse(t, w, &journeys)
	require.Len(t, journeys, 1)
	assert.Equal(t, 3, journeys[0].TicketsAvailable)

	w = doRequest(t, HandleJourney, "DELETE", fmt.Sprintf("/journeys/%d", journey.JourneyID), alice, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = doRequest(t, HandleJourney, "DELETE", fmt.Sprintf("/journeys/%d", journey.JourneyID), admin, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, HandleTickets, "GET", "/tickets", alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = doRequest(t, HandleJourney, "GET", fmt.Sprintf("/journeys/%d", journey.JourneyID), alice, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
