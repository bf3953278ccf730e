package handlers

import (
	"net/http"
	"railway-booking-server/db"
	"railway-booking-server/model"
	"railway-booking-server/policy"
)

func HandleJourneys(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getJourneys(w, r)
	case "POST":
		createJourney(w, r)
	default:
		methodNotSupported(w)
	}
}

func HandleJourney(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getJourney(w, r)
	case "DELETE":
		deleteJourney(w, r)
	default:
		methodNotSupported(w)
	}
}

// journeySummaries lists every journey with its available seats
func journeySummaries() ([]model.JourneySummary, error) {
	journeyDAO := db.NewJourneyDAO(db.GetDB())
	journeys, err := journeyDAO.GetJourneys()
	if err != nil {
		return nil, err
	}

	seatLedgerDAO := db.NewSeatLedgerDAO(db.GetDB())
	availability, err := seatLedgerDAO.ListJourneyAvailability()
	if err != nil {
		return nil, err
	}

	return newJourneySummaries(journeys, availability), nil
}

// journeySummariesByIds only reads the given journeys and their availability
func journeySummariesByIds(journeyIDs []int) ([]model.JourneySummary, error) {
	journeyDAO := db.NewJourneyDAO(db.GetDB())
	journeys, err := journeyDAO.GetJourneysByIds(journeyIDs)
	if err != nil {
		return nil, err
	}

	seatLedgerDAO := db.NewSeatLedgerDAO(db.GetDB())
	availability, err := seatLedgerDAO.JourneyAvailability(journeyIDs)
	if err != nil {
		return nil, err
	}

	return newJourneySummaries(journeys, availability), nil
}

func newJourneySummaries(journeys []model.Journey, availability map[int]int) []model.JourneySummary {
	summaries := []model.JourneySummary{}
	for _, journey := range journeys {
		summaries = append(summaries, model.NewJourneySummary(journey, availability[journey.JourneyID]))
	}
	return summaries
}

func getJourneys(w http.ResponseWriter, r *http.Request) {
	_, ok := authorizeRequest(w, r, policy.ResourceReference)
	if !ok {
		return
	}

	summaries, err := journeySummaries()
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summaries)
}

func getJourney(w http.ResponseWriter, r *http.Request) {
	_, ok := authorizeRequest(w, r, policy.ResourceReference)
	if !ok {
		return
	}
	journeyID, ok := extractID(w, r)
	if !ok {
		return
	}

	journeyDAO := db.NewJourneyDAO(db.GetDB())
	journey, err := journeyDAO.GetJourneyDetails(journeyID)
	if err != nil {
		writeError(w, err)
		return
	}

	seatLedgerDAO := db.NewSeatLedgerDAO(db.GetDB())
	available, err := seatLedgerDAO.AvailableCount(journeyID)
	if err != nil {
		writeError(w, err)
		return
	}
	soldTickets, err := seatLedgerDAO.SoldTickets(journeyID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.NewJourneyDetail(journey, available, soldTickets))
}

func createJourney(w http.ResponseWriter, r *http.Request) {
	_, ok := authorizeRequest(w, r, policy.ResourceReference)
	if !ok {
		return
	}

	var request model.JourneyRequest
	if !decodeBody(w, r, &request) {
		return
	}

	journeyDAO := db.NewJourneyDAO(db.GetDB())
	journey, err := journeyDAO.CreateJourney(request)
	if err != nil {
		writeError(w, err)
		return
	}

	// a new journey has every seat available
	writeJSON(w, http.StatusCreated, model.NewJourneySummary(journey, journey.Train.Capacity()))
}

func deleteJourney(w http.ResponseWriter, r *http.Request) {
	_, ok := authorizeRequest(w, r, policy.ResourceReference)
	if !ok {
		return
	}
	journeyID, ok := extractID(w, r)
	if !ok {
		return
	}

	journeyDAO := db.NewJourneyDAO(db.GetDB())
	err := journeyDAO.DeleteJourney(journeyID)
	if err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
