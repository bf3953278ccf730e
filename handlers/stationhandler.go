package handlers

import (
	"net/http"
	"railway-booking-server/db"
	"railway-booking-server/model"
	"railway-booking-server/policy"
)

func HandleStations(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getStations(w, r)
	case "POST":
		createStation(w, r)
	default:
		methodNotSupported(w)
	}
}

func getStations(w http.ResponseWriter, r *http.Request) {
	_, ok := authorizeRequest(w, r, policy.ResourceReference)
	if !ok {
		return
	}

	stationDAO := db.NewStationDAO(db.GetDB())
	stations, err := stationDAO.GetStations()
	if err != nil {
		writeError(w, err)
		return
	}
	if stations == nil {
		stations = []model.Station{}
	}

	writeJSON(w, http.StatusOK, stations)
}

func createStation(w http.ResponseWriter, r *http.Request) {
	_, ok := authorizeRequest(w, r, policy.ResourceReference)
	if !ok {
		return
	}

	var station model.Station
	if !decodeBody(w, r, &station) {
		return
	}
	// the id is assigned by the database
	station.StationID = 0

	stationDAO := db.NewStationDAO(db.GetDB())
	station, err := stationDAO.CreateStation(station)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, station)
}
