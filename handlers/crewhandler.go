package handlers

import (
	"net/http"
	"railway-booking-server/db"
	"railway-booking-server/model"
	"railway-booking-server/policy"
)

func HandleCrew(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getCrew(w, r)
	case "POST":
		createCrew(w, r)
	default:
		methodNotSupported(w)
	}
}

func getCrew(w http.ResponseWriter, r *http.Request) {
	_, ok := authorizeRequest(w, r, policy.ResourceReference)
	if !ok {
		return
	}

	crewDAO := db.NewCrewDAO(db.GetDB())
	crew, err := crewDAO.GetCrew()
	if err != nil {
		writeError(w, err)
		return
	}
	if crew == nil {
		crew = []model.Crew{}
	}

	writeJSON(w, http.StatusOK, crew)
}

func createCrew(w http.ResponseWriter, r *http.Request) {
	_, ok := authorizeRequest(w, r, policy.ResourceReference)
	if !ok {
		return
	}

	var crew model.Crew
	if !decodeBody(w, r, &crew) {
		return
	}
	crew.CrewID = 0

	crewDAO := db.NewCrewDAO(db.GetDB())
	crew, err := crewDAO.CreateCrew(crew)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, crew)
}
