package handlers

import (
	"net/http"
	"railway-booking-server/db"
	"railway-booking-server/model"
	"railway-booking-server/policy"
)

func HandleTrainTypes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getTrainTypes(w, r)
	case "POST":
		createTrainType(w, r)
	default:
		methodNotSupported(w)
	}
}

func HandleTrains(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getTrains(w, r)
	case "POST":
		createTrain(w, r)
	default:
		methodNotSupported(w)
	}
}

func HandleTrain(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "DELETE":
		deleteTrain(w, r)
	default:
		methodNotSupported(w)
	}
}

func getTrainTypes(w http.ResponseWriter, r *http.Request) {
	_, ok := authorizeRequest(w, r, policy.ResourceReference)
	if !ok {
		return
	}

	trainDAO := db.NewTrainDAO(db.GetDB())
	trainTypes, err := trainDAO.GetTrainTypes()
	if err != nil {
		writeError(w, err)
		return
	}
	if trainTypes == nil {
		trainTypes = []model.TrainType{}
	}

	writeJSON(w, http.StatusOK, trainTypes)
}

func createTrainType(w http.ResponseWriter, r *http.Request) {
	_, ok := authorizeRequest(w, r, policy.ResourceReference)
	if !ok {
		return
	}

	var trainType model.TrainType
	if !decodeBody(w, r, &trainType) {
		return
	}
	trainType.TrainTypeID = 0

	trainDAO := db.NewTrainDAO(db.GetDB())
	trainType, err := trainDAO.CreateTrainType(trainType)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, trainType)
}

func getTrains(w http.ResponseWriter, r *http.Request) {
	_, ok := authorizeRequest(w, r, policy.ResourceReference)
	if !ok {
		return
	}

	trainDAO := db.NewTrainDAO(db.GetDB())
	trains, err := trainDAO.GetTrains()
	if err != nil {
		writeError(w, err)
		return
	}
	if trains == nil {
		trains = []model.Train{}
	}

	writeJSON(w, http.StatusOK, trains)
}

func createTrain(w http.ResponseWriter, r *http.Request) {
	_, ok := authorizeRequest(w, r, policy.ResourceReference)
	if !ok {
		return
	}

	var request model.TrainRequest
	if !decodeBody(w, r, &request) {
		return
	}

	trainDAO := db.NewTrainDAO(db.GetDB())
	train, err := trainDAO.CreateTrain(request)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, train)
}

func deleteTrain(w http.ResponseWriter, r *http.Request) {
	_, ok := authorizeRequest(w, r, policy.ResourceReference)
	if !ok {
		return
	}
	trainID, ok := extractID(w, r)
	if !ok {
		return
	}

	trainDAO := db.NewTrainDAO(db.GetDB())
	err := trainDAO.DeleteTrain(trainID)
	if err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
