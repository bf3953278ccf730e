package handlers

import (
	"net/http"
	"railway-booking-server/db"
	"railway-booking-server/model"
	"railway-booking-server/policy"
)

func HandleOrders(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getOrders(w, r)
	case "POST":
		createOrder(w, r)
	default:
		methodNotSupported(w)
	}
}

func HandleOrder(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getOrder(w, r)
	case "DELETE":
		deleteOrder(w, r)
	default:
		methodNotSupported(w)
	}
}

func getOrders(w http.ResponseWriter, r *http.Request) {
	actor, ok := authorizeRequest(w, r, policy.ResourceOrder)
	if !ok {
		return
	}

	orderDAO := db.NewOrderDAO(db.GetDB())
	orders, err := orderDAO.ListOrders(actor)
	if err != nil {
		writeError(w, err)
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}

	writeJSON(w, http.StatusOK, orders)
}

func createOrder(w http.ResponseWriter, r *http.Request) {
	actor, ok := authorizeRequest(w, r, policy.ResourceOrder)
	if !ok {
		return
	}

	var request model.OrderRequest
	if !decodeBody(w, r, &request) {
		return
	}

	orderDAO := db.NewOrderDAO(db.GetDB())
	order, err := orderDAO.CreateOrder(actor, request.Tickets)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

func getOrder(w http.ResponseWriter, r *http.Request) {
	actor, ok := authorizeRequest(w, r, policy.ResourceOrder)
	if !ok {
		return
	}
	orderID, ok := extractID(w, r)
	if !ok {
		return
	}

	orderDAO := db.NewOrderDAO(db.GetDB())
	order, err := orderDAO.GetOrder(actor, orderID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func deleteOrder(w http.ResponseWriter, r *http.Request) {
	actor, ok := authorizeRequest(w, r, policy.ResourceOrder)
	if !ok {
		return
	}
	orderID, ok := extractID(w, r)
	if !ok {
		return
	}

	orderDAO := db.NewOrderDAO(db.GetDB())
	err := orderDAO.DeleteOrder(actor, orderID)
	if err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
