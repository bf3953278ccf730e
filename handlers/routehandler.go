package handlers

import (
	"net/http"
	"railway-booking-server/db"
	"railway-booking-server/model"
	"railway-booking-server/policy"
)

type RouteResponse struct {
	model.Route
	Description string `json:"description"`
}

func HandleRoutes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getRoutes(w, r)
	case "POST":
		createRoute(w, r)
	default:
		methodNotSupported(w)
	}
}

func HandleRoute(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "DELETE":
		deleteRoute(w, r)
	default:
		methodNotSupported(w)
	}
}

func getRoutes(w http.ResponseWriter, r *http.Request) {
	_, ok := authorizeRequest(w, r, policy.ResourceReference)
	if !ok {
		return
	}

	routeDAO := db.NewRouteDAO(db.GetDB())
	routes, err := routeDAO.GetRoutes()
	if err != nil {
		writeError(w, err)
		return
	}

	response := []RouteResponse{}
	for _, route := range routes {
		response = append(response, RouteResponse{Route: route, Description: route.String()})
	}

	writeJSON(w, http.StatusOK, response)
}

func createRoute(w http.ResponseWriter, r *http.Request) {
	_, ok := authorizeRequest(w, r, policy.ResourceReference)
	if !ok {
		return
	}

	var request model.RouteRequest
	if !decodeBody(w, r, &request) {
		return
	}

	routeDAO := db.NewRouteDAO(db.GetDB())
	route, err := routeDAO.CreateRoute(request)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, RouteResponse{Route: route, Description: route.String()})
}

func deleteRoute(w http.ResponseWriter, r *http.Request) {
	_, ok := authorizeRequest(w, r, policy.ResourceReference)
	if !ok {
		return
	}
	routeID, ok := extractID(w, r)
	if !ok {
		return
	}

	routeDAO := db.NewRouteDAO(db.GetDB())
	err := routeDAO.DeleteRoute(routeID)
	if err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
