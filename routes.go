package main

import (
	"net/http"
	"railway-booking-server/handlers"
)

func SetupServer(port string, testMode string) *http.Server {
	mux := http.NewServeMux()

	// setup routes
	mux.HandleFunc("/orders", handlers.HandleOrders)
	mux.HandleFunc("/orders/", handlers.HandleOrder)

	mux.HandleFunc("/tickets", handlers.HandleTickets)
	mux.HandleFunc("/tickets/", handlers.HandleTicket)

	mux.HandleFunc("/journeys", handlers.HandleJourneys)
	mux.HandleFunc("/journeys/", handlers.HandleJourney)

	mux.HandleFunc("/stations", handlers.HandleStations)
	mux.HandleFunc("/routes", handlers.HandleRoutes)
	mux.HandleFunc("/routes/", handlers.HandleRoute)
	mux.HandleFunc("/train-types", handlers.HandleTrainTypes)
	mux.HandleFunc("/trains", handlers.HandleTrains)
	mux.HandleFunc("/trains/", handlers.HandleTrain)
	mux.HandleFunc("/crew", handlers.HandleCrew)

	mux.HandleFunc("/users/user", handlers.HandleUsers)

	if testMode == "test" {
		mux.HandleFunc("/resetTestDatabase", handlers.HandleResetTestDatabase)
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: mux,
	}

	return server
}
