package handlers

import (
	"net/http"
	"railway-booking-server/db"
	"railway-booking-server/model"
	"railway-booking-server/policy"
)

func HandleTickets(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getTickets(w, r)
	default:
		methodNotSupported(w)
	}
}

func HandleTicket(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getTicket(w, r)
	default:
		methodNotSupported(w)
	}
}

func getTickets(w http.ResponseWriter, r *http.Request) {
	actor, ok := authorizeRequest(w, r, policy.ResourceTicket)
	if !ok {
		return
	}

	ticketDAO := db.NewTicketDAO(db.GetDB())
	tickets, err := ticketDAO.ListTickets(actor)
	if err != nil {
		writeError(w, err)
		return
	}

	details, err := ticketDetails(tickets)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, details)
}

func getTicket(w http.ResponseWriter, r *http.Request) {
	actor, ok := authorizeRequest(w, r, policy.ResourceTicket)
	if !ok {
		return
	}
	ticketID, ok := extractID(w, r)
	if !ok {
		return
	}

	ticketDAO := db.NewTicketDAO(db.GetDB())
	ticket, err := ticketDAO.GetTicket(actor, ticketID)
	if err != nil {
		writeError(w, err)
		return
	}

	details, err := ticketDetails([]model.Ticket{ticket})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, details[0])
}

// ticketDetails attaches the summary of its journey to every ticket
func ticketDetails(tickets []model.Ticket) ([]model.TicketDetail, error) {
	details := []model.TicketDetail{}
	if len(tickets) == 0 {
		return details, nil
	}

	journeyIDs := make([]int, 0, len(tickets))
	for _, ticket := range tickets {
		journeyIDs = append(journeyIDs, ticket.JourneyID)
	}
	summaries, err := journeySummariesByIds(journeyIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[int]model.JourneySummary, len(summaries))
	for _, summary := range summaries {
		byID[summary.JourneyID] = summary
	}

	for _, ticket := range tickets {
		details = append(details, model.NewTicketDetail(ticket, byID[ticket.JourneyID]))
	}
	return details, nil
}
