package model

import "time"

// JourneySummary is the projection used when listing journeys:
// related rows are rendered as strings and the seat availability is attached.
type JourneySummary struct {
	JourneyID        int       `json:"id"`
	Route            string    `json:"route"`
	Train            string    `json:"train"`
	DepartureTime    time.Time `json:"departure_time"`
	ArrivalTime      time.Time `json:"arrival_time"`
	Crew             []string  `json:"crew"`
	TicketsAvailable int       `json:"tickets_available"`
}

// JourneyDetail adds the sold tickets to the summary
type JourneyDetail struct {
	JourneySummary
	SoldTickets []string `json:"sold_tickets"`
}

func NewJourneySummary(journey Journey, ticketsAvailable int) JourneySummary {
	// empty slice, not nil, so that it is encoded as []
	crew := []string{}
	for _, member := range journey.Crew {
		crew = append(crew, member.String())
	}

	summary := JourneySummary{
		JourneyID:        journey.JourneyID,
		DepartureTime:    journey.DepartureTime,
		ArrivalTime:      journey.ArrivalTime,
		Crew:             crew,
		TicketsAvailable: ticketsAvailable,
	}
	if journey.Route != nil {
		summary.Route = journey.Route.String()
	}
	if journey.Train != nil {
		summary.Train = journey.Train.String()
	}
	return summary
}

func NewJourneyDetail(journey Journey, ticketsAvailable int, soldTickets []Ticket) JourneyDetail {
	sold := []string{}
	for _, ticket := range soldTickets {
		sold = append(sold, ticket.String())
	}
	return JourneyDetail{
		JourneySummary: NewJourneySummary(journey, ticketsAvailable),
		SoldTickets:    sold,
	}
}
