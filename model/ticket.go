package model

import (
	"fmt"
	"railway-booking-server/internals"
	"sort"
)

// Ticket claims one (cargo, seat) of one journey.
// The unique index on (cargo, seat, id_journey) is what prevents double booking.
type Ticket struct {
	TicketID  int `gorm:"column:id_ticket;primaryKey;autoIncrement" json:"id"`
	Cargo     int `gorm:"column:cargo;type:integer;not null;uniqueIndex:idx_ticket_cargo_seat_journey,priority:1" json:"cargo"`
	Seat      int `gorm:"column:seat;type:integer;not null;uniqueIndex:idx_ticket_cargo_seat_journey,priority:2" json:"seat"`
	JourneyID int `gorm:"column:id_journey;type:integer;not null;uniqueIndex:idx_ticket_cargo_seat_journey,priority:3;index:idx_ticket_journey" json:"journey"`
	OrderID   int `gorm:"column:id_order;type:integer;not null;index:idx_ticket_order" json:"order"`
}

func (Ticket) TableName() string {
	return "ticket"
}

func (ticket Ticket) String() string {
	return fmt.Sprintf("%d - %d", ticket.Cargo, ticket.Seat)
}

// Validate checks the ticket against the capacity of the train of its journey,
// the same check done when the ticket is booked
func (ticket Ticket) Validate(train Train) error {
	return internals.ValidateSeat(ticket.Cargo, ticket.Seat, train.CargoNum, train.PlaceInCargo)
}

// SortTickets applies the default ticket ordering, (cargo, seat) ascending
func SortTickets(tickets []Ticket) {
	sort.Slice(tickets, func(i, j int) bool {
		if tickets[i].Cargo != tickets[j].Cargo {
			return tickets[i].Cargo < tickets[j].Cargo
		}
		return tickets[i].Seat < tickets[j].Seat
	})
}

type TicketRequest struct {
	Cargo     int `json:"cargo"`
	Seat      int `json:"seat"`
	JourneyID int `json:"journey"`
}

// TicketDetail is the read model used when listing the tickets of a user
type TicketDetail struct {
	TicketID int            `json:"id"`
	Cargo    int            `json:"cargo"`
	Seat     int            `json:"seat"`
	OrderID  int            `json:"order"`
	Journey  JourneySummary `json:"journey"`
}

func NewTicketDetail(ticket Ticket, journey JourneySummary) TicketDetail {
	return TicketDetail{
		TicketID: ticket.TicketID,
		Cargo:    ticket.Cargo,
		Seat:     ticket.Seat,
		OrderID:  ticket.OrderID,
		Journey:  journey,
	}
}
