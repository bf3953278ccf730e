package db

import (
	"gorm.io/gorm"
	"railway-booking-server/model"
	"railway-booking-server/policy"
)

type TicketDAO struct {
	db *gorm.DB
}

func NewTicketDAO(db *gorm.DB) *TicketDAO {
	return &TicketDAO{db: db}
}

func (ticketDAO *TicketDAO) ListTickets(actor policy.Actor) ([]model.Ticket, error) {
	if !actor.Authenticated {
		return nil, policy.ErrUnauthenticated
	}

	var tickets []model.Ticket
	result := ticketDAO.db.Scopes(TicketsOwnedBy(actor)).
		Select("ticket.*").
		Order("ticket.cargo, ticket.seat, ticket.id_ticket").
		Find(&tickets)
	return tickets, result.Error
}

func (ticketDAO *TicketDAO) GetTicket(actor policy.Actor, ticketID int) (model.Ticket, error) {
	if !actor.Authenticated {
		return model.Ticket{}, policy.ErrUnauthenticated
	}

	var ticket model.Ticket
	result := ticketDAO.db.Scopes(TicketsOwnedBy(actor)).
		Select("ticket.*").
		Where("ticket.id_ticket = ?", ticketID).
		Take(&ticket)
	return ticket, result.Error
}
