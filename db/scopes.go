package db

import (
	"gorm.io/gorm"
	"railway-booking-server/policy"
)

// OwnedBy restricts a query on "order" to the orders of the actor.
// Every order query goes through it, an unauthenticated actor matches nothing.
func OwnedBy(actor policy.Actor) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if !actor.Authenticated {
			return tx.Where("1 = 0")
		}
		return tx.Where(`"order".id_user = ?`, actor.UserID)
	}
}

// TicketsOwnedBy restricts a query on ticket to the tickets of the orders of the actor
func TicketsOwnedBy(actor policy.Actor) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		joined := tx.Joins(`JOIN "order" ON "order".id_order = ticket.id_order`)
		return OwnedBy(actor)(joined)
	}
}
