package policy

import (
	"net/http"
	"railway-booking-server/model"
)

type Resource string

const (
	ResourceReference Resource = "reference"
	// any authenticated user may DELETE an order, db.OwnedBy restricts the statement to the caller's rows
	ResourceOrder     Resource = "order"
	ResourceTicket    Resource = "ticket"
	ResourceUser      Resource = "user"
)

func IsSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// CanViewOrder holds only for the owner of the order, administrators included
func CanViewOrder(actor Actor, order model.Order) bool {
	return actor.Authenticated && order.UserID == actor.UserID
}

func CanMutateReferenceData(actor Actor) bool {
	return actor.Authenticated && actor.Admin
}
