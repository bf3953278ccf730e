package db

import (
	"fmt"
	"gorm.io/gorm"
	"railway-booking-server/internals"
	"railway-booking-server/model"
	"railway-booking-server/policy"
)

type OrderDAO struct {
	db *gorm.DB
}

type seatKey struct {
	journeyID int
	cargo     int
	seat      int
}

func NewOrderDAO(db *gorm.DB) *OrderDAO {
	return &OrderDAO{db: db}
}

// CreateOrder books all the requested seats for the actor or none of them.
// The checks before the transaction only give early, precise errors: the unique
// index on (cargo, seat, id_journey) is what decides between concurrent orders.
func (orderDAO *OrderDAO) CreateOrder(actor policy.Actor, requests []model.TicketRequest) (model.Order, error) {
	if !actor.Authenticated {
		return model.Order{}, policy.ErrUnauthenticated
	}
	if len(requests) == 0 {
		return model.Order{}, internals.ErrEmptyOrder
	}

	// capacity, in request order, first failure wins
	journeyDAO := NewJourneyDAO(orderDAO.db)
	trains := make(map[int]model.Train)
	for _, request := range requests {
		train, found := trains[request.JourneyID]
		if !found {
			journey, err := journeyDAO.GetJourneyTrain(request.JourneyID)
			if err != nil {
				return model.Order{}, err
			}
			train = *journey.Train
			trains[request.JourneyID] = train
		}

		err := internals.ValidateSeat(request.Cargo, request.Seat, train.CargoNum, train.PlaceInCargo)
		if err != nil {
			return model.Order{}, err
		}
	}

	// duplicates inside the order, then seats already sold
	seatLedgerDAO := NewSeatLedgerDAO(orderDAO.db)
	requested := make(map[seatKey]bool, len(requests))
	for _, request := range requests {
		key := seatKey{journeyID: request.JourneyID, cargo: request.Cargo, seat: request.Seat}
		if requested[key] {
			return model.Order{}, seatConflict(request)
		}
		requested[key] = true

		occupied, err := seatLedgerDAO.IsOccupied(request.JourneyID, request.Cargo, request.Seat)
		if err != nil {
			return model.Order{}, err
		}
		if occupied {
			return model.Order{}, seatConflict(request)
		}
	}

	tickets := make([]model.Ticket, 0, len(requests))
	for _, request := range requests {
		tickets = append(tickets, model.Ticket{
			Cargo:     request.Cargo,
			Seat:      request.Seat,
			JourneyID: request.JourneyID,
		})
	}

	return orderDAO.commitOrder(model.Order{UserID: actor.UserID}, tickets)
}

// commitOrder inserts the order and its tickets in one transaction.
// Only the transaction is used inside, sqlite runs on a single connection.
func (orderDAO *OrderDAO) commitOrder(order model.Order, tickets []model.Ticket) (model.Order, error) {
	// create transaction
	transaction := orderDAO.db.Begin()
	if transaction.Error != nil {
		return model.Order{}, transaction.Error
	}

	committed := false
	defer func() {
		if r := recover(); r != nil {
			transaction.Rollback()
			panic(r)
		} else if !committed {
			transaction.Rollback()
		}
	}()

	// create order entry
	result := transaction.Create(&order)
	if result.Error != nil {
		return model.Order{}, result.Error
	}

	// create ticket entries
	for i := range tickets {
		tickets[i].OrderID = order.OrderID
		result = transaction.Create(&tickets[i])
		if isUniqueViolation(result.Error) {
			// lost the race for the seat against another order
			return model.Order{}, &internals.SeatConflictError{
				JourneyID: tickets[i].JourneyID,
				Cargo:     tickets[i].Cargo,
				Seat:      tickets[i].Seat,
			}
		}
		if isForeignKeyViolation(result.Error) {
			// the journey was deleted after the checks
			return model.Order{}, fmt.Errorf("%w: %d", internals.ErrJourneyNotFound, tickets[i].JourneyID)
		}
		if result.Error != nil {
			return model.Order{}, result.Error
		}
	}

	result = transaction.Commit()
	if result.Error != nil {
		return model.Order{}, result.Error
	}
	committed = true

	model.SortTickets(tickets)
	order.Tickets = tickets
	return order, nil
}

func seatConflict(request model.TicketRequest) error {
	return &internals.SeatConflictError{
		JourneyID: request.JourneyID,
		Cargo:     request.Cargo,
		Seat:      request.Seat,
	}
}

func (orderDAO *OrderDAO) ListOrders(actor policy.Actor) ([]model.Order, error) {
	if !actor.Authenticated {
		return nil, policy.ErrUnauthenticated
	}

	var orders []model.Order
	result := orderDAO.db.Scopes(OwnedBy(actor)).Order("id_order").Find(&orders)
	if result.Error != nil {
		return nil, result.Error
	}

	err := orderDAO.injectTickets(actor, orders)
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (orderDAO *OrderDAO) GetOrder(actor policy.Actor, orderID int) (model.Order, error) {
	if !actor.Authenticated {
		return model.Order{}, policy.ErrUnauthenticated
	}

	var order model.Order
	result := orderDAO.db.Scopes(OwnedBy(actor)).Where(`"order".id_order = ?`, orderID).First(&order)
	if result.Error != nil {
		return model.Order{}, result.Error
	}

	orders := []model.Order{order}
	err := orderDAO.injectTickets(actor, orders)
	if err != nil {
		return model.Order{}, err
	}
	return orders[0], nil
}

// DeleteOrder cancels an order of the actor, its tickets are deleted by cascade
// and their seats become available again
func (orderDAO *OrderDAO) DeleteOrder(actor policy.Actor, orderID int) error {
	if !actor.Authenticated {
		return policy.ErrUnauthenticated
	}

	result := orderDAO.db.Scopes(OwnedBy(actor)).Where(`"order".id_order = ?`, orderID).Delete(&model.Order{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// injectTickets loads the tickets of the orders with a single query
func (orderDAO *OrderDAO) injectTickets(actor policy.Actor, orders []model.Order) error {
	if len(orders) == 0 {
		return nil
	}

	orderIDs := make([]int, 0, len(orders))
	for _, order := range orders {
		orderIDs = append(orderIDs, order.OrderID)
	}

	var tickets []model.Ticket
	err := orderDAO.db.Scopes(TicketsOwnedBy(actor)).
		Select("ticket.*").
		Where("ticket.id_order IN ?", orderIDs).
		Order("ticket.cargo, ticket.seat").
		Find(&tickets).Error
	if err != nil {
		return err
	}

	byOrder := make(map[int][]model.Ticket, len(orders))
	for _, ticket := range tickets {
		byOrder[ticket.OrderID] = append(byOrder[ticket.OrderID], ticket)
	}
	for i := range orders {
		orders[i].Tickets = byOrder[orders[i].OrderID]
		if orders[i].Tickets == nil {
			orders[i].Tickets = []model.Ticket{}
		}
	}
	return nil
}
