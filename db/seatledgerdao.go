package db

import (
	"fmt"
	"gorm.io/gorm"
	"railway-booking-server/internals"
	"railway-booking-server/model"
)

// SeatLedgerDAO answers seat questions from the committed tickets,
// no counter is stored anywhere
type SeatLedgerDAO struct {
	db *gorm.DB
}

type journeyAvailability struct {
	JourneyID        int
	TicketsAvailable int
}

func NewSeatLedgerDAO(db *gorm.DB) *SeatLedgerDAO {
	return &SeatLedgerDAO{db: db}
}

func (seatLedgerDAO *SeatLedgerDAO) IsOccupied(journeyID, cargo, seat int) (bool, error) {
	var count int64
	result := seatLedgerDAO.db.Model(&model.Ticket{}).
		Where("id_journey = ? AND cargo = ? AND seat = ?", journeyID, cargo, seat).
		Count(&count)
	return count > 0, result.Error
}

// availability is capacity minus committed tickets, grouped by journey
func (seatLedgerDAO *SeatLedgerDAO) availability() *gorm.DB {
	return seatLedgerDAO.db.Table("journey").
		Select("journey.id_journey AS journey_id, " +
			"train.cargo_num * train.place_in_cargo - COUNT(ticket.id_ticket) AS tickets_available").
		Joins("JOIN train ON train.id_train = journey.id_train").
		Joins("LEFT JOIN ticket ON ticket.id_journey = journey.id_journey").
		Group("journey.id_journey, train.cargo_num, train.place_in_cargo")
}

func (seatLedgerDAO *SeatLedgerDAO) AvailableCount(journeyID int) (int, error) {
	var rows []journeyAvailability
	result := seatLedgerDAO.availability().Where("journey.id_journey = ?", journeyID).Scan(&rows)
	if result.Error != nil {
		return 0, result.Error
	}
	if len(rows) == 0 {
		return 0, fmt.Errorf("%w: %d", internals.ErrJourneyNotFound, journeyID)
	}
	return rows[0].TicketsAvailable, nil
}

// ListJourneyAvailability maps every journey id to its available seats
func (seatLedgerDAO *SeatLedgerDAO) ListJourneyAvailability() (map[int]int, error) {
	return seatLedgerDAO.scanAvailability(seatLedgerDAO.availability())
}

// JourneyAvailability is ListJourneyAvailability restricted to the given journeys
func (seatLedgerDAO *SeatLedgerDAO) JourneyAvailability(journeyIDs []int) (map[int]int, error) {
	if len(journeyIDs) == 0 {
		return map[int]int{}, nil
	}
	return seatLedgerDAO.scanAvailability(seatLedgerDAO.availability().Where("journey.id_journey IN ?", journeyIDs))
}

func (seatLedgerDAO *SeatLedgerDAO) scanAvailability(query *gorm.DB) (map[int]int, error) {
	var rows []journeyAvailability
	result := query.Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	availability := make(map[int]int, len(rows))
	for _, row := range rows {
		availability[row.JourneyID] = row.TicketsAvailable
	}
	return availability, nil
}

func (seatLedgerDAO *SeatLedgerDAO) SoldTickets(journeyID int) ([]model.Ticket, error) {
	var tickets []model.Ticket
	result := seatLedgerDAO.db.Where("id_journey = ?", journeyID).Order("cargo, seat").Find(&tickets)
	return tickets, result.Error
}
