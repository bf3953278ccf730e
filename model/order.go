package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"time"
)

// Order groups the tickets bought together. It is created only together with its tickets
// and deleting it deletes them (cascade on ticket.id_order).
type Order struct {
	OrderID   int       `gorm:"column:id_order;primaryKey;autoIncrement" json:"id"`
	Reference uuid.UUID `gorm:"column:reference;type:uuid;not null;uniqueIndex:idx_order_reference" json:"reference"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UserID    int       `gorm:"column:id_user;type:integer;not null;index:idx_order_user" json:"-"`
	Tickets   []Ticket  `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"tickets"`
}

// "order" is a reserved word: gorm quotes it, raw SQL must quote it too
func (Order) TableName() string {
	return "order"
}

func (order *Order) BeforeCreate(tx *gorm.DB) error {
	if order.Reference == uuid.Nil {
		order.Reference = uuid.New()
	}
	return nil
}

// OrderRequest is the write model of an order
type OrderRequest struct {
	Tickets []TicketRequest `json:"tickets"`
}
