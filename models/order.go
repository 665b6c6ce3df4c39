package models

import (
	"fmt"
	"time"
)

// OrderStatus is the fulfillment state of an order. The flow is linear:
// pending -> accepted -> preparing -> ready -> out_for_delivery -> delivered.
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusAccepted       OrderStatus = "accepted"
	StatusPreparing      OrderStatus = "preparing"
	StatusReady          OrderStatus = "ready"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
)

// statusRank orders the statuses along the fulfillment flow.
var statusRank = map[OrderStatus]int{
	StatusPending:        0,
	StatusAccepted:       1,
	StatusPreparing:      2,
	StatusReady:          3,
	StatusOutForDelivery: 4,
	StatusDelivered:      5,
}

// ParseOrderStatus validates a raw status token from a request.
func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if _, ok := statusRank[status]; !ok {
		return "", fmt.Errorf("unknown order status %q", s)
	}
	return status, nil
}

// CanAdvanceTo reports whether moving to next is a forward step. Skipping
// ahead is allowed (a pickup order goes ready -> delivered directly), moving
// backward or staying in place is not.
func (s OrderStatus) CanAdvanceTo(next OrderStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to > from
}

type Order struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	CustomerName  string      `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerEmail string      `gorm:"type:varchar(255);not null;index" json:"customer_email"`
	CustomerPhone string      `gorm:"type:varchar(50);not null;index" json:"customer_phone"`
	TotalAmount   Money       `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Status        OrderStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	OrderItems    []OrderItem `gorm:"foreignKey:OrderID" json:"order_items,omitempty"`
	CreatedAt     time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"not null" json:"updated_at"`
}
