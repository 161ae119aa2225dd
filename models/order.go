package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string
type PaymentMethod string

const (
	OrderStatusPending    OrderStatus = "PENDING"    // placed, awaiting a decision
	OrderStatusAccepted   OrderStatus = "ACCEPTED"   // confirmed by the shop
	OrderStatusRejected   OrderStatus = "REJECTED"   // declined by the shop
	OrderStatusDelivering OrderStatus = "DELIVERING" // out for delivery
	OrderStatusDelivered  OrderStatus = "DELIVERED"  // customer received the order

	PaymentUPI          PaymentMethod = "UPI"
	PaymentBankTransfer PaymentMethod = "Bank Transfer"
	PaymentUPIQR        PaymentMethod = "UPIQR"
)

// ParseOrderStatus maps a request string to a known status.
func ParseOrderStatus(status string) (OrderStatus, error) {
	switch OrderStatus(strings.ToUpper(status)) {
	case OrderStatusPending:
		return OrderStatusPending, nil
	case OrderStatusAccepted:
		return OrderStatusAccepted, nil
	case OrderStatusRejected:
		return OrderStatusRejected, nil
	case OrderStatusDelivering:
		return OrderStatusDelivering, nil
	case OrderStatusDelivered:
		return OrderStatusDelivered, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// ParsePaymentMethod maps a request string to a known payment method.
func ParsePaymentMethod(method string) (PaymentMethod, error) {
	switch method {
	case string(PaymentUPI):
		return PaymentUPI, nil
	case string(PaymentBankTransfer):
		return PaymentBankTransfer, nil
	case string(PaymentUPIQR):
		return PaymentUPIQR, nil
	default:
		return "", errors.New("invalid payment method")
	}
}

// nextStatuses is the fulfilment flow: PENDING is decided into
// ACCEPTED or REJECTED, accepted orders go out for delivery, and
// DELIVERING ends in DELIVERED. REJECTED and DELIVERED are terminal.
var nextStatuses = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusAccepted, OrderStatusRejected},
	OrderStatusAccepted:   {OrderStatusDelivering},
	OrderStatusRejected:   {},
	OrderStatusDelivering: {OrderStatusDelivered},
	OrderStatusDelivered:  {},
}

// CanTransition reports whether an order may move from s to next.
// Re-setting the current status is always allowed. In compat mode
// (strict=false) any known target status is accepted, matching the
// original dashboard's unconditional overwrite; strict mode enforces
// the fulfilment flow.
func (s OrderStatus) CanTransition(next OrderStatus, strict bool) bool {
	if s == next {
		return true
	}
	if !strict {
		return true
	}
	for _, allowed := range nextStatuses[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Order is immutable once created except for Status, which only
// allow-listed admins may change.
type Order struct {
	ID              string        `gorm:"primaryKey" json:"id"`
	UserID          string        `gorm:"not null;index" json:"userId"`
	User            User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Lines           []OrderLine   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"products"`
	TotalCost       float64       `json:"totalCost"`
	Status          OrderStatus   `gorm:"type:VARCHAR(20);default:'PENDING'" json:"status"`
	PaymentMethod   PaymentMethod `gorm:"type:VARCHAR(20)" json:"paymentMethod"`
	ReferenceNumber int64         `json:"referenceNumber"` // user-supplied payment proof, never verified
	ClientToken     *string       `gorm:"uniqueIndex" json:"-"`
	Name            string        `json:"name"`
	Email           string        `gorm:"index" json:"email"`
	ContactNumber   string        `json:"contactNumber"`
	Address         string        `json:"address"`
	State           string        `json:"state"`
	Pincode         string        `json:"pincode"`
	VehicleNumber   string        `json:"vehicleNumber,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// OrderLine freezes the purchase-time product state alongside the
// quantity, so later catalog edits never reprice a past order.
type OrderLine struct {
	ID        uint    `gorm:"primaryKey" json:"-"`
	OrderID   string  `gorm:"index" json:"-"`
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Title     string  `json:"title"`
	UnitCost  float64 `json:"unitCost"`
	Discount  float64 `json:"discount"`
	GSTRate   int     `json:"gstRate"`
}
