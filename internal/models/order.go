package models

import "time"

type OrderStatus string

// The stored enum values. "cancle" is spelled exactly as the legacy system
// persisted it; existing rows carry that literal, so it cannot be corrected
// here without a data migration.
const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancle"
)

// Order is a row of tr_order. ProductName, UnitPrice and Stock are filled
// from joined product columns on reads and omitted otherwise.
type Order struct {
	ID           int64       `json:"id"`
	OrderCode    string      `json:"order_code"`
	ProductID    int64       `json:"product_id"`
	Quantity     int64       `json:"quantity"`
	Price        float64     `json:"price"`
	Status       OrderStatus `json:"status"`
	StartProcess time.Time   `json:"start_process"`
	EndProcess   time.Time   `json:"end_process"`
	PaymentType  string      `json:"payment_type"`
	Creby        *string     `json:"creby,omitempty"`
	Cretime      *time.Time  `json:"cretime,omitempty"`
	Modby        *string     `json:"modby,omitempty"`
	Modtime      *time.Time  `json:"modtime,omitempty"`
	ProductName  *string     `json:"product_name,omitempty"`
	UnitPrice    *float64    `json:"satuan_price,omitempty"`
	Stock        *int64      `json:"stock,omitempty"`
}

// OrderPayload is the typed command built from a decoded request body.
// Unlike ProductPayload, quantity and product_id are value fields: the
// legacy validation treated 0 as missing for them, and that policy is
// load-bearing for existing clients.
type OrderPayload struct {
	Action       Action      `validate:"required,oneof=create update delete"`
	OrderCode    string      `validate:"required"`
	ProductID    int64       `validate:"required"`
	Quantity     int64       `validate:"required"`
	Price        *float64    `validate:"required"`
	Status       OrderStatus `validate:"required"`
	StartProcess time.Time   `validate:"required"`
	EndProcess   time.Time   `validate:"required"`
	PaymentType  string      `validate:"required"`
	Creby        string      `validate:"required_if=Action create"`
	Cretime      *time.Time  `validate:"required_if=Action create"`
	Modby        string      `validate:"required_unless=Action create"`
	Modtime      *time.Time  `validate:"required_unless=Action create"`
}

// Echo mirrors the payload back as the response body for a committed write.
func (o *OrderPayload) Echo(id int64) *Order {
	order := &Order{
		ID:           id,
		OrderCode:    o.OrderCode,
		ProductID:    o.ProductID,
		Quantity:     o.Quantity,
		Status:       o.Status,
		StartProcess: o.StartProcess,
		EndProcess:   o.EndProcess,
		PaymentType:  o.PaymentType,
	}
	if o.Price != nil {
		order.Price = *o.Price
	}

	if o.Action == ActionCreate {
		order.Creby = &o.Creby
		order.Cretime = o.Cretime
	} else {
		order.Modby = &o.Modby
		order.Modtime = o.Modtime
	}

	return order
}

// CreateOrderRequest is the raw JSON body for order create/update. Nil
// timestamps default to the handling time.
type CreateOrderRequest struct {
	OrderCode    string      `json:"order_code"`
	ProductID    int64       `json:"product_id"`
	Quantity     int64       `json:"quantity"`
	Price        *float64    `json:"price"`
	Status       OrderStatus `json:"status"`
	StartProcess *time.Time  `json:"start_process"`
	EndProcess   *time.Time  `json:"end_process"`
	PaymentType  string      `json:"payment_type"`
	Creby        string      `json:"creby"`
	Cretime      *time.Time  `json:"cretime"`
	Modby        string      `json:"modby"`
	Modtime      *time.Time  `json:"modtime"`
}
