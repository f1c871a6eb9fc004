package models

import "time"

// Action discriminates which audit-field pair a payload must carry.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Product is a row of ms_products joined with its ms_product_stock row.
// Stock is nil when no stock row exists for the product.
type Product struct {
	ID      int64      `json:"id"`
	Name    string     `json:"name"`
	Image   *string    `json:"image"`
	Price   float64    `json:"price"`
	Status  bool       `json:"status"`
	Stock   *int64     `json:"stock"`
	Creby   *string    `json:"creby,omitempty"`
	Cretime *time.Time `json:"cretime,omitempty"`
	Modby   *string    `json:"modby,omitempty"`
	Modtime *time.Time `json:"modtime,omitempty"`
}

// ProductPayload is the typed command a handler builds from raw form input
// before validation. Pointer fields distinguish "absent" from a zero value:
// price 0 and stock 0 are valid, a nil pointer is not.
type ProductPayload struct {
	Action  Action     `validate:"required,oneof=create update delete"`
	Name    string     `validate:"required"`
	Image   *string    `validate:"required"`
	Price   *float64   `validate:"required"`
	Status  *bool      `validate:"required"`
	Stock   *int64     `validate:"required"`
	Creby   string     `validate:"required_if=Action create"`
	Cretime *time.Time `validate:"required_if=Action create"`
	Modby   string     `validate:"required_unless=Action create"`
	Modtime *time.Time `validate:"required_unless=Action create"`
}

// Echo assembles the response body for a committed write, mirroring the
// payload fields back to the caller the way the legacy API did.
func (p *ProductPayload) Echo(id int64) *Product {
	product := &Product{
		ID:     id,
		Name:   p.Name,
		Image:  p.Image,
		Stock:  p.Stock,
		Status: p.Status != nil && *p.Status,
	}
	if p.Price != nil {
		product.Price = *p.Price
	}

	if p.Action == ActionCreate {
		product.Creby = &p.Creby
		product.Cretime = p.Cretime
	} else {
		product.Modby = &p.Modby
		product.Modtime = p.Modtime
	}

	return product
}
