// Package validation implements the presence checks every write endpoint
// runs before touching the database. Rules live as struct tags on the
// payload types; this package evaluates them all (never stopping at the
// first failure) and maps each failing field to the exact human-readable
// message the legacy API returned.
package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/muhamad-rafli/inventory-api/internal/models"
)

var validate = validator.New()

// Result reports whether a payload passed and, if not, every failing
// field's message.
type Result struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

var productMessages = map[string]string{
	"Name":    "Name is required",
	"Image":   "Image is required",
	"Price":   "Price is required",
	"Status":  "Status must be a boolean",
	"Stock":   "Stock is required",
	"Creby":   "Created by is required",
	"Cretime": "Creation time is required",
	"Modby":   "Modified by is required",
	"Modtime": "Modification time is required",
}

// The order entity words its audit messages slightly differently from the
// product entity ("Created time" vs "Creation time"); clients match on
// these strings, so both wordings are kept.
var orderMessages = map[string]string{
	"OrderCode":    "Order code is required",
	"ProductID":    "Product ID is required",
	"Quantity":     "Quantity is required",
	"Price":        "Price is required",
	"Status":       "Status is required",
	"StartProcess": "Start process date is required",
	"EndProcess":   "End process date is required",
	"PaymentType":  "Payment type is required",
	"Creby":        "Created by is required",
	"Cretime":      "Created time is required",
	"Modby":        "Modified by is required",
	"Modtime":      "Modified time is required",
}

// Product checks a coerced product payload against the rules for its
// action. Pure function: no I/O, all failures collected.
func Product(payload *models.ProductPayload) Result {
	return run(payload, productMessages)
}

// Order checks a coerced order payload against the rules for its action.
func Order(payload *models.OrderPayload) Result {
	return run(payload, orderMessages)
}

func run(payload any, messages map[string]string) Result {

	err := validate.Struct(payload)
	if err == nil {
		return Result{IsValid: true, Errors: []string{}}
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return Result{Errors: []string{err.Error()}}
	}

	errMsgs := make([]string, 0, len(validationErrs))

	for _, fieldErr := range validationErrs {

		message, ok := messages[fieldErr.Field()]
		if !ok {
			message = fmt.Sprintf("Field %s is invalid", fieldErr.Field())
		}

		errMsgs = append(errMsgs, message)

	}

	return Result{IsValid: false, Errors: errMsgs}
}
