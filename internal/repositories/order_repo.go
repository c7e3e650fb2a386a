package repositories

import (
	"errors"

	"ordersvc/internal/models"
)

// ErrOrderNotFound is returned by lookups for ids that have no stored order.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order data access.
//
// UpdateFields and Delete report how many records matched (0 or 1) so that
// callers can tell "record absent" apart from "record present but unchanged".
type OrderRepository interface {
	Create(order *models.Order) error
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	UpdateFields(id string, fields map[string]interface{}) (int64, error)
	Delete(id string) (int64, error)
}
