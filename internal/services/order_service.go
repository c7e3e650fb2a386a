package services

import (
	"encoding/json"
	"errors"
	"log"

	"ordersvc/internal/clients"
	"ordersvc/internal/models"
	"ordersvc/internal/repositories"
)

// ErrNoFieldsToUpdate is returned when an update patch carries no non-nil
// fields.
var ErrNoFieldsToUpdate = errors.New("no fields to update")

// ErrOrderNotFound and ErrUserNotFound are re-exported so callers can map the
// full taxonomy from one package.
var (
	ErrOrderNotFound = repositories.ErrOrderNotFound
	ErrUserNotFound  = clients.ErrUserNotFound
)

// EventPublisher publishes order lifecycle events. Publishing is best-effort:
// the service logs failures and never fails a request over them.
type EventPublisher interface {
	Publish(eventType string, body []byte) error
}

// EnrichedOrder is the result of a single-order read: the stored order plus
// the full user representation fetched from the user service.
type EnrichedOrder struct {
	Order models.Order           `json:"order"`
	User  map[string]interface{} `json:"user"`
}

// OrderService handles business logic related to orders. Every mutation that
// introduces a user reference is gated on an existence check against the
// user service; the check and the store write are strictly sequential.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	userChecker clients.UserChecker
	publisher   EventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, userChecker clients.UserChecker, publisher EventPublisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		userChecker: userChecker,
		publisher:   publisher,
	}
}

// CreateOrder validates that the order's user exists, then persists the
// order. Nothing is written when the check does not come back positive:
// a missing user surfaces as ErrUserNotFound, an unreachable or faulting
// user service surfaces as-is and maps to an internal error at the boundary.
func (s *OrderService) CreateOrder(order models.Order) (*models.Order, error) {
	if _, err := s.userChecker.CheckUser(order.UserID); err != nil {
		return nil, err
	}

	// The identifier is store-assigned; a caller-supplied id is discarded.
	order.ID = ""
	if err := s.orderRepo.Create(&order); err != nil {
		return nil, err
	}

	s.publishEvent("order.created", &order)
	return &order, nil
}

// GetOrder retrieves a single order and enriches it with the owning user's
// remote representation. Enrichment is required, not best-effort: the read
// fails whenever the user no longer resolves.
func (s *OrderService) GetOrder(id string) (*EnrichedOrder, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	user, err := s.userChecker.CheckUser(order.UserID)
	if err != nil {
		return nil, err
	}

	return &EnrichedOrder{Order: *order, User: user}, nil
}

// GetAllOrders retrieves all orders. No per-item enrichment or user
// validation happens here; that cost is paid only on single-item reads.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// UpdateOrder applies a merge-patch to an existing order and returns the
// merged record. The patch cannot change user_id, so no existence recheck is
// performed.
func (s *OrderService) UpdateOrder(id string, patch models.OrderPatch) (*models.Order, error) {
	fields := patch.Fields()
	if len(fields) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	matched, err := s.orderRepo.UpdateFields(id, fields)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, ErrOrderNotFound
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	s.publishEvent("order.updated", order)
	return order, nil
}

// DeleteOrder removes an order by its ID.
func (s *OrderService) DeleteOrder(id string) error {
	deleted, err := s.orderRepo.Delete(id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrOrderNotFound
	}

	s.publishEvent("order.deleted", &models.Order{ID: id})
	return nil
}

// publishEvent emits an order lifecycle event when a publisher is wired in.
func (s *OrderService) publishEvent(eventType string, order *models.Order) {
	if s.publisher == nil {
		return
	}

	body, err := json.Marshal(order)
	if err != nil {
		log.Printf("Failed to marshal %s event for order %s: %v", eventType, order.ID, err)
		return
	}
	if err := s.publisher.Publish(eventType, body); err != nil {
		log.Printf("Warning: failed to publish %s event for order %s: %v", eventType, order.ID, err)
	}
}
