package repositories

import (
	"fmt"

	"ordersvc/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// Create persists a new order. The identifier is assigned here when the
// caller did not supply one; it is a plain UUID string, so no conversion is
// needed at any boundary.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// GetAll retrieves all orders from the database. Full scan, unordered.
func (r *GORMOrderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	return orders, nil
}

// GetByID retrieves a single order by its ID from the database.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// UpdateFields applies a merge-patch: only the columns present in fields are
// set. Returns the number of matched records (0 or 1).
func (r *GORMOrderRepository) UpdateFields(id string, fields map[string]interface{}) (int64, error) {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to update order %s: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}

// Delete removes an order by its ID. Returns the number of deleted records
// (0 or 1).
func (r *GORMOrderRepository) Delete(id string) (int64, error) {
	res := r.db.Delete(&models.Order{}, "id = ?", id)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete order %s: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}
