package models

import "time"

// Order represents a customer order. The owning user lives in the external
// user service and is referenced by UserID only; existence is verified at
// creation time, never afterward.
type Order struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"type:varchar(100);index" validate:"required"`
	Product   string    `json:"product" validate:"required"`
	Amount    float64   `json:"amount" validate:"required,gt=0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderPatch carries a merge-patch for an order: only non-nil fields are
// applied, absent fields are left untouched.
type OrderPatch struct {
	Product *string  `json:"product"`
	Amount  *float64 `json:"amount" validate:"omitempty,gt=0"`
}

// Fields returns the patch as a column/value map, skipping nil entries.
// An empty map means there is nothing to update.
func (p OrderPatch) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if p.Product != nil {
		fields["product"] = *p.Product
	}
	if p.Amount != nil {
		fields["amount"] = *p.Amount
	}
	return fields
}
