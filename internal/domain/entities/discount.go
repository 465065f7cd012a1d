package entities

import "time"

// DiscountType selects how a discount rule is applied to a line.

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFlat       DiscountType = "flat"
)

func (t DiscountType) Valid() bool {
	return t == DiscountTypePercentage || t == DiscountTypeFlat
}

// Discount is a pricing rule keyed by the
// (patient_category_id, service_category_id) pair. At most one rule may
// exist per pair; writes upsert and reads fail loudly on duplicates.
//
// Storage model (DynamoDB):
//   - PK: id
type Discount struct {
	ID                string       `json:"id"`
	PatientCategoryID string       `json:"patient_category_id"`
	ServiceCategoryID string       `json:"service_category_id"`
	Type              DiscountType `json:"discount_type"`
	Value             float64      `json:"discount_value"`
	CreatedAt         time.Time    `json:"created_at"`
}
