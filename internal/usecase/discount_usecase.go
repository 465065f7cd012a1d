package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"hospital_estimate/internal/domain/entities"
	"hospital_estimate/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrDiscountNotFound     = errors.New("discount not found")
	ErrInvalidDiscountID    = errors.New("invalid discount id")
	ErrInvalidDiscountInput = errors.New("patient_category_id, service_category_id, discount_type, and discount_value are required")
	ErrInvalidDiscountType  = errors.New("discount_type must be percentage or flat")
	ErrInvalidDiscountValue = errors.New("invalid discount value")
	ErrDiscountPairExists   = errors.New("discount already exists for this category pair")
)

// DiscountDetail is a Discount with both category display names
// denormalized for listing.
type DiscountDetail struct {
	entities.Discount
	PatientCategoryName    string
	PatientCategoryDisplay string
	ServiceCategoryName    string
	ServiceCategoryDisplay string
}

type DiscountInput struct {
	PatientCategoryID string
	ServiceCategoryID string
	Type              entities.DiscountType
	Value             float64
}

// UpdateDiscountInput carries a partial update; nil fields keep their stored
// value.
type UpdateDiscountInput struct {
	PatientCategoryID *string
	ServiceCategoryID *string
	Type              *entities.DiscountType
	Value             *float64
}

// IDiscountUseCase maintains the discount rules. Writes keep the
// (patient category, service category) pair unique: Upsert overwrites the
// rule already covering the pair, UpdateByID refuses to move a rule onto a
// pair another rule covers.
type IDiscountUseCase interface {
	ListDiscounts(ctx context.Context) ([]DiscountDetail, error)
	Upsert(ctx context.Context, input DiscountInput) (entities.Discount, bool, error)
	UpdateByID(ctx context.Context, id string, input UpdateDiscountInput) (entities.Discount, error)
	DeleteByID(ctx context.Context, id string) error
}

type DiscountUseCase struct {
	discounts         interfaces.IDiscountRepository
	serviceCategories interfaces.IServiceCategoryRepository
	patientCategories interfaces.IPatientCategoryRepository
}

var _ IDiscountUseCase = (*DiscountUseCase)(nil)

func NewDiscountUseCase(
	discounts interfaces.IDiscountRepository,
	serviceCategories interfaces.IServiceCategoryRepository,
	patientCategories interfaces.IPatientCategoryRepository,
) *DiscountUseCase {
	return &DiscountUseCase{
		discounts:         discounts,
		serviceCategories: serviceCategories,
		patientCategories: patientCategories,
	}
}

func (u *DiscountUseCase) ListDiscounts(ctx context.Context) ([]DiscountDetail, error) {
	discounts, err := u.discounts.List(ctx)
	if err != nil {
		return nil, err
	}
	serviceCats, err := u.serviceCategories.List(ctx)
	if err != nil {
		return nil, err
	}
	patientCats, err := u.patientCategories.List(ctx)
	if err != nil {
		return nil, err
	}

	scByID := make(map[string]entities.ServiceCategory, len(serviceCats))
	for _, c := range serviceCats {
		scByID[c.ID] = c
	}
	pcByID := make(map[string]entities.PatientCategory, len(patientCats))
	for _, c := range patientCats {
		pcByID[c.ID] = c
	}

	details := make([]DiscountDetail, 0, len(discounts))
	for _, d := range discounts {
		pc := pcByID[d.PatientCategoryID]
		sc := scByID[d.ServiceCategoryID]
		details = append(details, DiscountDetail{
			Discount:               d,
			PatientCategoryName:    pc.Name,
			PatientCategoryDisplay: pc.DisplayName,
			ServiceCategoryName:    sc.Name,
			ServiceCategoryDisplay: sc.DisplayName,
		})
	}
	return details, nil
}

// Upsert creates the rule for a pair, or overwrites the existing one. The
// second return value reports whether a new rule was created.
func (u *DiscountUseCase) Upsert(ctx context.Context, input DiscountInput) (entities.Discount, bool, error) {
	if strings.TrimSpace(input.PatientCategoryID) == "" || strings.TrimSpace(input.ServiceCategoryID) == "" {
		return entities.Discount{}, false, ErrInvalidDiscountInput
	}
	if err := validateDiscountRule(input.Type, input.Value); err != nil {
		return entities.Discount{}, false, err
	}

	patientCat, err := u.patientCategories.GetByID(ctx, input.PatientCategoryID)
	if err != nil {
		return entities.Discount{}, false, err
	}
	serviceCat, err := u.serviceCategories.GetByID(ctx, input.ServiceCategoryID)
	if err != nil {
		return entities.Discount{}, false, err
	}
	if patientCat.ID == "" || serviceCat.ID == "" {
		return entities.Discount{}, false, ErrCategoryNotFound
	}

	existing, err := u.discounts.GetByPair(ctx, patientCat.ID, serviceCat.ID)
	if err != nil {
		return entities.Discount{}, false, err
	}
	if existing.ID != "" {
		existing.Type = input.Type
		existing.Value = input.Value
		updated, err := u.discounts.Update(ctx, existing)
		return updated, false, err
	}

	d := entities.Discount{
		ID:                uuid.NewString(),
		PatientCategoryID: patientCat.ID,
		ServiceCategoryID: serviceCat.ID,
		Type:              input.Type,
		Value:             input.Value,
		CreatedAt:         time.Now().UTC(),
	}
	created, err := u.discounts.Create(ctx, d)
	return created, true, err
}

func (u *DiscountUseCase) UpdateByID(ctx context.Context, id string, input UpdateDiscountInput) (entities.Discount, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Discount{}, ErrInvalidDiscountID
	}

	d, err := u.discounts.GetByID(ctx, id)
	if err != nil {
		return entities.Discount{}, err
	}
	if d.ID == "" {
		return entities.Discount{}, ErrDiscountNotFound
	}

	if input.PatientCategoryID != nil {
		d.PatientCategoryID = *input.PatientCategoryID
	}
	if input.ServiceCategoryID != nil {
		d.ServiceCategoryID = *input.ServiceCategoryID
	}
	if input.Type != nil {
		d.Type = *input.Type
	}
	if input.Value != nil {
		d.Value = *input.Value
	}
	if err := validateDiscountRule(d.Type, d.Value); err != nil {
		return entities.Discount{}, err
	}

	// Moving the rule onto a pair another rule covers would create the
	// duplicate the engine refuses to price.
	if input.PatientCategoryID != nil || input.ServiceCategoryID != nil {
		other, err := u.discounts.GetByPair(ctx, d.PatientCategoryID, d.ServiceCategoryID)
		if err != nil {
			return entities.Discount{}, err
		}
		if other.ID != "" && other.ID != d.ID {
			return entities.Discount{}, ErrDiscountPairExists
		}
	}

	return u.discounts.Update(ctx, d)
}

func (u *DiscountUseCase) DeleteByID(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidDiscountID
	}

	d, err := u.discounts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if d.ID == "" {
		return ErrDiscountNotFound
	}
	return u.discounts.Delete(ctx, id)
}

func validateDiscountRule(t entities.DiscountType, value float64) error {
	if !t.Valid() {
		return ErrInvalidDiscountType
	}
	if value < 0 {
		return ErrInvalidDiscountValue
	}
	if t == entities.DiscountTypePercentage && value > 100 {
		return ErrInvalidDiscountValue
	}
	return nil
}
