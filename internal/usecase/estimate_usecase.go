package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"hospital_estimate/internal/domain/entities"
	"hospital_estimate/internal/domain/pricing"
	"hospital_estimate/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound     = errors.New("estimate not found")
	ErrEstimateAccessDenied = errors.New("access denied")
	ErrInvalidEstimateID    = errors.New("invalid estimate id")
	ErrInvalidSaveInput     = errors.New("missing required fields")
	ErrInvalidEstimateData  = errors.New("invalid estimate data")
)

// Estimates are rendered in the billing desk's wall clock.
var istZone = time.FixedZone("IST", 5*3600+30*60)

const generatedAtLayout = "2006-01-02 15:04:05"

// Actor is the authenticated staff member performing an operation. Handlers
// build it from the verified token claims.
type Actor struct {
	UserID   string
	Username string
	Role     entities.Role
}

// SaveEstimateInput snapshots a previously generated estimate document.
type SaveEstimateInput struct {
	PatientName     string
	PatientUHID     string
	PatientCategory string
	LengthOfStay    int
	EstimateData    json.RawMessage
}

// IEstimateUseCase exposes the estimate operations:
//   - Generate runs the pure pricing engine over a fresh catalog snapshot
//   - Save persists a generated document under a server-assigned number
//   - ListSaved/GetSaved read back saved estimates with role scoping

type IEstimateUseCase interface {
	Generate(ctx context.Context, actor Actor, req pricing.Request) (entities.EstimateDocument, error)
	Save(ctx context.Context, actor Actor, input SaveEstimateInput) (entities.SavedEstimate, error)
	ListSaved(ctx context.Context, actor Actor, viewAll bool) ([]entities.SavedEstimate, error)
	GetSaved(ctx context.Context, actor Actor, id string) (entities.SavedEstimate, error)
}

type EstimateUseCase struct {
	services          interfaces.IServiceRepository
	serviceCategories interfaces.IServiceCategoryRepository
	patientCategories interfaces.IPatientCategoryRepository
	discounts         interfaces.IDiscountRepository
	saved             interfaces.ISavedEstimateRepository
	now               func() time.Time
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(
	services interfaces.IServiceRepository,
	serviceCategories interfaces.IServiceCategoryRepository,
	patientCategories interfaces.IPatientCategoryRepository,
	discounts interfaces.IDiscountRepository,
	saved interfaces.ISavedEstimateRepository,
) *EstimateUseCase {
	return &EstimateUseCase{
		services:          services,
		serviceCategories: serviceCategories,
		patientCategories: patientCategories,
		discounts:         discounts,
		saved:             saved,
		now:               time.Now,
	}
}

func (u *EstimateUseCase) Generate(ctx context.Context, actor Actor, req pricing.Request) (entities.EstimateDocument, error) {
	services, err := u.services.List(ctx)
	if err != nil {
		return entities.EstimateDocument{}, err
	}
	serviceCats, err := u.serviceCategories.List(ctx)
	if err != nil {
		return entities.EstimateDocument{}, err
	}
	patientCats, err := u.patientCategories.List(ctx)
	if err != nil {
		return entities.EstimateDocument{}, err
	}
	discountRows, err := u.discounts.List(ctx)
	if err != nil {
		return entities.EstimateDocument{}, err
	}

	table, err := pricing.NewDiscountTable(discountRows)
	if err != nil {
		return entities.EstimateDocument{}, err
	}

	res, err := pricing.ComputeEstimate(req, pricing.NewCatalog(services, serviceCats, patientCats), table)
	if err != nil {
		return entities.EstimateDocument{}, err
	}

	return entities.EstimateDocument{
		PatientDetails: res.Patient,
		EstimateLines:  res.Lines,
		Summary:        res.Summary,
		GeneratedAt:    u.now().In(istZone).Format(generatedAtLayout),
		GeneratedBy:    capitalizeRole(actor.Role),
	}, nil
}

func (u *EstimateUseCase) Save(ctx context.Context, actor Actor, input SaveEstimateInput) (entities.SavedEstimate, error) {
	if strings.TrimSpace(input.PatientName) == "" || strings.TrimSpace(input.PatientCategory) == "" {
		return entities.SavedEstimate{}, ErrInvalidSaveInput
	}
	if input.LengthOfStay < 1 {
		return entities.SavedEstimate{}, ErrInvalidSaveInput
	}
	if len(input.EstimateData) == 0 {
		return entities.SavedEstimate{}, ErrInvalidSaveInput
	}

	var snapshot struct {
		EstimateLines []entities.EstimateLine  `json:"estimate_lines"`
		Summary       entities.EstimateSummary `json:"summary"`
	}
	if err := json.Unmarshal(input.EstimateData, &snapshot); err != nil {
		return entities.SavedEstimate{}, ErrInvalidEstimateData
	}
	if len(snapshot.EstimateLines) == 0 {
		return entities.SavedEstimate{}, ErrInvalidEstimateData
	}

	number, err := u.saved.NextEstimateNumber(ctx)
	if err != nil {
		return entities.SavedEstimate{}, err
	}

	e := entities.SavedEstimate{
		ID:                  uuid.NewString(),
		EstimateNumber:      number,
		PatientName:         strings.TrimSpace(input.PatientName),
		PatientUHID:         strings.TrimSpace(input.PatientUHID),
		PatientCategory:     strings.TrimSpace(input.PatientCategory),
		LengthOfStay:        input.LengthOfStay,
		Subtotal:            snapshot.Summary.Subtotal,
		TotalDiscount:       snapshot.Summary.TotalDiscount,
		FinalTotal:          snapshot.Summary.FinalTotal,
		GeneratedByRole:     actor.Role,
		GeneratedByUserID:   actor.UserID,
		GeneratedByUsername: actor.Username,
		EstimateData:        input.EstimateData,
		CreatedAt:           u.now().UTC(),
	}
	return u.saved.Create(ctx, e)
}

func (u *EstimateUseCase) ListSaved(ctx context.Context, actor Actor, viewAll bool) ([]entities.SavedEstimate, error) {
	var (
		estimates []entities.SavedEstimate
		err       error
	)
	if actor.Role == entities.RoleAdmin && viewAll {
		estimates, err = u.saved.ListAll(ctx)
	} else {
		estimates, err = u.saved.ListByUserID(ctx, actor.UserID)
	}
	if err != nil {
		return nil, err
	}

	sort.Slice(estimates, func(i, j int) bool {
		return estimates[i].CreatedAt.After(estimates[j].CreatedAt)
	})
	return estimates, nil
}

func (u *EstimateUseCase) GetSaved(ctx context.Context, actor Actor, id string) (entities.SavedEstimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SavedEstimate{}, ErrInvalidEstimateID
	}

	e, err := u.saved.GetByID(ctx, id)
	if err != nil {
		return entities.SavedEstimate{}, err
	}
	if e.ID == "" {
		return entities.SavedEstimate{}, ErrEstimateNotFound
	}

	if actor.Role != entities.RoleAdmin && actor.Role != entities.RoleManager && e.GeneratedByUserID != actor.UserID {
		return entities.SavedEstimate{}, ErrEstimateAccessDenied
	}
	return e, nil
}

func capitalizeRole(r entities.Role) string {
	s := string(r)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
