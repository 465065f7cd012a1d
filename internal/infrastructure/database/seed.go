package database

import (
	"context"
	"time"

	"hospital_estimate/internal/domain/entities"
	"hospital_estimate/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// The category reference tables the rest of the system assumes exist.
var (
	defaultServiceCategories = []entities.ServiceCategory{
		{Name: "nursing", DisplayName: "Nursing"},
		{Name: "room", DisplayName: "Room Charges"},
		{Name: "doctor", DisplayName: "Doctor Visit"},
		{Name: "laboratory", DisplayName: "Laboratory"},
		{Name: "radiology", DisplayName: "Radiology"},
		{Name: "pharmacy", DisplayName: "Pharmacy"},
		{Name: "equipment", DisplayName: "Equipment"},
		{Name: "procedures", DisplayName: "Procedures"},
		{Name: "surgery", DisplayName: "Surgery"},
	}

	defaultPatientCategories = []entities.PatientCategory{
		{Name: "charity", DisplayName: "Charity"},
		{Name: "general_nc_a", DisplayName: "General NC A"},
		{Name: "general_nc_b", DisplayName: "General NC B"},
		{Name: "general", DisplayName: "General"},
		{Name: "deluxe", DisplayName: "Deluxe"},
		{Name: "super_deluxe", DisplayName: "Super Deluxe"},
	}
)

// SeedCategories creates any missing default categories. Existing rows are
// left untouched, so ids stay stable across restarts.
func SeedCategories(
	ctx context.Context,
	serviceCategories interfaces.IServiceCategoryRepository,
	patientCategories interfaces.IPatientCategoryRepository,
) error {
	for _, c := range defaultServiceCategories {
		existing, err := serviceCategories.GetByName(ctx, c.Name)
		if err != nil {
			return err
		}
		if existing.ID != "" {
			continue
		}

		c.ID = uuid.NewString()
		c.CreatedAt = time.Now().UTC()
		if _, err := serviceCategories.Create(ctx, c); err != nil {
			return err
		}
		log.Info().Str("category", c.Name).Msg("seeded service category")
	}

	for _, c := range defaultPatientCategories {
		existing, err := patientCategories.GetByName(ctx, c.Name)
		if err != nil {
			return err
		}
		if existing.ID != "" {
			continue
		}

		c.ID = uuid.NewString()
		c.CreatedAt = time.Now().UTC()
		if _, err := patientCategories.Create(ctx, c); err != nil {
			return err
		}
		log.Info().Str("category", c.Name).Msg("seeded patient category")
	}

	return nil
}
