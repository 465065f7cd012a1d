package pricing

import "hospital_estimate/internal/domain/entities"

// Catalog is the reference data snapshot an estimate is computed against.
// Services and service categories are keyed by id; patient categories by
// their name, which is what estimate requests carry.
type Catalog struct {
	Services          map[string]entities.Service
	ServiceCategories map[string]entities.ServiceCategory
	PatientCategories map[string]entities.PatientCategory
}

func NewCatalog(services []entities.Service, serviceCategories []entities.ServiceCategory, patientCategories []entities.PatientCategory) Catalog {
	c := Catalog{
		Services:          make(map[string]entities.Service, len(services)),
		ServiceCategories: make(map[string]entities.ServiceCategory, len(serviceCategories)),
		PatientCategories: make(map[string]entities.PatientCategory, len(patientCategories)),
	}
	for _, s := range services {
		c.Services[s.ID] = s
	}
	for _, sc := range serviceCategories {
		c.ServiceCategories[sc.ID] = sc
	}
	for _, pc := range patientCategories {
		c.PatientCategories[pc.Name] = pc
	}
	return c
}

type discountKey struct {
	patientCategoryID string
	serviceCategoryID string
}

// DiscountTable resolves the discount rule for a
// (patient category, service category) pair.
type DiscountTable struct {
	rules map[discountKey]entities.Discount
}

// NewDiscountTable builds a lookup table from discount rows. A duplicate
// pair is a data defect and fails construction.
func NewDiscountTable(rows []entities.Discount) (DiscountTable, error) {
	rules := make(map[discountKey]entities.Discount, len(rows))
	for _, d := range rows {
		key := discountKey{patientCategoryID: d.PatientCategoryID, serviceCategoryID: d.ServiceCategoryID}
		if _, ok := rules[key]; ok {
			return DiscountTable{}, &DuplicateDiscountError{
				PatientCategoryID: d.PatientCategoryID,
				ServiceCategoryID: d.ServiceCategoryID,
			}
		}
		rules[key] = d
	}
	return DiscountTable{rules: rules}, nil
}

func (t DiscountTable) Lookup(patientCategoryID, serviceCategoryID string) (entities.Discount, bool) {
	d, ok := t.rules[discountKey{patientCategoryID: patientCategoryID, serviceCategoryID: serviceCategoryID}]
	return d, ok
}
