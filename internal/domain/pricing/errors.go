package pricing

import (
	"errors"
	"fmt"
)

// Validation errors: the request itself is bad and the caller can fix it.
// Messages are surfaced verbatim to the client.
var (
	ErrPatientNameRequired    = errors.New("patient name required")
	ErrUnknownPatientCategory = errors.New("unknown patient category")
	ErrInvalidLengthOfStay    = errors.New("invalid length of stay")
	ErrNoServicesSelected     = errors.New("no services selected")
)

// UnknownServiceError reports the first selected service id that did not
// resolve in the catalog. Usually means the client is holding a stale copy
// of the service list.
type UnknownServiceError struct {
	ID string
}

func (e *UnknownServiceError) Error() string {
	return fmt.Sprintf("unknown service id: %s", e.ID)
}

// UnknownServiceCategoryError reports a service whose category reference did
// not resolve. This indicates corrupt reference data, not a bad request.
type UnknownServiceCategoryError struct {
	ServiceID  string
	CategoryID string
}

func (e *UnknownServiceCategoryError) Error() string {
	return fmt.Sprintf("service %s references unknown category id: %s", e.ServiceID, e.CategoryID)
}

// DuplicateDiscountError reports two discount rows covering the same
// (patient category, service category) pair. The store is expected to keep
// the pair unique; when it does not, the whole computation fails instead of
// silently picking a first match.
type DuplicateDiscountError struct {
	PatientCategoryID string
	ServiceCategoryID string
}

func (e *DuplicateDiscountError) Error() string {
	return fmt.Sprintf("duplicate discount for patient category %s and service category %s",
		e.PatientCategoryID, e.ServiceCategoryID)
}
