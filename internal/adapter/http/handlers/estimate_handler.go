package handlers

import (
	"errors"
	"net/http"

	request "hospital_estimate/internal/adapter/http/dto/request"
	response "hospital_estimate/internal/adapter/http/dto/response"
	"hospital_estimate/internal/adapter/http/middleware"
	"hospital_estimate/internal/domain/pricing"
	"hospital_estimate/internal/usecase"
	"hospital_estimate/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)

// EstimateHandler serves estimate generation and the saved-estimate records.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// GenerateEstimate prices the selected services for a patient and returns
// the full itemized document. Nothing is persisted.
func (h *EstimateHandler) GenerateEstimate(c *gin.Context) {
	var payload request.GenerateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	actor := middleware.ActorFromContext(c)
	doc, err := h.usecase.Generate(c.Request.Context(), actor, payload.ToEngineRequest())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, doc)
}

func (h *EstimateHandler) SaveEstimate(c *gin.Context) {
	var payload request.SaveEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	actor := middleware.ActorFromContext(c)
	saved, err := h.usecase.Save(c.Request.Context(), actor, payload.ToSaveInput())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSavedEstimateRef(saved))
}

func (h *EstimateHandler) ListSavedEstimates(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	viewAll := c.Query("view_all") == "true"

	estimates, err := h.usecase.ListSaved(c.Request.Context(), actor, viewAll)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSavedEstimateList(estimates))
}

func (h *EstimateHandler) GetSavedEstimate(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	saved, err := h.usecase.GetSaved(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSavedEstimate(saved))
}

// mapEstimateError surfaces engine validation messages verbatim; anything
// the caller cannot fix maps to a 500.
func mapEstimateError(err error) *pkg.AppError {
	var unknownService *pricing.UnknownServiceError
	switch {
	case errors.Is(err, pricing.ErrPatientNameRequired),
		errors.Is(err, pricing.ErrUnknownPatientCategory),
		errors.Is(err, pricing.ErrInvalidLengthOfStay),
		errors.Is(err, pricing.ErrNoServicesSelected),
		errors.As(err, &unknownService):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSaveInput), errors.Is(err, usecase.ErrInvalidEstimateData),
		errors.Is(err, usecase.ErrInvalidEstimateID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateAccessDenied):
		return pkg.NewDomainErrorSimple("ACCESS_DENIED", "Access denied", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
