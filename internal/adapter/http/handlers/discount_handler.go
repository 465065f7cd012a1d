package handlers

import (
	"errors"
	"net/http"

	request "hospital_estimate/internal/adapter/http/dto/request"
	response "hospital_estimate/internal/adapter/http/dto/response"
	"hospital_estimate/internal/usecase"
	"hospital_estimate/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidDiscountPayload = pkg.NewDomainErrorSimple("INVALID_DISCOUNT_INPUT", "Invalid discount payload", http.StatusBadRequest)

type DiscountHandler struct {
	usecase usecase.IDiscountUseCase
}

func NewDiscountHandler(uc usecase.IDiscountUseCase) *DiscountHandler {
	return &DiscountHandler{usecase: uc}
}

func (h *DiscountHandler) ListDiscounts(c *gin.Context) {
	details, err := h.usecase.ListDiscounts(c.Request.Context())
	if err != nil {
		appErr := mapDiscountError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDiscountDetails(details))
}

// UpsertDiscount creates the rule for the category pair or overwrites the
// existing one. 201 on create, 200 on overwrite.
func (h *DiscountHandler) UpsertDiscount(c *gin.Context) {
	var payload request.DiscountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDiscountPayload.HTTPStatus, errInvalidDiscountPayload.ToHTTPError())
		return
	}

	d, created, err := h.usecase.Upsert(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapDiscountError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, response.FromDiscount(d))
}

func (h *DiscountHandler) UpdateDiscount(c *gin.Context) {
	var payload request.UpdateDiscountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDiscountPayload.HTTPStatus, errInvalidDiscountPayload.ToHTTPError())
		return
	}

	d, err := h.usecase.UpdateByID(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapDiscountError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDiscount(d))
}

func (h *DiscountHandler) DeleteDiscount(c *gin.Context) {
	if err := h.usecase.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapDiscountError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Discount deleted"})
}

func mapDiscountError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDiscountInput),
		errors.Is(err, usecase.ErrInvalidDiscountID),
		errors.Is(err, usecase.ErrInvalidDiscountType),
		errors.Is(err, usecase.ErrInvalidDiscountValue),
		errors.Is(err, usecase.ErrCategoryNotFound):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDiscountPairExists):
		return pkg.NewDomainErrorSimple("DISCOUNT_PAIR_EXISTS", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrDiscountNotFound):
		return pkg.NewDomainErrorSimple("DISCOUNT_NOT_FOUND", "Discount not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
