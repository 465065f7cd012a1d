package handlers

import (
	"errors"
	"net/http"

	request "hospital_estimate/internal/adapter/http/dto/request"
	response "hospital_estimate/internal/adapter/http/dto/response"
	"hospital_estimate/internal/adapter/http/middleware"
	"hospital_estimate/internal/domain/entities"
	"hospital_estimate/internal/usecase"
	"hospital_estimate/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidUserPayload = pkg.NewDomainErrorSimple("INVALID_USER_INPUT", "Invalid user payload", http.StatusBadRequest)

// UserHandler serves signup, login, and the admin approval queue.
type UserHandler struct {
	usecase usecase.IUserUseCase
}

func NewUserHandler(uc usecase.IUserUseCase) *UserHandler {
	return &UserHandler{usecase: uc}
}

func (h *UserHandler) SignUp(c *gin.Context) {
	var payload request.SignupRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidUserPayload.HTTPStatus, errInvalidUserPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.SignUp(c.Request.Context(), payload.Username, payload.Password, entities.Role(payload.Role))
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	msg := "Account created, awaiting admin approval"
	if result.AutoApproved {
		msg = "Admin account created"
	}
	c.JSON(http.StatusCreated, response.MessageResponse{Message: msg})
}

func (h *UserHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidUserPayload.HTTPStatus, errInvalidUserPayload.ToHTTPError())
		return
	}

	user, err := h.usecase.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	token, err := middleware.SignAccessToken(user)
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLogin(user, token))
}

// UserInfo returns the authenticated user's current record, so the client
// sees approval changes without re-issuing the token.
func (h *UserHandler) UserInfo(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	user, err := h.usecase.GetByID(c.Request.Context(), actor.UserID)
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUserInfo(user))
}

func (h *UserHandler) ListPendingUsers(c *gin.Context) {
	pending, err := h.usecase.ListPending(c.Request.Context())
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPendingUsers(pending))
}

func (h *UserHandler) ApproveUser(c *gin.Context) {
	if _, err := h.usecase.Approve(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "User approved"})
}

func (h *UserHandler) RejectUser(c *gin.Context) {
	if _, err := h.usecase.Reject(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "User rejected"})
}

func mapUserError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSignupInput),
		errors.Is(err, usecase.ErrInvalidRole),
		errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUsernameTaken):
		return pkg.NewDomainErrorSimple("USERNAME_TAKEN", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrAdminAlreadyExists):
		return pkg.NewDomainErrorSimple("ADMIN_EXISTS", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", err.Error(), http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrAccountNotApproved), errors.Is(err, usecase.ErrAccountRejected):
		return pkg.NewDomainErrorSimple("ACCOUNT_NOT_ACTIVE", err.Error(), http.StatusForbidden)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
