package routes

import (
	"hospital_estimate/internal/adapter/http/handlers"
	"hospital_estimate/internal/adapter/http/middleware"
	"hospital_estimate/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

func addUserRoutes(rg *gin.RouterGroup, userHandler *handlers.UserHandler) {
	rg.POST("/signup", userHandler.SignUp)
	rg.POST("/login", userHandler.Login)

	auth := middleware.AuthRequired()
	adminOnly := middleware.RequireRoles(entities.RoleAdmin)

	rg.GET("/user-info", auth, userHandler.UserInfo)
	rg.GET("/pending-users", auth, adminOnly, userHandler.ListPendingUsers)
	rg.POST("/users/:id/approve", auth, adminOnly, userHandler.ApproveUser)
	rg.POST("/users/:id/reject", auth, adminOnly, userHandler.RejectUser)
}
