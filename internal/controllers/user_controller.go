package controllers

import (
	"net/http"
	"strconv"

	"github.com/civiclink/backend/internal/middleware"
	"github.com/civiclink/backend/internal/services"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	service *services.ComplaintService
}

func NewUserController(service *services.ComplaintService) *UserController {
	return &UserController{service: service}
}

func (uc *UserController) GetUsers(c *gin.Context) {
	users := uc.service.GetUsers()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    users,
		"count":   len(users),
	})
}

func (uc *UserController) GetUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid user ID",
		})
		return
	}

	user, err := uc.service.GetUser(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    user,
	})
}

// GetCurrentStaff returns the identity comments are attributed to.
func (uc *UserController) GetCurrentStaff(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    middleware.CurrentStaff(c),
	})
}
