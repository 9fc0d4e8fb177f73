package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"bistro_boss/internal/models"
	"bistro_boss/internal/repository"
	"bistro_boss/internal/resp"
)

type UserController struct {
	users *repository.UserRepository
}

func NewUserController(users *repository.UserRepository) *UserController {
	return &UserController{users: users}
}

type userInput struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"required,email"`
	Photo string `json:"photo"`
}

func (u *UserController) ListUsers(c *gin.Context) {
	users, err := u.users.List(c.Request.Context(), repository.OrderBy("created_at"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// AdminStatus reports whether the caller's own account is an admin.
func (u *UserController) AdminStatus(c *gin.Context) {
	user, err := u.users.FindByEmail(c.Request.Context(), c.Param("email"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusOK, gin.H{"admin": false})
		return
	}
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": user.Role.IsAdmin()})
}

// CreateUser registers a user on first sign-in; repeat sign-ins conflict.
func (u *UserController) CreateUser(c *gin.Context) {
	var input userInput
	if err := c.ShouldBindJSON(&input); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user := models.User{Name: input.Name, Email: input.Email, Photo: input.Photo, Role: models.RoleUser}
	err := u.users.CreateUnique(c.Request.Context(), &user)
	if errors.Is(err, repository.ErrConflict) {
		c.JSON(http.StatusConflict, gin.H{
			"error":      resp.CodeConflict,
			"message":    "user already exists",
			"insertedId": nil,
		})
		return
	}
	if err != nil {
		resp.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"insertedId": user.ID, "user": user})
}

func (u *UserController) MakeAdmin(c *gin.Context) {
	user, err := u.users.Promote(c.Request.Context(), c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	logrus.WithField("user_id", user.ID).Info("MakeAdmin: user promoted")
	c.JSON(http.StatusOK, gin.H{"modifiedCount": 1, "user": user})
}

func (u *UserController) DeleteUser(c *gin.Context) {
	n, err := u.users.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": n})
}
