package handler

import (
	"github.com/gin-gonic/gin"

	"lightbnb/src/app/http/dto"
	"lightbnb/src/app/http/response"
	"lightbnb/src/app/middleware"
	"lightbnb/src/core/usecase"
)

// UserHandler handles user endpoints.
type UserHandler struct {
	userService *usecase.UserService
}

func NewUserHandler(userService *usecase.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Create registers a user.
// POST /v1/users
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload: "+err.Error(), middleware.GetRequestID(c))
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req.ToDomain())
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, dto.NewUserResponse(user))
}

// Get returns a user by id.
// GET /v1/users/:user_id
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	user, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, dto.NewUserResponse(user))
}

// Lookup returns the user registered under an email.
// GET /v1/users?email=
func (h *UserHandler) Lookup(c *gin.Context) {
	var q dto.UserLookupQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Invalid(c, "email", "is required", middleware.GetRequestID(c))
		return
	}

	user, err := h.userService.GetByEmail(c.Request.Context(), q.Email)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, dto.NewUserResponse(user))
}
