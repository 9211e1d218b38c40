package handler

import (
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
	"github.com/deppfellow/lightbnb/internal/validation"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	Handler
	users *service.UserService
}

func NewUserHandler(s *server.Server, users *service.UserService) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

type GetUserRequest struct {
	ID int64 `param:"id" validate:"required,gt=0"`
}

func (r *GetUserRequest) Validate() error {
	return validation.Struct(r)
}

func (h *UserHandler) GetUser(c echo.Context, req *GetUserRequest) (*model.User, error) {
	return h.users.GetUserWithID(c.Request().Context(), req.ID)
}

type GetUserByEmailRequest struct {
	Email string `query:"email" validate:"required"`
}

func (r *GetUserByEmailRequest) Validate() error {
	return validation.Struct(r)
}

func (h *UserHandler) GetUserByEmail(c echo.Context, req *GetUserByEmailRequest) (*model.User, error) {
	return h.users.GetUserWithEmail(c.Request().Context(), req.Email)
}

type AddUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *AddUserRequest) Validate() error {
	return validation.Struct(r)
}

// AddUser creates the user. The stored password is never part of the response.
func (h *UserHandler) AddUser(c echo.Context, req *AddUserRequest) (*model.User, error) {
	return h.users.AddUser(c.Request().Context(), model.NewUser{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
}
