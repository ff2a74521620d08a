package api

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/greeter/internal/common"
	"github.com/dmitrijs2005/greeter/internal/server/models"
	"github.com/labstack/echo/v4"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type errorResponse struct {
	Message string `json:"message"`
}

type handler struct {
	users     UserService
	greetings GreetingService
}

func (h handler) register(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/greetings", h.listGreetings)

	auth := api.Group("/auth")
	auth.POST("/register", h.registerUser)
	auth.POST("/login", h.login)
}

func (h handler) listGreetings(c echo.Context) error {
	items, err := h.greetings.List(c.Request().Context())
	if err != nil {
		return err
	}
	if items == nil {
		items = []*models.Greeting{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h handler) registerUser(c echo.Context) error {
	req, err := bindCredentials(c)
	if err != nil {
		return err
	}

	u, err := h.users.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, userResponse{ID: u.ID, Username: u.UserName})
}

func (h handler) login(c echo.Context) error {
	req, err := bindCredentials(c)
	if err != nil {
		return err
	}

	u, err := h.users.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{ID: u.ID, Username: u.UserName})
}

// bindCredentials decodes a {username, password} JSON object. Anything that
// does not decode into it, including non-string fields, is a validation error.
func bindCredentials(c echo.Context) (*credentialsRequest, error) {
	req := &credentialsRequest{}
	if err := c.Echo().JSONSerializer.Deserialize(c, req); err != nil {
		return nil, errors.Join(common.ErrorValidation, err)
	}
	if req.Username == "" || req.Password == "" {
		return nil, common.ErrorValidation
	}
	return req, nil
}
