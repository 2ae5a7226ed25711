package controllers

import (
	"net/http"

	"go.uber.org/zap"

	"eventbooking/internal/delivery/http/helpers"
	"eventbooking/internal/domain"
)

// AuthController handles signup and authentication for the security service.
type AuthController struct {
	Logger  *zap.Logger
	Service domain.AuthService
}

// NewAuthController builds an AuthController.
func NewAuthController(logger *zap.Logger, svc domain.AuthService) *AuthController {
	return &AuthController{Logger: logger, Service: svc}
}

// SignUp godoc
// @Summary Sign up a new user
// @Description Create a new user with name, email, password, optional phone and a role. The name must be unique. Password is stored hashed.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body SignUpRequest true "Sign-up data"
// @Success 201 {object} helpers.APIResponse "data contains the created user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/signup [post]
func (c *AuthController) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	user, err := c.Service.SignUp(r.Context(), req.user(), req.Password)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, user)
}

// Authenticate godoc
// @Summary Authenticate
// @Description Authenticate with username and password. Returns the user id, role and a JWT carrying both.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body AuthenticateRequest true "Credentials"
// @Success 200 {object} helpers.APIResponse "data contains id, token and role"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/authenticate [post]
func (c *AuthController) Authenticate(w http.ResponseWriter, r *http.Request) {
	var req AuthenticateRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	result, err := c.Service.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, result)
}
