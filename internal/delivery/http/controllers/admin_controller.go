package controllers

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"eventbooking/internal/delivery/http/helpers"
	"eventbooking/internal/domain"
)

type AdminController struct {
	Logger  *zap.Logger
	Service domain.AdminService
}

func NewAdminController(logger *zap.Logger, svc domain.AdminService) *AdminController {
	return &AdminController{Logger: logger, Service: svc}
}

// ListAdmins godoc
// @Summary List admins
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the admins"
// @Router /admins [get]
func (c *AdminController) ListAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := c.Service.List(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, admins)
}

// GetAdmin godoc
// @Summary Get an admin by id
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID"
// @Success 200 {object} helpers.APIResponse "data contains the admin"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admins/{id} [get]
func (c *AdminController) GetAdmin(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	admin, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, admin)
}

// CreateAdmin godoc
// @Summary Create an admin
// @Tags admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body AdminRequest true "Admin data"
// @Success 201 {object} helpers.APIResponse "data contains the created admin"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /admins [post]
func (c *AdminController) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req AdminRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	admin := &domain.Admin{Name: strings.TrimSpace(req.Name), Email: strings.TrimSpace(req.Email)}
	if err := c.Service.Create(r.Context(), admin, req.Password); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, admin)
}

// UpdateAdmin godoc
// @Summary Replace an admin
// @Tags admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID"
// @Param body body AdminRequest true "Admin data"
// @Success 200 {object} helpers.APIResponse "data contains the updated admin"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admins/{id} [put]
func (c *AdminController) UpdateAdmin(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	var req AdminRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	admin := &domain.Admin{ID: id, Name: strings.TrimSpace(req.Name), Email: strings.TrimSpace(req.Email)}
	if err := c.Service.Update(r.Context(), admin, req.Password); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, admin)
}

// DeleteAdmin godoc
// @Summary Delete an admin
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID"
// @Success 200 {object} helpers.APIResponse "data contains the confirmation message"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admins/{id} [delete]
func (c *AdminController) DeleteAdmin(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	msg, err := c.Service.Delete(r.Context(), id)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, msg)
}
