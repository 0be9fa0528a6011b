// controllers/service.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salonbook-backend/cache"
	"salonbook-backend/forms"
	"salonbook-backend/logger"
	"salonbook-backend/services"
	"salonbook-backend/validation"
)

type ServiceController struct {
	svc   *services.ServiceService
	views *cache.Views
	log   *logger.Logger
}

func NewServiceController(svc *services.ServiceService, views *cache.Views, log *logger.Logger) *ServiceController {
	return &ServiceController{svc: svc, views: views, log: log}
}

func (ct *ServiceController) List(c *gin.Context) {
	list, err := ct.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, ct.log, err)
		return
	}
	jsonOK(c, list)
}

func (ct *ServiceController) Get(c *gin.Context) {
	service, err := ct.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, ct.log, err)
		return
	}
	jsonOK(c, service)
}

func (ct *ServiceController) Create(c *gin.Context) {
	vals, err := forms.Parse(c.Request)
	if err != nil {
		respondError(c, ct.log, err)
		return
	}

	d := forms.NewDecoder(vals)
	in := validation.ServiceInput{
		Name:            d.Trimmed("name"),
		Description:     d.Trimmed("description"),
		DurationMinutes: d.Int("duration_minutes"),
		Price:           d.Float("price"),
		Category:        d.Trimmed("category"),
		IsActive:        d.Bool("is_active", true),
	}
	if err := d.Err(); err != nil {
		respondError(c, ct.log, err)
		return
	}

	service, err := ct.svc.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, ct.log, err)
		return
	}

	ct.views.Invalidate(cache.Services)
	c.JSON(http.StatusCreated, ok("Service created", service))
}

func (ct *ServiceController) Update(c *gin.Context) {
	vals, err := forms.Parse(c.Request)
	if err != nil {
		respondError(c, ct.log, err)
		return
	}

	d := forms.NewDecoder(vals)
	in := validation.ServiceEditInput{
		ID: c.Param("id"),
		ServiceInput: validation.ServiceInput{
			Name:            d.Trimmed("name"),
			Description:     d.Trimmed("description"),
			DurationMinutes: d.Int("duration_minutes"),
			Price:           d.Float("price"),
			Category:        d.Trimmed("category"),
			// Unchecked checkboxes are absent from the submission; on edit
			// absence means deactivate, not the create-time default.
			IsActive: d.Bool("is_active", false),
		},
	}
	if err := d.Err(); err != nil {
		respondError(c, ct.log, err)
		return
	}

	service, err := ct.svc.Update(c.Request.Context(), in)
	if err != nil {
		respondError(c, ct.log, err)
		return
	}

	ct.views.Invalidate(cache.Services)
	c.JSON(http.StatusOK, ok("Service updated", service))
}

func (ct *ServiceController) Delete(c *gin.Context) {
	if err := ct.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, ct.log, err)
		return
	}
	ct.views.Invalidate(cache.Services)
	c.JSON(http.StatusOK, ok("Service deleted", nil))
}
