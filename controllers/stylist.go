// controllers/stylist.go
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

type StylistController struct {
	svc   *services.StylistService
	views *cache.Views
	log   *logger.Logger
}

func NewStylistController(svc *services.StylistService, views *cache.Views, log *logger.Logger) *StylistController {
	return &StylistController{svc: svc, views: views, log: log}
}

func (ct *StylistController) List(c *gin.Context) {
	list, err := ct.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, ct.log, err)
		return
	}
	jsonOK(c, list)
}

func (ct *StylistController) Get(c *gin.Context) {
	stylist, err := ct.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, ct.log, err)
		return
	}
	jsonOK(c, stylist)
}

func (ct *StylistController) Create(c *gin.Context) {
	vals, err := forms.Parse(c.Request)
	if err != nil {
		respondError(c, ct.log, err)
		return
	}

	d := forms.NewDecoder(vals)
	in := validation.StylistInput{
		Name:        d.Trimmed("name"),
		Email:       d.Trimmed("email"),
		Phone:       d.Trimmed("phone"),
		Description: d.Trimmed("description"),
		IsActive:    d.Bool("is_active", true),
	}
	if err := d.Err(); err != nil {
		respondError(c, ct.log, err)
		return
	}

	stylist, err := ct.svc.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, ct.log, err)
		return
	}

	ct.views.Invalidate(cache.Stylists)
	c.JSON(http.StatusCreated, ok("Stylist created", stylist))
}

func (ct *StylistController) Update(c *gin.Context) {
	vals, err := forms.Parse(c.Request)
	if err != nil {
		respondError(c, ct.log, err)
		return
	}

	d := forms.NewDecoder(vals)
	in := validation.StylistEditInput{
		ID: c.Param("id"),
		StylistInput: validation.StylistInput{
			Name:        d.Trimmed("name"),
			Email:       d.Trimmed("email"),
			Phone:       d.Trimmed("phone"),
			Description: d.Trimmed("description"),
			// Unchecked checkboxes are absent from the submission; on edit
			// absence means deactivate, not the create-time default.
			IsActive: d.Bool("is_active", false),
		},
	}
	if err := d.Err(); err != nil {
		respondError(c, ct.log, err)
		return
	}

	stylist, err := ct.svc.Update(c.Request.Context(), in)
	if err != nil {
		respondError(c, ct.log, err)
		return
	}

	ct.views.Invalidate(cache.Stylists)
	c.JSON(http.StatusOK, ok("Stylist updated", stylist))
}

func (ct *StylistController) Delete(c *gin.Context) {
	if err := ct.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, ct.log, err)
		return
	}
	ct.views.Invalidate(cache.Stylists)
	c.JSON(http.StatusOK, ok("Stylist deleted", nil))
}
