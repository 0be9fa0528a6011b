// controllers/offered_service.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"salonbook-backend/apperrors"
	"salonbook-backend/cache"
	"salonbook-backend/forms"
	"salonbook-backend/logger"
	"salonbook-backend/services"
	"salonbook-backend/validation"
)

type OfferedServiceController struct {
	svc   *services.OfferedServiceService
	auth  *services.AuthService
	views *cache.Views
	log   *logger.Logger
}

func NewOfferedServiceController(
	svc *services.OfferedServiceService,
	auth *services.AuthService,
	views *cache.Views,
	log *logger.Logger,
) *OfferedServiceController {
	return &OfferedServiceController{svc: svc, auth: auth, views: views, log: log}
}

func (ct *OfferedServiceController) List(c *gin.Context) {
	stylistID, isAdmin, err := actingStylist(c, ct.auth)
	if err != nil {
		respondError(c, ct.log, err)
		return
	}

	target := stylistID.String()
	if isAdmin {
		target = c.Query("stylist_id")
		if target == "" {
			respondError(c, ct.log, apperrors.InvalidInput("stylist_id is required"))
			return
		}
	}

	offered, err := ct.svc.ListForStylist(c.Request.Context(), target)
	if err != nil {
		respondError(c, ct.log, err)
		return
	}
	jsonOK(c, offered)
}

func (ct *OfferedServiceController) Create(c *gin.Context) {
	stylistID, isAdmin, err := actingStylist(c, ct.auth)
	if err != nil {
		respondError(c, ct.log, err)
		return
	}

	vals, err := forms.Parse(c.Request)
	if err != nil {
		respondError(c, ct.log, err)
		return
	}

	d := forms.NewDecoder(vals)
	in := validation.OfferedServiceInput{
		StylistID:             stylistID.String(),
		ServiceID:             d.Trimmed("service_id"),
		CustomPrice:           d.OptionalFloat("custom_price"),
		CustomDurationMinutes: d.OptionalInt("custom_duration_minutes"),
		IsActive:              d.Bool("is_active", true),
	}
	if isAdmin {
		in.StylistID = d.Trimmed("stylist_id")
	}
	if err := d.Err(); err != nil {
		respondError(c, ct.log, err)
		return
	}

	offered, err := ct.svc.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, ct.log, err)
		return
	}

	ct.views.Invalidate(cache.Stylists)
	c.JSON(http.StatusCreated, ok("Offered service created", offered))
}

func (ct *OfferedServiceController) SetActive(c *gin.Context) {
	stylistID, isAdmin, err := actingStylist(c, ct.auth)
	if err != nil {
		respondError(c, ct.log, err)
		return
	}

	vals, err := forms.Parse(c.Request)
	if err != nil {
		respondError(c, ct.log, err)
		return
	}
	d := forms.NewDecoder(vals)
	active := d.Bool("is_active", false)

	acting := stylistID
	if isAdmin {
		acting = uuid.Nil
	}
	offered, err := ct.svc.SetActive(c.Request.Context(), c.Param("id"), active, acting)
	if err != nil {
		respondError(c, ct.log, err)
		return
	}

	ct.views.Invalidate(cache.Stylists)
	c.JSON(http.StatusOK, ok("Offered service updated", offered))
}

func (ct *OfferedServiceController) Delete(c *gin.Context) {
	stylistID, isAdmin, err := actingStylist(c, ct.auth)
	if err != nil {
		respondError(c, ct.log, err)
		return
	}

	acting := stylistID
	if isAdmin {
		acting = uuid.Nil
	}
	if err := ct.svc.Delete(c.Request.Context(), c.Param("id"), acting); err != nil {
		respondError(c, ct.log, err)
		return
	}

	ct.views.Invalidate(cache.Stylists)
	c.JSON(http.StatusOK, ok("Offered service deleted", nil))
}
