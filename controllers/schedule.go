// controllers/schedule.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"salonbook-backend/apperrors"
	"salonbook-backend/forms"
	"salonbook-backend/logger"
	"salonbook-backend/services"
	"salonbook-backend/validation"
)

type ScheduleController struct {
	svc  *services.ScheduleService
	auth *services.AuthService
	log  *logger.Logger
}

func NewScheduleController(svc *services.ScheduleService, auth *services.AuthService, log *logger.Logger) *ScheduleController {
	return &ScheduleController{svc: svc, auth: auth, log: log}
}

// List returns the acting stylist's windows; admins pass ?stylist_id.
func (ct *ScheduleController) List(c *gin.Context) {
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

	schedules, err := ct.svc.ListForStylist(c.Request.Context(), target)
	if err != nil {
		respondError(c, ct.log, err)
		return
	}
	jsonOK(c, schedules)
}

func (ct *ScheduleController) Create(c *gin.Context) {
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
	in := validation.ScheduleInput{
		StylistID: stylistID.String(),
		Weekday:   d.OptionalInt("weekday"),
		StartTime: d.Trimmed("start_time"),
		EndTime:   d.Trimmed("end_time"),
	}
	if isAdmin {
		in.StylistID = d.Trimmed("stylist_id")
	}
	if err := d.Err(); err != nil {
		respondError(c, ct.log, err)
		return
	}

	schedule, err := ct.svc.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, ct.log, err)
		return
	}
	c.JSON(http.StatusCreated, ok("Schedule created", schedule))
}

func (ct *ScheduleController) Delete(c *gin.Context) {
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
	c.JSON(http.StatusOK, ok("Schedule deleted", nil))
}
