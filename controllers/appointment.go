// controllers/appointment.go
package controllers

import (
	"github.com/gin-gonic/gin"

	"salonbook-backend/apperrors"
	"salonbook-backend/logger"
	"salonbook-backend/services"
)

type AppointmentController struct {
	booking *services.BookingService
	auth    *services.AuthService
	log     *logger.Logger
}

func NewAppointmentController(booking *services.BookingService, auth *services.AuthService, log *logger.Logger) *AppointmentController {
	return &AppointmentController{booking: booking, auth: auth, log: log}
}

// Upcoming lists the acting stylist's scheduled appointments.
func (ct *AppointmentController) Upcoming(c *gin.Context) {
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

	appointments, err := ct.booking.UpcomingForStylist(c.Request.Context(), target)
	if err != nil {
		respondError(c, ct.log, err)
		return
	}
	jsonOK(c, appointments)
}
