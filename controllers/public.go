// controllers/public.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salonbook-backend/cache"
	"salonbook-backend/forms"
	"salonbook-backend/logger"
	"salonbook-backend/models"
	"salonbook-backend/services"
	"salonbook-backend/validation"
)

// PublicController serves the unauthenticated browsing and booking routes.
type PublicController struct {
	stylists *services.StylistService
	catalog  *services.ServiceService
	offered  *services.OfferedServiceService
	booking  *services.BookingService
	views    *cache.Views
	log      *logger.Logger
}

func NewPublicController(
	stylists *services.StylistService,
	catalog *services.ServiceService,
	offered *services.OfferedServiceService,
	booking *services.BookingService,
	views *cache.Views,
	log *logger.Logger,
) *PublicController {
	return &PublicController{
		stylists: stylists,
		catalog:  catalog,
		offered:  offered,
		booking:  booking,
		views:    views,
		log:      log,
	}
}

func (ct *PublicController) Services(c *gin.Context) {
	if cached, hit := ct.views.Get(cache.Services); hit {
		jsonOK(c, cached)
		return
	}

	list, err := ct.catalog.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, ct.log, err)
		return
	}
	ct.views.Set(cache.Services, list)
	jsonOK(c, list)
}

func (ct *PublicController) Stylists(c *gin.Context) {
	if cached, hit := ct.views.Get(cache.Stylists); hit {
		jsonOK(c, cached)
		return
	}

	list, err := ct.stylists.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, ct.log, err)
		return
	}
	ct.views.Set(cache.Stylists, list)
	jsonOK(c, list)
}

type stylistDetail struct {
	Stylist *models.Stylist         `json:"stylist"`
	Offered []models.OfferedService `json:"offered_services"`
}

func (ct *PublicController) StylistDetail(c *gin.Context) {
	id := c.Param("id")

	stylist, err := ct.stylists.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, ct.log, err)
		return
	}

	offered, err := ct.offered.ListActiveForStylist(c.Request.Context(), id)
	if err != nil {
		respondError(c, ct.log, err)
		return
	}

	jsonOK(c, stylistDetail{Stylist: stylist, Offered: offered})
}

func (ct *PublicController) Book(c *gin.Context) {
	vals, err := forms.Parse(c.Request)
	if err != nil {
		respondError(c, ct.log, err)
		return
	}

	d := forms.NewDecoder(vals)
	in := validation.BookingInput{
		Name:      d.Trimmed("name"),
		Phone:     d.Trimmed("phone"),
		Email:     d.Trimmed("email"),
		StylistID: d.Trimmed("stylist_id"),
		ServiceID: d.Trimmed("service_id"),
		Date:      d.Trimmed("date"),
		StartTime: d.Trimmed("start_time"),
	}
	if err := d.Err(); err != nil {
		respondError(c, ct.log, err)
		return
	}

	appointment, err := ct.booking.Book(c.Request.Context(), in)
	if err != nil {
		respondError(c, ct.log, err)
		return
	}
	c.JSON(http.StatusCreated, ok("Appointment booked", appointment))
}
