package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"salonbook-backend/apperrors"
	"salonbook-backend/models"
	"salonbook-backend/services"
	"salonbook-backend/utils"
)

// actingStylist resolves the stylist scope of the signed-in user. Admins
// get uuid.Nil (unscoped); stylist accounts must be linked to a stylist
// record.
func actingStylist(c *gin.Context, auth *services.AuthService) (uuid.UUID, bool, error) {
	rawID, _ := c.Get(utils.ContextUserID)
	idStr, _ := rawID.(string)

	user, err := auth.CurrentUser(c.Request.Context(), idStr)
	if err != nil {
		return uuid.Nil, false, err
	}
	if user.Role == models.RoleAdmin {
		return uuid.Nil, true, nil
	}
	if user.StylistID == nil {
		return uuid.Nil, false, apperrors.Forbidden("Account is not linked to a stylist profile")
	}
	return *user.StylistID, false, nil
}
