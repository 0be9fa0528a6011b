// controllers/auth.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salonbook-backend/forms"
	"salonbook-backend/logger"
	"salonbook-backend/models"
	"salonbook-backend/services"
	"salonbook-backend/utils"
	"salonbook-backend/validation"
)

type AuthController struct {
	auth *services.AuthService
	log  *logger.Logger
}

func NewAuthController(auth *services.AuthService, log *logger.Logger) *AuthController {
	return &AuthController{auth: auth, log: log}
}

func (ct *AuthController) Register(c *gin.Context) {
	vals, err := forms.Parse(c.Request)
	if err != nil {
		respondError(c, ct.log, err)
		return
	}

	d := forms.NewDecoder(vals)
	in := validation.RegisterInput{
		Name:     d.Trimmed("name"),
		Email:    d.Trimmed("email"),
		Phone:    d.Trimmed("phone"),
		Password: d.String("password"),
	}
	if err := d.Err(); err != nil {
		respondError(c, ct.log, err)
		return
	}

	user, err := ct.auth.Register(c.Request.Context(), in)
	if err != nil {
		respondError(c, ct.log, err)
		return
	}
	c.JSON(http.StatusCreated, ok("Registration successful", gin.H{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
	}))
}

// Login sets the session cookie and reports the role's landing page.
// The redirect is only present on a success envelope.
func (ct *AuthController) Login(c *gin.Context) {
	vals, err := forms.Parse(c.Request)
	if err != nil {
		respondError(c, ct.log, err)
		return
	}

	d := forms.NewDecoder(vals)
	in := validation.LoginInput{
		Identifier: d.Trimmed("identifier"),
		Password:   d.String("password"),
	}
	if err := d.Err(); err != nil {
		respondError(c, ct.log, err)
		return
	}

	user, token, err := ct.auth.Login(c.Request.Context(), in)
	if err != nil {
		respondError(c, ct.log, err)
		return
	}

	maxAge := 24 * 3600
	c.SetCookie(utils.TokenCookie, token, maxAge, "/", "", true, true)

	redirect := "/stylist"
	if user.Role == models.RoleAdmin {
		redirect = "/admin"
	}
	c.JSON(http.StatusOK, ok("Signed in", gin.H{
		"token":    token,
		"redirect": redirect,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	}))
}

func (ct *AuthController) Me(c *gin.Context) {
	rawID, _ := c.Get(utils.ContextUserID)
	idStr, _ := rawID.(string)

	user, err := ct.auth.CurrentUser(c.Request.Context(), idStr)
	if err != nil {
		respondError(c, ct.log, err)
		return
	}
	jsonOK(c, gin.H{
		"id":         user.ID,
		"email":      user.Email,
		"name":       user.Name,
		"role":       user.Role,
		"stylist_id": user.StylistID,
	})
}

func (ct *AuthController) Logout(c *gin.Context) {
	c.SetCookie(utils.TokenCookie, "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, ok("Signed out", nil))
}

func (ct *AuthController) SetPassword(c *gin.Context) {
	rawID, _ := c.Get(utils.ContextUserID)
	idStr, _ := rawID.(string)

	vals, err := forms.Parse(c.Request)
	if err != nil {
		respondError(c, ct.log, err)
		return
	}

	d := forms.NewDecoder(vals)
	in := validation.SetPasswordInput{
		Password: d.String("password"),
		Confirm:  d.String("password_confirm"),
	}
	if err := d.Err(); err != nil {
		respondError(c, ct.log, err)
		return
	}

	if err := ct.auth.SetPassword(c.Request.Context(), idStr, in); err != nil {
		respondError(c, ct.log, err)
		return
	}
	c.JSON(http.StatusOK, ok("Password updated", gin.H{"redirect": "/"}))
}
