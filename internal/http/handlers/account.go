package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"remeralab.com/app/internal/http/flash"
	"remeralab.com/app/internal/http/middleware"
	"remeralab.com/app/internal/http/render"
	"remeralab.com/app/internal/shopapi"
	"remeralab.com/app/pkg/view"
)

type AccountHandler struct {
	API      *shopapi.Client
	Sessions *middleware.SessionCodec
	Flash    *flash.Codec
}

func NewAccountHandler(api *shopapi.Client, sessions *middleware.SessionCodec, fl *flash.Codec) *AccountHandler {
	return &AccountHandler{API: api, Sessions: sessions, Flash: fl}
}

// Show handles GET /account with the fresh remote profile.
func (h *AccountHandler) Show(c *gin.Context) {
	u, err := h.API.Profile(c.Request.Context(), middleware.APIToken(c))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	render.Page(c, http.StatusOK, gin.H{"profile": u})
}

type profileForm struct {
	Name       string `json:"name" binding:"omitempty,min=2,max=80"`
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postal_code"`
}

// Update handles POST /account. The session cookie is refreshed so the
// header shows the new name immediately.
func (h *AccountHandler) Update(c *gin.Context) {
	var form profileForm
	if err := c.ShouldBindJSON(&form); err != nil {
		failValidation(c, err, &form)
		return
	}

	in := shopapi.ProfileInput{Name: form.Name}
	if form.Street != "" || form.City != "" || form.Province != "" || form.PostalCode != "" {
		in.Address = &shopapi.Address{
			Street:     form.Street,
			City:       form.City,
			Province:   form.Province,
			PostalCode: form.PostalCode,
		}
	}

	token := middleware.APIToken(c)
	u, err := h.API.UpdateProfile(c.Request.Context(), token, in)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	middleware.SignIn(c, h.Sessions, middleware.Claims{
		Token:  token,
		UserID: u.ID,
		Email:  u.Email,
		Name:   u.Name,
		Role:   u.Role,
	})

	render.RedirectWithFlash(c, h.Flash, "/account", view.FlashSuccess, "Profile updated.")
}
