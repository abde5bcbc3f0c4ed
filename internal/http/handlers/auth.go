package handlers

import (
	"github.com/gin-gonic/gin"

	"remeralab.com/app/internal/http/flash"
	"remeralab.com/app/internal/http/middleware"
	"remeralab.com/app/internal/http/render"
	"remeralab.com/app/internal/shopapi"
	"remeralab.com/app/pkg/view"
)

type AuthHandler struct {
	API      *shopapi.Client
	Sessions *middleware.SessionCodec
	Flash    *flash.Codec
}

func NewAuthHandler(api *shopapi.Client, sessions *middleware.SessionCodec, fl *flash.Codec) *AuthHandler {
	return &AuthHandler{API: api, Sessions: sessions, Flash: fl}
}

type loginForm struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// Login handles POST /auth/login. The remote auth service issues the
// bearer token; the session cookie only carries it plus display claims.
func (h *AuthHandler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		failValidation(c, err, &form)
		return
	}

	res, err := h.API.Login(c.Request.Context(), shopapi.Credentials{
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	middleware.SignIn(c, h.Sessions, middleware.Claims{
		Token:  res.Token,
		UserID: res.ID,
		Email:  res.Email,
		Name:   res.Name,
		Role:   res.Role,
	})

	render.RedirectWithFlash(c, h.Flash, "/", view.FlashSuccess, "Welcome back, "+res.Name+".")
}

type registerForm struct {
	Name     string `json:"name" binding:"required,min=2,max=80"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// Register handles POST /auth/register. No session is created: the account
// must verify its email before it can sign in.
func (h *AuthHandler) Register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBindJSON(&form); err != nil {
		failValidation(c, err, &form)
		return
	}

	res, err := h.API.Register(c.Request.Context(), shopapi.RegisterInput{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	msg := res.Message
	if msg == "" {
		msg = "Account created. Check your inbox to verify your email."
	}
	render.RedirectWithFlash(c, h.Flash, "/auth/login", view.FlashSuccess, msg)
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.SignOut(c, h.Sessions)
	render.RedirectWithFlash(c, h.Flash, "/", view.FlashInfo, "Signed out.")
}

// VerifyEmail handles GET /auth/verify-email/:token.
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	if err := h.API.VerifyEmail(c.Request.Context(), c.Param("token")); err != nil {
		middleware.Fail(c, err)
		return
	}
	render.RedirectWithFlash(c, h.Flash, "/auth/login", view.FlashSuccess, "Email verified. You can sign in now.")
}

type resendForm struct {
	Email string `json:"email" binding:"required,email"`
}

// ResendVerification handles POST /auth/resend-verification.
func (h *AuthHandler) ResendVerification(c *gin.Context) {
	var form resendForm
	if err := c.ShouldBindJSON(&form); err != nil {
		failValidation(c, err, &form)
		return
	}
	if err := h.API.ResendVerification(c.Request.Context(), form.Email); err != nil {
		middleware.Fail(c, err)
		return
	}
	render.OK(c, gin.H{"message": "Verification email sent."})
}
