package accounthandler

import (
	"net/http"

	"auctionhousego/internal/http/httperr"
	"auctionhousego/internal/http/middleware"
	"auctionhousego/internal/services/account"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc account.IAccountService
}

func New(svc account.IAccountService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(r gin.IRoutes) {
	r.POST("/auth/register/", h.register)
	r.POST("/auth/token/", h.login)
	r.POST("/auth/token/refresh/", h.refresh)
	r.POST("/auth/logout/", h.logout)
	r.GET("/auth/me/", middleware.RequireAuth(), h.me)
	r.DELETE("/auth/me/", middleware.RequireAuth(), h.deleteMe)
}

// @Summary		Register
// @Tags			Auth
// @Param			body	body		RegisterBody	true	"New account"
// @Success		201		{object}	models.User
// @Failure		400		{object}	httperr.FieldErrorsResponse
// @Router			/auth/register/ [post]
func (h *Handler) register(c *gin.Context) {
	var body RegisterBody
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	u, err := h.svc.Register(c.Request.Context(), account.RegisterInput{
		Username: body.Username,
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

// @Summary		Obtain a token pair
// @Tags			Auth
// @Param			body	body		LoginBody	true	"Credentials"
// @Success		200		{object}	token.Pair
// @Failure		401		{object}	httperr.ErrorResponse
// @Router			/auth/token/ [post]
func (h *Handler) login(c *gin.Context) {
	var body LoginBody
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	pair, err := h.svc.Login(c.Request.Context(), body.Username, body.Password)
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, pair)
}

// @Summary		Rotate a token pair
// @Description	The submitted refresh token is blacklisted and cannot be reused.
// @Tags			Auth
// @Param			body	body		RefreshBody	true	"Refresh token"
// @Success		200		{object}	token.Pair
// @Failure		401		{object}	httperr.ErrorResponse
// @Router			/auth/token/refresh/ [post]
func (h *Handler) refresh(c *gin.Context) {
	var body RefreshBody
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	pair, err := h.svc.Refresh(c.Request.Context(), body.Refresh)
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, pair)
}

// @Summary		Log out
// @Tags			Auth
// @Param			body	body	RefreshBody	true	"Refresh token to revoke"
// @Success		204
// @Failure		401	{object}	httperr.ErrorResponse
// @Router			/auth/logout/ [post]
func (h *Handler) logout(c *gin.Context) {
	var body RefreshBody
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	if err := h.svc.Logout(c.Request.Context(), body.Refresh); err != nil {
		httperr.Write(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary		Current user
// @Tags			Auth
// @Security		BearerAuth
// @Success		200	{object}	models.User
// @Failure		401	{object}	httperr.ErrorResponse
// @Router			/auth/me/ [get]
func (h *Handler) me(c *gin.Context) {
	u, err := h.svc.Me(c.Request.Context(), middleware.Principal(c))
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// @Summary		Delete my account
// @Description	Removes the caller together with their auctions, bids, ratings and comments.
// @Tags			Auth
// @Security		BearerAuth
// @Success		204
// @Failure		401	{object}	httperr.ErrorResponse
// @Router			/auth/me/ [delete]
func (h *Handler) deleteMe(c *gin.Context) {
	if err := h.svc.DeleteMe(c.Request.Context(), middleware.Principal(c)); err != nil {
		httperr.Write(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
