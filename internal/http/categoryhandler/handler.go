package categoryhandler

import (
	"net/http"

	"auctionhousego/internal/http/httperr"
	"auctionhousego/internal/http/middleware"
	"auctionhousego/internal/http/reqparams"
	"auctionhousego/internal/models"
	"auctionhousego/internal/services/category"

	"github.com/gin-gonic/gin"
)

type CategoryBody struct {
	Name string `json:"name" binding:"required,max=50" example:"Electronics"`
} // @name CategoryRequest

type CategoryPage struct {
	Count    int               `json:"count"`
	Next     *string           `json:"next"`
	Previous *string           `json:"previous"`
	Results  []models.Category `json:"results"`
} // @name CategoryPage

type Handler struct {
	svc      category.ICategoryService
	pageSize int
}

func New(svc category.ICategoryService, pageSize int) *Handler {
	return &Handler{svc: svc, pageSize: pageSize}
}

func (h *Handler) Register(r gin.IRoutes) {
	r.GET("/categories/", h.list)
	r.POST("/categories/", middleware.RequireAuth(), h.create)
	r.GET("/categories/:id/", h.info)
	r.PUT("/categories/:id/", middleware.RequireAuth(), h.update)
	r.DELETE("/categories/:id/", middleware.RequireAuth(), h.delete)
}

// @Summary		List categories
// @Tags			Categories
// @Param			page	query		int	false	"Page number"	minimum(1)	default(1)
// @Success		200		{object}	CategoryPage
// @Router			/categories/ [get]
func (h *Handler) list(c *gin.Context) {
	page, ok := reqparams.Page(c, h.pageSize)
	if !ok {
		return
	}
	out, err := h.svc.ListCategories(c.Request.Context(), page)
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, reqparams.Envelope(c, out))
}

// @Summary		Create a category
// @Description	Admin only. Names are unique.
// @Tags			Categories
// @Security		BearerAuth
// @Param			body	body		CategoryBody	true	"Category payload"
// @Success		201		{object}	models.Category
// @Failure		400		{object}	httperr.FieldErrorsResponse
// @Failure		403		{object}	httperr.ErrorResponse
// @Router			/categories/ [post]
func (h *Handler) create(c *gin.Context) {
	var body CategoryBody
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	cat, err := h.svc.CreateCategory(c.Request.Context(), middleware.Principal(c), body.Name)
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

// @Summary		Get a category
// @Tags			Categories
// @Param			id	path		int	true	"Category ID"
// @Success		200	{object}	models.Category
// @Failure		404	{object}	httperr.ErrorResponse
// @Router			/categories/{id}/ [get]
func (h *Handler) info(c *gin.Context) {
	id, ok := reqparams.ID(c, "id")
	if !ok {
		return
	}
	cat, err := h.svc.GetCategory(c.Request.Context(), id)
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

// @Summary		Rename a category
// @Tags			Categories
// @Security		BearerAuth
// @Param			id		path		int				true	"Category ID"
// @Param			body	body		CategoryBody	true	"Category payload"
// @Success		200		{object}	models.Category
// @Failure		400		{object}	httperr.FieldErrorsResponse
// @Failure		403		{object}	httperr.ErrorResponse
// @Failure		404		{object}	httperr.ErrorResponse
// @Router			/categories/{id}/ [put]
func (h *Handler) update(c *gin.Context) {
	id, ok := reqparams.ID(c, "id")
	if !ok {
		return
	}
	var body CategoryBody
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	cat, err := h.svc.UpdateCategory(c.Request.Context(), middleware.Principal(c), id, body.Name)
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

// @Summary		Delete a category
// @Description	Admin only. Deletes every auction in the category.
// @Tags			Categories
// @Security		BearerAuth
// @Param			id	path	int	true	"Category ID"
// @Success		204
// @Failure		403	{object}	httperr.ErrorResponse
// @Failure		404	{object}	httperr.ErrorResponse
// @Router			/categories/{id}/ [delete]
func (h *Handler) delete(c *gin.Context) {
	id, ok := reqparams.ID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteCategory(c.Request.Context(), middleware.Principal(c), id); err != nil {
		httperr.Write(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
