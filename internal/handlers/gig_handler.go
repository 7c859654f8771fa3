package handlers

import (
	"net/http"
	"strconv"

	"gigflow_backend/internal/middleware"
	"gigflow_backend/internal/repositories"
	"gigflow_backend/internal/services"
	"gigflow_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type GigHandler struct {
	*BaseHandler
	gigService services.GigService
}

func NewGigHandler(base *BaseHandler, gigService services.GigService) *GigHandler {
	return &GigHandler{
		BaseHandler: base,
		gigService:  gigService,
	}
}

func (h *GigHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public listing and detail
	gigs := r.Group("/gigs")
	{
		gigs.GET("", h.ListGigs)
		gigs.GET("/:gigId", h.GetGig)
	}

	// Owner operations
	protected := r.Group("/gigs")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("", h.CreateGig)
		protected.PUT("/:gigId", h.UpdateGig)
		protected.PUT("/:gigId/status", h.UpdateStatus)
		protected.DELETE("/:gigId", h.DeleteGig)
	}

	my := r.Group("/my/gigs")
	my.Use(middleware.AuthMiddleware())
	{
		my.GET("", h.GetMyGigs)
	}
}

func (h *GigHandler) CreateGig(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateGigRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	gig, err := h.gigService.CreateGig(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gig)
}

func (h *GigHandler) GetGig(c *gin.Context) {
	gig, err := h.gigService.GetGig(c.Param("gigId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gig)
}

func (h *GigHandler) ListGigs(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	minBudget, _ := strconv.ParseFloat(c.Query("min_budget"), 64)

	criteria := repositories.GigCriteria{
		Status:    c.Query("status"),
		Search:    c.Query("search"),
		MinBudget: minBudget,
		Page:      page,
		PageSize:  pageSize,
	}

	response, err := h.gigService.ListGigs(criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *GigHandler) GetMyGigs(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	gigs, err := h.gigService.GetMyGigs(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gigs)
}

func (h *GigHandler) UpdateGig(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateGigRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	gig, err := h.gigService.UpdateGig(userID, c.Param("gigId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gig)
}

func (h *GigHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateGigStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	gig, err := h.gigService.UpdateStatus(userID, c.Param("gigId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gig)
}

func (h *GigHandler) DeleteGig(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.gigService.DeleteGig(userID, c.Param("gigId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Gig deleted"})
}
