package handlers

import (
	"net/http"

	"gigflow_backend/internal/middleware"
	"gigflow_backend/internal/services"
	"gigflow_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BidHandler struct {
	*BaseHandler
	bidService services.BidService
}

func NewBidHandler(base *BaseHandler, bidService services.BidService) *BidHandler {
	return &BidHandler{
		BaseHandler: base,
		bidService:  bidService,
	}
}

func (h *BidHandler) RegisterRoutes(r *gin.RouterGroup) {
	bids := r.Group("/bids")
	bids.Use(middleware.AuthMiddleware())
	{
		bids.POST("", h.PlaceBid)
		bids.POST("/:bidId/hire", h.Hire)
	}

	gigs := r.Group("/gigs")
	gigs.Use(middleware.AuthMiddleware())
	{
		gigs.GET("/:gigId/bids", h.GetGigBids)
	}

	my := r.Group("/my/bids")
	my.Use(middleware.AuthMiddleware())
	{
		my.GET("", h.GetMyBids)
	}
}

func (h *BidHandler) PlaceBid(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.PlaceBidRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	bid, err := h.bidService.PlaceBid(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bid)
}

func (h *BidHandler) GetGigBids(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	bids, err := h.bidService.GetGigBids(userID, c.Param("gigId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, bids)
}

func (h *BidHandler) GetMyBids(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	bids, err := h.bidService.GetMyBids(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, bids)
}

func (h *BidHandler) Hire(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	response, err := h.bidService.Hire(userID, c.Param("bidId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
