package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	model "meme-market/internal/models"
	"meme-market/services/market/helpers"
	"meme-market/utils"
)

type BidServiceInterface interface {
	PlaceBid(memeID, userID string, amount int64) (model.Bid, error)
	GetBidsForMeme(memeID string) ([]model.Bid, error)
}

type BidHandler struct {
	service BidServiceInterface
}

func NewBidHandler(service BidServiceInterface) *BidHandler {
	return &BidHandler{service: service}
}

// PlaceBidHandler handles POST /bids
func (h *BidHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(req.MemeID, req.UserID, req.Credits)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler": "PlaceBidHandler",
			"meme_id": req.MemeID,
			"user_id": req.UserID,
			"error":   err.Error(),
		})
		return
	}

	resp := helpers.BidResponse{
		BidID:     bid.BidID,
		MemeID:    bid.MemeID,
		UserID:    bid.UserID,
		Credits:   bid.Credits,
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":  bid.BidID,
		"meme_id": bid.MemeID,
		"user_id": bid.UserID,
		"credits": bid.Credits,
	})
}

// GetBidsByMemeHandler handles GET /bids/meme/:memeId
func (h *BidHandler) GetBidsByMemeHandler(c *gin.Context) {
	memeID := c.Param("memeId")
	bids, err := h.service.GetBidsForMeme(memeID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsByMemeHandler: error retrieving bids", map[string]any{"meme_id": memeID, "error": err.Error()})
		return
	}

	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByMemeHandler", "bids retrieved successfully", map[string]any{
		"meme_id": memeID,
		"count":   len(bids),
	})
}
