package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	model "meme-market/internal/models"
	"meme-market/services/market/helpers"
	"meme-market/utils"
)

type VoteServiceInterface interface {
	CastVote(memeID, userID string, isUpvote bool) (model.VoteCounts, error)
}

type VoteHandler struct {
	service VoteServiceInterface
}

func NewVoteHandler(service VoteServiceInterface) *VoteHandler {
	return &VoteHandler{service: service}
}

// CastVoteHandler handles POST /votes/:memeId
func (h *VoteHandler) CastVoteHandler(c *gin.Context) {
	memeID := c.Param("memeId")

	var req helpers.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CastVoteHandler", err)
		return
	}

	counts, err := h.service.CastVote(memeID, req.UserID, *req.VoteType)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CastVoteHandler: failed to cast vote", map[string]any{
			"handler": "CastVoteHandler",
			"meme_id": memeID,
			"user_id": req.UserID,
			"error":   err.Error(),
		})
		return
	}

	resp := helpers.VoteCountsResponse{
		MemeID:    memeID,
		Upvotes:   counts.Upvotes,
		Downvotes: counts.Downvotes,
	}

	utils.JSONResponse(c, http.StatusOK, resp, "vote applied successfully")
	helpers.LogSuccess("CastVoteHandler", "vote applied successfully", map[string]any{
		"meme_id":   memeID,
		"user_id":   req.UserID,
		"upvotes":   counts.Upvotes,
		"downvotes": counts.Downvotes,
	})
}
