package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	memes "meme-market/internal/memeService"
	model "meme-market/internal/models"
	"meme-market/services/market/helpers"
	"meme-market/utils"
)

type MemeServiceInterface interface {
	ListMemes() ([]model.Meme, error)
	GetMeme(memeID string) (model.Meme, error)
	MemesByTag(tag string) ([]model.Meme, error)
	SearchMemes(query string) ([]model.Meme, error)
	CreateMeme(ctx context.Context, input memes.CreateMemeInput) (model.Meme, error)
	UpdateMeme(ctx context.Context, memeID string, input memes.UpdateMemeInput) (model.Meme, error)
	DeleteMeme(memeID string) error
	RegenerateCaption(ctx context.Context, memeID string) (model.Meme, error)
}

type LeaderboardInterface interface {
	TopMemes(limit int) ([]model.Meme, error)
}

type MemeHandler struct {
	service     MemeServiceInterface
	leaderboard LeaderboardInterface
}

func NewMemeHandler(service MemeServiceInterface, leaderboard LeaderboardInterface) *MemeHandler {
	return &MemeHandler{service: service, leaderboard: leaderboard}
}

// ListMemesHandler handles GET /memes
func (h *MemeHandler) ListMemesHandler(c *gin.Context) {
	memesList, err := h.service.ListMemes()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListMemesHandler: error listing memes", map[string]any{"error": err.Error()})
		return
	}

	if memesList == nil {
		memesList = []model.Meme{}
	}
	utils.JSONResponse(c, http.StatusOK, memesList, "memes retrieved successfully")
}

// TopMemesHandler handles GET /memes/top?limit=N
func (h *MemeHandler) TopMemesHandler(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	top, err := h.leaderboard.TopMemes(limit)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("TopMemesHandler: error computing leaderboard", map[string]any{"error": err.Error()})
		return
	}

	if top == nil {
		top = []model.Meme{}
	}
	utils.JSONResponse(c, http.StatusOK, top, "top memes retrieved successfully")
	helpers.LogSuccess("TopMemesHandler", "top memes retrieved successfully", map[string]any{
		"limit": limit,
		"count": len(top),
	})
}

// MemesByTagHandler handles GET /memes/tag/:tag
func (h *MemeHandler) MemesByTagHandler(c *gin.Context) {
	tag := c.Param("tag")
	memesList, err := h.service.MemesByTag(tag)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("MemesByTagHandler: error retrieving memes", map[string]any{"tag": tag, "error": err.Error()})
		return
	}

	if memesList == nil {
		memesList = []model.Meme{}
	}
	utils.JSONResponse(c, http.StatusOK, memesList, "memes retrieved successfully")
}

// SearchMemesHandler handles GET /memes/search?query=Q
func (h *MemeHandler) SearchMemesHandler(c *gin.Context) {
	query := c.Query("query")
	memesList, err := h.service.SearchMemes(query)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("SearchMemesHandler: error searching memes", map[string]any{"query": query, "error": err.Error()})
		return
	}

	if memesList == nil {
		memesList = []model.Meme{}
	}
	utils.JSONResponse(c, http.StatusOK, memesList, "memes retrieved successfully")
}

// GetMemeHandler handles GET /memes/:id
func (h *MemeHandler) GetMemeHandler(c *gin.Context) {
	memeID := c.Param("id")
	meme, err := h.service.GetMeme(memeID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetMemeHandler: error retrieving meme", map[string]any{"meme_id": memeID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, meme, "meme retrieved successfully")
}

// CreateMemeHandler handles POST /memes
func (h *MemeHandler) CreateMemeHandler(c *gin.Context) {
	var req helpers.CreateMemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateMemeHandler", err)
		return
	}

	meme, err := h.service.CreateMeme(c.Request.Context(), memes.CreateMemeInput{
		Title:    req.Title,
		ImageURL: req.ResolvedImageURL(),
		Tags:     req.Tags,
		OwnerID:  req.OwnerID,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateMemeHandler: failed to create meme", map[string]any{
			"handler": "CreateMemeHandler",
			"title":   req.Title,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, meme, "meme created successfully")
	helpers.LogSuccess("CreateMemeHandler", "meme created successfully", map[string]any{
		"meme_id":  meme.MemeID,
		"title":    meme.Title,
		"owner_id": meme.OwnerID,
	})
}

// UpdateMemeHandler handles PUT /memes/:id
func (h *MemeHandler) UpdateMemeHandler(c *gin.Context) {
	memeID := c.Param("id")

	var req helpers.UpdateMemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateMemeHandler", err)
		return
	}

	meme, err := h.service.UpdateMeme(c.Request.Context(), memeID, memes.UpdateMemeInput{
		Title:    req.Title,
		ImageURL: req.ImageURL,
		Tags:     req.Tags,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateMemeHandler: failed to update meme", map[string]any{"meme_id": memeID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, meme, "meme updated successfully")
	helpers.LogSuccess("UpdateMemeHandler", "meme updated successfully", map[string]any{"meme_id": memeID})
}

// DeleteMemeHandler handles DELETE /memes/:id
func (h *MemeHandler) DeleteMemeHandler(c *gin.Context) {
	memeID := c.Param("id")

	if err := h.service.DeleteMeme(memeID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DeleteMemeHandler: failed to delete meme", map[string]any{"meme_id": memeID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"success": true}, "meme deleted successfully")
	helpers.LogSuccess("DeleteMemeHandler", "meme deleted successfully", map[string]any{"meme_id": memeID})
}

// RegenerateCaptionHandler handles POST /memes/:id/caption
func (h *MemeHandler) RegenerateCaptionHandler(c *gin.Context) {
	memeID := c.Param("id")

	meme, err := h.service.RegenerateCaption(c.Request.Context(), memeID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RegenerateCaptionHandler: failed to regenerate caption", map[string]any{"meme_id": memeID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{
		"meme":          meme,
		"caption":       meme.Caption,
		"vibe_analysis": meme.VibeAnalysis,
	}, "caption and vibe updated successfully")
	helpers.LogSuccess("RegenerateCaptionHandler", "caption and vibe updated successfully", map[string]any{"meme_id": memeID})
}
