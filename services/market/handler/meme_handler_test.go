package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"meme-market/internal/marketerrors"
	memes "meme-market/internal/memeService"
	model "meme-market/internal/models"
)

func memeRouter(t *testing.T) (*gin.Engine, *MockMemeServiceInterface, *MockLeaderboardInterface) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := NewMockMemeServiceInterface(ctrl)
	mockLeaderboard := NewMockLeaderboardInterface(ctrl)
	handler := NewMemeHandler(mockService, mockLeaderboard)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/memes", handler.ListMemesHandler)
	router.GET("/memes/top", handler.TopMemesHandler)
	router.GET("/memes/tag/:tag", handler.MemesByTagHandler)
	router.GET("/memes/search", handler.SearchMemesHandler)
	router.GET("/memes/:id", handler.GetMemeHandler)
	router.POST("/memes", handler.CreateMemeHandler)
	router.PUT("/memes/:id", handler.UpdateMemeHandler)
	router.DELETE("/memes/:id", handler.DeleteMemeHandler)
	router.POST("/memes/:id/caption", handler.RegenerateCaptionHandler)

	return router, mockService, mockLeaderboard
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func sampleMeme(id string) model.Meme {
	return model.Meme{
		MemeID:       id,
		Title:        "Glitch city",
		ImageURL:     "https://example.com/glitch.png",
		Tags:         []string{"cyberpunk"},
		Caption:      "caption text",
		VibeAnalysis: "vibe text",
		CreatedAt:    time.Now().UTC(),
	}
}

func TestListMemesHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, mockService, _ := memeRouter(t)
		mockService.EXPECT().ListMemes().Return([]model.Meme{sampleMeme("meme1"), sampleMeme("meme2")}, nil)

		w, resp := doJSON(t, router, http.MethodGet, "/memes", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, resp["message"], "memes retrieved successfully")
		require.Len(t, resp["data"].([]any), 2)
	})

	t.Run("nil_slice_serialized_as_empty_array", func(t *testing.T) {
		router, mockService, _ := memeRouter(t)
		mockService.EXPECT().ListMemes().Return(nil, nil)

		w, resp := doJSON(t, router, http.MethodGet, "/memes", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, resp["data"].([]any), 0)
	})
}

func TestTopMemesHandler(t *testing.T) {
	t.Run("default_limit", func(t *testing.T) {
		router, _, mockLeaderboard := memeRouter(t)
		mockLeaderboard.EXPECT().TopMemes(10).Return([]model.Meme{sampleMeme("meme1")}, nil)

		w, resp := doJSON(t, router, http.MethodGet, "/memes/top", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, resp["message"], "top memes retrieved successfully")
		require.Len(t, resp["data"].([]any), 1)
	})

	t.Run("explicit_limit", func(t *testing.T) {
		router, _, mockLeaderboard := memeRouter(t)
		mockLeaderboard.EXPECT().TopMemes(3).Return([]model.Meme{}, nil)

		w, _ := doJSON(t, router, http.MethodGet, "/memes/top?limit=3", nil)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("non_numeric_limit_falls_back", func(t *testing.T) {
		router, _, mockLeaderboard := memeRouter(t)
		mockLeaderboard.EXPECT().TopMemes(0).Return([]model.Meme{}, nil)

		w, _ := doJSON(t, router, http.MethodGet, "/memes/top?limit=abc", nil)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("leaderboard_error", func(t *testing.T) {
		router, _, mockLeaderboard := memeRouter(t)
		mockLeaderboard.EXPECT().TopMemes(10).Return(nil, errors.New("store failure"))

		w, resp := doJSON(t, router, http.MethodGet, "/memes/top", nil)
		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.Contains(t, resp["message"], "internal server error")
	})
}

func TestGetMemeHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, mockService, _ := memeRouter(t)
		mockService.EXPECT().GetMeme("meme1").Return(sampleMeme("meme1"), nil)

		w, resp := doJSON(t, router, http.MethodGet, "/memes/meme1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		data := resp["data"].(map[string]any)
		require.Equal(t, "meme1", data["meme_id"])
	})

	t.Run("not_found", func(t *testing.T) {
		router, mockService, _ := memeRouter(t)
		mockService.EXPECT().GetMeme("memeX").Return(model.Meme{}, marketerrors.ErrMemeNotFound)

		w, resp := doJSON(t, router, http.MethodGet, "/memes/memeX", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		require.Contains(t, resp["message"], "meme not found")
	})
}

func TestMemesByTagAndSearchHandlers(t *testing.T) {
	t.Run("by_tag", func(t *testing.T) {
		router, mockService, _ := memeRouter(t)
		mockService.EXPECT().MemesByTag("cyberpunk").Return([]model.Meme{sampleMeme("meme1")}, nil)

		w, resp := doJSON(t, router, http.MethodGet, "/memes/tag/cyberpunk", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, resp["data"].([]any), 1)
	})

	t.Run("search", func(t *testing.T) {
		router, mockService, _ := memeRouter(t)
		mockService.EXPECT().SearchMemes("glitch").Return([]model.Meme{sampleMeme("meme1")}, nil)

		w, resp := doJSON(t, router, http.MethodGet, "/memes/search?query=glitch", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, resp["data"].([]any), 1)
	})

	t.Run("search_empty_query", func(t *testing.T) {
		router, mockService, _ := memeRouter(t)
		mockService.EXPECT().SearchMemes("").Return(nil, marketerrors.ErrInvalidInput)

		w, resp := doJSON(t, router, http.MethodGet, "/memes/search", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, resp["message"], "invalid request details")
	})
}

func TestCreateMemeHandler(t *testing.T) {
	t.Run("success_with_image_url", func(t *testing.T) {
		router, mockService, _ := memeRouter(t)
		mockService.EXPECT().
			CreateMeme(gomock.Any(), memes.CreateMemeInput{
				Title:    "Glitch city",
				ImageURL: "https://example.com/glitch.png",
				Tags:     []string{"cyberpunk"},
				OwnerID:  "user1",
			}).
			Return(sampleMeme("meme1"), nil)

		w, resp := doJSON(t, router, http.MethodPost, "/memes", map[string]any{
			"title":     "Glitch city",
			"image_url": "https://example.com/glitch.png",
			"tags":      []string{"cyberpunk"},
			"owner_id":  "user1",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		require.Contains(t, resp["message"], "meme created successfully")
		data := resp["data"].(map[string]any)
		require.Equal(t, "caption text", data["caption"])
		require.Equal(t, "vibe text", data["vibe_analysis"])
	})

	t.Run("legacy_image_field", func(t *testing.T) {
		router, mockService, _ := memeRouter(t)
		mockService.EXPECT().
			CreateMeme(gomock.Any(), memes.CreateMemeInput{
				Title:    "Glitch city",
				ImageURL: "https://example.com/legacy.png",
			}).
			Return(sampleMeme("meme1"), nil)

		w, _ := doJSON(t, router, http.MethodPost, "/memes", map[string]any{
			"title": "Glitch city",
			"image": "https://example.com/legacy.png",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("missing_title", func(t *testing.T) {
		router, _, _ := memeRouter(t)

		w, resp := doJSON(t, router, http.MethodPost, "/memes", map[string]any{
			"image_url": "https://example.com/glitch.png",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, resp["message"], "invalid request payload")
	})

	t.Run("missing_image", func(t *testing.T) {
		router, mockService, _ := memeRouter(t)
		mockService.EXPECT().
			CreateMeme(gomock.Any(), memes.CreateMemeInput{Title: "Glitch city"}).
			Return(model.Meme{}, marketerrors.ErrInvalidInput)

		w, resp := doJSON(t, router, http.MethodPost, "/memes", map[string]any{
			"title": "Glitch city",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, resp["message"], "invalid request details")
	})
}

func TestUpdateMemeHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, mockService, _ := memeRouter(t)
		updated := sampleMeme("meme1")
		updated.Title = "Updated title"
		mockService.EXPECT().
			UpdateMeme(gomock.Any(), "meme1", gomock.Any()).
			DoAndReturn(func(_ any, _ string, input memes.UpdateMemeInput) (model.Meme, error) {
				require.NotNil(t, input.Title)
				require.Equal(t, "Updated title", *input.Title)
				require.Nil(t, input.ImageURL)
				require.Nil(t, input.Tags)
				return updated, nil
			})

		w, resp := doJSON(t, router, http.MethodPut, "/memes/meme1", map[string]any{
			"title": "Updated title",
		})
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, resp["message"], "meme updated successfully")
	})

	t.Run("not_found", func(t *testing.T) {
		router, mockService, _ := memeRouter(t)
		mockService.EXPECT().
			UpdateMeme(gomock.Any(), "memeX", gomock.Any()).
			Return(model.Meme{}, marketerrors.ErrMemeNotFound)

		w, _ := doJSON(t, router, http.MethodPut, "/memes/memeX", map[string]any{"title": "x"})
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteMemeHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, mockService, _ := memeRouter(t)
		mockService.EXPECT().DeleteMeme("meme1").Return(nil)

		w, resp := doJSON(t, router, http.MethodDelete, "/memes/meme1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, resp["message"], "meme deleted successfully")
		data := resp["data"].(map[string]any)
		require.Equal(t, true, data["success"])
	})

	t.Run("not_found", func(t *testing.T) {
		router, mockService, _ := memeRouter(t)
		mockService.EXPECT().DeleteMeme("memeX").Return(marketerrors.ErrMemeNotFound)

		w, _ := doJSON(t, router, http.MethodDelete, "/memes/memeX", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRegenerateCaptionHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, mockService, _ := memeRouter(t)
		meme := sampleMeme("meme1")
		meme.Caption = "fresh caption"
		meme.VibeAnalysis = "fresh vibe"
		mockService.EXPECT().RegenerateCaption(gomock.Any(), "meme1").Return(meme, nil)

		w, resp := doJSON(t, router, http.MethodPost, "/memes/meme1/caption", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, resp["message"], "caption and vibe updated successfully")
		data := resp["data"].(map[string]any)
		require.Equal(t, "fresh caption", data["caption"])
		require.Equal(t, "fresh vibe", data["vibe_analysis"])
		require.Equal(t, "meme1", data["meme"].(map[string]any)["meme_id"])
	})

	t.Run("not_found", func(t *testing.T) {
		router, mockService, _ := memeRouter(t)
		mockService.EXPECT().
			RegenerateCaption(gomock.Any(), "memeX").
			Return(model.Meme{}, marketerrors.ErrMemeNotFound)

		w, _ := doJSON(t, router, http.MethodPost, "/memes/memeX/caption", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
