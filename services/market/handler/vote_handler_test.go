package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"meme-market/internal/marketerrors"
	model "meme-market/internal/models"
)

// Test CastVoteHandler
func TestCastVoteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockVoteServiceInterface(ctrl)
	handler := NewVoteHandler(mockService)

	// Initialize Gin in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/votes/:memeId", handler.CastVoteHandler)

	tests := []struct {
		name           string
		memeID         string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:        "success_upvote",
			memeID:      "meme1",
			requestBody: map[string]any{"userId": "user1", "voteType": true},
			mockSetup: func() {
				mockService.EXPECT().
					CastVote("meme1", "user1", true).
					Return(model.VoteCounts{Upvotes: 3, Downvotes: 1}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "vote applied successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "meme1", data["meme_id"])
				require.Equal(t, float64(3), data["upvotes"])
				require.Equal(t, float64(1), data["downvotes"])
			},
		},
		{
			// explicit false must pass binding, downvotes matter too
			name:        "success_downvote",
			memeID:      "meme1",
			requestBody: map[string]any{"userId": "user1", "voteType": false},
			mockSetup: func() {
				mockService.EXPECT().
					CastVote("meme1", "user1", false).
					Return(model.VoteCounts{Upvotes: 2, Downvotes: 2}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "vote applied successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, float64(2), data["upvotes"])
				require.Equal(t, float64(2), data["downvotes"])
			},
		},
		{
			name:           "invalid_json",
			memeID:         "meme1",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "missing_user_id",
			memeID:         "meme1",
			requestBody:    map[string]any{"voteType": true},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "missing_vote_type",
			memeID:         "meme1",
			requestBody:    map[string]any{"userId": "user1"},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "unknown_meme",
			memeID:      "memeX",
			requestBody: map[string]any{"userId": "user1", "voteType": true},
			mockSetup: func() {
				mockService.EXPECT().
					CastVote("memeX", "user1", true).
					Return(model.VoteCounts{}, marketerrors.ErrMemeNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "meme not found",
		},
		{
			name:        "unknown_user",
			memeID:      "meme1",
			requestBody: map[string]any{"userId": "ghost", "voteType": true},
			mockSetup: func() {
				mockService.EXPECT().
					CastVote("meme1", "ghost", true).
					Return(model.VoteCounts{}, marketerrors.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "user not found",
		},
		{
			name:        "service_generic_error",
			memeID:      "meme1",
			requestBody: map[string]any{"userId": "user1", "voteType": true},
			mockSetup: func() {
				mockService.EXPECT().
					CastVote("meme1", "user1", true).
					Return(model.VoteCounts{}, errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var reqBody []byte
			var err error
			switch v := tc.requestBody.(type) {
			case string:
				reqBody = []byte(v)
			default:
				reqBody, err = json.Marshal(v)
				require.NoError(t, err)
			}

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/votes/"+tc.memeID, bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err = json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusOK {
				data := resp["data"].(map[string]any)
				tc.validateData(t, data)
			}
		})
	}
}
