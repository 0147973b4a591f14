package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	bidding "meme-market/internal/bidService"
	"meme-market/internal/leaderboard"
	memes "meme-market/internal/memeService"
	model "meme-market/internal/models"
	"meme-market/internal/realtime"
	"meme-market/internal/repository"
	"meme-market/internal/server"
	users "meme-market/internal/userService"
	voting "meme-market/internal/voteService"
)

// staticCaptioner replaces the AI generator in integration tests
type staticCaptioner struct{}

func (staticCaptioner) Caption(_ context.Context, title string, _ []string) string {
	return "caption for " + title
}

func (staticCaptioner) Vibe(_ context.Context, title string, _ []string) string {
	return "vibe for " + title
}

func (staticCaptioner) Regenerate(_ context.Context, title string, _ []string) (string, string) {
	return "regenerated caption for " + title, "regenerated vibe for " + title
}

// SetupTestRouter initializes the router with an in-memory repository,
// seeded with the given users and memes.
func SetupTestRouter(seedUsers []model.User, seedMemes []model.Meme) *gin.Engine {
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	for _, u := range seedUsers {
		repo.AddUser(u)
	}
	for _, m := range seedMemes {
		if err := repo.CreateMeme(m); err != nil {
			panic(err)
		}
	}

	hub := realtime.NewHub()
	go hub.Run()

	board := leaderboard.NewService(repo, time.Minute)

	return server.SetupRouter(server.Services{
		Memes:       memes.NewMemeService(repo, staticCaptioner{}),
		Leaderboard: board,
		Bids:        bidding.NewBidService(repo, hub, board),
		Votes:       voting.NewVoteService(repo, hub, board),
		Users:       users.NewUserService(repo),
		Hub:         hub,
	})
}

func seedUser(id string, credits int64) model.User {
	return model.User{UserID: id, Username: id, Credits: credits, CreatedAt: time.Now().UTC()}
}

func seedMeme(id, title string, tags ...string) model.Meme {
	return model.Meme{
		MemeID:   id,
		Title:    title,
		ImageURL: "https://example.com/" + id + ".png",
		Tags:     tags,
	}
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// data extracts the envelope's data object from a parsed response
func data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	d, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", resp)
	}
	return d
}

// dataList extracts the envelope's data array from a parsed response
func dataList(t *testing.T, resp map[string]any) []any {
	t.Helper()
	d, ok := resp["data"].([]any)
	if !ok {
		t.Fatalf("response has no data array: %v", resp)
	}
	return d
}
