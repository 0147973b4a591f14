package main

import (
	"context"
	"fmt"
	"os"

	"meme-market/internal/ai"
	bidding "meme-market/internal/bidService"
	"meme-market/internal/config"
	"meme-market/internal/leaderboard"
	memes "meme-market/internal/memeService"
	model "meme-market/internal/models"
	"meme-market/internal/realtime"
	"meme-market/internal/repository"
	"meme-market/internal/server"
	users "meme-market/internal/userService"
	voting "meme-market/internal/voteService"
	"meme-market/utils"
)

func main() {
	cfg := config.Load()

	memRepo := repository.NewMemoryRepo()
	if cfg.SeedDemoData {
		prepopulate(memRepo)
	}

	var repo repository.MarketDB = repository.NewRetryingDB(memRepo, repository.DefaultRetryOptions())

	hub := realtime.NewHub()
	go hub.Run()

	captioner := ai.NewCaptioner(newGenerator(cfg), cfg.AICacheTTL, cfg.AITimeout)
	board := leaderboard.NewService(repo, cfg.LeaderboardTTL)

	router := server.SetupRouter(server.Services{
		Memes:       memes.NewMemeService(repo, captioner),
		Leaderboard: board,
		Bids:        bidding.NewBidService(repo, hub, board),
		Votes:       voting.NewVoteService(repo, hub, board),
		Users:       users.NewUserService(repo),
		Hub:         hub,
	})

	utils.Info("starting meme market server", map[string]any{"addr": cfg.Addr})
	if err := router.Run(cfg.Addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// newGenerator builds the Gemini generator when an API key is set.
// Without one the captioner serves fallback responses only.
func newGenerator(cfg config.Config) ai.Generator {
	if cfg.GeminiAPIKey == "" {
		utils.Warn("no Gemini API key found, using fallback responses", nil)
		return nil
	}
	gen, err := ai.NewGeminiGenerator(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		utils.Error("failed to initialize Gemini client, using fallback responses", map[string]any{"error": err.Error()})
		return nil
	}
	return gen
}

// prepopulate seeds demo users and memes so the mock login and the
// marketplace have something to show on first start.
func prepopulate(repo *repository.MemoryRepo) {
	demoUsers := []model.User{
		{UserID: "user1", Username: "neon_rider", Credits: 1000},
		{UserID: "user2", Username: "glitch_queen", Credits: 1000},
		{UserID: "user3", Username: "hodl_goblin", Credits: 1000},
	}
	for _, u := range demoUsers {
		repo.AddUser(u)
	}

	demoMemes := []model.Meme{
		{
			MemeID:       "meme1",
			Title:        "When the matrix glitches",
			ImageURL:     "https://example.com/memes/matrix.png",
			Tags:         []string{"cyberpunk", "glitch"},
			OwnerID:      "user1",
			Caption:      "Error 404: Reality not found",
			VibeAnalysis: "Glitch Matrix Syndrome",
		},
		{
			MemeID:       "meme2",
			Title:        "HODL until the heat death",
			ImageURL:     "https://example.com/memes/hodl.png",
			Tags:         []string{"crypto", "hodl"},
			OwnerID:      "user2",
			Caption:      "YOLO to the moon!",
			VibeAnalysis: "Blockchain Fever Dream",
		},
	}
	for _, m := range demoMemes {
		if err := repo.CreateMeme(m); err != nil {
			utils.Warn("failed to seed demo meme", map[string]any{"meme_id": m.MemeID, "error": err.Error()})
		}
	}
}
