package voting

import (
	"fmt"
	"time"

	"meme-market/internal/marketerrors"
	"meme-market/internal/models"
	"meme-market/internal/realtime"
	"meme-market/internal/repository"
	"meme-market/utils"
)

// Broadcaster publishes events to realtime topic subscribers
type Broadcaster interface {
	Publish(topic, event string, payload any)
}

// LeaderboardInvalidator drops the cached ranking after a mutation
type LeaderboardInvalidator interface {
	Invalidate()
}

// VoteUpdatePayload is the realtime payload for a vote mutation
type VoteUpdatePayload struct {
	MemeID    string `json:"meme_id"`
	Upvotes   int    `json:"upvotes"`
	Downvotes int    `json:"downvotes"`
	VoteType  string `json:"vote_type"`
}

// VoteService defines the business logic for voting on memes
type VoteService struct {
	repo        repository.MarketDB
	broadcaster Broadcaster
	leaderboard LeaderboardInvalidator
}

// NewVoteService creates a new VoteService instance
func NewVoteService(repo repository.MarketDB, broadcaster Broadcaster, leaderboard LeaderboardInvalidator) *VoteService {
	return &VoteService{
		repo:        repo,
		broadcaster: broadcaster,
		leaderboard: leaderboard,
	}
}

// CastVote applies one user's vote on a meme with toggle semantics:
// first vote creates the ledger entry, a repeat of the same polarity
// removes it, the opposite polarity flips it. The returned counts are
// the meme's aggregates after the mutation and always equal the live
// ledger tallies.
func (s *VoteService) CastVote(memeID, userID string, isUpvote bool) (models.VoteCounts, error) {
	if memeID == "" || userID == "" {
		return models.VoteCounts{}, fmt.Errorf("service: %w - missing memeID or userID", marketerrors.ErrInvalidInput)
	}

	vote := models.Vote{
		VoteID:    utils.GenerateID(),
		MemeID:    memeID,
		UserID:    userID,
		VoteType:  isUpvote,
		CreatedAt: time.Now().UTC(),
	}

	counts, err := s.repo.ApplyVote(vote)
	if err != nil {
		return models.VoteCounts{}, fmt.Errorf("service: failed to apply vote on meme %s by user %s: %w", memeID, userID, err)
	}

	voteType := "downvote"
	if isUpvote {
		voteType = "upvote"
	}
	s.broadcaster.Publish(realtime.MemeTopic(memeID), realtime.EventVoteUpdate, VoteUpdatePayload{
		MemeID:    memeID,
		Upvotes:   counts.Upvotes,
		Downvotes: counts.Downvotes,
		VoteType:  voteType,
	})
	s.broadcaster.Publish(realtime.LeaderboardTopic, realtime.EventLeaderboardUpdate, nil)
	s.leaderboard.Invalidate()

	return counts, nil
}
