package bidding

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

// BidPlacedPayload is the realtime payload for an accepted bid
type BidPlacedPayload struct {
	Bid        models.Bid `json:"bid"`
	MemeTitle  string     `json:"meme_title"`
	CurrentBid int64      `json:"current_bid"`
}

// BidService defines the business logic for bidding on memes
type BidService struct {
	repo        repository.MarketDB
	broadcaster Broadcaster
	leaderboard LeaderboardInvalidator
}

// NewBidService creates a new BidService instance
func NewBidService(repo repository.MarketDB, broadcaster Broadcaster, leaderboard LeaderboardInvalidator) *BidService {
	return &BidService{
		repo:        repo,
		broadcaster: broadcaster,
		leaderboard: leaderboard,
	}
}

// PlaceBid validates and applies a user's credit bid on a meme. On
// success the bid record, the meme's current bid and the user's balance
// have all been updated atomically, and the meme and leaderboard topics
// have been notified. On any failure no state is mutated.
func (s *BidService) PlaceBid(memeID, userID string, amount int64) (models.Bid, error) {
	if err := s.validateBid(memeID, userID, amount); err != nil {
		return models.Bid{}, err
	}

	bid := models.Bid{
		BidID:     utils.GenerateID(),
		MemeID:    memeID,
		UserID:    userID,
		Credits:   amount,
		CreatedAt: time.Now().UTC(),
	}

	// The store re-runs every precondition under its write lock, so a
	// concurrent bid that raced past validateBid is still rejected here.
	meme, err := s.repo.ApplyBid(bid)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to apply bid on meme %s by user %s: %w", memeID, userID, err)
	}

	s.broadcaster.Publish(realtime.MemeTopic(memeID), realtime.EventBidPlaced, BidPlacedPayload{
		Bid:        bid,
		MemeTitle:  meme.Title,
		CurrentBid: meme.CurrentBid,
	})
	s.broadcaster.Publish(realtime.LeaderboardTopic, realtime.EventLeaderboardUpdate, nil)
	s.leaderboard.Invalidate()

	return bid, nil
}

// validateBid checks the bid preconditions in order, each with its own
// failure reason: amount positive, user exists, meme exists, balance
// covers the amount, amount beats the current bid.
func (s *BidService) validateBid(memeID, userID string, amount int64) error {
	if memeID == "" || userID == "" {
		return fmt.Errorf("service: %w - missing memeID or userID", marketerrors.ErrInvalidInput)
	}
	if amount <= 0 {
		return fmt.Errorf("service: %w", marketerrors.ErrInvalidAmount)
	}

	user, err := s.repo.GetUserByID(userID)
	if err != nil {
		return fmt.Errorf("service: %w", err)
	}

	meme, err := s.repo.GetMemeByID(memeID)
	if err != nil {
		return fmt.Errorf("service: %w", err)
	}

	if user.Credits < amount {
		return fmt.Errorf("service: %w - balance is %d", marketerrors.ErrInsufficientCredits, user.Credits)
	}
	if amount <= meme.CurrentBid {
		return fmt.Errorf("service: %w - current bid is %d", marketerrors.ErrBidTooLow, meme.CurrentBid)
	}
	return nil
}

// GetBidsForMeme returns the bid history of a meme, highest first
func (s *BidService) GetBidsForMeme(memeID string) ([]models.Bid, error) {
	if memeID == "" {
		return nil, fmt.Errorf("service: %w - empty meme ID", marketerrors.ErrInvalidInput)
	}

	bids, err := s.repo.GetBidsByMeme(memeID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for meme %s: %w", memeID, err)
	}
	return bids, nil
}
