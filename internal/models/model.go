package models

import "time"

// User represents a marketplace participant with a credit balance
type User struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Credits   int64     `json:"credits"`
	CreatedAt time.Time `json:"created_at"`
}

// Meme represents a tradable meme with its vote and bid aggregates
type Meme struct {
	MemeID       string    `json:"meme_id"`
	Title        string    `json:"title"`
	ImageURL     string    `json:"image_url"`
	Tags         []string  `json:"tags"`
	Upvotes      int       `json:"upvotes"`
	Downvotes    int       `json:"downvotes"`
	CurrentBid   int64     `json:"current_bid"`
	OwnerID      string    `json:"owner_id"`
	Caption      string    `json:"caption"`
	VibeAnalysis string    `json:"vibe_analysis"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Score is the ranking score used by the leaderboard
func (m Meme) Score() int {
	return m.Upvotes - m.Downvotes
}

// Bid represents a user's credit bid on a meme. Immutable once accepted.
type Bid struct {
	BidID     string    `json:"bid_id"`
	MemeID    string    `json:"meme_id"`
	UserID    string    `json:"user_id"`
	Credits   int64     `json:"credits"`
	CreatedAt time.Time `json:"created_at"`
}

// Vote is a single user's vote on a meme. At most one exists per
// (meme, user) pair; VoteType is true for an upvote.
type Vote struct {
	VoteID    string    `json:"vote_id"`
	MemeID    string    `json:"meme_id"`
	UserID    string    `json:"user_id"`
	VoteType  bool      `json:"vote_type"`
	CreatedAt time.Time `json:"created_at"`
}

// VoteCounts holds a meme's aggregate vote counters
type VoteCounts struct {
	Upvotes   int `json:"upvotes"`
	Downvotes int `json:"downvotes"`
}

// MemeUpdate carries the mutable meme fields for partial updates.
// Nil fields are left untouched.
type MemeUpdate struct {
	Title        *string
	ImageURL     *string
	Tags         *[]string
	Caption      *string
	VibeAnalysis *string
}
