package repository

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"meme-market/internal/marketerrors"
	model "meme-market/internal/models"
)

// MarketDB defines the record store interface for the meme marketplace.
// Compound operations (ApplyBid, ApplyVote) are atomic: concurrent calls
// touching the same meme are serialized by the implementation.
type MarketDB interface {
	ListUsers() ([]model.User, error)
	GetUserByID(userID string) (model.User, error)
	SetUserCredits(userID string, credits int64) (model.User, error)

	ListMemes() ([]model.Meme, error)
	GetMemeByID(memeID string) (model.Meme, error)
	GetMemesByTag(tag string) ([]model.Meme, error)
	SearchMemes(query string) ([]model.Meme, error)
	CreateMeme(meme model.Meme) error
	UpdateMeme(memeID string, update model.MemeUpdate) (model.Meme, error)
	DeleteMeme(memeID string) error

	GetBidsByMeme(memeID string) ([]model.Bid, error)
	ApplyBid(bid model.Bid) (model.Meme, error)
	ApplyVote(vote model.Vote) (model.VoteCounts, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of MarketDB
type MemoryRepo struct {
	mu    sync.RWMutex
	users map[string]model.User            // key: userID
	memes map[string]model.Meme            // key: memeID
	bids  map[string][]model.Bid           // key: memeID -> bids, insertion order
	votes map[string]map[string]model.Vote // key: memeID -> userID -> vote
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users: make(map[string]model.User),
		memes: make(map[string]model.Meme),
		bids:  make(map[string][]model.Bid),
		votes: make(map[string]map[string]model.Vote),
	}
}

// ListUsers returns all users ordered by username
func (r *MemoryRepo) ListUsers() ([]model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

// GetUserByID returns a single user by id
func (r *MemoryRepo) GetUserByID(userID string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, marketerrors.ErrUserNotFound)
	}
	return user, nil
}

// SetUserCredits sets a user's credit balance to an absolute amount
func (r *MemoryRepo) SetUserCredits(userID string, credits int64) (model.User, error) {
	if credits < 0 {
		return model.User{}, fmt.Errorf("set credits for user %s: negative balance: %w", userID, marketerrors.ErrInvalidInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("set credits for user %s: %w", userID, marketerrors.ErrUserNotFound)
	}
	user.Credits = credits
	r.users[userID] = user
	return user, nil
}

// AddUser adds a user to the repository. Used for seeding and tests.
func (r *MemoryRepo) AddUser(user model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	r.users[user.UserID] = user
}

// ListMemes returns all memes, newest first
func (r *MemoryRepo) ListMemes() ([]model.Meme, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	memes := make([]model.Meme, 0, len(r.memes))
	for _, m := range r.memes {
		memes = append(memes, copyMeme(m))
	}
	sort.Slice(memes, func(i, j int) bool {
		if memes[i].CreatedAt.Equal(memes[j].CreatedAt) {
			return memes[i].MemeID < memes[j].MemeID
		}
		return memes[i].CreatedAt.After(memes[j].CreatedAt)
	})
	return memes, nil
}

// GetMemeByID returns a single meme by id
func (r *MemoryRepo) GetMemeByID(memeID string) (model.Meme, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meme, ok := r.memes[memeID]
	if !ok {
		return model.Meme{}, fmt.Errorf("get meme %s: %w", memeID, marketerrors.ErrMemeNotFound)
	}
	return copyMeme(meme), nil
}

// GetMemesByTag returns all memes carrying the given tag
func (r *MemoryRepo) GetMemesByTag(tag string) ([]model.Meme, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var memes []model.Meme
	for _, m := range r.memes {
		for _, t := range m.Tags {
			if strings.EqualFold(t, tag) {
				memes = append(memes, copyMeme(m))
				break
			}
		}
	}
	sort.Slice(memes, func(i, j int) bool { return memes[i].MemeID < memes[j].MemeID })
	return memes, nil
}

// SearchMemes returns memes whose title or tags contain the query, case-insensitive
func (r *MemoryRepo) SearchMemes(query string) ([]model.Meme, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(query)
	var memes []model.Meme
	for _, m := range r.memes {
		if strings.Contains(strings.ToLower(m.Title), q) {
			memes = append(memes, copyMeme(m))
			continue
		}
		for _, t := range m.Tags {
			if strings.Contains(strings.ToLower(t), q) {
				memes = append(memes, copyMeme(m))
				break
			}
		}
	}
	sort.Slice(memes, func(i, j int) bool { return memes[i].MemeID < memes[j].MemeID })
	return memes, nil
}

// CreateMeme stores a new meme record
func (r *MemoryRepo) CreateMeme(meme model.Meme) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.memes[meme.MemeID]; exists {
		return fmt.Errorf("create meme %s: already exists: %w", meme.MemeID, marketerrors.ErrConflictingState)
	}
	if meme.OwnerID != "" {
		if _, ok := r.users[meme.OwnerID]; !ok {
			return fmt.Errorf("create meme %s: owner %s: %w", meme.MemeID, meme.OwnerID, marketerrors.ErrUserNotFound)
		}
	}
	if meme.CreatedAt.IsZero() {
		meme.CreatedAt = time.Now().UTC()
		meme.UpdatedAt = meme.CreatedAt
	}
	r.memes[meme.MemeID] = copyMeme(meme)
	return nil
}

// UpdateMeme applies a partial update to a meme and returns the result
func (r *MemoryRepo) UpdateMeme(memeID string, update model.MemeUpdate) (model.Meme, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	meme, ok := r.memes[memeID]
	if !ok {
		return model.Meme{}, fmt.Errorf("update meme %s: %w", memeID, marketerrors.ErrMemeNotFound)
	}

	if update.Title != nil {
		meme.Title = *update.Title
	}
	if update.ImageURL != nil {
		meme.ImageURL = *update.ImageURL
	}
	if update.Tags != nil {
		meme.Tags = append([]string(nil), (*update.Tags)...)
	}
	if update.Caption != nil {
		meme.Caption = *update.Caption
	}
	if update.VibeAnalysis != nil {
		meme.VibeAnalysis = *update.VibeAnalysis
	}
	meme.UpdatedAt = time.Now().UTC()

	r.memes[memeID] = meme
	return copyMeme(meme), nil
}

// DeleteMeme removes a meme and its bid and vote records
func (r *MemoryRepo) DeleteMeme(memeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.memes[memeID]; !ok {
		return fmt.Errorf("delete meme %s: %w", memeID, marketerrors.ErrMemeNotFound)
	}
	delete(r.memes, memeID)
	delete(r.bids, memeID)
	delete(r.votes, memeID)
	return nil
}

// GetBidsByMeme returns all bids for a meme, highest amount first
func (r *MemoryRepo) GetBidsByMeme(memeID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.memes[memeID]; !ok {
		return nil, fmt.Errorf("get bids for meme %s: %w", memeID, marketerrors.ErrMemeNotFound)
	}

	bids := append([]model.Bid(nil), r.bids[memeID]...)
	sort.Slice(bids, func(i, j int) bool {
		if bids[i].Credits == bids[j].Credits {
			return bids[i].CreatedAt.Before(bids[j].CreatedAt)
		}
		return bids[i].Credits > bids[j].Credits
	})
	return bids, nil
}

// ApplyBid atomically records a bid, raises the meme's current bid and
// debits the bidder. All preconditions are re-checked under the write
// lock, so two concurrent bids can never both pass against the same
// stale current bid. On any failure no state is mutated.
func (r *MemoryRepo) ApplyBid(bid model.Bid) (model.Meme, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if bid.Credits <= 0 {
		return model.Meme{}, fmt.Errorf("apply bid on meme %s: %w", bid.MemeID, marketerrors.ErrInvalidAmount)
	}

	user, ok := r.users[bid.UserID]
	if !ok {
		return model.Meme{}, fmt.Errorf("apply bid on meme %s: user %s: %w", bid.MemeID, bid.UserID, marketerrors.ErrUserNotFound)
	}

	meme, ok := r.memes[bid.MemeID]
	if !ok {
		return model.Meme{}, fmt.Errorf("apply bid on meme %s: %w", bid.MemeID, marketerrors.ErrMemeNotFound)
	}

	if user.Credits < bid.Credits {
		return model.Meme{}, fmt.Errorf("apply bid on meme %s: balance %d below bid %d: %w",
			bid.MemeID, user.Credits, bid.Credits, marketerrors.ErrInsufficientCredits)
	}

	if bid.Credits <= meme.CurrentBid {
		return model.Meme{}, fmt.Errorf("apply bid on meme %s: current bid is %d: %w",
			bid.MemeID, meme.CurrentBid, marketerrors.ErrBidTooLow)
	}

	r.bids[bid.MemeID] = append(r.bids[bid.MemeID], bid)

	meme.CurrentBid = bid.Credits
	meme.UpdatedAt = time.Now().UTC()
	r.memes[bid.MemeID] = meme

	user.Credits -= bid.Credits
	r.users[bid.UserID] = user

	return copyMeme(meme), nil
}

// ApplyVote atomically applies the vote ledger transition for one
// (meme, user) pair: create on first vote, delete on same-polarity
// resubmission, flip on opposite polarity. The meme's counters are
// recomputed from the live ledger so they can never drift.
// The vote's ID is used only when the create branch runs.
func (r *MemoryRepo) ApplyVote(vote model.Vote) (model.VoteCounts, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	meme, ok := r.memes[vote.MemeID]
	if !ok {
		return model.VoteCounts{}, fmt.Errorf("apply vote on meme %s: %w", vote.MemeID, marketerrors.ErrMemeNotFound)
	}
	if _, ok := r.users[vote.UserID]; !ok {
		return model.VoteCounts{}, fmt.Errorf("apply vote on meme %s: user %s: %w", vote.MemeID, vote.UserID, marketerrors.ErrUserNotFound)
	}

	ledger := r.votes[vote.MemeID]
	if ledger == nil {
		ledger = make(map[string]model.Vote)
		r.votes[vote.MemeID] = ledger
	}

	existing, voted := ledger[vote.UserID]
	switch {
	case !voted:
		ledger[vote.UserID] = vote
	case existing.VoteType == vote.VoteType:
		delete(ledger, vote.UserID) // toggle-off
	default:
		existing.VoteType = vote.VoteType
		ledger[vote.UserID] = existing
	}

	counts := countVotes(ledger)
	meme.Upvotes = counts.Upvotes
	meme.Downvotes = counts.Downvotes
	meme.UpdatedAt = time.Now().UTC()
	r.memes[vote.MemeID] = meme

	return counts, nil
}

// VoteCountsForMeme recomputes the live tallies for a meme's ledger
func (r *MemoryRepo) VoteCountsForMeme(memeID string) (model.VoteCounts, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.memes[memeID]; !ok {
		return model.VoteCounts{}, fmt.Errorf("count votes for meme %s: %w", memeID, marketerrors.ErrMemeNotFound)
	}
	return countVotes(r.votes[memeID]), nil
}

func countVotes(ledger map[string]model.Vote) model.VoteCounts {
	var counts model.VoteCounts
	for _, v := range ledger {
		if v.VoteType {
			counts.Upvotes++
		} else {
			counts.Downvotes++
		}
	}
	return counts
}

// copyMeme returns a meme with its own tag slice so callers never alias
// repository-owned memory.
func copyMeme(m model.Meme) model.Meme {
	m.Tags = append([]string(nil), m.Tags...)
	return m
}
