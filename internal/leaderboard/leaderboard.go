package leaderboard

import (
	"fmt"
	"sort"
	"time"

	gocache "github.com/patrickmn/go-cache"

	model "meme-market/internal/models"
)

// DefaultLimit is used when a caller asks for a non-positive limit
const DefaultLimit = 10

const rankingKey = "top_memes"

// MemeLister is the slice of the record store the leaderboard reads
type MemeLister interface {
	ListMemes() ([]model.Meme, error)
}

// Service computes and caches the ranked meme projection. The maximal
// ranking is cached once and truncated per request, so differing limits
// share one cache entry. Bid and vote mutations invalidate it so
// subscribers see fresh rankings without waiting for the TTL.
type Service struct {
	repo  MemeLister
	cache *gocache.Cache
}

// NewService creates a leaderboard service with the given cache TTL
func NewService(repo MemeLister, ttl time.Duration) *Service {
	return &Service{
		repo:  repo,
		cache: gocache.New(ttl, 2*ttl),
	}
}

// TopMemes returns up to limit memes ranked by (upvotes - downvotes)
// descending, current bid descending, then id ascending.
func (s *Service) TopMemes(limit int) ([]model.Meme, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	ranked, err := s.ranking()
	if err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}

	if limit > len(ranked) {
		limit = len(ranked)
	}
	return append([]model.Meme(nil), ranked[:limit]...), nil
}

// Invalidate drops the cached ranking so the next read recomputes it
func (s *Service) Invalidate() {
	s.cache.Delete(rankingKey)
}

func (s *Service) ranking() ([]model.Meme, error) {
	if cached, ok := s.cache.Get(rankingKey); ok {
		return cached.([]model.Meme), nil
	}

	memes, err := s.repo.ListMemes()
	if err != nil {
		return nil, err
	}

	sort.Slice(memes, func(i, j int) bool {
		if memes[i].Score() != memes[j].Score() {
			return memes[i].Score() > memes[j].Score()
		}
		if memes[i].CurrentBid != memes[j].CurrentBid {
			return memes[i].CurrentBid > memes[j].CurrentBid
		}
		return memes[i].MemeID < memes[j].MemeID
	})

	s.cache.Set(rankingKey, memes, gocache.DefaultExpiration)
	return memes, nil
}
