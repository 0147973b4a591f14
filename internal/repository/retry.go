package repository

import (
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"

	"meme-market/internal/marketerrors"
	model "meme-market/internal/models"
)

// RetryOptions configures the backoff applied to retryable store failures
type RetryOptions struct {
	MaxElapsedTime  time.Duration
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxRetries      uint64
}

// DefaultRetryOptions returns the retry policy used for record store calls
func DefaultRetryOptions() RetryOptions {
	return RetryOptions{
		MaxElapsedTime:  10 * time.Second,
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     2 * time.Second,
		MaxRetries:      4,
	}
}

// RetryingDB decorates a MarketDB with bounded exponential backoff on
// ErrUnavailable. Domain failures (not found, bid too low, ...) pass
// through untouched; only transient store outages are retried.
type RetryingDB struct {
	next MarketDB
	opts RetryOptions
}

// NewRetryingDB wraps the given store with the retry policy
func NewRetryingDB(next MarketDB, opts RetryOptions) *RetryingDB {
	return &RetryingDB{next: next, opts: opts}
}

// IsRetryableError reports whether the error is a transient store failure
func IsRetryableError(err error) bool {
	return errors.Is(err, marketerrors.ErrUnavailable)
}

func retry[T any](opts RetryOptions, operation func() (T, error)) (T, error) {
	var result T

	b := backoff.WithMaxRetries(backoff.NewExponentialBackOff(
		backoff.WithMaxElapsedTime(opts.MaxElapsedTime),
		backoff.WithInitialInterval(opts.InitialInterval),
		backoff.WithMaxInterval(opts.MaxInterval),
	), opts.MaxRetries)

	err := backoff.Retry(func() error {
		var opErr error
		result, opErr = operation()
		if opErr == nil {
			return nil
		}
		if !IsRetryableError(opErr) {
			return backoff.Permanent(opErr)
		}
		return opErr
	}, b)

	return result, err
}

func (r *RetryingDB) ListUsers() ([]model.User, error) {
	return retry(r.opts, r.next.ListUsers)
}

func (r *RetryingDB) GetUserByID(userID string) (model.User, error) {
	return retry(r.opts, func() (model.User, error) { return r.next.GetUserByID(userID) })
}

func (r *RetryingDB) SetUserCredits(userID string, credits int64) (model.User, error) {
	return retry(r.opts, func() (model.User, error) { return r.next.SetUserCredits(userID, credits) })
}

func (r *RetryingDB) ListMemes() ([]model.Meme, error) {
	return retry(r.opts, r.next.ListMemes)
}

func (r *RetryingDB) GetMemeByID(memeID string) (model.Meme, error) {
	return retry(r.opts, func() (model.Meme, error) { return r.next.GetMemeByID(memeID) })
}

func (r *RetryingDB) GetMemesByTag(tag string) ([]model.Meme, error) {
	return retry(r.opts, func() ([]model.Meme, error) { return r.next.GetMemesByTag(tag) })
}

func (r *RetryingDB) SearchMemes(query string) ([]model.Meme, error) {
	return retry(r.opts, func() ([]model.Meme, error) { return r.next.SearchMemes(query) })
}

func (r *RetryingDB) CreateMeme(meme model.Meme) error {
	_, err := retry(r.opts, func() (struct{}, error) { return struct{}{}, r.next.CreateMeme(meme) })
	return err
}

func (r *RetryingDB) UpdateMeme(memeID string, update model.MemeUpdate) (model.Meme, error) {
	return retry(r.opts, func() (model.Meme, error) { return r.next.UpdateMeme(memeID, update) })
}

func (r *RetryingDB) DeleteMeme(memeID string) error {
	_, err := retry(r.opts, func() (struct{}, error) { return struct{}{}, r.next.DeleteMeme(memeID) })
	return err
}

func (r *RetryingDB) GetBidsByMeme(memeID string) ([]model.Bid, error) {
	return retry(r.opts, func() ([]model.Bid, error) { return r.next.GetBidsByMeme(memeID) })
}

// ApplyBid is not retried blindly on ambiguous failures: the inner store
// either applies the whole bid transaction or none of it, so a retry can
// never double-debit credits.
func (r *RetryingDB) ApplyBid(bid model.Bid) (model.Meme, error) {
	return retry(r.opts, func() (model.Meme, error) { return r.next.ApplyBid(bid) })
}

func (r *RetryingDB) ApplyVote(vote model.Vote) (model.VoteCounts, error) {
	return retry(r.opts, func() (model.VoteCounts, error) { return r.next.ApplyVote(vote) })
}
