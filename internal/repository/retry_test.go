package repository

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"meme-market/internal/marketerrors"
	model "meme-market/internal/models"
)

// flakyDB fails the first failures calls to each method with the given
// error, then delegates to the wrapped MemoryRepo.
type flakyDB struct {
	*MemoryRepo
	failures int32
	err      error
	calls    int32
}

func (f *flakyDB) shouldFail() bool {
	n := atomic.AddInt32(&f.calls, 1)
	return n <= atomic.LoadInt32(&f.failures)
}

func (f *flakyDB) GetMemeByID(memeID string) (model.Meme, error) {
	if f.shouldFail() {
		return model.Meme{}, f.err
	}
	return f.MemoryRepo.GetMemeByID(memeID)
}

func (f *flakyDB) ApplyBid(bid model.Bid) (model.Meme, error) {
	if f.shouldFail() {
		return model.Meme{}, f.err
	}
	return f.MemoryRepo.ApplyBid(bid)
}

func testRetryOptions() RetryOptions {
	return RetryOptions{
		MaxElapsedTime:  time.Second,
		InitialInterval: time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
		MaxRetries:      4,
	}
}

func TestRetryingDB_RetriesTransientFailures(t *testing.T) {
	t.Parallel()

	inner := seededRepo(t)
	flaky := &flakyDB{
		MemoryRepo: inner,
		failures:   2,
		err:        fmt.Errorf("store offline: %w", marketerrors.ErrUnavailable),
	}
	db := NewRetryingDB(flaky, testRetryOptions())

	meme, err := db.GetMemeByID("meme1")
	require.NoError(t, err)
	require.Equal(t, "meme1", meme.MemeID)
	require.Equal(t, int32(3), atomic.LoadInt32(&flaky.calls))
}

func TestRetryingDB_GivesUpAfterMaxRetries(t *testing.T) {
	t.Parallel()

	inner := seededRepo(t)
	flaky := &flakyDB{
		MemoryRepo: inner,
		failures:   100,
		err:        fmt.Errorf("store offline: %w", marketerrors.ErrUnavailable),
	}
	db := NewRetryingDB(flaky, testRetryOptions())

	_, err := db.GetMemeByID("meme1")
	require.ErrorIs(t, err, marketerrors.ErrUnavailable)
	// initial attempt plus MaxRetries
	require.Equal(t, int32(5), atomic.LoadInt32(&flaky.calls))
}

func TestRetryingDB_DomainErrorsAreNotRetried(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		call    func(db *RetryingDB) error
		wantErr error
	}{
		{
			name: "bid_too_low",
			call: func(db *RetryingDB) error {
				_, err := db.ApplyBid(newBid("b1", "meme1", "userA", 50))
				if err != nil {
					return err
				}
				_, err = db.ApplyBid(newBid("b2", "meme1", "userB", 50))
				return err
			},
			wantErr: marketerrors.ErrBidTooLow,
		},
		{
			name: "meme_not_found",
			call: func(db *RetryingDB) error {
				_, err := db.GetMemeByID("memeX")
				return err
			},
			wantErr: marketerrors.ErrMemeNotFound,
		},
		{
			name: "insufficient_credits",
			call: func(db *RetryingDB) error {
				_, err := db.ApplyBid(newBid("b1", "meme1", "userA", 5000))
				return err
			},
			wantErr: marketerrors.ErrInsufficientCredits,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			db := NewRetryingDB(seededRepo(t), testRetryOptions())
			require.ErrorIs(t, tc.call(db), tc.wantErr)
		})
	}
}

func TestIsRetryableError(t *testing.T) {
	t.Parallel()

	require.True(t, IsRetryableError(marketerrors.ErrUnavailable))
	require.True(t, IsRetryableError(fmt.Errorf("wrapped: %w", marketerrors.ErrUnavailable)))
	require.False(t, IsRetryableError(marketerrors.ErrBidTooLow))
	require.False(t, IsRetryableError(nil))
}
