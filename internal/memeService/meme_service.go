package memes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"meme-market/internal/marketerrors"
	"meme-market/internal/models"
	"meme-market/internal/repository"
	"meme-market/utils"
)

// CaptionSource produces caption and vibe text for a meme. It never
// fails: an unavailable upstream degrades to fallback text.
type CaptionSource interface {
	Caption(ctx context.Context, title string, tags []string) string
	Vibe(ctx context.Context, title string, tags []string) string
	Regenerate(ctx context.Context, title string, tags []string) (string, string)
}

// CreateMemeInput carries the fields for a new meme
type CreateMemeInput struct {
	Title    string
	ImageURL string
	Tags     []string
	OwnerID  string
}

// UpdateMemeInput carries the updatable meme fields; nil means unchanged
type UpdateMemeInput struct {
	Title    *string
	ImageURL *string
	Tags     *[]string
}

// MemeService defines the business logic for the meme catalog
type MemeService struct {
	repo      repository.MarketDB
	captioner CaptionSource
}

// NewMemeService creates a new MemeService instance
func NewMemeService(repo repository.MarketDB, captioner CaptionSource) *MemeService {
	return &MemeService{
		repo:      repo,
		captioner: captioner,
	}
}

// ListMemes returns all memes, newest first
func (s *MemeService) ListMemes() ([]models.Meme, error) {
	memes, err := s.repo.ListMemes()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list memes: %w", err)
	}
	return memes, nil
}

// GetMeme returns a single meme by id
func (s *MemeService) GetMeme(memeID string) (models.Meme, error) {
	if memeID == "" {
		return models.Meme{}, fmt.Errorf("service: %w - empty meme ID", marketerrors.ErrInvalidInput)
	}
	meme, err := s.repo.GetMemeByID(memeID)
	if err != nil {
		return models.Meme{}, fmt.Errorf("service: failed to get meme %s: %w", memeID, err)
	}
	return meme, nil
}

// MemesByTag returns all memes carrying the given tag
func (s *MemeService) MemesByTag(tag string) ([]models.Meme, error) {
	if tag == "" {
		return nil, fmt.Errorf("service: %w - empty tag", marketerrors.ErrInvalidInput)
	}
	memes, err := s.repo.GetMemesByTag(tag)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get memes by tag %s: %w", tag, err)
	}
	return memes, nil
}

// SearchMemes returns memes whose title or tags match the query
func (s *MemeService) SearchMemes(query string) ([]models.Meme, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("service: %w - empty search query", marketerrors.ErrInvalidInput)
	}
	memes, err := s.repo.SearchMemes(query)
	if err != nil {
		return nil, fmt.Errorf("service: failed to search memes: %w", err)
	}
	return memes, nil
}

// CreateMeme validates the input, generates caption and vibe text and
// stores the meme. Caption generation cannot fail the creation: upstream
// failures fall back to canned text inside the caption source.
func (s *MemeService) CreateMeme(ctx context.Context, input CreateMemeInput) (models.Meme, error) {
	if input.Title == "" {
		return models.Meme{}, fmt.Errorf("service: %w - title is required", marketerrors.ErrInvalidInput)
	}
	if input.ImageURL == "" {
		return models.Meme{}, fmt.Errorf("service: %w - image or image URL is required", marketerrors.ErrInvalidInput)
	}
	tags := normalizeTags(input.Tags)

	now := time.Now().UTC()
	meme := models.Meme{
		MemeID:       utils.GenerateID(),
		Title:        input.Title,
		ImageURL:     input.ImageURL,
		Tags:         tags,
		OwnerID:      input.OwnerID,
		Caption:      s.captioner.Caption(ctx, input.Title, tags),
		VibeAnalysis: s.captioner.Vibe(ctx, input.Title, tags),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.CreateMeme(meme); err != nil {
		return models.Meme{}, fmt.Errorf("service: failed to create meme: %w", err)
	}
	return meme, nil
}

// UpdateMeme applies a partial update. When the title or tags change the
// caption and vibe are regenerated for the new content.
func (s *MemeService) UpdateMeme(ctx context.Context, memeID string, input UpdateMemeInput) (models.Meme, error) {
	if memeID == "" {
		return models.Meme{}, fmt.Errorf("service: %w - empty meme ID", marketerrors.ErrInvalidInput)
	}
	if input.Title == nil && input.ImageURL == nil && input.Tags == nil {
		return models.Meme{}, fmt.Errorf("service: %w - at least one field to update is required", marketerrors.ErrInvalidInput)
	}

	update := models.MemeUpdate{
		Title:    input.Title,
		ImageURL: input.ImageURL,
	}
	if input.Tags != nil {
		tags := normalizeTags(*input.Tags)
		update.Tags = &tags
	}

	if input.Title != nil || input.Tags != nil {
		current, err := s.repo.GetMemeByID(memeID)
		if err != nil {
			return models.Meme{}, fmt.Errorf("service: failed to update meme %s: %w", memeID, err)
		}
		title := current.Title
		if input.Title != nil {
			title = *input.Title
		}
		tags := current.Tags
		if update.Tags != nil {
			tags = *update.Tags
		}
		caption := s.captioner.Caption(ctx, title, tags)
		vibe := s.captioner.Vibe(ctx, title, tags)
		update.Caption = &caption
		update.VibeAnalysis = &vibe
	}

	meme, err := s.repo.UpdateMeme(memeID, update)
	if err != nil {
		return models.Meme{}, fmt.Errorf("service: failed to update meme %s: %w", memeID, err)
	}
	return meme, nil
}

// DeleteMeme removes a meme and its bid and vote records
func (s *MemeService) DeleteMeme(memeID string) error {
	if memeID == "" {
		return fmt.Errorf("service: %w - empty meme ID", marketerrors.ErrInvalidInput)
	}
	if err := s.repo.DeleteMeme(memeID); err != nil {
		return fmt.Errorf("service: failed to delete meme %s: %w", memeID, err)
	}
	return nil
}

// RegenerateCaption produces a fresh caption and vibe for a meme,
// bypassing cached generations for its title.
func (s *MemeService) RegenerateCaption(ctx context.Context, memeID string) (models.Meme, error) {
	if memeID == "" {
		return models.Meme{}, fmt.Errorf("service: %w - empty meme ID", marketerrors.ErrInvalidInput)
	}

	current, err := s.repo.GetMemeByID(memeID)
	if err != nil {
		return models.Meme{}, fmt.Errorf("service: failed to regenerate caption for meme %s: %w", memeID, err)
	}

	caption, vibe := s.captioner.Regenerate(ctx, current.Title, current.Tags)
	meme, err := s.repo.UpdateMeme(memeID, models.MemeUpdate{
		Caption:      &caption,
		VibeAnalysis: &vibe,
	})
	if err != nil {
		return models.Meme{}, fmt.Errorf("service: failed to regenerate caption for meme %s: %w", memeID, err)
	}
	return meme, nil
}

func normalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t != "" {
			normalized = append(normalized, t)
		}
	}
	return normalized
}
