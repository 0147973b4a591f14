package helpers

// Request/Response DTOs
type PlaceBidRequest struct {
	MemeID  string `json:"meme_id" binding:"required"`
	UserID  string `json:"user_id" binding:"required"`
	Credits int64  `json:"credits" binding:"required,gt=0"`
}

type BidResponse struct {
	BidID     string `json:"bid_id"`
	MemeID    string `json:"meme_id"`
	UserID    string `json:"user_id"`
	Credits   int64  `json:"credits"`
	CreatedAt string `json:"created_at"`
}

type CreateMemeRequest struct {
	Title    string   `json:"title" binding:"required"`
	Image    string   `json:"image"`
	ImageURL string   `json:"image_url"`
	Tags     []string `json:"tags"`
	OwnerID  string   `json:"owner_id"`
}

// ResolvedImageURL prefers image_url over the legacy image field
func (r CreateMemeRequest) ResolvedImageURL() string {
	if r.ImageURL != "" {
		return r.ImageURL
	}
	return r.Image
}

type UpdateMemeRequest struct {
	Title    *string   `json:"title"`
	ImageURL *string   `json:"image_url"`
	Tags     *[]string `json:"tags"`
}

// VoteRequest keeps the client's field casing: userId and voteType.
// VoteType is a pointer so an explicit false (downvote) passes binding.
type VoteRequest struct {
	UserID   string `json:"userId" binding:"required"`
	VoteType *bool  `json:"voteType" binding:"required"`
}

type VoteCountsResponse struct {
	MemeID    string `json:"meme_id"`
	Upvotes   int    `json:"upvotes"`
	Downvotes int    `json:"downvotes"`
}

// UpdateCreditsRequest sets an absolute balance; zero is a valid grant
type UpdateCreditsRequest struct {
	Credits *int64 `json:"credits" binding:"required"`
}
