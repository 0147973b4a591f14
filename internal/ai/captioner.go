package ai

import (
	"context"
	"math/rand"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"meme-market/utils"
)

// Fallback responses used when the upstream generator is missing, fails
// or times out. Meme creation must always succeed.
var fallbackCaptions = []string{
	"YOLO to the moon!",
	"When the matrix glitches just right",
	"HODL the vibes!",
	"The cyberpunk we deserve",
	"Error 404: Reality not found",
	"Hack the planet, one meme at a time",
	"Neural network overload",
	"Glitching through the metaverse",
}

var fallbackVibes = []string{
	"Neon Crypto Chaos",
	"Digital Wasteland Energy",
	"Terminal Hacker Aesthetic",
	"Glitch Matrix Syndrome",
	"Cyberpunk Nostalgia",
	"Night City Dreams",
	"Virtual Reality Meltdown",
	"Blockchain Fever Dream",
}

// Captioner wraps a Generator with a response cache, a bounded call
// timeout and canned fallbacks. Its methods never fail: an unavailable
// upstream degrades to a random fallback response.
type Captioner struct {
	gen     Generator // nil when no API key is configured
	cache   *gocache.Cache
	timeout time.Duration
}

// NewCaptioner creates a captioner. A nil generator is valid and serves
// fallback responses only.
func NewCaptioner(gen Generator, cacheTTL, timeout time.Duration) *Captioner {
	return &Captioner{
		gen:     gen,
		cache:   gocache.New(cacheTTL, 2*cacheTTL),
		timeout: timeout,
	}
}

// Caption returns a caption for the given title and tags, from cache
// when a prior generation exists.
func (c *Captioner) Caption(ctx context.Context, title string, tags []string) string {
	return c.cached(ctx, "caption", title, tags, c.generateCaption, fallbackCaptions)
}

// Vibe returns a vibe description for the given title and tags
func (c *Captioner) Vibe(ctx context.Context, title string, tags []string) string {
	return c.cached(ctx, "vibe", title, tags, c.generateVibe, fallbackVibes)
}

// Regenerate produces a fresh caption and vibe, bypassing any cached
// generations for this title, and replaces the cached entries.
func (c *Captioner) Regenerate(ctx context.Context, title string, tags []string) (string, string) {
	c.cache.Delete(cacheKey("caption", title, tags))
	c.cache.Delete(cacheKey("vibe", title, tags))
	caption := c.Caption(ctx, title, tags)
	vibe := c.Vibe(ctx, title, tags)
	return caption, vibe
}

func (c *Captioner) cached(
	ctx context.Context,
	kind, title string,
	tags []string,
	generate func(context.Context, string, []string) (string, error),
	fallbacks []string,
) string {
	key := cacheKey(kind, title, tags)
	if cached, ok := c.cache.Get(key); ok {
		return cached.(string)
	}

	if c.gen == nil {
		return pick(fallbacks)
	}

	genCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	text, err := generate(genCtx, title, tags)
	if err != nil {
		utils.Warn("ai: generation failed, using fallback", map[string]any{
			"kind":  kind,
			"title": title,
			"error": err.Error(),
		})
		return pick(fallbacks)
	}

	c.cache.Set(key, text, gocache.DefaultExpiration)
	return text
}

func (c *Captioner) generateCaption(ctx context.Context, title string, tags []string) (string, error) {
	return c.gen.GenerateCaption(ctx, title, tags)
}

func (c *Captioner) generateVibe(ctx context.Context, title string, tags []string) (string, error) {
	return c.gen.GenerateVibe(ctx, title, tags)
}

func cacheKey(kind, title string, tags []string) string {
	return kind + "_" + title + "_" + strings.Join(tags, "_")
}

func pick(list []string) string {
	return list[rand.Intn(len(list))]
}
