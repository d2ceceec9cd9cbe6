package scraper

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"brandtracker-api/internal/model"
)

// ErrNoIdentity marks a candidate that carries nothing stable to dedup on.
var ErrNoIdentity = errors.New("candidate has no identity key or url")

// Normalize canonicalizes a raw candidate: trims and bounds the text, fills
// defaults for missing fields and derives the content hash from the identity
// key. The hash is the sole deduplication input, so normalization must be
// deterministic for a given candidate.
func Normalize(cand model.MentionCandidate, now time.Time) (model.MentionCandidate, error) {
	cand.Text = truncate(strings.TrimSpace(cand.Text), maxTextLength)
	cand.Title = strings.TrimSpace(cand.Title)
	if cand.Text == "" {
		cand.Text = cand.Title
	}

	if cand.Type == "" {
		cand.Type = model.TypeArticle
	}
	if cand.Author == "" {
		cand.Author = "Unknown"
	}
	if cand.PublishedAt.IsZero() {
		cand.PublishedAt = now
	}
	if cand.Reach < 0 {
		cand.Reach = 0
	}

	if cand.IdentityKey == "" {
		cand.IdentityKey = cand.URL
	}
	if cand.IdentityKey == "" {
		return model.MentionCandidate{}, ErrNoIdentity
	}

	sum := sha256.Sum256([]byte(cand.IdentityKey))
	cand.ContentHash = hex.EncodeToString(sum[:])

	return cand, nil
}
