package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"brandtracker-api/internal/model"
	pkgLog "brandtracker-api/pkg/log"
)

const (
	redditTokenURL  = "https://www.reddit.com/api/v1/access_token"
	redditSearchURL = "https://oauth.reddit.com/search"
)

type redditScraper struct {
	l            pkgLog.Logger
	client       *http.Client
	clientID     string
	clientSecret string
	tokenURL     string
	searchURL    string
	clock        func() time.Time

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func newReddit(l pkgLog.Logger, client *http.Client, clientID, clientSecret string) *redditScraper {
	return &redditScraper{
		l:            l,
		client:       client,
		clientID:     clientID,
		clientSecret: clientSecret,
		tokenURL:     redditTokenURL,
		searchURL:    redditSearchURL,
		clock:        time.Now,
	}
}

func (s *redditScraper) Source() model.Source { return model.SourceReddit }

// token returns a cached app-only OAuth token, refreshing it once expired.
func (s *redditScraper) token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.accessToken != "" && s.clock().Before(s.tokenExpiry) {
		return s.accessToken, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL,
		strings.NewReader("grant_type=client_credentials"))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(s.clientID, s.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token request failed with status %d", resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}

	s.accessToken = body.AccessToken
	s.tokenExpiry = s.clock().Add(time.Duration(body.ExpiresIn) * time.Second)
	return s.accessToken, nil
}

type redditListing struct {
	Data struct {
		Children []struct {
			Data struct {
				ID          string  `json:"id"`
				Title       string  `json:"title"`
				Selftext    string  `json:"selftext"`
				Permalink   string  `json:"permalink"`
				Author      string  `json:"author"`
				CreatedUTC  float64 `json:"created_utc"`
				Ups         int     `json:"ups"`
				NumComments int     `json:"num_comments"`
				Subreddit   string  `json:"subreddit"`
				Score       int     `json:"score"`
				UpvoteRatio float64 `json:"upvote_ratio"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

func (s *redditScraper) Fetch(ctx context.Context, b model.Brand) []model.MentionCandidate {
	if s.clientID == "" || s.clientSecret == "" {
		s.l.Debugf(ctx, "internal.scraper.reddit.Fetch: credentials not configured, skipping")
		return nil
	}

	token, err := s.token(ctx)
	if err != nil {
		s.l.Warnf(ctx, "internal.scraper.reddit.Fetch.token: %v", err)
		absorb(s.Source())
		return nil
	}

	params := url.Values{}
	params.Set("q", orQuery(b.Keywords))
	params.Set("sort", "new")
	params.Set("limit", "100")
	params.Set("t", "day")
	params.Set("type", "link")

	var listing redditListing
	err = getJSON(ctx, s.client, s.searchURL+"?"+params.Encode(),
		map[string]string{"Authorization": "Bearer " + token}, &listing)
	if err != nil {
		s.l.Warnf(ctx, "internal.scraper.reddit.Fetch.getJSON: %v", err)
		absorb(s.Source())
		return nil
	}

	candidates := make([]model.MentionCandidate, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		post := child.Data
		candidates = append(candidates, model.MentionCandidate{
			Source:      model.SourceReddit,
			Type:        model.TypePost,
			Text:        truncate(fmt.Sprintf("%s. %s", post.Title, post.Selftext), maxTextLength),
			URL:         "https://reddit.com" + post.Permalink,
			Title:       post.Title,
			Author:      post.Author,
			PublishedAt: time.Unix(int64(post.CreatedUTC), 0).UTC(),
			Reach:       post.Ups,
			Engagement: model.Engagement{
				Likes:    post.Ups,
				Comments: post.NumComments,
			},
			Metadata: map[string]any{
				"subreddit":   post.Subreddit,
				"score":       post.Score,
				"upvoteRatio": post.UpvoteRatio,
			},
			IdentityKey: post.ID,
		})
	}
	return candidates
}
