package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"brandtracker-api/internal/model"
	pkgLog "brandtracker-api/pkg/log"
)

const (
	youtubeAPIBase    = "https://www.googleapis.com/youtube/v3"
	youtubeMaxResults = 25
)

type youtubeScraper struct {
	l      pkgLog.Logger
	client *http.Client
	apiKey string
}

func newYouTube(l pkgLog.Logger, client *http.Client, apiKey string) *youtubeScraper {
	return &youtubeScraper{l: l, client: client, apiKey: apiKey}
}

func (s *youtubeScraper) Source() model.Source { return model.SourceYouTube }

type youtubeSearchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
	} `json:"items"`
}

type youtubeVideosResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title        string         `json:"title"`
			Description  string         `json:"description"`
			ChannelID    string         `json:"channelId"`
			ChannelTitle string         `json:"channelTitle"`
			PublishedAt  string         `json:"publishedAt"`
			Thumbnails   map[string]any `json:"thumbnails"`
		} `json:"snippet"`
		Statistics struct {
			ViewCount    string `json:"viewCount"`
			LikeCount    string `json:"likeCount"`
			CommentCount string `json:"commentCount"`
		} `json:"statistics"`
	} `json:"items"`
}

func (s *youtubeScraper) Fetch(ctx context.Context, b model.Brand) []model.MentionCandidate {
	if s.apiKey == "" {
		s.l.Debugf(ctx, "internal.scraper.youtube.Fetch: api key not configured, skipping")
		return nil
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", orQuery(b.Keywords))
	params.Set("type", "video")
	params.Set("maxResults", strconv.Itoa(youtubeMaxResults))
	params.Set("order", "date")
	params.Set("relevanceLanguage", "en")
	params.Set("key", s.apiKey)

	var search youtubeSearchResponse
	if err := getJSON(ctx, s.client, youtubeAPIBase+"/search?"+params.Encode(), nil, &search); err != nil {
		s.l.Warnf(ctx, "internal.scraper.youtube.Fetch.search: %v", err)
		absorb(s.Source())
		return nil
	}

	videoIDs := make([]string, 0, len(search.Items))
	for _, item := range search.Items {
		if item.ID.VideoID != "" {
			videoIDs = append(videoIDs, item.ID.VideoID)
		}
	}
	if len(videoIDs) == 0 {
		return nil
	}

	// One batched stats lookup for all found videos.
	params = url.Values{}
	params.Set("part", "statistics,snippet,contentDetails")
	params.Set("id", strings.Join(videoIDs, ","))
	params.Set("key", s.apiKey)

	var videos youtubeVideosResponse
	if err := getJSON(ctx, s.client, youtubeAPIBase+"/videos?"+params.Encode(), nil, &videos); err != nil {
		s.l.Warnf(ctx, "internal.scraper.youtube.Fetch.videos: %v", err)
		absorb(s.Source())
		return nil
	}

	candidates := make([]model.MentionCandidate, 0, len(videos.Items))
	for _, video := range videos.Items {
		snippet := video.Snippet
		publishedAt, _ := time.Parse(time.RFC3339, snippet.PublishedAt)

		candidates = append(candidates, model.MentionCandidate{
			Source:      model.SourceYouTube,
			Type:        model.TypeVideo,
			Text:        fmt.Sprintf("%s. %s", snippet.Title, truncate(snippet.Description, 500)),
			URL:         "https://www.youtube.com/watch?v=" + video.ID,
			Title:       snippet.Title,
			Author:      snippet.ChannelTitle,
			PublishedAt: publishedAt,
			Reach:       atoi(video.Statistics.ViewCount),
			Engagement: model.Engagement{
				Likes:    atoi(video.Statistics.LikeCount),
				Comments: atoi(video.Statistics.CommentCount),
			},
			Metadata: map[string]any{
				"channelId":  snippet.ChannelID,
				"thumbnails": snippet.Thumbnails,
			},
			IdentityKey: video.ID,
		})
	}
	return candidates
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
