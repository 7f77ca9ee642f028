// Package youtube is the upstream fetch collaborator: it resolves channel
// identifiers and retrieves channel and video payloads from the YouTube Data
// API v3. The analysis core never touches this package.
package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/shivamGupta-25/YouTube-Analyzer/internal/config"
	"github.com/shivamGupta-25/YouTube-Analyzer/internal/models"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"
)

// pageSize is the API maximum for list endpoints.
const pageSize = 50

// ErrChannelNotFound means the identifier resolved to nothing; the caller
// skips the channel instead of failing the batch.
var ErrChannelNotFound = errors.New("channel not found")

type Client struct {
	service *yt.Service
}

// NewClient builds a YouTube Data API client. An API key takes precedence;
// without one the OAuth device authorization flow is used, caching the token
// on disk so repeat runs stay non-interactive.
func NewClient(ctx context.Context, cfg *config.YouTubeConfig) (*Client, error) {
	if cfg.APIKey != "" {
		service, err := yt.NewService(ctx, option.WithAPIKey(cfg.APIKey))
		if err != nil {
			return nil, fmt.Errorf("failed to create YouTube service: %w", err)
		}
		return &Client{service: service}, nil
	}

	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, fmt.Errorf("no YouTube credentials: set youtube.api_key or an OAuth client id/secret")
	}

	oauthConfig := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Scopes:       []string{"https://www.googleapis.com/auth/youtube.readonly"},
		Endpoint:     google.Endpoint,
	}

	token, err := getToken(oauthConfig, cfg.TokenFile)
	if err != nil {
		return nil, fmt.Errorf("failed to get OAuth token: %w", err)
	}

	httpClient := oauth2.NewClient(ctx, &tokenSaver{
		config:    oauthConfig,
		token:     token,
		tokenFile: cfg.TokenFile,
	})

	service, err := yt.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}
	return &Client{service: service}, nil
}

// ResolveChannel looks an identifier up as a channel ID first, then as a
// handle, then falls back to a search query — the same priority order the
// identifier extractor uses. Returns the channel's identity, reported totals
// and uploads playlist.
func (c *Client) ResolveChannel(ctx context.Context, identifier string) (*models.ChannelInfo, error) {
	parts := []string{"snippet", "statistics", "contentDetails"}

	resp, err := c.service.Channels.List(parts).Id(identifier).Context(ctx).Do()
	if err == nil && len(resp.Items) > 0 {
		return channelInfo(resp.Items[0]), nil
	}

	if strings.HasPrefix(identifier, "@") {
		resp, err = c.service.Channels.List(parts).ForHandle(identifier).Context(ctx).Do()
		if err == nil && len(resp.Items) > 0 {
			return channelInfo(resp.Items[0]), nil
		}
	}

	search, err := c.service.Search.List([]string{"snippet"}).
		Q(identifier).
		Type("channel").
		MaxResults(1).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to search for channel %q: %w", identifier, err)
	}
	if len(search.Items) == 0 || search.Items[0].Id == nil || search.Items[0].Id.ChannelId == "" {
		return nil, ErrChannelNotFound
	}

	resp, err = c.service.Channels.List(parts).Id(search.Items[0].Id.ChannelId).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch channel %q: %w", identifier, err)
	}
	if len(resp.Items) == 0 {
		return nil, ErrChannelNotFound
	}
	return channelInfo(resp.Items[0]), nil
}

// FetchUploads walks the uploads playlist page by page, collecting video IDs
// until the playlist ends or maxVideos (0 = unlimited) is reached.
func (c *Client) FetchUploads(ctx context.Context, playlistID string, maxVideos int) ([]string, error) {
	var ids []string
	pageToken := ""
	for {
		call := c.service.PlaylistItems.List([]string{"contentDetails"}).
			PlaylistId(playlistID).
			MaxResults(pageSize).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list playlist items: %w", err)
		}
		for _, item := range resp.Items {
			if item.ContentDetails == nil || item.ContentDetails.VideoId == "" {
				continue
			}
			ids = append(ids, item.ContentDetails.VideoId)
			if maxVideos > 0 && len(ids) >= maxVideos {
				return ids, nil
			}
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			return ids, nil
		}
	}
}

// FetchVideoDetails retrieves snippet, contentDetails and statistics for the
// given video IDs in batches of 50, preserving input order.
func (c *Client) FetchVideoDetails(ctx context.Context, ids []string) ([]models.RawVideoItem, error) {
	items := make([]models.RawVideoItem, 0, len(ids))
	for _, batch := range chunkIDs(ids, pageSize) {
		resp, err := c.service.Videos.List([]string{"snippet", "contentDetails", "statistics"}).
			Id(strings.Join(batch, ",")).
			MaxResults(pageSize).
			Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list video details: %w", err)
		}
		for _, v := range resp.Items {
			items = append(items, rawVideoItem(v))
		}
	}
	return items, nil
}

// channelInfo maps an API channel resource onto the internal record. A
// hidden subscriber count becomes nil rather than zero.
func channelInfo(ch *yt.Channel) *models.ChannelInfo {
	info := &models.ChannelInfo{ID: ch.Id}
	if ch.Snippet != nil {
		info.Title = ch.Snippet.Title
	}
	if ch.Statistics != nil {
		info.TotalViews = int64(ch.Statistics.ViewCount)
		if !ch.Statistics.HiddenSubscriberCount {
			subs := int64(ch.Statistics.SubscriberCount)
			info.Subscribers = &subs
		}
	}
	if ch.ContentDetails != nil && ch.ContentDetails.RelatedPlaylists != nil {
		info.UploadsPlaylist = ch.ContentDetails.RelatedPlaylists.Uploads
	}
	return info
}

// rawVideoItem keeps the wire shape: counts stay strings and absent blocks
// stay empty, leaving all defaulting to the normalizer.
func rawVideoItem(v *yt.Video) models.RawVideoItem {
	item := models.RawVideoItem{ID: v.Id}
	if v.Snippet != nil {
		item.Title = v.Snippet.Title
		item.Description = v.Snippet.Description
		item.PublishedAt = v.Snippet.PublishedAt
	}
	if v.ContentDetails != nil {
		item.Duration = v.ContentDetails.Duration
	}
	if v.Statistics != nil {
		item.ViewCount = strconv.FormatUint(v.Statistics.ViewCount, 10)
		item.LikeCount = strconv.FormatUint(v.Statistics.LikeCount, 10)
		item.CommentCount = strconv.FormatUint(v.Statistics.CommentCount, 10)
	}
	return item
}

func chunkIDs(ids []string, size int) [][]string {
	var chunks [][]string
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}

// tokenSaver wraps an oauth2.TokenSource so refreshed tokens are written
// back to disk and survive restarts.
type tokenSaver struct {
	config    *oauth2.Config
	token     *oauth2.Token
	tokenFile string
	mu        sync.Mutex
}

// Token implements oauth2.TokenSource, refreshing through the wrapped config
// and persisting any new token.
func (ts *tokenSaver) Token() (*oauth2.Token, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	newToken, err := ts.config.TokenSource(context.Background(), ts.token).Token()
	if err != nil {
		return nil, err
	}
	if newToken.AccessToken != ts.token.AccessToken {
		log.Println("OAuth token refreshed, saving to file")
		ts.token = newToken
		if err := saveToken(ts.tokenFile, newToken); err != nil {
			log.Printf("Warning: failed to save refreshed token: %v", err)
		}
	}
	return newToken, nil
}

// getToken loads a cached token, preferring one with a refresh token even if
// expired (the tokenSaver will refresh it); otherwise it runs the device
// authorization flow and caches the result.
func getToken(cfg *oauth2.Config, tokenFile string) (*oauth2.Token, error) {
	if tok, err := tokenFromFile(tokenFile); err == nil {
		if tok.RefreshToken != "" || tok.Valid() {
			return tok, nil
		}
	}

	tok, err := deviceFlowToken(cfg)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			log.Printf("Device authorization response failed (%s): %s",
				retrieveErr.Response.Status, strings.TrimSpace(string(retrieveErr.Body)))
		}
		return nil, fmt.Errorf("device authorization failed: %w (ensure the OAuth client is a 'TVs and Limited Input devices' client and the YouTube Data API v3 is enabled)", err)
	}

	if err := saveToken(tokenFile, tok); err != nil {
		log.Printf("Warning: failed to save token: %v", err)
	}
	return tok, nil
}

func deviceFlowToken(cfg *oauth2.Config) (*oauth2.Token, error) {
	ctx := context.Background()

	resp, err := cfg.DeviceAuth(ctx, oauth2.AccessTypeOffline)
	if err != nil {
		return nil, fmt.Errorf("unable to start device authorization: %w", err)
	}

	fmt.Printf("\nYouTube authorization required.\n")
	fmt.Printf("Visit %s and enter the code: %s\n", resp.VerificationURI, resp.UserCode)
	if completeURL := strings.TrimSpace(resp.VerificationURIComplete); completeURL != "" {
		fmt.Printf("Or open %s directly.\n", completeURL)
	}
	fmt.Printf("Waiting for authorization... (Ctrl+C to cancel)\n\n")

	tok, err := cfg.DeviceAccessToken(ctx, resp, oauth2.AccessTypeOffline)
	if err != nil {
		return nil, fmt.Errorf("device authorization did not complete: %w", err)
	}
	return tok, nil
}

func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(tok)
	return tok, err
}

func saveToken(path string, token *oauth2.Token) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("unable to create token directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to cache oauth token: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(token); err != nil {
		return fmt.Errorf("failed to encode oauth token: %w", err)
	}
	return nil
}
