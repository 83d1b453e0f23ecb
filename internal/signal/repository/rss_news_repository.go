package repository

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"stocksphere-signal/internal/signal/config"
	"stocksphere-signal/internal/signal/dto"
	"stocksphere-signal/pkg/logger"
	"stocksphere-signal/pkg/utils"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/mauidude/go-readability"
	"github.com/mmcdole/gofeed"
)

type rssNewsRepository struct {
	cfg        *config.Config
	log        *logger.Logger
	httpClient *http.Client
}

// NewRSSNewsRepository creates a NewsRepository backed by an RSS feed
// (Google News search by default).
func NewRSSNewsRepository(cfg *config.Config, log *logger.Logger) NewsRepository {
	return &rssNewsRepository{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (r *rssNewsRepository) GetRecent(ctx context.Context, lookback time.Duration) ([]dto.NewsItem, error) {
	feedURL := r.cfg.RSS.FeedURL
	if query := r.cfg.RSS.Query; query != "" {
		feedURL = fmt.Sprintf("%s/search?q=%s", strings.TrimSuffix(feedURL, "/"), url.QueryEscape(query))
	}

	fp := gofeed.NewParser()
	feed, err := fp.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RSS feed: %w", err)
	}

	// Newest first so the per-request item cap keeps the freshest articles.
	sort.Slice(feed.Items, func(i, j int) bool {
		if feed.Items[i].PublishedParsed == nil || feed.Items[j].PublishedParsed == nil {
			return false
		}
		return feed.Items[i].PublishedParsed.After(*feed.Items[j].PublishedParsed)
	})

	maxItems := r.cfg.RSS.MaxItems
	if maxItems <= 0 {
		maxItems = 50
	}
	cutoff := time.Now().Add(-lookback)

	var items []dto.NewsItem
	for _, item := range feed.Items {
		if !utils.ShouldContinue(ctx, r.log) {
			break
		}
		if len(items) >= maxItems {
			break
		}
		if item.PublishedParsed == nil || item.PublishedParsed.Before(cutoff) {
			continue
		}

		description := stripHTML(item.Description)
		if description == "" && r.cfg.RSS.FetchFullContent {
			description = r.fetchArticleText(ctx, item.Link)
		}

		items = append(items, dto.NewsItem{
			Title:       utils.CleanToValidUTF8(item.Title),
			Description: utils.CleanToValidUTF8(description),
			PublishedAt: *item.PublishedParsed,
			URL:         item.Link,
		})
	}

	r.log.Info("Fetched RSS news",
		logger.IntField("feed_count", len(feed.Items)),
		logger.IntField("kept_count", len(items)),
	)

	return items, nil
}

// stripHTML reduces an RSS description fragment to its plain text.
func stripHTML(fragment string) string {
	if fragment == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}
	return strings.TrimSpace(doc.Text())
}

// fetchArticleText downloads the article page and extracts its readable body.
// Failures degrade to an empty description; the item is still scored by title.
func (r *rssNewsRepository) fetchArticleText(ctx context.Context, link string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		r.log.Error("Failed to create article request", logger.ErrorField(err), logger.StringField("url", link))
		return ""
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.log.Error("Failed to fetch article content", logger.ErrorField(err), logger.StringField("url", link))
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.log.Error("Failed to fetch article content with non-200 status", logger.IntField("status", resp.StatusCode), logger.StringField("url", link))
		return ""
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		r.log.Error("Failed to read article body", logger.ErrorField(err), logger.StringField("url", link))
		return ""
	}

	doc, err := readability.NewDocument(string(body))
	if err != nil {
		r.log.Error("Failed to parse article content", logger.ErrorField(err), logger.StringField("url", link))
		return ""
	}

	textDoc, err := goquery.NewDocumentFromReader(bytes.NewReader([]byte(doc.Content())))
	if err != nil {
		return ""
	}

	text := strings.TrimSpace(textDoc.Text())
	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.ReplaceAll(text, "\t", " ")
	return utils.CleanToValidUTF8(text)
}
