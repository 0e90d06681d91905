package idlefund

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
)

const (
	google_api_key   = "GOOGLE_API_KEY"
	google_search_id = "GOOGLE_SEARCH_ENGINE_ID"
)

var (
	googleApiFlag    = flag.String("google-api-key", "", "Google API key for news search.\n If missing it will read for the environment variable \""+google_api_key+"\".")
	googleSearchFlag = flag.String("google-search-engine-id", "", "Google Custom Search engine id for news search.\n If missing it will read for the environment variable \""+google_search_id+"\".")
)

func googleApiKey() string {
	if *googleApiFlag == "" {
		*googleApiFlag = os.Getenv(google_api_key)
	}
	return *googleApiFlag
}

func googleSearchEngineID() string {
	if *googleSearchFlag == "" {
		*googleSearchFlag = os.Getenv(google_search_id)
	}
	return *googleSearchFlag
}

// GoogleNewsSource finds recent articles through the Google Custom Search
// API. Without credentials every search returns no items, so sentiment
// degrades to neutral instead of failing.
type GoogleNewsSource struct {
	apiKey   string
	engineID string
	client   *http.Client
}

// NewGoogleNewsSource builds a news source from the flags or the
// environment. Missing credentials are not an error.
func NewGoogleNewsSource() *GoogleNewsSource {
	return &GoogleNewsSource{
		apiKey:   googleApiKey(),
		engineID: googleSearchEngineID(),
		client:   daily(),
	}
}

func (s *GoogleNewsSource) configured() bool {
	return s.apiKey != "" && s.engineID != ""
}

// SearchStock returns recent articles about one stock.
func (s *GoogleNewsSource) SearchStock(ctx context.Context, symbol, companyName string, daysBack int) ([]NewsItem, error) {
	term := companyName
	if term == "" {
		term = symbol
	}
	query := fmt.Sprintf("%s %s stock news", symbol, term)
	return s.search(ctx, query, daysBack, 10)
}

// SearchMarket returns recent articles about one market region.
func (s *GoogleNewsSource) SearchMarket(ctx context.Context, market string, daysBack int) ([]NewsItem, error) {
	query, ok := marketQueries[market]
	if !ok {
		query = marketQueries["global"]
	}
	return s.search(ctx, query, daysBack, 8)
}

func (s *GoogleNewsSource) search(ctx context.Context, query string, daysBack, num int) ([]NewsItem, error) {
	if !s.configured() {
		return nil, nil
	}

	v := url.Values{}
	v.Set("key", s.apiKey)
	v.Set("cx", s.engineID)
	v.Set("q", query)
	v.Set("num", fmt.Sprint(num))
	v.Set("dateRestrict", fmt.Sprintf("d%d", daysBack))
	v.Set("sort", "date")
	addr := "https://customsearch.googleapis.com/customsearch/v1?" + v.Encode()

	var content struct {
		Items []struct {
			Title       string `json:"title"`
			Snippet     string `json:"snippet"`
			Link        string `json:"link"`
			DisplayLink string `json:"displayLink"`
			Pagemap     struct {
				Metatags []map[string]string `json:"metatags"`
			} `json:"pagemap"`
		} `json:"items"`
	}
	if err := jwget(ctx, s.client, addr, &content); err != nil {
		return nil, fmt.Errorf("news search failed: %w", err)
	}

	items := make([]NewsItem, 0, len(content.Items))
	for _, it := range content.Items {
		var published string
		if len(it.Pagemap.Metatags) > 0 {
			published = it.Pagemap.Metatags[0]["article:published_time"]
		}
		items = append(items, NewsItem{
			Title:   it.Title,
			Snippet: it.Snippet,
			Link:    it.Link,
			Source:  it.DisplayLink,
			Date:    published,
		})
	}
	return items, nil
}
