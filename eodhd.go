package idlefund

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/idlefund/idlefund/date"
)

const eodhd_api_key = "EODHD_API_KEY"

var eodhdApiFlag = flag.String("eodhd-api-key", "", "EODHD API key to use for fetching market data from EODHD.com.\n If missing it will read for the environment variable \""+eodhd_api_key+"\". You can get one at https://eodhd.com/")

func eodhdApiKey() string {
	// If the flag is not set, we try to read it from the environment variable.
	if *eodhdApiFlag == "" {
		*eodhdApiFlag = os.Getenv(eodhd_api_key)
	}
	return *eodhdApiFlag
}

// diskCache implements a simple disk cache for HTTP responses
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	// get from disk
	// diskcache implements a unique key per day, so the local tmp expires every day.
	key := fmt.Sprintf("%s %s %s", date.Today().String(), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	// otherwise attempt to store it in cache

	err = c.put(key, resp)
	if err != nil {
		log.Printf("cache write err (ignored): %v\n", err)
	}
	return resp, nil
}

// get retrieves a cached response from disk
func (c *diskCache) get(key string, req *http.Request) (resp *http.Response, err error) {
	file := filepath.Join(os.TempDir(), key)
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache
func (c *diskCache) put(key string, resp *http.Response) (err error) {
	file := filepath.Join(os.TempDir(), key)

	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}

	_, err = f.Write(content)
	f.Close()
	return err
}

// daily returns a client with a cache all with daily expire
func daily() *http.Client {
	client := new(http.Client)
	client.Transport = &diskCache{http.DefaultTransport}
	return client
}

// jwget performs an HTTP GET request and unmarshals the JSON response into the provided data structure.
func jwget(ctx context.Context, client *http.Client, addr string, data interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}

// This file contains functions to access the EODHD API.

// EODHDProvider serves quotes, history and fundamentals from eodhd.com.
// Responses are cached on disk for the rest of the day.
type EODHDProvider struct {
	apiKey string
	client *http.Client
}

// NewEODHDProvider builds a provider using the api key from the flag or the
// environment. It fails when no key is configured.
func NewEODHDProvider() (*EODHDProvider, error) {
	key := eodhdApiKey()
	if key == "" {
		return nil, fmt.Errorf("no EODHD API key: set -eodhd-api-key or the %s environment variable", eodhd_api_key)
	}
	return &EODHDProvider{apiKey: key, client: daily()}, nil
}

// Quote returns the latest real-time price for the symbol.
func (p *EODHDProvider) Quote(ctx context.Context, symbol string) (Quote, error) {
	// https://eodhd.com/api/real-time/AAPL.US?api_token=...&fmt=json
	// {
	//	"code": "AAPL.US",
	//	"timestamp": 1756329600,
	//	"close": 232.14,
	//	...
	// }
	addr := fmt.Sprintf("https://eodhd.com/api/real-time/%s?fmt=json&api_token=%s", url.PathEscape(symbol), p.apiKey)
	var content struct {
		Close     float64 `json:"close"`
		Timestamp int64   `json:"timestamp"`
	}
	if err := jwget(ctx, p.client, addr, &content); err != nil {
		return Quote{}, fmt.Errorf("cannot fetch quote for %s: %w", symbol, err)
	}
	return Quote{
		Price: M(content.Close, Classify(symbol).Currency),
		Time:  time.Unix(content.Timestamp, 0),
	}, nil
}

// History returns up to days of daily candles ending today, oldest first.
// Prices are adjusted for splits.
func (p *EODHDProvider) History(ctx context.Context, symbol string, days int) ([]Candle, error) {
	// https://eodhd.com/api/eod/NVD.F?api_token=...&fmt=json
	// [
	//	{
	//		"date": "2024-02-13",
	//		"open": 675.066,
	//		"high": 684.219,
	//		"low": 648.659,
	//		"close": 668.445,
	//		"adjusted_close": 67.705,
	//		"volume": 0
	//	  },

	to := date.Today()
	from := to.Add(-days)
	addr := fmt.Sprintf("https://eodhd.com/api/eod/%s?fmt=json&api_token=%s&from=%s&to=%s",
		url.PathEscape(symbol), p.apiKey, from, to)

	type info struct {
		Date   date.Date `json:"date"`
		Open   float64   `json:"open"`
		High   float64   `json:"high"`
		Low    float64   `json:"low"`
		Close  float64   `json:"adjusted_close"`
		Volume int64     `json:"volume"`
	}
	content := make([]info, 0)
	if err := jwget(ctx, p.client, addr, &content); err != nil {
		return nil, fmt.Errorf("cannot fetch history for %s: %w", symbol, err)
	}

	candles := make([]Candle, 0, len(content))
	for _, c := range content {
		candles = append(candles, Candle{
			Day:    c.Date,
			Open:   c.Open,
			High:   c.High,
			Low:    c.Low,
			Close:  c.Close,
			Volume: c.Volume,
		})
	}
	return candles, nil
}

// Fundamentals returns the company facts for the symbol. The eodhd payload is
// a deep irregular object, picked apart with jsonpath so any missing branch
// degrades to a zero field instead of an error.
func (p *EODHDProvider) Fundamentals(ctx context.Context, symbol string) (Fundamentals, error) {
	addr := fmt.Sprintf("https://eodhd.com/api/fundamentals/%s?fmt=json&api_token=%s", url.PathEscape(symbol), p.apiKey)
	var doc interface{}
	if err := jwget(ctx, p.client, addr, &doc); err != nil {
		return Fundamentals{}, fmt.Errorf("cannot fetch fundamentals for %s: %w", symbol, err)
	}

	fund := Fundamentals{
		CompanyName:   jpString(doc, "$.General.Name"),
		Sector:        jpString(doc, "$.General.Sector"),
		Industry:      jpString(doc, "$.General.Industry"),
		MarketCap:     jpFloat(doc, "$.Highlights.MarketCapitalization"),
		DividendYield: jpFloat(doc, "$.Highlights.DividendYield"),
	}
	if v, ok := jpMaybeFloat(doc, "$.Highlights.PERatio"); ok {
		fund.PERatio = &v
	}
	if v, ok := jpMaybeFloat(doc, "$.Technicals.Beta"); ok {
		fund.Beta = &v
	}
	return fund, nil
}

func jpString(doc interface{}, path string) string {
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

func jpFloat(doc interface{}, path string) float64 {
	f, _ := jpMaybeFloat(doc, path)
	return f
}

func jpMaybeFloat(doc interface{}, path string) (float64, bool) {
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}
