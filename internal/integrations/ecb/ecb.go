package ecb

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"

	"github.com/mvalderrama/travel-service/internal/config"
)

// maxAge is how long a fetched rate table stays fresh. The ECB publishes the
// reference rates once per business day.
const maxAge = 12 * time.Hour

// Client fetches daily EUR reference exchange rates from the ECB feed
type Client struct {
	url    string
	client *http.Client
	log    *logrus.Logger

	mu      sync.RWMutex
	rates   map[string]float64
	fetched time.Time
}

// NewClient initializes a new ECB client
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	return &Client{
		url: cfg.ECBURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// fetchFeed downloads the raw eurofxref-daily.xml document
func (c *Client) fetchFeed() ([]byte, error) {
	resp, err := c.client.Get(c.url)
	if err != nil {
		return nil, fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}

	c.log.Debugf("ECB XML response: %s", string(body))
	return body, nil
}

// parseRates extracts currency/rate pairs from the feed's Cube elements
func parseRates(raw []byte) (map[string]float64, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %v", err)
	}

	cubes := doc.FindElements("//Cube[@currency]")
	if len(cubes) == 0 {
		return nil, fmt.Errorf("no rate data found in XML")
	}

	rates := map[string]float64{"EUR": 1.0}
	for _, cube := range cubes {
		currency := cube.SelectAttrValue("currency", "")
		rateText := cube.SelectAttrValue("rate", "")
		rate, err := strconv.ParseFloat(rateText, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse rate for %s: %v", currency, err)
		}
		rates[currency] = rate
	}
	return rates, nil
}

// Refresh fetches the feed and replaces the cached rate table
func (c *Client) Refresh() error {
	body, err := c.fetchFeed()
	if err != nil {
		return err
	}

	rates, err := parseRates(body)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.rates = rates
	c.fetched = time.Now()
	c.mu.Unlock()

	c.log.Infof("Refreshed ECB reference rates: %d currencies", len(rates))
	return nil
}

// Rates returns a copy of the cached rate table, refreshing it when stale.
func (c *Client) Rates() (map[string]float64, error) {
	c.mu.RLock()
	stale := c.rates == nil || time.Since(c.fetched) > maxAge
	c.mu.RUnlock()

	if stale {
		if err := c.Refresh(); err != nil {
			return nil, err
		}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]float64, len(c.rates))
	for currency, rate := range c.rates {
		out[currency] = rate
	}
	return out, nil
}
