package rates

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"aurum-admin-core/internal/domain"
	"aurum-admin-core/internal/ports"

	"github.com/rs/zerolog"
	"golang.org/x/net/html"
)

// DefaultSourceURL is the public bullion-rates page scraped by default.
// Overridable via RATES_URL for testing or when the page moves.
const DefaultSourceURL = "https://www.livechennai.com/gold_silverrate.asp"

// Markers identifying the two scraped list items. Both must be found or the
// fetch counts as a failure; there is no partial result.
const (
	markerGold24 = "Fine Gold (999)"
	markerGold22 = "22 KT"
)

// pricePattern captures the first run of digits and commas after the rupee
// symbol, e.g. "₹ 7,245" -> "7,245".
var pricePattern = regexp.MustCompile(`₹\s*([0-9][0-9,]*)`)

// Scraper fetches and parses the public rates page
type Scraper struct {
	url    string
	client *http.Client
	logger zerolog.Logger
}

// NewScraper creates a new rates scraper for the given page URL
func NewScraper(url string, client *http.Client, logger zerolog.Logger) ports.RateSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &Scraper{url: url, client: client, logger: logger}
}

// Fetch retrieves the rates page and extracts per-gram prices for 24K and
// 22K gold. Either marker missing is a failure.
func (s *Scraper) Fetch(ctx context.Context) (*domain.BullionQuote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build rates request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rates page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rates page returned status %d", resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rates page: %w", err)
	}

	quote := &domain.BullionQuote{}
	found24, found22 := false, false

	for _, item := range listItems(doc) {
		switch {
		case !found24 && strings.Contains(item, markerGold24):
			if price, ok := extractPrice(item); ok {
				quote.Gold24PerGram = price
				found24 = true
			}
		case !found22 && strings.Contains(item, markerGold22):
			if price, ok := extractPrice(item); ok {
				quote.Gold22PerGram = price
				found22 = true
			}
		}
	}

	if !found24 || !found22 {
		return nil, fmt.Errorf("rates page missing expected price markers")
	}

	s.logger.Debug().
		Int("gold24PerGram", quote.Gold24PerGram).
		Int("gold22PerGram", quote.Gold22PerGram).
		Msg("Scraped bullion quote")

	return quote, nil
}

// listItems collects the concatenated text content of every <li> element
func listItems(doc *html.Node) []string {
	var items []string

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "li" {
			items = append(items, nodeText(n))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return items
}

// nodeText concatenates all text nodes under n
func nodeText(n *html.Node) string {
	var sb strings.Builder

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return sb.String()
}

// extractPrice pulls the rupee figure out of a list item's text, stripping
// thousands separators.
func extractPrice(text string) (int, bool) {
	match := pricePattern.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}

	price, err := strconv.Atoi(strings.ReplaceAll(match[1], ",", ""))
	if err != nil {
		return 0, false
	}

	return price, true
}
