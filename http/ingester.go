package http

import (
	"context"
	"regexp"
	"strconv"

	"github.com/fwojciec/docent"
)

// Ensure Client implements docent.Ingester at compile time.
var _ docent.Ingester = (*Client)(nil)

type crawlRequest struct {
	URL      string `json:"url"`
	MaxDepth int    `json:"max_depth"`
}

type crawlResponse struct {
	NewUnits      *int   `json:"new_units"`
	Message       string `json:"message"`
	DatabaseCount int    `json:"database_count"`
}

// crawledRe matches the summary older service versions return instead of new_units.
var crawledRe = regexp.MustCompile(`Crawled (\d+) pages?`)

// Ingest asks the service to crawl and index locator up to depth link hops.
func (c *Client) Ingest(ctx context.Context, locator string, depth int) (*docent.IngestResult, error) {
	if locator == "" {
		return nil, docent.Errorf(docent.EINVALID, "locator required")
	}
	if err := docent.ValidateDepth(depth); err != nil {
		return nil, err
	}

	var resp crawlResponse
	if err := c.postJSON(ctx, "/crawl", crawlRequest{URL: locator, MaxDepth: depth}, &resp); err != nil {
		return nil, err
	}

	if resp.NewUnits != nil {
		return &docent.IngestResult{NewUnits: *resp.NewUnits}, nil
	}
	if m := crawledRe.FindStringSubmatch(resp.Message); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			return &docent.IngestResult{NewUnits: n}, nil
		}
	}
	return nil, docent.Errorf(docent.EINTERNAL, "unexpected crawl response %q", resp.Message)
}
