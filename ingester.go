package docent

import "context"

// Crawl depth bounds accepted by Ingester implementations.
const (
	MinDepth     = 1
	MaxDepth     = 3
	DefaultDepth = 2
)

// IngestResult holds the outcome of an ingestion job.
type IngestResult struct {
	// NewUnits is the number of pages newly indexed by the service.
	NewUnits int
}

// Ingester trains the remote knowledge service on a reference.
type Ingester interface {
	// Ingest crawls and indexes the locator up to depth link hops.
	// Repeated calls with the same locator must be safe; callers do not
	// roll back ingested content when a later step fails.
	Ingest(ctx context.Context, locator string, depth int) (*IngestResult, error)
}

// ValidateDepth returns an error if depth is outside MinDepth..MaxDepth.
func ValidateDepth(depth int) error {
	if depth < MinDepth || depth > MaxDepth {
		return Errorf(EINVALID, "depth must be between %d and %d", MinDepth, MaxDepth)
	}
	return nil
}
