package docent

import (
	"regexp"
	"strings"
)

// TurnKind tells the orchestrator what a user turn needs before it can be answered.
type TurnKind int

const (
	// DirectQuery turns go straight to the question answering service.
	DirectQuery TurnKind = iota
	// NeedsIngestion turns reference something the service must crawl first.
	NeedsIngestion
)

func (k TurnKind) String() string {
	switch k {
	case NeedsIngestion:
		return "needs_ingestion"
	default:
		return "direct_query"
	}
}

// Classification is the result of Classify.
type Classification struct {
	Kind    TurnKind
	Locator string // set for NeedsIngestion
}

var urlRe = regexp.MustCompile(`https?://[^\s]+`)

// Classify decides whether a turn needs ingestion.
//
// The first http(s) URL in text always needs ingestion, whatever the mode.
// In reference mode, text without a URL is taken as the locator if it
// looks like a domain (contains a dot).
func Classify(text string, referenceMode bool) Classification {
	if loc := urlRe.FindString(text); loc != "" {
		return Classification{Kind: NeedsIngestion, Locator: loc}
	}
	if referenceMode {
		trimmed := strings.TrimSpace(text)
		if strings.Contains(trimmed, ".") {
			return Classification{Kind: NeedsIngestion, Locator: trimmed}
		}
	}
	return Classification{Kind: DirectQuery}
}
