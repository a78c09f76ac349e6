// Package faq answers free-text factual questions from a small fixed
// knowledge base. Matching is by keyword, checked in entry order.
package faq

import (
	"context"
	"strings"
)

// Entry pairs matching keywords with a canned answer.
type Entry struct {
	Keywords []string
	Answer   string
}

// defaultEntries is the clinic knowledge base. Order matters: the first
// entry with a matching keyword wins.
var defaultEntries = []Entry{
	{
		Keywords: []string{"hours", "open"},
		Answer:   "We are open 8AM - 6PM Monday through Friday, and 9AM - 2PM on Saturdays. We are closed on Sundays.",
	},
	{
		Keywords: []string{"location", "located", "address", "where"},
		Answer:   "We are located at Main Street Hospital, 42 Main Street.",
	},
	{
		Keywords: []string{"insurance", "coverage"},
		Answer:   "We accept major insurance providers. Please bring your insurance card to your appointment.",
	},
	{
		Keywords: []string{"parking", "park"},
		Answer:   "Free patient parking is available in the lot next to the main entrance.",
	},
	{
		Keywords: []string{"bring"},
		Answer:   "Please bring a photo ID, your insurance card, and a list of any current medications.",
	},
	{
		Keywords: []string{"cancel", "cancellation"},
		Answer:   "Appointments can be cancelled or rescheduled up to 24 hours in advance without a fee.",
	},
	{
		Keywords: []string{"cost", "price", "how much", "fee"},
		Answer:   "Consultation fees vary by appointment type. Most insurance plans cover standard visits.",
	},
	{
		Keywords: []string{"mask", "covid"},
		Answer:   "Masks are optional in our clinic, but available at the front desk if you'd like one.",
	},
}

// Provider answers questions from the knowledge base.
type Provider struct {
	entries []Entry
}

// NewProvider creates a provider with the default clinic knowledge base.
func NewProvider() *Provider {
	return &Provider{entries: defaultEntries}
}

// NewProviderWithEntries creates a provider with a custom knowledge base.
func NewProviderWithEntries(entries []Entry) *Provider {
	return &Provider{entries: entries}
}

// Answer returns the best-effort answer for a query. found is false when no
// entry matches; that is a valid outcome, not an error.
func (p *Provider) Answer(ctx context.Context, query string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return "", false, nil
	}

	for _, entry := range p.entries {
		for _, kw := range entry.Keywords {
			if strings.Contains(q, kw) {
				return entry.Answer, true, nil
			}
		}
	}
	return "", false, nil
}
