package duckduckgo

import "encoding/json"

// Answer is the subset of the instant answer payload the search service consumes.
// Pointer fields distinguish a missing (or null) key from an empty value.
type Answer struct {
	Heading        *string           `json:"Heading"`
	AbstractText   string            `json:"AbstractText"`
	AbstractURL    *string           `json:"AbstractURL"`
	AbstractSource *string           `json:"AbstractSource"`
	RelatedTopics  []json.RawMessage `json:"RelatedTopics"`
}

// Topic is a single related topic entry. Category groups share the
// RelatedTopics array but carry Name/Topics instead of Text.
type Topic struct {
	Text     *string `json:"Text"`
	FirstURL *string `json:"FirstURL"`
}

// Topics decodes up to limit leading entries of RelatedTopics. Entries that
// are not objects with a Text field are skipped but still count toward limit.
func (a *Answer) Topics(limit int) []Topic {
	raw := a.RelatedTopics
	if limit >= 0 && len(raw) > limit {
		raw = raw[:limit]
	}

	topics := make([]Topic, 0, len(raw))
	for _, entry := range raw {
		var t Topic
		if err := json.Unmarshal(entry, &t); err != nil {
			continue
		}
		if t.Text == nil {
			continue
		}
		topics = append(topics, t)
	}
	return topics
}
