package hashtag

import (
	"regexp"
	"sort"
	"strings"

	"github.com/samber/lo"
)

const (
	maxSuggestions = 8
	maxExplicit    = 3
	maxRanked      = 5
	minTokenLen    = 4
)

// Common filler words that make poor hashtags.
var stopwords = map[string]struct{}{
	"about": {}, "after": {}, "also": {}, "been": {}, "before": {},
	"being": {}, "could": {}, "does": {}, "each": {}, "every": {},
	"from": {}, "have": {}, "here": {}, "into": {}, "just": {},
	"like": {}, "made": {}, "make": {}, "more": {}, "most": {},
	"only": {}, "other": {}, "over": {}, "same": {}, "should": {},
	"some": {}, "such": {}, "than": {}, "that": {}, "their": {},
	"them": {}, "then": {}, "there": {}, "these": {}, "they": {},
	"this": {}, "those": {}, "very": {}, "what": {}, "when": {},
	"where": {}, "which": {}, "will": {}, "with": {}, "would": {},
	"your": {},
}

var (
	nonAlnum   = regexp.MustCompile(`[^a-z0-9]+`)
	explicitRe = regexp.MustCompile(`#([A-Za-z0-9_]+)`)
)

// Suggest derives up to 8 candidate hashtags from the title, description and
// free-form tags. Hashtags written out in the description come first,
// followed by the most frequent remaining words. The result is
// deterministic for identical input text.
func Suggest(title, description, freeTags string) []string {
	tags := append(explicitTags(description), rankedTags(title+" "+description+" "+freeTags)...)
	tags = lo.Uniq(tags)
	if len(tags) > maxSuggestions {
		tags = tags[:maxSuggestions]
	}
	return tags
}

// explicitTags pulls out words the author already marked with a '#',
// sanitized to alphanumerics and underscores, capped at 3.
func explicitTags(description string) []string {
	var tags []string
	for _, m := range explicitRe.FindAllStringSubmatch(description, -1) {
		tags = append(tags, "#"+strings.ToLower(m[1]))
		if len(tags) == maxExplicit {
			break
		}
	}
	return tags
}

// rankedTags tokenizes the text and returns the top words by frequency as
// hashtags. Ties keep first-seen order because the sort is stable and
// frequency is the only key.
func rankedTags(text string) []string {
	text = nonAlnum.ReplaceAllString(strings.ToLower(text), " ")

	counts := make(map[string]int)
	var order []string
	for _, tok := range strings.Fields(text) {
		if len(tok) < minTokenLen {
			continue
		}
		if _, stop := stopwords[tok]; stop {
			continue
		}
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > maxRanked {
		order = order[:maxRanked]
	}
	return lo.Map(order, func(tok string, _ int) string { return "#" + tok })
}
