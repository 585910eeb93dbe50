package note

import "github.com/sahilm/fuzzy"

// summarySource adapts summaries to fuzzy.Source, matching on title.
type summarySource []Summary

func (s summarySource) String(i int) string { return s[i].Title }
func (s summarySource) Len() int            { return len(s) }

// Search fuzzy-matches query against note titles, best match first.
// An empty query matches nothing.
func Search(summaries []Summary, query string) []Summary {
	if query == "" {
		return nil
	}

	matches := fuzzy.FindFrom(query, summarySource(summaries))
	results := make([]Summary, 0, len(matches))
	for _, m := range matches {
		results = append(results, summaries[m.Index])
	}
	return results
}
