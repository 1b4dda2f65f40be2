package sentiment

import "strings"

// ScoreResult is the combined analyzer plus lexicon score for one headline.
type ScoreResult struct {
	Base     int      `json:"base"`
	Custom   int      `json:"custom"`
	Score    int      `json:"score"`
	Keywords []string `json:"keywords"`
}

// Scorer layers the financial lexicon on top of the base analyzer.
type Scorer struct {
	analyzer *Analyzer
	lexicon  *Lexicon
}

// NewScorer creates a scorer with the given analyzer and lexicon.
func NewScorer(analyzer *Analyzer, lexicon *Lexicon) *Scorer {
	return &Scorer{analyzer: analyzer, lexicon: lexicon}
}

// Score analyzes a headline. The lexicon pass is a substring match over the
// lowercased headline, each matching term contributing its weight once.
// Keywords are the union of base hits and lexicon hits, minus terms of
// length 3 or shorter.
func (s *Scorer) Score(title string) ScoreResult {
	base := s.analyzer.Analyze(title)

	lower := strings.ToLower(title)
	custom := 0
	var matched []string
	for _, e := range s.lexicon.Entries() {
		if strings.Contains(lower, e.Term) {
			custom += e.Weight
			matched = append(matched, e.Term)
		}
	}

	keywords := dedupKeywords(base.Positive, base.Negative, matched)

	return ScoreResult{
		Base:     base.Score,
		Custom:   custom,
		Score:    base.Score + custom,
		Keywords: keywords,
	}
}

// BaseScore runs only the base analyzer and returns its score.
func (s *Scorer) BaseScore(text string) int {
	return s.analyzer.Analyze(text).Score
}

func dedupKeywords(lists ...[]string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, list := range lists {
		for _, k := range list {
			if len(k) <= 3 {
				continue
			}
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, k)
		}
	}
	return out
}
