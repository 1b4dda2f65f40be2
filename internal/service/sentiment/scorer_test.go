package sentiment

import "testing"

func newTestScorer() *Scorer {
	return NewScorer(NewAnalyzer(), NewLexicon())
}

func TestScoreBullishHeadline(t *testing.T) {
	s := newTestScorer()

	res := s.Score("Company stock beating expectations, strong buy rating")

	// "beating" (+4), "strong buy" (+5) and the overlapping "buy" (+4)
	// all contribute to the lexicon score.
	if res.Custom != 13 {
		t.Errorf("custom score = %d, want 13", res.Custom)
	}
	if res.Score != res.Base+res.Custom {
		t.Errorf("score = %d, want base %d + custom %d", res.Score, res.Base, res.Custom)
	}

	hasKeyword := func(k string) bool {
		for _, kw := range res.Keywords {
			if kw == k {
				return true
			}
		}
		return false
	}
	if !hasKeyword("beating") {
		t.Errorf("keywords %v missing 'beating'", res.Keywords)
	}
	if !hasKeyword("strong buy") {
		t.Errorf("keywords %v missing 'strong buy'", res.Keywords)
	}
	if hasKeyword("buy") {
		t.Errorf("keywords %v should exclude short term 'buy'", res.Keywords)
	}
}

func TestScoreBearishHeadline(t *testing.T) {
	s := newTestScorer()

	res := s.Score("Shares crash after bankruptcy warning")

	// "crash" (-4), "bankruptcy" (-5), "warning" (-2)
	if res.Custom != -11 {
		t.Errorf("custom score = %d, want -11", res.Custom)
	}
	if res.Score >= 0 {
		t.Errorf("score = %d, want negative", res.Score)
	}
}

func TestScoreNeutralHeadline(t *testing.T) {
	s := newTestScorer()

	res := s.Score("Quarterly report scheduled for Tuesday")
	if res.Score != 0 {
		t.Errorf("score = %d, want 0", res.Score)
	}
	if len(res.Keywords) != 0 {
		t.Errorf("keywords = %v, want none", res.Keywords)
	}
}

func TestLexiconLastWinsOnDuplicates(t *testing.T) {
	lex := NewLexicon()

	// "reduce" appears twice in the source table; the later weight wins.
	if w, ok := lex.Weight("reduce"); !ok || w != -2 {
		t.Errorf("reduce weight = %d (present=%v), want -2", w, ok)
	}
	if w, ok := lex.Weight("buy"); !ok || w != 4 {
		t.Errorf("buy weight = %d (present=%v), want 4", w, ok)
	}
	if w, ok := lex.Weight("rally"); !ok || w != 3 {
		t.Errorf("rally weight = %d (present=%v), want 3", w, ok)
	}
	if w, ok := lex.Weight("bankruptcy"); !ok || w != -5 {
		t.Errorf("bankruptcy weight = %d (present=%v), want -5", w, ok)
	}
}

func TestLexiconUppercaseEntriesNeverMatch(t *testing.T) {
	s := newTestScorer()

	res := s.Score("ROI and IPO news for the quarter")
	for _, k := range res.Keywords {
		if k == "ROI" || k == "IPO" {
			t.Errorf("uppercase lexicon term %q matched lowercased headline", k)
		}
	}
}

func TestAnalyzerTokenization(t *testing.T) {
	a := NewAnalyzer()

	res := a.Analyze("Strong results, strong outlook!")
	// Both "strong" tokens count independently.
	if res.Score != 4 {
		t.Errorf("score = %d, want 4", res.Score)
	}
	if len(res.Positive) != 2 {
		t.Errorf("positive = %v, want two entries", res.Positive)
	}
}
