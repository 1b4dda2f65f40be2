package sentiment

// LexEntry pairs a financial term with its signed weight.
type LexEntry struct {
	Term   string
	Weight int
}

// defaultLexicon lists financial terms layered on top of the base analyzer.
// Terms may overlap ("buy" and "strong buy" both match a "strong buy" headline)
// and the overlap is intentional. Matching is substring over the lowercased
// headline, so uppercase entries like "ROI" never match.
var defaultLexicon = []LexEntry{
	// strong positive
	{"beating", 4}, {"surge", 4}, {"plunge", -4}, {"rally", 3}, {"boom", 4}, {"soar", 4},
	{"breakthrough", 4}, {"skyrocket", 5}, {"explode", 4}, {"dominance", 3},
	{"revolution", 4}, {"game-changer", 4}, {"unstoppable", 4}, {"phenomenal", 4},

	// moderate positive
	{"comeback", 2}, {"growth", 2}, {"profit", 2}, {"gain", 2}, {"rise", 2},
	{"record", 2}, {"innovation", 2}, {"leader", 2}, {"momentum", 2}, {"upside", 2},
	{"potential", 2}, {"opportunity", 2}, {"advantage", 2}, {"strengthen", 2},

	// fundamentals
	{"dividend", 2}, {"yield", 1}, {"premium", 1}, {"valuation", 1}, {"earnings", 2},
	{"revenue", 2}, {"margin", 2}, {"ROI", 2}, {"P/E", 1}, {"cashflow", 2},
	{"balance sheet", 1}, {"liquidity", 1}, {"solvency", 1}, {"efficiency", 1},

	// strong negative
	{"crash", -4}, {"collapse", -5}, {"meltdown", -4}, {"disaster", -4},
	{"catastrophe", -5}, {"doomed", -4}, {"failure", -3}, {"bankruptcy", -5},

	// moderate negative
	{"drop", -2}, {"fall", -2}, {"loss", -2}, {"decline", -2}, {"slump", -2},
	{"dip", -1}, {"volatile", -2}, {"risk", -2}, {"warning", -2}, {"cut", -2},
	{"reduce", -1}, {"short", -3}, {"overvalued", -2}, {"weakness", -2},
	{"threat", -2}, {"concern", -1}, {"challenge", -1}, {"pressure", -1},

	// market sentiment indicators
	{"bullish", 3}, {"bearish", -3}, {"neutral", 0}, {"buy", 4}, {"sell", -4},
	{"hold", 0}, {"outperform", 3}, {"underperform", -3}, {"upgrade", 3},
	{"downgrade", -3}, {"recommend", 2}, {"avoid", -3}, {"overweight", 2},
	{"underweight", -2}, {"target", 1}, {"accumulate", 2}, {"reduce", -2},

	// technical analysis terms
	{"support", 1}, {"resistance", -1}, {"breakout", 2}, {"breakdown", -2},
	{"trend", 1}, {"reversal", 0}, {"consolidation", 0}, {"oversold", 1},
	{"overbought", -1}, {"rally", 3}, {"correction", -2}, {"rebound", 2},

	// corporate actions
	{"split", 1}, {"merger", 1}, {"acquisition", 1}, {"spin-off", 0},
	{"bankruptcy", -5}, {"delisting", -4}, {"IPO", 1}, {"SPAC", 0},

	// analyst ratings
	{"strong buy", 5}, {"buy", 4}, {"outperform", 3}, {"hold", 0},
	{"underperform", -3}, {"sell", -4}, {"strong sell", -5},
}

// Lexicon is a deduplicated, ordered term table. Duplicate terms keep their
// first position and last weight.
type Lexicon struct {
	entries []LexEntry
}

// NewLexicon builds the default financial lexicon.
func NewLexicon() *Lexicon {
	return newLexicon(defaultLexicon)
}

func newLexicon(raw []LexEntry) *Lexicon {
	idx := make(map[string]int, len(raw))
	entries := make([]LexEntry, 0, len(raw))
	for _, e := range raw {
		if i, ok := idx[e.Term]; ok {
			entries[i].Weight = e.Weight
			continue
		}
		idx[e.Term] = len(entries)
		entries = append(entries, e)
	}
	return &Lexicon{entries: entries}
}

// Entries returns the ordered entries.
func (l *Lexicon) Entries() []LexEntry {
	return l.entries
}

// Weight returns the weight of a term and whether it is present.
func (l *Lexicon) Weight(term string) (int, bool) {
	for _, e := range l.entries {
		if e.Term == term {
			return e.Weight, true
		}
	}
	return 0, false
}
