package sentiment

import "strings"

// Analysis holds the result of running the base analyzer over a text.
type Analysis struct {
	Score       int
	Comparative float64
	Positive    []string
	Negative    []string
}

// Analyzer scores text with a general-purpose valence word list.
// Each token contributes its valence independently; unknown tokens score zero.
type Analyzer struct {
	valence map[string]int
}

// NewAnalyzer creates an analyzer with the default valence list.
func NewAnalyzer() *Analyzer {
	return &Analyzer{valence: defaultValence}
}

// Analyze tokenizes text and sums per-token valences.
func (a *Analyzer) Analyze(text string) Analysis {
	tokens := tokenize(text)
	res := Analysis{
		Positive: []string{},
		Negative: []string{},
	}

	for _, tok := range tokens {
		w, ok := a.valence[tok]
		if !ok {
			continue
		}
		res.Score += w
		if w > 0 {
			res.Positive = append(res.Positive, tok)
		} else if w < 0 {
			res.Negative = append(res.Negative, tok)
		}
	}

	if len(tokens) > 0 {
		res.Comparative = float64(res.Score) / float64(len(tokens))
	}
	return res
}

// tokenize lowercases and splits on anything that is not a letter or digit.
func tokenize(text string) []string {
	lower := strings.ToLower(text)
	return strings.FieldsFunc(lower, func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z':
			return false
		case r >= '0' && r <= '9':
			return false
		default:
			return true
		}
	})
}

// defaultValence is an AFINN-style list trimmed to vocabulary that shows up
// in financial headlines.
var defaultValence = map[string]int{
	// positive
	"achieve": 2, "advance": 1, "ambitious": 2, "approval": 2, "approved": 2,
	"award": 3, "awarded": 3, "beat": 2, "benefit": 2, "best": 3,
	"better": 2, "big": 1, "boost": 2, "bright": 1, "brilliant": 4,
	"calm": 2, "champion": 2, "clever": 2, "confident": 2, "celebrate": 3,
	"dream": 1, "eager": 2, "easy": 1, "excellent": 3, "exceptional": 3,
	"excited": 3, "expand": 1, "fantastic": 4, "favorite": 2, "fine": 2,
	"free": 1, "fresh": 1, "gains": 2, "glad": 3, "good": 3,
	"grand": 3, "great": 3, "greater": 3, "happy": 3, "healthy": 2,
	"help": 2, "hope": 2, "hopeful": 2, "huge": 1, "impressive": 3,
	"improve": 2, "improved": 2, "increase": 1, "innovative": 2, "interesting": 2,
	"keen": 1, "launch": 1, "lead": 1, "leading": 2, "like": 2,
	"love": 3, "lucrative": 3, "nice": 3, "optimistic": 2, "outstanding": 5,
	"perfect": 3, "popular": 3, "positive": 2, "powerful": 2, "progress": 2,
	"promising": 2, "prosperous": 3, "proud": 2, "reach": 1, "ready": 1,
	"recover": 2, "recovery": 2, "reward": 2, "robust": 2, "safe": 1,
	"secure": 2, "significant": 1, "smart": 1, "solid": 2, "stable": 2,
	"steady": 2, "strength": 2, "strong": 2, "stronger": 2, "succeed": 3,
	"success": 2, "successful": 3, "super": 3, "superior": 2, "top": 2,
	"tremendous": 4, "triumph": 4, "up": 1, "upbeat": 2, "useful": 2,
	"vibrant": 3, "viable": 2, "victory": 3, "welcome": 2, "win": 4,
	"winner": 4, "winning": 4, "wonderful": 4, "worthy": 2,

	// negative
	"abandon": -2, "afraid": -2, "alarming": -2, "anger": -3, "anxious": -2,
	"awful": -3, "bad": -3, "blame": -2, "block": -1, "breach": -2,
	"broke": -1, "broken": -1, "burden": -2, "cancel": -1, "cancelled": -1,
	"chaos": -2, "chaotic": -2, "charged": -3, "cheat": -3, "collapse": -2,
	"conflict": -2, "crisis": -3, "critical": -2, "damage": -3, "danger": -2,
	"dead": -3, "debt": -2, "deficit": -2, "delay": -1, "denied": -2,
	"deny": -2, "difficult": -1, "dispute": -2, "doubt": -1, "down": -1,
	"downside": -2, "dropped": -1, "fail": -2, "failed": -2, "falling": -1,
	"fear": -2, "fired": -2, "flawed": -2, "fraud": -4, "frustrated": -2,
	"grim": -2, "halt": -1, "hard": -1, "harm": -2, "hurt": -2,
	"illegal": -3, "investigation": -2, "lack": -2, "lawsuit": -2, "layoff": -2,
	"layoffs": -2, "limited": -1, "lose": -3, "losing": -3, "lost": -3,
	"low": -1, "lower": -1, "miss": -2, "missed": -2, "mistake": -2,
	"negative": -2, "no": -1, "panic": -3, "penalty": -2, "poor": -2,
	"probe": -2, "problem": -2, "problems": -2, "recession": -2, "reject": -1,
	"rejected": -1, "sad": -2, "scandal": -3, "severe": -2, "slow": -2,
	"slowdown": -2, "struggle": -2, "struggling": -2, "stuck": -2, "suffer": -2,
	"sued": -2, "suspicious": -2, "terrible": -3, "trouble": -2, "turmoil": -2,
	"uncertain": -2, "uncertainty": -2, "unstable": -2, "violation": -2,
	"weak": -2, "weaker": -2, "worried": -3, "worry": -3, "worse": -3,
	"worst": -3, "wrong": -2,
}
