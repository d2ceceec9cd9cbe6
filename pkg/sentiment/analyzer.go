package sentiment

import (
	"math"
	"strings"

	"github.com/jonreiter/govader"
)

// Label assignment cut-offs: a combined score must exceed these strictly,
// so a score of exactly 0.1 is still neutral.
const (
	positiveCutoff = 0.1
	negativeCutoff = -0.1
)

type analyzer struct {
	vader *govader.SentimentIntensityAnalyzer
}

// New returns an Analyzer combining a valence-lexicon sum with a VADER-style
// token classifier by arithmetic mean.
func New() Analyzer {
	return &analyzer{vader: govader.NewSentimentIntensityAnalyzer()}
}

func (a *analyzer) Score(text string) (res Result) {
	// Any internal scoring fault degrades to neutral.
	defer func() {
		if r := recover(); r != nil {
			res = Result{Label: LabelNeutral}
		}
	}()

	if strings.TrimSpace(text) == "" {
		return Result{Label: LabelNeutral}
	}

	// Signal 1: lexicon sum, normalized from an unbounded integer range.
	lexScore := normalizeLexiconScore(lexiconSum(text))

	// Signal 2: token classifier, already roughly in [-1, 1].
	vaderScore := a.vader.PolarityScores(text).Compound

	combined := round3((lexScore + vaderScore) / 2)

	label := LabelNeutral
	switch {
	case combined > positiveCutoff:
		label = LabelPositive
	case combined < negativeCutoff:
		label = LabelNegative
	}

	return Result{
		Label:      label,
		Score:      combined,
		Confidence: round3(math.Abs(combined)),
	}
}

// normalizeLexiconScore maps a raw valence sum (roughly -10..+10 for short
// texts, unbounded in general) into [-1, 1].
func normalizeLexiconScore(sum int) float64 {
	return math.Max(-1, math.Min(1, float64(sum)/10))
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
