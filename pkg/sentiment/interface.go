package sentiment

// Analyzer scores free text for sentiment. Implementations are pure: no I/O,
// no shared mutable state, and a scoring failure degrades to a neutral result
// instead of propagating.
type Analyzer interface {
	Score(text string) Result
}

// Result is the outcome of scoring one piece of text.
type Result struct {
	Label      string  // positive, negative or neutral
	Score      float64 // combined score in [-1, 1]
	Confidence float64 // |Score|
}

// Sentiment labels.
const (
	LabelPositive = "positive"
	LabelNegative = "negative"
	LabelNeutral  = "neutral"
)
