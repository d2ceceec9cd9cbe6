package sentiment

import "strings"

// lexiconSum tokenizes text and sums the valence of every known word.
func lexiconSum(text string) int {
	sum := 0
	for _, token := range tokenize(text) {
		sum += valences[token]
	}
	return sum
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') && r != '\''
	})
}

// valences is a compact AFINN-style word valence table, -5 (most negative)
// to +5 (most positive), covering the vocabulary that dominates brand
// mentions in news and social feeds.
var valences = map[string]int{
	// strongly positive
	"amazing": 4, "awesome": 4, "breathtaking": 5, "brilliant": 4,
	"excellent": 3, "exceptional": 4, "extraordinary": 4, "fabulous": 4,
	"fantastic": 4, "flawless": 4, "incredible": 4, "magnificent": 4,
	"masterpiece": 4, "outstanding": 5, "perfect": 3, "phenomenal": 4,
	"stunning": 4, "superb": 5, "thrilled": 5, "wonderful": 4, "wow": 4,

	// positive
	"achievement": 3, "admire": 3, "appealing": 2, "approval": 2,
	"attractive": 2, "beautiful": 3, "benefit": 2, "best": 3, "better": 2,
	"boost": 2, "celebrate": 3, "confident": 2, "convenient": 2, "delight": 3,
	"dependable": 2, "durable": 2, "easy": 1, "effective": 2, "efficient": 2,
	"enjoy": 2, "excited": 3, "favorite": 2, "fresh": 1, "friendly": 2,
	"gain": 2, "glad": 3, "good": 3, "grateful": 3, "great": 3, "growth": 2,
	"happy": 3, "helpful": 2, "hope": 2, "impressed": 3, "impressive": 3,
	"improve": 2, "improvement": 2, "innovative": 2, "launch": 1, "like": 2,
	"love": 3, "loyal": 3, "nice": 3, "pleased": 3, "popular": 3,
	"profit": 2, "progress": 2, "promising": 2, "quality": 2, "recommend": 2,
	"reliable": 2, "rise": 1, "robust": 2, "satisfied": 2, "secure": 2,
	"smooth": 2, "solid": 2, "strong": 2, "succeed": 3, "success": 2,
	"successful": 3, "support": 2, "surge": 1, "thank": 2, "thanks": 2,
	"top": 2, "trust": 1, "upgrade": 2, "useful": 2, "value": 1, "win": 4,
	"winner": 4, "worth": 2,

	// negative
	"accident": -2, "angry": -3, "annoyed": -2, "anxious": -2, "bad": -3,
	"ban": -2, "blame": -2, "breach": -2, "broken": -1, "bug": -2,
	"cancel": -1, "cheap": -1, "complaint": -2, "concern": -2, "crash": -2,
	"crisis": -3, "criticism": -2, "damage": -3, "decline": -2, "defect": -3,
	"delay": -1, "disappointed": -2, "disappointing": -2, "dispute": -2,
	"doubt": -1, "drop": -1, "expensive": -2, "fail": -2, "failure": -2,
	"fake": -3, "fall": -2, "fault": -2, "fear": -2, "fine": -2, "fired": -2,
	"flaw": -2, "fraud": -4, "glitch": -2, "hate": -3, "issue": -2,
	"lawsuit": -2, "layoff": -2, "leak": -1, "lose": -3, "loss": -3,
	"mislead": -3, "mistake": -2, "outage": -2, "overpriced": -2,
	"penalty": -2, "poor": -2, "problem": -2, "protest": -2, "recall": -2,
	"refund": -1, "regret": -2, "reject": -1, "risk": -2, "sad": -2,
	"scam": -4, "scandal": -3, "shortage": -2, "slow": -2, "strike": -1,
	"struggle": -2, "sue": -3, "suspend": -1, "terrible": -3, "threat": -2,
	"trouble": -2, "ugly": -3, "unhappy": -2, "unreliable": -2, "upset": -2,
	"violation": -2, "warn": -2, "warning": -3, "waste": -1, "weak": -2,
	"worry": -3, "worse": -3, "worst": -3, "wrong": -2,

	// strongly negative
	"catastrophe": -4, "catastrophic": -4, "disaster": -2, "disastrous": -3,
	"horrible": -3, "horrendous": -3, "nightmare": -3, "toxic": -3,
	"bankrupt": -3, "bankruptcy": -3, "corrupt": -3, "corruption": -3,
}
