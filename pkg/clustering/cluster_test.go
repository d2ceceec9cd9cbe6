package clustering

import (
	"strings"
	"testing"
)

func doc(id, text string) Document {
	return Document{ID: id, Text: text, Sentiment: "neutral"}
}

func TestRunSingletonFallback(t *testing.T) {
	docs := []Document{
		doc("a", "battery overheating complaints continue"),
		doc("b", "excellent customer service experience"),
		doc("c", "quarterly earnings beat expectations"),
	}

	clusters := Run(docs, 5, DefaultConfig())

	if len(clusters) != len(docs) {
		t.Fatalf("got %d clusters, want %d singletons", len(clusters), len(docs))
	}
	for i, c := range clusters {
		wantTopic := "Topic " + string(rune('1'+i))
		if c.Topic != wantTopic {
			t.Errorf("cluster %d topic = %q, want %q", i, c.Topic, wantTopic)
		}
		if len(c.MemberIDs) != 1 {
			t.Errorf("cluster %d has %d members, want 1", i, len(c.MemberIDs))
		}
		if len(c.Keywords) == 0 {
			t.Errorf("cluster %d has no keywords", i)
		}
	}
}

func TestRunMergesIdenticalSignatures(t *testing.T) {
	text := "battery overheating failure reported widely"
	docs := []Document{
		doc("a", text),
		doc("b", text),
		doc("c", text),
		doc("d", text),
		doc("e", text),
	}

	clusters := Run(docs, 3, DefaultConfig())

	if len(clusters) != 1 {
		t.Fatalf("got %d clusters, want 1 merged cluster", len(clusters))
	}
	if len(clusters[0].MemberIDs) != len(docs) {
		t.Errorf("merged cluster has %d members, want %d", len(clusters[0].MemberIDs), len(docs))
	}
	if clusters[0].Sentiment["neutral"] != len(docs) {
		t.Errorf("sentiment tally = %v, want all %d neutral", clusters[0].Sentiment, len(docs))
	}
}

func TestRunCapsClusterCount(t *testing.T) {
	// Six documents with disjoint vocabularies cannot share clusters.
	docs := []Document{
		doc("a", "alpha avocado anchor animal axle"),
		doc("b", "bravo banana basket bubble binge"),
		doc("c", "cargo coconut candle circle crane"),
		doc("d", "delta dolphin danger donate dizzy"),
		doc("e", "echo elephant engine estate eager"),
		doc("f", "fancy falcon frozen funnel flute"),
	}

	clusters := Run(docs, 3, DefaultConfig())

	if len(clusters) != 3 {
		t.Fatalf("got %d clusters, want trim to 3", len(clusters))
	}
}

func TestRunOrdersBySize(t *testing.T) {
	shared := "battery overheating failure widespread"
	docs := []Document{
		doc("a", shared),
		doc("b", shared),
		doc("c", shared),
		doc("d", "unrelated shipping delay complaint"),
		doc("e", "another unrelated pricing question"),
	}

	clusters := Run(docs, 5, DefaultConfig())

	if len(clusters) < 2 {
		t.Fatalf("got %d clusters, want at least 2", len(clusters))
	}
	if len(clusters[0].MemberIDs) < len(clusters[1].MemberIDs) {
		t.Errorf("clusters not ordered by size: %d before %d",
			len(clusters[0].MemberIDs), len(clusters[1].MemberIDs))
	}
	if len(clusters[0].MemberIDs) != 3 {
		t.Errorf("largest cluster has %d members, want 3", len(clusters[0].MemberIDs))
	}
}

func TestRunLabelJoinsTopKeywords(t *testing.T) {
	text := "battery overheating failure widespread reports"
	docs := []Document{
		doc("a", text), doc("b", text), doc("c", text), doc("d", text),
	}

	clusters := Run(docs, 2, DefaultConfig())
	if len(clusters) == 0 {
		t.Fatal("no clusters returned")
	}

	parts := strings.Split(clusters[0].Topic, " • ")
	if len(parts) > DefaultConfig().LabelKeywords {
		t.Errorf("label %q has %d parts, want at most %d",
			clusters[0].Topic, len(parts), DefaultConfig().LabelKeywords)
	}
	for _, p := range parts {
		if p == "" {
			t.Errorf("label %q contains empty keyword", clusters[0].Topic)
		}
	}
}

func TestRunEmptyInput(t *testing.T) {
	if got := Run(nil, 5, DefaultConfig()); got != nil {
		t.Errorf("Run(nil) = %v, want nil", got)
	}
	if got := Run([]Document{doc("a", "something")}, 0, DefaultConfig()); got != nil {
		t.Errorf("Run(k=0) = %v, want nil", got)
	}
}

func TestJaccard(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want float64
	}{
		{"identical", []string{"x", "y"}, []string{"x", "y"}, 1},
		{"disjoint", []string{"x"}, []string{"y"}, 0},
		{"half overlap", []string{"x", "y"}, []string{"y", "z"}, 1.0 / 3.0},
		{"both empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := jaccard(tt.a, tt.b); got != tt.want {
				t.Errorf("jaccard(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestTokenizeTerms(t *testing.T) {
	terms := tokenizeTerms("The battery IS overheating at 100 degrees, say users!")

	want := map[string]bool{"battery": true, "overheating": true, "degrees": true, "users": true}
	if len(terms) != len(want) {
		t.Fatalf("tokenizeTerms = %v, want terms %v", terms, want)
	}
	for _, term := range terms {
		if !want[term] {
			t.Errorf("unexpected term %q", term)
		}
	}
}
