// Package clustering groups mentions into topics by TF-IDF keyword overlap.
//
// The algorithm is a greedy single-pass partition: each unassigned document
// seeds a cluster and absorbs every later unassigned document whose keyword
// signature overlaps the seed's beyond a Jaccard threshold. It is cheap,
// deterministic and good enough for dashboard-grade topic grouping.
package clustering

import (
	"fmt"
	"sort"
	"strings"
)

func label(keywords []string, limit int) string {
	if len(keywords) > limit {
		keywords = keywords[:limit]
	}
	return strings.Join(keywords, " • ")
}

// Document is one clusterable item.
type Document struct {
	ID        string
	Text      string
	Sentiment string
}

// Cluster is one topic group emitted by a clustering pass.
type Cluster struct {
	Topic     string
	Keywords  []string
	MemberIDs []string
	Sentiment map[string]int
}

// Config carries the clustering tunables. The overlap threshold ships with
// the empirically tuned default from the original deployment.
type Config struct {
	// OverlapThreshold is the minimum Jaccard overlap between keyword
	// signatures for two documents to share a cluster.
	OverlapThreshold float64
	// SignatureSize is how many top-weighted terms form a document signature.
	SignatureSize int
	// ClusterKeywords is how many seed keywords a cluster keeps.
	ClusterKeywords int
	// LabelKeywords is how many keywords make up the topic label.
	LabelKeywords int
}

// DefaultConfig returns the standard clustering tunables.
func DefaultConfig() Config {
	return Config{
		OverlapThreshold: 0.3,
		SignatureSize:    10,
		ClusterKeywords:  5,
		LabelKeywords:    3,
	}
}

// Run partitions docs into at most k clusters, largest first. When the
// sample is smaller than k every document becomes its own cluster.
func Run(docs []Document, k int, cfg Config) []Cluster {
	if len(docs) == 0 || k <= 0 {
		return nil
	}

	if len(docs) < k {
		return singletons(docs, cfg)
	}

	texts := make([]string, len(docs))
	for i, d := range docs {
		texts[i] = d.Text
	}
	signatures := tfidfSignatures(texts, cfg.SignatureSize)

	var clusters []Cluster
	assigned := make([]bool, len(docs))

	for i, doc := range docs {
		if assigned[i] {
			continue
		}
		assigned[i] = true

		keywords := signatures[i]
		if len(keywords) > cfg.ClusterKeywords {
			keywords = keywords[:cfg.ClusterKeywords]
		}

		cluster := Cluster{
			Keywords:  keywords,
			MemberIDs: []string{doc.ID},
			Sentiment: map[string]int{doc.Sentiment: 1},
		}

		for j := i + 1; j < len(docs); j++ {
			if assigned[j] {
				continue
			}
			if jaccard(signatures[i], signatures[j]) > cfg.OverlapThreshold {
				assigned[j] = true
				cluster.MemberIDs = append(cluster.MemberIDs, docs[j].ID)
				cluster.Sentiment[docs[j].Sentiment]++
			}
		}

		cluster.Topic = label(cluster.Keywords, cfg.LabelKeywords)
		clusters = append(clusters, cluster)
	}

	// Largest clusters first; stable so ties keep encounter order.
	sort.SliceStable(clusters, func(a, b int) bool {
		return len(clusters[a].MemberIDs) > len(clusters[b].MemberIDs)
	})

	if len(clusters) > k {
		clusters = clusters[:k]
	}
	return clusters
}

func singletons(docs []Document, cfg Config) []Cluster {
	clusters := make([]Cluster, len(docs))
	for i, d := range docs {
		clusters[i] = Cluster{
			Topic:     fmt.Sprintf("Topic %d", i+1),
			Keywords:  extractKeywords(d.Text, cfg.LabelKeywords),
			MemberIDs: []string{d.ID},
			Sentiment: map[string]int{d.Sentiment: 1},
		}
	}
	return clusters
}

// jaccard computes |A∩B| / |A∪B| over two keyword signatures.
func jaccard(a, b []string) float64 {
	setA := make(map[string]struct{}, len(a))
	for _, t := range a {
		setA[t] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, t := range b {
		setB[t] = struct{}{}
	}

	intersection := 0
	for t := range setA {
		if _, ok := setB[t]; ok {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
