package rank_test

import (
	"fmt"

	"github.com/chriscorrea/mindmap/internal/lexical"
	"github.com/chriscorrea/mindmap/internal/rank"
)

func ExampleNewRanker() {
	tokens := [][]string{
		{"điện", "gió"},
		{"điện", "gió", "mặt", "trời"},
		{"mặt", "trời"},
	}
	docs := make([]rank.Document, len(tokens))
	for i, t := range tokens {
		docs[i] = rank.Document{Index: i, Tokens: t, WordCount: len(t)}
	}

	ranker := rank.NewRanker(rank.Centrality)
	ordered := ranker.Rank(docs, lexical.WordFrequency(tokens))
	fmt.Println(ordered[0].Index)
	// Output: 1
}
