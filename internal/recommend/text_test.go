// Cinema Movie Booking System - Movie Recommendation Service
// Copyright 2026 Louis Pang
// SPDX-License-Identifier: MIT
// https://github.com/louispang03/Recommendation-cinema-movie-booking-system

package recommend

import (
	"math"
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "lowercases and splits",
			text: "Dream-Sharing Technology",
			want: []string{"dream", "sharing", "technology"},
		},
		{
			name: "drops single characters",
			text: "a I x hacker",
			want: []string{"hacker"},
		},
		{
			name: "drops stop words",
			text: "the matrix is a computer simulation",
			want: []string{"matrix", "computer", "simulation"},
		},
		{
			name: "keeps digits and underscores",
			text: "blade_runner 2049",
			want: []string{"blade_runner", "2049"},
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenize(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("tokenize(%q) = %v; want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTFIDFIdenticalDocuments(t *testing.T) {
	docs := []string{
		"space adventure through wormhole",
		"space adventure through wormhole",
	}

	vectors := tfidfVectors(docs, 5000)
	sim := cosine(vectors[0], vectors[1])

	if math.Abs(sim-1.0) > 1e-9 {
		t.Errorf("cosine of identical documents = %v; want 1.0", sim)
	}
}

func TestTFIDFDisjointDocuments(t *testing.T) {
	docs := []string{
		"gotham batman joker",
		"wormhole spacecraft farmland",
	}

	vectors := tfidfVectors(docs, 5000)
	if sim := cosine(vectors[0], vectors[1]); sim != 0 {
		t.Errorf("cosine of disjoint documents = %v; want 0", sim)
	}
}

func TestTFIDFPartialOverlap(t *testing.T) {
	docs := []string{
		"hacker discovers simulated reality",
		"hacker fights simulated agents",
		"romantic comedy wedding",
	}

	vectors := tfidfVectors(docs, 5000)
	related := cosine(vectors[0], vectors[1])
	unrelated := cosine(vectors[0], vectors[2])

	if related <= 0 {
		t.Errorf("related documents similarity = %v; want > 0", related)
	}
	if unrelated != 0 {
		t.Errorf("unrelated documents similarity = %v; want 0", unrelated)
	}
	if related <= unrelated {
		t.Errorf("related (%v) should exceed unrelated (%v)", related, unrelated)
	}
}

func TestTFIDFVectorsAreNormalized(t *testing.T) {
	docs := []string{"batman fights joker gotham", "joker chaos gotham city streets"}

	for i, vec := range tfidfVectors(docs, 5000) {
		var norm float64
		for _, w := range vec {
			norm += w * w
		}
		if math.Abs(math.Sqrt(norm)-1.0) > 1e-9 {
			t.Errorf("vector %d norm = %v; want 1.0", i, math.Sqrt(norm))
		}
	}
}

func TestTFIDFMaxFeatures(t *testing.T) {
	// With a one-term cap, only the most frequent term survives.
	docs := []string{"joker joker joker batman", "joker batman gotham"}

	vectors := tfidfVectors(docs, 1)
	for i, vec := range vectors {
		if len(vec) > 1 {
			t.Errorf("vector %d has %d terms; want at most 1", i, len(vec))
		}
	}
	// Both documents contain the surviving term, so similarity is 1.
	if sim := cosine(vectors[0], vectors[1]); math.Abs(sim-1.0) > 1e-9 {
		t.Errorf("cosine = %v; want 1.0", sim)
	}
}

func TestTFIDFDegenerateInput(t *testing.T) {
	tests := []struct {
		name string
		docs []string
	}{
		{name: "no documents", docs: nil},
		{name: "empty documents", docs: []string{"", ""}},
		{name: "stop words only", docs: []string{"the a of", "is was were"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vectors := tfidfVectors(tt.docs, 5000)
			if len(vectors) != len(tt.docs) {
				t.Fatalf("len(vectors) = %d; want %d", len(vectors), len(tt.docs))
			}
			for i, vec := range vectors {
				if len(vec) != 0 {
					t.Errorf("vector %d = %v; want empty", i, vec)
				}
			}
		})
	}
}
