// Cinema Movie Booking System - Movie Recommendation Service
// Copyright 2026 Louis Pang
// SPDX-License-Identifier: MIT
// https://github.com/louispang03/Recommendation-cinema-movie-booking-system

package recommend

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// englishStopWords are excluded from TF-IDF documents.
var englishStopWords = map[string]struct{}{}

func init() {
	words := []string{
		"a", "about", "above", "across", "after", "afterwards", "again", "against",
		"all", "almost", "alone", "along", "already", "also", "although", "always",
		"am", "among", "amongst", "amount", "an", "and", "another", "any", "anyhow",
		"anyone", "anything", "anyway", "anywhere", "are", "around", "as", "at",
		"back", "be", "became", "because", "become", "becomes", "becoming", "been",
		"before", "beforehand", "behind", "being", "below", "beside", "besides",
		"between", "beyond", "both", "bottom", "but", "by", "call", "can", "cannot",
		"could", "did", "do", "does", "doing", "done", "down", "due", "during",
		"each", "eight", "either", "eleven", "else", "elsewhere", "empty", "enough",
		"even", "ever", "every", "everyone", "everything", "everywhere", "except",
		"few", "fifteen", "fifty", "fill", "find", "fire", "first", "five", "for",
		"former", "formerly", "forty", "found", "four", "from", "front", "full",
		"further", "get", "give", "go", "had", "has", "have", "he", "hence", "her",
		"here", "hereafter", "hereby", "herein", "hereupon", "hers", "herself",
		"him", "himself", "his", "how", "however", "hundred", "i", "if", "in",
		"indeed", "into", "is", "it", "its", "itself", "keep", "last", "latter",
		"latterly", "least", "less", "made", "many", "may", "me", "meanwhile",
		"might", "mine", "more", "moreover", "most", "mostly", "move", "much",
		"must", "my", "myself", "name", "namely", "neither", "never",
		"nevertheless", "next", "nine", "no", "nobody", "none", "nor", "not",
		"nothing", "now", "nowhere", "of", "off", "often", "on", "once", "one",
		"only", "onto", "or", "other", "others", "otherwise", "our", "ours",
		"ourselves", "out", "over", "own", "part", "per", "perhaps", "please",
		"put", "rather", "re", "same", "see", "seem", "seemed", "seeming", "seems",
		"serious", "several", "she", "should", "show", "side", "since", "six",
		"sixty", "so", "some", "somehow", "someone", "something", "sometime",
		"sometimes", "somewhere", "still", "such", "ten", "than", "that", "the",
		"their", "them", "themselves", "then", "thence", "there", "thereafter",
		"thereby", "therefore", "therein", "thereupon", "these", "they", "third",
		"this", "those", "though", "three", "through", "throughout", "thru",
		"thus", "to", "together", "too", "top", "toward", "towards", "twelve",
		"twenty", "two", "under", "until", "up", "upon", "us", "very", "via",
		"was", "we", "well", "were", "what", "whatever", "when", "whence",
		"whenever", "where", "whereafter", "whereas", "whereby", "wherein",
		"whereupon", "wherever", "whether", "which", "while", "whither", "who",
		"whoever", "whole", "whom", "whose", "why", "will", "with", "within",
		"without", "would", "yet", "you", "your", "yours", "yourself",
		"yourselves",
	}
	for _, w := range words {
		englishStopWords[w] = struct{}{}
	}
}

// tokenize lowercases the text and extracts tokens of two or more word
// characters, dropping English stop words.
func tokenize(text string) []string {
	text = strings.ToLower(text)

	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() >= 2 {
			token := current.String()
			if _, stop := englishStopWords[token]; !stop {
				tokens = append(tokens, token)
			}
		}
		current.Reset()
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			current.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return tokens
}

// tfidfVectors builds L2-normalized TF-IDF vectors for the given documents.
// The vocabulary is capped at maxFeatures terms, taking the terms with the
// highest total corpus frequency (alphabetical order breaks ties). IDF is
// smoothed: idf(t) = ln((1+n)/(1+df(t))) + 1. Vectors are sparse maps from
// vocabulary index to weight; degenerate documents yield empty vectors.
func tfidfVectors(documents []string, maxFeatures int) []map[int]float64 {
	n := len(documents)
	vectors := make([]map[int]float64, n)
	for i := range vectors {
		vectors[i] = map[int]float64{}
	}
	if n == 0 {
		return vectors
	}

	// Term counts per document and across the corpus.
	docCounts := make([]map[string]int, n)
	corpusCounts := make(map[string]int)
	for i, doc := range documents {
		counts := make(map[string]int)
		for _, token := range tokenize(doc) {
			counts[token]++
			corpusCounts[token]++
		}
		docCounts[i] = counts
	}

	if len(corpusCounts) == 0 {
		return vectors
	}

	// Select the vocabulary: highest corpus frequency first.
	terms := make([]string, 0, len(corpusCounts))
	for term := range corpusCounts {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(a, b int) bool {
		if corpusCounts[terms[a]] != corpusCounts[terms[b]] {
			return corpusCounts[terms[a]] > corpusCounts[terms[b]]
		}
		return terms[a] < terms[b]
	})
	if maxFeatures > 0 && len(terms) > maxFeatures {
		terms = terms[:maxFeatures]
	}

	vocab := make(map[string]int, len(terms))
	for i, term := range terms {
		vocab[term] = i
	}

	// Document frequencies over the selected vocabulary.
	df := make([]int, len(terms))
	for _, counts := range docCounts {
		for term := range counts {
			if idx, ok := vocab[term]; ok {
				df[idx]++
			}
		}
	}

	idf := make([]float64, len(terms))
	for i := range idf {
		idf[i] = math.Log(float64(1+n)/float64(1+df[i])) + 1
	}

	// TF-IDF with L2 normalization per document.
	for i, counts := range docCounts {
		vec := vectors[i]
		var norm float64
		for term, count := range counts {
			if idx, ok := vocab[term]; ok {
				w := float64(count) * idf[idx]
				vec[idx] = w
				norm += w * w
			}
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for idx := range vec {
				vec[idx] /= norm
			}
		}
	}

	return vectors
}

// cosine computes the cosine similarity of two sparse vectors. Both inputs
// are already L2-normalized, so the dot product suffices.
func cosine(a, b map[int]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for idx, w := range a {
		if v, ok := b[idx]; ok {
			dot += w * v
		}
	}
	return dot
}
