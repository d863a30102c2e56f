// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search finds catalog records matching a free-text query.
//
// Queries support a small grammar:
//
//	@language:go    records whose language contains "go"
//	@type:database  records whose type contains "database"
//	"exact phrase"  name or description contains the phrase
//	file*           name or language starts with "file"
//
// Anything else is split into words and ranked by where the words occur.
package search

import (
	"sort"
	"strings"

	"github.com/pdiddy/mcp-catalog/pkg/types"
)

// DefaultTopK caps keyword results when no limit is given.
const DefaultTopK = 100

const (
	languagePrefix = "@language:"
	typePrefix     = "@type:"
)

// Keyword weights. A match in the name counts more than one in the type.
const (
	wholeQueryScore  = 10
	nameScore        = 5
	languageScore    = 4
	descriptionScore = 3
	typeScore        = 2
)

// Result is a matched record with its keyword score. Filter-style queries
// leave Score at zero.
type Result struct {
	Record types.Record `json:"record"`
	Score  int          `json:"score"`
}

// Search returns the records of servers matching query. Only keyword
// queries are ranked and truncated to topK; the filter forms return every
// match in catalog order. An empty query returns nothing.
func Search(servers []types.Record, query string, topK int) []Result {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	switch {
	case strings.HasPrefix(query, languagePrefix):
		lang := lowerArg(query, languagePrefix)
		return filter(servers, func(r types.Record) bool {
			return strings.Contains(strings.ToLower(string(r.Language)), lang)
		})

	case strings.HasPrefix(query, typePrefix):
		typ := lowerArg(query, typePrefix)
		return filter(servers, func(r types.Record) bool {
			return strings.Contains(strings.ToLower(r.Type), typ)
		})

	case len(query) >= 2 && strings.HasPrefix(query, `"`) && strings.HasSuffix(query, `"`):
		phrase := strings.ToLower(query[1 : len(query)-1])
		return filter(servers, func(r types.Record) bool {
			return strings.Contains(strings.ToLower(r.Name), phrase) ||
				strings.Contains(strings.ToLower(r.Description), phrase)
		})

	case strings.HasSuffix(query, "*"):
		prefix := strings.ToLower(strings.TrimSuffix(query, "*"))
		return filter(servers, func(r types.Record) bool {
			return strings.HasPrefix(strings.ToLower(r.Name), prefix) ||
				strings.HasPrefix(strings.ToLower(string(r.Language)), prefix)
		})
	}

	return rank(servers, query, topK)
}

func lowerArg(query, prefix string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(query, prefix)))
}

func filter(servers []types.Record, keep func(types.Record) bool) []Result {
	var results []Result
	for _, r := range servers {
		if keep(r) {
			results = append(results, Result{Record: r})
		}
	}
	return results
}

// rank scores every record against the query words and returns the
// positive-scoring ones, best first. Ties keep catalog order.
func rank(servers []types.Record, query string, topK int) []Result {
	lowerQuery := strings.ToLower(query)

	var words []string
	for _, w := range strings.Fields(lowerQuery) {
		if len(w) > 1 {
			words = append(words, w)
		}
	}

	var results []Result
	for _, r := range servers {
		if s := score(r, lowerQuery, words); s > 0 {
			results = append(results, Result{Record: r, Score: s})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results
}

// score computes the keyword score for one record.
func score(r types.Record, lowerQuery string, words []string) int {
	name := strings.ToLower(r.Name)
	lang := strings.ToLower(string(r.Language))
	desc := strings.ToLower(r.Description)
	typ := strings.ToLower(r.Type)

	s := 0
	if strings.Contains(strings.Join([]string{name, desc, lang, typ}, " "), lowerQuery) {
		s += wholeQueryScore
	}
	for _, w := range words {
		if strings.Contains(name, w) {
			s += nameScore
		}
		if strings.Contains(lang, w) {
			s += languageScore
		}
		if strings.Contains(desc, w) {
			s += descriptionScore
		}
		if strings.Contains(typ, w) {
			s += typeScore
		}
	}
	return s
}

// Records strips scores from results.
func Records(results []Result) []types.Record {
	records := make([]types.Record, len(results))
	for i, r := range results {
		records[i] = r.Record
	}
	return records
}
