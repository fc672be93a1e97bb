package types

import (
	"strings"

	"github.com/samber/lo"
)

type RedigoQuery interface {
	Match(key string, entry *ValueEntry) bool
}

type PrefixQuery struct {
	Prefix string
}

type SuffixQuery struct {
	Suffix string
}

type ContainsKeyQuery struct {
	Substring string
}

type ContainsValueQuery struct {
	Substring string
}

type AndQuery struct {
	Queries []RedigoQuery
}

func (q PrefixQuery) Match(key string, _ *ValueEntry) bool {
	return strings.HasPrefix(key, q.Prefix)
}

func (q SuffixQuery) Match(key string, _ *ValueEntry) bool {
	return strings.HasSuffix(key, q.Suffix)
}

func (q ContainsKeyQuery) Match(key string, _ *ValueEntry) bool {
	return strings.Contains(key, q.Substring)
}

func (q ContainsValueQuery) Match(_ string, entry *ValueEntry) bool {
	value, ok := entry.StringValue()
	if !ok {
		return false
	}
	return strings.Contains(value, q.Substring)
}

func (q AndQuery) Match(key string, entry *ValueEntry) bool {
	return lo.EveryBy(q.Queries, func(subQuery RedigoQuery) bool {
		return subQuery.Match(key, entry)
	})
}

// Returns the longest key prefix every match must share, used to narrow ordered scans
func PrefixHint(query RedigoQuery) string {
	switch q := query.(type) {
	case PrefixQuery:
		return q.Prefix
	case AndQuery:
		hint := ""
		for _, subQuery := range q.Queries {
			if candidate := PrefixHint(subQuery); len(candidate) > len(hint) {
				hint = candidate
			}
		}
		return hint
	default:
		return ""
	}
}
