package redigo

import (
	"fmt"
	"strings"

	"redicore/internal/redigo/errors"
	"redicore/internal/redigo/types"
)

// Builds a query from clause/value pairs such as PREFIX user: CONTAINS 42.
// Every malformed clause is reported.
func ParseRedigoQuery(parts []string) (types.RedigoQuery, []errors.ArgumentFailure) {
	var queries []types.RedigoQuery
	var failures []errors.ArgumentFailure

	for i := 0; i < len(parts); i += 2 {
		if i+1 >= len(parts) {
			failures = append(failures, errors.ArgumentFailure{
				Position: i,
				Reason:   fmt.Sprintf("clause %q has no value", parts[i]),
			})
			break
		}

		value := parts[i+1]
		switch strings.ToUpper(parts[i]) {
		case "PREFIX":
			queries = append(queries, types.PrefixQuery{Prefix: value})
		case "SUFFIX":
			queries = append(queries, types.SuffixQuery{Suffix: value})
		case "CONTAINS":
			queries = append(queries, types.ContainsKeyQuery{Substring: value})
		case "VALUE":
			queries = append(queries, types.ContainsValueQuery{Substring: value})
		default:
			failures = append(failures, errors.ArgumentFailure{
				Position: i,
				Reason:   fmt.Sprintf("unknown clause %q", parts[i]),
			})
		}
	}

	if len(failures) > 0 {
		return nil, failures
	}
	if len(queries) == 1 {
		return queries[0], nil
	}
	return types.AndQuery{Queries: queries}, nil
}

// Returns the keys of live entries matching query, in ascending order.
// Expired keys met during the scan are removed afterwards.
func (database *Database) Search(query types.RedigoQuery) []string {
	var matches []string
	var expired []string

	// Start at the query's prefix, if it has one, and walk keys in order
	database.orderedKeys.ascendPrefix(types.PrefixHint(query), func(key string) bool {
		if database.IsExpired(key) {
			expired = append(expired, key)
			return true
		}
		if query.Match(key, database.store[key]) {
			matches = append(matches, key)
		}
		return true
	})

	// Evict after the walk so the tree is not modified while iterating
	for _, key := range expired {
		database.Delete(key)
	}
	return matches
}
