package utils

import "strings"

// JoinWithAnd joins a slice of SQL conditions with AND.
func JoinWithAnd(clauses []string) string {
	return strings.Join(clauses, " AND ")
}

// JoinWithOr joins a slice of SQL conditions with OR and parenthesizes
// the result so it composes with surrounding AND clauses.
func JoinWithOr(clauses []string) string {
	if len(clauses) == 0 {
		return ""
	}
	return "(" + strings.Join(clauses, " OR ") + ")"
}
