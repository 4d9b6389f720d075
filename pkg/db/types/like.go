package dbtypes

import "strings"

// LikeEscape is the escape character paired with EscapeLike in LIKE clauses.
const LikeEscape = `\`

var likeReplacer = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike neutralizes LIKE wildcards in user supplied text.
func EscapeLike(value string) string {
	return likeReplacer.Replace(value)
}

// ContainsPattern wraps value for an unanchored LIKE match.
func ContainsPattern(value string) string {
	return "%" + EscapeLike(value) + "%"
}
