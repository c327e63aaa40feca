package repository

import (
	"strings"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsFold narrows q to rows whose column contains term, ignoring case.
// An empty term leaves q unchanged.
func containsFold(q *gorm.DB, column, term string) *gorm.DB {
	if term == "" {
		return q
	}
	pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
	return q.Where("LOWER("+column+") LIKE ? ESCAPE '\\'", pattern)
}
