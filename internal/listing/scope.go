package listing

import (
	"strings"

	dbtypes "github.com/angelmondragon/bachelorhub-backend/pkg/db/types"
	"gorm.io/gorm"
)

// Scope applies the predicate as WHERE conditions.
func (p Predicate) Scope(db *gorm.DB) *gorm.DB {
	for _, c := range p.clauses {
		db = applyClause(db, c)
	}
	return db
}

func applyClause(db *gorm.DB, c Clause) *gorm.DB {
	switch c.Kind {
	case ClauseSearch:
		if len(c.Columns) == 0 {
			return db
		}
		pattern := dbtypes.ContainsPattern(strings.ToLower(c.Value))
		conds := make([]string, 0, len(c.Columns))
		args := make([]any, 0, len(c.Columns))
		for _, col := range c.Columns {
			// A term carrying JSON array syntax would match across elements.
			if c.isList(col) && !dbtypes.ElementSafe(c.Value) {
				continue
			}
			conds = append(conds, "LOWER("+col+") LIKE ? ESCAPE '"+dbtypes.LikeEscape+"'")
			args = append(args, pattern)
		}
		if len(conds) == 0 {
			return db.Where("1 = 0")
		}
		return db.Where("("+strings.Join(conds, " OR ")+")", args...)
	case ClauseRange:
		col := c.column()
		if c.Min != nil {
			db = db.Where(col+" >= ?", *c.Min)
		}
		if c.Max != nil {
			db = db.Where(col+" <= ?", *c.Max)
		}
		return db
	case ClauseEquals:
		return db.Where("LOWER("+c.column()+") = ?", strings.ToLower(c.Value))
	case ClauseAnyOf:
		if len(c.Values) == 0 {
			return db
		}
		conds := make([]string, len(c.Values))
		args := make([]any, len(c.Values))
		for i, v := range c.Values {
			conds[i] = c.column() + " LIKE ? ESCAPE '" + dbtypes.LikeEscape + "'"
			args[i] = dbtypes.ElementPattern(v)
		}
		return db.Where("("+strings.Join(conds, " OR ")+")", args...)
	case ClauseContains:
		return db.Where("LOWER("+c.column()+") LIKE ? ESCAPE '"+dbtypes.LikeEscape+"'", dbtypes.ContainsPattern(strings.ToLower(c.Value)))
	case ClauseVisible:
		return db.Where(c.column()+" = ?", true)
	}
	return db
}
