// Package query composes filtered, joined SELECT statements from optional request filters.
package query

import (
	"fmt"
	"strconv"
	"strings"

	sq "github.com/Masterminds/squirrel"

	appErrors "github.com/noah-isme/simak-api/pkg/errors"
)

// JoinKind selects between optional and mandatory related data.
type JoinKind int

const (
	// LeftJoin keeps the parent row when the related row is missing.
	LeftJoin JoinKind = iota
	// InnerJoin drops the parent row when the related row is missing.
	InnerJoin
)

// Join describes one joined table, e.g. "mstr_department d ON d.Department_Id = s.Department_Id".
type Join struct {
	Kind   JoinKind
	Clause string
}

// Left is shorthand for a LEFT JOIN.
func Left(clause string) Join { return Join{Kind: LeftJoin, Clause: clause} }

// Inner is shorthand for an INNER JOIN.
func Inner(clause string) Join { return Join{Kind: InnerJoin, Clause: clause} }

// Spec is the static shape of a resource query.
type Spec struct {
	From    string
	Columns []string
	Joins   []Join
	OrderBy []string
}

// Select builds the data query with filters applied and ordering attached.
func (s Spec) Select(b sq.StatementBuilderType, f *Filters) sq.SelectBuilder {
	q := s.base(b.Select(s.Columns...), f)
	if len(s.OrderBy) > 0 {
		q = q.OrderBy(s.OrderBy...)
	}
	return q
}

// Count builds the authoritative row count for the same filters.
func (s Spec) Count(b sq.StatementBuilderType, f *Filters) sq.SelectBuilder {
	return s.base(b.Select("COUNT(*)"), f)
}

func (s Spec) base(q sq.SelectBuilder, f *Filters) sq.SelectBuilder {
	q = q.From(s.From)
	for _, j := range s.Joins {
		if j.Kind == InnerJoin {
			q = q.Join(j.Clause)
			continue
		}
		q = q.LeftJoin(j.Clause)
	}
	if f != nil {
		for _, cond := range f.conds {
			q = q.Where(cond)
		}
	}
	return q
}

// Filters accumulates optional WHERE conditions. Absent or empty inputs add nothing;
// malformed numeric inputs are recorded as field errors.
type Filters struct {
	conds []sq.Sqlizer
	errs  appErrors.FieldErrors
}

// NewFilters returns an empty accumulator.
func NewFilters() *Filters {
	return &Filters{errs: appErrors.FieldErrors{}}
}

// Int adds "column = n" when raw is present.
func (f *Filters) Int(field, column, raw string) *Filters {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return f
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		f.errs.Add(field, integerMessage(field))
		return f
	}
	f.conds = append(f.conds, sq.Eq{column: n})
	return f
}

// CheckInt records a field error when raw is present but not an integer. No condition is added.
func (f *Filters) CheckInt(field, raw string) *Filters {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return f
	}
	if _, err := strconv.ParseInt(raw, 10, 64); err != nil {
		f.errs.Add(field, integerMessage(field))
	}
	return f
}

// Numeric adds "column = raw" for identifiers stored as text that must be written as digits.
func (f *Filters) Numeric(field, column, raw string) *Filters {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return f
	}
	if _, err := strconv.ParseInt(raw, 10, 64); err != nil {
		f.errs.Add(field, integerMessage(field))
		return f
	}
	f.conds = append(f.conds, sq.Eq{column: raw})
	return f
}

// IntIn adds "column IN (...)" for every discrete value in raws. Each element may itself be a
// comma-separated list.
func (f *Filters) IntIn(field, column string, raws []string) *Filters {
	ids, ok := f.ints(field, raws)
	if !ok || len(ids) == 0 {
		return f
	}
	f.conds = append(f.conds, sq.Eq{column: ids})
	return f
}

// Equal adds "column = raw" when raw is present.
func (f *Filters) Equal(column, raw string) *Filters {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return f
	}
	f.conds = append(f.conds, sq.Eq{column: raw})
	return f
}

// Like adds a case-insensitive partial match when raw is present.
func (f *Filters) Like(column, raw string) *Filters {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return f
	}
	pattern := "%" + escapeLike(strings.ToLower(raw)) + "%"
	f.conds = append(f.conds, sq.Expr("LOWER("+column+") LIKE ?", pattern))
	return f
}

// Err returns a 422 error when any field failed to parse.
func (f *Filters) Err() error {
	if len(f.errs) == 0 {
		return nil
	}
	return appErrors.Validation(f.errs)
}

func (f *Filters) ints(field string, raws []string) ([]int64, bool) {
	values := SplitList(raws)
	ids := make([]int64, 0, len(values))
	seen := make(map[int64]struct{}, len(values))
	for _, v := range values {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			f.errs.Add(field, integerMessage(field))
			return nil, false
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		ids = append(ids, n)
	}
	return ids, true
}

// SplitList flattens raw values and comma-separated strings into trimmed, non-empty items.
func SplitList(raws []string) []string {
	out := make([]string, 0, len(raws))
	for _, raw := range raws {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func integerMessage(field string) string {
	return fmt.Sprintf("The %s field must be an integer.", field)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }
