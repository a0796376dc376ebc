package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/simak-api/pkg/database"
	"github.com/noah-isme/simak-api/pkg/pagination"
	"github.com/noah-isme/simak-api/pkg/query"
)

// QueryObserver receives the duration of every executed statement.
type QueryObserver interface {
	ObserveDBQuery(label string, duration time.Duration)
}

// Querier bundles the database handle with the dialect's statement builder.
type Querier struct {
	db       *sqlx.DB
	driver   string
	builder  sq.StatementBuilderType
	observer QueryObserver
}

// NewQuerier wraps db for the given driver ("postgres" or "mysql").
func NewQuerier(db *sqlx.DB, driver string, observer QueryObserver) *Querier {
	return &Querier{db: db, driver: driver, builder: database.Builder(driver), observer: observer}
}

// Ping checks database connectivity.
func (q *Querier) Ping(ctx context.Context) error {
	return q.db.PingContext(ctx)
}

func (q *Querier) observe(label string, start time.Time) {
	if q.observer != nil {
		q.observer.ObserveDBQuery(label, time.Since(start))
	}
}

// count runs the authoritative COUNT(*) for spec and filters.
func (q *Querier) count(ctx context.Context, label string, spec query.Spec, f *query.Filters) (int, error) {
	stmt, args, err := spec.Count(q.builder, f).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build %s count: %w", label, err)
	}
	defer q.observe(label+"_count", time.Now())

	var total int
	if err := q.db.GetContext(ctx, &total, stmt, args...); err != nil {
		return 0, fmt.Errorf("count %s: %w", label, err)
	}
	return total, nil
}

// stream executes sel and hands every row to fn through a forward-only cursor.
func (q *Querier) stream(ctx context.Context, label string, sel sq.SelectBuilder, fn func(*sqlx.Rows) error) (int, error) {
	stmt, args, err := sel.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build %s query: %w", label, err)
	}
	defer q.observe(label, time.Now())

	rows, err := q.db.QueryxContext(ctx, stmt, args...)
	if err != nil {
		return 0, fmt.Errorf("query %s: %w", label, err)
	}
	defer rows.Close()

	n := 0
	for rows.Next() {
		if err := fn(rows); err != nil {
			return n, fmt.Errorf("scan %s: %w", label, err)
		}
		n++
	}
	if err := rows.Err(); err != nil {
		return n, fmt.Errorf("iterate %s: %w", label, err)
	}
	return n, nil
}

// run is the query-and-paginate routine shared by every listing. With server paging it
// counts first and fetches one LIMIT/OFFSET slice; otherwise it streams the whole set and
// the total is the number of rows streamed.
func (q *Querier) run(ctx context.Context, label string, spec query.Spec, f *query.Filters, p pagination.Params, fn func(*sqlx.Rows) error) (pagination.Window, error) {
	window := pagination.Window{Params: p}
	if err := f.Err(); err != nil {
		return window, err
	}

	sel := spec.Select(q.builder, f)
	if p.ServerPaging {
		total, err := q.count(ctx, label, spec, f)
		if err != nil {
			return window, err
		}
		window.Total = total
		if total == 0 || p.Offset() >= uint64(total) {
			return window, nil
		}
		sel = sel.Limit(uint64(p.PerPage)).Offset(p.Offset())
	}

	n, err := q.stream(ctx, label, sel, fn)
	if err != nil {
		return window, err
	}
	if !p.ServerPaging {
		window.Total = n
	}
	return window, nil
}

// list runs spec and scans each row into T.
func list[T any](ctx context.Context, q *Querier, label string, spec query.Spec, f *query.Filters, p pagination.Params) ([]T, pagination.Window, error) {
	items := make([]T, 0)
	window, err := q.run(ctx, label, spec, f, p, func(rows *sqlx.Rows) error {
		var item T
		if err := rows.StructScan(&item); err != nil {
			return err
		}
		items = append(items, item)
		return nil
	})
	if err != nil {
		return nil, window, err
	}
	return items, window, nil
}
