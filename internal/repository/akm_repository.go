package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/simak-api/internal/models"
)

// AkmRepository aggregates acd_transcript per student and term.
type AkmRepository struct {
	q *Querier
}

// NewAkmRepository constructs an AkmRepository.
func NewAkmRepository(q *Querier) *AkmRepository {
	return &AkmRepository{q: q}
}

// StreamTermTotals emits one row per (student, term) ordered by student then term.
func (r *AkmRepository) StreamTermTotals(ctx context.Context, studentIDs []int64, fn func(models.TranscriptTerm) error) error {
	for start := 0; start < len(studentIDs); start += studentBatchSize {
		end := start + studentBatchSize
		if end > len(studentIDs) {
			end = len(studentIDs)
		}

		sel := r.q.builder.
			Select(
				"Student_Id AS student_id",
				"Term_Year_Id AS term_year_id",
				"COALESCE(SUM(Sks), 0) AS sks_semester",
				"COALESCE(SUM(Bnk_Value), 0) AS bnk_total",
			).
			From("acd_transcript").
			Where(sq.Eq{"Student_Id": studentIDs[start:end]}).
			GroupBy("Student_Id", "Term_Year_Id").
			OrderBy("Student_Id", "Term_Year_Id")

		_, err := r.q.stream(ctx, "akm_transcript", sel, func(rows *sqlx.Rows) error {
			var term models.TranscriptTerm
			if err := rows.StructScan(&term); err != nil {
				return err
			}
			return fn(term)
		})
		if err != nil {
			return err
		}
	}
	return nil
}
