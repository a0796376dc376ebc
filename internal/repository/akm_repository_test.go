package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/simak-api/internal/models"
	"github.com/noah-isme/simak-api/pkg/config"
)

func TestAkmRepositoryStreamTermTotals(t *testing.T) {
	q, mock, obs := newMockQuerier(t, config.DriverPostgres)
	repo := NewAkmRepository(q)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT Student_Id AS student_id, Term_Year_Id AS term_year_id, COALESCE(SUM(Sks), 0) AS sks_semester, COALESCE(SUM(Bnk_Value), 0) AS bnk_total FROM acd_transcript WHERE Student_Id IN ($1,$2) GROUP BY Student_Id, Term_Year_Id ORDER BY Student_Id, Term_Year_Id")).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"student_id", "term_year_id", "sks_semester", "bnk_total"}).
			AddRow(int64(1), int64(20231), "12", "40.00").
			AddRow(int64(1), int64(20241), "14", "48.00"))

	var got []models.TranscriptTerm
	err := repo.StreamTermTotals(context.Background(), []int64{1, 2}, func(term models.TranscriptTerm) error {
		got = append(got, term)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 12.0, got[0].SksSemester)
	assert.Equal(t, 48.0, got[1].BnkTotal)
	assert.Equal(t, []string{"akm_transcript"}, obs.labels)
	assert.NoError(t, mock.ExpectationsWereMet())
}
