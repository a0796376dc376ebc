package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/simak-api/internal/models"
	appErrors "github.com/noah-isme/simak-api/pkg/errors"
	"github.com/noah-isme/simak-api/pkg/pagination"
)

type mockSummaryRepo struct {
	students   []models.StudentSummary
	total      int
	err        error
	lastFilter models.EnrollmentFilter
	lastParams pagination.Params
}

func (m *mockSummaryRepo) ListSummaries(ctx context.Context, filter models.EnrollmentFilter, p pagination.Params) ([]models.StudentSummary, pagination.Window, error) {
	m.lastFilter = filter
	m.lastParams = p
	if m.err != nil {
		return nil, pagination.Window{Params: p}, m.err
	}
	return m.students, pagination.Window{Params: p, Total: m.total}, nil
}

type mockEnrollmentRepo struct {
	krs     []models.KrsEntry
	khs     []models.KhsEntry
	err     error
	lastIDs []int64
	term    string
}

func (m *mockEnrollmentRepo) StreamKrs(ctx context.Context, ids []int64, termYearID string, fn func(models.KrsEntry) error) error {
	m.lastIDs, m.term = ids, termYearID
	if m.err != nil {
		return m.err
	}
	for _, e := range m.krs {
		if err := fn(e); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockEnrollmentRepo) StreamKhs(ctx context.Context, ids []int64, termYearID string, fn func(models.KhsEntry) error) error {
	m.lastIDs, m.term = ids, termYearID
	if m.err != nil {
		return m.err
	}
	for _, e := range m.khs {
		if err := fn(e); err != nil {
			return err
		}
	}
	return nil
}

func krsEntry(studentID, krsID int64) models.KrsEntry {
	return models.KrsEntry{StudentID: studentID, KrsID: krsID, TermYearID: 20231, CourseID: krsID * 10, Sks: 3}
}

func TestListKrsGroupsEntriesPerStudent(t *testing.T) {
	students := &mockSummaryRepo{
		students: []models.StudentSummary{{StudentID: 1, FullName: "Ani", Nim: "2101"}, {StudentID: 2, FullName: "Budi", Nim: "2102"}},
		total:    2,
	}
	enrollments := &mockEnrollmentRepo{krs: []models.KrsEntry{krsEntry(1, 11), krsEntry(1, 12), krsEntry(1, 13)}}
	svc := NewEnrollmentService(students, enrollments, nil)

	result, err := svc.ListKrs(context.Background(), models.EnrollmentFilter{TermYearID: "20231"}, pagination.Params{})
	require.NoError(t, err)
	require.Len(t, result.Items, 2)

	assert.Equal(t, []int64{1, 2}, enrollments.lastIDs)
	assert.Equal(t, "20231", enrollments.term)

	first := result.Items[0]
	assert.Equal(t, int64(1), first.StudentID)
	assert.Equal(t, 3, first.TotalKrs)
	assert.Equal(t, []int64{11, 12, 13}, []int64{first.Krs[0].KrsID, first.Krs[1].KrsID, first.Krs[2].KrsID})

	second := result.Items[1]
	assert.Equal(t, 0, second.TotalKrs)
	assert.NotNil(t, second.Krs)
	assert.Empty(t, second.Krs)
	assert.Equal(t, 2, result.Window.Total)
}

func TestListKrsPagedTotalComesFromCount(t *testing.T) {
	p := pagination.Params{ServerPaging: true, PerPage: 20, Page: 3}
	students := &mockSummaryRepo{students: []models.StudentSummary{{StudentID: 41}}, total: 45}
	svc := NewEnrollmentService(students, &mockEnrollmentRepo{}, nil)

	result, err := svc.ListKrs(context.Background(), models.EnrollmentFilter{}, p)
	require.NoError(t, err)
	assert.Equal(t, p, students.lastParams)
	assert.Equal(t, 45, result.Window.Total)
	assert.Len(t, result.Items, 1)
}

func TestListKrsNoStudents(t *testing.T) {
	enrollments := &mockEnrollmentRepo{}
	svc := NewEnrollmentService(&mockSummaryRepo{}, enrollments, nil)

	_, err := svc.ListKrs(context.Background(), models.EnrollmentFilter{StudentIDs: []string{"999999"}}, pagination.Params{})
	appErr := assertAppError(t, err, appErrors.ErrNotFound)
	assert.Equal(t, "No students found", appErr.Message)
	assert.Nil(t, enrollments.lastIDs)
}

func TestListKhsGroupsGradedEntries(t *testing.T) {
	weight := 4.0
	students := &mockSummaryRepo{students: []models.StudentSummary{{StudentID: 7, FullName: "Citra", Nim: "2107"}}, total: 1}
	enrollments := &mockEnrollmentRepo{khs: []models.KhsEntry{
		{KrsEntry: krsEntry(7, 70), GradeLetter: "A", WeightValue: &weight},
		{KrsEntry: krsEntry(7, 71), GradeLetter: "B"},
	}}
	svc := NewEnrollmentService(students, enrollments, nil)

	result, err := svc.ListKhs(context.Background(), models.EnrollmentFilter{}, pagination.Params{})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, 2, result.Items[0].TotalKhs)
	assert.Equal(t, "A", result.Items[0].Khs[0].GradeLetter)
	assert.Equal(t, "B", result.Items[0].Khs[1].GradeLetter)
}

func TestListKhsChildFailure(t *testing.T) {
	students := &mockSummaryRepo{students: []models.StudentSummary{{StudentID: 7}}, total: 1}
	svc := NewEnrollmentService(students, &mockEnrollmentRepo{err: errors.New("timeout")}, nil)

	_, err := svc.ListKhs(context.Background(), models.EnrollmentFilter{}, pagination.Params{})
	assertAppError(t, err, appErrors.ErrInternal)
}

func TestListKhsParentValidationError(t *testing.T) {
	fields := appErrors.FieldErrors{}
	fields.Add("term_year_id", "The term_year_id field must be an integer.")
	svc := NewEnrollmentService(&mockSummaryRepo{err: appErrors.Validation(fields)}, &mockEnrollmentRepo{}, nil)

	_, err := svc.ListKhs(context.Background(), models.EnrollmentFilter{TermYearID: "x"}, pagination.Params{})
	assertAppError(t, err, appErrors.ErrValidation)
}
