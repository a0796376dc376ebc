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

type mockStudentRepo struct {
	students   []models.Student
	details    []models.StudentDetail
	total      int
	err        error
	lastFilter models.StudentFilter
	detailUsed bool
}

func (m *mockStudentRepo) List(ctx context.Context, filter models.StudentFilter, p pagination.Params) ([]models.Student, pagination.Window, error) {
	m.lastFilter = filter
	if m.err != nil {
		return nil, pagination.Window{Params: p}, m.err
	}
	return m.students, pagination.Window{Params: p, Total: m.total}, nil
}

func (m *mockStudentRepo) ListDetail(ctx context.Context, filter models.StudentFilter, p pagination.Params) ([]models.StudentDetail, pagination.Window, error) {
	m.lastFilter = filter
	m.detailUsed = true
	if m.err != nil {
		return nil, pagination.Window{Params: p}, m.err
	}
	return m.details, pagination.Window{Params: p, Total: m.total}, nil
}

func TestStudentServiceListCompact(t *testing.T) {
	repo := &mockStudentRepo{students: []models.Student{{StudentID: 1, Nim: "2101", FullName: "Ani"}}, total: 1}
	svc := NewStudentService(repo, nil)

	data, window, err := svc.List(context.Background(), models.StudentFilter{DepartmentID: "3"}, pagination.Params{})
	require.NoError(t, err)
	assert.False(t, repo.detailUsed)
	assert.Equal(t, 1, window.Total)
	rows, ok := data.([]models.Student)
	require.True(t, ok)
	assert.Equal(t, "Ani", rows[0].FullName)
}

func TestStudentServiceListDetail(t *testing.T) {
	repo := &mockStudentRepo{details: []models.StudentDetail{{Student: models.Student{StudentID: 1}}}, total: 1}
	svc := NewStudentService(repo, nil)

	data, _, err := svc.List(context.Background(), models.StudentFilter{Detail: true}, pagination.Params{})
	require.NoError(t, err)
	assert.True(t, repo.detailUsed)
	_, ok := data.([]models.StudentDetail)
	assert.True(t, ok)
}

func TestStudentServiceIdentityMiss(t *testing.T) {
	svc := NewStudentService(&mockStudentRepo{students: []models.Student{}}, nil)

	_, _, err := svc.List(context.Background(), models.StudentFilter{Nim: "9999"}, pagination.Params{})
	appErr := assertAppError(t, err, appErrors.ErrNotFound)
	assert.Equal(t, "Student not found", appErr.Message)
}

func TestStudentServiceEmptyWithoutIdentityIsNotAnError(t *testing.T) {
	svc := NewStudentService(&mockStudentRepo{students: []models.Student{}}, nil)

	data, window, err := svc.List(context.Background(), models.StudentFilter{EntryYear: "1990"}, pagination.Params{})
	require.NoError(t, err)
	assert.Equal(t, 0, window.Total)
	assert.Empty(t, data)
}

func TestStudentServiceRepositoryFailure(t *testing.T) {
	svc := NewStudentService(&mockStudentRepo{err: errors.New("connection reset")}, nil)

	_, _, err := svc.List(context.Background(), models.StudentFilter{}, pagination.Params{})
	appErr := assertAppError(t, err, appErrors.ErrInternal)
	assert.Equal(t, "Internal server error", appErr.Message)
}

func TestStudentServiceValidationPassesThrough(t *testing.T) {
	fields := appErrors.FieldErrors{}
	fields.Add("nim", "The nim field must be an integer.")
	svc := NewStudentService(&mockStudentRepo{err: appErrors.Validation(fields)}, nil)

	_, _, err := svc.List(context.Background(), models.StudentFilter{Nim: "abc"}, pagination.Params{})
	appErr := assertAppError(t, err, appErrors.ErrValidation)
	assert.Equal(t, fields, appErr.Details)
}
