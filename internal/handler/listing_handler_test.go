package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/simak-api/internal/dto"
	"github.com/noah-isme/simak-api/internal/models"
	"github.com/noah-isme/simak-api/pkg/config"
	appErrors "github.com/noah-isme/simak-api/pkg/errors"
	"github.com/noah-isme/simak-api/pkg/export"
	"github.com/noah-isme/simak-api/pkg/pagination"
)

var testPaging = config.PaginationConfig{DefaultPerPage: 20, MaxPerPage: 1000}

type studentServiceMock struct {
	filter models.StudentFilter
	params pagination.Params
	data   interface{}
	total  int
	err    error
}

func (m *studentServiceMock) List(ctx context.Context, filter models.StudentFilter, p pagination.Params) (interface{}, pagination.Window, error) {
	m.filter, m.params = filter, p
	return m.data, pagination.Window{Params: p, Total: m.total}, m.err
}

type enrollmentServiceMock struct {
	filter models.EnrollmentFilter
	params pagination.Params
	krs    []models.StudentKrs
	total  int
	err    error
}

func (m *enrollmentServiceMock) ListKrs(ctx context.Context, filter models.EnrollmentFilter, p pagination.Params) (*dto.ListResult[models.StudentKrs], error) {
	m.filter, m.params = filter, p
	if m.err != nil {
		return nil, m.err
	}
	return &dto.ListResult[models.StudentKrs]{Items: m.krs, Window: pagination.Window{Params: p, Total: m.total}}, nil
}

func (m *enrollmentServiceMock) ListKhs(ctx context.Context, filter models.EnrollmentFilter, p pagination.Params) (*dto.ListResult[models.StudentKhs], error) {
	m.filter, m.params = filter, p
	if m.err != nil {
		return nil, m.err
	}
	return &dto.ListResult[models.StudentKhs]{Items: []models.StudentKhs{}, Window: pagination.Window{Params: p, Total: m.total}}, nil
}

type akmServiceMock struct {
	filter models.AkmFilter
	format string
	doc    *export.Document
	err    error
}

func (m *akmServiceMock) List(ctx context.Context, filter models.AkmFilter, p pagination.Params) (*dto.ListResult[models.StudentAkm], error) {
	m.filter = filter
	if m.err != nil {
		return nil, m.err
	}
	items := []models.StudentAkm{{Nama: "Ani", Nim: "2101", Akm: []models.AkmEntry{{TermYearID: 20241, IpkKumulatif: 3.38}}}}
	return &dto.ListResult[models.StudentAkm]{Items: items, Window: pagination.Window{Params: p, Total: 1}}, nil
}

func (m *akmServiceMock) Export(ctx context.Context, filter models.AkmFilter, format string) (*export.Document, error) {
	m.filter, m.format = filter, format
	return m.doc, m.err
}

type offeredCourseServiceMock struct {
	filter models.OfferedCourseFilter
}

func (m *offeredCourseServiceMock) List(ctx context.Context, filter models.OfferedCourseFilter, p pagination.Params) ([]models.OfferedCourse, pagination.Window, error) {
	m.filter = filter
	return []models.OfferedCourse{}, pagination.Window{Params: p}, nil
}

type masterServiceMock struct {
	search string
	err    error
}

func (m *masterServiceMock) Departments(ctx context.Context, search string) ([]models.Department, error) {
	m.search = search
	return []models.Department{{DepartmentID: 1, DepartmentName: "Informatika"}, {DepartmentID: 2, DepartmentName: "Sistem Informasi"}}, m.err
}

func (m *masterServiceMock) ClassPrograms(ctx context.Context, search string) ([]models.ClassProgram, error) {
	return []models.ClassProgram{}, m.err
}

func (m *masterServiceMock) Religions(ctx context.Context, search string) ([]models.Religion, error) {
	return []models.Religion{}, m.err
}

func (m *masterServiceMock) MaritalStatuses(ctx context.Context, search string) ([]models.MaritalStatus, error) {
	return nil, m.err
}

func TestStudentListUnpagedMeta(t *testing.T) {
	svc := &studentServiceMock{data: []models.Student{{StudentID: 1}, {StudentID: 2}}, total: 2}
	h := NewStudentHandler(svc, testPaging)

	c, w := newGinContext(http.MethodGet, "/api/students?Department_Id=3&detail=0&student_id=1,2", nil, "")
	h.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "3", svc.filter.DepartmentID)
	assert.Equal(t, []string{"1,2"}, svc.filter.StudentIDs)
	assert.False(t, svc.filter.Detail)
	assert.False(t, svc.params.ServerPaging)

	body := decodeEnvelope(t, w)
	assert.Equal(t, "Student list retrieved successfully", body["message"])
	meta := body["meta"].(map[string]interface{})
	assert.Equal(t, float64(2), meta["per_page"])
	assert.Equal(t, float64(2), meta["total"])
	assert.Equal(t, float64(2), meta["to"])
	assert.Equal(t, float64(1), meta["last_page"])
	assert.Equal(t, "http://example.com/api/students", meta["path"])
}

func TestStudentListNotFound(t *testing.T) {
	h := NewStudentHandler(&studentServiceMock{err: appErrors.Clone(appErrors.ErrNotFound, "Student not found")}, testPaging)

	c, w := newGinContext(http.MethodGet, "/api/students?nim=9999", nil, "")
	h.List(c)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Student not found", decodeEnvelope(t, w)["message"])
}

func TestKrsServerPagedMeta(t *testing.T) {
	items := make([]models.StudentKrs, 5)
	svc := &enrollmentServiceMock{krs: items, total: 45}
	h := NewEnrollmentHandler(svc, testPaging)

	c, w := newGinContext(http.MethodGet, "/api/student-krs?server_paging=true&per_page=20&page=3&term_year_id=20231", nil, "")
	h.Krs(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, pagination.Params{ServerPaging: true, PerPage: 20, Page: 3}, svc.params)
	assert.Equal(t, "20231", svc.filter.TermYearID)

	body := decodeEnvelope(t, w)
	assert.Equal(t, "Student KRS retrieved successfully", body["message"])
	meta := body["meta"].(map[string]interface{})
	assert.Equal(t, float64(3), meta["current_page"])
	assert.Equal(t, float64(3), meta["last_page"])
	assert.Equal(t, float64(41), meta["from"])
	assert.Equal(t, float64(45), meta["to"])
	assert.Equal(t, float64(45), meta["total"])
	assert.Nil(t, meta["next_page_url"])
	assert.Equal(t, "http://example.com/api/student-krs?per_page=20&server_paging=true&term_year_id=20231&page=2", meta["prev_page_url"])
}

func TestKhsNoStudents(t *testing.T) {
	h := NewEnrollmentHandler(&enrollmentServiceMock{err: appErrors.Clone(appErrors.ErrNotFound, "No students found")}, testPaging)

	c, w := newGinContext(http.MethodGet, "/api/student-khs?student_id=999999", nil, "")
	h.Khs(c)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No students found", decodeEnvelope(t, w)["message"])
}

func TestOfferedCourseEmptyList(t *testing.T) {
	svc := &offeredCourseServiceMock{}
	h := NewOfferedCourseHandler(svc, testPaging)

	c, w := newGinContext(http.MethodGet, "/api/offered-course?course_code=IF1", nil, "")
	h.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "IF1", svc.filter.CourseCode)
	body := decodeEnvelope(t, w)
	assert.Equal(t, "Offered courses fetched successfully", body["message"])
	assert.Equal(t, []interface{}{}, body["data"])
	meta := body["meta"].(map[string]interface{})
	assert.Nil(t, meta["from"])
	assert.Equal(t, float64(0), meta["total"])
}

func TestAkmList(t *testing.T) {
	svc := &akmServiceMock{}
	h := NewAkmHandler(svc, testPaging)

	c, w := newGinContext(http.MethodGet, "/api/akm?nim=2101", nil, "")
	h.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2101", svc.filter.Nim)
	body := decodeEnvelope(t, w)
	assert.Equal(t, "AKM fetched successfully", body["message"])
	first := body["data"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "Ani", first["nama"])
}

func TestAkmExportWritesAttachment(t *testing.T) {
	svc := &akmServiceMock{doc: &export.Document{Filename: "akm.csv", ContentType: "text/csv", Body: []byte("nim\n")}}
	h := NewAkmHandler(svc, testPaging)

	c, w := newGinContext(http.MethodGet, "/api/akm/export?format=csv&department_id=3", nil, "")
	h.Export(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "csv", svc.format)
	assert.Equal(t, "3", svc.filter.DepartmentID)
	assert.Equal(t, `attachment; filename="akm.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, "nim\n", w.Body.String())
}

func TestMasterDepartments(t *testing.T) {
	svc := &masterServiceMock{}
	h := NewMasterHandler(svc)

	c, w := newGinContext(http.MethodGet, "/api/master/departments?search=info", nil, "")
	h.Departments(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "info", svc.search)
	body := decodeEnvelope(t, w)
	assert.Equal(t, "mstr_department list retrieved successfully", body["message"])
	assert.Equal(t, map[string]interface{}{"total_data": float64(2)}, body["meta"])
}

func TestMasterMaritalStatuses(t *testing.T) {
	h := NewMasterHandler(&masterServiceMock{})

	c, w := newGinContext(http.MethodGet, "/api/master/marital-statuses", nil, "")
	h.MaritalStatuses(c)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeEnvelope(t, w)
	assert.Equal(t, "marital_status list retrieved successfully", body["message"])
}

func TestMasterFailure(t *testing.T) {
	h := NewMasterHandler(&masterServiceMock{err: errors.New("boom")})

	c, w := newGinContext(http.MethodGet, "/api/master/religions", nil, "")
	h.Religions(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
