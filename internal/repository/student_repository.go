package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/noah-isme/simak-api/internal/models"
	"github.com/noah-isme/simak-api/pkg/pagination"
	"github.com/noah-isme/simak-api/pkg/query"
)

var studentJoins = []query.Join{
	query.Left("mstr_department d ON s.Department_Id = d.Department_Id"),
	query.Left("mstr_class_program cp ON s.Class_Prog_Id = cp.Class_Prog_Id"),
	query.Left("mstr_religion r ON s.Religion_Id = r.Religion_Id"),
	query.Left("mstr_marital_status m ON s.Marital_Status_Id = m.Marital_Status_Id"),
}

var studentColumns = []string{
	"s.Student_Id AS student_id",
	"s.Nim AS nim",
	"s.Register_Number AS register_number",
	"s.Full_Name AS full_name",
	"d.Department_Name AS department",
	"cp.Class_Program_Name AS class_program",
	"s.Entry_Year_Id AS entry_year",
	"s.Entry_Term_Id AS entry_term_id",
}

var studentDetailColumns = append(append([]string{}, studentColumns...),
	"r.Religion_Name AS religion",
	"m.Marital_Status_Type AS marital_status",
	"s.Birth_Place AS birth_place",
	"s.Birth_Date AS birth_date",
	"s.Nisn AS nisn",
	"s.Nik AS nik",
	"s.Email_Corporate AS email_corporate",
	"s.Phone_Mobile AS phone_mobile",
)

// studentSummarySpec is the parent query of the KRS and KHS listings.
var studentSummarySpec = query.Spec{
	From: "acd_student s",
	Columns: []string{
		"s.Student_Id AS student_id",
		"s.Full_Name AS full_name",
		"s.Nim AS nim",
		"s.Department_Id AS department_id",
	},
	OrderBy: []string{"s.Student_Id"},
}

// StudentRepository reads acd_student.
type StudentRepository struct {
	q *Querier
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(q *Querier) *StudentRepository {
	return &StudentRepository{q: q}
}

func studentSpec(detail bool) query.Spec {
	spec := query.Spec{
		From:    "acd_student s",
		Columns: studentColumns,
		Joins:   studentJoins,
		OrderBy: []string{"s.Student_Id"},
	}
	if detail {
		spec.Columns = studentDetailColumns
	}
	return spec
}

func studentFilters(filter models.StudentFilter) *query.Filters {
	return query.NewFilters().
		IntIn("student_id", "s.Student_Id", filter.StudentIDs).
		Numeric("nim", "s.Nim", filter.Nim).
		Numeric("register_number", "s.Register_Number", filter.RegisterNumber).
		Int("department_id", "s.Department_Id", filter.DepartmentID).
		Int("entry_year", "s.Entry_Year_Id", filter.EntryYear)
}

// List returns compact student rows.
func (r *StudentRepository) List(ctx context.Context, filter models.StudentFilter, p pagination.Params) ([]models.Student, pagination.Window, error) {
	return list[models.Student](ctx, r.q, "students", studentSpec(false), studentFilters(filter), p)
}

// ListDetail returns student rows including personal fields.
func (r *StudentRepository) ListDetail(ctx context.Context, filter models.StudentFilter, p pagination.Params) ([]models.StudentDetail, pagination.Window, error) {
	return list[models.StudentDetail](ctx, r.q, "students_detail", studentSpec(true), studentFilters(filter), p)
}

// ListSummaries returns the parent rows for enrollment listings.
func (r *StudentRepository) ListSummaries(ctx context.Context, filter models.EnrollmentFilter, p pagination.Params) ([]models.StudentSummary, pagination.Window, error) {
	f := query.NewFilters().
		IntIn("student_id", "s.Student_Id", filter.StudentIDs).
		CheckInt("term_year_id", filter.TermYearID).
		Int("department_id", "s.Department_Id", filter.DepartmentID)
	return list[models.StudentSummary](ctx, r.q, "student_summaries", studentSummarySpec, f, p)
}

// ListForAkm returns the parent rows of the AKM listing.
func (r *StudentRepository) ListForAkm(ctx context.Context, filter models.AkmFilter, p pagination.Params) ([]models.StudentSummary, pagination.Window, error) {
	f := query.NewFilters().
		Int("student_id", "s.Student_Id", filter.StudentID).
		Equal("s.Nim", filter.Nim).
		Int("department_id", "s.Department_Id", filter.DepartmentID).
		Int("entry_year", "s.Entry_Year_Id", filter.EntryYear)
	return list[models.StudentSummary](ctx, r.q, "akm_students", studentSummarySpec, f, p)
}

// FindCredentialByNim loads the login fields of a student.
func (r *StudentRepository) FindCredentialByNim(ctx context.Context, nim string) (*models.StudentCredential, error) {
	stmt, args, err := r.q.builder.
		Select(
			"Student_Id AS student_id",
			"Nim AS nim",
			"Full_Name AS full_name",
			"Register_Number AS register_number",
			"COALESCE(Student_Password, '') AS student_password",
		).
		From("acd_student").
		Where(sq.Eq{"Nim": nim}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find student credential: %w", err)
	}

	var cred models.StudentCredential
	if err := r.q.db.GetContext(ctx, &cred, stmt, args...); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find student credential: %w", err)
	}
	return &cred, nil
}
