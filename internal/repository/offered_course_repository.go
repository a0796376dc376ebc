package repository

import (
	"context"

	"github.com/noah-isme/simak-api/internal/models"
	"github.com/noah-isme/simak-api/pkg/pagination"
	"github.com/noah-isme/simak-api/pkg/query"
)

var offeredCourseSpec = query.Spec{
	From: "acd_offered_course oc",
	Columns: []string{
		"oc.Offered_Course_Id AS offered_course_id",
		"oc.Department_Id AS department_id",
		"oc.Term_Year_Id AS term_year_id",
		"oc.Course_Id AS course_id",
		"oc.Class_Id AS class_id",
		"cp.Class_Program_Name AS class_program_name",
		"ty.Term_Year_Name AS term_year_name",
		"DATE(ty.Start_Date) AS start_date",
		"DATE(ty.End_Date) AS end_date",
		"c.Course_Code AS course_code",
		"c.Course_Name AS course_name",
		"cl.Class_Name AS class_name",
	},
	Joins: []query.Join{
		query.Left("mstr_class_program cp ON cp.Class_Prog_Id = oc.Class_Prog_Id"),
		query.Left("mstr_term_year ty ON ty.Term_Year_Id = oc.Term_Year_Id"),
		query.Left("acd_course c ON c.Course_Id = oc.Course_Id"),
		query.Left("mstr_class cl ON cl.Class_Id = oc.Class_Id"),
	},
	OrderBy: []string{"oc.Offered_Course_Id DESC"},
}

// OfferedCourseRepository reads acd_offered_course.
type OfferedCourseRepository struct {
	q *Querier
}

// NewOfferedCourseRepository constructs an OfferedCourseRepository.
func NewOfferedCourseRepository(q *Querier) *OfferedCourseRepository {
	return &OfferedCourseRepository{q: q}
}

// List returns offered courses, newest first.
func (r *OfferedCourseRepository) List(ctx context.Context, filter models.OfferedCourseFilter, p pagination.Params) ([]models.OfferedCourse, pagination.Window, error) {
	f := query.NewFilters().
		Int("department_id", "oc.Department_Id", filter.DepartmentID).
		Int("term_year_id", "oc.Term_Year_Id", filter.TermYearID).
		Int("course_id", "oc.Course_Id", filter.CourseID).
		Like("c.Course_Code", filter.CourseCode)
	return list[models.OfferedCourse](ctx, r.q, "offered_courses", offeredCourseSpec, f, p)
}
