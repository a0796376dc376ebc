package repository

import (
	"context"
	"strconv"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/simak-api/internal/models"
	"github.com/noah-isme/simak-api/pkg/query"
)

// studentBatchSize bounds the IN list of a single child query.
const studentBatchSize = 1000

var krsSpec = query.Spec{
	From: "acd_student_krs krs",
	Columns: []string{
		"krs.Student_Id AS student_id",
		"krs.Krs_Id AS krs_id",
		"krs.Term_Year_Id AS term_year_id",
		"krs.Course_Id AS course_id",
		"c.Course_Code AS course_code",
		"c.Course_Name AS course_name",
		"krs.Sks AS sks",
		"krs.Class_Prog_Id AS class_prog_id",
		"cp.Class_Program_Name AS class_program_name",
		"krs.Class_Id AS class_id",
		"cl.Class_Name AS class_name",
	},
	Joins: []query.Join{
		query.Left("acd_course c ON krs.Course_Id = c.Course_Id"),
		query.Left("mstr_class_program cp ON krs.Class_Prog_Id = cp.Class_Prog_Id"),
		query.Left("mstr_class cl ON krs.Class_Id = cl.Class_Id"),
	},
	OrderBy: []string{"krs.Student_Id", "krs.Krs_Id"},
}

var khsSpec = query.Spec{
	From: "acd_student_khs khs",
	Columns: append(append([]string{}, krsSpec.Columns...),
		"gl.Grade_Letter AS grade_letter",
		"khs.Weight_Value AS weight_value",
		"khs.Bnk_Value AS bnk_value",
	),
	Joins: []query.Join{
		query.Inner("acd_grade_letter gl ON khs.Grade_Letter_Id = gl.Grade_Letter_Id"),
		query.Inner("acd_student_krs krs ON khs.Krs_Id = krs.Krs_Id"),
		query.Inner("acd_course c ON krs.Course_Id = c.Course_Id"),
		query.Left("mstr_class_program cp ON krs.Class_Prog_Id = cp.Class_Prog_Id"),
		query.Left("mstr_class cl ON krs.Class_Id = cl.Class_Id"),
	},
	OrderBy: []string{"krs.Student_Id", "krs.Krs_Id"},
}

// EnrollmentRepository streams KRS and KHS rows for a set of students.
type EnrollmentRepository struct {
	q *Querier
}

// NewEnrollmentRepository constructs an EnrollmentRepository.
func NewEnrollmentRepository(q *Querier) *EnrollmentRepository {
	return &EnrollmentRepository{q: q}
}

// StreamKrs emits the enrollments of studentIDs ordered by student and KRS id.
func (r *EnrollmentRepository) StreamKrs(ctx context.Context, studentIDs []int64, termYearID string, fn func(models.KrsEntry) error) error {
	return streamByStudent(ctx, r.q, "student_krs", krsSpec, studentIDs, termYearID, fn)
}

// StreamKhs emits the graded enrollments of studentIDs ordered by student and KRS id.
func (r *EnrollmentRepository) StreamKhs(ctx context.Context, studentIDs []int64, termYearID string, fn func(models.KhsEntry) error) error {
	return streamByStudent(ctx, r.q, "student_khs", khsSpec, studentIDs, termYearID, fn)
}

// streamByStudent queries in batches of ascending student ids so the overall stream stays
// ordered by student.
func streamByStudent[T any](ctx context.Context, q *Querier, label string, spec query.Spec, studentIDs []int64, termYearID string, fn func(T) error) error {
	for start := 0; start < len(studentIDs); start += studentBatchSize {
		end := start + studentBatchSize
		if end > len(studentIDs) {
			end = len(studentIDs)
		}

		f := query.NewFilters().
			IntIn("student_id", "krs.Student_Id", formatIDs(studentIDs[start:end])).
			Int("term_year_id", "krs.Term_Year_Id", termYearID)
		if err := f.Err(); err != nil {
			return err
		}

		_, err := q.stream(ctx, label, spec.Select(q.builder, f), func(rows *sqlx.Rows) error {
			var item T
			if err := rows.StructScan(&item); err != nil {
				return err
			}
			return fn(item)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func formatIDs(ids []int64) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = strconv.FormatInt(id, 10)
	}
	return out
}
