package models

// OfferedCourse is a course opened for a class in a term.
type OfferedCourse struct {
	OfferedCourseID  int64   `db:"offered_course_id" json:"Offered_Course_Id"`
	DepartmentID     *int64  `db:"department_id" json:"Department_Id"`
	TermYearID       *int64  `db:"term_year_id" json:"Term_Year_Id"`
	CourseID         *int64  `db:"course_id" json:"Course_Id"`
	ClassID          *int64  `db:"class_id" json:"Class_Id"`
	ClassProgramName *string `db:"class_program_name" json:"Class_Program_Name"`
	TermYearName     *string `db:"term_year_name" json:"Term_Year_Name"`
	StartDate        Date    `db:"start_date" json:"Start_Date"`
	EndDate          Date    `db:"end_date" json:"End_Date"`
	CourseCode       *string `db:"course_code" json:"Course_Code"`
	CourseName       *string `db:"course_name" json:"Course_Name"`
	ClassName        *string `db:"class_name" json:"Class_Name"`
}

// OfferedCourseFilter holds the /offered-course query inputs.
type OfferedCourseFilter struct {
	DepartmentID string
	TermYearID   string
	CourseID     string
	CourseCode   string
}
