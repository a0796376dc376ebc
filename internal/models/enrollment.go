package models

// KrsEntry is one course enrollment of a student.
type KrsEntry struct {
	StudentID        int64   `db:"student_id" json:"-"`
	KrsID            int64   `db:"krs_id" json:"Krs_Id"`
	TermYearID       int64   `db:"term_year_id" json:"Term_Year_Id"`
	CourseID         int64   `db:"course_id" json:"Course_Id"`
	CourseCode       *string `db:"course_code" json:"Course_Code"`
	CourseName       *string `db:"course_name" json:"Course_Name"`
	Sks              float64 `db:"sks" json:"Sks"`
	ClassProgID      *int64  `db:"class_prog_id" json:"Class_Prog_Id"`
	ClassProgramName *string `db:"class_program_name" json:"Class_Program_Name"`
	ClassID          *int64  `db:"class_id" json:"Class_Id"`
	ClassName        *string `db:"class_name" json:"Class_Name"`
}

// KhsEntry is a graded enrollment.
type KhsEntry struct {
	KrsEntry
	GradeLetter string   `db:"grade_letter" json:"Grade_Letter"`
	WeightValue *float64 `db:"weight_value" json:"Weight_Value"`
	BnkValue    *float64 `db:"bnk_value" json:"Bnk_Value"`
}

// EnrollmentFilter holds the KRS/KHS query inputs.
type EnrollmentFilter struct {
	StudentIDs   []string
	TermYearID   string
	DepartmentID string
}

// StudentKrs groups a student's enrollments.
type StudentKrs struct {
	StudentID    int64      `json:"Student_Id"`
	FullName     string     `json:"Full_Name"`
	Nim          string     `json:"Nim"`
	DepartmentID *int64     `json:"Department_Id"`
	TotalKrs     int        `json:"Total_Krs"`
	Krs          []KrsEntry `json:"Krs"`
}

// StudentKhs groups a student's graded enrollments.
type StudentKhs struct {
	StudentID    int64      `json:"Student_Id"`
	FullName     string     `json:"Full_Name"`
	Nim          string     `json:"Nim"`
	DepartmentID *int64     `json:"Department_Id"`
	TotalKhs     int        `json:"Total_Khs"`
	Khs          []KhsEntry `json:"Khs"`
}
