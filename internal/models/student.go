package models

// Student is the compact student listing row.
type Student struct {
	StudentID      int64   `db:"student_id" json:"Student_Id"`
	Nim            string  `db:"nim" json:"Nim"`
	RegisterNumber *string `db:"register_number" json:"Register_Number"`
	FullName       string  `db:"full_name" json:"Full_Name"`
	Department     *string `db:"department" json:"Department"`
	ClassProgram   *string `db:"class_program" json:"Class_Program"`
	EntryYear      *int64  `db:"entry_year" json:"Entry_Year"`
	EntryTermID    *int64  `db:"entry_term_id" json:"Entry_Term_Id"`
}

// StudentDetail extends Student with the personal fields returned when detail is requested.
type StudentDetail struct {
	Student
	Religion       *string `db:"religion" json:"Religion"`
	MaritalStatus  *string `db:"marital_status" json:"Marital_Status"`
	BirthPlace     *string `db:"birth_place" json:"Birth_Place"`
	BirthDate      Date    `db:"birth_date" json:"Birth_Date"`
	Nisn           *string `db:"nisn" json:"Nisn"`
	Nik            *string `db:"nik" json:"Nik"`
	EmailCorporate *string `db:"email_corporate" json:"Email_Corporate"`
	PhoneMobile    *string `db:"phone_mobile" json:"Phone_Mobile"`
}

// StudentFilter holds the /students query inputs.
type StudentFilter struct {
	StudentIDs     []string
	Nim            string
	RegisterNumber string
	DepartmentID   string
	EntryYear      string
	Detail         bool
}

// HasIdentity reports whether the filter targets specific students.
func (f StudentFilter) HasIdentity() bool {
	return len(f.StudentIDs) > 0 || f.Nim != "" || f.RegisterNumber != ""
}

// StudentSummary is the parent row of KRS, KHS and AKM listings.
type StudentSummary struct {
	StudentID    int64  `db:"student_id"`
	FullName     string `db:"full_name"`
	Nim          string `db:"nim"`
	DepartmentID *int64 `db:"department_id"`
}

// StudentCredential carries the fields needed to verify a student login.
type StudentCredential struct {
	StudentID      int64   `db:"student_id" json:"Student_Id"`
	Nim            string  `db:"nim" json:"Nim"`
	FullName       string  `db:"full_name" json:"Full_Name"`
	RegisterNumber *string `db:"register_number" json:"Register_Number"`
	PasswordHash   string  `db:"student_password" json:"-"`
}
