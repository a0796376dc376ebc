package models

// Department is a mstr_department row.
type Department struct {
	DepartmentID   int64  `db:"department_id" json:"Department_Id"`
	DepartmentName string `db:"department_name" json:"Department_Name"`
}

// ClassProgram is a mstr_class_program row.
type ClassProgram struct {
	ClassProgID      int64  `db:"class_prog_id" json:"Class_Prog_Id"`
	ClassProgramName string `db:"class_program_name" json:"Class_Program_Name"`
}

// Religion is a mstr_religion row.
type Religion struct {
	ReligionID   int64  `db:"religion_id" json:"Religion_Id"`
	ReligionName string `db:"religion_name" json:"Religion_Name"`
}

// MaritalStatus is a mstr_marital_status row.
type MaritalStatus struct {
	MaritalStatusID   int64  `db:"marital_status_id" json:"Marital_Status_Id"`
	MaritalStatusType string `db:"marital_status_type" json:"Marital_Status_Type"`
}
