package models

// TranscriptTerm is the per-term credit and weighted-grade sum of a student.
type TranscriptTerm struct {
	StudentID   int64   `db:"student_id"`
	TermYearID  int64   `db:"term_year_id"`
	SksSemester float64 `db:"sks_semester"`
	BnkTotal    float64 `db:"bnk_total"`
}

// AkmEntry is one term of a student's academic performance.
type AkmEntry struct {
	TermYearID   int64   `json:"term_year_id"`
	Sks          float64 `json:"sks"`
	SksKumulatif float64 `json:"sks_kumulatif"`
	BnkTotal     float64 `json:"bnk_total"`
	Ipk          float64 `json:"ipk"`
	IpkKumulatif float64 `json:"ipk_kumulatif"`
}

// StudentAkm lists a student's terms newest first.
type StudentAkm struct {
	Nama string     `json:"nama"`
	Nim  string     `json:"nim"`
	Akm  []AkmEntry `json:"akm"`
}

// AkmFilter holds the /akm query inputs.
type AkmFilter struct {
	StudentID    string
	Nim          string
	DepartmentID string
	EntryYear    string
}
