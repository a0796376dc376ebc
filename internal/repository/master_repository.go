package repository

import (
	"context"
	"strings"

	"github.com/noah-isme/simak-api/internal/models"
	"github.com/noah-isme/simak-api/pkg/pagination"
	"github.com/noah-isme/simak-api/pkg/query"
)

type masterTable struct {
	label      string
	table      string
	idColumn   string
	nameColumn string
}

func (t masterTable) spec() query.Spec {
	return query.Spec{
		From: t.table,
		Columns: []string{
			t.idColumn + " AS " + strings.ToLower(t.idColumn),
			t.nameColumn + " AS " + strings.ToLower(t.nameColumn),
		},
		OrderBy: []string{t.idColumn},
	}
}

var (
	departmentTable    = masterTable{"master_departments", "mstr_department", "Department_Id", "Department_Name"}
	classProgramTable  = masterTable{"master_class_programs", "mstr_class_program", "Class_Prog_Id", "Class_Program_Name"}
	religionTable      = masterTable{"master_religions", "mstr_religion", "Religion_Id", "Religion_Name"}
	maritalStatusTable = masterTable{"master_marital_statuses", "mstr_marital_status", "Marital_Status_Id", "Marital_Status_Type"}
)

// MasterRepository reads the small mstr_* reference tables.
type MasterRepository struct {
	q *Querier
}

// NewMasterRepository constructs a MasterRepository.
func NewMasterRepository(q *Querier) *MasterRepository {
	return &MasterRepository{q: q}
}

// Departments lists departments whose name contains search.
func (r *MasterRepository) Departments(ctx context.Context, search string) ([]models.Department, error) {
	return listMaster[models.Department](ctx, r.q, departmentTable, search)
}

// ClassPrograms lists class programs whose name contains search.
func (r *MasterRepository) ClassPrograms(ctx context.Context, search string) ([]models.ClassProgram, error) {
	return listMaster[models.ClassProgram](ctx, r.q, classProgramTable, search)
}

// Religions lists religions whose name contains search.
func (r *MasterRepository) Religions(ctx context.Context, search string) ([]models.Religion, error) {
	return listMaster[models.Religion](ctx, r.q, religionTable, search)
}

// MaritalStatuses lists marital statuses whose name contains search.
func (r *MasterRepository) MaritalStatuses(ctx context.Context, search string) ([]models.MaritalStatus, error) {
	return listMaster[models.MaritalStatus](ctx, r.q, maritalStatusTable, search)
}

func listMaster[T any](ctx context.Context, q *Querier, t masterTable, search string) ([]T, error) {
	f := query.NewFilters().Like(t.nameColumn, search)
	items, _, err := list[T](ctx, q, t.label, t.spec(), f, pagination.Params{})
	return items, err
}
