package service

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/noah-isme/simak-api/internal/dto"
	"github.com/noah-isme/simak-api/internal/models"
	appErrors "github.com/noah-isme/simak-api/pkg/errors"
	"github.com/noah-isme/simak-api/pkg/export"
	"github.com/noah-isme/simak-api/pkg/grouping"
	"github.com/noah-isme/simak-api/pkg/pagination"
)

type akmStudentRepository interface {
	ListForAkm(ctx context.Context, filter models.AkmFilter, p pagination.Params) ([]models.StudentSummary, pagination.Window, error)
}

type transcriptRepository interface {
	StreamTermTotals(ctx context.Context, studentIDs []int64, fn func(models.TranscriptTerm) error) error
}

var akmExportHeaders = []string{"nim", "nama", "term_year_id", "sks", "sks_kumulatif", "bnk_total", "ipk", "ipk_kumulatif"}

// AkmService computes per-term academic performance (AKM) for students.
type AkmService struct {
	students   akmStudentRepository
	transcript transcriptRepository
	logger     *zap.Logger
}

// NewAkmService constructs the AKM service.
func NewAkmService(students akmStudentRepository, transcript transcriptRepository, logger *zap.Logger) *AkmService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AkmService{students: students, transcript: transcript, logger: logger}
}

// List returns the selected students with their terms newest first.
func (s *AkmService) List(ctx context.Context, filter models.AkmFilter, p pagination.Params) (*dto.ListResult[models.StudentAkm], error) {
	students, window, err := s.students.ListForAkm(ctx, filter, p)
	if err != nil {
		return nil, internalErrorWithMessage(err, somethingWentWrong)
	}
	if window.Total == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "No students found")
	}

	terms := grouping.NewCollector[int64, grouping.TermTotal]()
	if err := s.transcript.StreamTermTotals(ctx, studentIDs(students), func(t models.TranscriptTerm) error {
		terms.Add(t.StudentID, grouping.TermTotal{TermYearID: t.TermYearID, Credits: t.SksSemester, Weighted: t.BnkTotal})
		return nil
	}); err != nil {
		return nil, internalErrorWithMessage(err, somethingWentWrong)
	}

	items := make([]models.StudentAkm, 0, len(students))
	for _, st := range students {
		items = append(items, models.StudentAkm{
			Nama: st.FullName,
			Nim:  st.Nim,
			Akm:  akmEntries(grouping.Accumulate(terms.Rows(st.StudentID))),
		})
	}
	return &dto.ListResult[models.StudentAkm]{Items: items, Window: window}, nil
}

// Export renders every matching student's AKM as a CSV or PDF document.
func (s *AkmService) Export(ctx context.Context, filter models.AkmFilter, rawFormat string) (*export.Document, error) {
	format, err := export.ParseFormat(rawFormat)
	if err != nil {
		fields := appErrors.FieldErrors{}
		fields.Add("format", "The selected format is invalid.")
		return nil, appErrors.Validation(fields)
	}

	result, err := s.List(ctx, filter, pagination.Params{})
	if err != nil {
		return nil, err
	}

	data := export.Dataset{Title: "Aktivitas Kuliah Mahasiswa", Headers: akmExportHeaders}
	for _, st := range result.Items {
		if len(st.Akm) == 0 {
			data.Rows = append(data.Rows, []string{st.Nim, st.Nama, "", "", "", "", "", ""})
			continue
		}
		for _, e := range st.Akm {
			data.Rows = append(data.Rows, []string{
				st.Nim,
				st.Nama,
				strconv.FormatInt(e.TermYearID, 10),
				formatNumber(e.Sks),
				formatNumber(e.SksKumulatif),
				formatNumber(e.BnkTotal),
				formatNumber(e.Ipk),
				formatNumber(e.IpkKumulatif),
			})
		}
	}

	doc, err := export.Build(format, "akm", data)
	if err != nil {
		return nil, internalErrorWithMessage(err, somethingWentWrong)
	}
	s.logger.Debug("akm export rendered", zap.String("format", string(format)), zap.Int("rows", len(data.Rows)))
	return doc, nil
}

func akmEntries(perf []grouping.Performance) []models.AkmEntry {
	out := make([]models.AkmEntry, len(perf))
	for i, p := range perf {
		out[i] = models.AkmEntry{
			TermYearID:   p.TermYearID,
			Sks:          grouping.Round2(p.Credits),
			SksKumulatif: p.CumulativeCredits,
			BnkTotal:     grouping.Round2(p.Weighted),
			Ipk:          p.GPA,
			IpkKumulatif: p.CumulativeGPA,
		}
	}
	return out
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
