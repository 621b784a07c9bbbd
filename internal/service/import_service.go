package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/edustat/markboard-backend/internal/config"
	"github.com/edustat/markboard-backend/internal/model"
)

// Sentinel errors for marks imports.
var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")
	// ErrInvalidRow aborts the whole import; no rows are committed.
	ErrInvalidRow = errors.New("invalid row")
)

// Allowed upload extensions for marks files.
var allowedExtensions = map[string]bool{
	".csv":  true,
	".xls":  true,
	".xlsx": true,
}

// Column-name aliases tried in priority order per logical field.
// Uploaded sheets come from several templates, so a few spellings of each
// header are accepted. Unknown extra columns are ignored.
var (
	studentIDAliases   = []string{"Student ID", "student_id", "studentId", "ID", "id"}
	studentNameAliases = []string{"Student Name", "student_name", "studentName", "Name", "name"}
	marksAliases       = []string{"Marks", "marks", "Score", "score"}
)

// MarksInserter commits a batch of marks records atomically.
type MarksInserter interface {
	InsertBatch(ctx context.Context, records []model.Marks) error
}

// ImportService parses uploaded marks files into records and commits them.
type ImportService struct {
	cfg   *config.Config
	marks MarksInserter
	cache filterInvalidator
	log   zerolog.Logger
}

// NewImportService creates a new ImportService. cache may be nil.
func NewImportService(cfg *config.Config, marks MarksInserter, cache filterInvalidator, log zerolog.Logger) *ImportService {
	return &ImportService{
		cfg:   cfg,
		marks: marks,
		cache: cache,
		log:   log.With().Str("component", "import_service").Logger(),
	}
}

// ImportUpload saves the uploaded file to a temporary path, parses it, and
// inserts one marks record per row, denormalizing the class context onto
// every record. A single malformed row aborts the entire import and nothing
// is committed. The temporary file is removed on every exit path.
func (s *ImportService) ImportUpload(ctx context.Context, file multipart.File, header *multipart.FileHeader, cc model.ClassContext, paper string) (*model.ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		return nil, fmt.Errorf("%w: %s (allowed: .csv, .xls, .xlsx)", ErrUnsupportedFileType, ext)
	}

	if header.Size > s.cfg.MaxUploadBytes {
		return nil, fmt.Errorf("%w: %d bytes (max: %d)", ErrFileTooLarge, header.Size, s.cfg.MaxUploadBytes)
	}

	tmpPath, err := s.saveTemp(file, ext)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := os.Remove(tmpPath); err != nil {
			s.log.Warn().Err(err).Str("path", tmpPath).Msg("Failed to remove temp upload")
		}
	}()

	var rows []rowValues
	if ext == ".csv" {
		rows, err = parseCSV(tmpPath)
	} else {
		rows, err = parseSpreadsheet(tmpPath)
	}
	if err != nil {
		return nil, err
	}

	records, err := buildRecords(rows, cc, paper)
	if err != nil {
		return nil, err
	}

	if err := s.marks.InsertBatch(ctx, records); err != nil {
		return nil, fmt.Errorf("insert marks: %w", err)
	}

	s.invalidateFilters(ctx)

	s.log.Info().
		Int("rows", len(records)).
		Str("subject", cc.Subject).
		Str("division", cc.Division).
		Str("paper", paper).
		Msg("Marks imported")

	return &model.ImportResult{Inserted: len(records), Context: cc}, nil
}

// saveTemp writes the upload to the upload directory under a UUID filename.
func (s *ImportService) saveTemp(file multipart.File, ext string) (string, error) {
	if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	tmpPath := filepath.Join(s.cfg.UploadDir, uuid.New().String()+ext)
	dst, err := os.Create(tmpPath)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("write temp file: %w", err)
	}
	return tmpPath, nil
}

func (s *ImportService) invalidateFilters(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("Filter cache invalidation failed")
	}
}

// rowValues is one data row keyed by its (trimmed) header names.
type rowValues map[string]string

// resolveAlias returns the value of the first alias present in the row.
// The boolean reports whether any alias column existed at all.
func resolveAlias(row rowValues, aliases []string) (string, bool) {
	for _, key := range aliases {
		if v, ok := row[key]; ok {
			return strings.TrimSpace(v), true
		}
	}
	return "", false
}

// buildRecords validates every parsed row and constructs marks records with
// the shared class context denormalized onto each. Row numbers in errors are
// 1-based data rows (the header is row 0).
func buildRecords(rows []rowValues, cc model.ClassContext, paper string) ([]model.Marks, error) {
	now := time.Now().UTC()
	records := make([]model.Marks, 0, len(rows))

	for i, row := range rows {
		studentID, _ := resolveAlias(row, studentIDAliases)
		if studentID == "" {
			return nil, fmt.Errorf("%w: row %d: missing student id", ErrInvalidRow, i+1)
		}

		studentName, _ := resolveAlias(row, studentNameAliases)
		if studentName == "" {
			return nil, fmt.Errorf("%w: row %d: missing student name", ErrInvalidRow, i+1)
		}

		// A missing or empty marks column defaults to 0; anything present
		// must parse as a number.
		score := 0.0
		if raw, ok := resolveAlias(row, marksAliases); ok && raw != "" {
			parsed, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: marks %q is not a number", ErrInvalidRow, i+1, raw)
			}
			score = parsed
		}

		records = append(records, model.Marks{
			StudentID:   studentID,
			StudentName: studentName,
			Subject:     cc.Subject,
			Division:    cc.Division,
			Department:  cc.Department,
			Year:        cc.Year,
			Paper:       paper,
			Marks:       score,
			UploadedAt:  now,
		})
	}
	return records, nil
}

// parseCSV streams the file row by row. The first record is the header.
func parseCSV(path string) ([]rowValues, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // Tolerate ragged rows; missing cells read as absent.
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: unreadable header: %v", ErrInvalidRow, err)
	}
	keys := normalizeHeader(header)

	var rows []rowValues
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRow, err)
		}
		rows = append(rows, zipRow(keys, record))
	}
	return rows, nil
}

// parseSpreadsheet loads the file fully and converts the first sheet into
// header-keyed rows. Only OOXML workbooks are readable; legacy BIFF .xls
// files pass the extension gate but fail here with a descriptive error.
func parseSpreadsheet(path string) ([]rowValues, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: unreadable spreadsheet: %v", ErrInvalidRow, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %q: %v", ErrInvalidRow, sheets[0], err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	keys := normalizeHeader(raw[0])
	rows := make([]rowValues, 0, len(raw)-1)
	for _, record := range raw[1:] {
		rows = append(rows, zipRow(keys, record))
	}
	return rows, nil
}

// normalizeHeader trims whitespace and strips a UTF-8 BOM from the first cell.
func normalizeHeader(header []string) []string {
	keys := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\uFEFF")
		}
		keys[i] = strings.TrimSpace(h)
	}
	return keys
}

// zipRow pairs header keys with cell values. Cells beyond the header width
// are ignored; short rows simply lack the trailing keys.
func zipRow(keys []string, record []string) rowValues {
	row := make(rowValues, len(keys))
	for i, key := range keys {
		if key == "" || i >= len(record) {
			continue
		}
		row[key] = record[i]
	}
	return row
}
