package sheet

import (
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"

	"github.com/liquidacion/backend/internal/models"
)

var (
	ErrMalformedInput    = errors.New("malformed input")
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

var SupportedExtensions = []string{".xlsx", ".xlsm", ".csv"}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"02/01/2006",
	"2/1/2006",
	"02/01/2006 15:04:05",
	"01-02-06",
}

type Reader struct {
	Validate *validator.Validate
}

func NewReader(v *validator.Validate) Reader {
	if v == nil {
		v = validator.New()
	}
	return Reader{Validate: v}
}

// ReadRecords decodes an uploaded timesheet into records. The file type is
// taken from the filename extension. Any missing column or unparseable cell
// fails the whole file.
func (r Reader) ReadRecords(filename string, src io.Reader) ([]models.Record, error) {
	var (
		rows     [][]string
		date1904 bool
		err      error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		rows, date1904, err = readWorkbookRows(src)
	case ".csv":
		rows, err = readCSVRows(src)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filename))
	}
	if err != nil {
		return nil, err
	}
	return r.parseRows(rows, date1904)
}

// readWorkbookRows returns the first sheet's rows and whether the workbook
// counts serial dates from 1904.
func readWorkbookRows(src io.Reader) ([][]string, bool, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, false, fmt.Errorf("%w: open workbook: %v", ErrMalformedInput, err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, false, fmt.Errorf("%w: workbook has no sheets", ErrMalformedInput)
	}
	props, err := f.GetWorkbookProps()
	if err != nil {
		return nil, false, fmt.Errorf("%w: read workbook properties: %v", ErrMalformedInput, err)
	}
	date1904 := props.Date1904 != nil && *props.Date1904

	// Raw values keep dates as serial numbers instead of the display format.
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, false, fmt.Errorf("%w: read rows: %v", ErrMalformedInput, err)
	}
	return rows, date1904, nil
}

func (r Reader) parseRows(rows [][]string, date1904 bool) ([]models.Record, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no header row", ErrMalformedInput)
	}
	idx, err := indexHeader(rows[0])
	if err != nil {
		return nil, err
	}

	out := make([]models.Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		rowNum := i + 2
		rec, err := r.parseRecord(idx, row, rowNum, date1904)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r Reader) parseRecord(idx columnIndex, row []string, rowNum int, date1904 bool) (models.Record, error) {
	rec := models.Record{
		Row:          rowNum,
		EmployeeID:   normalizeID(idx.get(row, models.ColEmployeeID)),
		EmployeeName: idx.get(row, models.ColEmployeeName),
		WorkCenter:   idx.get(row, models.ColWorkCenter),
		Activity:     idx.get(row, models.ColActivity),
	}

	date, err := parseDate(idx.get(row, models.ColDate), date1904)
	if err != nil {
		return models.Record{}, cellError(rowNum, models.ColDate, err)
	}
	rec.Date = date

	numbers := []struct {
		col string
		dst *float64
	}{
		{models.ColInspections, &rec.Inspections},
		{models.ColLM, &rec.LM},
		{models.ColSuspensions, &rec.Suspensions},
	}
	for _, n := range numbers {
		v, err := parseNumber(idx.get(row, n.col))
		if err != nil {
			return models.Record{}, cellError(rowNum, n.col, err)
		}
		*n.dst = v
	}

	if err := r.Validate.Struct(rec); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return models.Record{}, fmt.Errorf("%w: row %d: %s is %s", ErrMalformedInput, rowNum, models.ColEmployeeID, verrs[0].Tag())
		}
		return models.Record{}, fmt.Errorf("%w: row %d: %v", ErrMalformedInput, rowNum, err)
	}
	return rec, nil
}

func cellError(row int, col string, err error) error {
	return fmt.Errorf("%w: row %d column %s: %v", ErrMalformedInput, row, col, err)
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// parseNumber treats a blank cell as zero. NaN and infinities are text, not
// counts.
func parseNumber(v string) (float64, error) {
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || !finite(f) {
		return 0, fmt.Errorf("invalid number %q", v)
	}
	return f, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// parseDate accepts Excel serial dates and a few textual layouts. A blank
// cell yields the zero time.
func parseDate(v string, date1904 bool) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	if serial, err := strconv.ParseFloat(v, 64); err == nil {
		if !finite(serial) {
			return time.Time{}, fmt.Errorf("invalid date %q", v)
		}
		t, err := excelize.ExcelDateToTime(serial, date1904)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q", v)
		}
		return t, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", v)
}

// normalizeID turns numeric ids written as floats ("1032456789.0", "1.5E3")
// into their integer text.
func normalizeID(v string) string {
	if !strings.ContainsAny(v, ".eE") {
		return v
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f != float64(int64(f)) {
		return v
	}
	return strconv.FormatInt(int64(f), 10)
}
