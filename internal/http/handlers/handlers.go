package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/liquidacion/backend/internal/http/middleware"
	"github.com/liquidacion/backend/internal/models"
	"github.com/liquidacion/backend/internal/service"
	"github.com/liquidacion/backend/internal/sheet"
	"github.com/liquidacion/backend/internal/utils"
)

const (
	uploadField       = "file"
	xlsxContentType   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	FingerprintHeader = "X-Report-Fingerprint"
)

type Handler struct {
	Reader         sheet.Reader
	Logger         zerolog.Logger
	ReportFilename string
	ReportSheet    string
}

type UploadForm struct {
	Field           string   `json:"field"`
	Extensions      []string `json:"extensions"`
	RequiredColumns []string `json:"required_columns"`
	OutputColumns   []string `json:"output_columns"`
}

type PreviewResponse struct {
	Columns     []string           `json:"columns"`
	Rows        []models.ReportRow `json:"rows"`
	Count       int                `json:"count"`
	Fingerprint string             `json:"fingerprint"`
}

func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Upload form description
// @Description Field name, accepted extensions and columns of the liquidation upload
// @Tags liquidacion
// @Produce json
// @Success 200 {object} UploadForm
// @Router /nomina [get]
func (h *Handler) Form(c *gin.Context) {
	c.JSON(http.StatusOK, UploadForm{
		Field:           uploadField,
		Extensions:      sheet.SupportedExtensions,
		RequiredColumns: models.SourceColumns,
		OutputColumns:   models.ReportColumns,
	})
}

// @Summary Liquidate timesheet
// @Description Upload a timesheet export and download the liquidation workbook
// @Tags liquidacion
// @Accept multipart/form-data
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param file formData file true "timesheet .xlsx or .csv"
// @Success 200 {file} file
// @Failure 400 {object} map[string]any
// @Failure 422 {object} map[string]any
// @Router /nomina [post]
func (h *Handler) Liquidate(c *gin.Context) {
	report, ok := h.computeUpload(c)
	if !ok {
		return
	}
	data, err := sheet.WriteReport(report, h.ReportSheet)
	if err != nil {
		h.Logger.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("failed to write report")
		writeError(c, http.StatusInternalServerError, "REPORT_ERROR", "Failed to write report", err.Error())
		return
	}

	filename := h.ReportFilename
	if filename == "" {
		filename = "Liquidacion__Bonificaciones.xlsx"
	}
	c.Header(FingerprintHeader, utils.ReportFingerprint(report))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

// @Summary Preview liquidation
// @Description Upload a timesheet export and get the liquidation rows as JSON
// @Tags liquidacion
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "timesheet .xlsx or .csv"
// @Success 200 {object} PreviewResponse
// @Failure 400 {object} map[string]any
// @Failure 422 {object} map[string]any
// @Router /api/liquidacion/preview [post]
func (h *Handler) Preview(c *gin.Context) {
	report, ok := h.computeUpload(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, PreviewResponse{
		Columns:     report.Columns,
		Rows:        report.Rows,
		Count:       len(report.Rows),
		Fingerprint: utils.ReportFingerprint(report),
	})
}

// computeUpload reads the uploaded file and runs the liquidation. On failure
// it writes the error response and returns false.
func (h *Handler) computeUpload(c *gin.Context) (models.Report, bool) {
	rid := middleware.GetRequestID(c)
	fh, err := c.FormFile(uploadField)
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "file required", nil)
		return models.Report{}, false
	}
	f, err := fh.Open()
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "failed to open upload", err.Error())
		return models.Report{}, false
	}
	defer f.Close()

	records, err := h.Reader.ReadRecords(fh.Filename, f)
	if err != nil {
		h.Logger.Warn().Err(err).Str("request_id", rid).Str("filename", fh.Filename).Msg("upload rejected")
		switch {
		case errors.Is(err, sheet.ErrUnsupportedFormat):
			writeError(c, http.StatusBadRequest, "UNSUPPORTED_FORMAT", "file must be .xlsx, .xlsm or .csv", err.Error())
		case errors.Is(err, sheet.ErrMalformedInput):
			writeError(c, http.StatusUnprocessableEntity, "MALFORMED_INPUT", "Malformed input", err.Error())
		default:
			writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "failed to read upload", err.Error())
		}
		return models.Report{}, false
	}

	report := service.ComputeReport(records)
	h.Logger.Info().
		Str("request_id", rid).
		Str("filename", fh.Filename).
		Int("records", len(records)).
		Int("employees", len(report.Rows)).
		Msg("liquidation computed")
	return report, true
}

func writeError(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
