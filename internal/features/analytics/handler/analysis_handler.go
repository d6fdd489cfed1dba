package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/core/validation"
	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/analytics/domain"
	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/analytics/ports"
	shipdomain "github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/shipments/domain"
	shipservice "github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/shipments/service"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultDataset = "complete"
	defaultLimit   = 100

	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimeCSV  = "text/csv; charset=utf-8"
)

// AnalysisHandler handles HTTP requests for shipment analyses.
type AnalysisHandler struct {
	service   ports.AnalysisService
	exporter  ports.Exporter
	validator *validation.Validator
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(service ports.AnalysisService, exporter ports.Exporter, validator *validation.Validator) *AnalysisHandler {
	return &AnalysisHandler{
		service:   service,
		exporter:  exporter,
		validator: validator,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// RemoteRequest is the body of POST /analysis/remote.
type RemoteRequest struct {
	// URL points at a CSV or Excel export reachable over HTTP(S).
	URL string `json:"url" validate:"required,url"`
}

// DemoQuery holds the query parameters of GET /analysis/demo.
type DemoQuery struct {
	// Dataset selects the synthetic dataset; defaults to complete.
	Dataset string `query:"dataset" validate:"omitempty,oneof=complete sample"`
}

// RecordsQuery holds the paging parameters of GET /analysis/{id}/records.
type RecordsQuery struct {
	// Offset is the index of the first record to return.
	Offset int `query:"offset" validate:"min=0"`
	// Limit is the page size; defaults to 100.
	Limit int `query:"limit" validate:"omitempty,min=1,max=1000"`
}

// RecordsResponse is one page of a normalized record set.
type RecordsResponse struct {
	// ID is the analysis the records belong to.
	ID string `json:"id"`
	// Total is the number of records in the set.
	Total int `json:"total"`
	// Offset is the index of the first returned record.
	Offset int `json:"offset"`
	// Limit is the page size used.
	Limit int `json:"limit"`
	// Origins records how each canonical field was populated.
	Origins map[shipdomain.Field]shipdomain.Origin `json:"origins"`
	// Records is the requested page.
	Records []shipdomain.Shipment `json:"records"`
}

// Upload godoc
// @Summary Analyze an uploaded shipment export
// @Description Normalizes a CSV or Excel export and runs every analyzer over it
// @Tags analysis
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV (.csv, .tsv, .txt) or Excel (.xlsx) export"
// @Success 201 {object} domain.Report
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /analysis [post]
func (h *AnalysisHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "multipart field \"file\" is required",
			RayID:   rayID(c),
		})
	}

	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "failed to read uploaded file",
			RayID:   rayID(c),
		})
	}
	defer f.Close()

	analysis, err := h.service.AnalyzeUpload(c.UserContext(), fh.Filename, f)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(analysis.Report)
}

// Remote godoc
// @Summary Analyze a remote shipment export
// @Description Downloads a CSV or Excel export and runs every analyzer over it
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body RemoteRequest true "Export location"
// @Success 201 {object} domain.Report
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /analysis/remote [post]
func (h *AnalysisHandler) Remote(c *fiber.Ctx) error {
	var req RemoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   rayID(c),
		})
	}
	if err := h.validator.Validate(req); err != nil {
		return invalid(c, err)
	}

	analysis, err := h.service.AnalyzeRemote(c.UserContext(), req.URL)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(analysis.Report)
}

// Demo godoc
// @Summary Analyze a synthetic dataset
// @Description Generates a reproducible demo dataset and runs every analyzer over it
// @Tags analysis
// @Produce json
// @Param dataset query string false "Dataset name (complete, sample)"
// @Success 200 {object} domain.Report
// @Failure 400 {object} ErrorResponse
// @Router /analysis/demo [get]
func (h *AnalysisHandler) Demo(c *fiber.Ctx) error {
	var q DemoQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid query parameters",
			RayID:   rayID(c),
		})
	}
	if err := h.validator.Validate(q); err != nil {
		return invalid(c, err)
	}

	dataset := q.Dataset
	if dataset == "" {
		dataset = defaultDataset
	}

	analysis, err := h.service.AnalyzeDemo(c.UserContext(), dataset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(analysis.Report)
}

// Get godoc
// @Summary Get an analysis report
// @Description Returns the stored results and normalization summary of an analysis
// @Tags analysis
// @Produce json
// @Param id path string true "Analysis ID"
// @Success 200 {object} domain.Report
// @Failure 404 {object} ErrorResponse
// @Router /analysis/{id} [get]
func (h *AnalysisHandler) Get(c *fiber.Ctx) error {
	analysis, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(analysis.Report)
}

// Records godoc
// @Summary List normalized records
// @Description Returns one page of the canonical record set an analysis was computed from
// @Tags analysis
// @Produce json
// @Param id path string true "Analysis ID"
// @Param offset query int false "Index of the first record"
// @Param limit query int false "Page size (1-1000, default 100)"
// @Success 200 {object} RecordsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /analysis/{id}/records [get]
func (h *AnalysisHandler) Records(c *fiber.Ctx) error {
	var q RecordsQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid query parameters",
			RayID:   rayID(c),
		})
	}
	if err := h.validator.Validate(q); err != nil {
		return invalid(c, err)
	}
	if q.Limit == 0 {
		q.Limit = defaultLimit
	}

	analysis, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}

	resp := RecordsResponse{
		ID:      analysis.Report.ID,
		Offset:  q.Offset,
		Limit:   q.Limit,
		Records: []shipdomain.Shipment{},
	}
	if rs := analysis.RecordSet; rs != nil {
		resp.Total = rs.Len()
		resp.Origins = rs.Origins
		if q.Offset < rs.Len() {
			end := min(q.Offset+q.Limit, rs.Len())
			resp.Records = rs.Records[q.Offset:end]
		}
	}
	return c.JSON(resp)
}

// ExportWorkbook godoc
// @Summary Download the analysis workbook
// @Description Builds an Excel workbook with a summary, the raw data and one sheet per view
// @Tags analysis
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Analysis ID"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /analysis/{id}/export.xlsx [get]
func (h *AnalysisHandler) ExportWorkbook(c *fiber.Ctx) error {
	return h.export(c, "xlsx", mimeXLSX, h.exporter.Workbook)
}

// ExportSummary godoc
// @Summary Download the summary CSV
// @Description Builds a Metric,Value CSV of the headline figures
// @Tags analysis
// @Produce text/csv
// @Param id path string true "Analysis ID"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /analysis/{id}/summary.csv [get]
func (h *AnalysisHandler) ExportSummary(c *fiber.Ctx) error {
	return h.export(c, "csv", mimeCSV, h.exporter.SummaryCSV)
}

func (h *AnalysisHandler) export(c *fiber.Ctx, ext, mime string, build func(context.Context, *domain.Analysis) ([]byte, error)) error {
	analysis, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}

	body, err := build(c.UserContext(), analysis)
	if err != nil {
		return fail(c, err)
	}

	c.Set(fiber.HeaderContentType, mime)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "transitiq-"+analysis.Report.ID+"."+ext))
	return c.Send(body)
}

// invalid writes a 400 for rule failures and passes other errors to fiber.
func invalid(c *fiber.Ctx, err error) error {
	if errors.Is(err, validation.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	}
	return err
}

// fail maps service errors to HTTP statuses.
func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, shipservice.ErrUnsupportedFormat), errors.Is(err, shipservice.ErrUnknownDataset):
		status = fiber.StatusBadRequest
	case errors.Is(err, shipservice.ErrUnreadableTable), errors.Is(err, shipservice.ErrEmptyTable):
		status = fiber.StatusUnprocessableEntity
	case errors.Is(err, shipservice.ErrRemoteForbidden):
		status = fiber.StatusForbidden
	case errors.Is(err, shipservice.ErrRemoteFetch):
		status = fiber.StatusBadGateway
	case errors.Is(err, domain.ErrReportNotFound):
		status = fiber.StatusNotFound
	}

	return c.Status(status).JSON(ErrorResponse{
		Message: err.Error(),
		RayID:   rayID(c),
	})
}

func rayID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}
