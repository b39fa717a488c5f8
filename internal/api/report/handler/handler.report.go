// Package reporthdl - handler cho domain report.
package reporthdl

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "vela_commerce/internal/api/base/handler"
	reportdto "vela_commerce/internal/api/report/dto"
	reportsvc "vela_commerce/internal/api/report/service"
	"vela_commerce/internal/common"
	"vela_commerce/internal/global"
	"vela_commerce/internal/logger"
)

// ReportHandler xử lý các route báo cáo (admin).
// Không embed BaseHandler: báo cáo chỉ sinh qua endpoint generate,
// không có bộ CRUD tự do.
type ReportHandler struct {
	ReportService *reportsvc.ReportService
}

// NewReportHandler tạo mới ReportHandler
func NewReportHandler() (*ReportHandler, error) {
	reportService, err := reportsvc.NewReportService()
	if err != nil {
		return nil, fmt.Errorf("failed to create report service: %v", err)
	}
	return &ReportHandler{ReportService: reportService}, nil
}

// HandleGenerate sinh báo cáo cho khoảng thời gian RFC3339
func (h *ReportHandler) HandleGenerate(c fiber.Ctx) error {
	input := new(reportdto.GenerateInput)
	if err := parseAndValidate(c, input); err != nil {
		basehdl.HandleResponse(c, nil, err)
		return nil
	}

	periodStart, err := parseRFC3339(input.PeriodStart)
	if err != nil {
		basehdl.HandleResponse(c, nil, err)
		return nil
	}
	periodEnd, err := parseRFC3339(input.PeriodEnd)
	if err != nil {
		basehdl.HandleResponse(c, nil, err)
		return nil
	}

	report, err := h.ReportService.Generate(c.Context(), input.Kind, periodStart, periodEnd)
	if err == nil {
		logger.LogAdmin("generate_report", "report", report.ID.Hex(), c, map[string]interface{}{
			"kind":       input.Kind,
			"artifactId": report.ArtifactID,
		})
	}
	basehdl.HandleResponse(c, report, err)
	return nil
}

// HandleList trả về danh sách báo cáo, lọc theo kind
func (h *ReportHandler) HandleList(c fiber.Ctx) error {
	page, _ := strconv.ParseInt(c.Query("page"), 10, 64)
	limit, _ := strconv.ParseInt(c.Query("limit"), 10, 64)
	result, err := h.ReportService.ListReports(c.Context(), c.Query("kind"), page, limit)
	basehdl.HandleResponse(c, result, err)
	return nil
}

// HandleGet trả về một báo cáo kèm payload
func (h *ReportHandler) HandleGet(c fiber.Ctx) error {
	rawID := c.Params("id")
	if !primitive.IsValidObjectID(rawID) {
		basehdl.HandleResponse(c, nil, common.NewError(
			common.ErrCodeValidationFormat,
			"ID báo cáo không đúng định dạng MongoDB ObjectID",
			common.StatusBadRequest,
			nil,
		))
		return nil
	}
	id, _ := primitive.ObjectIDFromHex(rawID)

	report, err := h.ReportService.FindReport(c.Context(), id)
	basehdl.HandleResponse(c, report, err)
	return nil
}

func parseAndValidate(c fiber.Ctx, input interface{}) error {
	if err := json.Unmarshal(c.Body(), input); err != nil {
		return common.WithDetails(common.ErrInvalidFormat, err.Error())
	}
	if err := global.Validate.Struct(input); err != nil {
		return common.WithDetails(common.ErrInvalidInput, err.Error())
	}
	return nil
}

func parseRFC3339(value string) (int64, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return 0, common.WithDetails(common.ErrInvalidFormat, map[string]interface{}{"value": value})
	}
	return t.UnixMilli(), nil
}
