// Package shippinghdl - handler cho domain shipping.
package shippinghdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "vela_commerce/internal/api/base/handler"
	shippingdto "vela_commerce/internal/api/shipping/dto"
	models "vela_commerce/internal/api/shipping/models"
	shippingsvc "vela_commerce/internal/api/shipping/service"
	"vela_commerce/internal/common"
	"vela_commerce/internal/logger"
)

// ZoneHandler xử lý các route khu vực giao hàng
type ZoneHandler struct {
	*basehdl.BaseHandler[models.ShippingZone, shippingdto.ZoneCreateInput, shippingdto.ZoneUpdateInput]
	ZoneService *shippingsvc.ZoneService
	RateService *shippingsvc.RateService
}

// NewZoneHandler tạo mới ZoneHandler
func NewZoneHandler() (*ZoneHandler, error) {
	zoneService, err := shippingsvc.NewZoneService()
	if err != nil {
		return nil, fmt.Errorf("failed to create zone service: %v", err)
	}
	rateService, err := shippingsvc.NewRateService()
	if err != nil {
		return nil, fmt.Errorf("failed to create rate service: %v", err)
	}
	return &ZoneHandler{
		BaseHandler: basehdl.NewBaseHandler[models.ShippingZone, shippingdto.ZoneCreateInput, shippingdto.ZoneUpdateInput](zoneService),
		ZoneService: zoneService,
		RateService: rateService,
	}, nil
}

// HandleSetDefault đặt zone làm mặc định (admin)
func (h *ZoneHandler) HandleSetDefault(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := parseShippingID(c, "zone")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		zone, err := h.ZoneService.SetDefault(c.Context(), id)
		if err == nil {
			logger.LogAdmin("set_default_zone", "shipping_zone", id.Hex(), c, nil)
		}
		h.HandleResponse(c, zone, err)
		return nil
	})
}

// HandleListZoneRates trả về biểu phí của một zone
func (h *ZoneHandler) HandleListZoneRates(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := parseShippingID(c, "zone")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		rates, err := h.RateService.ListByZone(c.Context(), id)
		if rates == nil && err == nil {
			rates = []models.ShippingRate{}
		}
		h.HandleResponse(c, rates, err)
		return nil
	})
}

// HandleQuote báo giá phí giao hàng cho quốc gia + subtotal (public)
func (h *ZoneHandler) HandleQuote(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(shippingdto.ShippingQuoteInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		zone, err := h.ZoneService.MatchZone(c.Context(), input.Country)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		rate, err := h.RateService.MatchRate(c.Context(), zone.ID, input.Subtotal, input.Weight)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, fiber.Map{
			"zone":    zone,
			"rate":    rate,
			"amount":  rate.Amount,
			"etaDays": rate.EtaDays,
		}, nil)
		return nil
	})
}

// RateHandler xử lý các route biểu phí giao hàng
type RateHandler struct {
	*basehdl.BaseHandler[models.ShippingRate, shippingdto.RateCreateInput, shippingdto.RateUpdateInput]
	RateService *shippingsvc.RateService
}

// NewRateHandler tạo mới RateHandler
func NewRateHandler() (*RateHandler, error) {
	rateService, err := shippingsvc.NewRateService()
	if err != nil {
		return nil, fmt.Errorf("failed to create rate service: %v", err)
	}
	return &RateHandler{
		BaseHandler: basehdl.NewBaseHandler[models.ShippingRate, shippingdto.RateCreateInput, shippingdto.RateUpdateInput](rateService),
		RateService: rateService,
	}, nil
}

func parseShippingID(c fiber.Ctx, label string) (primitive.ObjectID, error) {
	id := c.Params("id")
	if !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("ID %s không đúng định dạng MongoDB ObjectID", label),
			common.StatusBadRequest,
			nil,
		)
	}
	objID, _ := primitive.ObjectIDFromHex(id)
	return objID, nil
}
