package handler

import (
	"errors"

	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/core/validation"
	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/reference/domain"

	"github.com/gofiber/fiber/v2"
)

// ReferenceHandler serves the read-only reference tables and carrier selection.
type ReferenceHandler struct {
	ref       *domain.Reference
	validator *validation.Validator
}

// NewReferenceHandler creates a new ReferenceHandler.
func NewReferenceHandler(ref *domain.Reference, validator *validation.Validator) *ReferenceHandler {
	return &ReferenceHandler{
		ref:       ref,
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

// CarrierOptionsQuery holds the query parameters of GET /carriers/options.
type CarrierOptionsQuery struct {
	// State is the two-letter destination state.
	State string `query:"state" validate:"required,len=2"`
	// Zone is the destination zone, 1 through 8.
	Zone int `query:"zone" validate:"required,min=1,max=8"`
	// Tier is the requested service tier; defaults to Ground.
	Tier string `query:"tier" validate:"omitempty,oneof=Priority Expedited Ground"`
}

// CarrierOptionsResponse lists ranked carrier candidates.
type CarrierOptionsResponse struct {
	// State echoes the requested state.
	State string `json:"state"`
	// Zone echoes the requested zone.
	Zone int `json:"zone"`
	// Tier is the tier used for ranking.
	Tier domain.Tier `json:"tier"`
	// ZoneEligible is true when the tier's policy covers the zone.
	ZoneEligible bool `json:"zone_eligible"`
	// Carriers holds the ranked candidates.
	Carriers []domain.CarrierOption `json:"carriers"`
}

// ReferenceResponse bundles the static reference tables.
type ReferenceResponse struct {
	// Zones is the zone reference table.
	Zones []domain.Zone `json:"zones"`
	// Carriers is the carrier directory.
	Carriers []domain.Carrier `json:"carriers"`
	// Tiers is the service tier policy.
	Tiers []domain.TierPolicy `json:"tiers"`
}

// GetCarrierOptions godoc
// @Summary Rank carriers for a destination
// @Description Applies the carrier selection policy to a destination state, zone and service tier
// @Tags reference
// @Produce json
// @Param state query string true "Two-letter destination state"
// @Param zone query int true "Destination zone (1-8)"
// @Param tier query string false "Service tier (Priority, Expedited, Ground)"
// @Success 200 {object} CarrierOptionsResponse
// @Failure 400 {object} ErrorResponse
// @Router /carriers/options [get]
func (h *ReferenceHandler) GetCarrierOptions(c *fiber.Ctx) error {
	var q CarrierOptionsQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid query parameters",
			RayID:   rayID(c),
		})
	}

	if err := h.validator.Validate(q); err != nil {
		if errors.Is(err, validation.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Message: err.Error(),
				RayID:   rayID(c),
			})
		}
		return err
	}

	tier := domain.TierGround
	if t, ok := domain.ParseTier(q.Tier); ok {
		tier = t
	}
	policy, _ := h.ref.TierPolicy(tier)

	carriers := h.ref.SelectCarriers(q.State, q.Zone, tier)
	if carriers == nil {
		carriers = []domain.CarrierOption{}
	}

	return c.JSON(CarrierOptionsResponse{
		State:        q.State,
		Zone:         q.Zone,
		Tier:         tier,
		ZoneEligible: policy.ServesZone(q.Zone),
		Carriers:     carriers,
	})
}

// GetReference godoc
// @Summary Get reference tables
// @Description Returns the zone table, carrier directory and service tier policy
// @Tags reference
// @Produce json
// @Success 200 {object} ReferenceResponse
// @Router /reference [get]
func (h *ReferenceHandler) GetReference(c *fiber.Ctx) error {
	return c.JSON(ReferenceResponse{
		Zones:    h.ref.Zones(),
		Carriers: h.ref.Carriers(),
		Tiers:    h.ref.TierPolicies(),
	})
}

func rayID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}
