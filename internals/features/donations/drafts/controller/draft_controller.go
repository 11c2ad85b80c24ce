package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	donationDTO "mosque_backend/internals/features/donations/donations/dto"
	"mosque_backend/internals/features/donations/drafts/dto"
	draftService "mosque_backend/internals/features/donations/drafts/service"
	helper "mosque_backend/internals/helpers"
)

type DraftController struct {
	Service  *draftService.DraftService
	Validate *validator.Validate
}

func NewDraftController(db *gorm.DB) *DraftController {
	return &DraftController{
		Service:  draftService.NewDraftService(db),
		Validate: validator.New(),
	}
}

// 🟢 POST /api/donations/drafts — type-selection step, opens the wizard.
// Guests are welcome: with no session the donation is anonymous.
func (ctrl *DraftController) Start(c *fiber.Ctx) error {
	var req dto.StartDraftRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Donation type is required")
	}

	draft, err := ctrl.Service.Start(c.UserContext(), sessionFromLocals(c), req.Type, req.Month)
	if err != nil {
		return draftError(c, err, "start draft")
	}
	return helper.JsonCreated(c, "Draft started", dto.ToDraftResponse(draft))
}

// 🟢 GET /api/donations/drafts/:id — step re-entry re-populates from here.
func (ctrl *DraftController) Get(c *fiber.Ctx) error {
	id, err := draftID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid draft id")
	}
	draft, err := ctrl.Service.Get(c.UserContext(), id)
	if err != nil {
		return draftError(c, err, "get draft")
	}
	return helper.JsonOK(c, "", dto.ToDraftResponse(draft))
}

// 🟢 PUT /api/donations/drafts/:id/amount
func (ctrl *DraftController) SetAmount(c *fiber.Ctx) error {
	var req dto.AmountStepRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	id, err := draftID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid draft id")
	}
	draft, err := ctrl.Service.SetAmount(c.UserContext(), id, req.Amount)
	if err != nil {
		return draftError(c, err, "amount step")
	}
	return helper.JsonUpdated(c, "", dto.ToDraftResponse(draft))
}

// 🟢 PUT /api/donations/drafts/:id/message
func (ctrl *DraftController) SetMessage(c *fiber.Ctx) error {
	var req dto.MessageStepRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	id, err := draftID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid draft id")
	}
	draft, err := ctrl.Service.SetMessage(c.UserContext(), id, req.Message)
	if err != nil {
		return draftError(c, err, "message step")
	}
	return helper.JsonUpdated(c, "", dto.ToDraftResponse(draft))
}

// 🟢 PUT /api/donations/drafts/:id/payment
func (ctrl *DraftController) SetPayment(c *fiber.Ctx) error {
	var req dto.PaymentStepRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	id, err := draftID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid draft id")
	}
	draft, err := ctrl.Service.SetPaymentMethod(c.UserContext(), id, req.PaymentMethod)
	if err != nil {
		return draftError(c, err, "payment step")
	}
	return helper.JsonUpdated(c, "", dto.ToDraftResponse(draft))
}

// 🟢 DELETE /api/donations/drafts/:id — abandon the flow.
func (ctrl *DraftController) Abandon(c *fiber.Ctx) error {
	id, err := draftID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid draft id")
	}
	if err := ctrl.Service.Abandon(c.UserContext(), id); err != nil {
		return draftError(c, err, "abandon draft")
	}
	return helper.JsonDeleted(c, "Draft discarded", nil)
}

// 🟢 POST /api/donations/drafts/:id/hold/press
func (ctrl *DraftController) Press(c *fiber.Ctx) error {
	id, err := draftID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid draft id")
	}
	draft, err := ctrl.Service.Press(c.UserContext(), id)
	if err != nil {
		return draftError(c, err, "hold press")
	}
	return helper.JsonOK(c, "Holding", dto.ToDraftResponse(draft))
}

// 🟢 POST /api/donations/drafts/:id/hold/release
func (ctrl *DraftController) Release(c *fiber.Ctx) error {
	id, err := draftID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid draft id")
	}
	draft, entry, err := ctrl.Service.Release(c.UserContext(), id)
	if err != nil {
		return draftError(c, err, "hold release")
	}

	resp := dto.ReleaseResponse{
		Committed: entry != nil,
		Draft:     dto.ToDraftResponse(draft),
	}
	if entry != nil {
		resp.Entry = donationDTO.ToDonationResponse(entry)
		return helper.JsonCreated(c, "Donation confirmed", resp)
	}
	return helper.JsonOK(c, "Hold released", resp)
}

// 🟢 GET /api/donations/drafts/:id/hold — progress for the progress bar.
func (ctrl *DraftController) HoldProgress(c *fiber.Ctx) error {
	id, err := draftID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid draft id")
	}
	progress, state, err := ctrl.Service.Progress(c.UserContext(), id)
	if err != nil {
		return draftError(c, err, "hold progress")
	}
	return helper.JsonOK(c, "", dto.HoldResponse{DraftID: id, State: state, Progress: progress})
}

/* ==========================
   Shared helpers
========================== */

func draftID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}

// sessionFromLocals builds the donor session from the optional-auth
// middleware; nil means a guest (anonymous) donor.
func sessionFromLocals(c *fiber.Ctx) *draftService.Session {
	idStr, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(idStr)
	if err != nil {
		return nil
	}
	name, _ := c.Locals("user_name").(string)
	email, _ := c.Locals("user_email").(string)
	return &draftService.Session{UserID: userID, Name: name, Email: email}
}

func draftError(c *fiber.Ctx, err error, op string) error {
	switch {
	case errors.Is(err, draftService.ErrStepInvalid):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, draftService.ErrDraftNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Draft not found")
	case errors.Is(err, draftService.ErrDraftClosed):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, draftService.ErrNotCommittable):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	default:
		log.Printf("[ERROR] %s: %v", op, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Something went wrong")
	}
}
