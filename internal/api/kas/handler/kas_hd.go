package kasHandler

import (
	"errors"
	"time"

	"github.com/qistanaushaf/Adkeu/internal/api/kas"
	"github.com/qistanaushaf/Adkeu/internal/entity"
	contextPkg "github.com/qistanaushaf/Adkeu/pkg/context"
	"github.com/qistanaushaf/Adkeu/pkg/handlerUtil"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func toMemberResponse(member entity.MemberKas) kas.MemberResponse {
	payments := make(map[string]bool, len(member.Payments))
	for month, paid := range member.Payments {
		payments[string(month)] = paid
	}

	lateStatus := make(map[string]bool, len(member.LateStatus))
	for month, late := range member.LateStatus {
		lateStatus[string(month)] = late
	}

	return kas.MemberResponse{
		ID:         member.ID,
		Name:       member.Name,
		Payments:   payments,
		LateStatus: lateStatus,
	}
}

func (h *KasHandler) GetDivisions(ctx *fiber.Ctx) error {
	errHandler := handlerUtil.New(h.log)

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, kas.DivisionsResponse{
		Divisions: entity.KasDivisions,
		InputList: entity.InputDivisiList,
	})
}

func (h *KasHandler) GetRoster(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	roster, err := h.kasService.GetRoster(c, ctx.Query("divisi"), ctx.Query("search"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_roster")
	}

	rosters := make([]kas.RosterResponse, 0, len(roster))
	for _, division := range entity.KasDivisions {
		members, ok := roster[division]
		if !ok {
			continue
		}

		memberResponses := make([]kas.MemberResponse, 0, len(members))
		for _, member := range members {
			memberResponses = append(memberResponses, toMemberResponse(member))
		}
		rosters = append(rosters, kas.RosterResponse{
			Divisi:  division,
			Members: memberResponses,
		})
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, rosters)
	}
}

func (h *KasHandler) AddMember(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req kas.AddMemberRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	member, err := h.kasService.AddMember(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "add_member")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, toMemberResponse(member))
	}
}

func (h *KasHandler) UpdateName(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("member ID is required"), ctx.Path())
	}

	var req kas.UpdateNameRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.kasService.UpdateName(c, id, req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_name")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Member name updated",
		})
	}
}

func (h *KasHandler) TogglePayment(ctx *fiber.Ctx) error {
	return h.handleToggle(ctx, h.kasService.TogglePayment, "toggle_payment", "Payment status toggled")
}

func (h *KasHandler) ToggleLate(ctx *fiber.Ctx) error {
	return h.handleToggle(ctx, h.kasService.ToggleLate, "toggle_late", "Late status toggled")
}

func (h *KasHandler) handleToggle(
	ctx *fiber.Ctx,
	toggle func(context.Context, string, kas.ToggleRequest) error,
	operation string,
	message string,
) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("member ID is required"), ctx.Path())
	}

	var req kas.ToggleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := toggle(c, id, req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), operation)
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": message,
		})
	}
}

func (h *KasHandler) RequestDelete(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("member ID is required"), ctx.Path())
	}

	var req kas.DeleteMemberRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	token, expiresAt, err := h.kasService.RequestDelete(c, req.Divisi, id)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "request_delete")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, kas.DeleteRequestResponse{
			ConfirmToken: token,
			ExpiresAt:    expiresAt.Format(time.RFC3339),
		})
	}
}

func (h *KasHandler) ConfirmDelete(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req struct {
		Divisi       string `json:"divisi" validate:"required"`
		ConfirmToken string `json:"confirm_token" validate:"required"`
	}
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.kasService.ConfirmDelete(c, req.Divisi, req.ConfirmToken); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "confirm_delete")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Member deleted successfully",
		})
	}
}

func (h *KasHandler) CancelDelete(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req kas.ConfirmDeleteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.kasService.CancelDelete(c, req.ConfirmToken); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "cancel_delete")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Deletion cancelled",
		})
	}
}

func (h *KasHandler) GetFormLink(ctx *fiber.Ctx) error {
	errHandler := handlerUtil.New(h.log)

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, kas.FormLinkResponse{
		FormLink: h.kasService.FormLink(),
	})
}

func (h *KasHandler) CreateSubmission(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req kas.CreateSubmissionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	submission, err := h.kasService.CreateSubmission(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_submission")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, toSubmissionResponse(submission))
	}
}

func (h *KasHandler) GetSubmissions(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	submissions, err := h.kasService.GetSubmissions(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_submissions")
	}

	responses := make([]kas.SubmissionResponse, 0, len(submissions))
	for _, submission := range submissions {
		responses = append(responses, toSubmissionResponse(submission))
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, responses)
	}
}

func toSubmissionResponse(submission entity.FormSubmission) kas.SubmissionResponse {
	months := make([]string, 0, len(submission.Months))
	for _, month := range submission.Months {
		months = append(months, string(month))
	}

	return kas.SubmissionResponse{
		ID:          submission.ID,
		Name:        submission.Name,
		Divisi:      submission.Divisi,
		Months:      months,
		EvidenceURL: submission.EvidenceURL,
		SubmittedAt: submission.SubmittedAt,
	}
}
