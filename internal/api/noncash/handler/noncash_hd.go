package noncashHandler

import (
	"errors"
	"time"

	"github.com/qistanaushaf/Adkeu/internal/api/noncash"
	"github.com/qistanaushaf/Adkeu/internal/entity"
	contextPkg "github.com/qistanaushaf/Adkeu/pkg/context"
	"github.com/qistanaushaf/Adkeu/pkg/handlerUtil"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func toEvidenceResponse(evidence entity.NonCashEvidence) noncash.EvidenceResponse {
	return noncash.EvidenceResponse{
		ID:         evidence.ID,
		Title:      evidence.Title,
		ImageURL:   evidence.ImageURL,
		Month:      string(evidence.Month),
		UploadedAt: evidence.UploadedAt,
	}
}

func (h *NonCashHandler) GetEvidence(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	evidence, err := h.noncashService.GetEvidence(c, ctx.Query("month"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_evidence")
	}

	responses := make([]noncash.EvidenceResponse, 0, len(evidence))
	for _, e := range evidence {
		responses = append(responses, toEvidenceResponse(e))
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, responses)
	}
}

func (h *NonCashHandler) UploadEvidence(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	imageFile, err := ctx.FormFile("image")
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("evidence image is required"), ctx.Path())
	}

	month := ctx.FormValue("month")
	title := ctx.FormValue("title")

	evidence, err := h.noncashService.UploadEvidence(c, month, title, imageFile)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "upload_evidence")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, toEvidenceResponse(evidence))
	}
}

func (h *NonCashHandler) UpdateTitle(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("evidence ID is required"), ctx.Path())
	}

	var req noncash.UpdateTitleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.noncashService.UpdateTitle(c, id, req.Title); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_title")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Evidence title updated",
		})
	}
}

func (h *NonCashHandler) RequestDelete(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("evidence ID is required"), ctx.Path())
	}

	token, expiresAt, err := h.noncashService.RequestDelete(c, id)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "request_delete")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, noncash.DeleteRequestResponse{
			ConfirmToken: token,
			ExpiresAt:    expiresAt.Format(time.RFC3339),
		})
	}
}

func (h *NonCashHandler) ConfirmDelete(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req noncash.ConfirmDeleteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.noncashService.ConfirmDelete(c, req.ConfirmToken); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "confirm_delete")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Evidence deleted successfully",
		})
	}
}

func (h *NonCashHandler) CancelDelete(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req noncash.ConfirmDeleteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.noncashService.CancelDelete(c, req.ConfirmToken); err != nil {
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
