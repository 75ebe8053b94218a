package hibahHandler

import (
	"errors"
	"time"

	"github.com/qistanaushaf/Adkeu/internal/api/hibah"
	"github.com/qistanaushaf/Adkeu/internal/entity"
	contextPkg "github.com/qistanaushaf/Adkeu/pkg/context"
	"github.com/qistanaushaf/Adkeu/pkg/handlerUtil"
	"github.com/qistanaushaf/Adkeu/pkg/log"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/net/context"
)

func toTransactionResponse(tx entity.Transaction) hibah.TransactionResponse {
	return hibah.TransactionResponse{
		ID:           tx.ID,
		Date:         tx.Date,
		Description:  tx.Description,
		Amount:       tx.Amount,
		Type:         string(tx.Type),
		PhotoURL:     tx.PhotoURL,
		ProgramKerja: tx.ProgramKerja,
		Divisi:       tx.Divisi,
	}
}

func (h *HibahHandler) GetLedger(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	ledger, err := h.hibahService.GetLedger(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_ledger")
	}

	buckets := make([]hibah.LedgerBucketResponse, 0, len(ledger))
	for _, bucket := range ledger {
		transactions := make([]hibah.TransactionResponse, 0, len(bucket.Transactions))
		for _, tx := range bucket.Transactions {
			transactions = append(transactions, toTransactionResponse(tx))
		}
		buckets = append(buckets, hibah.LedgerBucketResponse{
			Month:        string(bucket.Month),
			Transactions: transactions,
		})
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, buckets)
	}
}

func (h *HibahHandler) GetMonthTransactions(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	month := ctx.Params("month")
	search := ctx.Query("search")

	transactions, err := h.hibahService.GetMonthTransactions(c, month, search)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_month_transactions")
	}

	var (
		totalIncome  = decimal.Zero
		totalExpense = decimal.Zero
	)

	responses := make([]hibah.TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		responses = append(responses, toTransactionResponse(tx))

		if tx.Type == entity.TransactionTypeIncome {
			totalIncome = totalIncome.Add(tx.Amount)
		} else {
			totalExpense = totalExpense.Add(tx.Amount)
		}
	}

	response := hibah.MonthTransactionsResponse{
		Month:        month,
		Transactions: responses,
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Balance:      totalIncome.Sub(totalExpense),
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}

func (h *HibahHandler) CreateTransaction(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create transaction request")

	var req hibah.CreateTransactionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	photoFile, _ := ctx.FormFile("photo")

	if err := h.hibahService.CreateTransaction(c, ctx.Params("month"), req, photoFile); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_transaction")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, fiber.Map{
			"message": "Transaction created successfully",
		})
	}
}

func (h *HibahHandler) UpdateTransaction(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("transaction ID is required"), ctx.Path())
	}

	var req hibah.UpdateTransactionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	photoFile, _ := ctx.FormFile("photo")

	if err := h.hibahService.UpdateTransaction(c, ctx.Params("month"), id, req, photoFile); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_transaction")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Transaction updated successfully",
		})
	}
}

func (h *HibahHandler) RequestDelete(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("transaction ID is required"), ctx.Path())
	}

	token, expiresAt, err := h.hibahService.RequestDelete(c, ctx.Params("month"), id)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "request_delete")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, hibah.DeleteRequestResponse{
			ConfirmToken: token,
			ExpiresAt:    expiresAt.Format(time.RFC3339),
		})
	}
}

func (h *HibahHandler) ConfirmDelete(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req hibah.ConfirmDeleteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.hibahService.ConfirmDelete(c, ctx.Params("month"), req.ConfirmToken); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "confirm_delete")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Transaction deleted successfully",
		})
	}
}

func (h *HibahHandler) CancelDelete(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req hibah.ConfirmDeleteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.hibahService.CancelDelete(c, req.ConfirmToken); err != nil {
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

func (h *HibahHandler) ExportMonth(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	fileName, content, err := h.hibahService.ExportMonth(c, ctx.Params("month"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "export_month")
	}

	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return ctx.Status(fiber.StatusOK).Send(content)
	}
}
