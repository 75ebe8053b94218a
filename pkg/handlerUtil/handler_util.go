package handlerUtil

import (
	"errors"

	"github.com/qistanaushaf/Adkeu/internal/api/auth"
	"github.com/qistanaushaf/Adkeu/internal/api/hibah"
	"github.com/qistanaushaf/Adkeu/internal/api/kas"
	"github.com/qistanaushaf/Adkeu/internal/api/noncash"
	"github.com/qistanaushaf/Adkeu/internal/api/pagu"
	"github.com/qistanaushaf/Adkeu/pkg/log"
	"github.com/qistanaushaf/Adkeu/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	// Auth domain errors
	if errors.Is(err, auth.ErrInvalidAccessCode) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Invalid admin access code")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid access code",
			"code":  "INVALID_ACCESS_CODE",
		})
	}

	if errors.Is(err, auth.ErrNotConfigured) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Error("Admin access code hash is not configured")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Admin access is not configured",
			"code":  "ADMIN_NOT_CONFIGURED",
		})
	}

	// Hibah ledger domain errors
	if errors.Is(err, hibah.ErrTransactionNotFound) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Transaction not found")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Transaction not found",
			"code":  "TRANSACTION_NOT_FOUND",
		})
	}

	if errors.Is(err, hibah.ErrInvalidTransactionType) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Invalid transaction type")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid transaction type",
			"code":  "INVALID_TRANSACTION_TYPE",
		})
	}

	if errors.Is(err, hibah.ErrInvalidAmount) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Invalid transaction amount")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid transaction amount",
			"code":  "INVALID_AMOUNT",
		})
	}

	if errors.Is(err, hibah.ErrInvalidMonth) || errors.Is(err, pagu.ErrInvalidMonth) ||
		errors.Is(err, kas.ErrInvalidMonth) || errors.Is(err, noncash.ErrInvalidMonth) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Invalid month")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid month",
			"code":  "INVALID_MONTH",
		})
	}

	if errors.Is(err, hibah.ErrInvalidConfirmToken) || errors.Is(err, kas.ErrInvalidConfirmToken) ||
		errors.Is(err, pagu.ErrInvalidConfirmToken) || errors.Is(err, noncash.ErrInvalidConfirmToken) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Delete confirmation not found or expired")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Delete confirmation not found or expired",
			"code":  "CONFIRMATION_NOT_FOUND",
		})
	}

	if errors.Is(err, hibah.ErrInvalidPhotoFile) || errors.Is(err, pagu.ErrInvalidPhotoFile) ||
		errors.Is(err, noncash.ErrInvalidImageFile) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Invalid photo file")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid file type. Only images are allowed.",
			"code":  "INVALID_PHOTO_FILE",
		})
	}

	if errors.Is(err, hibah.ErrFailedToUploadPhoto) || errors.Is(err, pagu.ErrFailedToUploadPhoto) ||
		errors.Is(err, noncash.ErrFailedToUploadImage) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Failed to upload photo evidence")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload photo evidence",
			"code":  "UPLOAD_FAILED",
		})
	}

	if errors.Is(err, hibah.ErrExportWorkbook) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Error("Failed to build export workbook")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build export workbook",
			"code":  "EXPORT_FAILED",
		})
	}

	// Kas registry domain errors
	if errors.Is(err, kas.ErrMemberNotFound) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Member not found")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Member not found",
			"code":  "MEMBER_NOT_FOUND",
		})
	}

	if errors.Is(err, kas.ErrInvalidDivision) || errors.Is(err, pagu.ErrInvalidDivisi) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Invalid division")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid division",
			"code":  "INVALID_DIVISION",
		})
	}

	// Pagu domain errors
	if errors.Is(err, pagu.ErrEntryNotFound) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Pagu entry not found")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Pagu entry not found",
			"code":  "PAGU_ENTRY_NOT_FOUND",
		})
	}

	if errors.Is(err, pagu.ErrInvalidNominal) || errors.Is(err, pagu.ErrInvalidBudget) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Invalid amount")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid amount",
			"code":  "INVALID_AMOUNT",
		})
	}

	// Non-cash evidence domain errors
	if errors.Is(err, noncash.ErrEvidenceNotFound) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Evidence not found")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Evidence not found",
			"code":  "EVIDENCE_NOT_FOUND",
		})
	}

	var respErr *response.Error
	if errors.As(err, &respErr) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"code":       respErr.Code,
			"path":       path,
			"operation":  operation,
		}).Warn("Operation failed with error response")
		return c.Status(respErr.Code).JSON(fiber.Map{"error": err.Error()})
	}

	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}).Error("Unexpected error")

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "An unexpected error occurred",
	})
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Validation failed: " + err.Error(),
		"code":  "VALIDATION_ERROR",
	})
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(utils.StatusMessage(fiber.StatusRequestTimeout))
}

func (h *ErrorHandler) HandleUnauthorized(c *fiber.Ctx, requestID string, message string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"path":       c.Path(),
		"message":    message,
	}).Warn("Unauthorized access")

	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": message,
		"code":  "UNAUTHORIZED",
	})
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}
