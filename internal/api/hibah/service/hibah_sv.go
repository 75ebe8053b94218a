package hibahService

import (
	"mime/multipart"
	"strings"
	"time"

	"github.com/qistanaushaf/Adkeu/internal/api/hibah"
	"github.com/qistanaushaf/Adkeu/internal/entity"
	contextPkg "github.com/qistanaushaf/Adkeu/pkg/context"
	"github.com/qistanaushaf/Adkeu/pkg/excel"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const deleteScopePrefix = "hibah:"

func (s *hibahService) GetLedger(ctx context.Context) ([]entity.MonthlyData, error) {
	return s.hibahRepository.Ledger(ctx), nil
}

func (s *hibahService) GetMonthTransactions(ctx context.Context, month string, search string) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !entity.IsValidMonth(month) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"month":      month,
		}).Warn("Invalid month requested")
		return nil, hibah.ErrInvalidMonth
	}

	ledger := s.hibahRepository.Ledger(ctx)
	for _, bucket := range ledger {
		if bucket.Month != entity.Month(month) {
			continue
		}
		if search == "" {
			return bucket.Transactions, nil
		}

		needle := strings.ToLower(search)
		matched := make([]entity.Transaction, 0, len(bucket.Transactions))
		for _, tx := range bucket.Transactions {
			if strings.Contains(strings.ToLower(tx.Description), needle) ||
				strings.Contains(strings.ToLower(tx.ProgramKerja), needle) ||
				strings.Contains(strings.ToLower(tx.Divisi), needle) {
				matched = append(matched, tx)
			}
		}
		return matched, nil
	}

	return []entity.Transaction{}, nil
}

func (s *hibahService) CreateTransaction(ctx context.Context, month string, req hibah.CreateTransactionRequest, photoFile *multipart.FileHeader) error {
	requestID := contextPkg.GetRequestID(ctx)

	if !entity.IsValidMonth(month) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"month":      month,
		}).Warn("Invalid month for transaction")
		return hibah.ErrInvalidMonth
	}

	photoURL, err := s.uploadPhoto(ctx, photoFile)
	if err != nil {
		return err
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	// Income is always stamped with the submission date; only expenses carry
	// a user-chosen date and the proker/divisi attribution.
	date := req.Date
	programKerja := req.ProgramKerja
	divisi := req.Divisi
	if entity.TransactionType(req.Type) == entity.TransactionTypeIncome {
		date = time.Now().Format("2006-01-02")
		programKerja = ""
		divisi = ""
	}

	transaction := entity.Transaction{
		ID:           ULID,
		Date:         date,
		Description:  req.Description,
		Amount:       decimal.NewFromFloat(req.Amount),
		Type:         entity.TransactionType(req.Type),
		PhotoURL:     photoURL,
		ProgramKerja: programKerja,
		Divisi:       divisi,
	}

	if err := transaction.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid transaction data")
		return err
	}

	if err := s.hibahRepository.Append(ctx, entity.Month(month), transaction); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to persist transaction")
		return hibah.ErrSaveLedger
	}

	return nil
}

func (s *hibahService) UpdateTransaction(ctx context.Context, month string, id string, req hibah.UpdateTransactionRequest, photoFile *multipart.FileHeader) error {
	requestID := contextPkg.GetRequestID(ctx)

	if !entity.IsValidMonth(month) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"month":      month,
		}).Warn("Invalid month for transaction update")
		return hibah.ErrInvalidMonth
	}

	var newPhotoURL string
	if photoFile != nil {
		uploaded, err := s.uploadPhoto(ctx, photoFile)
		if err != nil {
			return err
		}
		newPhotoURL = uploaded
	}

	found, err := s.hibahRepository.Replace(ctx, entity.Month(month), id, func(existing entity.Transaction) entity.Transaction {
		// Type survives every edit; the form never resubmits it.
		updated := existing
		updated.Description = req.Description
		updated.Amount = decimal.NewFromFloat(req.Amount)

		if existing.Type == entity.TransactionTypeExpense {
			if req.Date != "" {
				updated.Date = req.Date
			}
			updated.ProgramKerja = req.ProgramKerja
			updated.Divisi = req.Divisi
		}

		switch {
		case newPhotoURL != "":
			updated.PhotoURL = newPhotoURL
		case req.DeletePhoto:
			updated.PhotoURL = ""
		}

		return updated
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to persist transaction update")
		return hibah.ErrSaveLedger
	}

	if !found {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"month":      month,
			"id":         id,
		}).Warn("Transaction to update not found, nothing changed")
	}

	return nil
}

func (s *hibahService) RequestDelete(ctx context.Context, month string, id string) (string, time.Time, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !entity.IsValidMonth(month) {
		return "", time.Time{}, hibah.ErrInvalidMonth
	}

	token, expiresAt := s.confirms.Stage(deleteScopePrefix+month, id)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"month":      month,
		"id":         id,
	}).Debug("Staged transaction deletion")

	return token, expiresAt, nil
}

func (s *hibahService) ConfirmDelete(ctx context.Context, month string, token string) error {
	requestID := contextPkg.GetRequestID(ctx)

	scope, id, ok := s.confirms.Resolve(token)
	if !ok || scope != deleteScopePrefix+month {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"month":      month,
		}).Warn("Delete confirmation not found or expired")
		return hibah.ErrInvalidConfirmToken
	}

	found, err := s.hibahRepository.Delete(ctx, entity.Month(month), id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to persist transaction deletion")
		return hibah.ErrSaveLedger
	}

	if !found {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"month":      month,
			"id":         id,
		}).Warn("Staged transaction already gone, nothing deleted")
	}

	return nil
}

func (s *hibahService) CancelDelete(ctx context.Context, token string) error {
	s.confirms.Cancel(token)
	return nil
}

func (s *hibahService) ExportMonth(ctx context.Context, month string) (string, []byte, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !entity.IsValidMonth(month) {
		return "", nil, hibah.ErrInvalidMonth
	}

	var transactions []entity.Transaction
	for _, bucket := range s.hibahRepository.Ledger(ctx) {
		if bucket.Month == entity.Month(month) {
			transactions = bucket.Transactions
			break
		}
	}

	content, err := excel.MonthlyReport(entity.Month(month), transactions)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build export workbook")
		return "", nil, hibah.ErrExportWorkbook
	}

	return excel.ReportFileName(entity.Month(month)), content, nil
}

func (s *hibahService) uploadPhoto(ctx context.Context, photoFile *multipart.FileHeader) (string, error) {
	if photoFile == nil {
		return "", nil
	}

	requestID := contextPkg.GetRequestID(ctx)

	if err := s.utils.ValidateImageFile(photoFile); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"filename":   photoFile.Filename,
			"error":      err.Error(),
		}).Warn("Invalid photo file")
		return "", hibah.ErrInvalidPhotoFile
	}

	if s.s3 != nil {
		uploadedURL, err := s.s3.UploadFile(photoFile)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to upload photo evidence")
			return "", hibah.ErrFailedToUploadPhoto
		}
		return uploadedURL, nil
	}

	dataURL, err := s.utils.DataURLFromFile(photoFile)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to inline photo evidence")
		return "", hibah.ErrFailedToUploadPhoto
	}
	return dataURL, nil
}
