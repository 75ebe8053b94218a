package paguService

import (
	"mime/multipart"
	"strings"
	"time"

	"github.com/qistanaushaf/Adkeu/internal/api/pagu"
	"github.com/qistanaushaf/Adkeu/internal/entity"
	contextPkg "github.com/qistanaushaf/Adkeu/pkg/context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const deleteScope = "pagu"

func (s *paguService) GetEntries(ctx context.Context, month string, search string) ([]entity.PaguEntry, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if month != "" && !entity.IsValidMonth(month) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"month":      month,
		}).Warn("Invalid month filter")
		return nil, pagu.ErrInvalidMonth
	}

	entries := s.paguRepository.Entries(ctx)

	filtered := make([]entity.PaguEntry, 0, len(entries))
	needle := strings.ToLower(search)
	for _, entry := range entries {
		if month != "" && entry.Month != entity.Month(month) {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(entry.Description), needle) &&
			!strings.Contains(strings.ToLower(entry.Divisi), needle) {
			continue
		}
		filtered = append(filtered, entry)
	}

	return filtered, nil
}

func (s *paguService) CreateEntry(ctx context.Context, req pagu.CreateEntryRequest, photoFile *multipart.FileHeader) (entity.PaguEntry, error) {
	requestID := contextPkg.GetRequestID(ctx)

	photoURL, err := s.uploadPhoto(ctx, photoFile)
	if err != nil {
		return entity.PaguEntry{}, err
	}
	if photoURL == "" {
		photoURL = entity.PaguPlaceholderPhotoURL
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.PaguEntry{}, err
	}

	entry := entity.PaguEntry{
		ID:          ULID,
		Nominal:     decimal.NewFromFloat(req.Nominal),
		Divisi:      req.Divisi,
		PhotoURL:    photoURL,
		Description: req.Description,
		Month:       entity.Month(req.Month),
		CreatedAt:   time.Now().Format(time.RFC3339),
	}

	if err := entry.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid pagu entry data")
		return entity.PaguEntry{}, err
	}

	if err := s.paguRepository.Prepend(ctx, entry); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to persist pagu entry")
		return entity.PaguEntry{}, pagu.ErrSaveEntries
	}

	return entry, nil
}

func (s *paguService) UpdateEntry(ctx context.Context, id string, req pagu.UpdateEntryRequest, photoFile *multipart.FileHeader) error {
	requestID := contextPkg.GetRequestID(ctx)

	if !entity.IsValidMonth(req.Month) {
		return pagu.ErrInvalidMonth
	}

	var newPhotoURL string
	if photoFile != nil {
		uploaded, err := s.uploadPhoto(ctx, photoFile)
		if err != nil {
			return err
		}
		newPhotoURL = uploaded
	}

	found, err := s.paguRepository.Replace(ctx, id, func(existing entity.PaguEntry) entity.PaguEntry {
		// id and createdAt always survive an edit.
		updated := existing
		updated.Nominal = decimal.NewFromFloat(req.Nominal)
		updated.Divisi = req.Divisi
		updated.Description = req.Description
		updated.Month = entity.Month(req.Month)
		if newPhotoURL != "" {
			updated.PhotoURL = newPhotoURL
		}
		return updated
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to persist pagu entry update")
		return pagu.ErrSaveEntries
	}

	if !found {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("Pagu entry to update not found, nothing changed")
	}

	return nil
}

func (s *paguService) RequestDelete(ctx context.Context, id string) (string, time.Time, error) {
	requestID := contextPkg.GetRequestID(ctx)

	token, expiresAt := s.confirms.Stage(deleteScope, id)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"id":         id,
	}).Debug("Staged pagu entry deletion")

	return token, expiresAt, nil
}

func (s *paguService) ConfirmDelete(ctx context.Context, token string) error {
	requestID := contextPkg.GetRequestID(ctx)

	scope, id, ok := s.confirms.Resolve(token)
	if !ok || scope != deleteScope {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Delete confirmation not found or expired")
		return pagu.ErrInvalidConfirmToken
	}

	found, err := s.paguRepository.Delete(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to persist pagu entry deletion")
		return pagu.ErrSaveEntries
	}

	if !found {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("Staged pagu entry already gone, nothing deleted")
	}

	return nil
}

func (s *paguService) CancelDelete(ctx context.Context, token string) error {
	s.confirms.Cancel(token)
	return nil
}

// GetBudget reports the ceiling and what remains of it. Spending is summed
// over every entry regardless of month: the ceiling is a yearly figure, never
// a monthly one.
func (s *paguService) GetBudget(ctx context.Context) (decimal.Decimal, decimal.Decimal, decimal.Decimal, error) {
	total := s.paguRepository.TotalBudget(ctx)

	spent := decimal.Zero
	for _, entry := range s.paguRepository.Entries(ctx) {
		spent = spent.Add(entry.Nominal)
	}

	return total, spent, total.Sub(spent), nil
}

func (s *paguService) SetBudget(ctx context.Context, req pagu.UpdateBudgetRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	budget := decimal.NewFromFloat(req.TotalBudget)
	if budget.IsNegative() {
		return pagu.ErrInvalidBudget
	}

	if err := s.paguRepository.SetTotalBudget(ctx, budget); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to persist budget ceiling")
		return pagu.ErrSaveBudget
	}

	return nil
}

func (s *paguService) uploadPhoto(ctx context.Context, photoFile *multipart.FileHeader) (string, error) {
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
		return "", pagu.ErrInvalidPhotoFile
	}

	if s.s3 != nil {
		uploadedURL, err := s.s3.UploadFile(photoFile)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to upload photo evidence")
			return "", pagu.ErrFailedToUploadPhoto
		}
		return uploadedURL, nil
	}

	dataURL, err := s.utils.DataURLFromFile(photoFile)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to inline photo evidence")
		return "", pagu.ErrFailedToUploadPhoto
	}
	return dataURL, nil
}
