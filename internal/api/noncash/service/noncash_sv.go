package noncashService

import (
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/qistanaushaf/Adkeu/internal/api/noncash"
	"github.com/qistanaushaf/Adkeu/internal/entity"
	contextPkg "github.com/qistanaushaf/Adkeu/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const deleteScope = "noncash"

func (s *noncashService) GetEvidence(ctx context.Context, month string) ([]entity.NonCashEvidence, error) {
	if month != "" && !entity.IsValidMonth(month) {
		return nil, noncash.ErrInvalidMonth
	}

	evidence := s.noncashRepository.Evidence(ctx)
	if month == "" {
		return evidence, nil
	}

	filtered := make([]entity.NonCashEvidence, 0, len(evidence))
	for _, e := range evidence {
		if e.Month == entity.Month(month) {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

func (s *noncashService) UploadEvidence(ctx context.Context, month string, title string, imageFile *multipart.FileHeader) (entity.NonCashEvidence, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !entity.IsValidMonth(month) {
		return entity.NonCashEvidence{}, noncash.ErrInvalidMonth
	}

	if err := s.utils.ValidateImageFile(imageFile); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid evidence image")
		return entity.NonCashEvidence{}, noncash.ErrInvalidImageFile
	}

	var imageURL string
	if s.s3 != nil {
		uploadedURL, err := s.s3.UploadFile(imageFile)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to upload evidence image")
			return entity.NonCashEvidence{}, noncash.ErrFailedToUploadImage
		}
		imageURL = uploadedURL
	} else {
		dataURL, err := s.utils.DataURLFromFile(imageFile)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to inline evidence image")
			return entity.NonCashEvidence{}, noncash.ErrFailedToUploadImage
		}
		imageURL = dataURL
	}

	// Untitled uploads borrow the filename stem.
	if title == "" {
		title = strings.TrimSuffix(imageFile.Filename, filepath.Ext(imageFile.Filename))
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.NonCashEvidence{}, err
	}

	evidence := entity.NonCashEvidence{
		ID:         ULID,
		Title:      title,
		ImageURL:   imageURL,
		Month:      entity.Month(month),
		UploadedAt: time.Now().Format(time.RFC3339),
	}

	if err := s.noncashRepository.Append(ctx, evidence); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to persist evidence")
		return entity.NonCashEvidence{}, noncash.ErrSaveEvidence
	}

	return evidence, nil
}

func (s *noncashService) UpdateTitle(ctx context.Context, id string, title string) error {
	requestID := contextPkg.GetRequestID(ctx)

	found, err := s.noncashRepository.SetTitle(ctx, id, title)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to persist evidence title")
		return noncash.ErrSaveEvidence
	}

	if !found {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("Evidence to retitle not found, nothing changed")
	}

	return nil
}

func (s *noncashService) RequestDelete(ctx context.Context, id string) (string, time.Time, error) {
	requestID := contextPkg.GetRequestID(ctx)

	token, expiresAt := s.confirms.Stage(deleteScope, id)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"id":         id,
	}).Debug("Staged evidence deletion")

	return token, expiresAt, nil
}

func (s *noncashService) ConfirmDelete(ctx context.Context, token string) error {
	requestID := contextPkg.GetRequestID(ctx)

	scope, id, ok := s.confirms.Resolve(token)
	if !ok || scope != deleteScope {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Delete confirmation not found or expired")
		return noncash.ErrInvalidConfirmToken
	}

	found, err := s.noncashRepository.Delete(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to persist evidence deletion")
		return noncash.ErrSaveEvidence
	}

	if !found {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("Staged evidence already gone, nothing deleted")
	}

	return nil
}

func (s *noncashService) CancelDelete(ctx context.Context, token string) error {
	s.confirms.Cancel(token)
	return nil
}
