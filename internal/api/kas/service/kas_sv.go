package kasService

import (
	"os"
	"strings"
	"time"

	"github.com/qistanaushaf/Adkeu/internal/api/kas"
	"github.com/qistanaushaf/Adkeu/internal/entity"
	contextPkg "github.com/qistanaushaf/Adkeu/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const deleteScopePrefix = "kas:"

func (s *kasService) GetRoster(ctx context.Context, divisi string, search string) (entity.DivisiKasContainer, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if divisi != "" && !entity.IsValidKasDivision(divisi) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"divisi":     divisi,
		}).Warn("Invalid division requested")
		return nil, kas.ErrInvalidDivision
	}

	roster := s.kasRepository.Roster(ctx)

	result := entity.DivisiKasContainer{}
	for _, division := range entity.KasDivisions {
		if divisi != "" && division != divisi {
			continue
		}

		members := roster[division]
		if members == nil {
			members = []entity.MemberKas{}
		}

		if search != "" {
			needle := strings.ToLower(search)
			matched := make([]entity.MemberKas, 0, len(members))
			for _, member := range members {
				if strings.Contains(strings.ToLower(member.Name), needle) {
					matched = append(matched, member)
				}
			}
			members = matched
		}

		result[division] = members
	}

	return result, nil
}

func (s *kasService) AddMember(ctx context.Context, req kas.AddMemberRequest) (entity.MemberKas, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !entity.IsValidKasDivision(req.Divisi) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"divisi":     req.Divisi,
		}).Warn("Invalid division for new member")
		return entity.MemberKas{}, kas.ErrInvalidDivision
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.MemberKas{}, err
	}

	member := entity.NewBlankMember(ULID)
	if err := s.kasRepository.AppendMember(ctx, req.Divisi, member); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to persist new member")
		return entity.MemberKas{}, kas.ErrSaveRegistry
	}

	return member, nil
}

func (s *kasService) UpdateName(ctx context.Context, id string, req kas.UpdateNameRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	if !entity.IsValidKasDivision(req.Divisi) {
		return kas.ErrInvalidDivision
	}

	found, err := s.kasRepository.SetName(ctx, req.Divisi, id, req.Name)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to persist member name")
		return kas.ErrSaveRegistry
	}

	if !found {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"divisi":     req.Divisi,
			"id":         id,
		}).Warn("Member to rename not found, nothing changed")
	}

	return nil
}

func (s *kasService) TogglePayment(ctx context.Context, id string, req kas.ToggleRequest) error {
	return s.toggle(ctx, id, req, s.kasRepository.TogglePayment, "payment")
}

func (s *kasService) ToggleLate(ctx context.Context, id string, req kas.ToggleRequest) error {
	return s.toggle(ctx, id, req, s.kasRepository.ToggleLate, "late status")
}

func (s *kasService) toggle(
	ctx context.Context,
	id string,
	req kas.ToggleRequest,
	flip func(context.Context, string, string, entity.Month) (bool, error),
	what string,
) error {
	requestID := contextPkg.GetRequestID(ctx)

	if !entity.IsValidKasDivision(req.Divisi) {
		return kas.ErrInvalidDivision
	}
	if !entity.IsValidMonth(req.Month) {
		return kas.ErrInvalidMonth
	}

	found, err := flip(ctx, req.Divisi, id, entity.Month(req.Month))
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to persist " + what + " toggle")
		return kas.ErrSaveRegistry
	}

	if !found {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"divisi":     req.Divisi,
			"id":         id,
			"month":      req.Month,
		}).Warn("Member to toggle not found, nothing changed")
	}

	return nil
}

func (s *kasService) RequestDelete(ctx context.Context, divisi string, id string) (string, time.Time, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !entity.IsValidKasDivision(divisi) {
		return "", time.Time{}, kas.ErrInvalidDivision
	}

	token, expiresAt := s.confirms.Stage(deleteScopePrefix+divisi, id)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"divisi":     divisi,
		"id":         id,
	}).Debug("Staged member deletion")

	return token, expiresAt, nil
}

func (s *kasService) ConfirmDelete(ctx context.Context, divisi string, token string) error {
	requestID := contextPkg.GetRequestID(ctx)

	scope, id, ok := s.confirms.Resolve(token)
	if !ok || scope != deleteScopePrefix+divisi {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"divisi":     divisi,
		}).Warn("Delete confirmation not found or expired")
		return kas.ErrInvalidConfirmToken
	}

	found, err := s.kasRepository.DeleteMember(ctx, divisi, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to persist member deletion")
		return kas.ErrSaveRegistry
	}

	if !found {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"divisi":     divisi,
			"id":         id,
		}).Warn("Staged member already gone, nothing deleted")
	}

	return nil
}

func (s *kasService) CancelDelete(ctx context.Context, token string) error {
	s.confirms.Cancel(token)
	return nil
}

func (s *kasService) FormLink() string {
	return os.Getenv("KAS_FORM_LINK")
}

func (s *kasService) CreateSubmission(ctx context.Context, req kas.CreateSubmissionRequest) (entity.FormSubmission, error) {
	requestID := contextPkg.GetRequestID(ctx)

	months := make([]entity.Month, 0, len(req.Months))
	for _, month := range req.Months {
		if !entity.IsValidMonth(month) {
			return entity.FormSubmission{}, kas.ErrInvalidMonth
		}
		months = append(months, entity.Month(month))
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.FormSubmission{}, err
	}

	submission := entity.FormSubmission{
		ID:          ULID,
		Name:        req.Name,
		Divisi:      req.Divisi,
		Months:      months,
		EvidenceURL: req.EvidenceURL,
		SubmittedAt: time.Now().Format(time.RFC3339),
	}

	if err := s.kasRepository.AppendSubmission(ctx, submission); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to persist form submission")
		return entity.FormSubmission{}, kas.ErrSaveSubmissions
	}

	return submission, nil
}

func (s *kasService) GetSubmissions(ctx context.Context) ([]entity.FormSubmission, error) {
	return s.kasRepository.Submissions(ctx), nil
}
