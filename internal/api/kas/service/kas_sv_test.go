package kasService

import (
	"context"
	"testing"

	"github.com/qistanaushaf/Adkeu/internal/api/kas"
	kasRepository "github.com/qistanaushaf/Adkeu/internal/api/kas/repository"
	"github.com/qistanaushaf/Adkeu/internal/entity"
	"github.com/qistanaushaf/Adkeu/pkg/confirm"
	"github.com/qistanaushaf/Adkeu/pkg/keyval"
	"github.com/qistanaushaf/Adkeu/pkg/utils"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newService() IKasService {
	log := logrus.New()
	repo := kasRepository.New(keyval.NewMemory(), log)
	return NewKasService(log, repo, utils.New(), confirm.NewRegistry())
}

func TestAddMember_RejectsUnknownDivision(t *testing.T) {
	s := newService()

	_, err := s.AddMember(context.Background(), kas.AddMemberRequest{Divisi: "Treasury"})

	assert.ErrorIs(t, err, kas.ErrInvalidDivision)
}

func TestAddMember_AppendsBlankMember(t *testing.T) {
	s := newService()
	ctx := context.Background()

	member, err := s.AddMember(ctx, kas.AddMemberRequest{Divisi: "Social Affairs"})
	assert.NoError(t, err)
	assert.NotEmpty(t, member.ID)
	assert.Empty(t, member.Name)

	roster, err := s.GetRoster(ctx, "Social Affairs", "")
	assert.NoError(t, err)
	assert.Len(t, roster["Social Affairs"], 1)
}

func TestGetRoster_AllDivisionsPresentEvenWhenEmpty(t *testing.T) {
	s := newService()

	roster, err := s.GetRoster(context.Background(), "", "")
	assert.NoError(t, err)

	assert.Len(t, roster, len(entity.KasDivisions))
	for _, divisi := range entity.KasDivisions {
		members, ok := roster[divisi]
		assert.True(t, ok)
		assert.NotNil(t, members)
	}
}

func TestGetRoster_SearchFiltersByName(t *testing.T) {
	s := newService()
	ctx := context.Background()

	member, err := s.AddMember(ctx, kas.AddMemberRequest{Divisi: "Foreign Affairs"})
	assert.NoError(t, err)
	assert.NoError(t, s.UpdateName(ctx, member.ID, kas.UpdateNameRequest{Divisi: "Foreign Affairs", Name: "Qistan"}))

	other, err := s.AddMember(ctx, kas.AddMemberRequest{Divisi: "Foreign Affairs"})
	assert.NoError(t, err)
	assert.NoError(t, s.UpdateName(ctx, other.ID, kas.UpdateNameRequest{Divisi: "Foreign Affairs", Name: "Naufal"}))

	roster, err := s.GetRoster(ctx, "Foreign Affairs", "qis")
	assert.NoError(t, err)
	assert.Len(t, roster["Foreign Affairs"], 1)
	assert.Equal(t, "Qistan", roster["Foreign Affairs"][0].Name)
}

func TestTogglePayment_IsAnInvolution(t *testing.T) {
	s := newService()
	ctx := context.Background()

	member, err := s.AddMember(ctx, kas.AddMemberRequest{Divisi: "Domestic Affairs"})
	assert.NoError(t, err)

	req := kas.ToggleRequest{Divisi: "Domestic Affairs", Month: "Januari"}

	assert.NoError(t, s.TogglePayment(ctx, member.ID, req))
	roster, _ := s.GetRoster(ctx, "Domestic Affairs", "")
	assert.True(t, roster["Domestic Affairs"][0].Payments["Januari"])

	assert.NoError(t, s.TogglePayment(ctx, member.ID, req))
	roster, _ = s.GetRoster(ctx, "Domestic Affairs", "")
	assert.False(t, roster["Domestic Affairs"][0].Payments["Januari"])
}

func TestToggleLate_RejectsInvalidMonth(t *testing.T) {
	s := newService()
	ctx := context.Background()

	member, err := s.AddMember(ctx, kas.AddMemberRequest{Divisi: "Domestic Affairs"})
	assert.NoError(t, err)

	err = s.ToggleLate(ctx, member.ID, kas.ToggleRequest{Divisi: "Domestic Affairs", Month: "January"})

	assert.ErrorIs(t, err, kas.ErrInvalidMonth)
}

func TestDeleteFlow_TokenScopedToDivision(t *testing.T) {
	s := newService()
	ctx := context.Background()

	member, err := s.AddMember(ctx, kas.AddMemberRequest{Divisi: "Media and Information"})
	assert.NoError(t, err)

	token, _, err := s.RequestDelete(ctx, "Media and Information", member.ID)
	assert.NoError(t, err)

	assert.ErrorIs(t, s.ConfirmDelete(ctx, "Social Affairs", token), kas.ErrInvalidConfirmToken)

	// Token was consumed by the mismatched confirm; stage again and finish.
	token, _, err = s.RequestDelete(ctx, "Media and Information", member.ID)
	assert.NoError(t, err)
	assert.NoError(t, s.ConfirmDelete(ctx, "Media and Information", token))

	roster, _ := s.GetRoster(ctx, "Media and Information", "")
	assert.Empty(t, roster["Media and Information"])
}

func TestCreateSubmission_ValidatesMonths(t *testing.T) {
	s := newService()

	_, err := s.CreateSubmission(context.Background(), kas.CreateSubmissionRequest{
		Name:   "Qistan",
		Divisi: []string{"Social Affairs"},
		Months: []string{"Januari", "Smarch"},
	})

	assert.ErrorIs(t, err, kas.ErrInvalidMonth)
}

func TestCreateSubmission_RecordsAndLists(t *testing.T) {
	s := newService()
	ctx := context.Background()

	created, err := s.CreateSubmission(ctx, kas.CreateSubmissionRequest{
		Name:   "Qistan",
		Divisi: []string{"Social Affairs"},
		Months: []string{"Januari", "Februari"},
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.SubmittedAt)

	submissions, err := s.GetSubmissions(ctx)
	assert.NoError(t, err)
	assert.Len(t, submissions, 1)
	assert.Equal(t, "Qistan", submissions[0].Name)
}
