package kasRepository

import (
	"context"
	"testing"

	"github.com/qistanaushaf/Adkeu/internal/entity"
	"github.com/qistanaushaf/Adkeu/pkg/keyval"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

const divisi = "Social Affairs"

func newTestRepository() Repository {
	return New(keyval.NewMemory(), logrus.New())
}

func TestRoster_FirstLoadIsEmpty(t *testing.T) {
	repo := newTestRepository()

	roster := repo.Roster(context.Background())
	assert.Empty(t, roster)
}

func TestAppendMember_CreatesDivisionKeyAndKeepsOrder(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	assert.NoError(t, repo.AppendMember(ctx, divisi, entity.NewBlankMember("m1")))
	assert.NoError(t, repo.AppendMember(ctx, divisi, entity.NewBlankMember("m2")))

	roster := repo.Roster(ctx)
	assert.Len(t, roster[divisi], 2)
	assert.Equal(t, "m1", roster[divisi][0].ID)
	assert.Equal(t, "m2", roster[divisi][1].ID)
	assert.Equal(t, "", roster[divisi][0].Name)
	assert.Empty(t, roster[divisi][0].Payments)
	assert.Empty(t, roster[divisi][0].LateStatus)
}

func TestSetName_ReplacesOnlyName(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	assert.NoError(t, repo.AppendMember(ctx, divisi, entity.NewBlankMember("m1")))

	found, err := repo.SetName(ctx, divisi, "m1", "Sinta")
	assert.NoError(t, err)
	assert.True(t, found)

	roster := repo.Roster(ctx)
	assert.Equal(t, "Sinta", roster[divisi][0].Name)
}

func TestTogglePayment_AbsentMonthBecomesTrue(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	assert.NoError(t, repo.AppendMember(ctx, divisi, entity.NewBlankMember("m1")))

	found, err := repo.TogglePayment(ctx, divisi, "m1", entity.MonthJanuari)
	assert.NoError(t, err)
	assert.True(t, found)

	roster := repo.Roster(ctx)
	assert.True(t, roster[divisi][0].Payments[entity.MonthJanuari])
}

func TestTogglePayment_IsInvolution(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	assert.NoError(t, repo.AppendMember(ctx, divisi, entity.NewBlankMember("m1")))

	_, err := repo.TogglePayment(ctx, divisi, "m1", entity.MonthFebruari)
	assert.NoError(t, err)
	_, err = repo.TogglePayment(ctx, divisi, "m1", entity.MonthFebruari)
	assert.NoError(t, err)

	roster := repo.Roster(ctx)
	assert.False(t, roster[divisi][0].Payments[entity.MonthFebruari])
}

func TestToggleLate_IndependentOfPayment(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	assert.NoError(t, repo.AppendMember(ctx, divisi, entity.NewBlankMember("m1")))

	_, err := repo.TogglePayment(ctx, divisi, "m1", entity.MonthMaret)
	assert.NoError(t, err)
	_, err = repo.ToggleLate(ctx, divisi, "m1", entity.MonthMaret)
	assert.NoError(t, err)
	_, err = repo.TogglePayment(ctx, divisi, "m1", entity.MonthMaret)
	assert.NoError(t, err)

	roster := repo.Roster(ctx)
	assert.False(t, roster[divisi][0].Payments[entity.MonthMaret])
	assert.True(t, roster[divisi][0].LateStatus[entity.MonthMaret])
}

func TestToggle_MissingMemberIsNoOp(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	found, err := repo.TogglePayment(ctx, divisi, "missing", entity.MonthJanuari)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestDeleteMember_RemovesOnlyTheTarget(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	assert.NoError(t, repo.AppendMember(ctx, divisi, entity.NewBlankMember("m1")))
	assert.NoError(t, repo.AppendMember(ctx, divisi, entity.NewBlankMember("m2")))

	found, err := repo.DeleteMember(ctx, divisi, "m1")
	assert.NoError(t, err)
	assert.True(t, found)

	roster := repo.Roster(ctx)
	assert.Len(t, roster[divisi], 1)
	assert.Equal(t, "m2", roster[divisi][0].ID)
}

func TestAppendSubmission_Accumulates(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	assert.NoError(t, repo.AppendSubmission(ctx, entity.FormSubmission{ID: "s1", Name: "Andi"}))
	assert.NoError(t, repo.AppendSubmission(ctx, entity.FormSubmission{ID: "s2", Name: "Budi"}))

	submissions := repo.Submissions(ctx)
	assert.Len(t, submissions, 2)
	assert.Equal(t, "s1", submissions[0].ID)
}
