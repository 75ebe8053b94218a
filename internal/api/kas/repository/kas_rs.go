package kasRepository

import (
	"github.com/qistanaushaf/Adkeu/internal/entity"

	"golang.org/x/net/context"
)

func (r *repository) Roster(ctx context.Context) entity.DivisiKasContainer {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.rosterSlot.Load(ctx)
}

// AppendMember adds the member to the end of the division roster, creating
// the division key on first use.
func (r *repository) AppendMember(ctx context.Context, divisi string, member entity.MemberKas) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	roster := r.rosterSlot.Load(ctx)
	roster[divisi] = append(roster[divisi], member)

	return r.rosterSlot.Save(ctx, roster)
}

func (r *repository) SetName(ctx context.Context, divisi string, id string, name string) (bool, error) {
	return r.mutateMember(ctx, divisi, id, func(member *entity.MemberKas) {
		member.Name = name
	})
}

func (r *repository) TogglePayment(ctx context.Context, divisi string, id string, month entity.Month) (bool, error) {
	return r.mutateMember(ctx, divisi, id, func(member *entity.MemberKas) {
		if member.Payments == nil {
			member.Payments = map[entity.Month]bool{}
		}
		member.Payments[month] = !member.Payments[month]
	})
}

func (r *repository) ToggleLate(ctx context.Context, divisi string, id string, month entity.Month) (bool, error) {
	return r.mutateMember(ctx, divisi, id, func(member *entity.MemberKas) {
		if member.LateStatus == nil {
			member.LateStatus = map[entity.Month]bool{}
		}
		member.LateStatus[month] = !member.LateStatus[month]
	})
}

func (r *repository) DeleteMember(ctx context.Context, divisi string, id string) (bool, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	roster := r.rosterSlot.Load(ctx)
	members := roster[divisi]
	for i := range members {
		if members[i].ID == id {
			roster[divisi] = append(members[:i], members[i+1:]...)
			return true, r.rosterSlot.Save(ctx, roster)
		}
	}

	return false, nil
}

func (r *repository) mutateMember(ctx context.Context, divisi string, id string, mutate func(*entity.MemberKas)) (bool, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	roster := r.rosterSlot.Load(ctx)
	members := roster[divisi]
	for i := range members {
		if members[i].ID == id {
			mutate(&members[i])
			roster[divisi] = members
			return true, r.rosterSlot.Save(ctx, roster)
		}
	}

	return false, nil
}

func (r *repository) Submissions(ctx context.Context) []entity.FormSubmission {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.submissionsSlot.Load(ctx)
}

func (r *repository) AppendSubmission(ctx context.Context, submission entity.FormSubmission) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	submissions := r.submissionsSlot.Load(ctx)
	submissions = append(submissions, submission)

	return r.submissionsSlot.Save(ctx, submissions)
}
