package noncashRepository

import (
	"github.com/qistanaushaf/Adkeu/internal/entity"

	"golang.org/x/net/context"
)

func (r *repository) Evidence(ctx context.Context) []entity.NonCashEvidence {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.slot.Load(ctx)
}

func (r *repository) Append(ctx context.Context, evidence entity.NonCashEvidence) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	list := r.slot.Load(ctx)
	list = append(list, evidence)

	return r.slot.Save(ctx, list)
}

func (r *repository) SetTitle(ctx context.Context, id string, title string) (bool, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	list := r.slot.Load(ctx)
	for i := range list {
		if list[i].ID == id {
			list[i].Title = title
			return true, r.slot.Save(ctx, list)
		}
	}

	return false, nil
}

func (r *repository) Delete(ctx context.Context, id string) (bool, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	list := r.slot.Load(ctx)
	for i := range list {
		if list[i].ID == id {
			list = append(list[:i], list[i+1:]...)
			return true, r.slot.Save(ctx, list)
		}
	}

	return false, nil
}
