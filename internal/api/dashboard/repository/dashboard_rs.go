package dashboardRepository

import (
	"os"

	"github.com/qistanaushaf/Adkeu/internal/entity"

	"golang.org/x/net/context"
)

func defaultTheme() string {
	if theme := os.Getenv("DEFAULT_THEME"); entity.IsValidTheme(theme) {
		return theme
	}
	return string(entity.ThemeLight)
}

// Theme loads the display preference, falling back to the default when the
// stored value is not a known theme.
func (r *repository) Theme(ctx context.Context) entity.Theme {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	raw := r.themeSlot.Load(ctx)
	if !entity.IsValidTheme(raw) {
		return entity.Theme(defaultTheme())
	}
	return entity.Theme(raw)
}

func (r *repository) SetTheme(ctx context.Context, theme entity.Theme) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.themeSlot.Save(ctx, string(theme))
}
