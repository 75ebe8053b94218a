package entity

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func IsValidTheme(theme string) bool {
	switch Theme(theme) {
	case ThemeLight, ThemeDark:
		return true
	default:
		return false
	}
}
