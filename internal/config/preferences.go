package config

import (
	"fmt"
	"slices"
)

// Theme is the color scheme of the views.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// DefaultLocale is used when no locale has been chosen.
const DefaultLocale = "en"

var supportedLocales = []string{"en", "uz", "ru", "it", "es", "ar"}

// SupportedLocales returns the locale codes the views can display.
func SupportedLocales() []string {
	return slices.Clone(supportedLocales)
}

// Preferences holds the user-facing view settings. A controller owns one value
// and hands views a pointer to it.
type Preferences struct {
	Theme  Theme  `yaml:"theme"`
	Locale string `yaml:"locale"`
}

// DefaultPreferences returns the dark theme in English.
func DefaultPreferences() Preferences {
	return Preferences{Theme: ThemeDark, Locale: DefaultLocale}
}

// ToggleTheme switches between dark and light and returns the new theme.
func (p *Preferences) ToggleTheme() Theme {
	if p.Theme == ThemeLight {
		p.Theme = ThemeDark
	} else {
		p.Theme = ThemeLight
	}
	return p.Theme
}

// SetTheme sets the theme by name.
func (p *Preferences) SetTheme(name string) error {
	switch t := Theme(name); t {
	case ThemeDark, ThemeLight:
		p.Theme = t
		return nil
	}
	return fmt.Errorf("%w: unknown theme %q", ErrInvalidConfig, name)
}

// SetLocale selects a supported locale.
func (p *Preferences) SetLocale(code string) error {
	if !slices.Contains(supportedLocales, code) {
		return fmt.Errorf("%w: unsupported locale %q", ErrInvalidConfig, code)
	}
	p.Locale = code
	return nil
}

// NextLocale advances to the next supported locale and returns it.
func (p *Preferences) NextLocale() string {
	i := slices.Index(supportedLocales, p.Locale)
	p.Locale = supportedLocales[(i+1)%len(supportedLocales)]
	return p.Locale
}

// Validate checks the theme and locale values.
func (p Preferences) Validate() error {
	switch p.Theme {
	case ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("%w: unknown theme %q", ErrInvalidConfig, p.Theme)
	}
	if !slices.Contains(supportedLocales, p.Locale) {
		return fmt.Errorf("%w: unsupported locale %q", ErrInvalidConfig, p.Locale)
	}
	return nil
}
