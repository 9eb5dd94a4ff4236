package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/alexanderramin/crewclock/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// crewHuhTheme returns a huh theme using the formatter palette.
func crewHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// pinInput returns a masked huh.Input for a roster PIN.
func pinInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		EchoMode(huh.EchoModePassword).
		Value(value).
		Validate(validatePIN)
}

func validatePIN(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("PIN is required")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return errors.New("PIN must be digits only")
		}
	}
	return nil
}

// promptPIN shows a one-field form on the terminal.
func promptPIN(title string) (string, error) {
	var pin string
	form := huh.NewForm(
		huh.NewGroup(pinInput(title, &pin)),
	).WithTheme(crewHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(pin), nil
}

var errPINRequired = errors.New("--pin is required when not running in a terminal")

// resolvePIN returns flagPIN when set, otherwise prompts on a terminal.
func (app *App) resolvePIN(flagPIN, title string) (string, error) {
	if flagPIN != "" {
		return flagPIN, nil
	}
	if app.IsInteractive == nil || !app.IsInteractive() {
		return "", errPINRequired
	}
	prompt := app.PromptPIN
	if prompt == nil {
		prompt = promptPIN
	}
	return prompt(title)
}

// adminActor authenticates pin and returns the acting worker's name.
func (app *App) adminActor(ctx context.Context, flagPIN string) (string, error) {
	pin, err := app.resolvePIN(flagPIN, "Admin PIN")
	if err != nil {
		return "", err
	}
	member, err := app.Auth.Login(ctx, pin)
	if err != nil {
		return "", err
	}
	return member.Name, nil
}
