package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Member is one known worker and the PIN they punch with.
type Member struct {
	Name  string `yaml:"name" json:"name"`
	PIN   string `yaml:"pin" json:"-"`
	Admin bool   `yaml:"admin,omitempty" json:"admin,omitempty"`
}

// Roster is the fixed, ordered set of recognized workers. Declaration order
// is the display order of weekly summaries.
type Roster struct {
	Members []Member
}

// CanonicalWorker trims and title-cases a worker name so that "tony",
// "TONY " and "Tony" resolve to one identity. A Caser is not safe for
// concurrent use, so one is built per call.
func CanonicalWorker(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	return cases.Title(language.Und).String(trimmed)
}

func (r Roster) Names() []string {
	names := make([]string, 0, len(r.Members))
	for _, m := range r.Members {
		names = append(names, m.Name)
	}
	return names
}

func (r Roster) Lookup(name string) (Member, bool) {
	canon := CanonicalWorker(name)
	for _, m := range r.Members {
		if m.Name == canon {
			return m, true
		}
	}
	return Member{}, false
}

// Authenticate returns the member owning pin.
func (r Roster) Authenticate(pin string) (Member, error) {
	if pin == "" {
		return Member{}, ErrInvalidPIN
	}
	for _, m := range r.Members {
		if m.PIN == pin {
			return m, nil
		}
	}
	return Member{}, ErrInvalidPIN
}

// Verify checks that pin belongs to the named worker.
func (r Roster) Verify(name, pin string) (Member, error) {
	m, ok := r.Lookup(name)
	if !ok {
		return Member{}, ErrUnknownWorker
	}
	if pin == "" || m.PIN != pin {
		return Member{}, ErrInvalidPIN
	}
	return m, nil
}

// AdminName returns the first admin's name, or "" when the roster has none.
func (r Roster) AdminName() string {
	for _, m := range r.Members {
		if m.Admin {
			return m.Name
		}
	}
	return ""
}

func (r Roster) IsAdmin(name string) bool {
	m, ok := r.Lookup(name)
	return ok && m.Admin
}
