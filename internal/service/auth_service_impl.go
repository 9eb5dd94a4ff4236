package service

import (
	"context"
	"time"

	"github.com/alexanderramin/crewclock/internal/domain"
)

type authService struct {
	roster   domain.Roster
	observer UseCaseObserver
}

func NewAuthService(roster domain.Roster, observers ...UseCaseObserver) AuthService {
	return &authService{roster: roster, observer: useCaseObserverOrNoop(observers)}
}

// Login resolves a PIN to its roster member.
func (s *authService) Login(ctx context.Context, pin string) (m *domain.Member, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "login", time.Now(), fields, &err)

	member, err := s.roster.Authenticate(pin)
	if err != nil {
		return nil, err
	}
	fields["worker"] = member.Name
	fields["admin"] = member.Admin
	return &member, nil
}
