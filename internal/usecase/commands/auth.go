package commands

import (
	"context"
	"errors"

	"neko-hotel/internal/pkg/config"
	"neko-hotel/internal/pkg/errs"
	"neko-hotel/internal/pkg/jwt"
	"neko-hotel/internal/pkg/password"
)

var ErrInvalidCredentials = errs.New("invalid credentials")

type LoginResult struct {
	Token    string
	Username string
}

type AuthCommands interface {
	Login(ctx context.Context, username, plain string) (*LoginResult, error)
}

type authUseCaseImpl struct {
	staff      config.StaffConfig
	jwtService *jwt.Service
}

func NewAuthUseCase(staff config.StaffConfig, jwtService *jwt.Service) AuthCommands {
	return &authUseCaseImpl{
		staff:      staff,
		jwtService: jwtService,
	}
}

// Login checks the shared front-desk credentials and issues a staff
// token. There is one account; no user table is involved.
func (u *authUseCaseImpl) Login(_ context.Context, username, plain string) (*LoginResult, error) {
	if username != u.staff.Username {
		return nil, ErrInvalidCredentials
	}

	if err := password.Compare(u.staff.PasswordHash, plain); err != nil {
		if errors.Is(err, password.ErrMismatch) || errors.Is(err, password.ErrInvalidPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	token, err := u.jwtService.GenerateToken(username)
	if err != nil {
		return nil, errs.Wrap(err, "failed to sign token")
	}

	return &LoginResult{Token: token, Username: username}, nil
}
