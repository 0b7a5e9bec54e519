package usecase

import (
	"clinic-scheduler/internal/domain/user"
	"clinic-scheduler/internal/pkg/errs"
	"clinic-scheduler/internal/pkg/jwt"
	"clinic-scheduler/internal/usecase/shared"
)

// TokenValidator turns a bearer token into the caller's principal.
type TokenValidator interface {
	ValidateToken(tokenString string) (shared.Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (shared.Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return shared.Principal{}, err
	}

	// a token signed before a role was removed must not authenticate
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return shared.Principal{}, errs.Wrapf(jwt.ErrInvalidToken, "role %q", claims.Role)
	}

	return shared.Principal{UserID: claims.UserID, Role: role}, nil
}
