package commands

import (
	"context"
	"log/slog"

	"clinic-scheduler/internal/domain/auth"
	"clinic-scheduler/internal/domain/doctor"
	"clinic-scheduler/internal/domain/patient"
	"clinic-scheduler/internal/domain/user"
	"clinic-scheduler/internal/pkg/clock"
	"clinic-scheduler/internal/pkg/errs"
	"clinic-scheduler/internal/pkg/jwt"
	"clinic-scheduler/internal/usecase/queries"
	"clinic-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.NewKind("invalid credentials", errs.ErrUnauthorized)
	ErrUserInactive       = errs.NewKind("user inactive", errs.ErrForbidden)
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	UserID      uuid.UUID
	Role        user.Role
	AccessToken string
	ExpiresIn   int64
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    *string
}

type CreateAdminInput struct {
	Email    string
	Password string
	Name     string
}

type AuthCommands interface {
	Login(ctx context.Context, email, pass string) (*LoginResult, error)
	// Register creates a PATIENT account with its patient profile and logs
	// it in.
	Register(ctx context.Context, in RegisterInput) (*LoginResult, error)
	// CreateAdmin creates an ADMIN account with a doctor profile.
	CreateAdmin(ctx context.Context, in CreateAdminInput) (uuid.UUID, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, pass string) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(email, pass)
	if err != nil {
		// Same answer as a wrong password so accounts cannot be probed
		return nil, ErrInvalidCredentials
	}

	userView, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if errs.Is(err, user.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !credentials.Matches(hashedPassword) {
		return nil, ErrInvalidCredentials
	}
	if !userView.IsActive {
		return nil, ErrUserInactive
	}

	role, err := user.NewRole(userView.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	result, err := a.issue(userView.ID, role)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, userView.ID, a.clock.Now())
	})
	if err != nil {
		slog.Warn("failed to update last login", "user_id", userView.ID.String(), "error", err.Error())
	}

	return result, nil
}

func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	hash, err := credentials.Hash()
	if err != nil {
		return nil, err
	}

	now := a.clock.Now()
	u := user.NewUser(credentials.Email(), hash, user.RolePatient, now)
	uid := u.ID()
	profile, err := patient.NewPatient(in.Name, in.Phone, credentials.Email().Value(), &uid, now)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Create(ctx, u); err != nil {
			return err
		}
		_, err := tx.Patients().Create(ctx, profile)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Patient registered", "user_id", uid.String())
	return a.issue(uid, user.RolePatient)
}

func (a *authCommandsImpl) CreateAdmin(ctx context.Context, in CreateAdminInput) (uuid.UUID, error) {
	credentials, err := auth.NewCredentials(in.Email, in.Password)
	if err != nil {
		return uuid.Nil, err
	}
	hash, err := credentials.Hash()
	if err != nil {
		return uuid.Nil, err
	}

	u := user.NewUser(credentials.Email(), hash, user.RoleAdmin, a.clock.Now())
	uid := u.ID()
	contact := credentials.Email().Value()
	profile, err := doctor.NewDoctor(doctor.Params{
		Name:           in.Name,
		Specialization: doctor.AdministrationSpecialization,
		ContactInfo:    &contact,
		UserID:         &uid,
	})
	if err != nil {
		return uuid.Nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Create(ctx, u); err != nil {
			return err
		}
		_, err := tx.Doctors().Create(ctx, profile)
		return err
	})
	if err != nil {
		return uuid.Nil, err
	}
	return uid, nil
}

func (a *authCommandsImpl) issue(userID uuid.UUID, role user.Role) (*LoginResult, error) {
	token, err := a.jwtService.GenerateToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &LoginResult{
		UserID:      userID,
		Role:        role,
		AccessToken: token,
		ExpiresIn:   int64(a.jwtService.TokenDuration().Seconds()),
	}, nil
}
