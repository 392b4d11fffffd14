package usecase

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/chicthreads/fashionstore/internal/domain"
)

// BootstrapAdmin is the configuration-supplied superuser credential. It is
// checked before any database lookup and never lives in the users table.
type BootstrapAdmin struct {
	Username string
	Password string
}

type AuthUC struct {
	Users     domain.UserRepo
	Bootstrap BootstrapAdmin
}

type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
}

func (uc *AuthUC) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	username := strings.TrimSpace(in.Username)

	if _, err := uc.Users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if _, err := uc.Users.FindByUsername(ctx, username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &domain.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
		Status:       domain.UserActive,
	}
	if err := uc.Users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login authenticates a username/password pair. The bootstrap admin
// credential short-circuits before the users table is consulted; a blocked
// account with correct credentials reports ErrAccountBlocked, anything else
// ErrInvalidCredentials.
func (uc *AuthUC) Login(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)

	if uc.Bootstrap.Username != "" && username == uc.Bootstrap.Username && password == uc.Bootstrap.Password {
		return &domain.User{Name: "Admin", Username: uc.Bootstrap.Username, Role: domain.RoleAdmin, Status: domain.UserActive}, nil
	}

	u, err := uc.Users.FindByUsername(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if u.Status == domain.UserBlocked {
		return nil, domain.ErrAccountBlocked
	}
	return u, nil
}

// LoginGoogle provisions a customer account for a verified Google identity.
// Blocked accounts stay blocked regardless of the sign-in channel.
func (uc *AuthUC) LoginGoogle(ctx context.Context, email, name string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := uc.Users.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		u = &domain.User{
			Name:     name,
			Email:    email,
			Username: email,
			Role:     domain.RoleCustomer,
			Status:   domain.UserActive,
		}
		if err := uc.Users.Create(ctx, u); err != nil {
			return nil, err
		}
		return u, nil
	}
	if err != nil {
		return nil, err
	}
	if u.Status == domain.UserBlocked {
		return nil, domain.ErrAccountBlocked
	}
	return u, nil
}
