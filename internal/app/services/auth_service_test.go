package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/openday/backend/internal/app/models/dto"
	"github.com/openday/backend/internal/pkg/apperrors"
	"github.com/openday/backend/internal/pkg/auth"
)

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test",
	})
}

func TestAuthServiceRegister(t *testing.T) {
	userRepo := newMockUserRepo()
	svc := NewAuthService(userRepo, testJWTService())
	ctx := context.Background()

	user, access, refresh, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "Jane.Doe@Example.com",
		Password: "Secret123!",
		FullName: "Jane Doe",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Error("expected user ID to be assigned")
	}
	if user.Email != "jane.doe@example.com" {
		t.Errorf("expected normalized email, got %q", user.Email)
	}
	if user.PasswordHash == "Secret123!" {
		t.Error("password stored in plaintext")
	}
	if access == "" || refresh == "" {
		t.Error("expected non-empty token pair")
	}

	_, _, _, err = svc.Register(ctx, &dto.RegisterRequest{
		Email:    "jane.doe@example.com",
		Password: "Another123!",
		FullName: "Jane Again",
	})
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestAuthServiceRegisterValidation(t *testing.T) {
	svc := NewAuthService(newMockUserRepo(), testJWTService())
	ctx := context.Background()

	_, _, _, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "not-an-email",
		Password: "Secret123!",
		FullName: "Jane Doe",
	})
	if !errors.Is(err, apperrors.ErrInvalidEmail) {
		t.Errorf("expected ErrInvalidEmail, got %v", err)
	}

	weakPasswords := []string{"Sh0rt!a", "nodigits!!", "nospecial123"}
	for _, password := range weakPasswords {
		_, _, _, err := svc.Register(ctx, &dto.RegisterRequest{
			Email:    "jane@example.com",
			Password: password,
			FullName: "Jane Doe",
		})
		if !errors.Is(err, apperrors.ErrInvalidPassword) {
			t.Errorf("password %q: expected ErrInvalidPassword, got %v", password, err)
		}
	}
}

func TestAuthServiceLogin(t *testing.T) {
	userRepo := newMockUserRepo()
	svc := NewAuthService(userRepo, testJWTService())
	ctx := context.Background()

	_, _, _, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "jane@example.com",
		Password: "Secret123!",
		FullName: "Jane Doe",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	user, access, refresh, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "JANE@example.com",
		Password: "Secret123!",
	})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if user.Email != "jane@example.com" {
		t.Errorf("unexpected user email %q", user.Email)
	}
	if access == "" || refresh == "" {
		t.Error("expected non-empty token pair")
	}

	_, _, _, err = svc.Login(ctx, &dto.LoginRequest{
		Email:    "jane@example.com",
		Password: "WrongPass1!",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}

	_, _, _, err = svc.Login(ctx, &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "Secret123!",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthServiceRefresh(t *testing.T) {
	userRepo := newMockUserRepo()
	jwtService := testJWTService()
	svc := NewAuthService(userRepo, jwtService)
	ctx := context.Background()

	user, access, refresh, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "jane@example.com",
		Password: "Secret123!",
		FullName: "Jane Doe",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	newAccess, err := svc.Refresh(ctx, refresh)
	if err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
	claims, err := jwtService.ValidateAccessToken(newAccess)
	if err != nil {
		t.Fatalf("refreshed token did not validate as access token: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("expected user ID %d in refreshed token, got %d", user.ID, claims.UserID)
	}

	// An access token must not pass as a refresh token.
	if _, err := svc.Refresh(ctx, access); !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Errorf("access token on refresh: expected ErrTokenInvalid, got %v", err)
	}

	// A token for a removed account is rejected.
	delete(userRepo.users, user.ID)
	if _, err := svc.Refresh(ctx, refresh); !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Errorf("deleted user: expected ErrTokenInvalid, got %v", err)
	}
}
