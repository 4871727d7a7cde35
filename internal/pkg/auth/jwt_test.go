package auth

import (
	"errors"
	"testing"
	"time"
)

func testService(accessExp, refreshExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "unit-test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: refreshExp,
		TokenIssuer:     "openday.test",
	})
}

func TestGenerateTokenPair(t *testing.T) {
	svc := testService(time.Hour, 24*time.Hour)

	access, refresh, err := svc.GenerateTokenPair(42)
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}
	if access == refresh {
		t.Fatal("access and refresh tokens should differ")
	}

	claims, err := svc.ValidateAccessToken(access)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("access claims user = %d, want 42", claims.UserID)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Errorf("access claims type = %q, want %q", claims.TokenType, TokenTypeAccess)
	}

	claims, err = svc.ValidateRefreshToken(refresh)
	if err != nil {
		t.Fatalf("ValidateRefreshToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("refresh claims user = %d, want 42", claims.UserID)
	}
}

func TestValidateTokenWrongClass(t *testing.T) {
	svc := testService(time.Hour, 24*time.Hour)

	access, refresh, err := svc.GenerateTokenPair(7)
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}

	if _, err := svc.ValidateAccessToken(refresh); !errors.Is(err, ErrWrongTokenUse) {
		t.Errorf("refresh token accepted as access token, err = %v", err)
	}
	if _, err := svc.ValidateRefreshToken(access); !errors.Is(err, ErrWrongTokenUse) {
		t.Errorf("access token accepted as refresh token, err = %v", err)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	svc := testService(-time.Minute, 24*time.Hour)

	access, err := svc.GenerateAccessToken(7)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := svc.ValidateAccessToken(access); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("expired token err = %v, want %v", err, ErrExpiredToken)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := testService(time.Hour, 24*time.Hour)

	for _, token := range []string{"", "   ", "not.a.token", "aaaa.bbbb.cccc"} {
		if _, err := svc.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("ValidateToken(%q) err = %v, want %v", token, err, ErrInvalidToken)
		}
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := testService(time.Hour, 24*time.Hour)
	other := NewJWTService(JWTConfig{
		SecretKey:       "different-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "openday.test",
	})

	access, err := svc.GenerateAccessToken(7)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := other.ValidateToken(access); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("token signed with another secret err = %v, want %v", err, ErrInvalidToken)
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr error
	}{
		{"Bearer abc123", "abc123", nil},
		{"abc123", "abc123", nil},
		{"", "", ErrInvalidFormat},
	}

	for _, tc := range tests {
		got, err := ExtractBearerToken(tc.header)
		if !errors.Is(err, tc.wantErr) {
			t.Errorf("ExtractBearerToken(%q) err = %v, want %v", tc.header, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ExtractBearerToken(%q) = %q, want %q", tc.header, got, tc.want)
		}
	}
}
