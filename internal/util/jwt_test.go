package util

import (
	"testing"
	"time"

	"github.com/anand2468/easyeval/internal/model"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestJWTRoundTrip(t *testing.T) {
	user := &model.User{Email: "teacher@example.com"}
	user.ID = 42

	token, err := GenerateJWT(user, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ParseJWT(token, testSecret)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Email != "teacher@example.com" {
		t.Errorf("Email = %q, want teacher@example.com", claims.Email)
	}
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	user := &model.User{Email: "teacher@example.com"}
	user.ID = 1

	token, err := GenerateJWT(user, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ParseJWT(token, "another-secret-another-secret-32"); err == nil {
		t.Fatal("expected signature verification to fail")
	}
}

func TestParseJWTRejectsWrongSigningMethod(t *testing.T) {
	claims := &Claims{UserID: 1, Email: "teacher@example.com"}
	token := jwt.NewWithClaims(jwt.SigningMethodHS384, claims)
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ParseJWT(signed, testSecret); err == nil {
		t.Fatal("expected a non-HS256 token to be rejected")
	}
}

func TestParseJWTRejectsExpiredToken(t *testing.T) {
	user := &model.User{Email: "teacher@example.com"}
	user.ID = 1

	token, err := GenerateJWT(user, testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ParseJWT(token, testSecret); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}
