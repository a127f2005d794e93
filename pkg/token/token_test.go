package token

import (
	"testing"
	"time"
)

func TestGenerateAndValidate(t *testing.T) {
	signed, exp, err := GenerateJWT(42, "coach", "secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	if time.Until(exp) < 59*time.Minute {
		t.Fatalf("expiry too soon: %v", exp)
	}

	claims, err := ValidateJWT(signed, "secret")
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if claims.UserID != 42 || claims.Role != "coach" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestValidateRejects(t *testing.T) {
	good, _, _ := GenerateJWT(1, "admin", "secret", time.Hour)
	expired, _, _ := GenerateJWT(1, "admin", "secret", -time.Minute)
	noUser, _, _ := GenerateJWT(0, "admin", "secret", time.Hour)

	tests := []struct {
		name, token, secret string
	}{
		{"empty", "", "secret"},
		{"no secret", good, ""},
		{"wrong secret", good, "other"},
		{"expired", expired, "secret"},
		{"garbage", "not.a.token", "secret"},
		{"zero user", noUser, "secret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateJWT(tt.token, tt.secret); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
