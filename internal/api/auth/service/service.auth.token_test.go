// Package authsvc - Test vòng đời JWT: tạo, parse, từ chối token hỏng.
package authsvc

import (
	"errors"
	"testing"

	"vela_commerce/config"
	"vela_commerce/internal/common"
	"vela_commerce/internal/global"
)

func setTokenConfig(t *testing.T, ttlMinutes int) {
	t.Helper()
	prev := global.ServerConfig
	global.ServerConfig = &config.Configuration{
		JwtSecret:     "test-secret",
		JwtTTLMinutes: ttlMinutes,
	}
	t.Cleanup(func() { global.ServerConfig = prev })
}

func TestCreateAndParseToken(t *testing.T) {
	setTokenConfig(t, 60)

	token, err := CreateToken("68b1f00000000000000000aa", "user@example.com", "USER")
	if err != nil {
		t.Fatalf("CreateToken trả lỗi: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken trả lỗi: %v", err)
	}
	if claims.Subject != "68b1f00000000000000000aa" {
		t.Errorf("Subject không khớp, nhận %q", claims.Subject)
	}
	if claims.Email != "user@example.com" {
		t.Errorf("Email không khớp, nhận %q", claims.Email)
	}
	if claims.Role != "USER" {
		t.Errorf("Role không khớp, nhận %q", claims.Role)
	}
}

func TestParseToken_TamperedTokenRejected(t *testing.T) {
	setTokenConfig(t, 60)

	token, err := CreateToken("68b1f00000000000000000aa", "user@example.com", "USER")
	if err != nil {
		t.Fatalf("CreateToken trả lỗi: %v", err)
	}

	if _, err := ParseToken(token + "x"); !errors.Is(err, common.ErrTokenInvalid) {
		t.Errorf("Token bị sửa phải trả ErrTokenInvalid, nhận %v", err)
	}
}

func TestParseToken_ExpiredTokenRejected(t *testing.T) {
	setTokenConfig(t, -1)

	token, err := CreateToken("68b1f00000000000000000aa", "user@example.com", "USER")
	if err != nil {
		t.Fatalf("CreateToken trả lỗi: %v", err)
	}

	if _, err := ParseToken(token); !errors.Is(err, common.ErrTokenExpired) {
		t.Errorf("Token hết hạn phải trả ErrTokenExpired, nhận %v", err)
	}
}
