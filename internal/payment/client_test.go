// Package payment - Test ký và kiểm chữ ký giao dịch.
package payment

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSign_Deterministic(t *testing.T) {
	first := Sign("secret", "pi_123", "VC-20260830-ABCDEF", 55000)
	second := Sign("secret", "pi_123", "VC-20260830-ABCDEF", 55000)
	assert.Equal(t, first, second, "cùng input phải cho cùng chữ ký")
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{64}$`), first, "chữ ký phải là hex SHA256")
}

func TestSign_DifferentInputsDifferentSignatures(t *testing.T) {
	base := Sign("secret", "pi_123", "VC-20260830-ABCDEF", 55000)
	assert.NotEqual(t, base, Sign("secret2", "pi_123", "VC-20260830-ABCDEF", 55000))
	assert.NotEqual(t, base, Sign("secret", "pi_456", "VC-20260830-ABCDEF", 55000))
	assert.NotEqual(t, base, Sign("secret", "pi_123", "VC-20260830-ABCDEF", 55001))
}

func TestVerifySignature(t *testing.T) {
	client := NewClient("http://gateway.local", "merchant-1", "secret", 0)

	sig := client.Sign("pi_123", "VC-20260830-ABCDEF", 55000)

	assert.True(t, client.VerifySignature("pi_123", "VC-20260830-ABCDEF", 55000, sig))
	assert.False(t, client.VerifySignature("pi_123", "VC-20260830-ABCDEF", 55001, sig), "total khác phải bị từ chối")
	assert.False(t, client.VerifySignature("pi_123", "VC-20260830-ABCDEF", 55000, sig+"00"), "chữ ký bị sửa phải bị từ chối")
}
