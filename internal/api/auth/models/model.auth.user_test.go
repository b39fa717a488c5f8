// Package models - Test điều kiện đăng nhập theo trạng thái tài khoản.
package models

import (
	"errors"
	"testing"

	"vela_commerce/internal/common"
)

func TestStatusError(t *testing.T) {
	active := &User{Status: StatusActive}
	if err := active.StatusError(); err != nil {
		t.Errorf("tài khoản active không được trả lỗi, got %v", err)
	}

	banned := &User{Status: StatusBanned}
	if err := banned.StatusError(); !errors.Is(err, common.ErrAccountBanned) {
		t.Errorf("tài khoản banned phải trả ErrAccountBanned, got %v", err)
	}

	inactive := &User{Status: StatusInactive}
	if err := inactive.StatusError(); !errors.Is(err, common.ErrAccountInactive) {
		t.Errorf("tài khoản inactive phải trả ErrAccountInactive, got %v", err)
	}
}

func TestCanLogin(t *testing.T) {
	if !(&User{Status: StatusActive}).CanLogin() {
		t.Error("active phải đăng nhập được")
	}
	if (&User{Status: StatusInactive}).CanLogin() {
		t.Error("inactive không được đăng nhập")
	}
	if (&User{Status: StatusBanned}).CanLogin() {
		t.Error("banned không được đăng nhập")
	}
}
