// Package models - Test định dạng số đơn hàng và trạng thái kết thúc.
package models

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

func TestGenerateOrderNumber_Format(t *testing.T) {
	now := time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC)
	pattern := regexp.MustCompile(`^VC-20260830-[0-9A-F]{6}$`)

	for i := 0; i < 20; i++ {
		number := GenerateOrderNumber(now)
		if !pattern.MatchString(number) {
			t.Fatalf("số đơn %q không khớp định dạng VC-YYYYMMDD-XXXXXX", number)
		}
	}
}

func TestTerminalStatus(t *testing.T) {
	for _, status := range []string{StatusCancelled, StatusRefunded} {
		if !TerminalStatus(status) {
			t.Errorf("%s phải là trạng thái kết thúc", status)
		}
	}
	for _, status := range []string{StatusPending, StatusPaid, StatusProcessing, StatusShipped, StatusDelivered, "cho_doi_tac"} {
		if TerminalStatus(status) {
			t.Errorf("%s không phải trạng thái kết thúc", status)
		}
	}
}

func TestGenerateOrderNumber_UsesUTCDate(t *testing.T) {
	// 01:00 ngày 31/08 giờ Hà Nội vẫn là 30/08 UTC
	hanoi := time.FixedZone("ICT", 7*3600)
	now := time.Date(2026, 8, 31, 1, 0, 0, 0, hanoi)

	number := GenerateOrderNumber(now)
	if !strings.HasPrefix(number, "VC-20260830-") {
		t.Errorf("số đơn %q phải dùng ngày UTC (20260830)", number)
	}
}
