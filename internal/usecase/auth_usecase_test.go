package usecase

import (
	"strings"
	"testing"
	"time"

	"clinic-ops-backend/internal/scheduling"
)

func TestGeneratePatientCode(t *testing.T) {
	u := &authUsecase{
		clock: scheduling.ClockFunc(func() time.Time {
			return time.Date(2026, 6, 10, 9, 0, 0, 0, time.UTC)
		}),
	}

	code := u.generatePatientCode()

	if !strings.HasPrefix(code, "PT-20260610-") {
		t.Fatalf("code = %q, want PT-20260610- prefix", code)
	}
	suffix := strings.TrimPrefix(code, "PT-20260610-")
	if len(suffix) != 6 {
		t.Fatalf("suffix = %q, want 6 characters", suffix)
	}
	if suffix != strings.ToUpper(suffix) {
		t.Fatalf("suffix = %q, want uppercase", suffix)
	}

	if u.generatePatientCode() == code {
		t.Fatal("consecutive codes must differ")
	}
}
