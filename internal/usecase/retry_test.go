package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestRunInTxWithRetry_TransientThenSuccess(t *testing.T) {
	attempts := 0
	err := runInTxWithRetry(testLogger(), func() error {
		attempts++
		if attempts < 2 {
			return &pgconn.PgError{Code: "40001"}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("expected success after retry, got %v", err)
	}
	if attempts != 2 {
		t.Fatalf("expected 2 attempts, got %d", attempts)
	}
}

func TestRunInTxWithRetry_NonTransientFailsFast(t *testing.T) {
	attempts := 0
	wantErr := ErrAppointmentNotFound
	err := runInTxWithRetry(testLogger(), func() error {
		attempts++
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
	if attempts != 1 {
		t.Fatalf("business errors must not retry, got %d attempts", attempts)
	}
}

func TestRunInTxWithRetry_GivesUpAfterMaxAttempts(t *testing.T) {
	attempts := 0
	err := runInTxWithRetry(testLogger(), func() error {
		attempts++
		return &pgconn.PgError{Code: "40P01"}
	})
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		t.Fatalf("expected the final pg error, got %v", err)
	}
	if attempts != maxTxAttempts {
		t.Fatalf("expected %d attempts, got %d", maxTxAttempts, attempts)
	}
}

func TestIsTransientError(t *testing.T) {
	if !isTransientError(&pgconn.PgError{Code: "40001"}) {
		t.Fatal("serialization failure should be transient")
	}
	if !isTransientError(&pgconn.PgError{Code: "40P01"}) {
		t.Fatal("deadlock should be transient")
	}
	if isTransientError(&pgconn.PgError{Code: "23505"}) {
		t.Fatal("unique violation must not retry")
	}
	if isTransientError(errors.New("connection refused")) {
		t.Fatal("plain errors must not retry")
	}
}

func TestRescheduleNoteText(t *testing.T) {
	oldStart := time.Date(2026, 6, 10, 10, 0, 0, 0, time.UTC)
	newStart := time.Date(2026, 6, 12, 14, 30, 0, 0, time.UTC)

	got := rescheduleNoteText(oldStart, newStart, "")
	want := "moved from 2026-06-10 10:00 AM to 2026-06-12 2:30 PM"
	if got != want {
		t.Fatalf("note = %q, want %q", got, want)
	}

	got = rescheduleNoteText(oldStart, newStart, "doctor unavailable")
	if got != want+": doctor unavailable" {
		t.Fatalf("note with reason = %q", got)
	}
}
