package service

import (
	"context"
	"errors"
	"testing"

	"clinic-ops-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type fakeAuditLogRepository struct {
	created []entity.AuditLog
	err     error
}

func (f *fakeAuditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, *log)
	return nil
}

func (f *fakeAuditLogRepository) FindRecent(db *gorm.DB, limit int) ([]entity.AuditLog, error) {
	return f.created, nil
}

func (f *fakeAuditLogRepository) FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error) {
	return nil, nil
}

func auditTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestAuditServiceRecordsEntry(t *testing.T) {
	repo := &fakeAuditLogRepository{}
	svc := NewAuditService(auditTestLogger(), repo)

	userID := uuid.New()
	svc.LogUpdate(context.Background(), nil, &userID, entity.AuditActionAppointmentCancel, "appointment", "abc", "SCHEDULED", "CANCELLED")

	if len(repo.created) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(repo.created))
	}
	entry := repo.created[0]
	if entry.Action != entity.AuditActionAppointmentCancel {
		t.Errorf("action = %s", entry.Action)
	}
	if entry.Metadata["old_value"] != "SCHEDULED" || entry.Metadata["new_value"] != "CANCELLED" {
		t.Errorf("metadata = %v", entry.Metadata)
	}
	if entry.UserID == nil || *entry.UserID != userID {
		t.Errorf("user id not recorded")
	}
}

func TestAuditServiceSwallowsRepositoryFailure(t *testing.T) {
	repo := &fakeAuditLogRepository{err: errors.New("insert failed")}
	svc := NewAuditService(auditTestLogger(), repo)

	// A broken audit trail must never surface to the caller: the call
	// completes and the surrounding transaction stays committable.
	userID := uuid.New()
	svc.LogCreate(context.Background(), nil, &userID, entity.AuditActionAppointmentBook, "appointment", "abc", nil)

	if len(repo.created) != 0 {
		t.Fatalf("expected no entries on failure, got %d", len(repo.created))
	}
}
