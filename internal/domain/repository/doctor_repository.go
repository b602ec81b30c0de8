package repository

import (
	"clinic-ops-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Doctor, error)
	// FindByUserIDForUpdate locks the doctor row for the duration of the
	// surrounding transaction, serializing concurrent slot checks for the
	// same doctor.
	FindByUserIDForUpdate(db *gorm.DB, userID uuid.UUID) (*entity.Doctor, error)
	FindByEmail(db *gorm.DB, email string) (*entity.Doctor, error)
}
