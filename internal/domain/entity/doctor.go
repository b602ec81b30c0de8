package entity

import "github.com/google/uuid"

// Doctor represents doctor-specific profile data.
// WorkStartTime/WorkEndTime are daily "HH:mm" bounds; empty values mean
// the clinic default of 09:00-17:00. The scheduling engine reads this
// profile but never mutates it.
type Doctor struct {
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	LicenseNumber  string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number"`
	Specialization string    `gorm:"type:varchar(100);not null;index" json:"specialization"`
	Biography      string    `gorm:"type:text" json:"biography,omitempty"`
	IsAvailable    bool      `gorm:"not null;default:true" json:"is_available"`
	WorkStartTime  string    `gorm:"type:varchar(5)" json:"work_start_time,omitempty"`
	WorkEndTime    string    `gorm:"type:varchar(5)" json:"work_end_time,omitempty"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
