package models

import (
    "time"

    "gorm.io/gorm"
)

const (
    AppointmentScheduled = "scheduled"
    AppointmentCompleted = "completed"
    AppointmentCancelled = "cancelled"
)

type Appointment struct {
    gorm.Model
    ConsultationID uint `gorm:"index;not null"`
    PatientID      uint `gorm:"index;not null"`
    DoctorID       uint `gorm:"index;not null"`

    ScheduledAt time.Time `gorm:"index;not null"`
    DurationMin int       `gorm:"default:30"`
    Mode        string    `gorm:"size:16"` // "video" | "in_person"
    Status      string    `gorm:"size:16;not null;default:scheduled"`
    Notes       string    `gorm:"type:text"`
}
