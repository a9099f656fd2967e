package models

import (
    "time"

    "gorm.io/gorm"
)

const (
    ConsultationPending  = "pending"
    ConsultationAccepted = "accepted"
    ConsultationDeclined = "declined"
)

// ConsultationRequest connects a patient to a doctor. Messaging and
// appointments hang off an accepted consultation.
type ConsultationRequest struct {
    gorm.Model
    PatientID   uint   `gorm:"index;not null"`
    DoctorID    uint   `gorm:"index;not null"`
    Note        string `gorm:"type:text"`
    Status      string `gorm:"size:16;not null;default:pending"`
    RespondedAt *time.Time
}
