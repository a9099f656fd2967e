package models

import "time"

const (
    NotifyConsultation = "consultation"
    NotifyMessage      = "message"
    NotifyAppointment  = "appointment"
    NotifyDietChart    = "diet_chart"
)

type Notification struct {
    ID        uint      `gorm:"primaryKey"`
    UserID    uint      `gorm:"index"`
    Type      string    `gorm:"size:20"`
    Message   string    `gorm:"type:text"`
    Read      bool      `gorm:"default:false"`
    CreatedAt time.Time
}
