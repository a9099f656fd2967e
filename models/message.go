package models

import (
    "time"

    "gorm.io/gorm"
)

type Message struct {
    gorm.Model
    ConsultationID uint   `gorm:"index;not null"`
    SenderID       uint   `gorm:"index;not null"`
    Body           string `gorm:"type:text;not null"`
    ReadAt         *time.Time
}
