package models

import (
    "time"

    "gorm.io/gorm"
)

const (
    RolePatient = "patient"
    RoleDoctor  = "doctor"
)

type User struct {
    gorm.Model
    UserID         string `gorm:"uniqueIndex;size:64"`
    Email          string `gorm:"uniqueIndex;not null"`
    Password       string `gorm:"not null"`
    Role           string `gorm:"size:16;not null;default:patient"`
    FirstName      string
    LastName       string
    ProfilePicture string

    // doctor-only fields
    Specialization  string
    ExperienceYears int
    ClinicAddress   string

    MFAEnabled    bool
    MFACode       string
    ResetToken    string
    ResetTokenExp time.Time
    Onboarded     bool
    Disabled      bool
}

func (u *User) FullName() string {
    if u.LastName == "" {
        return u.FirstName
    }
    return u.FirstName + " " + u.LastName
}
