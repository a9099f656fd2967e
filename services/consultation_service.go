package services

import (
	"errors"
	"fmt"
	"time"

	"ayurbackend/config"
	"ayurbackend/models"
)

// CreateConsultationRequest opens a pending request from a patient to a
// doctor. Duplicate pending requests to the same doctor are rejected.
func CreateConsultationRequest(patientID, doctorID uint, note string) (*models.ConsultationRequest, error) {
	var doctor models.User
	if err := config.DB.Where("id = ? AND role = ? AND disabled = ?", doctorID, models.RoleDoctor, false).
		First(&doctor).Error; err != nil {
		return nil, errors.New("doctor not found")
	}

	var existing models.ConsultationRequest
	err := config.DB.
		Where("patient_id = ? AND doctor_id = ? AND status = ?", patientID, doctorID, models.ConsultationPending).
		First(&existing).Error
	if err == nil {
		return nil, errors.New("a pending request to this doctor already exists")
	}

	req := &models.ConsultationRequest{
		PatientID: patientID,
		DoctorID:  doctorID,
		Note:      note,
		Status:    models.ConsultationPending,
	}
	if err := config.DB.Create(req).Error; err != nil {
		return nil, err
	}

	patient, _ := FindUserByID(patientID)
	if patient != nil {
		EmitNotification(doctorID, models.NotifyConsultation,
			fmt.Sprintf("New consultation request from %s", patient.FullName()))
	}
	return req, nil
}

// RespondToConsultation lets the addressed doctor accept or decline a
// pending request. Responses to non-pending requests are rejected.
func RespondToConsultation(requestID, doctorID uint, accept bool) (*models.ConsultationRequest, error) {
	var req models.ConsultationRequest
	if err := config.DB.Where("id = ? AND doctor_id = ?", requestID, doctorID).First(&req).Error; err != nil {
		return nil, errors.New("consultation request not found")
	}
	if req.Status != models.ConsultationPending {
		return nil, errors.New("consultation request already responded to")
	}

	now := time.Now()
	if accept {
		req.Status = models.ConsultationAccepted
	} else {
		req.Status = models.ConsultationDeclined
	}
	req.RespondedAt = &now

	if err := config.DB.Save(&req).Error; err != nil {
		return nil, err
	}

	doctor, _ := FindUserByID(doctorID)
	if doctor != nil {
		EmitNotification(req.PatientID, models.NotifyConsultation,
			fmt.Sprintf("Dr. %s %s your consultation request", doctor.FullName(), req.Status))
	}
	return &req, nil
}

// ListConsultations returns the requests a user participates in, newest first.
func ListConsultations(userID uint, role string) ([]models.ConsultationRequest, error) {
	var reqs []models.ConsultationRequest
	q := config.DB.Order("created_at DESC")
	if role == models.RoleDoctor {
		q = q.Where("doctor_id = ?", userID)
	} else {
		q = q.Where("patient_id = ?", userID)
	}
	err := q.Find(&reqs).Error
	return reqs, err
}

// activeConsultation fetches an accepted consultation the user belongs to.
func activeConsultation(consultationID, userID uint) (*models.ConsultationRequest, error) {
	var req models.ConsultationRequest
	err := config.DB.
		Where("id = ? AND status = ? AND (patient_id = ? OR doctor_id = ?)",
			consultationID, models.ConsultationAccepted, userID, userID).
		First(&req).Error
	if err != nil {
		return nil, errors.New("no accepted consultation found")
	}
	return &req, nil
}
