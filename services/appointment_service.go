package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"ayurbackend/config"
	"ayurbackend/models"
	"ayurbackend/utils"
)

// ScheduleAppointment books a slot inside an accepted consultation. Either
// participant may schedule; the patient gets a confirmation email.
func ScheduleAppointment(consultationID, userID uint, at time.Time, durationMin int, mode string) (*models.Appointment, error) {
	if at.Before(time.Now()) {
		return nil, errors.New("appointment time must be in the future")
	}
	if durationMin <= 0 {
		durationMin = 30
	}
	switch mode {
	case "video", "in_person":
	case "":
		mode = "video"
	default:
		return nil, errors.New("mode must be video or in_person")
	}

	req, err := activeConsultation(consultationID, userID)
	if err != nil {
		return nil, err
	}

	// reject double-booking the doctor in the same window
	var clash int64
	windowStart := at.Add(-time.Duration(durationMin) * time.Minute)
	windowEnd := at.Add(time.Duration(durationMin) * time.Minute)
	config.DB.Model(&models.Appointment{}).
		Where("doctor_id = ? AND status = ? AND scheduled_at > ? AND scheduled_at < ?",
			req.DoctorID, models.AppointmentScheduled, windowStart, windowEnd).
		Count(&clash)
	if clash > 0 {
		return nil, errors.New("doctor already has an appointment in this slot")
	}

	appt := &models.Appointment{
		ConsultationID: consultationID,
		PatientID:      req.PatientID,
		DoctorID:       req.DoctorID,
		ScheduledAt:    at,
		DurationMin:    durationMin,
		Mode:           mode,
		Status:         models.AppointmentScheduled,
	}
	if err := config.DB.Create(appt).Error; err != nil {
		return nil, err
	}

	doctor, _ := FindUserByID(req.DoctorID)
	patient, _ := FindUserByID(req.PatientID)
	if doctor != nil && patient != nil {
		if err := utils.SendAppointmentEmail(patient.Email, doctor.FullName(), at, mode); err != nil {
			// email is best-effort; appointment stands
			log.Printf("appointment email failed: %v", err)
		}
		EmitNotification(req.PatientID, models.NotifyAppointment,
			fmt.Sprintf("Appointment confirmed with Dr. %s for %s", doctor.FullName(), at.Format("02 Jan 15:04")))
		EmitNotification(req.DoctorID, models.NotifyAppointment,
			fmt.Sprintf("Appointment booked with %s for %s", patient.FullName(), at.Format("02 Jan 15:04")))
	}
	return appt, nil
}

// ListAppointments returns a user's appointments, soonest first. With
// upcomingOnly, past and non-scheduled entries are dropped.
func ListAppointments(userID uint, role string, upcomingOnly bool) ([]models.Appointment, error) {
	var appts []models.Appointment
	q := config.DB.Order("scheduled_at ASC")
	if role == models.RoleDoctor {
		q = q.Where("doctor_id = ?", userID)
	} else {
		q = q.Where("patient_id = ?", userID)
	}
	if upcomingOnly {
		q = q.Where("status = ? AND scheduled_at >= ?", models.AppointmentScheduled, time.Now())
	}
	err := q.Find(&appts).Error
	return appts, err
}

func CancelAppointment(appointmentID, userID uint) error {
	return transitionAppointment(appointmentID, userID, models.AppointmentCancelled, "cancelled")
}

// CompleteAppointment is doctor-driven; the handler enforces the role.
func CompleteAppointment(appointmentID, doctorID uint) error {
	var appt models.Appointment
	if err := config.DB.Where("id = ? AND doctor_id = ?", appointmentID, doctorID).First(&appt).Error; err != nil {
		return errors.New("appointment not found")
	}
	if appt.Status != models.AppointmentScheduled {
		return errors.New("appointment is not scheduled")
	}
	appt.Status = models.AppointmentCompleted
	return config.DB.Save(&appt).Error
}

func transitionAppointment(appointmentID, userID uint, status, verb string) error {
	var appt models.Appointment
	err := config.DB.
		Where("id = ? AND (patient_id = ? OR doctor_id = ?)", appointmentID, userID, userID).
		First(&appt).Error
	if err != nil {
		return errors.New("appointment not found")
	}
	if appt.Status != models.AppointmentScheduled {
		return errors.New("appointment is not scheduled")
	}

	appt.Status = status
	if err := config.DB.Save(&appt).Error; err != nil {
		return err
	}

	otherID := appt.PatientID
	if userID == appt.PatientID {
		otherID = appt.DoctorID
	}
	EmitNotification(otherID, models.NotifyAppointment,
		fmt.Sprintf("Appointment on %s was %s", appt.ScheduledAt.Format("02 Jan 15:04"), verb))
	return nil
}
