package services

import (
	"errors"
	"fmt"
	"time"

	"ayurbackend/config"
	"ayurbackend/models"
)

// SendMessage posts a message inside an accepted consultation. Only the two
// participants can send; the other party is notified.
func SendMessage(consultationID, senderID uint, body string) (*models.Message, error) {
	if body == "" {
		return nil, errors.New("message body is required")
	}

	req, err := activeConsultation(consultationID, senderID)
	if err != nil {
		return nil, err
	}

	msg := &models.Message{
		ConsultationID: consultationID,
		SenderID:       senderID,
		Body:           body,
	}
	if err := config.DB.Create(msg).Error; err != nil {
		return nil, err
	}

	recipientID := req.PatientID
	if senderID == req.PatientID {
		recipientID = req.DoctorID
	}
	sender, _ := FindUserByID(senderID)
	if sender != nil {
		EmitNotification(recipientID, models.NotifyMessage,
			fmt.Sprintf("New message from %s", sender.FullName()))
	}
	return msg, nil
}

// ListMessages returns a conversation oldest first and marks messages sent
// by the other party as read.
func ListMessages(consultationID, userID uint) ([]models.Message, error) {
	if _, err := activeConsultation(consultationID, userID); err != nil {
		return nil, err
	}

	var msgs []models.Message
	err := config.DB.
		Where("consultation_id = ?", consultationID).
		Order("created_at ASC").
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}

	now := time.Now()
	config.DB.Model(&models.Message{}).
		Where("consultation_id = ? AND sender_id <> ? AND read_at IS NULL", consultationID, userID).
		Update("read_at", now)

	return msgs, nil
}
