package services

import (
	"fmt"
	"time"

	"ayurbackend/models"

	"gorm.io/gorm"
)

type notifyDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _notify notifyDeps

func InitNotifyDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_notify = notifyDeps{db: db, rt: rt, ps: ps}
}

// EmitNotification persists a notification and fans it out over websocket
// and push. Safe to call from anywhere; a no-op before InitNotifyDeps.
func EmitNotification(userID uint, typ, message string) {
	if _notify.db == nil {
		return // not initialized
	}
	n := &models.Notification{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
	_ = _notify.db.Create(n).Error

	if _notify.rt != nil {
		_notify.rt.Broadcast(userID, map[string]any{
			"kind":         "notification.created",
			"notification": n,
		})
	}
	if _notify.ps != nil {
		_notify.ps.PushToUser(userID, "AyurConnect", message, map[string]string{
			"type": typ, "notificationId": fmt.Sprintf("%d", n.ID),
		})
	}
}

func ListNotifications(userID uint, limit int) ([]models.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var notifs []models.Notification
	err := _notify.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifs).Error
	return notifs, err
}

func UnreadNotificationCount(userID uint) (int64, error) {
	var count int64
	err := _notify.db.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&count).Error
	return count, err
}

func MarkNotificationRead(userID, notificationID uint) error {
	return _notify.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("read", true).Error
}

func MarkAllNotificationsRead(userID uint) error {
	return _notify.db.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true).Error
}
