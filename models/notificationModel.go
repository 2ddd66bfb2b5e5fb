package models

import "gorm.io/gorm"

const (
	NotificationTypeOrder     = "order"
	NotificationTypePromotion = "promotion"
	NotificationTypeSystem    = "system"
)

type Notification struct {
	gorm.Model
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
	UserID  int    `json:"userId"`
	Read    bool   `json:"read"`
}

func IsValidNotificationType(notificationType string) bool {
	return notificationType == NotificationTypeOrder ||
		notificationType == NotificationTypePromotion ||
		notificationType == NotificationTypeSystem
}
