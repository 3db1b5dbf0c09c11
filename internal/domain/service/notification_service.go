package service

import "context"

// PushNotification represents one push message addressed to a device token.
type PushNotification struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}

// NotificationService defines the interface for delivering push notifications
// to user devices.
type NotificationService interface {
	// Send delivers a single push notification.
	Send(ctx context.Context, notification *PushNotification) error
}
