// Package firestore contains the Cloud Firestore implementation of the record store.
//
// Layout:
//
//	users/{userId}
//	users/{userId}/settings/notifications
//	users/{userId}/fcmTokens/{docId}
package firestore

import (
	"time"

	"devotional/internal/domain/entity"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	usersCollection    = "users"
	settingsCollection = "settings"
	settingsDocID      = "notifications"
	tokensCollection   = "fcmTokens"

	fieldToken      = "token"
	fieldLastSentAt = "lastNotificationSentDate"

	// Firestore caps "in" filters at 30 values
	maxInFilterValues = 30
)

// settingsDocument mirrors users/{userId}/settings/notifications.
type settingsDocument struct {
	Enabled           bool       `firestore:"notificationsEnabled"`
	NotificationTime  string     `firestore:"notificationTime"`
	Timezone          string     `firestore:"userTimezone"`
	PreferredLanguage string     `firestore:"preferredLanguage"`
	LastSentAt        *time.Time `firestore:"lastNotificationSentDate"`
	UpdatedAt         *time.Time `firestore:"lastUpdated"`
}

func toSettingsDomain(userID string, doc *settingsDocument) *entity.NotificationSettings {
	return &entity.NotificationSettings{
		UserID:            userID,
		Enabled:           doc.Enabled,
		NotificationTime:  doc.NotificationTime,
		Timezone:          doc.Timezone,
		PreferredLanguage: doc.PreferredLanguage,
		LastSentAt:        doc.LastSentAt,
		UpdatedAt:         doc.UpdatedAt,
	}
}

// tokenDocument mirrors users/{userId}/fcmTokens/{docId}.
type tokenDocument struct {
	Token     string    `firestore:"token"`
	Platform  string    `firestore:"platform"`
	CreatedAt time.Time `firestore:"createdAt"`
}

func toTokenDomain(userID string, doc *tokenDocument) *entity.DeviceToken {
	return &entity.DeviceToken{
		UserID:    userID,
		Token:     doc.Token,
		Platform:  doc.Platform,
		CreatedAt: doc.CreatedAt,
	}
}

func userRef(client *firestore.Client, userID string) *firestore.DocumentRef {
	return client.Collection(usersCollection).Doc(userID)
}

func settingsRef(client *firestore.Client, userID string) *firestore.DocumentRef {
	return userRef(client, userID).Collection(settingsCollection).Doc(settingsDocID)
}

func tokensRef(client *firestore.Client, userID string) *firestore.CollectionRef {
	return userRef(client, userID).Collection(tokensCollection)
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
