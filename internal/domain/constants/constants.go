// Package constants holds string identifiers shared across layers.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers for run reports.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Record store drivers.
const (
	StoreDriverFirestore = "firestore"
	StoreDriverPostgres  = "postgres"
	StoreDriverMemory    = "memory"
)

// Push payload values understood by the mobile client.
const (
	NotificationTypeDailyDevotional = "daily_devotional"
	NotificationTypeCleanupCheck    = "cleanup_check"
	DefaultDevotionalID             = "daily"
	FlutterClickAction              = "FLUTTER_NOTIFICATION_CLICK"
)
