package entity

import "time"

// DeviceToken is a push provider registration token owned by one user.
// The token string is its only identity.
type DeviceToken struct {
	UserID    string    // Owner of the token.
	Token     string    // Opaque provider token.
	Platform  string    // Optional client platform (android, ios).
	CreatedAt time.Time // Registration time; zero when the client did not record it.
}

// OlderThan reports whether the token was created before now-maxAge.
// Tokens with unknown creation time are never considered old.
func (t *DeviceToken) OlderThan(now time.Time, maxAge time.Duration) bool {
	if t.CreatedAt.IsZero() {
		return false
	}

	return t.CreatedAt.Before(now.Add(-maxAge))
}

// TokenValues extracts the token strings, dropping empty ones.
func TokenValues(tokens []*DeviceToken) []string {
	values := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if token == nil || token.Token == "" {
			continue
		}
		values = append(values, token.Token)
	}

	return values
}
