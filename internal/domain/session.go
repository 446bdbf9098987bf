package domain

import "time"

// Session is the stored credential pair plus the member it belongs to.
// The zero value means "not logged in".
type Session struct {
	AccessToken  string
	RefreshToken string
	UserID       string
	// ExpiresAt is the unix time the access token stops being accepted,
	// or 0 when the backend did not report one.
	ExpiresAt int64
}

func (s Session) Authenticated() bool {
	return s.AccessToken != ""
}

func (s Session) Empty() bool {
	return s.AccessToken == "" && s.RefreshToken == "" && s.UserID == ""
}

// Validate rejects sessions that carry an access token without the
// member id it was issued for.
func (s Session) Validate() error {
	if s.AccessToken != "" && s.UserID == "" {
		return ErrSessionIncomplete
	}
	return nil
}

// ExpiringSoon reports whether the access token expires within skew of
// now. Sessions without a recorded expiry never report as expiring.
func (s Session) ExpiringSoon(now time.Time, skew time.Duration) bool {
	if s.ExpiresAt <= 0 {
		return false
	}
	expiresAt := time.Unix(s.ExpiresAt, 0)
	return !expiresAt.After(now.Add(skew))
}
