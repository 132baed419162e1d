// Package entities contains core business entities.
package entities

// User is a domain representation of an account.
type User struct {
	ID              string
	Email           string
	Name            string
	CalendarEnabled bool
	Credentials     *CalendarCredentials
}

// CalendarCredentials holds a user's delegated calendar tokens.
// Mutated only through EnableCalendar/DisableCalendar.
type CalendarCredentials struct {
	AccessToken  string
	RefreshToken string
	CalendarID   string
}

// Connected reports whether the user can act against the external provider.
func (u User) Connected() bool {
	return u.CalendarEnabled && u.Credentials != nil &&
		u.Credentials.AccessToken != "" && u.Credentials.RefreshToken != ""
}
