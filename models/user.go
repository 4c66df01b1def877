package models

// User represents a local account record used to gate access to the browser.
// There is exactly one record per username; records are created once and are
// never updated or deleted by the application.
type User struct {
	// Username is the unique account identifier and the primary key of the
	// users table. Lookups are exact and case-sensitive.
	Username string `json:"username"`

	// Credential is the stored representation of the user's password.
	// For records created by this application it is always "salt:digest";
	// records imported from older installations may hold a bare hex digest
	// with no separator. See [ParseCredential] for the two formats.
	// The backing column is named "password" for historical reasons.
	Credential string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
