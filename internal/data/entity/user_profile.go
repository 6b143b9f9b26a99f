package entity

// UserProfile is the identity-linked contact record for a registered client.
// Its ID doubles as the authenticated user identifier.
type UserProfile struct {
	BaseSimple
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	Email        string `db:"email"`
	Phone        string `db:"phone"`
	PasswordHash string `db:"password_hash"`
}
