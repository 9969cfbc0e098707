package model

// Admin is a management user able to log in and edit shop listings. Admins
// are created only through the one-time bootstrap endpoint and are never
// updated or deleted in normal operation.
//
// Fields:
//  ID           – primary key identifier.
//  Email        – unique email address used as the login name.
//  PasswordHash – bcrypt hashed password.
type Admin struct {
	ID           uint64 // admins.id
	Email        string // admins.email
	PasswordHash string // admins.password
}
