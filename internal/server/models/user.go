package models

// User is a stored credential row. PasswordHash is hex(SHA1(pepper ∥
// password ∥ salt)); the plaintext password never reaches this struct.
type User struct {
	ID           int64
	Login        string
	PasswordHash string
	Salt         string
}
