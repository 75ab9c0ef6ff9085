package domain

// SessionRecord is the single locally persisted signup identity. The
// password is stored in plaintext; hardening is explicitly out of scope
// and the store is interface-isolated so a hashing backend can replace it.
type SessionRecord struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
