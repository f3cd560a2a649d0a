package model

// Credential is the per-username record held in the credential store.
type Credential struct {
	PasswordHash string
	Role         string
}

// User is the external representation of a user record, with the
// store-generated identifier rendered as a hex string.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}
