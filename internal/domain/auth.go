package domain

import "path"

const SecretNamePassword = "password"

type Credentials struct {
	// Instance is the backend URL or establishment code, opaque to the core.
	Instance string
	Username string
	// SecretRef is the secret-store key holding the backend password or token.
	SecretRef string
}

func (c Credentials) IsZero() bool {
	return c.Instance == "" && c.Username == "" && c.SecretRef == ""
}

// SecretKey builds the store key for a named secret of an account, e.g.
// "accounts/<id>/password".
func SecretKey(id AccountID, name string) string {
	return path.Join("accounts", string(id), name)
}
