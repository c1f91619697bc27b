package models

import (
	"html"
	"strings"
)

// Admin matches the admins table. One admin row is one login identity; the
// id is the canonical int64 identity carried through every token and
// comparison site.
type Admin struct {
	AdminID      int64  `json:"admin_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

func (a *Admin) Prepare() {
	a.Name = strings.TrimSpace(a.Name)
	a.Email = html.EscapeString(strings.TrimSpace(a.Email))
}
