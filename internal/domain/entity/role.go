// Package entity contains the core business objects of the project.
package entity

// Role is the account kind picked at sign up. Homeowners publish listings,
// users only search and book them.
type Role string

const (
	RoleUser      Role = "user"
	RoleHomeowner Role = "homeowner"
)

func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is one of the registrable roles.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleHomeowner
}

// RoleFromString parses a stored role. Unknown or missing values read as
// RoleUser so a malformed profile never gains homeowner rights.
func RoleFromString(s string) Role {
	if role := Role(s); role.IsValid() {
		return role
	}

	return RoleUser
}
