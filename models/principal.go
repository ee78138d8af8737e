package models

// PrincipalKind tags the identity attached to a request.
type PrincipalKind string

const (
	PrincipalAnonymous PrincipalKind = "anonymous"
	PrincipalPatient   PrincipalKind = "patient"
	PrincipalAdmin     PrincipalKind = "admin"
)

// Principal is the resolved request identity. It is built once per
// request by the auth middleware and passed to handlers; every
// authorization decision matches on Kind instead of re-reading an
// admin flag scattered across handlers.
type Principal struct {
	Kind   PrincipalKind
	UserID uint
}

// Anonymous is the principal of an unauthenticated request.
var Anonymous = Principal{Kind: PrincipalAnonymous}

// PrincipalFor derives the principal variant from a stored user row.
func PrincipalFor(u *User) Principal {
	if u.IsAdmin {
		return Principal{Kind: PrincipalAdmin, UserID: u.ID}
	}
	return Principal{Kind: PrincipalPatient, UserID: u.ID}
}
