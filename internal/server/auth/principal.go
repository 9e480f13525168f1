package auth

// Principal is the identity claim attached to an authenticated request.
// It is produced by the request-authentication middleware after the bearer
// token has been verified against the token store, and is passed explicitly
// into service calls instead of being read from ambient global state.
type Principal struct {
	UserID        string
	Email         string
	Authenticated bool
}

// Anonymous reports whether the principal carries no usable identity.
func (p *Principal) Anonymous() bool {
	return p == nil || !p.Authenticated || p.Email == ""
}
