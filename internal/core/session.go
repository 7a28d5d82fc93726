package core

// Session identifies the signed-in user behind a request. It is built by the
// auth middleware from the verified ID token and passed explicitly to every
// service operation that acts on behalf of a user, instead of keeping the
// current user as ambient state.
type Session struct {
	UID         string
	Email       string
	DisplayName string
}

// DefaultName returns the name a freshly created profile should carry:
// the display name from the identity provider when present, otherwise the
// user's email address.
func (s Session) DefaultName() string {
	if s.DisplayName != "" {
		return s.DisplayName
	}
	return s.Email
}
