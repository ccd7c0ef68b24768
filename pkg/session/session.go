package session

// Session is the per-request identity handed to use cases. The zero value is
// an anonymous caller.
type Session struct {
	UserID          uint64
	Username        string
	Role            string
	IsAuthenticated bool
}

func (s Session) HasRole(roles ...string) bool {
	if !s.IsAuthenticated {
		return false
	}
	for _, r := range roles {
		if s.Role == r {
			return true
		}
	}
	return false
}
