package session

import "github.com/gin-contrib/sessions"

const userKey = "user_id"

// UserID returns the authenticated user's id, if any.
func UserID(s sessions.Session) (uint, bool) {
	id, ok := s.Get(userKey).(uint)
	return id, ok
}

func SetUserID(s sessions.Session, id uint) {
	s.Set(userKey, id)
}

func ClearUser(s sessions.Session) {
	s.Delete(userKey)
}
