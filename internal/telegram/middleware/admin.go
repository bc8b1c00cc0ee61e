package middleware

import tele "gopkg.in/telebot.v4"

// AdminOptions defines how admin-only checks behave.
type AdminOptions struct {
	IsAdmin  func(userID int64) bool
	OnReject tele.HandlerFunc
}

// WithAdminCheck wraps a handler so only configured admins reach it.
// Non-admin callers get the reject handler, or silence when none is set.
func WithAdminCheck(opts AdminOptions, handler tele.HandlerFunc) tele.HandlerFunc {
	if opts.IsAdmin == nil {
		return handler
	}
	return func(c tele.Context) error {
		user := c.Sender()
		if user == nil || !opts.IsAdmin(user.ID) {
			if opts.OnReject != nil {
				return opts.OnReject(c)
			}
			return nil
		}
		return handler(c)
	}
}
