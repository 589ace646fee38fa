// Package session persists the authenticated identity and bearer credential
// so a restart does not force re-login, and answers the "who is signed in
// right now" question for the rest of the client.
package session

import "coursehub/pkg/domain"

// Store is the durable home of the current session. Load reports false when
// no session is saved.
type Store interface {
	Save(sess domain.Session) error
	Load() (domain.Session, bool, error)
	Clear() error
}

// persisted mirrors the two fixed storage keys the client has always used:
// the raw credential and the serialized profile.
type persisted struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

func toPersisted(sess domain.Session) persisted {
	return persisted{
		Token: sess.Token,
		User: domain.User{
			ID:    sess.UserID,
			Name:  sess.Name,
			Email: sess.Email,
			Role:  sess.Role,
		},
	}
}

func (p persisted) session() domain.Session {
	return domain.Session{
		UserID: p.User.ID,
		Name:   p.User.Name,
		Email:  p.User.Email,
		Role:   p.User.Role,
		Token:  p.Token,
	}
}
