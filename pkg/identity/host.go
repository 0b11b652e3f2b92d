package identity

import (
	stderrors "errors"
	"os"
	"os/user"
)

// HostSession reads the login session from the environment and falls back
// to the process owner
type HostSession struct {
	getenv  func(string) string
	current func() (*user.User, error)
}

// NewHostSession creates a session backed by the host
func NewHostSession() *HostSession {
	return &HostSession{getenv: os.Getenv, current: user.Current}
}

// CurrentUser implements Session
func (s *HostSession) CurrentUser() (string, error) {
	for _, key := range []string{"LOGNAME", "USER"} {
		if v := s.getenv(key); v != "" {
			return v, nil
		}
	}
	u, err := s.current()
	if err != nil {
		return "", err
	}
	return u.Username, nil
}

// HostDirectory looks accounts up in the host user database
type HostDirectory struct {
	lookup func(string) (*user.User, error)
}

// NewHostDirectory creates a directory backed by the host user database
func NewHostDirectory() *HostDirectory {
	return &HostDirectory{lookup: user.Lookup}
}

// Lookup implements Directory
func (d *HostDirectory) Lookup(id string) (Account, error) {
	u, err := d.lookup(id)
	if err != nil {
		var unknown user.UnknownUserError
		if stderrors.As(err, &unknown) {
			return Account{}, ErrAccountNotFound
		}
		return Account{}, err
	}
	return Account{ID: u.Username, FullName: u.Name}, nil
}
