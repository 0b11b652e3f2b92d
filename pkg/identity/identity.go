// Package identity works out who is running the tool and how to address them.
//
// The acting account comes from an explicit id or the login session. Shared
// accounts listed as privileged are swapped for a personal id entered at the
// prompt, and the resulting id is checked against the host account
// directory, which also supplies the display name.
package identity

import (
	stderrors "errors"
	"strings"

	"github.com/rcops/mkmodule/pkg/errors"
	"github.com/rcops/mkmodule/pkg/logging"
	"github.com/rcops/mkmodule/pkg/prompt"
)

// ErrAccountNotFound is returned by a Directory for unknown ids
var ErrAccountNotFound = stderrors.New("account not found")

// Account is the directory record for one account
type Account struct {
	ID string
	// FullName is the raw name field, comma-separated with the person's
	// name in the first segment (the passwd GECOS convention)
	FullName string
}

// Directory looks accounts up by id
type Directory interface {
	Lookup(id string) (Account, error)
}

// Session reports the account the current login session belongs to
type Session interface {
	CurrentUser() (string, error)
}

// Identity is the resolved acting user
type Identity struct {
	AccountID   string
	DisplayName string
}

// Resolver resolves the acting user
type Resolver struct {
	session   Session
	directory Directory
	prompter  prompt.Prompter
}

// NewResolver creates a resolver using the given collaborators
func NewResolver(session Session, directory Directory, prompter prompt.Prompter) *Resolver {
	return &Resolver{
		session:   session,
		directory: directory,
		prompter:  prompter,
	}
}

// Resolve returns the acting user's id and display name. explicitID wins
// over the session; a privileged candidate is replaced by a prompted
// personal id. With nonInteractive set a privileged candidate is an error
// and nothing is prompted.
func (r *Resolver) Resolve(explicitID string, privileged map[string]bool, nonInteractive bool) (Identity, error) {
	logger := logging.GetLogger("identity")

	candidate := strings.TrimSpace(explicitID)
	if candidate == "" {
		id, err := r.session.CurrentUser()
		if err != nil {
			return Identity{}, errors.Wrap(err, errors.ErrUnknownAccount, "cannot determine the current user")
		}
		candidate = id
		logger.Debug().Str("account", candidate).Msg("account taken from session")
	}

	if privileged[candidate] && nonInteractive {
		return Identity{}, errors.Newf(errors.ErrInvalidInput,
			"running as shared account %s, pass a personal account id with --asurite", candidate).
			WithDetail("privileged", candidate)
	}

	if privileged[candidate] {
		logger.Info().Str("account", candidate).Msg("privileged account, asking for a personal id")
		answer, err := r.prompter.Prompt(MsgPersonalIDPrompt(candidate))
		if err != nil {
			return Identity{}, errors.Wrap(err, errors.ErrInvalidInput, "failed to read personal account id")
		}
		answer = strings.TrimSpace(answer)
		if answer == "" {
			return Identity{}, errors.Newf(errors.ErrInvalidInput,
				"a personal account id is required when running as %s", candidate).
				WithDetail("privileged", candidate)
		}
		if privileged[answer] {
			return Identity{}, errors.Newf(errors.ErrInvalidInput,
				"%s is a shared account, enter a personal account id", answer).
				WithDetail("privileged", answer)
		}
		candidate = answer
	}

	account, err := r.directory.Lookup(candidate)
	if err != nil {
		return Identity{}, errors.Wrapf(err, errors.ErrUnknownAccount, "unknown account %q", candidate).
			WithDetail("account", candidate)
	}

	displayName, ok := DisplayName(account.FullName)
	if !ok {
		warn := errors.Newf(errors.ErrDegradedMetadata,
			"name %q for %s is not in \"First Last\" form, using the account id", account.FullName, candidate)
		logger.Warn().
			Str("code", string(warn.Code)).
			Str("account", candidate).
			Msg(warn.Message)
		displayName = candidate
	}

	return Identity{AccountID: candidate, DisplayName: displayName}, nil
}

// DisplayName extracts the display name from a directory name field: the
// second word of the first comma-separated segment, i.e. the last name of a
// "First Last" entry. ok is false when there are fewer than two words.
func DisplayName(fullName string) (name string, ok bool) {
	segment, _, _ := strings.Cut(fullName, ",")
	words := strings.Fields(segment)
	if len(words) < 2 {
		return "", false
	}
	return words[1], true
}

// MsgPersonalIDPrompt is shown when the session belongs to a shared account
func MsgPersonalIDPrompt(shared string) string {
	return "Running as shared account " + shared + ". Enter your personal account id:"
}
