// Package fields builds the record a modulefile is rendered from.
//
// Each field is taken from the command line when given there, otherwise
// asked for at the prompt. Only the creation date has a default. Name,
// version and description are mandatory and checked before anything else
// happens; the acting user and the formatted description are filled in
// afterwards.
package fields

import (
	"strings"
	"time"

	"github.com/rcops/mkmodule/pkg/config"
	"github.com/rcops/mkmodule/pkg/errors"
	"github.com/rcops/mkmodule/pkg/identity"
	"github.com/rcops/mkmodule/pkg/logging"
	"github.com/rcops/mkmodule/pkg/prompt"
	"github.com/rcops/mkmodule/pkg/textwrap"
)

// DateLayout is the CreationDate format, YYYY-MM-DD
const DateLayout = "2006-01-02"

// Prompt messages
const (
	MsgPromptName        = "Enter module name:"
	MsgPromptVersion     = "Enter module version:"
	MsgPromptDescription = "Enter module description:"
	MsgPromptURL         = "Enter module URL:"
)

// Record is the resolved descriptor. It is built once per run and not
// modified afterwards.
type Record struct {
	Name                 string
	Version              string
	RawDescription       string
	FormattedDescription string
	URL                  string
	AccountID            string
	DisplayName          string
	EmailAddress         string
	CreationDate         string
}

// Overrides carries values given on the command line
type Overrides struct {
	Name        string
	Version     string
	Description string
	URL         string
	// URLSet marks an explicitly given URL, which may be empty
	URLSet    bool
	AccountID string
	// NonInteractive turns missing values into errors instead of prompts
	NonInteractive bool
}

// IdentityResolver resolves the acting user
type IdentityResolver interface {
	Resolve(explicitID string, privileged map[string]bool, nonInteractive bool) (identity.Identity, error)
}

// Resolver merges overrides, prompts and settings into a Record
type Resolver struct {
	prompter   prompt.Prompter
	identities IdentityResolver
	now        func() time.Time
}

// NewResolver creates a field resolver
func NewResolver(prompter prompt.Prompter, identities IdentityResolver) *Resolver {
	return &Resolver{
		prompter:   prompter,
		identities: identities,
		now:        time.Now,
	}
}

// WithClock replaces the clock used for CreationDate
func (r *Resolver) WithClock(now func() time.Time) *Resolver {
	r.now = now
	return r
}

// Resolve builds the record. Missing mandatory fields fail with
// ErrInvalidInput before the identity lookup or any file access.
func (r *Resolver) Resolve(overrides Overrides, settings config.Settings) (*Record, error) {
	logger := logging.GetLogger("fields")

	rec := &Record{}
	var err error

	if rec.Name, err = r.value(overrides.Name, false, overrides.NonInteractive, MsgPromptName); err != nil {
		return nil, err
	}
	if rec.Version, err = r.value(overrides.Version, false, overrides.NonInteractive, MsgPromptVersion); err != nil {
		return nil, err
	}
	if rec.RawDescription, err = r.value(overrides.Description, false, overrides.NonInteractive, MsgPromptDescription); err != nil {
		return nil, err
	}
	if rec.URL, err = r.value(overrides.URL, overrides.URLSet, overrides.NonInteractive, MsgPromptURL); err != nil {
		return nil, err
	}

	if err := validate(rec); err != nil {
		return nil, err
	}

	id, err := r.identities.Resolve(overrides.AccountID, settings.PrivilegedSet(), overrides.NonInteractive)
	if err != nil {
		return nil, err
	}
	rec.AccountID = id.AccountID
	rec.DisplayName = id.DisplayName
	if rec.DisplayName == "" {
		rec.DisplayName = rec.AccountID
	}

	rec.FormattedDescription = textwrap.Format(rec.RawDescription, settings.Width, settings.Indent)
	rec.EmailAddress = rec.AccountID + "@" + settings.EmailDomain
	rec.CreationDate = r.now().Format(DateLayout)

	logger.Debug().
		Str("name", rec.Name).
		Str("version", rec.Version).
		Str("account", rec.AccountID).
		Str("date", rec.CreationDate).
		Msg("fields resolved")

	return rec, nil
}

// value returns the override when given, otherwise prompts unless the run is
// non-interactive
func (r *Resolver) value(override string, set, nonInteractive bool, message string) (string, error) {
	override = strings.TrimSpace(override)
	if override != "" || set || nonInteractive {
		return override, nil
	}
	answer, err := r.prompter.Prompt(message)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "failed to read answer to %q", message)
	}
	return strings.TrimSpace(answer), nil
}

func validate(rec *Record) error {
	required := []struct {
		field string
		value string
	}{
		{"name", rec.Name},
		{"version", rec.Version},
		{"description", rec.RawDescription},
	}
	for _, req := range required {
		if req.value == "" {
			return errors.Newf(errors.ErrInvalidInput, "module %s is required", req.field).
				WithDetail("field", req.field)
		}
	}

	for _, f := range []struct {
		field string
		value string
	}{{"name", rec.Name}, {"version", rec.Version}} {
		if strings.ContainsAny(f.value, `/\`) || f.value == "." || f.value == ".." {
			return errors.Newf(errors.ErrInvalidInput, "module %s %q must not contain path separators", f.field, f.value).
				WithDetail("field", f.field)
		}
	}
	return nil
}
