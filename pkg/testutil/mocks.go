package testutil

import (
	"github.com/rcops/mkmodule/pkg/identity"
	"github.com/stretchr/testify/mock"
)

// MockPrompter is a testify mock of prompt.Prompter
type MockPrompter struct {
	mock.Mock
}

// Prompt records the call and returns the configured answer
func (m *MockPrompter) Prompt(message string) (string, error) {
	args := m.Called(message)
	return args.String(0), args.Error(1)
}

// MockDirectory is a testify mock of identity.Directory
type MockDirectory struct {
	mock.Mock
}

// Lookup records the call and returns the configured account
func (m *MockDirectory) Lookup(id string) (identity.Account, error) {
	args := m.Called(id)
	return args.Get(0).(identity.Account), args.Error(1)
}

// MockLauncher is a testify mock of editor.Launcher
type MockLauncher struct {
	mock.Mock
}

// Launch records the call
func (m *MockLauncher) Launch(command, path string) error {
	args := m.Called(command, path)
	return args.Error(0)
}

// StaticSession is an identity.Session returning a fixed account
type StaticSession struct {
	User string
	Err  error
}

// CurrentUser implements identity.Session
func (s StaticSession) CurrentUser() (string, error) {
	return s.User, s.Err
}

// ScriptedPrompter answers prompts from a fixed list, in order, and records
// the messages it was shown. Running out of answers yields empty strings.
type ScriptedPrompter struct {
	Answers  []string
	Messages []string
}

// Prompt implements prompt.Prompter
func (p *ScriptedPrompter) Prompt(message string) (string, error) {
	p.Messages = append(p.Messages, message)
	if len(p.Answers) == 0 {
		return "", nil
	}
	answer := p.Answers[0]
	p.Answers = p.Answers[1:]
	return answer, nil
}

// Directory is a map-backed identity.Directory
type Directory map[string]string

// Lookup implements identity.Directory
func (d Directory) Lookup(id string) (identity.Account, error) {
	fullName, ok := d[id]
	if !ok {
		return identity.Account{}, identity.ErrAccountNotFound
	}
	return identity.Account{ID: id, FullName: fullName}, nil
}
