// Package prompt asks the operator for values that were not given on the
// command line.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/mattn/go-isatty"
)

// ErrAborted is returned when the operator interrupts a prompt
var ErrAborted = errors.New("prompt aborted")

// Prompter asks a single question and returns the trimmed answer.
// Calls block until the operator answers.
type Prompter interface {
	Prompt(message string) (string, error)
}

// New returns a survey-backed prompter when stdin is a terminal and a plain
// line reader otherwise, so answers can be piped in.
func New() Prompter {
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return NewSurvey(os.Stdin, os.Stdout, os.Stderr)
	}
	return NewLineReader(os.Stdin, os.Stderr)
}

// SurveyPrompter renders prompts with survey
type SurveyPrompter struct {
	in  terminal.FileReader
	out terminal.FileWriter
	err io.Writer
}

// NewSurvey creates a survey prompter on the given streams
func NewSurvey(in terminal.FileReader, out terminal.FileWriter, errOut io.Writer) *SurveyPrompter {
	return &SurveyPrompter{in: in, out: out, err: errOut}
}

// Prompt implements Prompter
func (p *SurveyPrompter) Prompt(message string) (string, error) {
	var answer string
	question := &survey.Input{Message: message}
	if err := survey.AskOne(question, &answer, survey.WithStdio(p.in, p.out, p.err)); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", ErrAborted
		}
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// LineReader prompts by writing the message and reading one line
type LineReader struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewLineReader creates a prompter reading answers line by line from in
func NewLineReader(in io.Reader, out io.Writer) *LineReader {
	return &LineReader{reader: bufio.NewReader(in), out: out}
}

// Prompt implements Prompter. End of input counts as an empty answer.
func (p *LineReader) Prompt(message string) (string, error) {
	if _, err := fmt.Fprintf(p.out, "%s ", message); err != nil {
		return "", err
	}
	line, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
