package pages

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/linkup-social/linkup/pkg/internal/gateway"
	"github.com/linkup-social/linkup/pkg/internal/session"
)

// Prompter is how the page shells ask the user for input. Prompts block
// until answered; destructive actions go through Confirm before any call
// fires.
type Prompter interface {
	Line(label string) (string, error)
	Secret(label string) (string, error)
	Confirm(label string) bool
}

type TerminalPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{in: bufio.NewReader(os.Stdin), out: os.Stdout}
}

func (p *TerminalPrompter) Line(label string) (string, error) {
	fmt.Fprintf(p.out, "%s ", color.New(color.FgCyan).Sprintf("%s:", label))
	line, err := p.in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *TerminalPrompter) Secret(label string) (string, error) {
	return p.Line(label)
}

func (p *TerminalPrompter) Confirm(label string) bool {
	answer, err := p.Line(label + " [y/N]")
	if err != nil {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}

// Pages wires the shells to the gateway and the session.
type Pages struct {
	API     *gateway.Client
	Session *session.Session
	In      Prompter
	Out     io.Writer
}

// Toast levels follow the error taxonomy: success for confirmations, warn for
// requests the backend rejected, fail for transport-level breakage.

func (p *Pages) success(message string) {
	fmt.Fprintln(p.Out, color.GreenString("✔ %s", message))
}

func (p *Pages) warn(message string) {
	fmt.Fprintln(p.Out, color.YellowString("! %s", message))
}

func (p *Pages) fail(message string) {
	fmt.Fprintln(p.Out, color.RedString("✘ %s", message))
}

// notice routes an error to the right toast level.
func (p *Pages) notice(err error) {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		p.warn(apiErr.Error())
		return
	}
	p.fail(err.Error())
}
