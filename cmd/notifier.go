package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kit-coca/coca-cli/internal/ports"
)

// terminalNotifier renders the fixed notification situations the core
// reports: transient failures, forced logout, and deletion prompts.
type terminalNotifier struct {
	out io.Writer
	in  io.Reader

	errStyle  lipgloss.Style
	warnStyle lipgloss.Style
}

var _ ports.Notifier = (*terminalNotifier)(nil)

func newTerminalNotifier(out io.Writer, in io.Reader) *terminalNotifier {
	return &terminalNotifier{
		out:       out,
		in:        in,
		errStyle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		warnStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
	}
}

func (n *terminalNotifier) SetOutput(out io.Writer) { n.out = out }
func (n *terminalNotifier) SetInput(in io.Reader)   { n.in = in }

func (n *terminalNotifier) TransientError(err error) {
	fmt.Fprintln(n.out, n.errStyle.Render(fmt.Sprintf("error: %v", err)))
}

func (n *terminalNotifier) LoginRequired() {
	fmt.Fprintln(n.out, n.warnStyle.Render("session expired: run `coca login` to sign in again"))
}

// ConfirmDeletion asks for the literal word "delete"; anything else
// cancels.
func (n *terminalNotifier) ConfirmDeletion(subject string) (bool, error) {
	fmt.Fprintf(n.out, "really delete %s? all of its data will be gone. type 'delete' to confirm: ", subject)

	line, err := bufio.NewReader(n.in).ReadString('\n')
	if err != nil && line == "" {
		return false, fmt.Errorf("read confirmation: %w", err)
	}

	return strings.TrimSpace(line) == "delete", nil
}
