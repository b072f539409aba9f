package prompter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bundlekit/sdklayout/domain/ports"
)

// CliPrompter implements ports.Prompter for CLI environments.
type CliPrompter struct {
	in  *bufio.Scanner
	raw io.Reader
	out io.Writer
}

// NewCliPrompter creates a new CliPrompter.
func NewCliPrompter(in io.Reader, out io.Writer) ports.Prompter {
	return &CliPrompter{in: bufio.NewScanner(in), raw: in, out: out}
}

// IsInteractive checks if the input is a terminal.
func (p *CliPrompter) IsInteractive() bool {
	if f, ok := p.raw.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

// Confirm asks a yes/no question. Anything but y or yes is a no; end of
// input returns io.EOF.
func (p *CliPrompter) Confirm(question string) (bool, error) {
	_, _ = fmt.Fprintf(p.out, "%s [y/N]: ", question)

	if p.in.Scan() {
		switch strings.ToLower(strings.TrimSpace(p.in.Text())) {
		case "y", "yes":
			return true, nil
		default:
			return false, nil
		}
	}
	if err := p.in.Err(); err != nil {
		return false, err
	}
	return false, io.EOF
}
