package identifier

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"xdao.co/rinchi/rinchi"
)

// DefaultBin and DefaultArgs run Open Babel reading one SMILES from stdin and
// writing its standard InChI to stdout.
const DefaultBin = "obabel"

var DefaultArgs = []string{"-ismi", "-oinchi"}

// ErrNoOutput is returned when the generator exits cleanly without printing anything.
var ErrNoOutput = errors.New("identifier: generator produced no output")

// Exec computes identifiers by running an external generator once per molecule.
//
// The molecule text (string or []byte) is written to the process stdin and
// the process stdout is returned as the identifier. The process environment
// is inherited unless Env is set.
type Exec struct {
	bin  string
	args []string
	env  []string
	log  *zap.Logger
}

var _ rinchi.Identifier = (*Exec)(nil)

type ExecOptions struct {
	// Bin is the generator binary. If empty, DefaultBin is used.
	Bin string
	// Args are passed to Bin. If nil, DefaultArgs are used when Bin is
	// DefaultBin and no arguments otherwise.
	Args []string
	// Env optionally overrides the command environment.
	Env []string
	// Logger receives one debug event per run. nil disables logging.
	Logger *zap.Logger
}

func NewExec(opts ExecOptions) *Exec {
	bin := opts.Bin
	if bin == "" {
		bin = DefaultBin
	}
	args := opts.Args
	if args == nil && bin == DefaultBin {
		args = DefaultArgs
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Exec{bin: bin, args: append([]string(nil), args...), env: opts.Env, log: log}
}

func (e *Exec) Identify(m rinchi.Molecule) (string, error) {
	var in []byte
	switch v := m.(type) {
	case string:
		in = []byte(v)
	case []byte:
		in = v
	default:
		return "", fmt.Errorf("identifier: unsupported molecule type %T", m)
	}
	if len(in) == 0 || in[len(in)-1] != '\n' {
		in = append(append([]byte(nil), in...), '\n')
	}

	out, err := e.run(in)
	if err != nil {
		return "", err
	}
	if len(bytes.TrimSpace(out)) == 0 {
		return "", ErrNoOutput
	}
	return string(out), nil
}

func (e *Exec) run(stdin []byte) ([]byte, error) {
	cmd := exec.Command(e.bin, e.args...)
	if e.env != nil {
		cmd.Env = e.env
	}
	cmd.Stdin = bytes.NewReader(stdin)

	out, err := cmd.Output()
	e.log.Debug("ran identifier generator", zap.String("bin", e.bin), zap.Int("stdout_bytes", len(out)), zap.Error(err))
	if err == nil {
		return out, nil
	}

	var ee *exec.ExitError
	if errors.As(err, &ee) {
		s := strings.TrimSpace(string(ee.Stderr))
		if s == "" {
			return nil, fmt.Errorf("%s: %v", e.bin, err)
		}
		return nil, fmt.Errorf("%s: %s", e.bin, s)
	}
	return nil, err
}
