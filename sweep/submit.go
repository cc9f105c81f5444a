package sweep

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/openbehavior/fanout/util"
)

// PartitionToken is the placeholder in a submission command line which is
// replaced by the target partition/queue name.
const PartitionToken = "{PARTITION}"

// Submitter hands a rendered job to an external queueing mechanism.
// Implementations only report success or failure; interpreting the
// scheduler's behavior beyond that is out of scope.
type Submitter interface {
	// Submit submits the job text and returns the scheduler's job ID,
	// when one can be recognized in its output.
	Submit(ctx context.Context, jobText string) (jobID string, err error)
}

// sbatch prints "Submitted batch job 1234" on success.
var jobIDRegexp = regexp.MustCompile(`Submitted batch job ([0-9]+)`)

// CmdSubmitter submits jobs by piping the rendered job text to an
// external command, e.g. "sbatch --partition shared".
type CmdSubmitter struct {
	path string
	args []string
	// Retrier, when set, retries transiently failing submission commands.
	Retrier *util.Retrier
}

// NewCmdSubmitter builds a CmdSubmitter from a submission command line,
// e.g. "sbatch --partition {PARTITION}", substituting the partition name
// for the PartitionToken. It fails if the command line is empty or
// unparseable, or if the command's binary is not found on PATH, so a
// missing scheduler is caught before any job is rendered.
func NewCmdSubmitter(cmdline, partition string) (*CmdSubmitter, error) {
	rendered := Render(cmdline, PartitionToken, partition)

	words, err := shellquote.Split(rendered)
	if err != nil {
		return nil, fmt.Errorf("malformed submit command %q: %v", cmdline, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("empty submit command")
	}

	path, err := exec.LookPath(words[0])
	if err != nil {
		return nil, fmt.Errorf("submit command %q not found: %v", words[0], err)
	}

	return &CmdSubmitter{path: path, args: words[1:]}, nil
}

// Submit runs the submission command with jobText on stdin and returns
// the job ID parsed from its output. On failure the error carries the
// command's stderr so a single value can be re-run by hand.
func (s *CmdSubmitter) Submit(ctx context.Context, jobText string) (string, error) {
	var stdout string
	run := func() error {
		var err error
		stdout, err = s.run(ctx, jobText)
		return err
	}

	var err error
	if s.Retrier != nil {
		err = s.Retrier.Retry(ctx, run)
	} else {
		err = run()
	}
	if err != nil {
		return "", err
	}

	// An unrecognized success message just means no ID; the submission
	// itself succeeded.
	if m := jobIDRegexp.FindStringSubmatch(stdout); m != nil {
		return m[1], nil
	}
	return "", nil
}

func (s *CmdSubmitter) run(ctx context.Context, jobText string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, s.path, s.args...)
	cmd.Stdin = strings.NewReader(jobText)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return "", err
		}
		return "", fmt.Errorf("%v: %s", err, msg)
	}
	return stdout.String(), nil
}
