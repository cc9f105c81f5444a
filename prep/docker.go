// Package prep runs the dataset preparation and derived-variable
// calculation steps inside a container. The scripts themselves are
// opaque collaborators; fanout only wires up bind mounts, arguments,
// and exit status.
package prep

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/openbehavior/fanout/logger"
	"github.com/rs/xid"
)

// Volume describes a bind mount given to the container.
type Volume struct {
	HostPath      string
	ContainerPath string
	Readonly      bool
}

// Docker is responsible for configuring and running a docker container.
// The container is invoked through the docker CLI rather than the API,
// so any runtime with a docker-compatible command line works.
type Docker struct {
	Image   string
	Name    string
	Volumes []Volume
	Workdir string
	// Cmd is the program and arguments run inside the container.
	Cmd            []string
	RemoveOnExit   bool
	Stdout, Stderr io.Writer
	Log            *logger.Logger
}

// CheckRuntime verifies the docker binary is available. A missing
// container runtime is fatal for the whole run, since no step could
// succeed.
func CheckRuntime() error {
	if _, err := exec.LookPath("docker"); err != nil {
		return fmt.Errorf("docker not found: %v", err)
	}
	return nil
}

// ensureName assigns a unique container name if none was configured.
func (d *Docker) ensureName() {
	if d.Name == "" {
		d.Name = "fanout-prep-" + xid.New().String()
	}
}

// Run runs the docker command and blocks until done.
func (d *Docker) Run(ctx context.Context) error {
	d.ensureName()
	if d.Log == nil {
		d.Log = logger.NewNopLogger()
	}

	args := d.runArgs()
	d.Log.Debug("Running command", "cmd", "docker "+strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, "docker", args...)
	cmd.Stdout = d.Stdout
	cmd.Stderr = d.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("container %s failed: %v", d.Name, err)
	}
	return nil
}

// runArgs builds the "docker run" argument list.
func (d *Docker) runArgs() []string {
	args := []string{"run", "--name", d.Name}
	if d.RemoveOnExit {
		args = append(args, "--rm")
	}
	for _, v := range d.Volumes {
		args = append(args, "-v", formatVolumeArg(v))
	}
	if d.Workdir != "" {
		args = append(args, "-w", d.Workdir)
	}
	args = append(args, d.Image)
	args = append(args, d.Cmd...)
	return args
}

func formatVolumeArg(v Volume) string {
	// Formatted as "HostPath:ContainerPath:Mode".
	mode := "rw"
	if v.Readonly {
		mode = "ro"
	}
	return fmt.Sprintf("%s:%s:%s", v.HostPath, v.ContainerPath, mode)
}
