package render

import (
	"context"
	"os/exec"
	"runtime"

	errs "github.com/matzehuels/dotbuilder/pkg/errors"
)

// Opener asks the host to display a file with its default application.
type Opener struct {
	goos  string
	start func(name string, args ...string) error
}

// NewOpener returns an opener for the running platform.
func NewOpener() *Opener {
	return &Opener{goos: runtime.GOOS, start: startDetached}
}

// Command returns the program and arguments that open path on the opener's
// platform.
func (o *Opener) Command(path string) (string, []string) {
	switch o.goos {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}
	default:
		return "xdg-open", []string{path}
	}
}

// Open starts the viewer and returns without waiting for it.
func (o *Opener) Open(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name, args := o.Command(path)
	if err := o.start(name, args...); err != nil {
		return errs.Wrap(errs.ErrCodeOpenFailed, err, "open %s", path)
	}
	return nil
}

// startDetached starts the process and reaps it in the background. The viewer
// must outlive the CLI's context, so exec.CommandContext is not used.
func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
