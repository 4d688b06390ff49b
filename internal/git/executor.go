package git

import "os/exec"

// commandExecutor abstracts git invocation so tests can run without a repo.
type commandExecutor interface {
	execute(command string, args ...string) ([]byte, error)
}

type realExecutor struct {
	dir string
}

func newRealExecutor(dir string) *realExecutor {
	return &realExecutor{dir: dir}
}

func (e *realExecutor) execute(command string, args ...string) ([]byte, error) {
	cmd := exec.Command(command, args...)
	cmd.Dir = e.dir
	return cmd.Output()
}
