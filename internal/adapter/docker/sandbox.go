package docker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/moby/moby/api/types/container"
	"github.com/moby/moby/client"

	"gitlab.com/cloudjudge-2025.net/internal/config"
	"gitlab.com/cloudjudge-2025.net/internal/core/ports/primary"
	"gitlab.com/cloudjudge-2025.net/internal/core/ports/secondary"
	"gitlab.com/cloudjudge-2025.net/internal/domain"
	"gitlab.com/cloudjudge-2025.net/internal/static/errs"
)

var _ secondary.Sandbox = &Sandbox{}

// Sandbox runs submitted code inside a fresh, disposable Docker container
// per call. The container gets hard memory/CPU ceilings from the limits and
// is force-removed on every exit path.
type Sandbox struct {
	image  string
	logger primary.Logger
}

func NewSandbox(judgeCfg *config.JudgeConfig, logger primary.Logger) *Sandbox {
	return &Sandbox{
		image:  judgeCfg.Image,
		logger: logger,
	}
}

func (s *Sandbox) Run(ctx context.Context, code string, input json.RawMessage, limits domain.ExecutionLimits) (*domain.RawExecution, error) {
	if err := limits.Validate(); err != nil {
		return nil, err
	}

	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.BackendUnavailable, err)
	}
	defer cli.Close()

	// Structured precondition: a daemon that does not answer a ping is
	// unavailable infrastructure, not a failed execution.
	if _, err := cli.Ping(ctx, client.PingOptions{}); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.BackendUnavailable, err)
	}

	containerCfg := &container.Config{
		Image:  s.image,
		Cmd:    []string{"python", "-c", RenderHarness(code, input)},
		Labels: map[string]string{"cloudjudge": "true"},
	}
	hostCfg := hostConfig(limits)

	createResp, err := cli.ContainerCreate(ctx, client.ContainerCreateOptions{
		Config:     containerCfg,
		HostConfig: hostCfg,
	})
	if err != nil {
		return nil, fmt.Errorf("creating container: %w", err)
	}
	containerID := createResp.ID
	defer func() {
		cli.ContainerRemove(context.Background(), containerID, client.ContainerRemoveOptions{Force: true})
	}()

	start := time.Now()
	if _, err := cli.ContainerStart(ctx, containerID, client.ContainerStartOptions{}); err != nil {
		return nil, fmt.Errorf("starting container: %w", err)
	}

	waitCtx, cancel := context.WithTimeout(ctx, limits.Timeout)
	defer cancel()

	waitResult := cli.ContainerWait(waitCtx, containerID, client.ContainerWaitOptions{
		Condition: container.WaitConditionNotRunning,
	})
	for {
		select {
		case err := <-waitResult.Error:
			if err != nil {
				// Deadline fired before the container exited; the kill must
				// not depend on the code cooperating.
				cli.ContainerKill(context.Background(), containerID, client.ContainerKillOptions{Signal: "SIGKILL"})
				stdout, stderr := s.collectOutput(cli, containerID)
				return &domain.RawExecution{
					Stdout:   stdout,
					Stderr:   stderr,
					ExitCode: 124,
					TimedOut: true,
					Duration: time.Since(start),
				}, nil
			}
			// nil on the error channel; keep waiting for the result
		case status := <-waitResult.Result:
			stdout, stderr := s.collectOutput(cli, containerID)
			return &domain.RawExecution{
				Stdout:   stdout,
				Stderr:   stderr,
				ExitCode: int(status.StatusCode),
				TimedOut: false,
				Duration: time.Since(start),
			}, nil
		}
	}
}

// hostConfig translates the limits into container resource ceilings. The
// Resources fields are promoted, so they cannot be set in the literal.
func hostConfig(limits domain.ExecutionLimits) *container.HostConfig {
	hostCfg := &container.HostConfig{}
	hostCfg.Memory = limits.MemoryMB * 1024 * 1024
	hostCfg.NanoCPUs = int64(limits.CPUFraction * 1e9)
	return hostCfg
}

func (s *Sandbox) collectOutput(cli *client.Client, containerID string) (string, string) {
	logReader, err := cli.ContainerLogs(context.Background(), containerID, client.ContainerLogsOptions{
		ShowStdout: true,
		ShowStderr: true,
	})
	if err != nil {
		s.logger.Warn("Failed to read container logs", "containerId", containerID, "error", err)
		return "", ""
	}
	defer logReader.Close()

	stdout, stderr := demuxLogs(logReader)
	return stdout, stderr
}
