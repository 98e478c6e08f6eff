/*
PURPOSE:
  Batch runner: invokes a fixed list of external visualization scripts,
  one after another, and reports pass/fail per script.

REQUIREMENTS:
  User-specified:
  - Strictly sequential; console output of jobs must not interleave.
  - Continue after a failure (no fail-fast), no retries, no timeout.
  - Tally succeeded/failed and keep the diagnostic text of each failure.

  Implementation-discovered:
  - A script that cannot be started (missing interpreter) is a failure too,
    reported separately from a non-zero exit.
  - Runs are tagged with a run id so JSON Lines history can be grouped.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli (run-scripts, update)
  - Uses: internal/output (console, JSON Lines log)

ERROR HANDLING:
  - Job failures are recorded as *model.ExternalJobError in the report.
  - RunScripts only returns an error when the batch log cannot be opened.

IMPLEMENTATION RULES:
  - RunBatch is a plain fold over the job list.
  - Executor is an interface so tests and callers can swap process handling.

USAGE:
  report := engine.RunBatch(ctx, engine.ProcessExecutor{}, jobs, hooks)

SELF-HEALING INSTRUCTIONS:
  - If scripts hang, the batch hangs; there is deliberately no timeout.

RELATED FILES:
  - internal/model/report.go
  - internal/output/console.go

MAINTENANCE:
  - Update iteration logic if parallelism is ever introduced.
*/

package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/daryltucker/evalreport/internal/config"
	"github.com/daryltucker/evalreport/internal/model"
	"github.com/daryltucker/evalreport/internal/output"
)

// Job is one external script invocation.
type Job struct {
	Script  string   // Identifier shown in reports
	Command string   // Executable, resolved through PATH
	Args    []string // Arguments, usually just the script
	Dir     string   // Working directory
}

// Jobs builds the configured script list as `<interpreter> <script>` jobs.
func Jobs(cfg *config.Config) []Job {
	jobs := make([]Job, 0, len(cfg.Scripts))
	for _, script := range cfg.Scripts {
		script = strings.TrimSpace(script)
		if script == "" {
			continue
		}
		jobs = append(jobs, Job{
			Script:  script,
			Command: cfg.Interpreter,
			Args:    []string{script},
			Dir:     cfg.ScriptDir,
		})
	}
	return jobs
}

// Executor runs a single job to completion.
type Executor interface {
	Execute(ctx context.Context, job Job) model.JobResult
}

// ProcessExecutor runs jobs as child processes, capturing stdout and stderr.
type ProcessExecutor struct {
	// Env replaces the child environment when non-nil.
	Env []string
}

// Execute runs job and classifies the outcome.
func (p ProcessExecutor) Execute(ctx context.Context, job Job) model.JobResult {
	cmd := exec.CommandContext(ctx, job.Command, job.Args...)
	cmd.Dir = job.Dir
	if p.Env != nil {
		cmd.Env = p.Env
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	res := model.JobResult{Script: job.Script, Started: time.Now()}
	err := cmd.Run()
	res.Duration = time.Since(res.Started)
	res.Stdout = stdout.String()
	res.Stderr = stderr.String()

	if err == nil {
		res.Status = model.JobOK
		return res
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.Status = model.JobFail
		res.ExitCode = exitErr.ExitCode()
		res.Err = &model.ExternalJobError{
			Script:     job.Script,
			ExitCode:   res.ExitCode,
			Diagnostic: strings.TrimSpace(res.Stderr),
			Err:        err,
		}
		return res
	}

	res.Status = model.JobError
	res.ExitCode = -1
	res.Err = &model.ExternalJobError{Script: job.Script, ExitCode: -1, Err: err}
	return res
}

// Hooks observe a batch as it runs. Nil hooks are skipped.
type Hooks struct {
	OnStart  func(Job)
	OnFinish func(model.JobResult)
}

// RunBatch runs jobs in order and folds their outcomes into a report.
// A failed job never stops the jobs after it.
func RunBatch(ctx context.Context, executor Executor, jobs []Job, hooks Hooks) *model.BatchReport {
	report := &model.BatchReport{RunID: uuid.NewString()}

	for _, job := range jobs {
		if hooks.OnStart != nil {
			hooks.OnStart(job)
		}

		res := executor.Execute(ctx, job)
		res.RunID = report.RunID
		if res.Status == "" {
			res.Status = model.JobOK
			if res.Err != nil {
				res.Status = model.JobFail
			}
		}

		if res.Status == model.JobOK {
			report.Succeeded++
		} else {
			report.Failed++
			if res.Err == nil {
				res.Err = &model.ExternalJobError{Script: job.Script, ExitCode: res.ExitCode, Diagnostic: strings.TrimSpace(res.Stderr)}
			}
		}
		report.Results = append(report.Results, res)

		if hooks.OnFinish != nil {
			hooks.OnFinish(res)
		}
	}

	return report
}

// RunScripts runs the configured scripts with console reporting and, when
// configured, a JSON Lines batch log.
func RunScripts(ctx context.Context, cfg *config.Config, executor Executor, jobs []Job, console *output.Console) (*model.BatchReport, error) {
	var log *output.JSONWriter
	if cfg.BatchLog != "" {
		w, err := output.NewJSONWriter(cfg.BatchLog)
		if err != nil {
			return nil, fmt.Errorf("failed to open batch log %s: %w", cfg.BatchLog, err)
		}
		defer w.Close()
		log = w
	}

	hooks := Hooks{
		OnStart: func(job Job) {
			output.Logger.WithField("script", job.Script).WithField("dir", job.Dir).Debug("Starting script")
			console.JobStarted(job.Script)
		},
		OnFinish: func(res model.JobResult) {
			entry := output.Logger.WithField("script", res.Script).
				WithField("status", res.Status).
				WithField("duration", res.Duration.Round(time.Millisecond))
			if res.Err != nil {
				entry.WithError(res.Err).Warn("Script failed")
			} else {
				entry.Debug("Script completed")
			}

			console.JobFinished(res)

			if log != nil {
				if err := log.Write(res); err != nil {
					output.Logger.WithError(err).Error("Failed to write batch log record")
				}
			}
		},
	}

	report := RunBatch(ctx, executor, jobs, hooks)
	console.BatchSummary(report)

	output.Logger.WithFields(logrus.Fields{
		"run_id":    report.RunID,
		"succeeded": report.Succeeded,
		"failed":    report.Failed,
	}).Info("Batch finished")

	return report, nil
}
