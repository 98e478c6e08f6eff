/*
PURPOSE:
  Human-readable console reports: banners, sections, summaries, batch progress.

REQUIREMENTS:
  User-specified:
  - Fixed layout for model summaries and [OK]/[FAIL]/[ERROR] job lines.

  Implementation-discovered:
  - Styling must disappear when stdout is redirected.

ARCHITECTURE INTEGRATION:
  - Used by: internal/engine, internal/cli
  - Consumes: internal/model report types

ERROR HANDLING:
  - Write errors to the destination are ignored, as with fmt.Printf.

IMPLEMENTATION RULES:
  - Use a lipgloss renderer bound to the destination writer, never the global one.
  - Report text only; diagnostics go through Logger.

USAGE:
  console := output.NewConsole(os.Stdout)
  console.Summary(report)

SELF-HEALING INSTRUCTIONS:
  - If colors leak into files, check NewConsole still uses lipgloss.NewRenderer(w).

RELATED FILES:
  - internal/output/format.go

MAINTENANCE:
  - Update when summary sections change.
*/

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/daryltucker/evalreport/internal/model"
)

const bannerWidth = 80

// Console prints human-readable reports. Styling is resolved against the
// destination writer, so pipes and files receive plain text.
type Console struct {
	w io.Writer

	title lipgloss.Style
	ok    lipgloss.Style
	fail  lipgloss.Style
	muted lipgloss.Style
}

// NewConsole creates a Console writing to w.
func NewConsole(w io.Writer) *Console {
	r := lipgloss.NewRenderer(w)
	return &Console{
		w:     w,
		title: r.NewStyle().Bold(true),
		ok:    r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		fail:  r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		muted: r.NewStyle().Faint(true),
	}
}

// Printf writes formatted text as-is.
func (c *Console) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.w, format, args...)
}

// Banner prints a title between two full-width rules.
func (c *Console) Banner(title string) {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintf(c.w, "%s\n%s\n%s\n", rule, c.title.Render(title), rule)
}

// Section prints a blank line and an upper-case section heading.
func (c *Console) Section(title string) {
	fmt.Fprintf(c.w, "\n%s\n", c.title.Render(strings.ToUpper(title)+":"))
}

// Item prints one indented bullet.
func (c *Console) Item(format string, args ...interface{}) {
	fmt.Fprintf(c.w, "   - "+format+"\n", args...)
}

// Summary prints a model's console report.
func (c *Console) Summary(r *model.ConsoleReport) {
	fmt.Fprintln(c.w)
	c.Banner(strings.ToUpper(r.Model) + " SUMMARY")

	c.Section("Main evaluation performance")
	c.Item("F1-Score: %s (Rank: %d/%d)", FormatScore(r.Main.F1), r.MainRank, r.MainTotal)
	c.Item("Precision: %s", FormatScore(r.Main.Precision))
	c.Item("Recall: %s", FormatScore(r.Main.Recall))
	c.Item("AUC: %s", FormatScore(r.Main.AUC))
	c.Item("Training Time: %.2fs", r.Main.TrainingTime)
	c.Item("Inference Time: %.2fs", r.Main.InferenceTime)

	c.Section("Attack-specific performance")
	if len(r.Attacks) == 0 {
		c.Item("%s", c.muted.Render("no attack-specific results"))
	}
	for _, a := range r.Attacks {
		c.Item("%s: F1=%s, AUC=%s", a.AttackType, FormatScore(a.F1), FormatScore(a.AUC))
	}

	if r.FocusAttack == "" {
		return
	}

	attack := attackTitle(r.FocusAttack)
	c.Section(attack + " performance")
	if r.FocusRow == nil {
		c.Item("%s", c.muted.Render("no "+r.FocusAttack+" results for "+r.Model))
	} else {
		c.Item("Detection Rate: %.1f%%", r.FocusRow.F1*100)
		c.Item("Precision: %s", FormatScore(r.FocusRow.Precision))
		c.Item("AUC: %s", FormatScore(r.FocusRow.AUC))
	}

	c.Section(attack + " model ranking")
	if len(r.FocusRanking) == 0 {
		fmt.Fprintf(c.w, "   %s\n", c.muted.Render("no models evaluated against "+r.FocusAttack))
	}
	for _, row := range r.FocusRanking {
		line := fmt.Sprintf("%d. %s: F1=%s", row.Rank, row.Model, FormatScore(row.F1))
		if row.Model == r.Model {
			line = c.title.Render(line)
		}
		fmt.Fprintf(c.w, "   %s\n", line)
	}
}

// Hyperparameters prints a model's hyperparameter tuning outcome.
func (c *Console) Hyperparameters(row model.ResultRow) {
	c.Section("Hyperparameter tuning results")
	c.Item("Best F1: %s", FormatScore(row.F1))
	c.Item("Best Parameters: %s", row.BestParameters)
	c.Item("Training Time: %.2fs", row.TrainingTime)
	c.Item("Inference Time: %s", FormatInferenceTime(row.InferenceTime))
}

// JobStarted announces a batch job.
func (c *Console) JobStarted(script string) {
	fmt.Fprintf(c.w, "Running %s...\n", script)
}

// JobFinished prints the outcome line of a batch job.
func (c *Console) JobFinished(res model.JobResult) {
	switch res.Status {
	case model.JobOK:
		fmt.Fprintf(c.w, "   %s %s completed successfully\n", c.ok.Render("[OK]"), res.Script)
	case model.JobFail:
		fmt.Fprintf(c.w, "   %s %s failed: %s\n", c.fail.Render("[FAIL]"), res.Script, diagnostic(res))
	default:
		fmt.Fprintf(c.w, "   %s Error running %s: %s\n", c.fail.Render("[ERROR]"), res.Script, diagnostic(res))
	}
}

// BatchSummary prints the tally and every failure detail.
func (c *Console) BatchSummary(b *model.BatchReport) {
	c.Section("Batch summary")
	c.Item("Succeeded: %d", b.Succeeded)
	c.Item("Failed: %d", b.Failed)

	failures := b.Failures()
	if len(failures) == 0 {
		return
	}
	c.Section("Failures")
	for _, f := range failures {
		c.Item("%s (exit %d)", f.Script, f.ExitCode)
		detail := f.Diagnostic
		if detail == "" && f.Err != nil {
			detail = f.Err.Error()
		}
		for _, line := range strings.Split(strings.TrimRight(detail, "\n"), "\n") {
			if line != "" {
				fmt.Fprintf(c.w, "       %s\n", line)
			}
		}
	}
}

// Files lists created or updated files under a heading.
func (c *Console) Files(title string, paths, labels []string) {
	c.Section(title)
	for i, p := range paths {
		if i < len(labels) && labels[i] != "" {
			c.Item("%s (%s)", p, labels[i])
			continue
		}
		c.Item("%s", p)
	}
}

// ModelList prints the models found in one table with their row counts.
func (c *Console) ModelList(table, path string, names []string, rows map[string]int) {
	fmt.Fprintf(c.w, "%s %s\n", c.title.Render(table), c.muted.Render("("+path+")"))
	for _, name := range names {
		if n := rows[name]; n > 1 {
			fmt.Fprintf(c.w, "- %s (%d rows)\n", name, n)
			continue
		}
		fmt.Fprintf(c.w, "- %s\n", name)
	}
}

func diagnostic(res model.JobResult) string {
	if res.Err == nil {
		return strings.TrimSpace(res.Stderr)
	}
	if res.Err.Diagnostic != "" {
		return strings.TrimSpace(res.Err.Diagnostic)
	}
	if res.Err.Err != nil {
		return res.Err.Err.Error()
	}
	return fmt.Sprintf("exit status %d", res.Err.ExitCode)
}

func attackTitle(attack string) string {
	return strings.ToUpper(strings.ReplaceAll(attack, "_", " "))
}
