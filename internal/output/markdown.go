/*
PURPOSE:
  Renders the ranked hyperparameter table as GitHub-flavored Markdown.

REQUIREMENTS:
  User-specified:
  - Same two tables as the LaTeX rendering, same row order.

  Implementation-discovered:
  - Pipes in cells would split columns and are escaped.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine/table.go
*/

package output

import (
	"fmt"
	"strings"

	"github.com/daryltucker/evalreport/internal/model"
)

var markdownCell = strings.NewReplacer("|", `\|`, "\n", " ")

// RenderMarkdown renders the performance table and the parameter table as
// GitHub-flavored Markdown.
func RenderMarkdown(rows []model.TableRow) string {
	var sb strings.Builder

	sb.WriteString("# Hyperparameter Tuning Results\n\n")
	sb.WriteString("## Table 1: Model Performance Comparison\n\n")
	sb.WriteString("| Rank | Model | F1-Score | AUC | Precision | Recall | Training Time |\n")
	sb.WriteString("|------|-------|----------|-----|-----------|---------|---------------|\n")
	for _, r := range rows {
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s | %s | %s |\n",
			r.Rank, markdownCell.Replace(r.Model), r.F1, r.AUC, r.Precision, r.Recall, r.TrainingTime)
	}

	sb.WriteString("\n## Table 2: Optimal Hyperparameters\n\n")
	sb.WriteString("| Model | Optimal Parameters |\n")
	sb.WriteString("|-------|--------------------|\n")
	for _, r := range rows {
		fmt.Fprintf(&sb, "| %s | %s |\n", markdownCell.Replace(r.Model), markdownCell.Replace(r.Parameters))
	}

	return sb.String()
}
