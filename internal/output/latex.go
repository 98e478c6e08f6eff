/*
PURPOSE:
  Renders the ranked hyperparameter table as two LaTeX table environments.

REQUIREMENTS:
  User-specified:
  - Performance table and parameter table, \hline after every row.

  Implementation-discovered:
  - Model and parameter names contain underscores and other special
    characters, so every cell is escaped.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine/table.go
  - Consumes: internal/model.TableRow

RELATED FILES:
  - internal/output/markdown.go
*/

package output

import (
	"fmt"
	"strings"

	"github.com/daryltucker/evalreport/internal/model"
)

// latexCell escapes characters that are special in LaTeX text mode.
// Model and parameter names are full of underscores.
var latexCell = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	"_", `\_`,
	"%", `\%`,
	"&", `\&`,
	"#", `\#`,
	"$", `\$`,
	"{", `\{`,
	"}", `\}`,
	"^", `\^{}`,
	"~", `\textasciitilde{}`,
)

// EscapeLaTeX escapes s for use inside a tabular cell.
func EscapeLaTeX(s string) string {
	return latexCell.Replace(s)
}

// RenderLaTeX renders the performance table and the parameter table as two
// LaTeX table environments with a rule after every row.
func RenderLaTeX(rows []model.TableRow) string {
	var sb strings.Builder

	sb.WriteString(`\begin{table}[htbp]
\centering
\caption{Hyperparameter Tuning Results for All Models}
\label{tab:hyperparameter-results}
\begin{tabular}{|l|l|c|c|c|c|c|}
\hline
\textbf{Rank} & \textbf{Model} & \textbf{F1-Score} & \textbf{AUC} & \textbf{Precision} & \textbf{Recall} & \textbf{Training Time} \\
\hline
`)
	for _, r := range rows {
		fmt.Fprintf(&sb, "%s & %s & %s & %s & %s & %s & %s \\\\\n",
			r.Rank, EscapeLaTeX(r.Model), r.F1, r.AUC, r.Precision, r.Recall, r.TrainingTime)
		sb.WriteString("\\hline\n")
	}

	sb.WriteString(`\end{tabular}
\end{table}

% Optimal Parameters Table
\begin{table}[htbp]
\centering
\caption{Optimal Hyperparameters for Each Model}
\label{tab:optimal-parameters}
\begin{tabular}{|l|p{8cm}|}
\hline
\textbf{Model} & \textbf{Optimal Parameters} \\
\hline
`)
	for _, r := range rows {
		fmt.Fprintf(&sb, "%s & %s \\\\\n", EscapeLaTeX(r.Model), EscapeLaTeX(r.Parameters))
		sb.WriteString("\\hline\n")
	}

	sb.WriteString(`\end{tabular}
\end{table}`)

	return sb.String()
}
