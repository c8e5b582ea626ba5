package output

import (
	"fmt"
	"io"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/agentstation/lintbridge/pkg/reconcile"
)

// Report summarizes what reconciliation did.
type Report struct {
	Summary   string                 `json:"summary" yaml:"summary"`
	Extends   []reconcile.PresetName `json:"extends" yaml:"extends"`
	Kept      int                    `json:"kept" yaml:"kept"`
	Removed   []RemovedRule          `json:"removed" yaml:"removed"`
	Conflicts []string               `json:"preset_conflicts,omitempty" yaml:"preset_conflicts,omitempty"`
	Failed    []string               `json:"failed,omitempty" yaml:"failed,omitempty"`
	Notices   []string               `json:"notices,omitempty" yaml:"notices,omitempty"`
}

// RemovedRule is a converted rule dropped because a preset already sets it.
type RemovedRule struct {
	Rule   string `json:"rule" yaml:"rule"`
	Preset string `json:"preset" yaml:"preset"`
	Value  string `json:"value" yaml:"value"`
}

// NewReport builds a Report from a result.
func NewReport(result *reconcile.SummarizedResult) Report {
	report := Report{
		Summary: result.Summary(),
		Extends: result.Extends,
		Kept:    len(result.Converted),
		Removed: make([]RemovedRule, 0, len(result.Removed)),
		Notices: result.Notices,
	}

	for _, id := range result.Removed {
		preset, _ := result.Provenance.Source(id)
		report.Removed = append(report.Removed, RemovedRule{
			Rule:   id.String(),
			Preset: preset,
			Value:  result.ExtensionRules[id].String(),
		})
	}
	for _, id := range result.Provenance.Conflicts() {
		info := result.Provenance[id]
		report.Conflicts = append(report.Conflicts,
			fmt.Sprintf("%s: %s overrides %s", id, info.Preset, strings.Join(info.Overridden, ", ")))
	}
	for _, err := range result.Failed {
		report.Failed = append(report.Failed, err.Error())
	}
	return report
}

// WriteReport writes a human or machine readable report of a result.
func WriteReport(w io.Writer, format Format, result *reconcile.SummarizedResult) error {
	report := NewReport(result)

	switch format {
	case FormatJSON, FormatYAML:
		return NewFormatter(format).Format(w, report)
	case FormatMarkdown:
		return writeMarkdownReport(w, report)
	default:
		return writeTableReport(w, report)
	}
}

func writeTableReport(w io.Writer, report Report) error {
	fmt.Fprintln(w, report.Summary)

	if len(report.Extends) > 0 {
		fmt.Fprintf(w, "\nExtends: %s\n", strings.Join(report.Extends, ", "))
	}

	if len(report.Removed) > 0 {
		fmt.Fprintln(w)
		data := Data{
			Headers:         []string{"rule", "preset", "value"},
			ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignLeft},
		}
		for _, r := range report.Removed {
			data.Rows = append(data.Rows, []string{r.Rule, r.Preset, r.Value})
		}
		if err := (&TableFormatter{}).Format(w, data); err != nil {
			return err
		}
	}

	for _, section := range []struct {
		title string
		items []string
	}{
		{"Preset conflicts", report.Conflicts},
		{"Errors", report.Failed},
		{"Notices", report.Notices},
	} {
		if len(section.items) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s:\n", section.title)
		for _, item := range section.items {
			fmt.Fprintf(w, "  - %s\n", item)
		}
	}
	return nil
}

func writeMarkdownReport(w io.Writer, report Report) error {
	doc := md.NewMarkdown(w).
		H2("Lint configuration summary").
		PlainText(report.Summary).
		LF()

	if len(report.Extends) > 0 {
		items := make([]string, len(report.Extends))
		for i, name := range report.Extends {
			items[i] = md.Code(name)
		}
		doc.H3("Extends").BulletList(items...)
	}

	if len(report.Removed) > 0 {
		rows := make([][]string, 0, len(report.Removed))
		for _, r := range report.Removed {
			rows = append(rows, []string{md.Code(r.Rule), r.Preset, md.Code(r.Value)})
		}
		doc.H3("Removed rules").Table(md.TableSet{
			Header: []string{HeaderCase("rule"), HeaderCase("preset"), HeaderCase("value")},
			Rows:   rows,
		})
	}

	if len(report.Conflicts) > 0 {
		doc.H3("Preset conflicts").BulletList(report.Conflicts...)
	}
	if len(report.Failed) > 0 {
		doc.H3("Errors").BulletList(report.Failed...)
	}
	if len(report.Notices) > 0 {
		doc.H3("Notices").BulletList(report.Notices...)
	}

	return doc.Build()
}
