package controller

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	m "gooze.dev/pkg/strmut/internal/model"
)

const maxDescriptionWidth = 60

func renderReports(reports []m.Report) string {
	var b strings.Builder

	files := 0
	total := 0

	for _, report := range reports {
		if report.Source.Origin == nil || len(report.Candidates) == 0 {
			continue
		}

		files++
		total += len(report.Candidates)

		fmt.Fprintf(&b, "\n%s\n", sourceLabel(report.Source))
		b.WriteString(renderCandidateTable(report.Candidates))
	}

	fmt.Fprintf(&b, "\nTotal: %d string mutation(s) across %d file(s)\n", total, files)

	return b.String()
}

func renderCandidateTable(candidates []m.MutationIdentifier) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "ID", "Line", "Description"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})

	for _, candidate := range candidates {
		table.Append([]string{
			strconv.Itoa(candidate.Index),
			candidate.ID,
			fmt.Sprintf("%d:%d", candidate.Location.Line, candidate.Location.Column),
			printable(candidate.Description, maxDescriptionWidth),
		})
	}

	table.Render()

	return tableBuffer.String()
}

func renderMutationHeader(mutation m.Mutation) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Applied mutation %s (#%d) in %s\n", mutation.ID, mutation.Index, sourceLabel(mutation.Source))
	fmt.Fprintf(&b, "Registered as: %s\n", printable(mutation.Description, 0))

	return b.String()
}

func sourceLabel(source m.Source) string {
	if source.Origin == nil {
		return ""
	}

	if source.Origin.ShortPath != "" {
		return string(source.Origin.ShortPath)
	}

	return string(source.Origin.FullPath)
}

// printable escapes non-printable runes and truncates to width runes (0 = no limit).
func printable(s string, width int) string {
	quoted := strconv.QuoteToGraphic(s)
	quoted = quoted[1 : len(quoted)-1]

	if width <= 0 {
		return quoted
	}

	runes := []rune(quoted)
	if len(runes) <= width {
		return quoted
	}

	return string(runes[:width-1]) + "…"
}
