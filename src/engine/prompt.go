package engine

import (
	"fmt"
	"strings"
)

// reportInstructions maps each report type to the deliverable the model is
// asked to produce. Unknown types fall back to the research report shape.
var reportInstructions = map[string]string{
	"research_report": "Write a detailed, well-structured research report that answers the query. Use markdown headings, synthesize the sources rather than listing them, and cite sources inline by title or URL.",
	"subtopic_report": "Write a focused report covering this subtopic in depth as part of a larger research effort. Stay on the subtopic; do not restate general background.",
	"custom_report":   "Treat the query as explicit reporting instructions and follow them exactly, using the sources as evidence.",
	"outline_report":  "Produce a hierarchical outline for a research report on the query: section headings with one-line summaries, no prose paragraphs.",
	"resource_report": "Produce an annotated list of the most relevant sources for the query. For each source give its title, where it came from, and a short note on what it contributes.",
}

// reportPrompt renders the synthesis prompt for the given report type over
// the gathered source material.
func reportPrompt(reportType, query string, sources []string) string {
	instructions, ok := reportInstructions[reportType]
	if !ok {
		instructions = reportInstructions["research_report"]
	}

	var b strings.Builder
	b.WriteString("You are a diligent research assistant producing a report from the source material below.\n\n")
	fmt.Fprintf(&b, "Query:\n%s\n\n", strings.TrimSpace(query))
	fmt.Fprintf(&b, "Deliverable:\n%s\n\n", instructions)
	b.WriteString("Source material:\n")
	for i, src := range sources {
		fmt.Fprintf(&b, "--- Source %d ---\n%s\n\n", i+1, strings.TrimSpace(src))
	}
	b.WriteString("Base the report only on the source material. If the sources are insufficient, say what is missing.\n")
	return b.String()
}
