package outline

import (
	"fmt"
	"strings"

	"github.com/syllab/syllab-cli/pkg/models"
)

// Render produces a plain-text outline of the curriculum for terminal
// output.
func Render(cur models.Curriculum) string {
	var b strings.Builder

	title := cur.Title
	if title == "" {
		title = "(untitled course)"
	}
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")

	if len(cur.Sections) == 0 {
		b.WriteString("No sections yet.\n")
		return b.String()
	}

	for i, section := range cur.Sections {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, section.Title))
		for j, lecture := range section.Lectures {
			marker := " "
			if lecture.VideoURL != "" {
				marker = "▶"
			}
			b.WriteString(fmt.Sprintf("   %d.%d %s %s\n", i+1, j+1, marker, lecture.Title))
		}
		if i < len(cur.Sections)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// RenderMarkdown produces a Markdown outline suitable for export: section
// headings with lecture bullet lists, video links included when present.
func RenderMarkdown(cur models.Curriculum) string {
	var b strings.Builder

	if cur.Title != "" {
		b.WriteString("# " + cur.Title + "\n\n")
	}

	for i, section := range cur.Sections {
		b.WriteString("## " + section.Title + "\n\n")
		for _, lecture := range section.Lectures {
			if lecture.VideoURL != "" {
				b.WriteString(fmt.Sprintf("- [%s](%s)\n", lecture.Title, lecture.VideoURL))
			} else {
				b.WriteString("- " + lecture.Title + "\n")
			}
		}
		if len(section.Lectures) > 0 && i < len(cur.Sections)-1 {
			b.WriteString("\n")
		} else if len(section.Lectures) == 0 {
			b.WriteString("_No lectures yet._\n")
			if i < len(cur.Sections)-1 {
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}
