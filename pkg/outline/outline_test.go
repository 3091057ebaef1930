package outline

import (
	"strings"
	"testing"

	"github.com/syllab/syllab-cli/pkg/models"
)

func sampleCurriculum() models.Curriculum {
	return models.Curriculum{
		Title: "Go Basics",
		Sections: []models.Section{
			{ID: models.PersistedID("S1"), Title: "Intro", Lectures: []models.Lecture{
				{ID: models.PersistedID("L1"), Title: "Welcome", VideoURL: "https://vid.example/1"},
				{ID: models.PersistedID("L2"), Title: "Setup"},
			}},
			{ID: models.PersistedID("S2"), Title: "Types"},
		},
	}
}

func TestRender(t *testing.T) {
	out := Render(sampleCurriculum())

	for _, want := range []string{"Go Basics", "1. Intro", "1.1", "Welcome", "1.2", "Setup", "2. Types"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// Numbering reflects list order, not ids.
	if strings.Index(out, "Welcome") > strings.Index(out, "Setup") {
		t.Error("lectures should render in list order")
	}
}

func TestRender_Empty(t *testing.T) {
	out := Render(models.Curriculum{})

	if !strings.Contains(out, "(untitled course)") {
		t.Errorf("missing placeholder title:\n%s", out)
	}
	if !strings.Contains(out, "No sections yet.") {
		t.Errorf("missing empty marker:\n%s", out)
	}
}

func TestRenderMarkdown(t *testing.T) {
	out := RenderMarkdown(sampleCurriculum())

	if !strings.Contains(out, "# Go Basics") {
		t.Errorf("missing course heading:\n%s", out)
	}
	if !strings.Contains(out, "## Intro") {
		t.Errorf("missing section heading:\n%s", out)
	}
	if !strings.Contains(out, "- [Welcome](https://vid.example/1)") {
		t.Errorf("video lectures should render as links:\n%s", out)
	}
	if !strings.Contains(out, "- Setup") {
		t.Errorf("plain lectures should render as bullets:\n%s", out)
	}
	if !strings.Contains(out, "_No lectures yet._") {
		t.Errorf("empty sections should be marked:\n%s", out)
	}
}
