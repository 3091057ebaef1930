package store

import (
	"reflect"
	"testing"

	"github.com/syllab/syllab-cli/pkg/models"
)

func newLoadedStore() *Store {
	s := New()
	s.Reset("Go Basics", makeSections())
	return s
}

func TestStore_Reset(t *testing.T) {
	s := newLoadedStore()

	if s.Title() != "Go Basics" {
		t.Errorf("Title() = %q", s.Title())
	}
	if s.SectionCount() != 2 {
		t.Errorf("SectionCount() = %d, want 2", s.SectionCount())
	}

	s.MarkPendingDelete("S1")
	s.Reset("Other", nil)
	if s.SectionCount() != 0 {
		t.Error("Reset should replace the whole tree")
	}
	if s.IsPendingDelete("S1") {
		t.Error("Reset should clear pending markers")
	}
}

func TestStore_SectionsReturnsSnapshot(t *testing.T) {
	s := newLoadedStore()

	snap := s.Sections()
	snap[0].Title = "mutated"
	snap[0].Lectures[0].Title = "mutated"

	fresh := s.Sections()
	if fresh[0].Title != "A" || fresh[0].Lectures[0].Title != "a1" {
		t.Error("snapshot mutation must not leak into the store")
	}
}

func TestStore_AppendAndReplaceSection(t *testing.T) {
	s := newLoadedStore()

	temp := models.Section{ID: models.NewTempID(), Title: "New Section"}
	s.AppendSection(temp)

	if s.SectionCount() != 3 {
		t.Fatalf("SectionCount() = %d, want 3", s.SectionCount())
	}

	confirmed := models.Section{ID: temp.ID.Persist("S9"), Title: "New Section"}
	if !s.ReplaceSection(temp.ID, confirmed) {
		t.Fatal("ReplaceSection should find the optimistic entry")
	}

	// Exactly one entity with the durable id, zero with only the temp id.
	sections := s.Sections()
	if sections[2].ID.Key() != "S9" {
		t.Errorf("replaced section key = %q, want S9", sections[2].ID.Key())
	}
	if sections[2].ID.Pending() {
		t.Error("replaced section should not be pending")
	}
	count := 0
	for _, sec := range sections {
		if sec.ID.Key() == "S9" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("durable id appears %d times, want 1", count)
	}
}

func TestStore_RemoveSection(t *testing.T) {
	s := newLoadedStore()

	if !s.RemoveSection(models.PersistedID("S1")) {
		t.Fatal("RemoveSection should succeed")
	}
	if s.SectionCount() != 1 {
		t.Errorf("SectionCount() = %d, want 1", s.SectionCount())
	}
	if s.RemoveSection(models.PersistedID("S1")) {
		t.Error("second remove should report not found")
	}
}

func TestStore_LectureOperations(t *testing.T) {
	s := newLoadedStore()

	temp := models.Lecture{ID: models.NewTempID(), Title: "New Lecture"}
	if !s.AppendLecture(1, temp) {
		t.Fatal("AppendLecture should succeed")
	}

	confirmed := models.Lecture{ID: temp.ID.Persist("L9"), Title: "New Lecture"}
	if !s.ReplaceLecture(1, temp.ID, confirmed) {
		t.Fatal("ReplaceLecture should find the optimistic entry")
	}

	sec, _ := s.Section(1)
	if got := lectureKeys(sec); !reflect.DeepEqual(got, []string{"L4", "L9"}) {
		t.Errorf("lecture order = %v, want [L4 L9]", got)
	}

	if !s.RemoveLecture(1, models.PersistedID("L9")) {
		t.Fatal("RemoveLecture should succeed")
	}
	sec, _ = s.Section(1)
	if len(sec.Lectures) != 1 {
		t.Errorf("len(Lectures) = %d, want 1", len(sec.Lectures))
	}
}

func TestStore_Titles(t *testing.T) {
	s := newLoadedStore()

	if !s.SetSectionTitle(0, "Intro") {
		t.Fatal("SetSectionTitle should succeed")
	}
	if !s.SetLectureTitle(0, 1, "Hello") {
		t.Fatal("SetLectureTitle should succeed")
	}

	sec, _ := s.Section(0)
	if sec.Title != "Intro" {
		t.Errorf("section title = %q", sec.Title)
	}
	if sec.Lectures[1].Title != "Hello" {
		t.Errorf("lecture title = %q", sec.Lectures[1].Title)
	}

	if s.SetSectionTitle(9, "x") {
		t.Error("out-of-range section index should fail")
	}
	if s.SetLectureTitle(0, 9, "x") {
		t.Error("out-of-range lecture index should fail")
	}
}

func TestStore_ApplyLectureBody(t *testing.T) {
	s := newLoadedStore()

	updated := models.Lecture{
		ID:       models.PersistedID("L2"),
		Title:    "a2",
		Content:  "# body",
		VideoURL: "https://vid.example/2",
	}
	if !s.ApplyLectureBody(0, updated) {
		t.Fatal("ApplyLectureBody should find the lecture")
	}

	lec, _ := s.Lecture(0, 1)
	if lec.Content != "# body" {
		t.Errorf("Content = %q", lec.Content)
	}
	if lec.VideoURL != "https://vid.example/2" {
		t.Errorf("VideoURL = %q", lec.VideoURL)
	}

	if s.ApplyLectureBody(1, updated) {
		t.Error("lecture should not be found in the wrong section")
	}
}

func TestStore_MoveSection(t *testing.T) {
	s := New()
	s.Reset("t", []models.Section{
		{ID: models.PersistedID("S1"), Title: "A"},
		{ID: models.PersistedID("S2"), Title: "B"},
		{ID: models.PersistedID("S3"), Title: "C"},
	})

	if !s.MoveSection(0, 2) {
		t.Fatal("MoveSection should succeed")
	}

	var keys []string
	for _, sec := range s.Sections() {
		keys = append(keys, sec.ID.Key())
	}
	if !reflect.DeepEqual(keys, []string{"S2", "S3", "S1"}) {
		t.Errorf("order = %v, want [S2 S3 S1]", keys)
	}

	if s.MoveSection(1, 1) {
		t.Error("same-position move should be a no-op")
	}
}

func TestStore_MoveLecture_CrossSection(t *testing.T) {
	s := newLoadedStore()

	if !s.MoveLecture(0, 2, 1, 0) {
		t.Fatal("MoveLecture should succeed")
	}

	a, _ := s.Section(0)
	b, _ := s.Section(1)
	if len(a.Lectures) != 2 {
		t.Errorf("source length = %d, want 2", len(a.Lectures))
	}
	if got := lectureKeys(b); !reflect.DeepEqual(got, []string{"L3", "L4"}) {
		t.Errorf("destination order = %v, want [L3 L4]", got)
	}
}

func TestStore_PendingDelete(t *testing.T) {
	s := newLoadedStore()

	s.MarkPendingDelete("S1")
	if !s.IsPendingDelete("S1") {
		t.Error("marker should be set")
	}

	s.ClearPendingDelete("S1")
	if s.IsPendingDelete("S1") {
		t.Error("marker should be cleared")
	}
}

func TestStore_FindSection(t *testing.T) {
	s := newLoadedStore()

	idx, ok := s.FindSection(models.PersistedID("S2"))
	if !ok || idx != 1 {
		t.Errorf("FindSection = (%d, %v), want (1, true)", idx, ok)
	}

	if _, ok := s.FindSection(models.PersistedID("S9")); ok {
		t.Error("unknown id should not be found")
	}
}
