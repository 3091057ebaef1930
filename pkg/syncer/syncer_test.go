package syncer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syllab/syllab-cli/pkg/models"
	"github.com/syllab/syllab-cli/pkg/store"
)

// fakeGateway lets each test script the remote side per call.
type fakeGateway struct {
	fetchCurriculum   func(courseKey string) (models.Curriculum, error)
	createSection     func(section models.Section, courseKey string) (models.Section, error)
	deleteSection     func(sectionID, courseKey string) error
	updateSection     func(section models.Section, courseKey string) error
	createLecture     func(lecture models.Lecture, sectionID, courseKey string) (models.Lecture, error)
	deleteLecture     func(lectureID, sectionID, courseKey string) error
	renameLecture     func(lecture models.Lecture, sectionID, courseKey string) error
	updateLectureBody func(lecture models.Lecture, sectionID, courseKey string) error
	saveSectionOrder  func(sections []models.Section, courseKey string) error
	saveLectureOrder  func(sections []models.Section, courseKey string) error
}

var errRemote = errors.New("remote unavailable")

func (f *fakeGateway) FetchCurriculum(_ context.Context, key string) (models.Curriculum, error) {
	if f.fetchCurriculum == nil {
		return models.Curriculum{}, errRemote
	}
	return f.fetchCurriculum(key)
}

func (f *fakeGateway) CreateSection(_ context.Context, s models.Section, key string) (models.Section, error) {
	if f.createSection == nil {
		return models.Section{}, errRemote
	}
	return f.createSection(s, key)
}

func (f *fakeGateway) DeleteSection(_ context.Context, id, key string) error {
	if f.deleteSection == nil {
		return errRemote
	}
	return f.deleteSection(id, key)
}

func (f *fakeGateway) UpdateSection(_ context.Context, s models.Section, key string) error {
	if f.updateSection == nil {
		return errRemote
	}
	return f.updateSection(s, key)
}

func (f *fakeGateway) CreateLecture(_ context.Context, l models.Lecture, sectionID, key string) (models.Lecture, error) {
	if f.createLecture == nil {
		return models.Lecture{}, errRemote
	}
	return f.createLecture(l, sectionID, key)
}

func (f *fakeGateway) DeleteLecture(_ context.Context, id, sectionID, key string) error {
	if f.deleteLecture == nil {
		return errRemote
	}
	return f.deleteLecture(id, sectionID, key)
}

func (f *fakeGateway) RenameLecture(_ context.Context, l models.Lecture, sectionID, key string) error {
	if f.renameLecture == nil {
		return errRemote
	}
	return f.renameLecture(l, sectionID, key)
}

func (f *fakeGateway) UpdateLectureBody(_ context.Context, l models.Lecture, sectionID, key string) error {
	if f.updateLectureBody == nil {
		return errRemote
	}
	return f.updateLectureBody(l, sectionID, key)
}

func (f *fakeGateway) SaveSectionOrder(_ context.Context, s []models.Section, key string) error {
	if f.saveSectionOrder == nil {
		return errRemote
	}
	return f.saveSectionOrder(s, key)
}

func (f *fakeGateway) SaveLectureOrder(_ context.Context, s []models.Section, key string) error {
	if f.saveLectureOrder == nil {
		return errRemote
	}
	return f.saveLectureOrder(s, key)
}

func newTestCoordinator(gw *fakeGateway, sections []models.Section) (*Coordinator, *store.Store) {
	st := store.New()
	st.Reset("Go Basics", sections)
	return New(gw, st, "course-1", Options{}), st
}

func seedSections() []models.Section {
	return []models.Section{
		{ID: models.PersistedID("S1"), Title: "A", Lectures: []models.Lecture{
			{ID: models.PersistedID("L1"), Title: "a1"},
			{ID: models.PersistedID("L2"), Title: "a2"},
		}},
		{ID: models.PersistedID("S2"), Title: "B", Lectures: []models.Lecture{
			{ID: models.PersistedID("L3"), Title: "b1"},
		}},
	}
}

func sectionKeys(st *store.Store) []string {
	var keys []string
	for _, s := range st.Sections() {
		keys = append(keys, s.ID.Key())
	}
	return keys
}

func TestLoad(t *testing.T) {
	t.Run("replaces the whole tree", func(t *testing.T) {
		gw := &fakeGateway{fetchCurriculum: func(key string) (models.Curriculum, error) {
			assert.Equal(t, "course-1", key)
			return models.Curriculum{Title: "Go Basics", Sections: seedSections()}, nil
		}}
		c, st := newTestCoordinator(gw, nil)

		require.NoError(t, c.Load(context.Background()))
		assert.Equal(t, "Go Basics", st.Title())
		assert.Equal(t, 2, st.SectionCount())
	})

	t.Run("falls back to an empty list on failure", func(t *testing.T) {
		c, st := newTestCoordinator(&fakeGateway{}, seedSections())

		assert.Error(t, c.Load(context.Background()))
		assert.Equal(t, 0, st.SectionCount())
		assert.Equal(t, "", st.Title())
	})
}

func TestAddSection(t *testing.T) {
	t.Run("reconciles the temporary id with the confirmed one", func(t *testing.T) {
		var sentTempID string
		gw := &fakeGateway{createSection: func(s models.Section, key string) (models.Section, error) {
			sentTempID = s.ID.TempID()
			return models.Section{ID: s.ID.Persist("S9"), Title: s.Title, Lectures: []models.Lecture{}}, nil
		}}
		c, st := newTestCoordinator(gw, seedSections())

		created, err := c.AddSection(context.Background(), "New Section")
		require.NoError(t, err)

		assert.Equal(t, "S9", created.ID.Key())
		require.Equal(t, 3, st.SectionCount())

		// Exactly one entity bears the durable id; none remain pending.
		sections := st.Sections()
		assert.Equal(t, "S9", sections[2].ID.Key())
		assert.False(t, sections[2].ID.Pending())
		assert.Equal(t, sentTempID, sections[2].ID.TempID())
		for _, s := range sections[:2] {
			assert.NotEqual(t, "S9", s.ID.Key())
		}
	})

	t.Run("rolls back on create failure", func(t *testing.T) {
		c, st := newTestCoordinator(&fakeGateway{}, seedSections())
		before := sectionKeys(st)

		_, err := c.AddSection(context.Background(), "New Section")
		require.Error(t, err)

		assert.Equal(t, before, sectionKeys(st), "tree must return to the exact pre-mutation state")
	})

	t.Run("rejects an empty title before any network call", func(t *testing.T) {
		called := false
		gw := &fakeGateway{createSection: func(s models.Section, key string) (models.Section, error) {
			called = true
			return s, nil
		}}
		c, st := newTestCoordinator(gw, seedSections())

		_, err := c.AddSection(context.Background(), "")
		assert.Error(t, err)
		assert.False(t, called)
		assert.Equal(t, 2, st.SectionCount())
	})
}

func TestDeleteSection(t *testing.T) {
	t.Run("removes after confirmation and clears the marker", func(t *testing.T) {
		gw := &fakeGateway{deleteSection: func(id, key string) error {
			assert.Equal(t, "S1", id)
			return nil
		}}
		c, st := newTestCoordinator(gw, seedSections())

		require.NoError(t, c.DeleteSection(context.Background(), models.PersistedID("S1")))
		assert.Equal(t, []string{"S2"}, sectionKeys(st))
		assert.False(t, st.IsPendingDelete("S1"))
	})

	t.Run("failure leaves the section and clears the marker", func(t *testing.T) {
		c, st := newTestCoordinator(&fakeGateway{}, seedSections())

		require.Error(t, c.DeleteSection(context.Background(), models.PersistedID("S1")))
		assert.Equal(t, []string{"S1", "S2"}, sectionKeys(st))
		assert.False(t, st.IsPendingDelete("S1"))
	})
}

func TestRenameSection(t *testing.T) {
	t.Run("applies only after confirmation", func(t *testing.T) {
		gw := &fakeGateway{updateSection: func(s models.Section, key string) error {
			assert.Equal(t, "Intro", s.Title)
			assert.Equal(t, "S1", s.ID.Key())
			return nil
		}}
		c, st := newTestCoordinator(gw, seedSections())

		require.NoError(t, c.RenameSection(context.Background(), 0, "Intro"))
		sec, _ := st.Section(0)
		assert.Equal(t, "Intro", sec.Title)
	})

	t.Run("failed rename leaves the old title", func(t *testing.T) {
		c, st := newTestCoordinator(&fakeGateway{}, seedSections())

		require.Error(t, c.RenameSection(context.Background(), 0, "Intro"))
		sec, _ := st.Section(0)
		assert.Equal(t, "A", sec.Title)
	})
}

func TestAddLecture(t *testing.T) {
	t.Run("reconciles with the confirmed lecture", func(t *testing.T) {
		gw := &fakeGateway{createLecture: func(l models.Lecture, sectionID, key string) (models.Lecture, error) {
			assert.Equal(t, "S2", sectionID)
			return models.Lecture{ID: l.ID.Persist("L9"), Title: l.Title}, nil
		}}
		c, st := newTestCoordinator(gw, seedSections())

		created, err := c.AddLecture(context.Background(), 1, "New Lecture")
		require.NoError(t, err)
		assert.Equal(t, "L9", created.ID.Key())

		sec, _ := st.Section(1)
		require.Len(t, sec.Lectures, 2)
		assert.Equal(t, "L9", sec.Lectures[1].ID.Key())
		assert.False(t, sec.Lectures[1].ID.Pending())
	})

	t.Run("rolls back on failure", func(t *testing.T) {
		c, st := newTestCoordinator(&fakeGateway{}, seedSections())

		_, err := c.AddLecture(context.Background(), 1, "New Lecture")
		require.Error(t, err)

		sec, _ := st.Section(1)
		assert.Len(t, sec.Lectures, 1)
	})
}

func TestDeleteLecture(t *testing.T) {
	gw := &fakeGateway{deleteLecture: func(id, sectionID, key string) error {
		assert.Equal(t, "L1", id)
		assert.Equal(t, "S1", sectionID)
		return nil
	}}
	c, st := newTestCoordinator(gw, seedSections())

	require.NoError(t, c.DeleteLecture(context.Background(), 0, models.PersistedID("L1")))

	sec, _ := st.Section(0)
	require.Len(t, sec.Lectures, 1)
	assert.Equal(t, "L2", sec.Lectures[0].ID.Key())
	assert.False(t, st.IsPendingDelete("L1"))
}

func TestRenameLecture_FailureRevertsVisually(t *testing.T) {
	c, st := newTestCoordinator(&fakeGateway{}, seedSections())

	require.Error(t, c.RenameLecture(context.Background(), 0, 0, "Hello"))
	lec, _ := st.Lecture(0, 0)
	assert.Equal(t, "a1", lec.Title)
}

func TestUpdateLectureBody(t *testing.T) {
	t.Run("applies the edited field in place after confirmation", func(t *testing.T) {
		gw := &fakeGateway{updateLectureBody: func(l models.Lecture, sectionID, key string) error {
			assert.Equal(t, "S1", sectionID)
			return nil
		}}
		c, st := newTestCoordinator(gw, seedSections())

		lec, _ := st.Lecture(0, 1)
		lec.Content = "# updated"
		require.NoError(t, c.UpdateLectureBody(context.Background(), 0, lec))

		got, _ := st.Lecture(0, 1)
		assert.Equal(t, "# updated", got.Content)
	})

	t.Run("failure leaves the stored body untouched", func(t *testing.T) {
		c, st := newTestCoordinator(&fakeGateway{}, seedSections())

		lec, _ := st.Lecture(0, 1)
		lec.Content = "# updated"
		require.Error(t, c.UpdateLectureBody(context.Background(), 0, lec))

		got, _ := st.Lecture(0, 1)
		assert.Equal(t, "", got.Content)
	})
}

func TestMoveSection(t *testing.T) {
	t.Run("persists the entire reordered list", func(t *testing.T) {
		var sent []string
		gw := &fakeGateway{saveSectionOrder: func(s []models.Section, key string) error {
			for _, sec := range s {
				sent = append(sent, sec.ID.Key())
			}
			return nil
		}}
		c, st := newTestCoordinator(gw, seedSections())

		require.NoError(t, c.MoveSection(context.Background(), 0, 1))
		assert.Equal(t, []string{"S2", "S1"}, sectionKeys(st))
		assert.Equal(t, []string{"S2", "S1"}, sent, "the whole list order is the unit of synchronization")
	})

	t.Run("failure is non-destructive", func(t *testing.T) {
		sections := []models.Section{
			{ID: models.PersistedID("SA"), Title: "A"},
			{ID: models.PersistedID("SB"), Title: "B"},
			{ID: models.PersistedID("SC"), Title: "C"},
		}
		c, st := newTestCoordinator(&fakeGateway{}, sections)

		err := c.MoveSection(context.Background(), 0, 2)
		require.Error(t, err)

		// No rollback: the local reorder stands, repeating the drag fixes drift.
		assert.Equal(t, []string{"SB", "SC", "SA"}, sectionKeys(st))
	})

	t.Run("same-position move is a no-op", func(t *testing.T) {
		called := false
		gw := &fakeGateway{saveSectionOrder: func(s []models.Section, key string) error {
			called = true
			return nil
		}}
		c, _ := newTestCoordinator(gw, seedSections())

		require.NoError(t, c.MoveSection(context.Background(), 1, 1))
		assert.False(t, called)
	})
}

func TestMoveLecture(t *testing.T) {
	t.Run("cross-section move persists the full list", func(t *testing.T) {
		var snapshot []models.Section
		gw := &fakeGateway{saveLectureOrder: func(s []models.Section, key string) error {
			snapshot = s
			return nil
		}}
		c, st := newTestCoordinator(gw, seedSections())

		require.NoError(t, c.MoveLecture(context.Background(), 0, 1, 1, 0))

		a, _ := st.Section(0)
		b, _ := st.Section(1)
		assert.Len(t, a.Lectures, 1)
		require.Len(t, b.Lectures, 2)
		assert.Equal(t, "L2", b.Lectures[0].ID.Key())

		require.Len(t, snapshot, 2)
		assert.Len(t, snapshot[1].Lectures, 2)
	})

	t.Run("failure keeps the local move", func(t *testing.T) {
		c, st := newTestCoordinator(&fakeGateway{}, seedSections())

		require.Error(t, c.MoveLecture(context.Background(), 0, 0, 1, 1))

		b, _ := st.Section(1)
		assert.Len(t, b.Lectures, 2)
	})
}

// Add a section, have the server confirm id S1, rename it, then delete it.
func TestScenario_AddRenameDelete(t *testing.T) {
	gw := &fakeGateway{
		createSection: func(s models.Section, key string) (models.Section, error) {
			return models.Section{ID: s.ID.Persist("S1"), Title: s.Title, Lectures: []models.Lecture{}}, nil
		},
		updateSection: func(s models.Section, key string) error { return nil },
		deleteSection: func(id, key string) error { return nil },
	}
	st := store.New()
	st.Reset("Course", nil)
	c := New(gw, st, "course-1", Options{})
	ctx := context.Background()

	created, err := c.AddSection(ctx, "New Section")
	require.NoError(t, err)
	assert.Equal(t, "S1", created.ID.Key())
	require.Equal(t, 1, st.SectionCount())

	require.NoError(t, c.RenameSection(ctx, 0, "Intro"))
	sec, _ := st.Section(0)
	assert.Equal(t, "Intro", sec.Title)
	assert.Equal(t, "S1", sec.ID.Key())

	require.NoError(t, c.DeleteSection(ctx, created.ID))
	assert.Equal(t, 0, st.SectionCount())
}
