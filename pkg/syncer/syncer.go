package syncer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/syllab/syllab-cli/pkg/models"
	"github.com/syllab/syllab-cli/pkg/store"
)

// Gateway is the remote curriculum API surface the coordinator talks to.
type Gateway interface {
	FetchCurriculum(ctx context.Context, courseKey string) (models.Curriculum, error)
	CreateSection(ctx context.Context, section models.Section, courseKey string) (models.Section, error)
	DeleteSection(ctx context.Context, sectionID, courseKey string) error
	UpdateSection(ctx context.Context, section models.Section, courseKey string) error
	CreateLecture(ctx context.Context, lecture models.Lecture, sectionID, courseKey string) (models.Lecture, error)
	DeleteLecture(ctx context.Context, lectureID, sectionID, courseKey string) error
	RenameLecture(ctx context.Context, lecture models.Lecture, sectionID, courseKey string) error
	UpdateLectureBody(ctx context.Context, lecture models.Lecture, sectionID, courseKey string) error
	SaveSectionOrder(ctx context.Context, sections []models.Section, courseKey string) error
	SaveLectureOrder(ctx context.Context, sections []models.Section, courseKey string) error
}

// Options tune the coordinator's reconciliation behavior.
type Options struct {
	// RequestTimeout bounds every gateway call.
	RequestTimeout time.Duration
	// DeleteDelay is the pacing delay between a confirmed delete and the
	// entity leaving the list. UX pacing, not a correctness requirement.
	DeleteDelay time.Duration
	Logger      *zap.Logger
}

// Coordinator performs every user-visible mutation: apply the optimistic
// local change to the store, issue the gateway request, reconcile on the
// response.
//
// Policy, applied consistently:
//   - creations roll back fully on failure;
//   - renames and body edits apply only after confirmation;
//   - deletions clear their pending marker on failure, leaving the entity
//     in place;
//   - reorders never roll back — the full-list save is idempotent and
//     repeating the move corrects any drift.
type Coordinator struct {
	gw        Gateway
	store     *store.Store
	courseKey string

	timeout     time.Duration
	deleteDelay time.Duration
	logger      *zap.Logger

	mu             sync.Mutex
	cancelSections context.CancelFunc
	cancelLectures context.CancelFunc
}

// New creates a coordinator bound to one course's curriculum.
func New(gw Gateway, st *store.Store, courseKey string, opts Options) *Coordinator {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 10 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Coordinator{
		gw:          gw,
		store:       st,
		courseKey:   courseKey,
		timeout:     opts.RequestTimeout,
		deleteDelay: opts.DeleteDelay,
		logger:      opts.Logger,
	}
}

// Load fetches the curriculum wholesale and replaces the in-memory tree. On
// failure the store falls back to an empty section list so the UI can render
// without destructive surprises.
func (c *Coordinator) Load(ctx context.Context) error {
	ctx, cancel := c.bound(ctx)
	defer cancel()

	cur, err := c.gw.FetchCurriculum(ctx, c.courseKey)
	if err != nil {
		c.logger.Warn("curriculum load failed", zap.String("course", c.courseKey), zap.Error(err))
		c.store.Reset("", nil)
		return fmt.Errorf("load curriculum: %w", err)
	}

	c.store.Reset(cur.Title, cur.Sections)
	return nil
}

// AddSection appends a new section optimistically and reconciles it with the
// server-confirmed entity. On failure the temporary entry is removed,
// restoring the exact pre-mutation state.
func (c *Coordinator) AddSection(ctx context.Context, title string) (models.Section, error) {
	temp := models.Section{ID: models.NewTempID(), Title: title, Lectures: []models.Lecture{}}
	if err := temp.Validate(); err != nil {
		return models.Section{}, err
	}

	c.store.AppendSection(temp)

	ctx, cancel := c.bound(ctx)
	defer cancel()

	confirmed, err := c.gw.CreateSection(ctx, temp, c.courseKey)
	if err != nil {
		c.store.RemoveSection(temp.ID)
		c.logger.Warn("add section rolled back", zap.Error(err))
		return models.Section{}, err
	}

	c.store.ReplaceSection(temp.ID, confirmed)
	return confirmed, nil
}

// DeleteSection marks the section pending, requests deletion, and removes it
// from the list after the pacing delay once confirmed. On failure the marker
// is cleared and the section stays put.
func (c *Coordinator) DeleteSection(ctx context.Context, id models.EntityID) error {
	key := id.Key()
	c.store.MarkPendingDelete(key)

	reqCtx, cancel := c.bound(ctx)
	defer cancel()

	if err := c.gw.DeleteSection(reqCtx, key, c.courseKey); err != nil {
		c.store.ClearPendingDelete(key)
		c.logger.Warn("delete section failed", zap.String("section", key), zap.Error(err))
		return err
	}

	c.pause(ctx)
	c.store.RemoveSection(id)
	c.store.ClearPendingDelete(key)
	return nil
}

// RenameSection saves a section title and applies it locally only after the
// server confirms. A failed rename leaves the old title visible.
func (c *Coordinator) RenameSection(ctx context.Context, secIdx int, title string) error {
	section, ok := c.store.Section(secIdx)
	if !ok {
		return fmt.Errorf("rename section: no section at index %d", secIdx)
	}
	section.Title = title
	if err := section.Validate(); err != nil {
		return err
	}

	ctx, cancel := c.bound(ctx)
	defer cancel()

	if err := c.gw.UpdateSection(ctx, section, c.courseKey); err != nil {
		c.logger.Warn("rename section failed", zap.String("section", section.ID.Key()), zap.Error(err))
		return err
	}

	c.store.SetSectionTitle(secIdx, title)
	return nil
}

// AddLecture appends a new lecture to the target section optimistically and
// reconciles it with the server-confirmed entity.
func (c *Coordinator) AddLecture(ctx context.Context, secIdx int, title string) (models.Lecture, error) {
	section, ok := c.store.Section(secIdx)
	if !ok {
		return models.Lecture{}, fmt.Errorf("add lecture: no section at index %d", secIdx)
	}

	temp := models.Lecture{ID: models.NewTempID(), Title: title}
	if err := temp.Validate(); err != nil {
		return models.Lecture{}, err
	}

	c.store.AppendLecture(secIdx, temp)

	ctx, cancel := c.bound(ctx)
	defer cancel()

	confirmed, err := c.gw.CreateLecture(ctx, temp, section.ID.Key(), c.courseKey)
	if err != nil {
		c.store.RemoveLecture(secIdx, temp.ID)
		c.logger.Warn("add lecture rolled back", zap.Error(err))
		return models.Lecture{}, err
	}

	c.store.ReplaceLecture(secIdx, temp.ID, confirmed)
	return confirmed, nil
}

// DeleteLecture mirrors DeleteSection for a lecture within a section.
func (c *Coordinator) DeleteLecture(ctx context.Context, secIdx int, id models.EntityID) error {
	section, ok := c.store.Section(secIdx)
	if !ok {
		return fmt.Errorf("delete lecture: no section at index %d", secIdx)
	}

	key := id.Key()
	c.store.MarkPendingDelete(key)

	reqCtx, cancel := c.bound(ctx)
	defer cancel()

	if err := c.gw.DeleteLecture(reqCtx, key, section.ID.Key(), c.courseKey); err != nil {
		c.store.ClearPendingDelete(key)
		c.logger.Warn("delete lecture failed", zap.String("lecture", key), zap.Error(err))
		return err
	}

	c.pause(ctx)
	c.store.RemoveLecture(secIdx, id)
	c.store.ClearPendingDelete(key)
	return nil
}

// RenameLecture saves a lecture title, applying it locally only after the
// server confirms.
func (c *Coordinator) RenameLecture(ctx context.Context, secIdx, lecIdx int, title string) error {
	section, ok := c.store.Section(secIdx)
	if !ok {
		return fmt.Errorf("rename lecture: no section at index %d", secIdx)
	}
	lecture, ok := c.store.Lecture(secIdx, lecIdx)
	if !ok {
		return fmt.Errorf("rename lecture: no lecture at index %d", lecIdx)
	}
	lecture.Title = title
	if err := lecture.Validate(); err != nil {
		return err
	}

	ctx, cancel := c.bound(ctx)
	defer cancel()

	if err := c.gw.RenameLecture(ctx, lecture, section.ID.Key(), c.courseKey); err != nil {
		c.logger.Warn("rename lecture failed", zap.String("lecture", lecture.ID.Key()), zap.Error(err))
		return err
	}

	c.store.SetLectureTitle(secIdx, lecIdx, title)
	return nil
}

// UpdateLectureBody saves a lecture's full body (content and video URL) and
// applies the edit to the matching lecture in place once confirmed.
func (c *Coordinator) UpdateLectureBody(ctx context.Context, secIdx int, lecture models.Lecture) error {
	section, ok := c.store.Section(secIdx)
	if !ok {
		return fmt.Errorf("update lecture: no section at index %d", secIdx)
	}
	if err := lecture.Validate(); err != nil {
		return err
	}

	ctx, cancel := c.bound(ctx)
	defer cancel()

	if err := c.gw.UpdateLectureBody(ctx, lecture, section.ID.Key(), c.courseKey); err != nil {
		c.logger.Warn("update lecture body failed", zap.String("lecture", lecture.ID.Key()), zap.Error(err))
		return err
	}

	c.store.ApplyLectureBody(secIdx, lecture)
	return nil
}

// MoveSection applies the reorder to the store immediately, then persists
// the entire section list. Persistence failure is reported but never rolls
// back the local order; a newer move supersedes any in-flight save for the
// same list.
func (c *Coordinator) MoveSection(ctx context.Context, from, to int) error {
	if !c.store.MoveSection(from, to) {
		return nil
	}
	return c.persistOrder(ctx, c.gw.SaveSectionOrder, &c.cancelSections, "section order")
}

// MoveLecture applies the (possibly cross-section) lecture move to the store
// immediately, then persists the entire section list. Same no-rollback
// policy as MoveSection.
func (c *Coordinator) MoveLecture(ctx context.Context, fromSec, fromLec, toSec, toLec int) error {
	if !c.store.MoveLecture(fromSec, fromLec, toSec, toLec) {
		return nil
	}
	return c.persistOrder(ctx, c.gw.SaveLectureOrder, &c.cancelLectures, "lecture order")
}

type saveOrderFunc func(ctx context.Context, sections []models.Section, courseKey string) error

func (c *Coordinator) persistOrder(ctx context.Context, save saveOrderFunc, prev *context.CancelFunc, what string) error {
	snapshot := c.store.Sections()

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	c.mu.Lock()
	if *prev != nil {
		(*prev)() // supersede the in-flight save; the newer snapshot wins
	}
	*prev = cancel
	c.mu.Unlock()

	if err := save(reqCtx, snapshot, c.courseKey); err != nil {
		if reqCtx.Err() == context.Canceled {
			// a newer reorder superseded this one; nothing to report
			return nil
		}
		c.logger.Warn("persist failed, local order kept", zap.String("what", what), zap.Error(err))
		return err
	}
	return nil
}

func (c *Coordinator) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.timeout)
}

// pause sleeps for the delete pacing delay, bailing early if the caller's
// context ends.
func (c *Coordinator) pause(ctx context.Context) {
	if c.deleteDelay <= 0 {
		return
	}
	select {
	case <-time.After(c.deleteDelay):
	case <-ctx.Done():
	}
}
