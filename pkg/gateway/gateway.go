package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/syllab/syllab-cli/pkg/models"
)

// Client talks to the CMS curriculum API. Every mutation carries the course
// key (wire field "search") so the backend can scope the change to the right
// curriculum.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// New creates a gateway client for the given API base URL. The timeout is a
// transport-level ceiling; callers additionally bound individual requests
// with their context.
func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// StatusError reports a non-2xx response from the API.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api responded %d: %s", e.Code, e.Body)
}

type createSectionRequest struct {
	NewSection models.Section `json:"newSection"`
	Search     string         `json:"search"`
}

type createSectionResponse struct {
	NewlyAddedSection *models.Section `json:"newlyAddedSection"`
}

type updateSectionRequest struct {
	UpdatedSection models.Section `json:"updatedSection"`
	Search         string         `json:"search"`
}

type deleteSectionRequest struct {
	Search string `json:"search"`
}

type createLectureRequest struct {
	NewLecture models.Lecture `json:"newLecture"`
	Search     string         `json:"search"`
	SectionID  string         `json:"sectionId"`
}

type deleteLectureRequest struct {
	SectionID string `json:"sectionId"`
	Search    string `json:"search"`
}

// The rename contract reuses the "updatedSection" field name for the lecture
// payload.
type renameLectureRequest struct {
	UpdatedSection models.Lecture `json:"updatedSection"`
	SectionID      string         `json:"sectionId"`
	Search         string         `json:"search"`
}

type lectureBodyRequest struct {
	LectureBody models.Lecture `json:"lecturebody"`
	SectionID   string         `json:"sectionId"`
	Search      string         `json:"search"`
}

type reorderRequest struct {
	Sections []models.Section `json:"sections"`
	Search   string           `json:"search"`
}

// FetchCurriculum loads the whole curriculum for a course key.
func (c *Client) FetchCurriculum(ctx context.Context, courseKey string) (models.Curriculum, error) {
	var resp struct {
		Title    string           `json:"title"`
		Sections []models.Section `json:"sections"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/curriculum/"+courseKey, nil, &resp); err != nil {
		return models.Curriculum{}, fmt.Errorf("fetch curriculum: %w", err)
	}
	return models.Curriculum{Title: resp.Title, Sections: resp.Sections}, nil
}

// CreateSection persists a new section and returns the server-confirmed
// section bearing its durable id.
func (c *Client) CreateSection(ctx context.Context, section models.Section, courseKey string) (models.Section, error) {
	var resp createSectionResponse
	req := createSectionRequest{NewSection: section, Search: courseKey}
	if err := c.do(ctx, http.MethodPost, "/api/sections", req, &resp); err != nil {
		return models.Section{}, fmt.Errorf("create section: %w", err)
	}
	if resp.NewlyAddedSection == nil || resp.NewlyAddedSection.ID.DurableID() == "" {
		return models.Section{}, fmt.Errorf("create section: response missing newlyAddedSection id")
	}
	return *resp.NewlyAddedSection, nil
}

// DeleteSection removes a section by durable id.
func (c *Client) DeleteSection(ctx context.Context, sectionID, courseKey string) error {
	req := deleteSectionRequest{Search: courseKey}
	if err := c.do(ctx, http.MethodDelete, "/api/sections/"+sectionID, req, nil); err != nil {
		return fmt.Errorf("delete section: %w", err)
	}
	return nil
}

// UpdateSection saves a section's title.
func (c *Client) UpdateSection(ctx context.Context, section models.Section, courseKey string) error {
	req := updateSectionRequest{UpdatedSection: section, Search: courseKey}
	if err := c.do(ctx, http.MethodPut, "/api/sections/"+section.ID.Key(), req, nil); err != nil {
		return fmt.Errorf("update section: %w", err)
	}
	return nil
}

// CreateLecture persists a new lecture under the given section and returns
// the server-confirmed lecture.
func (c *Client) CreateLecture(ctx context.Context, lecture models.Lecture, sectionID, courseKey string) (models.Lecture, error) {
	var created models.Lecture
	req := createLectureRequest{NewLecture: lecture, Search: courseKey, SectionID: sectionID}
	if err := c.do(ctx, http.MethodPost, "/api/lectures", req, &created); err != nil {
		return models.Lecture{}, fmt.Errorf("create lecture: %w", err)
	}
	if created.ID.DurableID() == "" {
		return models.Lecture{}, fmt.Errorf("create lecture: response missing lecture id")
	}
	return created, nil
}

// DeleteLecture removes a lecture by durable id.
func (c *Client) DeleteLecture(ctx context.Context, lectureID, sectionID, courseKey string) error {
	req := deleteLectureRequest{SectionID: sectionID, Search: courseKey}
	if err := c.do(ctx, http.MethodDelete, "/api/lectures/"+lectureID, req, nil); err != nil {
		return fmt.Errorf("delete lecture: %w", err)
	}
	return nil
}

// RenameLecture saves a lecture's title.
func (c *Client) RenameLecture(ctx context.Context, lecture models.Lecture, sectionID, courseKey string) error {
	req := renameLectureRequest{UpdatedSection: lecture, SectionID: sectionID, Search: courseKey}
	if err := c.do(ctx, http.MethodPut, "/api/lectures/"+lecture.ID.Key(), req, nil); err != nil {
		return fmt.Errorf("rename lecture: %w", err)
	}
	return nil
}

// UpdateLectureBody saves a lecture's full body (content and video URL).
func (c *Client) UpdateLectureBody(ctx context.Context, lecture models.Lecture, sectionID, courseKey string) error {
	req := lectureBodyRequest{LectureBody: lecture, SectionID: sectionID, Search: courseKey}
	if err := c.do(ctx, http.MethodPut, "/api/lectures/"+lecture.ID.Key()+"/body", req, nil); err != nil {
		return fmt.Errorf("update lecture body: %w", err)
	}
	return nil
}

// SaveSectionOrder persists the full section list after a section reorder.
// The whole list order is the unit of synchronization; there is no per-item
// diffing.
func (c *Client) SaveSectionOrder(ctx context.Context, sections []models.Section, courseKey string) error {
	req := reorderRequest{Sections: sections, Search: courseKey}
	if err := c.do(ctx, http.MethodPost, "/api/sections/reorder", req, nil); err != nil {
		return fmt.Errorf("save section order: %w", err)
	}
	return nil
}

// SaveLectureOrder persists the full section list after a lecture reorder.
func (c *Client) SaveLectureOrder(ctx context.Context, sections []models.Section, courseKey string) error {
	req := reorderRequest{Sections: sections, Search: courseKey}
	if err := c.do(ctx, http.MethodPost, "/api/lectures/reorder", req, nil); err != nil {
		return fmt.Errorf("save lecture order: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	c.logger.Debug("request completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var buf bytes.Buffer
		buf.ReadFrom(resp.Body)
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(buf.String())}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
