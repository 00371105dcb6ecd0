package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"devlogapi/internal/model"
	"devlogapi/internal/repository"
)

var (
	ErrIDRequired   = errors.New("id is required")
	ErrNotFound     = errors.New("not found")
	ErrNameRequired = errors.New("name is required")
	ErrReaderNil    = errors.New("reader is nil")
)

// VersionCards pairs a version with the change-card elements found in its
// stored document. This is the lookup table the comparison/card-reference
// property editors page through; the core never mutates it.
type VersionCards struct {
	Version model.Version   `json:"version"`
	Cards   []model.Element `json:"cards"`
}

// ContentService is the persistence gateway for version page content plus the
// read-only version-cards lookup. It satisfies session.Gateway so editing
// sessions can save through it directly.
type ContentService interface {
	// Load returns the stored document for a (project, version) pair, or nil
	// when nothing is stored yet. A malformed stored payload is treated as
	// absent so the editor falls back to an empty document.
	Load(ctx context.Context, projectID, versionID string) (*model.Document, error)

	// Save persists the document as-is, last write wins. The content store is
	// an opaque passthrough; any save-time transforms belong to the caller.
	Save(ctx context.Context, projectID, versionID string, doc model.Document) error

	// VersionCards returns every version of a project with the change-cards
	// present in its stored content.
	VersionCards(ctx context.Context, projectID string) ([]VersionCards, error)
}

type contentService struct {
	contents repository.ContentRepository
	versions repository.VersionRepository
}

// NewContentService constructs a new ContentService.
func NewContentService(contents repository.ContentRepository, versions repository.VersionRepository) ContentService {
	return &contentService{contents: contents, versions: versions}
}

func (s *contentService) Load(ctx context.Context, projectID, versionID string) (*model.Document, error) {
	if projectID == "" || versionID == "" {
		return nil, ErrIDRequired
	}
	raw, err := s.contents.Get(ctx, projectID, versionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load content: %w", err)
	}
	var doc model.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		// Malformed payloads behave like absent content.
		return nil, nil
	}
	if doc.Rows == nil {
		doc.Rows = []model.Row{}
	}
	return &doc, nil
}

func (s *contentService) Save(ctx context.Context, projectID, versionID string, doc model.Document) error {
	if projectID == "" || versionID == "" {
		return ErrIDRequired
	}
	if doc.Rows == nil {
		doc.Rows = []model.Row{}
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode content: %w", err)
	}
	if err := s.contents.Put(ctx, projectID, versionID, raw); err != nil {
		return fmt.Errorf("save content: %w", err)
	}
	return nil
}

func (s *contentService) VersionCards(ctx context.Context, projectID string) ([]VersionCards, error) {
	if projectID == "" {
		return nil, ErrIDRequired
	}
	versions, err := s.versions.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	contents, err := s.contents.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list contents: %w", err)
	}

	out := make([]VersionCards, 0, len(versions))
	for _, v := range versions {
		vc := VersionCards{Version: v, Cards: []model.Element{}}
		if raw, ok := contents[v.ID]; ok {
			var doc model.Document
			if err := json.Unmarshal(raw, &doc); err == nil {
				if cards := doc.ChangeCards(); cards != nil {
					vc.Cards = cards
				}
			}
		}
		out = append(out, vc)
	}
	return out, nil
}
