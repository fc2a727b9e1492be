package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/aroma-cli/internal/core/domain"
	"github.com/custodia-labs/aroma-cli/internal/core/ports/driven"
	"github.com/custodia-labs/aroma-cli/internal/core/ports/driving"
	"github.com/custodia-labs/aroma-cli/internal/logger"
)

// Ensure ProfileService implements the interface.
var _ driving.ProfileService = (*ProfileService)(nil)

// ProfileService computes and manages community flavour profiles.
type ProfileService struct {
	parser      driven.PageParser
	fetcher     driven.PageFetcher
	store       driven.ProfileStore
	nameService driving.NameService
	metrics     driven.MetricsRecorder
	strict      bool
	now         func() time.Time
}

// NewProfileService creates a new profile service.
// fetcher, store and metrics may be nil.
func NewProfileService(
	parser driven.PageParser,
	fetcher driven.PageFetcher,
	store driven.ProfileStore,
	nameService driving.NameService,
	metrics driven.MetricsRecorder,
) *ProfileService {
	return &ProfileService{
		parser:      parser,
		fetcher:     fetcher,
		store:       store,
		nameService: nameService,
		metrics:     metrics,
		now:         time.Now,
	}
}

// SetStrict switches between lenient extraction (NaN values pass through)
// and strict extraction (malformed input is rejected).
func (s *ProfileService) SetStrict(strict bool) {
	s.strict = strict
}

// Strict reports whether strict extraction is enabled.
func (s *ProfileService) Strict() bool {
	return s.strict
}

// Compute turns an already-extracted element into a profile.
func (s *ProfileService) Compute(_ context.Context, element domain.SourceElement) (domain.FlavourProfile, error) {
	profile, err := s.compute(element, resolveNames(s.configuredNames(), domain.NameLists{}))
	s.record(err)
	return profile, err
}

// FromPage parses a product page, computes its profile and stores the record.
// A record already stored for uri keeps its ID and creation time.
func (s *ProfileService) FromPage(ctx context.Context, uri string, page []byte) (*domain.ProfileRecord, error) {
	rec, err := s.fromPage(ctx, uri, page)
	s.record(err)
	return rec, err
}

func (s *ProfileService) fromPage(ctx context.Context, uri string, page []byte) (*domain.ProfileRecord, error) {
	if s.parser == nil {
		return nil, domain.ErrNotImplemented
	}

	logger.Section("Extraction")
	logger.Debug("parsing page", "uri", uri, "bytes", len(page))

	parsed, err := s.parser.Parse(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", uri, err)
	}
	if parsed.Votes == 0 {
		return nil, fmt.Errorf("%s: no community votes: %w", uri, domain.ErrNotFound)
	}

	names := resolveNames(s.configuredNames(), parsed.Names)
	logger.Debug("element read",
		"flag", parsed.Element.Flag,
		"digits", parsed.Element.Digits,
		"votes", parsed.Votes,
		"names", len(names.Select(parsed.Element.Flag)))

	profile, err := s.compute(parsed.Element, names)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", uri, err)
	}

	now := s.now().UTC()
	rec := &domain.ProfileRecord{
		ID:        uuid.New().String(),
		URL:       uri,
		Title:     parsed.Title,
		Flag:      parsed.Element.Flag,
		Digits:    parsed.Element.Digits,
		Votes:     parsed.Votes,
		Profile:   profile,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if s.store == nil {
		return rec, nil
	}

	existing, err := s.store.GetByURL(ctx, uri)
	switch {
	case err == nil:
		rec.ID = existing.ID
		rec.CreatedAt = existing.CreatedAt
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("looking up %s: %w", uri, err)
	}

	if err := s.store.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("storing profile for %s: %w", uri, err)
	}
	logger.Info("profile stored", "id", rec.ID, "uri", uri)

	return rec, nil
}

// Fetch downloads url and behaves like FromPage.
func (s *ProfileService) Fetch(ctx context.Context, url string) (*domain.ProfileRecord, error) {
	if s.fetcher == nil {
		return nil, domain.ErrNotImplemented
	}

	page, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		s.record(err)
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	return s.FromPage(ctx, url, page)
}

// Get retrieves a stored record by ID.
func (s *ProfileService) Get(ctx context.Context, id string) (*domain.ProfileRecord, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.Get(ctx, id)
}

// List returns all stored records.
func (s *ProfileService) List(ctx context.Context) ([]domain.ProfileRecord, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.List(ctx)
}

// Delete removes a stored record.
func (s *ProfileService) Delete(ctx context.Context, id string) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	if _, err := s.store.Get(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

func (s *ProfileService) compute(element domain.SourceElement, names domain.NameLists) (domain.FlavourProfile, error) {
	if s.strict {
		profile, err := ExtractStrict(element, names)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
		}
		return profile, nil
	}

	profile := Extract(element, names)
	if !profile.Valid() {
		logger.Warn("profile contains NaN values", "digits", element.Digits)
	}
	return profile, nil
}

func (s *ProfileService) configuredNames() domain.NameLists {
	if s.nameService == nil {
		return domain.NameLists{}
	}
	return s.nameService.Get()
}

// record reports the outcome of one extraction to the metrics recorder.
func (s *ProfileService) record(err error) {
	if s.metrics == nil {
		return
	}
	switch {
	case err == nil:
		s.metrics.RecordExtraction(driven.OutcomeOK)
	case errors.Is(err, domain.ErrNotFound):
		s.metrics.RecordExtraction(driven.OutcomeNotFound)
	case errors.Is(err, domain.ErrInvalidInput):
		s.metrics.RecordExtraction(driven.OutcomeInvalid)
	default:
		s.metrics.RecordExtraction(driven.OutcomeError)
	}
}
