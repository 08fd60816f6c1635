package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/suppdraft/internal/core/domain"
	"github.com/custodia-labs/suppdraft/internal/core/ports/driven"
	"github.com/custodia-labs/suppdraft/internal/core/ports/driving"
	"github.com/custodia-labs/suppdraft/internal/logger"
)

// Ensure DraftService implements the interface.
var _ driving.DraftService = (*DraftService)(nil)

// DraftService owns one working drafting session over a loaded library.
// Front ends call it from several goroutines, so all state is guarded.
type DraftService struct {
	mu        sync.RWMutex
	library   *domain.Library
	assembler *Assembler
	values    *domain.ValueStore
	overrides *domain.OverrideStore
	sessions  driven.SessionStore
	session   domain.Session
	now       func() time.Time
}

// NewDraftService creates a draft session over library.
// sessions may be nil, in which case Save and Load are unavailable.
func NewDraftService(library *domain.Library, sessions driven.SessionStore) *DraftService {
	return &DraftService{
		library:   library,
		assembler: NewAssembler(NewResolver(library.Catalog)),
		values:    domain.NewValueStore(library.Catalog),
		overrides: domain.NewOverrideStore(),
		sessions:  sessions,
		now:       time.Now,
	}
}

// Catalog returns the variable catalog.
func (s *DraftService) Catalog() *domain.Catalog {
	return s.library.Catalog
}

// Template returns the draft template.
func (s *DraftService) Template() *domain.Template {
	return s.library.Draft
}

// Library returns the loaded library.
func (s *DraftService) Library() *domain.Library {
	return s.library
}

// ResolvedValue returns the current value of a variable.
func (s *DraftService) ResolvedValue(id string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values.ResolvedValue(id)
	if !ok {
		return "", fmt.Errorf("%s: %w", id, domain.ErrUnknownVariable)
	}
	return v, nil
}

// SetValue records a user value.
func (s *DraftService) SetValue(id, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.values.SetValue(id, text); err != nil {
		return err
	}
	logger.Debug("Set %s (changed=%t)", id, s.values.IsChanged(id))
	return nil
}

// ClearValue reverts a variable to its default.
func (s *DraftService) ClearValue(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.library.Catalog.Has(id) {
		return fmt.Errorf("%s: %w", id, domain.ErrUnknownVariable)
	}
	s.values.Clear(id)
	logger.Debug("Cleared %s", id)
	return nil
}

// Variable returns a variable's definition and current state.
func (s *DraftService) Variable(id string) (domain.VariableState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.values.State(id)
	if !ok {
		return domain.VariableState{}, fmt.Errorf("%s: %w", id, domain.ErrUnknownVariable)
	}
	return state, nil
}

// Variables returns every variable state in catalog order.
func (s *DraftService) Variables() []domain.VariableState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.states(s.library.Catalog.IDs())
}

// VariablesBySource groups variable states by source, each group in catalog order.
func (s *DraftService) VariablesBySource() map[domain.VariableSource][]domain.VariableState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	groups := make(map[domain.VariableSource][]domain.VariableState)
	for _, state := range s.states(s.library.Catalog.IDs()) {
		src := state.Definition.Source
		groups[src] = append(groups[src], state)
	}
	return groups
}

// SetOverride replaces a section's text. Empty text, or text identical
// to the section's prior rendering, clears the override instead.
func (s *DraftService) SetOverride(key, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sec, ok := s.library.Draft.Section(key)
	if !ok {
		return fmt.Errorf("%s: %w", key, domain.ErrSectionNotFound)
	}
	if text == "" || text == s.assembler.Resolver().RenderPrior(sec.Text) {
		s.overrides.Clear(key)
		logger.Debug("Override for %s matches prior, cleared", key)
		return nil
	}
	s.overrides.Set(key, text)
	logger.Debug("Override set for %s (%d bytes)", key, len(text))
	return nil
}

// ClearOverride removes a section's override.
func (s *DraftService) ClearOverride(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.library.Draft.Section(key); !ok {
		return fmt.Errorf("%s: %w", key, domain.ErrSectionNotFound)
	}
	s.overrides.Clear(key)
	return nil
}

// Override returns a section's override text, if any.
func (s *DraftService) Override(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.overrides.Get(key)
}

// Overrides returns the overridden section keys, sorted.
func (s *DraftService) Overrides() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.overrides.Keys()
}

// Progress summarises the session.
func (s *DraftService) Progress() domain.Progress {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.Progress{
		Total:      s.library.Catalog.Len(),
		Changed:    s.values.ChangedCount(),
		Touched:    s.values.TouchedCount(),
		Overridden: s.overrides.Len(),
	}
}

// RenderSection renders one draft section.
func (s *DraftService) RenderSection(key string) (domain.RenderedSection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.assembler.RenderSection(s.library.Draft, key, s.values, s.overrides)
}

// RenderAll renders every draft section.
func (s *DraftService) RenderAll() []domain.RenderedSection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	logger.Debug("Rendering %d sections", s.library.Draft.Len())
	return s.assembler.RenderAll(s.library.Draft, s.values, s.overrides)
}

// RedlineSection compares one draft section against its prior rendering.
func (s *DraftService) RedlineSection(key string) (domain.SectionRedline, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.assembler.RedlineSection(s.library.Draft, key, s.values, s.overrides)
}

// RedlineAll compares every draft section against its prior rendering.
func (s *DraftService) RedlineAll() []domain.SectionRedline {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.assembler.RedlineAll(s.library.Draft, s.values, s.overrides)
}

// SectionVariables lists the states of the variables a section references.
func (s *DraftService) SectionVariables(key string) ([]domain.VariableState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids, err := s.assembler.SectionVariables(s.library.Draft, key)
	if err != nil {
		return nil, err
	}
	return s.states(ids), nil
}

// SessionID returns the current session ID, empty if never saved.
func (s *DraftService) SessionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.ID
}

// SessionName returns the current session name.
func (s *DraftService) SessionName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Name
}

// Save persists the working values and overrides.
func (s *DraftService) Save(ctx context.Context) error {
	if s.sessions == nil {
		return domain.ErrNotImplemented
	}

	s.mu.Lock()
	now := s.now()
	if s.session.ID == "" {
		s.session.ID = uuid.NewString()
		s.session.CreatedAt = now
	}
	s.session.UpdatedAt = now
	s.session.Values = s.values.Snapshot()
	s.session.Overrides = s.overrides.Snapshot()
	session := s.session
	s.mu.Unlock()

	if err := s.sessions.Save(ctx, session); err != nil {
		return fmt.Errorf("save session %s: %w", session.ID, err)
	}
	logger.Info("Saved session %s (%d values, %d overrides)", session.ID, len(session.Values), len(session.Overrides))
	return nil
}

// Load replaces the working state with a saved session. Values for
// variables or sections no longer in the library are dropped.
func (s *DraftService) Load(ctx context.Context, id string) error {
	if s.sessions == nil {
		return domain.ErrNotImplemented
	}
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if skipped := s.values.Restore(session.Values); len(skipped) > 0 {
		logger.Warn("Session %s: dropped values for unknown variables %v", id, skipped)
	}

	overrides := make(map[string]string, len(session.Overrides))
	var dropped []string
	for key, text := range session.Overrides {
		if _, ok := s.library.Draft.Section(key); !ok {
			dropped = append(dropped, key)
			continue
		}
		overrides[key] = text
	}
	if len(dropped) > 0 {
		sort.Strings(dropped)
		logger.Warn("Session %s: dropped overrides for unknown sections %v", id, dropped)
	}
	s.overrides.Restore(overrides)
	s.session = *session
	logger.Debug("Loaded session %s", id)
	return nil
}

// Snapshot returns copies of the explicit values and overrides.
func (s *DraftService) Snapshot() (values, overrides map[string]string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values.Snapshot(), s.overrides.Snapshot()
}

func (s *DraftService) states(ids []string) []domain.VariableState {
	out := make([]domain.VariableState, 0, len(ids))
	for _, id := range ids {
		if state, ok := s.values.State(id); ok {
			out = append(out, state)
		}
	}
	return out
}
