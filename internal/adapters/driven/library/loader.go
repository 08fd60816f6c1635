package library

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/suppdraft/internal/core/domain"
	"github.com/custodia-labs/suppdraft/internal/core/ports/driven"
)

//go:embed default.yaml
var defaultLibrary []byte

// Verify interface compliance.
var _ driven.LibraryLoader = (*Loader)(nil)

type yamlVariable struct {
	ID         string `yaml:"id"`
	Prior      string `yaml:"prior"`
	Source     string `yaml:"source"`
	Task       string `yaml:"task"`
	Hint       string `yaml:"hint,omitempty"`
	Suggested  string `yaml:"suggested,omitempty"`
	AutoSource string `yaml:"auto_source,omitempty"`
}

type yamlSection struct {
	Key   string `yaml:"key"`
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

type yamlTermSheetField struct {
	ID      string `yaml:"id"`
	Label   string `yaml:"label"`
	Value   string `yaml:"value"`
	Section string `yaml:"section,omitempty"`
}

type yamlTermSheet struct {
	Title  string               `yaml:"title"`
	Fields []yamlTermSheetField `yaml:"fields"`
}

type yamlLibrary struct {
	Name      string         `yaml:"name"`
	Variables []yamlVariable `yaml:"variables"`
	Draft     []yamlSection  `yaml:"draft"`
	Final     []yamlSection  `yaml:"final,omitempty"`
	TermSheet *yamlTermSheet `yaml:"termsheet,omitempty"`
}

// Loader reads a library file, falling back to the embedded default.
type Loader struct {
	path          string
	termSheetPath string
}

// NewLoader creates a loader for path. An empty path selects the embedded
// library. A non-empty termSheetPath replaces the library's own term sheet.
func NewLoader(path, termSheetPath string) *Loader {
	return &Loader{path: path, termSheetPath: termSheetPath}
}

// Path returns the configured library path, empty for the embedded default.
func (l *Loader) Path() string {
	return l.path
}

// Load reads and validates the library.
func (l *Loader) Load(ctx context.Context) (*domain.Library, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := defaultLibrary
	if l.path != "" {
		raw, err := os.ReadFile(l.path)
		if err != nil {
			return nil, fmt.Errorf("read library: %w", err)
		}
		data = raw
	}

	lib, err := Parse(data)
	if err != nil {
		if l.path != "" {
			return nil, fmt.Errorf("%s: %w", l.path, err)
		}
		return nil, err
	}

	if l.termSheetPath != "" {
		raw, err := os.ReadFile(l.termSheetPath)
		if err != nil {
			return nil, fmt.Errorf("read term sheet: %w", err)
		}
		ts, err := ParseTermSheet(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", l.termSheetPath, err)
		}
		lib.TermSheet = ts
	}

	return lib, nil
}

// Default returns the embedded library source.
func Default() []byte {
	out := make([]byte, len(defaultLibrary))
	copy(out, defaultLibrary)
	return out
}

// Parse decodes a library document. Unknown keys are rejected so that
// typos in hand-edited files surface instead of silently dropping data.
func Parse(data []byte) (*domain.Library, error) {
	var raw yamlLibrary
	if err := decodeStrict(data, &raw); err != nil {
		return nil, fmt.Errorf("parse library: %w", err)
	}

	defs := make([]domain.VariableDefinition, 0, len(raw.Variables))
	for _, v := range raw.Variables {
		def, err := v.definition()
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}

	catalog, err := domain.NewCatalog(defs)
	if err != nil {
		return nil, err
	}

	if len(raw.Draft) == 0 {
		return nil, fmt.Errorf("library has no draft sections: %w", domain.ErrInvalidInput)
	}
	draft, err := domain.NewTemplate("draft", sections(raw.Draft))
	if err != nil {
		return nil, err
	}

	lib := &domain.Library{Catalog: catalog, Draft: draft}

	if len(raw.Final) > 0 {
		final, err := domain.NewTemplate("final", sections(raw.Final))
		if err != nil {
			return nil, err
		}
		lib.Final = final
	}

	if raw.TermSheet != nil {
		lib.TermSheet = raw.TermSheet.termSheet()
	}

	return lib, nil
}

// ParseTermSheet decodes a standalone term sheet document with the same
// shape as the termsheet key of a library.
func ParseTermSheet(data []byte) (*domain.TermSheet, error) {
	var raw yamlTermSheet
	if err := decodeStrict(data, &raw); err != nil {
		return nil, fmt.Errorf("parse term sheet: %w", err)
	}
	for _, f := range raw.Fields {
		if f.ID == "" {
			return nil, fmt.Errorf("term sheet field without id: %w", domain.ErrInvalidInput)
		}
	}
	return raw.termSheet(), nil
}

func decodeStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("empty document: %w", domain.ErrInvalidInput)
		}
		return err
	}
	return nil
}

func (v yamlVariable) definition() (domain.VariableDefinition, error) {
	source := domain.VariableSource(v.Source)
	if !source.IsValid() {
		return domain.VariableDefinition{}, fmt.Errorf("variable %s: source %q: %w", v.ID, v.Source, domain.ErrInvalidInput)
	}

	task := domain.VariableTask(v.Task)
	if v.Task == "" {
		task = domain.TaskUpdate
	}
	if !task.IsValid() {
		return domain.VariableDefinition{}, fmt.Errorf("variable %s: task %q: %w", v.ID, v.Task, domain.ErrInvalidInput)
	}

	return domain.VariableDefinition{
		ID:         v.ID,
		Prior:      v.Prior,
		Source:     source,
		Task:       task,
		Hint:       v.Hint,
		Suggested:  v.Suggested,
		AutoSource: v.AutoSource,
	}, nil
}

func sections(raw []yamlSection) []domain.Section {
	out := make([]domain.Section, 0, len(raw))
	for _, s := range raw {
		out = append(out, domain.Section{Key: s.Key, Title: s.Title, Text: s.Text})
	}
	return out
}

func (t *yamlTermSheet) termSheet() *domain.TermSheet {
	ts := &domain.TermSheet{Title: t.Title, Fields: make([]domain.TermSheetField, 0, len(t.Fields))}
	for _, f := range t.Fields {
		ts.Fields = append(ts.Fields, domain.TermSheetField{
			ID:      f.ID,
			Label:   f.Label,
			Value:   f.Value,
			Section: f.Section,
		})
	}
	return ts
}
