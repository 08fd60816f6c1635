package mcp

import (
	"context"
	"fmt"
	"io"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/suppdraft/internal/adapters/driving/format"
	"github.com/custodia-labs/suppdraft/internal/core/domain"
)

// RenderInput is the input schema for the render tool.
type RenderInput struct {
	Section string `json:"section,omitempty" jsonschema:"section key to render (default all sections)"`
}

// RenderOutput is the output schema for the render tool.
type RenderOutput struct {
	Sections []domain.RenderedSection `json:"sections"`
}

// RedlineInput is the input schema for the redline and final tools.
type RedlineInput struct {
	Section     string `json:"section,omitempty" jsonschema:"section key to compare (default all sections)"`
	ChangedOnly bool   `json:"changed_only,omitempty" jsonschema:"omit sections with no changes"`
}

// RedlineOutput is the output schema for the redline and final tools.
type RedlineOutput struct {
	Redlines []RedlineSectionOutput `json:"redlines"`
	Changed  int                    `json:"changed"`
}

// RedlineSectionOutput is one section of a redline.
type RedlineSectionOutput struct {
	Key        string `json:"key"`
	Title      string `json:"title"`
	Changed    bool   `json:"changed"`
	Overridden bool   `json:"overridden"`

	// Markup is the plain redline with [-deleted-] and {+inserted+} markers.
	// Empty when the section is unchanged.
	Markup  string `json:"markup,omitempty"`
	Current string `json:"current"`
}

// SetValueInput is the input schema for the set_value tool.
type SetValueInput struct {
	ID    string `json:"id" jsonschema:"variable id"`
	Value string `json:"value" jsonschema:"new value; empty or the prior value reverts the variable"`
}

// ClearValueInput is the input schema for the clear_value tool.
type ClearValueInput struct {
	ID string `json:"id" jsonschema:"variable id"`
}

// VariableOutput describes one variable after a change.
type VariableOutput struct {
	ID        string `json:"id"`
	Prior     string `json:"prior"`
	Value     string `json:"value"`
	Suggested string `json:"suggested,omitempty"`
	Source    string `json:"source"`
	Task      string `json:"task"`
	Hint      string `json:"hint,omitempty"`
	Changed   bool   `json:"changed"`
}

// SetOverrideInput is the input schema for the set_override tool.
type SetOverrideInput struct {
	Section string `json:"section" jsonschema:"section key"`
	Text    string `json:"text" jsonschema:"replacement section text; empty restores the template"`
}

// ClearOverrideInput is the input schema for the clear_override tool.
type ClearOverrideInput struct {
	Section string `json:"section" jsonschema:"section key"`
}

// OverrideOutput reports a section's override state.
type OverrideOutput struct {
	Section    string `json:"section"`
	Overridden bool   `json:"overridden"`
}

// EmptyInput is the input schema for tools without arguments.
type EmptyInput struct{}

// ProgressOutput is the output schema for the progress tool.
type ProgressOutput struct {
	Total      int    `json:"total"`
	Changed    int    `json:"changed"`
	Touched    int    `json:"touched"`
	Overridden int    `json:"overridden"`
	Percent    int    `json:"percent"`
	Session    string `json:"session,omitempty"`
}

// LintOutput is the output schema for the lint tool.
type LintOutput struct {
	Diagnostics []domain.Diagnostic `json:"diagnostics"`
	Errors      bool                `json:"errors"`
}

// SaveOutput is the output schema for the save_session tool.
type SaveOutput struct {
	Session string `json:"session"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "render",
		Description: "Render the draft supplement with the current values and section edits",
	}, s.handleRender)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "redline",
		Description: "Word-level redline of the draft against the prior supplement",
	}, s.handleRedline)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "set_value",
		Description: "Set a variable's value for the new deal",
	}, s.handleSetValue)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "clear_value",
		Description: "Revert a variable to its suggested or prior value",
	}, s.handleClearValue)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "set_override",
		Description: "Replace a section's text outright",
	}, s.handleSetOverride)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "clear_override",
		Description: "Restore a section to its template text",
	}, s.handleClearOverride)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "progress",
		Description: "How many variables have changed and sections have been edited",
	}, s.handleProgress)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "save_session",
		Description: "Save the working values and section edits",
	}, s.handleSave)

	if s.ports.Final != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "final",
			Description: "Redline of the final document with the pricing term sheet applied",
		}, s.handleFinal)
	}

	if s.ports.Lint != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "lint",
			Description: "Check the draft template for unknown variables, blanks and unclosed markers",
		}, s.handleLint)
	}
}

// handleRender handles the render tool invocation.
func (s *Server) handleRender(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input RenderInput,
) (*mcp.CallToolResult, RenderOutput, error) {
	if input.Section == "" {
		return nil, RenderOutput{Sections: s.ports.Draft.RenderAll()}, nil
	}

	sec, err := s.ports.Draft.RenderSection(input.Section)
	if err != nil {
		return nil, RenderOutput{}, err
	}
	return nil, RenderOutput{Sections: []domain.RenderedSection{sec}}, nil
}

// handleRedline handles the redline tool invocation.
func (s *Server) handleRedline(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input RedlineInput,
) (*mcp.CallToolResult, RedlineOutput, error) {
	if input.Section == "" {
		return nil, redlineOutput(s.ports.Draft.RedlineAll(), input.ChangedOnly), nil
	}

	r, err := s.ports.Draft.RedlineSection(input.Section)
	if err != nil {
		return nil, RedlineOutput{}, err
	}
	return nil, redlineOutput([]domain.SectionRedline{r}, input.ChangedOnly), nil
}

// handleFinal handles the final tool invocation.
func (s *Server) handleFinal(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input RedlineInput,
) (*mcp.CallToolResult, RedlineOutput, error) {
	if s.ports.Final == nil || !s.ports.Final.Available() {
		return nil, RedlineOutput{}, ErrFinalUnavailable
	}

	redlines, err := s.ports.Final.RedlineFinal()
	if err != nil {
		return nil, RedlineOutput{}, err
	}
	if input.Section != "" {
		redlines = filterSection(redlines, input.Section)
		if len(redlines) == 0 {
			return nil, RedlineOutput{}, fmt.Errorf("%s: %w", input.Section, domain.ErrSectionNotFound)
		}
	}
	return nil, redlineOutput(redlines, input.ChangedOnly), nil
}

// handleSetValue handles the set_value tool invocation.
func (s *Server) handleSetValue(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input SetValueInput,
) (*mcp.CallToolResult, VariableOutput, error) {
	if err := s.ports.Draft.SetValue(input.ID, input.Value); err != nil {
		return nil, VariableOutput{}, err
	}
	return s.variable(input.ID)
}

// handleClearValue handles the clear_value tool invocation.
func (s *Server) handleClearValue(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ClearValueInput,
) (*mcp.CallToolResult, VariableOutput, error) {
	if err := s.ports.Draft.ClearValue(input.ID); err != nil {
		return nil, VariableOutput{}, err
	}
	return s.variable(input.ID)
}

// handleSetOverride handles the set_override tool invocation.
func (s *Server) handleSetOverride(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input SetOverrideInput,
) (*mcp.CallToolResult, OverrideOutput, error) {
	if err := s.ports.Draft.SetOverride(input.Section, input.Text); err != nil {
		return nil, OverrideOutput{}, err
	}
	_, overridden := s.ports.Draft.Override(input.Section)
	return nil, OverrideOutput{Section: input.Section, Overridden: overridden}, nil
}

// handleClearOverride handles the clear_override tool invocation.
func (s *Server) handleClearOverride(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ClearOverrideInput,
) (*mcp.CallToolResult, OverrideOutput, error) {
	if err := s.ports.Draft.ClearOverride(input.Section); err != nil {
		return nil, OverrideOutput{}, err
	}
	return nil, OverrideOutput{Section: input.Section}, nil
}

// handleProgress handles the progress tool invocation.
func (s *Server) handleProgress(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, ProgressOutput, error) {
	p := s.ports.Draft.Progress()
	return nil, ProgressOutput{
		Total:      p.Total,
		Changed:    p.Changed,
		Touched:    p.Touched,
		Overridden: p.Overridden,
		Percent:    p.Percent(),
		Session:    s.ports.Draft.SessionID(),
	}, nil
}

// handleSave handles the save_session tool invocation.
func (s *Server) handleSave(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, SaveOutput, error) {
	if err := s.ports.Draft.Save(ctx); err != nil {
		return nil, SaveOutput{}, err
	}
	return nil, SaveOutput{Session: s.ports.Draft.SessionID()}, nil
}

// handleLint handles the lint tool invocation.
func (s *Server) handleLint(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, LintOutput, error) {
	diags := s.ports.Lint.Lint(s.ports.Draft.Template())
	if diags == nil {
		diags = []domain.Diagnostic{}
	}
	return nil, LintOutput{Diagnostics: diags, Errors: domain.HasErrors(diags)}, nil
}

func (s *Server) variable(id string) (*mcp.CallToolResult, VariableOutput, error) {
	state, err := s.ports.Draft.Variable(id)
	if err != nil {
		return nil, VariableOutput{}, err
	}
	return nil, variableOutput(state), nil
}

func variableOutput(state domain.VariableState) VariableOutput {
	def := state.Definition
	return VariableOutput{
		ID:        def.ID,
		Prior:     def.Prior,
		Value:     state.Value,
		Suggested: def.Suggested,
		Source:    def.Source.String(),
		Task:      def.Task.String(),
		Hint:      def.Hint,
		Changed:   state.Changed,
	}
}

// plain renders redline markup without styling.
var plain = format.New(io.Discard, format.Options{Color: domain.ColorNever, ShowNotes: true})

func redlineOutput(redlines []domain.SectionRedline, changedOnly bool) RedlineOutput {
	out := RedlineOutput{Redlines: make([]RedlineSectionOutput, 0, len(redlines))}
	for _, r := range redlines {
		if r.Changed {
			out.Changed++
		} else if changedOnly {
			continue
		}
		sec := RedlineSectionOutput{
			Key:        r.Key,
			Title:      r.Title,
			Changed:    r.Changed,
			Overridden: r.Overridden,
			Current:    r.Current,
		}
		if r.Changed {
			sec.Markup = plain.Segments(domain.Coalesce(r.Segments))
		}
		out.Redlines = append(out.Redlines, sec)
	}
	return out
}

func filterSection(redlines []domain.SectionRedline, key string) []domain.SectionRedline {
	for _, r := range redlines {
		if r.Key == key {
			return []domain.SectionRedline{r}
		}
	}
	return nil
}
