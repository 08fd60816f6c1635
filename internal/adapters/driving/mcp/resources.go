package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/suppdraft/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for suppdraft resources.
	uriScheme = "suppdraft://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "sections",
		Name:        "sections",
		Description: "Draft sections with their change state and variables",
		MIMEType:    "application/json",
	}, s.handleSectionsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "variables",
		Name:        "variables",
		Description: "Every variable with its prior, suggested and current value",
		MIMEType:    "application/json",
	}, s.handleVariablesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "sections/{key}",
		Name:        "section-text",
		Description: "Current text of one draft section",
		MIMEType:    "text/plain",
	}, s.handleSectionTextResource)
}

// handleSectionsResource lists the draft sections in template order.
func (s *Server) handleSectionsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type sectionInfo struct {
		Key        string   `json:"key"`
		Title      string   `json:"title"`
		Changed    bool     `json:"changed"`
		Overridden bool     `json:"overridden"`
		Variables  []string `json:"variables"`
	}

	redlines := s.ports.Draft.RedlineAll()
	tmpl := s.ports.Draft.Template()

	infos := make([]sectionInfo, len(redlines))
	for i, r := range redlines {
		vars := []string{}
		if sec, ok := tmpl.Section(r.Key); ok {
			if refs := domain.VariableRefs(sec.Text); refs != nil {
				vars = refs
			}
		}
		infos[i] = sectionInfo{
			Key:        r.Key,
			Title:      r.Title,
			Changed:    r.Changed,
			Overridden: r.Overridden,
			Variables:  vars,
		}
	}

	return jsonResult(req.Params.URI, infos, "sections")
}

// handleVariablesResource lists every variable in catalog order.
func (s *Server) handleVariablesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	states := s.ports.Draft.Variables()
	infos := make([]VariableOutput, len(states))
	for i, state := range states {
		infos[i] = variableOutput(state)
	}
	return jsonResult(req.Params.URI, infos, "variables")
}

// handleSectionTextResource returns the rendered text of one section.
func (s *Server) handleSectionTextResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	key := extractSectionKey(req.Params.URI)
	if key == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	sec, err := s.ports.Draft.RenderSection(key)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     sec.Text,
		}},
	}, nil
}

func jsonResult(uri string, v any, what string) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", what, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractSectionKey extracts the key from a URI like suppdraft://sections/{key}.
func extractSectionKey(uri string) string {
	const prefix = uriScheme + "sections/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	key := strings.TrimPrefix(uri, prefix)
	if strings.Contains(key, "/") {
		return ""
	}
	return key
}
