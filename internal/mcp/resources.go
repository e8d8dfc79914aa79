// ABOUTME: MCP resource implementations for workout data.
// ABOUTME: Provides workout://templates, workout://session, and workout://history.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// workout://templates - all saved templates
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "workout://templates",
		Name:        "Workout Templates",
		Description: "All saved workout templates with their exercises",
		MIMEType:    "application/json",
	}, s.handleTemplatesResource)

	// workout://session - the live session
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "workout://session",
		Name:        "Active Session",
		Description: "The in-progress workout session and rest timer, if any",
		MIMEType:    "application/json",
	}, s.handleSessionResource)

	// workout://history - recent finished workouts
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "workout://history",
		Name:        "Workout History",
		Description: "The last 20 finished workouts, most recent first",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)
}

// Resource handlers

func (s *Server) handleTemplatesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	templates, err := s.repo.ListTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	result := map[string]interface{}{
		"count":     len(templates),
		"templates": templates,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "workout://templates",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleSessionResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	var result map[string]interface{}

	sess := s.ctrl.Session()
	if sess == nil {
		result = map[string]interface{}{
			"active":     false,
			"rest_timer": s.timerView(),
		}
	} else {
		result = map[string]interface{}{
			"active":  true,
			"session": s.sessionView(sess),
		}
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "workout://session",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleHistoryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	logs, err := s.repo.ListLogs(20)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	result := map[string]interface{}{
		"count": len(logs),
		"logs":  logs,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "workout://history",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
