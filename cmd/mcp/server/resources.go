package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"thread://{thread_id}",
			"Forum thread with comments",
			mcp.WithTemplateDescription(
				"Fetch a thread by its id, including its comments and who has liked or "+
					"disliked the thread and each comment."),
			mcp.WithTemplateMIMEType("application/json"),
		),
		s.handleThreadResource,
	)
}

func (s *Server) handleThreadResource(
	ctx context.Context,
	request mcp.ReadResourceRequest,
) ([]mcp.ResourceContents, error) {
	uri := request.Params.URI
	if !strings.HasPrefix(uri, "thread://") {
		return nil, fmt.Errorf("invalid thread URI format: %s", uri)
	}

	threadID := strings.TrimPrefix(uri, "thread://")
	if threadID == "" {
		return nil, fmt.Errorf("missing thread_id in URI: %s", uri)
	}

	detail, err := s.client.GetThread(ctx, threadID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch thread %s: %w", threadID, err)
	}

	data, err := json.MarshalIndent(detail, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal thread: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
