package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jbeshir/forum-vote-sync/internal/domain"
	"github.com/mark3labs/mcp-go/mcp"
)

type threadSummary struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Category      string `json:"category"`
	Owner         string `json:"owner"`
	Likes         int    `json:"likes"`
	Dislikes      int    `json:"dislikes"`
	TotalComments int    `json:"total_comments"`
}

func (s *Server) handleListThreads(
	ctx context.Context,
	_ mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	resp, err := s.client.ListThreads(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list threads: %v", err)), nil
	}

	names := make(map[string]string, len(resp.Users))
	for _, u := range resp.Users {
		names[u.ID] = u.Name
	}

	summaries := make([]threadSummary, 0, len(resp.Threads))
	for _, t := range resp.Threads {
		summaries = append(summaries, threadSummary{
			ID:            t.ID,
			Title:         t.Title,
			Category:      t.Category,
			Owner:         names[t.OwnerID],
			Likes:         len(t.UpVotesBy),
			Dislikes:      len(t.DownVotesBy),
			TotalComments: t.TotalComments,
		})
	}

	return jsonResult(summaries)
}

func (s *Server) handleGetThread(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	threadID, ok := request.Params.Arguments["thread_id"].(string)
	if !ok || threadID == "" {
		return mcp.NewToolResultError("thread_id is required"), nil
	}

	detail, err := s.client.GetThread(ctx, threadID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get thread: %v", err)), nil
	}

	return jsonResult(detail)
}

func (s *Server) handleVote(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	threadID, ok := args["thread_id"].(string)
	if !ok || threadID == "" {
		return mcp.NewToolResultError("thread_id is required"), nil
	}

	directionArg, _ := args["direction"].(string)
	direction, err := domain.ParseDirection(directionArg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	target := domain.ThreadTarget(threadID)
	if commentID, ok := args["comment_id"].(string); ok && commentID != "" {
		target = domain.CommentTarget(threadID, commentID)
	}

	result, err := s.client.ToggleVote(ctx, target, direction)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("vote was not recorded: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf(
		"Your vote on %s is now %s (%d likes, %d dislikes).",
		target, result.State, len(result.Votes.UpVotesBy), len(result.Votes.DownVotesBy),
	)), nil
}

func (s *Server) handleAddComment(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	threadID, ok := args["thread_id"].(string)
	if !ok || threadID == "" {
		return mcp.NewToolResultError("thread_id is required"), nil
	}
	content, ok := args["content"].(string)
	if !ok || content == "" {
		return mcp.NewToolResultError("content is required"), nil
	}

	comment, err := s.client.AddComment(ctx, threadID, content)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to add comment: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Comment %s added.", comment.ID)), nil
}

func (s *Server) handleListLeaderboards(
	ctx context.Context,
	_ mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	entries, err := s.client.ListLeaderboards(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list leaderboards: %v", err)), nil
	}

	return jsonResult(entries)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return mcp.NewToolResultText(string(data)), nil
}
