// Package server provides the MCP server implementation.
package server

import (
	"github.com/jbeshir/forum-vote-sync/cmd/mcp/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server is the MCP server for the forum.
type Server struct {
	client    *client.Client
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server with the given API client.
func NewServer(apiClient *client.Client) *Server {
	s := &Server{
		client: apiClient,
	}

	s.mcpServer = server.NewMCPServer(
		"forum-vote-sync",
		"1.0.0",
		server.WithResourceCapabilities(true, false),
		server.WithLogging(),
	)

	s.registerTools()
	s.registerResources()

	return s
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("list_threads",
		mcp.WithDescription("List forum threads with their current like and dislike counts."),
	), s.handleListThreads)

	s.mcpServer.AddTool(mcp.NewTool("get_thread",
		mcp.WithDescription("Get a thread with its body and comments."),
		mcp.WithString("thread_id",
			mcp.Required(),
			mcp.Description("The id of the thread"),
		),
	), s.handleGetThread)

	s.mcpServer.AddTool(mcp.NewTool("vote",
		mcp.WithDescription(
			"Like or dislike a thread or comment. Voting the same way twice clears the vote; "+
				"voting the other way switches it. Requires the service to be logged in."),
		mcp.WithString("thread_id",
			mcp.Required(),
			mcp.Description("The id of the thread, or of the thread the comment belongs to"),
		),
		mcp.WithString("comment_id",
			mcp.Description("The id of the comment to vote on; omit to vote on the thread"),
		),
		mcp.WithString("direction",
			mcp.Required(),
			mcp.Description("'like' or 'dislike'"),
			mcp.Enum("like", "dislike"),
		),
	), s.handleVote)

	s.mcpServer.AddTool(mcp.NewTool("add_comment",
		mcp.WithDescription("Post a comment on a thread. Requires the service to be logged in."),
		mcp.WithString("thread_id",
			mcp.Required(),
			mcp.Description("The id of the thread"),
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("The comment text"),
		),
	), s.handleAddComment)

	s.mcpServer.AddTool(mcp.NewTool("list_leaderboards",
		mcp.WithDescription("List the most active users and their scores."),
	), s.handleListLeaderboards)
}
