// Package main provides the entry point for the forum vote sync MCP server.
//
// The MCP server lets AI agents read forum threads and cast votes through a running
// forum vote sync service, which owns the session and the optimistic vote state.
//
// Configuration:
//
//	FORUM_SYNC_API_URL - Base URL of the vote sync service (default: http://localhost:8080)
package main

import (
	"log"
	"os"

	"github.com/jbeshir/forum-vote-sync/cmd/mcp/client"
	"github.com/jbeshir/forum-vote-sync/cmd/mcp/server"
)

func main() {
	apiURL := os.Getenv("FORUM_SYNC_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}

	apiClient := client.NewClient(apiURL)
	srv := server.NewServer(apiClient)

	if err := srv.Run(); err != nil {
		log.Fatal(err)
	}
}
