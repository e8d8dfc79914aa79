// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/orionmayta1234/Workout-app/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to run your workout sessions
through a standardized protocol. The server communicates via
stdin/stdout and keeps the session and the rest timer alive for the
whole conversation.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "workout": {
        "command": "workout",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  list_templates    List workout templates
  get_template      Get one template
  start_session     Start a session from a template
  session_status    Show per-set progress and the rest timer
  update_set        Edit reps or weight of a pending set
  log_set           Complete a set and start the rest countdown
  add_set           Add an extra set to an exercise
  set_body_weight   Record body weight on the session
  set_notes         Set session notes
  finish_session    Save the workout to history
  discard_session   Abandon the session
  rest_timer        Start, pause, resume, stop, or read the countdown
  list_history      List finished workouts
  get_log           Get one finished workout

AVAILABLE RESOURCES:

  workout://templates   All templates
  workout://session     The active session
  workout://history     Recent workout history`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo, ctrl, restTimer)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
