// ABOUTME: MCP tool implementations for the workout session lifecycle.
// ABOUTME: Covers templates, set logging, the rest timer, and history.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/orionmayta1234/Workout-app/internal/models"
	"github.com/orionmayta1234/Workout-app/internal/session"
	"github.com/orionmayta1234/Workout-app/internal/storage"
)

func (s *Server) registerTools() {
	// list_templates
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_templates",
		Description: "List all workout templates",
	}, s.handleListTemplates)

	// get_template
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_template",
		Description: "Get a workout template by ID, ID prefix, or name",
	}, s.handleGetTemplate)

	// start_session
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "start_session",
		Description: "Start a workout session from a template. Fails if a session is already active",
	}, s.handleStartSession)

	// session_status
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "session_status",
		Description: "Show the active session with per-set progress and the rest timer",
	}, s.handleSessionStatus)

	// update_set
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_set",
		Description: "Edit the reps or weight of a pending set in the active session",
	}, s.handleUpdateSet)

	// log_set
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_set",
		Description: "Mark a set completed and start the rest timer. Optionally record reps and weight first",
	}, s.handleLogSet)

	// add_set
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_set",
		Description: "Add an extra set to an exercise in the active session",
	}, s.handleAddSet)

	// set_body_weight
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_body_weight",
		Description: "Record body weight on the active session",
	}, s.handleSetBodyWeight)

	// set_notes
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_notes",
		Description: "Set free-form notes on the active session",
	}, s.handleSetNotes)

	// finish_session
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "finish_session",
		Description: "Finish the active session and append it to workout history",
	}, s.handleFinishSession)

	// discard_session
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "discard_session",
		Description: "Abandon the active session without writing a log",
	}, s.handleDiscardSession)

	// rest_timer
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "rest_timer",
		Description: "Control the rest timer: start, pause, resume, stop, or status",
	}, s.handleRestTimer)

	// list_history
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_history",
		Description: "List finished workouts, most recent first",
	}, s.handleListHistory)

	// get_log
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_log",
		Description: "Get a finished workout log by ID or ID prefix",
	}, s.handleGetLog)
}

// Tool input/output types

type getTemplateInput struct {
	Ref string `json:"ref" jsonschema:"Template ID, ID prefix, or name"`
}

type startSessionInput struct {
	Template string `json:"template" jsonschema:"Template ID, ID prefix, or name"`
}

type sessionOutput struct {
	ID       string `json:"id"`
	Template string `json:"template"`
	Message  string `json:"message"`
}

type setRefInput struct {
	Exercise int `json:"exercise" jsonschema:"Exercise number as shown by session_status (1-based)"`
	Set      int `json:"set" jsonschema:"Set number within the exercise (1-based)"`
}

type updateSetInput struct {
	Exercise int    `json:"exercise" jsonschema:"Exercise number (1-based)"`
	Set      int    `json:"set" jsonschema:"Set number (1-based)"`
	Field    string `json:"field" jsonschema:"Field to update: reps or weight"`
	Value    string `json:"value" jsonschema:"New value; empty string clears the field"`
}

type logSetInput struct {
	Exercise int     `json:"exercise" jsonschema:"Exercise number (1-based)"`
	Set      int     `json:"set" jsonschema:"Set number (1-based)"`
	Reps     int     `json:"reps,omitempty" jsonschema:"Reps performed, recorded before completing"`
	Weight   float64 `json:"weight,omitempty" jsonschema:"Weight used, recorded before completing"`
}

type addSetInput struct {
	Exercise int `json:"exercise" jsonschema:"Exercise number (1-based)"`
}

type setBodyWeightInput struct {
	Weight float64 `json:"weight" jsonschema:"Body weight"`
}

type setNotesInput struct {
	Notes string `json:"notes" jsonschema:"Session notes; empty string clears them"`
}

type restTimerInput struct {
	Action  string `json:"action" jsonschema:"One of: start, pause, resume, stop, status"`
	Seconds int    `json:"seconds,omitempty" jsonschema:"Countdown length for start; defaults to the configured rest period"`
}

type timerOutput struct {
	Remaining int    `json:"remaining_seconds"`
	Clock     string `json:"clock"`
	Running   bool   `json:"running"`
	Paused    bool   `json:"paused"`
	Message   string `json:"message,omitempty"`
}

type listHistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 10)"`
}

type getLogInput struct {
	ID string `json:"id" jsonschema:"Workout log ID or prefix"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type finishOutput struct {
	ID              string `json:"id"`
	DurationMinutes int    `json:"duration_minutes"`
	CompletedSets   int    `json:"completed_sets"`
	Message         string `json:"message"`
}

// Tool handlers

func (s *Server) handleListTemplates(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	templates, err := s.repo.ListTemplates()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list templates: %w", err)
	}

	if len(templates) == 0 {
		return nil, map[string]interface{}{"message": "No templates found."}, nil
	}

	return nil, templates, nil
}

func (s *Server) handleGetTemplate(ctx context.Context, req *mcp.CallToolRequest, input getTemplateInput) (*mcp.CallToolResult, any, error) {
	t, err := storage.FindTemplate(s.repo, input.Ref)
	if err != nil {
		return nil, nil, fmt.Errorf("template not found: %s", input.Ref)
	}

	return nil, t, nil
}

func (s *Server) handleStartSession(ctx context.Context, req *mcp.CallToolRequest, input startSessionInput) (*mcp.CallToolResult, sessionOutput, error) {
	t, err := storage.FindTemplate(s.repo, input.Template)
	if err != nil {
		return nil, sessionOutput{}, fmt.Errorf("template not found: %s", input.Template)
	}

	sess, err := s.ctrl.Start(t)
	if err != nil {
		return nil, sessionOutput{}, fmt.Errorf("failed to start session: %w", err)
	}

	return nil, sessionOutput{
		ID:       sess.ID.String()[:8],
		Template: sess.TemplateName,
		Message: fmt.Sprintf("Started %s with %d exercises. Log sets with log_set.",
			sess.TemplateName, len(sess.Exercises)),
	}, nil
}

func (s *Server) handleSessionStatus(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	sess := s.ctrl.Session()
	if sess == nil {
		return nil, map[string]interface{}{"message": "No active session."}, nil
	}

	return nil, s.sessionView(sess), nil
}

// sessionView renders a session with 1-based numbering matching the
// tool inputs.
func (s *Server) sessionView(sess *models.ActiveSession) map[string]interface{} {
	exercises := make([]map[string]interface{}, 0, len(sess.Exercises))
	for i, ex := range sess.Exercises {
		sets := make([]map[string]interface{}, 0, len(ex.Sets))
		for j, set := range ex.Sets {
			sets = append(sets, map[string]interface{}{
				"set":       j + 1,
				"reps":      set.Reps,
				"weight":    set.Weight,
				"completed": set.Completed,
			})
		}
		exercises = append(exercises, map[string]interface{}{
			"exercise":    i + 1,
			"name":        ex.Name,
			"target_reps": ex.TargetReps,
			"sets":        sets,
		})
	}

	view := map[string]interface{}{
		"id":              sess.ID.String()[:8],
		"template":        sess.TemplateName,
		"started_at":      sess.StartedAt.Format(time.RFC3339),
		"elapsed_minutes": int(time.Since(sess.StartedAt).Minutes()),
		"completed_sets":  sess.CompletedSets(),
		"total_sets":      sess.TotalSets(),
		"exercises":       exercises,
		"rest_timer":      s.timerView(),
	}
	if sess.BodyWeight != nil {
		view["body_weight"] = *sess.BodyWeight
	}
	if sess.Notes != "" {
		view["notes"] = sess.Notes
	}
	return view
}

func (s *Server) timerView() map[string]interface{} {
	snap := s.timer.State()
	return map[string]interface{}{
		"remaining_seconds": snap.Remaining,
		"clock":             snap.Clock(),
		"running":           snap.Running,
		"paused":            snap.Paused,
	}
}

func (s *Server) handleUpdateSet(ctx context.Context, req *mcp.CallToolRequest, input updateSetInput) (*mcp.CallToolResult, simpleOutput, error) {
	field := session.Field(input.Field)
	if err := s.ctrl.UpdateSetField(input.Exercise-1, input.Set-1, field, input.Value); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to update set: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Updated %s on exercise %d set %d.", input.Field, input.Exercise, input.Set),
	}, nil
}

func (s *Server) handleLogSet(ctx context.Context, req *mcp.CallToolRequest, input logSetInput) (*mcp.CallToolResult, timerOutput, error) {
	exIdx, setIdx := input.Exercise-1, input.Set-1

	if input.Reps > 0 {
		reps := input.Reps
		if err := s.ctrl.SetReps(exIdx, setIdx, &reps); err != nil {
			return nil, timerOutput{}, fmt.Errorf("failed to record reps: %w", err)
		}
	}
	if input.Weight > 0 {
		weight := input.Weight
		if err := s.ctrl.SetWeight(exIdx, setIdx, &weight); err != nil {
			return nil, timerOutput{}, fmt.Errorf("failed to record weight: %w", err)
		}
	}

	if err := s.ctrl.LogSet(exIdx, setIdx); err != nil {
		return nil, timerOutput{}, fmt.Errorf("failed to log set: %w", err)
	}
	s.startTimerRun()

	snap := s.timer.State()
	return nil, timerOutput{
		Remaining: snap.Remaining,
		Clock:     snap.Clock(),
		Running:   snap.Running,
		Paused:    snap.Paused,
		Message: fmt.Sprintf("Logged exercise %d set %d. Rest until %s reaches 0:00.",
			input.Exercise, input.Set, snap.Clock()),
	}, nil
}

func (s *Server) handleAddSet(ctx context.Context, req *mcp.CallToolRequest, input addSetInput) (*mcp.CallToolResult, simpleOutput, error) {
	idx, err := s.ctrl.AddSet(input.Exercise - 1)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to add set: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Added set %d to exercise %d.", idx+1, input.Exercise),
	}, nil
}

func (s *Server) handleSetBodyWeight(ctx context.Context, req *mcp.CallToolRequest, input setBodyWeightInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.ctrl.SetBodyWeight(input.Weight); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to set body weight: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Recorded body weight %.1f.", input.Weight),
	}, nil
}

func (s *Server) handleSetNotes(ctx context.Context, req *mcp.CallToolRequest, input setNotesInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.ctrl.SetNotes(input.Notes); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to set notes: %w", err)
	}

	return nil, simpleOutput{Message: "Notes updated."}, nil
}

func (s *Server) handleFinishSession(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, finishOutput, error) {
	log, err := s.ctrl.Finish()
	if err != nil {
		return nil, finishOutput{}, fmt.Errorf("failed to finish session: %w", err)
	}

	return nil, finishOutput{
		ID:              log.ID.String()[:8],
		DurationMinutes: log.DurationMinutes,
		CompletedSets:   log.CompletedSets(),
		Message: fmt.Sprintf("Finished %s: %d sets in %d min (log %s).",
			log.TemplateName, log.CompletedSets(), log.DurationMinutes, log.ID.String()[:8]),
	}, nil
}

func (s *Server) handleDiscardSession(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.ctrl.Discard(); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to discard session: %w", err)
	}

	return nil, simpleOutput{Message: "Session discarded. No log was written."}, nil
}

func (s *Server) handleRestTimer(ctx context.Context, req *mcp.CallToolRequest, input restTimerInput) (*mcp.CallToolResult, timerOutput, error) {
	var message string

	switch input.Action {
	case "start":
		s.timer.Start(time.Duration(input.Seconds) * time.Second)
		s.startTimerRun()
		message = "Rest timer started."
	case "pause":
		if err := s.timer.Pause(); err != nil {
			return nil, timerOutput{}, err
		}
		message = "Rest timer paused."
	case "resume":
		if err := s.timer.Resume(); err != nil {
			return nil, timerOutput{}, err
		}
		message = "Rest timer resumed."
	case "stop":
		s.timer.Stop()
		message = "Rest timer stopped."
	case "status":
		// Snapshot below is the whole answer.
	default:
		return nil, timerOutput{}, fmt.Errorf("unknown action: %s", input.Action)
	}

	snap := s.timer.State()
	return nil, timerOutput{
		Remaining: snap.Remaining,
		Clock:     snap.Clock(),
		Running:   snap.Running,
		Paused:    snap.Paused,
		Message:   message,
	}, nil
}

func (s *Server) handleListHistory(ctx context.Context, req *mcp.CallToolRequest, input listHistoryInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 10
	}

	logs, err := s.repo.ListLogs(input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list history: %w", err)
	}

	if len(logs) == 0 {
		return nil, map[string]interface{}{"message": "No workouts logged yet."}, nil
	}

	return nil, logs, nil
}

func (s *Server) handleGetLog(ctx context.Context, req *mcp.CallToolRequest, input getLogInput) (*mcp.CallToolResult, any, error) {
	log, err := s.repo.GetLog(input.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("workout log not found: %s", input.ID)
	}

	return nil, log, nil
}
