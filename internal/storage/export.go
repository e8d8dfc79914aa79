// ABOUTME: Export and import functionality for workout data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats plus template files.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/orionmayta1234/Workout-app/internal/models"
)

// ExportData represents the full export format for workout data.
type ExportData struct {
	Version    string                    `json:"version" yaml:"version"`
	ExportedAt time.Time                 `json:"exported_at" yaml:"exported_at"`
	Tool       string                    `json:"tool" yaml:"tool"`
	Templates  []*models.WorkoutTemplate `json:"templates" yaml:"templates"`
	Logs       []*models.WorkoutLog      `json:"logs" yaml:"logs"`
}

// ImportSummary reports what an import added and what it skipped.
type ImportSummary struct {
	Templates        int
	Logs             int
	SkippedTemplates int
	SkippedLogs      int
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData() (*ExportData, error) {
	templates, err := d.ListTemplates()
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	logs, err := d.ListLogs(0)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}

	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "workout",
		Templates:  templates,
		Logs:       logs,
	}, nil
}

// ImportData imports data from an export file, skipping records whose
// ID already exists.
func (d *DB) ImportData(data *ExportData) (*ImportSummary, error) {
	return MergeImport(d, data)
}

// MergeImport merges export data into any repository. Records are matched
// by ID so re-importing the same file is a no-op.
func MergeImport(r Repository, data *ExportData) (*ImportSummary, error) {
	summary := &ImportSummary{}

	for _, t := range data.Templates {
		_, err := r.GetTemplate(t.ID.String())
		if err == nil {
			summary.SkippedTemplates++
			continue
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("import template %s: %w", t.Name, err)
		}
		if err := r.CreateTemplate(t); err != nil {
			return nil, fmt.Errorf("import template %s: %w", t.Name, err)
		}
		summary.Templates++
	}

	for _, log := range data.Logs {
		_, err := r.GetLog(log.ID.String())
		if err == nil {
			summary.SkippedLogs++
			continue
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("import log %s: %w", log.ID, err)
		}
		if err := r.PutLog(log); err != nil {
			return nil, fmt.Errorf("import log %s: %w", log.ID, err)
		}
		summary.Logs++
	}

	return summary, nil
}

// ExportJSON renders export data as indented JSON.
func ExportJSON(data *ExportData) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML renders export data in a YAML-friendly format with short IDs.
func ExportYAML(data *ExportData) ([]byte, error) {
	yamlData := struct {
		Version    string         `yaml:"version"`
		ExportedAt string         `yaml:"exported_at"`
		Tool       string         `yaml:"tool"`
		Templates  []yamlTemplate `yaml:"templates"`
		Logs       []yamlLog      `yaml:"logs"`
	}{
		Version:    data.Version,
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
		Templates:  make([]yamlTemplate, 0, len(data.Templates)),
		Logs:       make([]yamlLog, 0, len(data.Logs)),
	}

	for _, t := range data.Templates {
		yt := yamlTemplate{
			ID:        t.ID.String()[:8],
			Name:      t.Name,
			CreatedAt: t.CreatedAt.Format(time.RFC3339),
		}
		for _, ex := range t.Exercises {
			yex := yamlTemplateExercise{
				Name:       ex.Name,
				TargetSets: ex.TargetSets,
				TargetReps: ex.TargetReps,
			}
			if ex.Notes != nil {
				yex.Notes = *ex.Notes
			}
			yt.Exercises = append(yt.Exercises, yex)
		}
		yamlData.Templates = append(yamlData.Templates, yt)
	}

	for _, log := range data.Logs {
		yl := yamlLog{
			ID:              log.ID.String()[:8],
			Template:        log.TemplateName,
			StartedAt:       log.StartedAt.Format(time.RFC3339),
			DurationMinutes: log.DurationMinutes,
		}
		if log.BodyWeight != nil {
			yl.BodyWeight = *log.BodyWeight
		}
		if log.Notes != nil {
			yl.Notes = *log.Notes
		}
		for _, ex := range log.Exercises {
			yex := yamlLogExercise{Name: ex.Name}
			for _, set := range ex.Sets {
				ys := yamlLogSet{}
				if set.Reps != nil {
					ys.Reps = *set.Reps
				}
				if set.Weight != nil {
					ys.Weight = *set.Weight
				}
				yex.Sets = append(yex.Sets, ys)
			}
			yl.Exercises = append(yl.Exercises, yex)
		}
		yamlData.Logs = append(yamlData.Logs, yl)
	}

	return yaml.Marshal(yamlData)
}

type yamlTemplate struct {
	ID        string                 `yaml:"id"`
	Name      string                 `yaml:"name"`
	CreatedAt string                 `yaml:"created_at"`
	Exercises []yamlTemplateExercise `yaml:"exercises"`
}

type yamlTemplateExercise struct {
	Name       string `yaml:"name"`
	TargetSets int    `yaml:"target_sets"`
	TargetReps string `yaml:"target_reps"`
	Notes      string `yaml:"notes,omitempty"`
}

type yamlLog struct {
	ID              string            `yaml:"id"`
	Template        string            `yaml:"template"`
	StartedAt       string            `yaml:"started_at"`
	DurationMinutes int               `yaml:"duration_minutes"`
	BodyWeight      float64           `yaml:"body_weight,omitempty"`
	Notes           string            `yaml:"notes,omitempty"`
	Exercises       []yamlLogExercise `yaml:"exercises,omitempty"`
}

type yamlLogExercise struct {
	Name string       `yaml:"name"`
	Sets []yamlLogSet `yaml:"sets,omitempty"`
}

type yamlLogSet struct {
	Reps   int     `yaml:"reps,omitempty"`
	Weight float64 `yaml:"weight,omitempty"`
}

// ExportMarkdown renders templates and workout history as Markdown tables.
// If since is non-nil only logs started at or after it are included.
func ExportMarkdown(data *ExportData, since *time.Time) string {
	logs := data.Logs
	if since != nil {
		var filtered []*models.WorkoutLog
		for _, log := range logs {
			if log.StartedAt.After(*since) || log.StartedAt.Equal(*since) {
				filtered = append(filtered, log)
			}
		}
		logs = filtered
	}

	var sb strings.Builder
	now := time.Now()

	sb.WriteString(fmt.Sprintf("# Workout Export - %s\n\n", now.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))

	if len(data.Templates) > 0 {
		sb.WriteString("## Templates\n\n")
		sb.WriteString("| Name | Exercises | Created |\n")
		sb.WriteString("|------|-----------|----------|\n")
		for _, t := range data.Templates {
			var names []string
			for _, ex := range t.Exercises {
				names = append(names, fmt.Sprintf("%s %dx%s", ex.Name, ex.TargetSets, ex.TargetReps))
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n",
				t.Name, strings.Join(names, ", "), t.CreatedAt.Format("2006-01-02")))
		}
		sb.WriteString("\n")
	}

	if len(logs) > 0 {
		sb.WriteString("## Workout History\n\n")
		sb.WriteString("| Date | Template | Duration | Sets | Body Weight | Notes |\n")
		sb.WriteString("|------|----------|----------|------|-------------|-------|\n")
		for _, log := range logs {
			bodyWeight := ""
			if log.BodyWeight != nil {
				bodyWeight = fmt.Sprintf("%.1f", *log.BodyWeight)
			}
			notes := ""
			if log.Notes != nil {
				notes = *log.Notes
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %d min | %d | %s | %s |\n",
				log.StartedAt.Format("2006-01-02 15:04"),
				log.TemplateName, log.DurationMinutes, log.CompletedSets(),
				bodyWeight, notes))
		}
	}

	return sb.String()
}

// ImportJSON imports export data from JSON bytes into a repository.
func ImportJSON(r Repository, data []byte) (*ImportSummary, error) {
	var exportData ExportData
	if err := json.Unmarshal(data, &exportData); err != nil {
		return nil, fmt.Errorf("unmarshal JSON: %w", err)
	}
	return MergeImport(r, &exportData)
}

// templateFile is the human-editable YAML format for a single template.
type templateFile struct {
	Name      string                 `yaml:"name"`
	Exercises []yamlTemplateExercise `yaml:"exercises"`
}

// RenderTemplateYAML renders a single template as editable YAML.
func RenderTemplateYAML(t *models.WorkoutTemplate) ([]byte, error) {
	tf := templateFile{Name: t.Name}
	for _, ex := range t.Exercises {
		yex := yamlTemplateExercise{
			Name:       ex.Name,
			TargetSets: ex.TargetSets,
			TargetReps: ex.TargetReps,
		}
		if ex.Notes != nil {
			yex.Notes = *ex.Notes
		}
		tf.Exercises = append(tf.Exercises, yex)
	}
	return yaml.Marshal(tf)
}

// ParseTemplateYAML parses an editable YAML template file into a new
// template with fresh IDs.
func ParseTemplateYAML(data []byte) (*models.WorkoutTemplate, error) {
	var tf templateFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("unmarshal template YAML: %w", err)
	}

	t := models.NewTemplate(tf.Name)
	for _, ex := range tf.Exercises {
		t.AddExercise(ex.Name, ex.TargetSets, ex.TargetReps)
		if ex.Notes != "" {
			t.WithNotes(ex.Notes)
		}
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid template file: %w", err)
	}
	return t, nil
}
