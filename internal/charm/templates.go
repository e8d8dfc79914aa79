// ABOUTME: Workout template CRUD operations for Charm KV storage.
// ABOUTME: Stores each template as a single JSON record under a prefixed key.
package charm

import (
	"fmt"
	"sort"

	"github.com/orionmayta1234/Workout-app/internal/models"
)

// CreateTemplate stores a new workout template in the KV store.
func (c *Client) CreateTemplate(t *models.WorkoutTemplate) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("invalid template: %w", err)
	}

	key := TemplatePrefix + t.ID.String()
	data, err := marshalJSON(t)
	if err != nil {
		return fmt.Errorf("marshal template: %w", err)
	}
	return c.set(key, data)
}

// GetTemplate retrieves a template by ID or ID prefix.
func (c *Client) GetTemplate(idOrPrefix string) (*models.WorkoutTemplate, error) {
	data, err := c.getByIDPrefix(TemplatePrefix, idOrPrefix)
	if err != nil {
		return nil, fmt.Errorf("get template: %w", err)
	}

	t, err := unmarshalJSON[models.WorkoutTemplate](data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal template: %w", err)
	}

	return t, nil
}

// ListTemplates retrieves all templates sorted by name.
func (c *Client) ListTemplates() ([]*models.WorkoutTemplate, error) {
	allData, err := c.listByPrefix(TemplatePrefix)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	var templates []*models.WorkoutTemplate
	for _, data := range allData {
		t, err := unmarshalJSON[models.WorkoutTemplate](data)
		if err != nil {
			continue
		}
		templates = append(templates, t)
	}

	sort.Slice(templates, func(i, j int) bool {
		return templates[i].Name < templates[j].Name
	})

	return templates, nil
}

// UpdateTemplate replaces a stored template.
func (c *Client) UpdateTemplate(t *models.WorkoutTemplate) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("invalid template: %w", err)
	}

	// Verify it exists so update cannot silently create
	if _, err := c.GetTemplate(t.ID.String()); err != nil {
		return fmt.Errorf("update template: %w", err)
	}

	key := TemplatePrefix + t.ID.String()
	data, err := marshalJSON(t)
	if err != nil {
		return fmt.Errorf("marshal template: %w", err)
	}
	return c.set(key, data)
}

// DeleteTemplate removes a template by ID or prefix.
// Workout logs recorded from the template are not touched.
func (c *Client) DeleteTemplate(idOrPrefix string) error {
	if err := c.deleteByIDPrefix(TemplatePrefix, idOrPrefix); err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	return nil
}
