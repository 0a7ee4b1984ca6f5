// ABOUTME: Exercise template catalogue: one-time default seeding and CRUD.
// ABOUTME: Templates are copied by value into exercises; defaults are protected.
package storage

import (
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"github.com/mlgx/liftlog/internal/models"
)

//go:embed catalogue.toml
var catalogueTOML []byte

type catalogueEntry struct {
	Name        string `toml:"name"`
	MuscleGroup string `toml:"muscle_group"`
	Description string `toml:"description"`
	ImageURL    string `toml:"image_url"`
}

type catalogueFile struct {
	Exercises []catalogueEntry `toml:"exercise"`
}

// InitializeDefaultTemplates seeds the built-in exercise catalogue. The seed
// runs only when no default template exists yet; a partially failed seed is
// not resumed (rerunning after one would duplicate entries).
func (d *DB) InitializeDefaultTemplates() error {
	var count int
	err := d.queryRowScan(`SELECT COUNT(*) FROM exercise_templates WHERE is_default = 1`, nil, &count)
	if err != nil {
		return fmt.Errorf("check default templates: %w", err)
	}
	if count > 0 {
		return nil
	}

	var catalogue catalogueFile
	if err := toml.Unmarshal(catalogueTOML, &catalogue); err != nil {
		return fmt.Errorf("parse exercise catalogue: %w", err)
	}

	for _, entry := range catalogue.Exercises {
		t := models.NewExerciseTemplate(entry.Name, entry.MuscleGroup)
		t.IsDefault = true
		if entry.Description != "" {
			t.WithDescription(entry.Description)
		}
		if entry.ImageURL != "" {
			t.WithImageURL(entry.ImageURL)
		}
		if err := d.CreateTemplate(t); err != nil {
			return fmt.Errorf("seed template %q: %w", entry.Name, err)
		}
	}
	return nil
}

// CreateTemplate stores a template. User templates carry is_default = 0.
func (d *DB) CreateTemplate(t *models.ExerciseTemplate) error {
	query := `
		INSERT INTO exercise_templates
			(id, name, muscle_group, image_url, description, is_default, type, category, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	isDefault := 0
	if t.IsDefault {
		isDefault = 1
	}
	_, err := d.exec(query,
		t.ID.String(),
		t.Name,
		t.MuscleGroup,
		t.ImageURL,
		t.Description,
		isDefault,
		string(t.Type),
		string(t.Category),
		t.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create template: %w", err)
	}
	return nil
}

// GetTemplate retrieves a template by ID.
func (d *DB) GetTemplate(id uuid.UUID) (*models.ExerciseTemplate, error) {
	query := templateSelect + ` WHERE id = ?`

	var t models.ExerciseTemplate
	var idStr, typeStr, categoryStr, createdAt string
	var imageURL, description sql.NullString
	var isDefault int

	err := d.queryRowScan(query, []interface{}{id.String()},
		&idStr, &t.Name, &t.MuscleGroup, &imageURL, &description,
		&isDefault, &typeStr, &categoryStr, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("get template: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("get template: %w", err)
	}

	fillTemplate(&t, idStr, imageURL, description, isDefault, typeStr, categoryStr, createdAt)
	return &t, nil
}

// ListTemplates retrieves the catalogue, optionally filtered by muscle group,
// grouped the way the library screen shows it.
func (d *DB) ListTemplates(muscleGroup string) ([]*models.ExerciseTemplate, error) {
	query := templateSelect
	var args []interface{}
	if muscleGroup != "" {
		query += ` WHERE muscle_group = ?`
		args = append(args, muscleGroup)
	}
	query += ` ORDER BY muscle_group ASC, name ASC`

	rows, err := d.query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	var templates []*models.ExerciseTemplate
	for rows.Next() {
		var t models.ExerciseTemplate
		var idStr, typeStr, categoryStr, createdAt string
		var imageURL, description sql.NullString
		var isDefault int

		err := rows.Scan(&idStr, &t.Name, &t.MuscleGroup, &imageURL, &description,
			&isDefault, &typeStr, &categoryStr, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}

		fillTemplate(&t, idStr, imageURL, description, isDefault, typeStr, categoryStr, createdAt)
		templates = append(templates, &t)
	}
	return templates, rows.Err()
}

// DeleteTemplate removes a user template. Default templates are filtered out
// by the statement itself, so deleting one is a silent no-op.
func (d *DB) DeleteTemplate(id uuid.UUID) error {
	_, err := d.exec(`DELETE FROM exercise_templates WHERE id = ? AND is_default = 0`, id.String())
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	return nil
}

// CreateExerciseFromTemplate instantiates a template as a concrete exercise
// under the given session. Fields are copied by value; the exercise keeps no
// link to its template and the two evolve independently.
func (d *DB) CreateExerciseFromTemplate(templateID, sessionID uuid.UUID) (*models.Exercise, error) {
	t, err := d.GetTemplate(templateID)
	if err != nil {
		return nil, fmt.Errorf("create exercise from template: %w", err)
	}

	e := models.NewExercise(sessionID, t.Name).WithMuscleGroup(t.MuscleGroup)
	if t.ImageURL != nil {
		e.WithImageURL(*t.ImageURL)
	}
	if t.Description != nil {
		e.WithDescription(*t.Description)
	}

	if err := d.CreateExercise(e); err != nil {
		return nil, fmt.Errorf("create exercise from template: %w", err)
	}
	return e, nil
}

const templateSelect = `
	SELECT id, name, muscle_group, image_url, description, is_default, type, category, created_at
	FROM exercise_templates`

// fillTemplate converts scanned columns into model fields.
func fillTemplate(t *models.ExerciseTemplate, idStr string,
	imageURL, description sql.NullString, isDefault int,
	typeStr, categoryStr, createdAt string) {
	t.ID, _ = uuid.Parse(idStr)
	if imageURL.Valid {
		t.ImageURL = &imageURL.String
	}
	if description.Valid {
		t.Description = &description.String
	}
	t.IsDefault = isDefault == 1
	t.Type = models.ExerciseType(typeStr)
	t.Category = models.Category(categoryStr)
	t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
}
