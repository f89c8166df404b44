package portfolio

//go:generate mockgen -destination=./repository_mock_test.go -package=portfolio -source=repository.go Repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
)

// Repository is the interface for reading the portfolio catalog.
type Repository interface {
	// ListProjects returns all projects in display order.
	ListProjects(ctx context.Context) ([]Project, error)
	// ListSkills returns skills in display order. An empty category means all.
	ListSkills(ctx context.Context, category string) ([]Skill, error)
}

// staticRepository serves the built-in catalog.
type staticRepository struct{}

// NewStaticRepository returns a Repository backed by the built-in catalog.
func NewStaticRepository() Repository {
	return &staticRepository{}
}

func (sr *staticRepository) ListProjects(ctx context.Context) ([]Project, error) {
	return staticProjects(), nil
}

func (sr *staticRepository) ListSkills(ctx context.Context, category string) ([]Skill, error) {
	skills := staticSkills()
	if category == "" {
		return skills, nil
	}

	filtered := make([]Skill, 0, len(skills))
	for _, skill := range skills {
		if skill.Category == category {
			filtered = append(filtered, skill)
		}
	}
	return filtered, nil
}

// postgresRepository reads the catalog from the projects and skills tables.
type postgresRepository struct {
	db *sql.DB // The database connection pool.
	// types decodes Postgres arrays that database/sql cannot scan on its own.
	types *pgtype.Map
}

// NewPostgresRepository is the constructor for the database backed repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{
		db:    db,
		types: pgtype.NewMap(),
	}
}

// ListProjects selects every project row ordered for display.
func (pr *postgresRepository) ListProjects(ctx context.Context) ([]Project, error) {
	query := `
		SELECT id, title, description, technologies, image, url
		FROM projects
		ORDER BY display_order, id
	`

	rows, err := pr.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not query projects: %w", err)
	}
	defer rows.Close()

	projects := []Project{}
	for rows.Next() {
		var p Project
		if err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Description,
			pr.types.SQLScanner(&p.Technologies),
			&p.Image,
			&p.URL,
		); err != nil {
			return nil, fmt.Errorf("could not scan project: %w", err)
		}
		if p.Technologies == nil {
			p.Technologies = []string{}
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not read projects: %w", err)
	}

	return projects, nil
}

// ListSkills selects skill rows, optionally restricted to one category.
func (pr *postgresRepository) ListSkills(ctx context.Context, category string) ([]Skill, error) {
	query := `
		SELECT name, level, category
		FROM skills
		WHERE ($1 = '' OR category = $1)
		ORDER BY display_order, name
	`

	rows, err := pr.db.QueryContext(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("could not query skills: %w", err)
	}
	defer rows.Close()

	skills := []Skill{}
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.Name, &s.Level, &s.Category); err != nil {
			return nil, fmt.Errorf("could not scan skill: %w", err)
		}
		skills = append(skills, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not read skills: %w", err)
	}

	return skills, nil
}
