package portfolio

//go:generate mockgen -destination=./service_mock_test.go -package=portfolio -source=service.go Service

import (
	"context"
	"fmt"
	"strings"
)

// Service defines the business logic for the portfolio catalog.
type Service interface {
	// GetProjects returns the showcased projects in display order.
	GetProjects(ctx context.Context) ([]Project, error)
	// GetSkills returns skills, optionally limited to a category.
	GetSkills(ctx context.Context, category string) ([]Skill, error)
}

// service is the concrete implementation of the Service interface.
type service struct {
	repo Repository
}

// NewService is the constructor for the service injecting the repository.
func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

// GetProjects is a pass through to the repository.
func (s *service) GetProjects(ctx context.Context) ([]Project, error) {
	projects, err := s.repo.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list projects: %w", err)
	}
	return projects, nil
}

// GetSkills fetches skills and refuses to serve a level that is not a percentage.
func (s *service) GetSkills(ctx context.Context, category string) ([]Skill, error) {
	skills, err := s.repo.ListSkills(ctx, strings.TrimSpace(category))
	if err != nil {
		return nil, fmt.Errorf("could not list skills: %w", err)
	}

	for _, skill := range skills {
		if err := skill.Validate(); err != nil {
			return nil, fmt.Errorf("invalid skill in catalog: %w", err)
		}
	}

	return skills, nil
}
