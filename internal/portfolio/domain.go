package portfolio

import "fmt"

// Skill levels are percentages.
const (
	MinSkillLevel = 0
	MaxSkillLevel = 100
)

// Project is a showcased piece of work.
type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	// Image and URL are paths on the frontend site.
	Image string `json:"image"`
	URL   string `json:"url"`
}

// Skill is a named proficiency grouped by category.
type Skill struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Category string `json:"category"`
}

// Validate checks that the level is a percentage.
func (s Skill) Validate() error {
	if s.Level < MinSkillLevel || s.Level > MaxSkillLevel {
		return fmt.Errorf("skill %q has level %d outside [%d,%d]", s.Name, s.Level, MinSkillLevel, MaxSkillLevel)
	}
	return nil
}
