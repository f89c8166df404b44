package portfolio

// The catalog below is what the site shows when no database is configured.
// Both functions build a fresh slice on every call so no caller can alter
// what another request sees.

func staticProjects() []Project {
	return []Project{
		{
			ID:           "1",
			Title:        "AI Assistant Framework",
			Description:  "Created a versatile AI assistant framework with command-line capabilities and user privacy features",
			Technologies: []string{"Python", "TypeScript", "React", "FastAPI", "OpenAI API"},
			Image:        "/images/ai-assistant.jpg",
			URL:          "/projects/ai-assistant",
		},
		{
			ID:           "2",
			Title:        "Personal Portfolio Website",
			Description:  "Built a modern, responsive portfolio website using Next.js and Tailwind CSS",
			Technologies: []string{"Next.js", "TypeScript", "Tailwind CSS", "Vercel"},
			Image:        "/images/portfolio.jpg",
			URL:          "/projects/portfolio",
		},
	}
}

func staticSkills() []Skill {
	return []Skill{
		{Name: "Python", Level: 95, Category: "Programming Languages"},
		{Name: "TypeScript", Level: 90, Category: "Programming Languages"},
		{Name: "React", Level: 85, Category: "Frontend Frameworks"},
		{Name: "Next.js", Level: 80, Category: "Frontend Frameworks"},
		{Name: "TailwindCSS", Level: 90, Category: "Frontend Technologies"},
		{Name: "FastAPI", Level: 85, Category: "Backend Frameworks"},
		{Name: "OpenAI API", Level: 95, Category: "AI Integration"},
		{Name: "LangChain", Level: 85, Category: "AI Integration"},
		{Name: "AWS", Level: 80, Category: "Cloud Platforms"},
		{Name: "Docker", Level: 85, Category: "DevOps"},
	}
}
