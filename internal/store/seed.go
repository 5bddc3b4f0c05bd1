package store

import "github.com/cuongbtq/career-tracker/internal/domain"

// MockApplications returns the demo data the dashboard starts with
func MockApplications() []domain.Application {
	return []domain.Application{
		{
			ID:          "1",
			Title:       "Frontend Developer",
			Company:     "TechCorp Inc.",
			Location:    "San Francisco, CA",
			Status:      domain.StatusInterview,
			Salary:      "$80,000 - $100,000",
			DateApplied: "2024-01-15",
			Description: "Looking for a passionate frontend developer to join our team.",
			Notes:       "Second round interview scheduled for next week",
		},
		{
			ID:          "2",
			Title:       "Full Stack Engineer",
			Company:     "StartupXYZ",
			Location:    "Remote",
			Status:      domain.StatusApplied,
			Salary:      "$90,000 - $120,000",
			DateApplied: "2024-01-10",
			Description: "Full stack role with React and Node.js focus.",
		},
		{
			ID:          "3",
			Title:       "UI/UX Designer",
			Company:     "Design Studio",
			Location:    "New York, NY",
			Status:      domain.StatusOffer,
			Salary:      "$70,000 - $85,000",
			DateApplied: "2024-01-05",
			Description: "Creative UI/UX designer position in a fast-paced environment.",
		},
		{
			ID:          "4",
			Title:       "Backend Developer",
			Company:     "Enterprise Solutions",
			Location:    "Austin, TX",
			Status:      domain.StatusRejected,
			Salary:      "$95,000 - $110,000",
			DateApplied: "2024-01-01",
			Description: "Backend developer role focusing on scalable systems.",
		},
		{
			ID:          "5",
			Title:       "React Developer",
			Company:     "Innovation Labs",
			Location:    "Seattle, WA",
			Status:      domain.StatusInterview,
			Salary:      "$85,000 - $105,000",
			DateApplied: "2023-12-28",
			Description: "React specialist for modern web applications.",
		},
	}
}
