package domain

// DemoTasks returns the sample board used by "init --demo".
// Drafts are listed oldest first; adding them in order leaves
// "Design new landing page" at the top of the collection.
func DemoTasks() []TaskDraft {
	return []TaskDraft{
		{
			Text:     "Set up CI/CD pipeline",
			Notes:    "Configure automated testing and deployment",
			Status:   StatusTodo,
			Priority: PriorityLow,
			Assignee: "Chris Lee",
			DueDate:  "2026-01-25",
			Category: "Work",
			Tags:     []string{"DevOps"},
		},
		{
			Text:     "Fix mobile responsiveness",
			Notes:    "Ensure all pages work correctly on mobile devices",
			Status:   StatusDone,
			Priority: PriorityMedium,
			Assignee: "Alex Rivera",
			DueDate:  "2026-01-15",
			Category: "Work",
			Tags:     []string{"Frontend", "Mobile"},
		},
		{
			Text:     "Write API documentation",
			Notes:    "Document all REST API endpoints with examples",
			Status:   StatusReview,
			Priority: PriorityMedium,
			Assignee: "Emily Davis",
			DueDate:  "2026-01-18",
			Category: "Work",
			Tags:     []string{"Documentation"},
		},
		{
			Text:     "Implement user authentication",
			Notes:    "Add JWT-based authentication to the API",
			Status:   StatusTodo,
			Priority: PriorityHigh,
			Assignee: "Mike Johnson",
			DueDate:  "2026-01-22",
			Category: "Work",
			Tags:     []string{"Backend", "Security"},
		},
		{
			Text:     "Design new landing page",
			Notes:    "Create wireframes and mockups for the new marketing site",
			Status:   StatusInProgress,
			Priority: PriorityHigh,
			Assignee: "Sarah Chen",
			DueDate:  "2026-01-20",
			Category: "Work",
			Tags:     []string{"Design", "Marketing"},
		},
	}
}
