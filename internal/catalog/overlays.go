package catalog

// Overlay is a flat name -> value mapping consulted in addition to a category's public data.
type Overlay map[string]any

func builtinHidden() map[Category]Overlay {
	return map[Category]Overlay{
		About: {
			"whatsapp": "+880 1798-533-533",
			"telegram": "@fahadshuvo",
			"discord":  "fahad#1234",
			"skype":    "fahadshuvo33",
			"calendly": "calendly.com/fahadshuvo",
			"zoom":     "zoom.us/my/fahadshuvo",
			"nickname": "Shuvo",
			"age":      "Let's keep it a mystery 😉",
			"birthday": "You can guess it 😉",
			"hometown": "Chandpur, Bangladesh",
			"coffee":   "Black coffee, no sugar ☕",
			"editor":   "VS Code with Dracula theme",
			"os":       "Ubuntu 22.04 LTS",
		},
		Education: {
			"favorite_subject": "Mathematics",
			"favorite_teacher": "Nazrul Islam - My high school math teacher",
		},
		Experience: {
			"salary":      "Open to discuss",
			"rate":        "$20-60/hour",
			"preferred":   "Remote/Hybrid/Onsite",
			"sponsorship": "Open to sponsorship",
			"relocation":  "Open to relocation",
			"workstyle":   "Agile/Scrum",
			"teamsize":    "Any size, prefer medium teams",
			"timezone":    "Flexible, can adapt to team needs",
		},
		Skills: {
			"learning": []string{"Aws", "gRpc", "Kubernetes", "LangChain"},
			"weakness": "Frontend animations 😅",
			"strength": "API optimization",
			"ai_tools": []string{"ChatGPT", "Copilot", "Claude Code", "Agentic-AI"},
		},
		Projects: {
			"favorite_project": "Mitnity - Most challenging",
			"bugs_fixed":       "200+ bugs squashed",
			"failed_project":   "i failed with a lot of things, but i learned a lot from them",
		},
	}
}

func builtinExtra() Overlay {
	return Overlay{
		"python":     "5+ years building scalable backends and APIs with Python. Expert in async programming, performance optimization, and clean code practices.",
		"javascript": "Full-stack JavaScript development with modern ES6+ features, TypeScript, and responsive web applications.",
		"django":     "Building robust web apps and REST APIs with Django & DRF. Skilled in ORM, authentication, and performance tuning.",
		"fastapi":    "Creating high-performance async APIs with FastAPI, leveraging Python type hints and automatic docs.",
		"vue":        "Building interactive UIs with Vue.js, Vuex for state management, and Vue Router.",
		"react":      "Developing component-based UIs with React, hooks, and modern state management solutions.",
		"postgresql": "Designing and optimizing relational databases with PostgreSQL, including query optimization and indexing.",
		"mongodb":    "Working with NoSQL databases, document modeling, and aggregation pipelines in MongoDB.",
		"docker":     "Containerizing applications with Docker and managing multi-container environments with Docker Compose.",
		"git":        "Version control with Git, including branching strategies and collaborative workflows on GitHub/GitLab.",
		"postman":    "API testing and documentation using Postman collections and environments.",
		"vscode":     "Customizing VS Code for efficient development with extensions and keyboard shortcuts.",
		"rest":       "Designing RESTful APIs following best practices for endpoints, status codes, and versioning.",
		"graphql":    "Building flexible APIs with GraphQL, including schema design and resolver implementation.",
		"agile":      "Experience working in Agile/Scrum environments with sprints, standups, and retrospectives.",
		"tdd":        "Practicing Test-Driven Development to ensure code quality and maintainability.",
	}
}
