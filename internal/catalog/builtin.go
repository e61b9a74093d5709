package catalog

// BuiltinDocument returns the catalog compiled into the binary.
func BuiltinDocument() Document {
	return Document{
		About:        builtinAbout(),
		Education:    builtinEducation(),
		Experience:   builtinExperience(),
		Projects:     builtinProjects(),
		Skills:       builtinSkills(),
		Hidden:       builtinHidden(),
		Extra:        builtinExtra(),
		Aliases:      builtinAliases(),
		Descriptions: builtinDescriptions(),
	}
}

func builtinAbout() AboutSection {
	return AboutSection{
		Name:     "Fahad Hossain",
		Title:    "Python Developer",
		Subtitle: "API Developer",
		Bio: "Python Developer with 2+ years specializing in backend systems and RESTful API development using Django and FastAPI. " +
			"Built scalable APIs for a US real estate platform, implementing custom OpenAPI/Swagger documentation and JWT authentication. " +
			"Experienced in PostgreSQL database design, Redis caching, and Docker containerization. " +
			"Integrated third-party APIs including payment gateways and mapping services. " +
			"Currently collaborating with AI teams at Outlier on LLM training data optimization and code quality enhancement " +
			"while expanding expertise in API gateway design and microservices architecture.",
		ShortBio:     "Python Developer specializing in backend systems and API development with Django and FastAPI.",
		Location:     "Dhaka, Bangladesh",
		Email:        "fahadshuvo33@gmail.com",
		Phone:        "+880 1798-533-533",
		GitHub:       "http://www.github.com/fahadshuvo33",
		LinkedIn:     "http://www.linkedin.com/in/fahadshuvo33",
		Portfolio:    "http://www.fahadshuvo.github.io",
		Availability: "Available for full-time opportunities",
		Languages:    []string{"Bengali (Native)", "English (Professional)"},
	}
}

func builtinEducation() EducationSection {
	return EducationSection{
		HighSchool: Schooling{
			Degree:      []string{"Higher Secondary Certificate (HSC)", "Secondary School Certificate (SSC)"},
			Duration:    []string{"2015 – 2017", "2013 – 2015"},
			Institution: "Al Amin Academy School and College",
			Location:    "Chandpur, Bangladesh",
		},
		College: Schooling{
			Degree:      "Bachelor of Science in Psychology",
			Duration:    "2017 – 2023",
			Institution: "Tejgaon College Dhaka",
			Location:    "Dhaka, Bangladesh",
		},
		Certifications: []Certification{
			{
				Name:   "IBM Data Science Professional Certificate",
				Issuer: "Coursera",
				Year:   "2023",
				Link:   "https://www.coursera.org/account/accomplishments/specialization/certificate/XXXXXX",
				Skills: []string{"Python", "Data Analysis", "Machine Learning", "SQL"},
			},
			{
				Name:   "IBM Data Analyst Professional Certificate",
				Issuer: "Coursera",
				Year:   "2023",
				Link:   "https://www.coursera.org/account/accomplishments/specialization/certificate/XXXXXX",
				Skills: []string{"Data Visualization", "Excel", "SQL", "Python"},
			},
		},
		OnlineCourses: []OnlineCourse{
			{Name: "Complete Python Bootcamp", Platform: "Udemy", Year: "2023", Instructor: "Jose Portilla"},
			{Name: "Django REST Framework", Platform: "Udemy", Year: "2023"},
			{Name: "FastAPI - The Complete Course", Platform: "Udemy", Year: "2024"},
		},
	}
}

func builtinExperience() ExperienceSection {
	outlier := Career{
		Employer:    "Outlier",
		Position:    "AI Training Specialist (Python)",
		Duration:    "2024 – Present",
		Location:    "Remote",
		Description: "Evaluating and improving LLM-generated Python code and training data.",
		Highlights: []string{
			"Reviewed and rewrote model responses for correctness and code quality",
			"Authored evaluation rubrics for backend and API coding tasks",
		},
		Technologies: []string{"Python", "FastAPI", "Django", "Git"},
		Type:         "Contract",
		HoursPerWeek: "20-30",
		Workplace:    "Remote",
	}
	realEstate := Career{
		Employer:    "US Real Estate Platform (via agency)",
		Position:    "Backend Developer",
		Duration:    "2022 – 2024",
		Location:    "Dhaka, Bangladesh",
		Description: "Built and maintained REST APIs backing a property listing platform.",
		Highlights: []string{
			"Designed PostgreSQL schemas and Redis caching for listing search",
			"Wrote custom OpenAPI/Swagger documentation and JWT authentication",
			"Integrated payment gateways and mapping services",
		},
		Technologies: []string{"Python", "Django", "Django REST Framework", "PostgreSQL", "Redis", "Docker"},
		Achievements: []string{"Cut average listing search latency by caching hot queries"},
		Type:         "Full-time",
		Workplace:    "Hybrid",
	}
	freelance := Career{
		Employer:     "Freelance",
		Position:     "Python Developer",
		Duration:     "2021 – 2022",
		Location:     "Remote",
		Description:  "Bots, scrapers and small APIs for individual clients.",
		Highlights:   []string{"Shipped Telegram and Discord bots", "Automated data collection pipelines"},
		Technologies: []string{"Python", "Asyncio", "Flask", "MongoDB"},
		Type:         "Freelance",
		Workplace:    "Remote",
	}

	return ExperienceSection{
		LatestRole:      outlier.Position,
		PresentEmployer: outlier.Employer,
		Availability:    "Open to full-time backend roles",
		RecentCareer:    []Career{outlier, realEstate},
		EntireCareer:    []Career{outlier, realEstate, freelance},
	}
}

func builtinProjects() ProjectsSection {
	return ProjectsSection{
		FullStack: []Project{{
			Name:        "Mitnity: Event Management SaaS",
			Description: "Developing multi-tenant event platform with dynamic subdomains.",
			Tech:        []string{"Django", "Docker", "PostgreSQL", "Redis", "Vue.js"},
			Category:    "Full Stack",
			Status:      "in-progress",
			GitHub:      "github.com/fahadshuvo33/mitnity",
			Images: &ProjectImages{
				Thumbnail: "/images/projects/mitnity/thumbnail.png",
				Screenshots: []string{
					"/images/projects/mitnity/screenshot-1.png",
					"/images/projects/mitnity/screenshot-2.png",
					"/images/projects/mitnity/screenshot-3.png",
				},
				Architecture: "/images/projects/mitnity/architecture.png",
			},
			Features: []string{
				"Multi-tenant architecture",
				"Event creation and management",
				"Ticketing system",
				"Real-time notifications",
			},
		}},
		Frontend: []Project{{
			Name:        "QuranVerse: Educational Web App",
			Description: "Interactive Svelte application with 6000+ verses",
			Tech:        []string{"Svelte", "Tailwind CSS", "Quran APIs"},
			Category:    "Frontend",
			Status:      "completed",
			GitHub:      "github.com/fahadshuvo33/quranverse",
			Live:        "quranverse.app",
			Images: &ProjectImages{
				Thumbnail: "/images/projects/quranverse/thumbnail.png",
				Screenshots: []string{
					"/images/projects/quranverse/screenshot-1.png",
					"/images/projects/quranverse/screenshot-2.png",
					"/images/projects/quranverse/screenshot-3.png",
				},
				Demo: "/images/projects/quranverse/demo.gif",
			},
		}},
		Bots: []Project{{
			Name:        "QuoteBot: Multi-Platform Bot",
			Description: "Cross-platform bot serving 200+ daily inspirational quotes across Telegram and Discord",
			Tech:        []string{"Python", "Telegram Bot API", "Discord Bot API", "Asyncio", "API Ninja"},
			Category:    "Bot Development",
			Status:      "maintained",
			GitHub:      "github.com/fahadshuvo33/quotebot",
			Features: []string{
				"Multi-platform support (Telegram & Discord)",
				"200+ daily quotes",
				"Async architecture for performance",
				"Category-based quote filtering",
				"Admin commands for bot management",
			},
		}},
	}
}

func builtinSkills() SkillsSection {
	return SkillsSection{
		ProgrammingLanguages: []string{"Python", "Java", "JavaScript", "TypeScript", "HTML", "CSS", "SQL"},
		Frameworks:           []string{"Django", "Flask", "FastApi", "AioHttp"},
		Databases:            []string{"PostgreSQL", "MongoDB", "Redis", "Django ORM", "SQLAlchemy"},
		APIs:                 []string{"RESTful API", "GraphQL", "WebSockets"},
		DevOps: []string{
			"Docker",
			"Docker Compose",
			"GitHub Actions",
			"CI/CD Pipelines",
			"Nginx",
			"Linux",
			"Server Deployment",
		},
		Tools: []string{"Git", "GitHub", "Postman", "VS Code", "Jira", "Swagger/OpenAPI", "Docker Desktop"},
	}
}
