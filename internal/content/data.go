package content

var owner = Profile{
	Name:        "Aaqil Khan",
	Brand:       "Solutions with AAQIL",
	Tagline:     "Software Development Engineer | Scalable Architecture Specialist | AI & Web3 Innovator",
	Title:       "Solutions With Aaqil | Full-Stack Developer & AI Enthusiast",
	Description: "Portfolio of Aaqil Khan, a versatile Full-Stack Developer specializing in React, Svelte, FastAPI, and AI/ML solutions.",
	About:       []string{AboutLead, AboutFollow},
	Stats: []Stat{
		{Label: "Projects Delivered", Value: "6+"},
		{Label: "Years Experience", Value: "3+"},
		{Label: "Happy Clients", Value: "15+"},
	},
	Contact: ContactDetails{
		Email:    "aaqilkhan.work@gmail.com",
		Phone:    "+91-8989680289",
		Location: "Indore, Madhya Pradesh, India",
	},
	Social: []Link{
		{Key: "github", Label: "GitHub", URL: "https://github.com/ABDULAAQILKHAN"},
		{Key: "linkedin", Label: "LinkedIn", URL: "https://www.linkedin.com/in/aaqil-khan-b45135170"},
		{Key: "email", Label: "Email", URL: "mailto:aaqilpro99@gmail.com"},
		{Key: "phone", Label: "Phone", URL: "tel:+918989680289"},
	},
}

var skills = []Skill{
	{Name: "React", Category: Frontend},
	{Name: "Svelte", Category: Frontend},
	{Name: "Next.js", Category: Frontend},
	{Name: "TypeScript", Category: Frontend},
	{Name: "Tailwind CSS", Category: Frontend},
	{Name: "Redux Toolkit", Category: Frontend},

	{Name: "FastAPI", Category: Backend},
	{Name: "NestJS", Category: Backend},
	{Name: "Express.js", Category: Backend},
	{Name: "Python", Category: Backend},
	{Name: "Node.js", Category: Backend},
	{Name: "PostgreSQL", Category: Backend},
	{Name: "MongoDB", Category: Backend},
	{Name: "MySQL", Category: Backend},
	{Name: "Springboot", Category: Backend},

	{Name: "React Native", Category: Mobile},
	{Name: "Flutter", Category: Mobile},

	{Name: "Docker", Category: DevOps},
	{Name: "Kubernetes", Category: DevOps},
	{Name: "AWS", Category: DevOps},
	{Name: "CI/CD", Category: DevOps},
	{Name: "Git/GitHub", Category: DevOps},

	{Name: "TensorFlow", Category: AIML},
	{Name: "OpenAI API", Category: AIML},
	{Name: "LangChain", Category: AIML},
	{Name: "Hugging Face", Category: AIML},
	{Name: "Computer Vision", Category: AIML},

	{Name: "Ethereum", Category: Web3},
	{Name: "Solidity", Category: Web3},
	{Name: "Web3.js", Category: Web3},
	{Name: "MetaMask", Category: Web3},
	{Name: "Smart Contracts", Category: Web3},

	{Name: "n8n", Category: Automation},
	{Name: "Zapier", Category: Automation},
	{Name: "Selenium", Category: Automation},
	{Name: "Puppeteer", Category: Automation},

	{Name: "Vercel", Category: Cloud},
	{Name: "Netlify", Category: Cloud},
	{Name: "Firebase", Category: Cloud},
	{Name: "Supabase", Category: Cloud},
}

var projects = []Project{
	{
		ID:           "1",
		Name:         "Masterly Learning Platform",
		Description:  MasterlyText,
		Technologies: []string{"React", "FastAPI", "Tailwind CSS", "PostgreSQL", "WebSocket", "Docker"},
		SourceURL:    "https://github.com",
		LiveURL:      "https://masterly.com",
		Featured:     true,
	},
	{
		ID:           "2",
		Name:         "Enterprise Microservices Architecture",
		Description:  MicroservicesText,
		Technologies: []string{"Docker", "Kubernetes", "FastAPI", "PostgreSQL", "Redis", "AWS"},
		SourceURL:    "https://github.com",
		Featured:     true,
	},
	{
		ID:           "3",
		Name:         "AI-Powered Analytics Dashboard",
		Description:  AnalyticsText,
		Technologies: []string{"React", "Python", "TensorFlow", "D3.js", "MongoDB", "WebSocket"},
		SourceURL:    "https://github.com",
		LiveURL:      "https://analytics.com",
	},
	{
		ID:           "4",
		Name:         "Web3 DeFi Trading Platform",
		Description:  DeFiText,
		Technologies: []string{"React", "Solidity", "Web3.js", "Ethereum", "MetaMask", "Node.js"},
		SourceURL:    "https://github.com",
		LiveURL:      "https://defi-platform.com",
	},
	{
		ID:           "5",
		Name:         "Mobile E-Commerce Solution",
		Description:  CommerceText,
		Technologies: []string{"React Native", "Node.js", "Express", "MongoDB", "Stripe", "Firebase"},
		SourceURL:    "https://github.com",
	},
	{
		ID:           "6",
		Name:         "Automation Workflow Engine",
		Description:  AutomationText,
		Technologies: []string{"n8n", "Node.js", "PostgreSQL", "Docker", "REST APIs", "Webhooks"},
		SourceURL:    "https://github.com",
		LiveURL:      "https://automation.com",
	},
}

var experiences = []Experience{
	{
		ID:       "1",
		Company:  "Techdome Solutions Pvt. Ltd",
		Role:     "Associate Software Development Engineer",
		Duration: "May 2023 – Present",
		Location: "Indore, India",
		Achievements: []string{
			"Spearheaded end-to-end delivery of six multifaceted software solutions using React, Svelte, FastAPI, NestJS, and Express",
			"Engineered RESTful APIs and responsive front-end interfaces, achieving 30% improvement in user engagement metrics",
			"Established Docker-based microservice architecture, facilitating streamlined CI/CD pipelines and enhancing system modularity",
			"Orchestrated integration of PostgreSQL and MongoDB, optimizing data transactions for scalable, low-latency storage solutions",
			"Led hardening of self-hosted enterprise application infrastructure with robust SSL/TLS certificate management",
			"Contributed to architecture-level design decisions for scalable system modules",
		},
		Technologies: []string{"React", "Svelte", "FastAPI", "NestJS", "Docker", "PostgreSQL", "MongoDB"},
	},
	{
		ID:       "2",
		Company:  "Blaccskull Platforms Pvt. Ltd",
		Role:     "Full Stack Developer Intern",
		Duration: "March 2023 – April 2024",
		Location: "Remote",
		Achievements: []string{
			"Designed and implemented responsive web/mobile interfaces using React and React Native, enhancing mobile UX efficiency by 50%",
			"Developed and optimized backend logic using Node.js and Express, resulting in 25% reduction in response latency",
			"Employed Git-based workflows within distributed team context, managing parallel development streams via branching strategies",
			"Participated in structured code reviews and maintained high code quality standards",
		},
		Technologies: []string{"React", "React Native", "Node.js", "Express", "Git"},
	},
}
