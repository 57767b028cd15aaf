package content

var (
	AboutLead = `Versatile Full-Stack Software Engineer with a pronounced aptitude for architecting and deploying
	scalable, maintainable, and performance-optimized digital systems across both web and mobile
	platforms. Demonstrated mastery in utilizing contemporary frameworks including React, Svelte, and
	FastAPI.`

	AboutFollow = `With a keen emphasis on modern engineering principles, containerization, and secure deployment
	methodologies, I excel at translating complex requirements into modular, extensible codebases through
	agile collaboration and systematic design.`

	MasterlyText = `Comprehensive e-learning environment with dynamic resume generation, quiz creation, and
	peer-to-peer connectivity. Built with React, Tailwind CSS, and FastAPI for real-time analytics and
	performance tracking.`

	MicroservicesText = `Scalable microservices system serving 10,000+ users with Docker containerization, CI/CD
	pipelines, and 40% reduction in system downtime. Implemented robust SSL/TLS certificate management.`

	AnalyticsText = `Real-time analytics platform with machine learning insights, automated reporting, and
	interactive data visualization. Integrated with multiple data sources and APIs.`

	DeFiText = `Decentralized finance platform with smart contract integration, real-time trading, and portfolio
	management. Built with modern Web3 technologies and secure blockchain interactions.`

	CommerceText = `Cross-platform mobile application with 50% improvement in UX efficiency, payment gateway
	integration, real-time notifications, and advanced product catalog management.`

	AutomationText = `Enterprise automation platform using n8n and custom workflows, reducing manual processes by
	70%. Integrated with multiple third-party services and APIs.`
)
