package service

import (
	"github.com/google/uuid"

	"learnroute/internal/model"
)

// DefaultCategory is used for any category without its own template.
const DefaultCategory = "web-development"

type stepTemplate struct {
	title       string
	description string
	resourceIDs []uint
}

var roadmapTemplates = map[string][]stepTemplate{
	"web-development": {
		{"HTML & CSS Fundamentals", "Learn the basics of HTML5 and CSS3, the building blocks of web development.", []uint{1, 2}},
		{"JavaScript Essentials", "Master the core concepts of JavaScript programming language.", []uint{2, 3}},
		{"Frontend Frameworks", "Learn popular frontend frameworks like React, Angular, or Vue.", []uint{4, 5}},
		{"Backend Development", "Explore server-side programming with Node.js, Express, and databases.", []uint{6, 7}},
		{"Responsive Design & Accessibility", "Create websites that work well on all devices and are accessible to everyone.", []uint{1, 3}},
		{"API Development & Integration", "Learn to create and consume APIs for connecting services and data sources.", []uint{5, 7}},
		{"Deployment & DevOps", "Understand how to deploy websites and set up continuous integration.", []uint{8, 7}},
		{"Advanced Frontend Techniques", "Master advanced concepts like state management, performance optimization, and animations.", []uint{4, 6}},
	},
	"data-science": {
		{"Python Basics", "Learn the fundamentals of Python programming language for data analysis.", []uint{4, 8}},
		{"Data Manipulation with Pandas", "Master data cleaning, transformation, and analysis with Pandas library.", []uint{3, 5}},
		{"Data Visualization", "Learn to create meaningful visualizations with Matplotlib, Seaborn, and Plotly.", []uint{2, 6}},
		{"SQL & Database Management", "Understand how to query and manage databases for data extraction.", []uint{1, 7}},
		{"Statistical Analysis", "Master statistical concepts and hypothesis testing for data interpretation.", []uint{2, 4}},
		{"Machine Learning Basics", "Explore fundamental machine learning algorithms and techniques.", []uint{3, 8}},
		{"Big Data Technologies", "Learn tools and frameworks for handling large datasets.", []uint{1, 5}},
		{"Data Science Projects", "Apply your skills to real-world data science projects and build a portfolio.", []uint{6, 7}},
	},
	"machine-learning": {
		{"Mathematics for Machine Learning", "Build a strong foundation in linear algebra, calculus, and probability.", []uint{1, 3}},
		{"Python for Machine Learning", "Learn Python and essential libraries like NumPy and SciPy.", []uint{2, 4}},
		{"Supervised Learning Algorithms", "Master regression, classification, and ensemble techniques.", []uint{5, 7}},
		{"Unsupervised Learning", "Explore clustering, dimensionality reduction, and association analysis.", []uint{6, 8}},
		{"Neural Networks & Deep Learning", "Learn the fundamentals of neural networks and deep learning architectures.", []uint{1, 5}},
		{"Computer Vision", "Understand techniques for image recognition and processing.", []uint{2, 6}},
		{"Natural Language Processing", "Master techniques for working with text data and language models.", []uint{3, 7}},
		{"ML Operations & Deployment", "Learn how to deploy and maintain machine learning models in production.", []uint{4, 8}},
	},
	"mobile-development": {
		{"Mobile Development Fundamentals", "Understand the basics of mobile app development and platforms.", []uint{1, 2}},
		{"Swift & iOS Development", "Learn Swift programming language and iOS app development.", []uint{3, 4}},
		{"Kotlin & Android Development", "Master Kotlin and Android Studio for building Android apps.", []uint{5, 6}},
		{"Cross-Platform Development with Flutter", "Learn to build apps for multiple platforms using Flutter and Dart.", []uint{7, 8}},
		{"Mobile UI/UX Design", "Master the principles of designing intuitive mobile interfaces.", []uint{1, 5}},
		{"Mobile Backend Services", "Understand how to integrate with backend services and APIs.", []uint{2, 6}},
		{"Local Data Storage", "Learn techniques for storing and managing data on mobile devices.", []uint{3, 7}},
		{"App Deployment & Publishing", "Learn how to prepare, test, and publish your app to app stores.", []uint{4, 8}},
	},
	"blockchain": {
		{"Blockchain Fundamentals", "Understand the basic concepts and principles of blockchain technology.", []uint{1, 2}},
		{"Cryptography Basics", "Learn essential cryptographic concepts that power blockchain security.", []uint{3, 4}},
		{"Bitcoin Protocol", "Understand how Bitcoin works as the first blockchain implementation.", []uint{5, 6}},
		{"Ethereum & Smart Contracts", "Learn about Ethereum and how to write smart contracts with Solidity.", []uint{7, 8}},
		{"Decentralized Applications (DApps)", "Build applications that run on decentralized blockchain networks.", []uint{1, 5}},
		{"Web3 Development", "Learn to create web applications that interact with blockchain networks.", []uint{2, 6}},
		{"Tokenomics & NFTs", "Understand token economics, cryptocurrency, and non-fungible tokens.", []uint{3, 7}},
		{"Blockchain Security & Best Practices", "Master security considerations and best practices for blockchain development.", []uint{4, 8}},
	},
	"cloud-computing": {
		{"Cloud Computing Fundamentals", "Understand the basics of cloud services, models, and providers.", []uint{1, 2}},
		{"AWS Essentials", "Learn the fundamental services and architecture of Amazon Web Services.", []uint{3, 4}},
		{"Microsoft Azure Basics", "Explore Microsoft's cloud platform and its core services.", []uint{5, 6}},
		{"Google Cloud Platform", "Learn about Google's cloud infrastructure and services.", []uint{7, 8}},
		{"Cloud Storage & Databases", "Master various storage solutions and database services in the cloud.", []uint{1, 5}},
		{"Serverless Computing", "Understand serverless architecture and Function as a Service (FaaS).", []uint{2, 6}},
		{"Cloud Security", "Learn security best practices and compliance in cloud environments.", []uint{3, 7}},
		{"Cloud Cost Optimization", "Master strategies for managing and optimizing cloud costs.", []uint{4, 8}},
	},
	"devops": {
		{"DevOps Fundamentals", "Understand the DevOps culture, principles, and practices.", []uint{1, 2}},
		{"Linux & Scripting", "Learn Linux administration and shell scripting fundamentals.", []uint{3, 4}},
		{"Version Control with Git", "Master Git for source code management and collaboration.", []uint{5, 6}},
		{"Containerization with Docker", "Learn how to containerize applications using Docker.", []uint{7, 8}},
		{"Container Orchestration with Kubernetes", "Master deploying and managing containers at scale with Kubernetes.", []uint{1, 5}},
		{"CI/CD Pipelines", "Set up continuous integration and continuous deployment pipelines.", []uint{2, 6}},
		{"Infrastructure as Code", "Learn tools like Terraform and CloudFormation for infrastructure automation.", []uint{3, 7}},
		{"Monitoring & Observability", "Implement systems for monitoring, logging, and observability.", []uint{4, 8}},
	},
}

// Categories lists the categories that have a dedicated template.
func Categories() []string {
	return []string{
		"web-development",
		"data-science",
		"machine-learning",
		"mobile-development",
		"blockchain",
		"cloud-computing",
		"devops",
	}
}

// BuildSteps instantiates the template for category with fresh step ids,
// every step incomplete. Unknown categories get the web-development steps.
func BuildSteps(category string) []model.RoadmapStep {
	tmpl, ok := roadmapTemplates[category]
	if !ok {
		tmpl = roadmapTemplates[DefaultCategory]
	}
	steps := make([]model.RoadmapStep, 0, len(tmpl))
	for _, t := range tmpl {
		ids := make([]uint, len(t.resourceIDs))
		copy(ids, t.resourceIDs)
		steps = append(steps, model.RoadmapStep{
			ID:          uuid.NewString(),
			Title:       t.title,
			Description: t.description,
			ResourceIDs: ids,
			Completed:   false,
		})
	}
	return steps
}
