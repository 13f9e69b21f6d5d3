package service

import "learnroute/internal/model"

// sampleCatalog is inserted, in this order, into an empty resources table.
// Template steps refer to these rows by their ids 1..8.
func sampleCatalog() []*model.Resource {
	return []*model.Resource{
		{
			Title:       "Introduction to Web Development",
			Type:        model.ResourceTypeVideo,
			URL:         "https://www.youtube.com/watch?v=example1",
			Category:    "web-development",
			Description: "Learn the basics of HTML, CSS, and JavaScript",
			Thumbnail:   "https://via.placeholder.com/300x200?text=Web+Development",
			Duration:    "15:30",
			Difficulty:  model.DifficultyBeginner,
			PointsValue: 10,
		},
		{
			Title:       "Advanced React Patterns",
			Type:        model.ResourceTypeVideo,
			URL:         "https://www.youtube.com/watch?v=example2",
			Category:    "web-development",
			Description: "Master advanced React patterns and techniques",
			Thumbnail:   "https://via.placeholder.com/300x200?text=React+Patterns",
			Duration:    "22:15",
			Difficulty:  model.DifficultyIntermediate,
			PointsValue: 20,
		},
		{
			Title:       "Getting Started with Machine Learning",
			Type:        model.ResourceTypeArticle,
			URL:         "https://example.com/machine-learning-intro",
			Category:    "machine-learning",
			Description: "A comprehensive guide to get started with ML concepts",
			Thumbnail:   "https://via.placeholder.com/300x200?text=Machine+Learning",
			Duration:    "10 min read",
			Difficulty:  model.DifficultyBeginner,
			PointsValue: 10,
		},
		{
			Title:       "Python for Data Science",
			Type:        model.ResourceTypeVideo,
			URL:         "https://www.youtube.com/watch?v=example3",
			Category:    "data-science",
			Description: "Learn Python basics for data analysis and visualization",
			Thumbnail:   "https://via.placeholder.com/300x200?text=Python+Data+Science",
			Duration:    "30:45",
			Difficulty:  model.DifficultyBeginner,
			PointsValue: 15,
		},
		{
			Title:       "Understanding Blockchain Technology",
			Type:        model.ResourceTypeArticle,
			URL:         "https://example.com/blockchain-explained",
			Category:    "blockchain",
			Description: "Detailed explanation of blockchain technology and applications",
			Thumbnail:   "https://via.placeholder.com/300x200?text=Blockchain",
			Duration:    "15 min read",
			Difficulty:  model.DifficultyIntermediate,
			PointsValue: 20,
		},
		{
			Title:       "Mobile App Development with Flutter",
			Type:        model.ResourceTypeVideo,
			URL:         "https://www.youtube.com/watch?v=example4",
			Category:    "mobile-development",
			Description: "Build cross-platform mobile apps with Flutter framework",
			Thumbnail:   "https://via.placeholder.com/300x200?text=Flutter+Dev",
			Duration:    "45:20",
			Difficulty:  model.DifficultyIntermediate,
			PointsValue: 25,
		},
		{
			Title:       "Introduction to Cloud Computing",
			Type:        model.ResourceTypeArticle,
			URL:         "https://example.com/cloud-computing-basics",
			Category:    "cloud-computing",
			Description: "Learn the fundamentals of cloud services and deployment models",
			Thumbnail:   "https://via.placeholder.com/300x200?text=Cloud+Computing",
			Duration:    "12 min read",
			Difficulty:  model.DifficultyBeginner,
			PointsValue: 15,
		},
		{
			Title:       "DevOps Pipeline Automation",
			Type:        model.ResourceTypeVideo,
			URL:         "https://www.youtube.com/watch?v=example5",
			Category:    "devops",
			Description: "Automate your development workflow with CI/CD pipelines",
			Thumbnail:   "https://via.placeholder.com/300x200?text=DevOps",
			Duration:    "38:10",
			Difficulty:  model.DifficultyAdvanced,
			PointsValue: 30,
		},
	}
}
