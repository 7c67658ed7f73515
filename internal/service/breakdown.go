package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/limbo/ascent/pkg/entity"
)

// GoalDomain is the result of classifying a goal title. Classification
// happens exactly once per title, so the duration suggester and the chunk
// generator can never disagree on an ambiguous title.
type GoalDomain int

const (
	DomainGeneric GoalDomain = iota
	DomainDataScience
	DomainAlgorithms
	DomainFullStack
)

var domainKeywords = []struct {
	domain   GoalDomain
	keywords []string
}{
	{DomainDataScience, []string{"machine learning", "data scientist"}},
	{DomainAlgorithms, []string{"dsa", "algorithms"}},
	{DomainFullStack, []string{"full-stack", "full stack", "web development"}},
}

// ClassifyGoal matches the lower-cased title against the keyword table.
// First hit wins: data science before algorithms before full stack.
func ClassifyGoal(title string) GoalDomain {
	t := strings.ToLower(title)
	for _, entry := range domainKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(t, kw) {
				return entry.domain
			}
		}
	}
	return DomainGeneric
}

// SuggestDurationWeeks proposes a goal duration from the title alone.
// Total: every title maps to a positive week count.
func SuggestDurationWeeks(title string) int {
	switch ClassifyGoal(title) {
	case DomainDataScience:
		return 16
	case DomainAlgorithms:
		return 10
	case DomainFullStack:
		return 12
	default:
		return 8
	}
}

type phase struct {
	title string
	desc  string
}

var dataSciencePhases = []phase{
	{"Statistics & Math Foundations", "Review basic statistics, probability, and linear algebra concepts"},
	{"Python Programming", "Master Python basics, NumPy, and Pandas for data manipulation"},
	{"Data Visualization", "Learn Matplotlib, Seaborn, and create compelling visualizations"},
	{"Data Cleaning & EDA", "Practice data cleaning, exploratory data analysis techniques"},
	{"Machine Learning Basics", "Introduction to supervised learning, train/test splits"},
	{"Linear Regression", "Implement linear regression from scratch and using libraries"},
	{"Classification Algorithms", "Logistic regression, decision trees, random forests"},
	{"Model Evaluation", "Cross-validation, metrics, bias-variance tradeoff"},
	{"Feature Engineering", "Feature selection, scaling, encoding categorical variables"},
	{"Advanced Algorithms", "SVM, KNN, ensemble methods"},
	{"Unsupervised Learning", "Clustering, dimensionality reduction (PCA)"},
	{"Project Portfolio", "Build 2-3 complete data science projects"},
	{"Deep Learning Intro", "Neural networks, TensorFlow/PyTorch basics"},
	{"Advanced Topics", "Time series, NLP, or computer vision basics"},
	{"Deployment & MLOps", "Model deployment, monitoring, version control"},
	{"Final Portfolio", "Complete portfolio with 5+ projects, prepare for interviews"},
}

var fullStackPhases = []phase{
	{"HTML & CSS Fundamentals", "Master semantic HTML, CSS Grid, Flexbox, responsive design"},
	{"JavaScript Basics", "ES6+, DOM manipulation, async programming"},
	{"Frontend Framework", "Learn React/Vue basics, components, state management"},
	{"Backend Fundamentals", "Node.js/Python, Express/FastAPI, REST APIs"},
	{"Database Design", "SQL/NoSQL, database modeling, queries"},
	{"Authentication & Security", "JWT, OAuth, password hashing, CORS"},
	{"API Development", "Build RESTful APIs, error handling, validation"},
	{"Frontend-Backend Integration", "Connect frontend to APIs, state management"},
	{"Testing", "Unit tests, integration tests, testing frameworks"},
	{"Deployment", "Docker, cloud platforms, CI/CD basics"},
	{"Performance Optimization", "Code splitting, caching, database optimization"},
	{"Final Project", "Build a complete full-stack application"},
}

var algorithmsPhases = []phase{
	{"Array Fundamentals", "Array manipulation, two pointers, sliding window"},
	{"String Algorithms", "String manipulation, pattern matching, parsing"},
	{"Linked Lists", "Singly/doubly linked lists, common operations"},
	{"Stacks & Queues", "Implementation, applications, monotonic stacks"},
	{"Hash Tables", "Hash maps, sets, collision handling"},
	{"Binary Trees", "Tree traversal, BST operations, tree problems"},
	{"Graph Basics", "Graph representation, BFS, DFS"},
	{"Graph Algorithms", "Shortest path, topological sort, cycle detection"},
	{"Dynamic Programming", "Memoization, tabulation, common DP patterns"},
	{"Greedy Algorithms", "Greedy strategies, interval scheduling"},
	{"Advanced Topics", "Trie, segment trees, advanced data structures"},
	{"System Design Basics", "Scalability, caching, load balancing concepts"},
}

func phasesFor(domain GoalDomain) []phase {
	switch domain {
	case DomainDataScience:
		return dataSciencePhases
	case DomainAlgorithms:
		return algorithmsPhases
	case DomainFullStack:
		return fullStackPhases
	default:
		return nil
	}
}

// GenerateChunks produces the full weekly breakdown for a new goal.
// For a matched domain the authored template bounds the output: asking for
// more weeks than the template has yields template-length chunks, never
// fabricated ones. Generic goals get exactly durationWeeks placeholder
// chunks. Week indexes are contiguous from 1; every chunk starts incomplete.
func GenerateChunks(title string, durationWeeks int) []entity.Chunk {
	phases := phasesFor(ClassifyGoal(title))
	if phases == nil {
		chunks := make([]entity.Chunk, 0, durationWeeks)
		for i := 1; i <= durationWeeks; i++ {
			chunks = append(chunks, entity.Chunk{
				WeekIndex:   i,
				Title:       fmt.Sprintf("Week %d — %s Progress", i, title),
				Description: fmt.Sprintf("Focus for week %d: Learn and practice the next module/task related to your goal.", i),
			})
		}
		return chunks
	}
	n := min(durationWeeks, len(phases))
	chunks := make([]entity.Chunk, 0, n)
	for i := 1; i <= n; i++ {
		chunks = append(chunks, entity.Chunk{
			WeekIndex:   i,
			Title:       fmt.Sprintf("Week %d — %s", i, phases[i-1].title),
			Description: phases[i-1].desc,
		})
	}
	return chunks
}

// RecalcProgress derives the aggregate completion percentage.
func RecalcProgress(chunks []entity.Chunk) int {
	if len(chunks) == 0 {
		return 0
	}
	done := 0
	for _, c := range chunks {
		if c.Completed {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(chunks)) * 100))
}
