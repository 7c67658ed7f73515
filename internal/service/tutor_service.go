package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/ascent/internal/error_values"
	"github.com/limbo/ascent/internal/repository"
	"github.com/limbo/ascent/pkg/entity"
)

// TutorService produces scripted, keyword-matched guidance. There is no
// model behind it: replies are canned templates chosen by the goal's domain
// and a couple of phrases in the user's message.
type TutorService struct {
	goalsRepo    repository.GoalsRepositoryI
	messagesRepo repository.MessagesRepositoryI
}

func NewTutorService(goalsRepo repository.GoalsRepositoryI, messagesRepo repository.MessagesRepositoryI) *TutorService {
	if goalsRepo == nil || messagesRepo == nil {
		log.Fatal("provided nil repos to tutor service")
	}
	return &TutorService{
		goalsRepo:    goalsRepo,
		messagesRepo: messagesRepo,
	}
}

func (ts *TutorService) Reply(ctx context.Context, uid, goalID uuid.UUID, text string) (*entity.Message, error) {
	goal, err := ts.goalsRepo.GetByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	if goal.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	_, err = ts.messagesRepo.Create(ctx, &entity.Message{
		UserID: uid,
		GoalID: goalID,
		Role:   entity.RoleUser,
		Text:   text,
	})
	if err != nil {
		return nil, errors.New("messages repository error: " + err.Error())
	}
	reply, err := ts.messagesRepo.Create(ctx, &entity.Message{
		UserID: uid,
		GoalID: goalID,
		Role:   entity.RoleAssistant,
		Text:   tutorReply(goal.Title, text),
	})
	if err != nil {
		return nil, errors.New("messages repository error: " + err.Error())
	}
	return reply, nil
}

func (ts *TutorService) History(ctx context.Context, uid, goalID uuid.UUID) ([]entity.Message, error) {
	goal, err := ts.goalsRepo.GetByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	if goal.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	msgs, err := ts.messagesRepo.GetByGoalAndUser(ctx, goalID, uid)
	if err != nil {
		return nil, errors.New("messages repository error: " + err.Error())
	}
	return msgs, nil
}

func tutorReply(goalTitle, userText string) string {
	userLower := strings.ToLower(userText)
	stuck := strings.Contains(userLower, "stuck") || strings.Contains(userLower, "difficult")
	askingProgress := strings.Contains(userLower, "progress") || strings.Contains(userLower, "how am i")

	var b strings.Builder
	switch ClassifyGoal(goalTitle) {
	case DomainDataScience:
		switch {
		case stuck:
			fmt.Fprintf(&b, "I understand you're facing challenges with %s. Here's my advice:\n\n", goalTitle)
			b.WriteString("**Break it down**: Focus on one concept at a time. Start with basic statistics before diving into algorithms.\n")
			b.WriteString("**Practice daily**: Spend 30 minutes coding in Python/R every day, even if it's just simple data manipulation.\n")
			b.WriteString("**Build projects**: Create a portfolio with 3-5 data science projects using real datasets.\n\n")
			b.WriteString("**Next 3 days plan**:\n1. Day 1: Review basic statistics concepts\n2. Day 2: Practice pandas data manipulation\n3. Day 3: Start your first simple analysis project")
		case askingProgress:
			fmt.Fprintf(&b, "Great question! For %s, here's how to track your progress:\n\n", goalTitle)
			b.WriteString("**Weekly milestones**: Complete one new concept + one practice exercise\n")
			b.WriteString("**Coding practice**: Aim for 5-10 hours of hands-on coding per week\n")
			b.WriteString("**Documentation**: Keep a learning journal of key insights\n\n")
			b.WriteString("**This week's focus**: Choose one ML algorithm (like linear regression) and implement it from scratch.")
		default:
			fmt.Fprintf(&b, "Excellent! For %s, here's your personalized guidance:\n\n", goalTitle)
			b.WriteString("**Learning path**: Statistics → Python → Data Visualization → ML Algorithms → Projects\n")
			b.WriteString("**Time management**: 2-3 hours daily, with 70% hands-on practice\n")
			b.WriteString("**Success metrics**: Build 3 projects, master 5 algorithms, create a portfolio\n\n")
			b.WriteString("**Immediate action**: Start with a simple dataset analysis using pandas and matplotlib.")
		}
	case DomainFullStack:
		if stuck {
			fmt.Fprintf(&b, "I see you're hitting some roadblocks with %s. Let's get you unstuck:\n\n", goalTitle)
			b.WriteString("**Frontend first**: Master HTML/CSS/JavaScript before moving to frameworks\n")
			b.WriteString("**Build daily**: Create one small project every day, even if it's just a button\n")
			b.WriteString("**Iterate quickly**: Don't perfect one thing - build many things and improve gradually\n\n")
			b.WriteString("**Next 3 days plan**:\n1. Day 1: Build a responsive navigation bar\n2. Day 2: Add JavaScript interactions\n3. Day 3: Connect to a simple API")
		} else {
			fmt.Fprintf(&b, "Perfect! For %s, here's your roadmap:\n\n", goalTitle)
			b.WriteString("**Frontend**: HTML/CSS → JavaScript → React/Vue → State Management\n")
			b.WriteString("**Backend**: Node.js/Python → Databases → APIs → Authentication\n")
			b.WriteString("**Deployment**: Git → Cloud platforms → CI/CD → Monitoring\n\n")
			b.WriteString("**This week's goal**: Build a complete CRUD application with user authentication.")
		}
	case DomainAlgorithms:
		fmt.Fprintf(&b, "Great choice! For %s, here's your structured approach:\n\n", goalTitle)
		b.WriteString("**Study order**: Arrays → Linked Lists → Stacks/Queues → Trees → Graphs → Dynamic Programming\n")
		b.WriteString("**Practice daily**: Solve 2-3 problems on LeetCode/HackerRank\n")
		b.WriteString("**Understand patterns**: Focus on problem-solving patterns, not memorizing solutions\n\n")
		b.WriteString("**This week's focus**: Master array manipulation and basic sorting algorithms.")
	default:
		fmt.Fprintf(&b, "I'm here to help you achieve %q! Here's my guidance:\n\n", goalTitle)
		b.WriteString("**Set clear milestones**: Break your goal into weekly objectives\n")
		b.WriteString("**Consistent practice**: Dedicate 1-2 hours daily to your goal\n")
		b.WriteString("**Track progress**: Keep a journal of what you learn each day\n")
		b.WriteString("**Review weekly**: Assess what worked and what needs adjustment\n\n")
		b.WriteString("**Next steps**: Define your first week's specific learning objectives.")
	}
	return b.String()
}
