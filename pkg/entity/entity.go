package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type GoalStatus string

const (
	StatusActive    GoalStatus = "active"
	StatusArchived  GoalStatus = "archived"
	StatusCompleted GoalStatus = "completed"
)

var ErrInvalidStatus = errors.New("invalid goal status")

// ParseGoalStatus is the single validation boundary for status values.
// Every entry point that accepts a status goes through it.
func ParseGoalStatus(s string) (GoalStatus, error) {
	switch GoalStatus(s) {
	case StatusActive, StatusArchived, StatusCompleted:
		return GoalStatus(s), nil
	}
	return "", ErrInvalidStatus
}

type CheckinFrequency string

const (
	FrequencyDaily    CheckinFrequency = "daily"
	FrequencyWeekly   CheckinFrequency = "weekly"
	FrequencyBiweekly CheckinFrequency = "biweekly"
)

var ErrInvalidFrequency = errors.New("invalid checkin frequency")

func ParseCheckinFrequency(s string) (CheckinFrequency, error) {
	switch CheckinFrequency(s) {
	case FrequencyDaily, FrequencyWeekly, FrequencyBiweekly:
		return CheckinFrequency(s), nil
	}
	return "", ErrInvalidFrequency
}

// Step returns the interval between two check-ins at this frequency.
func (f CheckinFrequency) Step() time.Duration {
	switch f {
	case FrequencyDaily:
		return 24 * time.Hour
	case FrequencyBiweekly:
		return 14 * 24 * time.Hour
	default:
		return 7 * 24 * time.Hour
	}
}

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

// Chunk is one week's planned work inside a goal. Chunks live and die with
// their parent goal; WeekIndex is 1-based, contiguous and never reassigned.
type Chunk struct {
	WeekIndex   int        `json:"week_index"`
	Title       string     `json:"title"`
	Description string     `json:"desc"`
	TargetDate  *time.Time `json:"target_date,omitempty"`
	Completed   bool       `json:"completed"`
}

type Goal struct {
	ID               uuid.UUID        `json:"id"`
	UserID           uuid.UUID        `json:"uid"`
	Title            string           `json:"title"`
	Description      string           `json:"desc"`
	DurationWeeks    int              `json:"duration_weeks"`
	CheckinFrequency CheckinFrequency `json:"checkin_frequency"`
	Status           GoalStatus       `json:"status"`
	Chunks           []Chunk          `json:"chunks"`
	Progress         int              `json:"progress"`
	CreatedAt        time.Time        `json:"created_at"`
}

type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

type Message struct {
	ID        int         `json:"id"`
	UserID    uuid.UUID   `json:"uid"`
	GoalID    uuid.UUID   `json:"goal_id"`
	Role      MessageRole `json:"role"`
	Text      string      `json:"text"`
	CreatedAt time.Time   `json:"created_at"`
}

type NotificationType string

const (
	NotificationCheckin     NotificationType = "checkin"
	NotificationReminder    NotificationType = "reminder"
	NotificationProgress    NotificationType = "progress"
	NotificationAchievement NotificationType = "achievement"
	NotificationGeneral     NotificationType = "general"
)

var ErrInvalidNotificationType = errors.New("invalid notification type")

func ParseNotificationType(s string) (NotificationType, error) {
	switch NotificationType(s) {
	case NotificationCheckin, NotificationReminder, NotificationProgress,
		NotificationAchievement, NotificationGeneral:
		return NotificationType(s), nil
	}
	return "", ErrInvalidNotificationType
}

type Notification struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"uid"`
	GoalID    *uuid.UUID       `json:"goal_id,omitempty"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}

type Checkin struct {
	ID        int              `json:"id"`
	UserID    uuid.UUID        `json:"uid"`
	GoalID    uuid.UUID        `json:"goal_id"`
	Frequency CheckinFrequency `json:"frequency"`
	NextAt    time.Time        `json:"next_at"`
	CreatedAt time.Time        `json:"created_at"`
}
