package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Condition keys understood by the achievement evaluator. Each key names one
// predicate in the analytics registry; display metadata stays out here.
const (
	ConditionDayNoUnnecessary = "day_no_unnecessary"
	ConditionStreak3Days      = "streak_3_days"
	ConditionWeeklyDrop10     = "weekly_drop_10"
	ConditionMonthlyDrop10    = "monthly_drop_10"
	ConditionCategoryReduce20 = "category_reduce_20"
	ConditionDaysLogged7      = "days_logged_7"
	ConditionNecessary60      = "necessary_60_percent"
	ConditionMonthTracked30   = "month_tracked_30"
)

// AchievementDefinition is static configuration: an achievement id with its
// display strings and the condition key that decides when it unlocks.
type AchievementDefinition struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Condition   string `json:"condition"`
}

// DefaultAchievements returns the built-in achievement table in registry order.
func DefaultAchievements() []AchievementDefinition {
	return []AchievementDefinition{
		{
			ID:          1,
			Title:       "Zero Waste Day",
			Description: "A full day with no unnecessary expenses.",
			Condition:   ConditionDayNoUnnecessary,
		},
		{
			ID:          2,
			Title:       "3-Day Clean Streak",
			Description: "Three consecutive days without waste spending.",
			Condition:   ConditionStreak3Days,
		},
		{
			ID:          3,
			Title:       "Weekly Reduction",
			Description: "Reduce weekly total spending by 10%.",
			Condition:   ConditionWeeklyDrop10,
		},
		{
			ID:          4,
			Title:       "Monthly Reduction",
			Description: "Reduce monthly total spending by 10%.",
			Condition:   ConditionMonthlyDrop10,
		},
		{
			ID:          5,
			Title:       "Category Saver",
			Description: "Reduce one category by 20% compared to last month.",
			Condition:   ConditionCategoryReduce20,
		},
		{
			ID:          6,
			Title:       "7 Days Logged",
			Description: "Log expenses on seven different days.",
			Condition:   ConditionDaysLogged7,
		},
		{
			ID:          7,
			Title:       "Smart Shopper",
			Description: "60% of weekly spending marked as necessary.",
			Condition:   ConditionNecessary60,
		},
		{
			ID:          8,
			Title:       "Monthly Milestone",
			Description: "Maintain tracked expenses for 30 days.",
			Condition:   ConditionMonthTracked30,
		},
	}
}

// UnlockedAchievement records that a user has unlocked a given achievement id.
// The (user, achievement) pair is unique so re-unlocking is a no-op.
type UnlockedAchievement struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_unlocked_user_achievement" json:"user_id"`
	AchievementID int       `gorm:"not null;uniqueIndex:idx_unlocked_user_achievement" json:"achievement_id"`
	UnlockedAt    time.Time `gorm:"not null" json:"unlocked_at"`
}

// BeforeCreate hook for UnlockedAchievement
func (u *UnlockedAchievement) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.UnlockedAt.IsZero() {
		u.UnlockedAt = time.Now()
	}
	return nil
}

// TableName returns the table name for UnlockedAchievement
func (u *UnlockedAchievement) TableName() string {
	return "unlocked_achievements"
}
