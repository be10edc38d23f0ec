package dto

import (
	"spender/internal/analytics"
	"spender/internal/models"
)

// AchievementStatus is one entry of the achievement table with the caller's
// unlock state folded in.
type AchievementStatus struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
}

// AchievementsSection carries everything the achievements screen needs: the
// ids unlocked by this evaluation, the full unlocked set, and the static table.
type AchievementsSection struct {
	New          []int               `json:"new"`
	Unlocked     []int               `json:"unlocked"`
	Achievements []AchievementStatus `json:"achievements"`
}

// InsightsResponse is the composed insights payload. Every section is derived
// from the same expense snapshot.
type InsightsResponse struct {
	Insight      analytics.Insight           `json:"insight"`
	Patterns     []analytics.SpendingPattern `json:"patterns"`
	Graphs       analytics.GraphsData        `json:"graphs"`
	Achievements AchievementsSection         `json:"achievements"`
}

// GraphsResponse wraps the standalone graphs payload
type GraphsResponse struct {
	Graphs analytics.GraphsData `json:"graphs"`
}

// BuildAchievementsSection folds unlock state into the static definition table.
// newIDs must already be part of unlockedIDs.
func BuildAchievementsSection(defs []models.AchievementDefinition, newIDs, unlockedIDs []int) AchievementsSection {
	unlockedSet := make(map[int]bool, len(unlockedIDs))
	for _, id := range unlockedIDs {
		unlockedSet[id] = true
	}

	statuses := make([]AchievementStatus, 0, len(defs))
	for _, def := range defs {
		statuses = append(statuses, AchievementStatus{
			ID:          def.ID,
			Title:       def.Title,
			Description: def.Description,
			Unlocked:    unlockedSet[def.ID],
		})
	}

	return AchievementsSection{
		New:          newIDs,
		Unlocked:     unlockedIDs,
		Achievements: statuses,
	}
}
