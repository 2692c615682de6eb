package types

import (
	"time"

	"github.com/cbodonnell/quizquest/pkg/game/constants"
)

type Research struct {
	Level      int `json:"level"`
	Tier       int `json:"tier"`
	TotalSpent int `json:"totalSpent"`
}

// TierForLevel returns floor(level / levels per tier).
func TierForLevel(level int) int {
	return level / constants.ResearchLevelsPerTier
}

// CollectionBook records every distinct item name ever found.
type CollectionBook struct {
	Weapons           map[string]bool `json:"weapons"`
	Armor             map[string]bool `json:"armor"`
	TotalWeaponsFound int             `json:"totalWeaponsFound"`
	TotalArmorFound   int             `json:"totalArmorFound"`
	RarityCounts      map[Rarity]int  `json:"rarityCounts"`
}

func NewCollectionBook() CollectionBook {
	return CollectionBook{
		Weapons:      make(map[string]bool),
		Armor:        make(map[string]bool),
		RarityCounts: make(map[Rarity]int),
	}
}

func (c CollectionBook) Copy() CollectionBook {
	out := c
	out.Weapons = make(map[string]bool, len(c.Weapons))
	for k, v := range c.Weapons {
		out.Weapons[k] = v
	}
	out.Armor = make(map[string]bool, len(c.Armor))
	for k, v := range c.Armor {
		out.Armor[k] = v
	}
	out.RarityCounts = make(map[Rarity]int, len(c.RarityCounts))
	for k, v := range c.RarityCounts {
		out.RarityCounts[k] = v
	}
	return out
}

// Record marks the item's name as discovered. It returns false, and
// changes nothing, when the name was already in the book.
func (c *CollectionBook) Record(item Item) bool {
	name := item.Name()
	switch item.Kind {
	case ItemKindWeapon:
		if c.Weapons[name] {
			return false
		}
		c.Weapons[name] = true
		c.TotalWeaponsFound++
	case ItemKindArmor:
		if c.Armor[name] {
			return false
		}
		c.Armor[name] = true
		c.TotalArmorFound++
	default:
		return false
	}
	c.RarityCounts[item.Rarity()]++
	return true
}

type KnowledgeStreak struct {
	Current         int        `json:"current"`
	Best            int        `json:"best"`
	Multiplier      float64    `json:"multiplier"`
	LastCorrectTime *time.Time `json:"lastCorrectTime,omitempty"`
}

func (k KnowledgeStreak) Copy() KnowledgeStreak {
	if k.LastCorrectTime != nil {
		t := *k.LastCorrectTime
		k.LastCorrectTime = &t
	}
	return k
}

// StreakMultiplier is 1 + 0.1 per full step of correct answers, capped at 2.
func StreakMultiplier(current int) float64 {
	return float64(StreakMultiplierTenths(current)) / 10
}

// StreakMultiplierTenths is the streak multiplier in tenths, from 10 to 20.
func StreakMultiplierTenths(current int) int {
	if current < 0 {
		current = 0
	}
	steps := current / constants.StreakStep
	if steps > constants.StreakMaxSteps {
		steps = constants.StreakMaxSteps
	}
	return 10 + steps
}

type Mode string

const (
	ModeNormal   Mode = "normal"
	ModeSpeed    Mode = "speed"
	ModeSurvival Mode = "survival"
)

func (m Mode) Valid() bool {
	switch m {
	case ModeNormal, ModeSpeed, ModeSurvival:
		return true
	}
	return false
}

type GameMode struct {
	Current          Mode `json:"current"`
	SpeedModeActive  bool `json:"speedModeActive"`
	SurvivalLives    int  `json:"survivalLives"`
	MaxSurvivalLives int  `json:"maxSurvivalLives"`
}

func (g GameMode) IsSurvival() bool {
	return g.Current == ModeSurvival
}

type CategoryStats struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

type Statistics struct {
	TotalQuestionsAnswered int                      `json:"totalQuestionsAnswered"`
	CorrectAnswers         int                      `json:"correctAnswers"`
	TotalPlayTime          int                      `json:"totalPlayTime"`
	ZonesReached           int                      `json:"zonesReached"`
	ItemsCollected         int                      `json:"itemsCollected"`
	CoinsEarned            int                      `json:"coinsEarned"`
	GemsEarned             int                      `json:"gemsEarned"`
	ChestsOpened           int                      `json:"chestsOpened"`
	CategoryStats          map[string]CategoryStats `json:"categoryStats"`
	SessionStartTime       time.Time                `json:"sessionStartTime"`
}

func NewStatistics() Statistics {
	return Statistics{
		ZonesReached:  constants.StartingZone,
		CategoryStats: make(map[string]CategoryStats),
	}
}

func (s Statistics) Copy() Statistics {
	out := s
	out.CategoryStats = make(map[string]CategoryStats, len(s.CategoryStats))
	for k, v := range s.CategoryStats {
		out.CategoryStats[k] = v
	}
	return out
}

// RecordAnswer counts an answered question, per category when one is given.
func (s *Statistics) RecordAnswer(correct bool, category string) {
	s.TotalQuestionsAnswered++
	if correct {
		s.CorrectAnswers++
	}
	if category == "" {
		return
	}
	cs := s.CategoryStats[category]
	cs.Total++
	if correct {
		cs.Correct++
	}
	s.CategoryStats[category] = cs
}

type AchievementReward struct {
	Coins int `json:"coins,omitempty" yaml:"coins"`
	Gems  int `json:"gems,omitempty" yaml:"gems"`
}

// Achievement is a catalog entry. Once unlocked it stays unlocked.
type Achievement struct {
	ID          string             `json:"id" yaml:"id"`
	Name        string             `json:"name" yaml:"name"`
	Description string             `json:"description" yaml:"description"`
	Reward      *AchievementReward `json:"reward,omitempty" yaml:"reward"`
	Unlocked    bool               `json:"unlocked" yaml:"-"`
	UnlockedAt  *time.Time         `json:"unlockedAt,omitempty" yaml:"-"`
}

func (a Achievement) Copy() Achievement {
	if a.Reward != nil {
		r := *a.Reward
		a.Reward = &r
	}
	if a.UnlockedAt != nil {
		t := *a.UnlockedAt
		a.UnlockedAt = &t
	}
	return a
}

// ChestReward describes what a chest contained. It is handed to the
// caller and never stored in the game state.
type ChestReward struct {
	Type  string `json:"type"`
	Items []Item `json:"items"`
	Gems  int    `json:"gems"`
}
