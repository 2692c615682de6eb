package types

import (
	"github.com/cbodonnell/quizquest/pkg/game/constants"
)

// GameState is the whole of a player's progress.
// Only the game package mutates it, and it is persisted and restored as a unit.
// Combat fields are never persisted.
type GameState struct {
	Coins           int             `json:"coins"`
	Gems            int             `json:"gems"`
	Zone            int             `json:"zone"`
	PlayerStats     PlayerStats     `json:"playerStats"`
	Inventory       Inventory       `json:"inventory"`
	CurrentEnemy    *Enemy          `json:"-"`
	InCombat        bool            `json:"-"`
	CombatLog       []string        `json:"-"`
	Research        Research        `json:"research"`
	IsPremium       bool            `json:"isPremium"`
	Achievements    []Achievement   `json:"achievements"`
	CollectionBook  CollectionBook  `json:"collectionBook"`
	KnowledgeStreak KnowledgeStreak `json:"knowledgeStreak"`
	GameMode        GameMode        `json:"gameMode"`
	Statistics      Statistics      `json:"statistics"`
}

// NewGameState returns the state of a fresh save: starting currencies,
// the starter weapon and armor equipped, zone 1 and normal mode.
// Derived player stats are left for the engine to compute.
func NewGameState() *GameState {
	weapon := Weapon{
		ID:          constants.StarterWeaponID,
		Name:        "Wooden Sword",
		Rarity:      RarityCommon,
		Level:       1,
		BaseAtk:     5,
		UpgradeCost: 5,
		SellPrice:   10,
	}
	armor := Armor{
		ID:          constants.StarterArmorID,
		Name:        "Cloth Tunic",
		Rarity:      RarityCommon,
		Level:       1,
		BaseDef:     3,
		UpgradeCost: 5,
		SellPrice:   10,
	}

	inventory := NewInventory()
	inventory.Add(NewWeaponItem(weapon))
	inventory.Add(NewArmorItem(armor))
	inventory.EquipWeapon(weapon.ID)
	inventory.EquipArmor(armor.ID)

	collection := NewCollectionBook()
	collection.Record(NewWeaponItem(weapon))
	collection.Record(NewArmorItem(armor))

	return &GameState{
		Coins:          constants.StartingCoins,
		Gems:           constants.StartingGems,
		Zone:           constants.StartingZone,
		PlayerStats:    NewPlayerStats(),
		Inventory:      inventory,
		CombatLog:      []string{},
		Research:       Research{},
		Achievements:   []Achievement{},
		CollectionBook: collection,
		KnowledgeStreak: KnowledgeStreak{
			Multiplier: 1,
		},
		GameMode: GameMode{
			Current:          ModeNormal,
			SurvivalLives:    constants.MaxSurvivalLives,
			MaxSurvivalLives: constants.MaxSurvivalLives,
		},
		Statistics: NewStatistics(),
	}
}

// Copy returns a deep copy of the game state.
func (g *GameState) Copy() *GameState {
	newGameState := *g
	newGameState.Inventory = g.Inventory.Copy()
	newGameState.CollectionBook = g.CollectionBook.Copy()
	newGameState.KnowledgeStreak = g.KnowledgeStreak.Copy()
	newGameState.Statistics = g.Statistics.Copy()

	if g.CurrentEnemy != nil {
		enemy := *g.CurrentEnemy
		newGameState.CurrentEnemy = &enemy
	}
	if g.CombatLog != nil {
		newGameState.CombatLog = make([]string, len(g.CombatLog))
		copy(newGameState.CombatLog, g.CombatLog)
	}
	if g.Achievements != nil {
		newGameState.Achievements = make([]Achievement, len(g.Achievements))
		for i, a := range g.Achievements {
			newGameState.Achievements[i] = a.Copy()
		}
	}
	return &newGameState
}

// AppendCombatLog appends a line and keeps only the most recent lines.
func (g *GameState) AppendCombatLog(line string) {
	g.CombatLog = append(g.CombatLog, line)
	if over := len(g.CombatLog) - constants.CombatLogLimit; over > 0 {
		g.CombatLog = append([]string(nil), g.CombatLog[over:]...)
	}
}

// ClearCombat returns the state to idle. The log is kept so the
// outcome of the last fight stays readable until the next one starts.
func (g *GameState) ClearCombat() {
	g.CurrentEnemy = nil
	g.InCombat = false
}

// SetZone moves the player to a zone and refreshes the premium flag.
func (g *GameState) SetZone(zone int) {
	g.Zone = zone
	g.IsPremium = zone >= constants.PremiumZone
}

// Achievement returns the catalog entry with the given id.
func (g *GameState) Achievement(id string) (Achievement, bool) {
	for _, a := range g.Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}
