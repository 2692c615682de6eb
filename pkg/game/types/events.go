package types

type IntentType string

const (
	IntentTypeStartCombat       IntentType = "start_combat"
	IntentTypeAttack            IntentType = "attack"
	IntentTypeEquip             IntentType = "equip"
	IntentTypeUpgradeItem       IntentType = "upgrade_item"
	IntentTypeSellItem          IntentType = "sell_item"
	IntentTypeUpgradeResearch   IntentType = "upgrade_research"
	IntentTypeOpenChest         IntentType = "open_chest"
	IntentTypeCheckAchievements IntentType = "check_achievements"
	IntentTypeSetGameMode       IntentType = "set_game_mode"
	IntentTypeTick              IntentType = "tick"
)

// Intent is a request to change the game state.
type Intent interface {
	IntentType() IntentType
}

// StartCombatIntent starts an encounter in the current zone.
type StartCombatIntent struct{}

// AttackIntent applies the outcome of one answered question.
// EncounterID, when set, must match the current enemy.
type AttackIntent struct {
	Hit         bool   `json:"hit"`
	Category    string `json:"category,omitempty"`
	EncounterID string `json:"encounterId,omitempty"`
}

type EquipIntent struct {
	ItemID string `json:"itemId"`
}

type UpgradeItemIntent struct {
	ItemID string `json:"itemId"`
}

type SellItemIntent struct {
	ItemID string `json:"itemId"`
}

type UpgradeResearchIntent struct{}

type OpenChestIntent struct {
	Cost int `json:"cost"`
}

type CheckAchievementsIntent struct{}

type SetGameModeIntent struct {
	Mode Mode `json:"mode"`
}

// TickIntent advances the play time counter.
type TickIntent struct {
	Seconds int `json:"seconds"`
}

func (StartCombatIntent) IntentType() IntentType       { return IntentTypeStartCombat }
func (AttackIntent) IntentType() IntentType            { return IntentTypeAttack }
func (EquipIntent) IntentType() IntentType             { return IntentTypeEquip }
func (UpgradeItemIntent) IntentType() IntentType       { return IntentTypeUpgradeItem }
func (SellItemIntent) IntentType() IntentType          { return IntentTypeSellItem }
func (UpgradeResearchIntent) IntentType() IntentType   { return IntentTypeUpgradeResearch }
func (OpenChestIntent) IntentType() IntentType         { return IntentTypeOpenChest }
func (CheckAchievementsIntent) IntentType() IntentType { return IntentTypeCheckAchievements }
func (SetGameModeIntent) IntentType() IntentType       { return IntentTypeSetGameMode }
func (TickIntent) IntentType() IntentType              { return IntentTypeTick }

type FeedbackKind string

const (
	FeedbackKindText      FeedbackKind = "text"
	FeedbackKindParticles FeedbackKind = "particles"
	FeedbackKindShake     FeedbackKind = "shake"
)

const (
	StyleSuccess = "success"
	StyleWarning = "warning"
	StyleDanger  = "danger"
	StyleInfo    = "info"
	StyleStreak  = "streak"
)

// FeedbackEvent is a fire-and-forget cue for presentation.
type FeedbackEvent struct {
	Kind      FeedbackKind `json:"kind"`
	Message   string       `json:"message,omitempty"`
	StyleHint string       `json:"styleHint,omitempty"`
}

type CombatResult string

const (
	CombatResultContinue      CombatResult = "continue"
	CombatResultWin           CombatResult = "win"
	CombatResultLoss          CombatResult = "loss"
	CombatResultLifeLost      CombatResult = "life_lost"
	CombatResultSurvivalReset CombatResult = "survival_reset"
)

// CombatOutcome describes one resolved attack.
type CombatOutcome struct {
	Result CombatResult `json:"result"`
	Hit    bool         `json:"hit"`
	Damage int          `json:"damage"`
	Coins  int          `json:"coins,omitempty"`
	Gems   int          `json:"gems,omitempty"`
}

// Resolved reports whether the attack ended the encounter.
func (c *CombatOutcome) Resolved() bool {
	return c != nil && c.Result != CombatResultContinue
}

// Outcome reports what a transition did. Applied is false when a
// precondition was not met and the state was left untouched.
type Outcome struct {
	Applied bool           `json:"applied"`
	Combat  *CombatOutcome `json:"combat,omitempty"`
	Chest   *ChestReward   `json:"chest,omitempty"`
}
