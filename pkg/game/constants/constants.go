package constants

const (

	// PlayerBaseAtk is the attack a player has with nothing equipped
	PlayerBaseAtk int = 10
	// PlayerBaseDef is the defense a player has with nothing equipped
	PlayerBaseDef int = 5
	// PlayerBaseHp is the max hitpoints before research bonuses
	PlayerBaseHp int = 100

	// WeaponAtkPerLevel is the attack each weapon upgrade level adds
	WeaponAtkPerLevel int = 10
	// ArmorDefPerLevel is the defense each armor upgrade level adds
	ArmorDefPerLevel int = 5

	// Upgrade scaling is applied with integer math so the result is floored.

	// UpgradeCostNumerator / UpgradeCostDenominator is the x1.5 upgrade cost growth
	UpgradeCostNumerator   int = 3
	UpgradeCostDenominator int = 2
	// SellPriceNumerator / SellPriceDenominator is the x1.2 sell price growth
	SellPriceNumerator   int = 6
	SellPriceDenominator int = 5
	// MinUpgradeCost and MinSellPrice are the smallest values the scaling still raises
	MinUpgradeCost int = 5
	MinSellPrice   int = 5

	// StartingZone is the zone a new or reset player starts in
	StartingZone int = 1
	// PremiumZone is the zone from which a player counts as premium
	PremiumZone int = 50

	// RewardCoinsPerZone is the base coin reward per zone for a win
	RewardCoinsPerZone int = 8
	// RewardCoinsSpread is the exclusive upper bound of the random coin bonus
	RewardCoinsSpread int = 15
	// RewardGemsSpread is the exclusive upper bound of the random gem bonus (plus one)
	RewardGemsSpread int = 3

	// Reward multipliers are in percent so rewards floor with integer math.

	// NormalRewardPct applies to coins and gems of wins in normal mode
	NormalRewardPct int = 100
	// SpeedCoinPct and SpeedGemPct apply to wins in speed mode
	SpeedCoinPct int = 150
	SpeedGemPct  int = 125
	// SurvivalCoinPct and SurvivalGemPct apply to wins in survival mode
	SurvivalCoinPct int = 200
	SurvivalGemPct  int = 200

	// MaxSurvivalLives is the number of losses tolerated in survival mode
	MaxSurvivalLives int = 3

	// StreakStep is the number of consecutive correct answers per multiplier step
	StreakStep int = 5
	// StreakMaxSteps caps the multiplier at 1 + StreakMaxSteps/10 (2x)
	StreakMaxSteps int = 10

	// ResearchCost is the coin cost of one research level
	ResearchCost int = 150
	// ResearchLevelsPerTier is the number of research levels per tier
	ResearchLevelsPerTier int = 10

	// BasicChestCost, PremiumChestCost and MythicalChestCost are the chest prices offered
	BasicChestCost    int = 100
	PremiumChestCost  int = 500
	MythicalChestCost int = 2500
	// ChestMinItems is the minimum number of items in a chest
	ChestMinItems int = 2
	// ChestExtraItemsSpread is the exclusive upper bound of extra items in a chest
	ChestExtraItemsSpread int = 2
	// ChestMinGems is the minimum bonus gems in a chest
	ChestMinGems int = 5
	// ChestGemsSpread is the exclusive upper bound of the random gem bonus
	ChestGemsSpread int = 10

	// CombatLogLimit is the number of most recent combat log lines kept
	CombatLogLimit int = 50
)

const (
	// StartingCoins and StartingGems are the balances of a fresh save
	StartingCoins int = 100
	StartingGems  int = 10

	// StarterWeaponID and StarterArmorID identify the items a fresh save owns and wears
	StarterWeaponID string = "starter-weapon"
	StarterArmorID  string = "starter-armor"
)
