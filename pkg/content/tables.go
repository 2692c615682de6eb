package content

import "github.com/cbodonnell/quizquest/pkg/game/types"

type RarityDrop struct {
	Rarity types.Rarity
	Weight int // Probability weight
}

// StandardRarities can drop from any chest.
var StandardRarities = []RarityDrop{
	{Rarity: types.RarityCommon, Weight: 60},
	{Rarity: types.RarityRare, Weight: 25},
	{Rarity: types.RarityEpic, Weight: 11},
	{Rarity: types.RarityLegendary, Weight: 4},
}

// HighTierRarities drop only from the most expensive chest.
var HighTierRarities = []RarityDrop{
	{Rarity: types.RarityCommon, Weight: 35},
	{Rarity: types.RarityRare, Weight: 28},
	{Rarity: types.RarityEpic, Weight: 20},
	{Rarity: types.RarityLegendary, Weight: 12},
	{Rarity: types.RarityMythical, Weight: 5},
}

type ItemStats struct {
	MinPower    int
	MaxPower    int
	UpgradeCost int
	SellPrice   int
}

var WeaponStats = map[types.Rarity]ItemStats{
	types.RarityCommon:    {MinPower: 5, MaxPower: 10, UpgradeCost: 5, SellPrice: 20},
	types.RarityRare:      {MinPower: 12, MaxPower: 20, UpgradeCost: 10, SellPrice: 50},
	types.RarityEpic:      {MinPower: 25, MaxPower: 40, UpgradeCost: 20, SellPrice: 120},
	types.RarityLegendary: {MinPower: 45, MaxPower: 70, UpgradeCost: 40, SellPrice: 300},
	types.RarityMythical:  {MinPower: 80, MaxPower: 120, UpgradeCost: 80, SellPrice: 800},
}

var ArmorStats = map[types.Rarity]ItemStats{
	types.RarityCommon:    {MinPower: 3, MaxPower: 6, UpgradeCost: 5, SellPrice: 20},
	types.RarityRare:      {MinPower: 7, MaxPower: 12, UpgradeCost: 10, SellPrice: 50},
	types.RarityEpic:      {MinPower: 14, MaxPower: 22, UpgradeCost: 20, SellPrice: 120},
	types.RarityLegendary: {MinPower: 25, MaxPower: 38, UpgradeCost: 40, SellPrice: 300},
	types.RarityMythical:  {MinPower: 45, MaxPower: 65, UpgradeCost: 80, SellPrice: 800},
}

var RarityPrefixes = map[types.Rarity][]string{
	types.RarityCommon:    {"Rusty", "Wooden", "Iron", "Worn"},
	types.RarityRare:      {"Steel", "Silver", "Tempered", "Polished"},
	types.RarityEpic:      {"Enchanted", "Runed", "Arcane", "Stormforged"},
	types.RarityLegendary: {"Dragonbone", "Celestial", "Ancient", "Kingslayer"},
	types.RarityMythical:  {"Godforged", "Eternal", "Voidborn", "Starfallen"},
}

var WeaponBases = []string{"Sword", "Axe", "Mace", "Spear", "Dagger", "Hammer"}

var ArmorBases = []string{"Tunic", "Chainmail", "Breastplate", "Robe", "Shield", "Helm"}

var EnemyNames = []string{"Goblin", "Skeleton", "Wolf", "Bandit", "Orc", "Troll", "Wraith", "Golem", "Wyvern", "Dragon"}

// EnemyTitles prefix enemy names, one per ten zones.
var EnemyTitles = []string{"", "Fierce", "Elite", "Ancient", "Mythic"}
