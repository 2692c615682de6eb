package types

import "github.com/cbodonnell/quizquest/pkg/game/constants"

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityMythical  Rarity = "mythical"
)

// Rarities lists every rarity from lowest to highest.
var Rarities = []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary, RarityMythical}

func (r Rarity) Valid() bool {
	for _, known := range Rarities {
		if r == known {
			return true
		}
	}
	return false
}

type Weapon struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Rarity      Rarity `json:"rarity"`
	Level       int    `json:"level"`
	BaseAtk     int    `json:"baseAtk"`
	UpgradeCost int    `json:"upgradeCost"`
	SellPrice   int    `json:"sellPrice"`
}

// Contribution is the attack the weapon adds when equipped.
func (w Weapon) Contribution() int {
	return w.BaseAtk + (w.Level-1)*constants.WeaponAtkPerLevel
}

// Upgraded returns the weapon one level higher with scaled cost and price.
func (w Weapon) Upgraded() Weapon {
	w.Level++
	w.UpgradeCost = scaleUpgradeCost(w.UpgradeCost)
	w.SellPrice = scaleSellPrice(w.SellPrice)
	return w
}

type Armor struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Rarity      Rarity `json:"rarity"`
	Level       int    `json:"level"`
	BaseDef     int    `json:"baseDef"`
	UpgradeCost int    `json:"upgradeCost"`
	SellPrice   int    `json:"sellPrice"`
}

// Contribution is the defense the armor adds when equipped.
func (a Armor) Contribution() int {
	return a.BaseDef + (a.Level-1)*constants.ArmorDefPerLevel
}

// Upgraded returns the armor one level higher with scaled cost and price.
func (a Armor) Upgraded() Armor {
	a.Level++
	a.UpgradeCost = scaleUpgradeCost(a.UpgradeCost)
	a.SellPrice = scaleSellPrice(a.SellPrice)
	return a
}

// Normalized raises cost and price to the smallest values that still
// grow on upgrade.
func (w Weapon) Normalized() Weapon {
	w.Level = max(w.Level, 1)
	w.UpgradeCost = max(w.UpgradeCost, constants.MinUpgradeCost)
	w.SellPrice = max(w.SellPrice, constants.MinSellPrice)
	return w
}

func (a Armor) Normalized() Armor {
	a.Level = max(a.Level, 1)
	a.UpgradeCost = max(a.UpgradeCost, constants.MinUpgradeCost)
	a.SellPrice = max(a.SellPrice, constants.MinSellPrice)
	return a
}

func scaleUpgradeCost(cost int) int {
	return cost * constants.UpgradeCostNumerator / constants.UpgradeCostDenominator
}

func scaleSellPrice(price int) int {
	return price * constants.SellPriceNumerator / constants.SellPriceDenominator
}

type ItemKind string

const (
	ItemKindWeapon ItemKind = "weapon"
	ItemKindArmor  ItemKind = "armor"
)

// Item is either a weapon or an armor, told apart by Kind.
// Exactly one of Weapon and Armor is set, matching Kind.
type Item struct {
	Kind   ItemKind `json:"kind"`
	Weapon *Weapon  `json:"weapon,omitempty"`
	Armor  *Armor   `json:"armor,omitempty"`
}

func NewWeaponItem(w Weapon) Item {
	return Item{Kind: ItemKindWeapon, Weapon: &w}
}

func NewArmorItem(a Armor) Item {
	return Item{Kind: ItemKindArmor, Armor: &a}
}

func (i Item) ID() string {
	switch i.Kind {
	case ItemKindWeapon:
		return i.Weapon.ID
	case ItemKindArmor:
		return i.Armor.ID
	}
	return ""
}

func (i Item) Name() string {
	switch i.Kind {
	case ItemKindWeapon:
		return i.Weapon.Name
	case ItemKindArmor:
		return i.Armor.Name
	}
	return ""
}

func (i Item) Rarity() Rarity {
	switch i.Kind {
	case ItemKindWeapon:
		return i.Weapon.Rarity
	case ItemKindArmor:
		return i.Armor.Rarity
	}
	return ""
}
