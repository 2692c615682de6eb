package types

import "github.com/cbodonnell/quizquest/pkg/game/constants"

// PlayerStats holds the immutable base values and the derived combat stats.
// Atk, Def and MaxHP are recomputed by the engine whenever equipment or
// research changes; HP never exceeds MaxHP.
type PlayerStats struct {
	HP      int `json:"hp"`
	MaxHP   int `json:"maxHp"`
	Atk     int `json:"atk"`
	Def     int `json:"def"`
	BaseAtk int `json:"baseAtk"`
	BaseDef int `json:"baseDef"`
	BaseHP  int `json:"baseHp"`
}

func NewPlayerStats() PlayerStats {
	return PlayerStats{
		HP:      constants.PlayerBaseHp,
		MaxHP:   constants.PlayerBaseHp,
		Atk:     constants.PlayerBaseAtk,
		Def:     constants.PlayerBaseDef,
		BaseAtk: constants.PlayerBaseAtk,
		BaseDef: constants.PlayerBaseDef,
		BaseHP:  constants.PlayerBaseHp,
	}
}

// TakeDamage reduces hitpoints, floored at zero.
func (p *PlayerStats) TakeDamage(damage int) {
	p.HP -= damage
	if p.HP < 0 {
		p.HP = 0
	}
}

func (p *PlayerStats) IsDead() bool {
	return p.HP <= 0
}

// Restore sets hitpoints to the current maximum.
func (p *PlayerStats) Restore() {
	p.HP = p.MaxHP
}

// Inventory holds owned equipment keyed by id and the equipped references.
// An equipped id always refers to an entry of the matching collection.
type Inventory struct {
	Weapons         map[string]Weapon `json:"weapons"`
	Armor           map[string]Armor  `json:"armor"`
	CurrentWeaponID *string           `json:"currentWeaponId,omitempty"`
	CurrentArmorID  *string           `json:"currentArmorId,omitempty"`
}

func NewInventory() Inventory {
	return Inventory{
		Weapons: make(map[string]Weapon),
		Armor:   make(map[string]Armor),
	}
}

func (inv Inventory) Copy() Inventory {
	out := Inventory{
		Weapons: make(map[string]Weapon, len(inv.Weapons)),
		Armor:   make(map[string]Armor, len(inv.Armor)),
	}
	for id, w := range inv.Weapons {
		out.Weapons[id] = w
	}
	for id, a := range inv.Armor {
		out.Armor[id] = a
	}
	if inv.CurrentWeaponID != nil {
		id := *inv.CurrentWeaponID
		out.CurrentWeaponID = &id
	}
	if inv.CurrentArmorID != nil {
		id := *inv.CurrentArmorID
		out.CurrentArmorID = &id
	}
	return out
}

// Add stores an item in the collection matching its kind.
func (inv *Inventory) Add(item Item) {
	switch item.Kind {
	case ItemKindWeapon:
		inv.Weapons[item.Weapon.ID] = *item.Weapon
	case ItemKindArmor:
		inv.Armor[item.Armor.ID] = *item.Armor
	}
}

// Find resolves an id against both collections.
func (inv *Inventory) Find(id string) (Item, bool) {
	if w, ok := inv.Weapons[id]; ok {
		return NewWeaponItem(w), true
	}
	if a, ok := inv.Armor[id]; ok {
		return NewArmorItem(a), true
	}
	return Item{}, false
}

// Remove deletes an item by id from whichever collection holds it.
func (inv *Inventory) Remove(id string) {
	delete(inv.Weapons, id)
	delete(inv.Armor, id)
}

func (inv *Inventory) EquipWeapon(id string) {
	inv.CurrentWeaponID = &id
}

func (inv *Inventory) EquipArmor(id string) {
	inv.CurrentArmorID = &id
}

// IsEquipped reports whether the id is the equipped weapon or armor.
func (inv *Inventory) IsEquipped(id string) bool {
	return (inv.CurrentWeaponID != nil && *inv.CurrentWeaponID == id) ||
		(inv.CurrentArmorID != nil && *inv.CurrentArmorID == id)
}

// CurrentWeapon returns the equipped weapon, if any.
func (inv *Inventory) CurrentWeapon() (Weapon, bool) {
	if inv.CurrentWeaponID == nil {
		return Weapon{}, false
	}
	w, ok := inv.Weapons[*inv.CurrentWeaponID]
	return w, ok
}

// CurrentArmor returns the equipped armor, if any.
func (inv *Inventory) CurrentArmor() (Armor, bool) {
	if inv.CurrentArmorID == nil {
		return Armor{}, false
	}
	a, ok := inv.Armor[*inv.CurrentArmorID]
	return a, ok
}
