package content

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cbodonnell/quizquest/pkg/game/constants"
	"github.com/cbodonnell/quizquest/pkg/game/types"
)

// Generator produces weapons, armor and enemies from the tables in this
// package. It is safe for concurrent use.
type Generator struct {
	lock sync.Mutex
	rng  *rand.Rand
}

// NewGenerator returns a generator seeded with seed, or with the current
// time when seed is zero.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (g *Generator) GenerateWeapon(highTierAllowed bool) types.Weapon {
	g.lock.Lock()
	defer g.lock.Unlock()

	rarity := g.rollRarity(highTierAllowed)
	stats := WeaponStats[rarity]
	return types.Weapon{
		ID:          uuid.NewString(),
		Name:        g.itemName(rarity, WeaponBases),
		Rarity:      rarity,
		Level:       1,
		BaseAtk:     g.between(stats.MinPower, stats.MaxPower),
		UpgradeCost: stats.UpgradeCost,
		SellPrice:   stats.SellPrice,
	}
}

func (g *Generator) GenerateArmor(highTierAllowed bool) types.Armor {
	g.lock.Lock()
	defer g.lock.Unlock()

	rarity := g.rollRarity(highTierAllowed)
	stats := ArmorStats[rarity]
	return types.Armor{
		ID:          uuid.NewString(),
		Name:        g.itemName(rarity, ArmorBases),
		Rarity:      rarity,
		Level:       1,
		BaseDef:     g.between(stats.MinPower, stats.MaxPower),
		UpgradeCost: stats.UpgradeCost,
		SellPrice:   stats.SellPrice,
	}
}

// GenerateEnemy scales an enemy to the zone. Every call yields a new
// encounter id.
func (g *Generator) GenerateEnemy(zone int) types.Enemy {
	g.lock.Lock()
	defer g.lock.Unlock()

	zone = max(zone, constants.StartingZone)
	name := EnemyNames[(zone-1)%len(EnemyNames)]
	if title := EnemyTitles[min((zone-1)/10, len(EnemyTitles)-1)]; title != "" {
		name = fmt.Sprintf("%s %s", title, name)
	}

	maxHP := 30 + zone*12 + g.rng.Intn(10)
	return types.Enemy{
		ID:    uuid.NewString(),
		Name:  name,
		Zone:  zone,
		HP:    maxHP,
		MaxHP: maxHP,
		Atk:   6 + zone*3 + g.rng.Intn(3),
		Def:   2 + zone*2 + g.rng.Intn(2),
	}
}

// CalculateResearchBonus is 2% per level plus 5% per tier.
func (g *Generator) CalculateResearchBonus(level int, tier int) float64 {
	return float64(level*2 + tier*5)
}

func (g *Generator) rollRarity(highTierAllowed bool) types.Rarity {
	table := StandardRarities
	if highTierAllowed {
		table = HighTierRarities
	}

	totalWeight := 0
	for _, drop := range table {
		totalWeight += drop.Weight
	}

	roll := g.rng.Intn(totalWeight)
	current := 0
	for _, drop := range table {
		current += drop.Weight
		if roll < current {
			return drop.Rarity
		}
	}
	return types.RarityCommon
}

func (g *Generator) itemName(rarity types.Rarity, bases []string) string {
	prefixes := RarityPrefixes[rarity]
	return fmt.Sprintf("%s %s", prefixes[g.rng.Intn(len(prefixes))], bases[g.rng.Intn(len(bases))])
}

// between returns a value in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}
