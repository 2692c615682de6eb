package types

// Enemy is the opponent of a single encounter. It exists only while
// the player is in combat and is never persisted.
type Enemy struct {
	// ID identifies the encounter; deferred answers carry it so a stale
	// answer cannot land on a newer enemy.
	ID    string `json:"id"`
	Name  string `json:"name"`
	Zone  int    `json:"zone"`
	HP    int    `json:"hp"`
	MaxHP int    `json:"maxHp"`
	Atk   int    `json:"atk"`
	Def   int    `json:"def"`
}

// TakeDamage reduces hitpoints, floored at zero.
func (e *Enemy) TakeDamage(damage int) {
	e.HP -= damage
	if e.HP < 0 {
		e.HP = 0
	}
}

func (e *Enemy) IsDead() bool {
	return e.HP <= 0
}
