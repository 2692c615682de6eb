package models

// GameSave is one persisted snapshot of a game state.
type GameSave struct {
	Key string `json:"key"`
	// Data is the encoded game state, see messages.SerializeGameState.
	Data []byte `json:"data"`
	// UpdatedAt is the save time in unix milliseconds.
	UpdatedAt int64 `json:"updated_at"`
}
