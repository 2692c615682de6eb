package messages

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	gametypes "github.com/cbodonnell/quizquest/pkg/game/types"
)

// zstdMagic opens every zstd frame.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// SerializeGameState encodes the persisted fields of a game state as
// zstd compressed JSON. Combat fields are never included.
func SerializeGameState(state *gametypes.GameState) ([]byte, error) {
	b, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal game state: %v", err)
	}

	compressed := bytes.NewBuffer(nil)
	compWriter, err := zstd.NewWriter(compressed, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd writer: %v", err)
	}
	if _, err := compWriter.Write(b); err != nil {
		return nil, fmt.Errorf("failed to compress game state: %v", err)
	}
	if err := compWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zstd writer: %v", err)
	}

	return compressed.Bytes(), nil
}

// DeserializeGameState decodes a save produced by SerializeGameState.
// Uncompressed JSON is accepted as well. Fields the save lacks keep the
// values of a fresh game; derived fields are left for the engine to
// normalize.
func DeserializeGameState(data []byte) (*gametypes.GameState, error) {
	b := data
	if bytes.HasPrefix(data, zstdMagic) {
		compReader, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd reader: %v", err)
		}
		defer compReader.Close()
		b, err = io.ReadAll(compReader)
		if err != nil {
			return nil, fmt.Errorf("failed to read decompressed game state: %v", err)
		}
	}

	defaults := gametypes.NewGameState()
	gameState := gametypes.NewGameState()
	// maps are decoded into fresh values so saved collections replace the
	// defaults rather than merging with them
	gameState.Inventory = gametypes.Inventory{}
	gameState.CollectionBook.Weapons = nil
	gameState.CollectionBook.Armor = nil
	gameState.CollectionBook.RarityCounts = nil
	gameState.Statistics.CategoryStats = nil

	if err := json.Unmarshal(b, gameState); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game state: %v", err)
	}

	if gameState.Inventory.Weapons == nil && gameState.Inventory.Armor == nil {
		gameState.Inventory = defaults.Inventory
	}
	if gameState.CollectionBook.Weapons == nil {
		gameState.CollectionBook.Weapons = defaults.CollectionBook.Weapons
	}
	if gameState.CollectionBook.Armor == nil {
		gameState.CollectionBook.Armor = defaults.CollectionBook.Armor
	}
	if gameState.CollectionBook.RarityCounts == nil {
		gameState.CollectionBook.RarityCounts = defaults.CollectionBook.RarityCounts
	}
	if gameState.Statistics.CategoryStats == nil {
		gameState.Statistics.CategoryStats = defaults.Statistics.CategoryStats
	}
	if gameState.Achievements == nil {
		gameState.Achievements = []gametypes.Achievement{}
	}

	return gameState, nil
}
