package messages

import (
	"encoding/json"
	"fmt"

	gametypes "github.com/cbodonnell/quizquest/pkg/game/types"
)

// Client message types. Every intent type is also a client message type.
const (
	// MessageTypeClientAnswer submits an answer to be revealed after a delay
	MessageTypeClientAnswer = "answer"
	// MessageTypeClientSnapshot asks for the current state without changing it
	MessageTypeClientSnapshot = "snapshot"
)

// Server message types
const (
	MessageTypeServerSessionUpdate = "session_update"
	MessageTypeServerFeedback      = "feedback"
	MessageTypeServerError         = "error"
)

// Message represents a generic message for serialization/deserialization
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ClientAnswer is the payload of an answer message.
type ClientAnswer struct {
	Correct  bool   `json:"correct"`
	Category string `json:"category,omitempty"`
}

// SessionUpdate carries a full view of the game after a change.
type SessionUpdate struct {
	Intent    string               `json:"intent,omitempty"`
	Outcome   *gametypes.Outcome   `json:"outcome,omitempty"`
	GameState *gametypes.GameState `json:"gameState"`
	// Combat holds the fields the game state never persists.
	Combat *CombatUpdate `json:"combat"`
}

type CombatUpdate struct {
	InCombat bool             `json:"inCombat"`
	Enemy    *gametypes.Enemy `json:"enemy,omitempty"`
	Log      []string         `json:"log"`
}

type ServerError struct {
	Message string `json:"message"`
}

// DecodeIntent builds the intent named by an intent message type.
func DecodeIntent(msg *Message) (gametypes.Intent, error) {
	var intent gametypes.Intent
	var err error
	switch gametypes.IntentType(msg.Type) {
	case gametypes.IntentTypeStartCombat:
		intent = gametypes.StartCombatIntent{}
	case gametypes.IntentTypeUpgradeResearch:
		intent = gametypes.UpgradeResearchIntent{}
	case gametypes.IntentTypeCheckAchievements:
		intent = gametypes.CheckAchievementsIntent{}
	case gametypes.IntentTypeAttack:
		in := gametypes.AttackIntent{}
		err = unmarshalPayload(msg, &in)
		intent = in
	case gametypes.IntentTypeEquip:
		in := gametypes.EquipIntent{}
		err = unmarshalPayload(msg, &in)
		intent = in
	case gametypes.IntentTypeUpgradeItem:
		in := gametypes.UpgradeItemIntent{}
		err = unmarshalPayload(msg, &in)
		intent = in
	case gametypes.IntentTypeSellItem:
		in := gametypes.SellItemIntent{}
		err = unmarshalPayload(msg, &in)
		intent = in
	case gametypes.IntentTypeOpenChest:
		in := gametypes.OpenChestIntent{}
		err = unmarshalPayload(msg, &in)
		intent = in
	case gametypes.IntentTypeSetGameMode:
		in := gametypes.SetGameModeIntent{}
		err = unmarshalPayload(msg, &in)
		intent = in
	case gametypes.IntentTypeTick:
		in := gametypes.TickIntent{}
		err = unmarshalPayload(msg, &in)
		intent = in
	default:
		return nil, fmt.Errorf("unknown message type: %q", msg.Type)
	}
	if err != nil {
		return nil, err
	}
	return intent, nil
}

// DecodeAnswer reads the payload of an answer message.
func DecodeAnswer(msg *Message) (*ClientAnswer, error) {
	answer := &ClientAnswer{}
	if err := unmarshalPayload(msg, answer); err != nil {
		return nil, err
	}
	return answer, nil
}

// NewMessage wraps a payload into a message of the given type.
func NewMessage(msgType string, payload interface{}) (*Message, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %v", msgType, err)
	}
	return &Message{Type: msgType, Payload: b}, nil
}

// unmarshalPayload decodes the payload into v. A missing payload leaves v as is.
func unmarshalPayload(msg *Message, v interface{}) error {
	if len(msg.Payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(msg.Payload, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s payload: %v", msg.Type, err)
	}
	return nil
}
