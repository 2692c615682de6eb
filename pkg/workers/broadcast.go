package workers

import (
	"context"
	"encoding/json"
	"io"
	"sync"

	"github.com/cbodonnell/quizquest/pkg/log"
	"github.com/cbodonnell/quizquest/pkg/messages"
)

// BroadcastMessageWorker writes server messages to the presentation
// layer as JSON lines.
type BroadcastMessageWorker struct {
	lock                 sync.Mutex
	encoder              *json.Encoder
	broadcastMessageChan <-chan BroadcastMessage
}

type BroadcastMessage struct {
	Type    string
	Message interface{}
}

type NewBroadcastMessageWorkerOptions struct {
	Writer               io.Writer
	BroadcastMessageChan <-chan BroadcastMessage
}

func NewBroadcastMessageWorker(opts NewBroadcastMessageWorkerOptions) *BroadcastMessageWorker {
	return &BroadcastMessageWorker{
		encoder:              json.NewEncoder(opts.Writer),
		broadcastMessageChan: opts.BroadcastMessageChan,
	}
}

func (w *BroadcastMessageWorker) Start(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg := <-w.broadcastMessageChan:
			w.write(msg)
		}
	}
}

func (w *BroadcastMessageWorker) write(msg BroadcastMessage) {
	message, err := messages.NewMessage(msg.Type, msg.Message)
	if err != nil {
		log.Error("Failed to build %s message: %v", msg.Type, err)
		return
	}

	w.lock.Lock()
	defer w.lock.Unlock()
	if err := w.encoder.Encode(message); err != nil {
		log.Error("Failed to write %s message: %v", msg.Type, err)
	}
}
