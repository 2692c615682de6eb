package workers

import (
	"context"
	"time"

	"github.com/cbodonnell/quizquest/pkg/game/types"
	"github.com/cbodonnell/quizquest/pkg/log"
	"github.com/cbodonnell/quizquest/pkg/messages"
	"github.com/cbodonnell/quizquest/pkg/queue"
)

const defaultFeedbackInterval = 50 * time.Millisecond

// FeedbackWorker drains the feedback queue the engine writes to and
// forwards each event for broadcast.
type FeedbackWorker struct {
	feedbackQueue        queue.Queue
	broadcastMessageChan chan<- BroadcastMessage
	interval             time.Duration
}

type NewFeedbackWorkerOptions struct {
	FeedbackQueue        queue.Queue
	BroadcastMessageChan chan<- BroadcastMessage
	Interval             time.Duration
}

func NewFeedbackWorker(opts NewFeedbackWorkerOptions) *FeedbackWorker {
	interval := opts.Interval
	if interval <= 0 {
		interval = defaultFeedbackInterval
	}
	return &FeedbackWorker{
		feedbackQueue:        opts.FeedbackQueue,
		broadcastMessageChan: opts.BroadcastMessageChan,
		interval:             interval,
	}
}

func (w *FeedbackWorker) Start(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.forwardPending(ctx)
		}
	}
}

func (w *FeedbackWorker) forwardPending(ctx context.Context) {
	pending, err := w.feedbackQueue.ReadAllMessages()
	if err != nil {
		log.Error("Failed to read feedback events: %v", err)
		return
	}
	for _, item := range pending {
		event, ok := item.(types.FeedbackEvent)
		if !ok {
			log.Error("Unhandled feedback item type: %T", item)
			continue
		}
		select {
		case w.broadcastMessageChan <- BroadcastMessage{Type: messages.MessageTypeServerFeedback, Message: event}:
		case <-ctx.Done():
			return
		}
	}
}
