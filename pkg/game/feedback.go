package game

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cbodonnell/quizquest/pkg/game/types"
	"github.com/cbodonnell/quizquest/pkg/log"
)

var printer = message.NewPrinter(language.English)

// sprintf formats numbers with thousands separators.
func (e *Engine) sprintf(format string, args ...interface{}) string {
	return printer.Sprintf(format, args...)
}

func (e *Engine) emitText(style string, format string, args ...interface{}) {
	e.emit(types.FeedbackEvent{
		Kind:      types.FeedbackKindText,
		Message:   e.sprintf(format, args...),
		StyleHint: style,
	})
}

// emit hands an event to the feedback sink. A full sink drops the event.
func (e *Engine) emit(event types.FeedbackEvent) {
	if e.feedback == nil {
		return
	}
	if err := e.feedback.Enqueue(event); err != nil {
		log.Trace("Dropped feedback event %s: %v", event.Kind, err)
	}
}
