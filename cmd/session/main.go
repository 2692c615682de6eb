package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/cbodonnell/quizquest/pkg/achievements"
	"github.com/cbodonnell/quizquest/pkg/config"
	"github.com/cbodonnell/quizquest/pkg/content"
	"github.com/cbodonnell/quizquest/pkg/game"
	"github.com/cbodonnell/quizquest/pkg/log"
	"github.com/cbodonnell/quizquest/pkg/messages"
	"github.com/cbodonnell/quizquest/pkg/queue"
	"github.com/cbodonnell/quizquest/pkg/repositories"
	"github.com/cbodonnell/quizquest/pkg/state"
	"github.com/cbodonnell/quizquest/pkg/workers"
)

const broadcastChannelSize = 256

func main() {
	logLevel := flag.String("log-level", "", "Log level (overrides QUIZQUEST_LOG_LEVEL)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	parsedLogLevel, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	// stdout carries the session stream
	logger := log.New(os.Stderr, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	if err := run(cfg); err != nil {
		log.Error("Session stopped: %v", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repository, err := repositories.NewRepositoryFromURL(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to open repository: %v", err)
	}
	defer repository.Close(context.Background())

	achievementEngine, err := achievements.NewEngine()
	if err != nil {
		return fmt.Errorf("failed to load achievements: %v", err)
	}

	var engineRand *rand.Rand
	if cfg.Seed != 0 {
		engineRand = rand.New(rand.NewSource(cfg.Seed))
	}

	feedbackQueue := queue.NewInMemoryQueue(cfg.FeedbackQueueSize)
	engine := game.NewEngine(game.NewEngineOptions{
		Content:      content.NewGenerator(cfg.Seed),
		Achievements: achievementEngine,
		Feedback:     feedbackQueue,
		Rand:         engineRand,
	})

	saveGameStateChan := make(chan workers.SaveGameStateRequest, cfg.SaveQueueSize)
	saveGameStateWorker := workers.NewSaveGameStateWorker(workers.NewSaveGameStateWorkerOptions{
		Repository:        repository,
		SaveGameStateChan: saveGameStateChan,
	})

	broadcastMessageChan := make(chan workers.BroadcastMessage, broadcastChannelSize)
	broadcastMessageWorker := workers.NewBroadcastMessageWorker(workers.NewBroadcastMessageWorkerOptions{
		Writer:               os.Stdout,
		BroadcastMessageChan: broadcastMessageChan,
	})

	feedbackWorker := workers.NewFeedbackWorker(workers.NewFeedbackWorkerOptions{
		FeedbackQueue:        feedbackQueue,
		BroadcastMessageChan: broadcastMessageChan,
	})

	stateManager := state.NewInMemoryStateManager()
	gameManager := game.NewGameManager(game.NewGameManagerOptions{
		Engine:               engine,
		Repository:           repository,
		StateManager:         stateManager,
		SaveGameStateChan:    saveGameStateChan,
		BroadcastMessageChan: broadcastMessageChan,
		SaveKey:              cfg.SaveKey,
		TickInterval:         cfg.TickInterval,
		RevealDelay:          cfg.RevealDelay,
	})
	if err := gameManager.Load(ctx); err != nil {
		return fmt.Errorf("failed to load game state: %v", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// the reader blocks on stdin, so it lives outside the group and ends
	// the session when the presentation side closes the stream
	go func() {
		defer cancel()
		if err := readClientMessages(ctx, os.Stdin, gameManager, broadcastMessageChan); err != nil {
			log.Error("Failed to read client messages: %v", err)
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return saveGameStateWorker.Start(gctx) })
	g.Go(func() error { return broadcastMessageWorker.Start(gctx) })
	g.Go(func() error { return feedbackWorker.Start(gctx) })
	g.Go(func() error { return gameManager.Start(gctx) })

	log.Info("Session %s started", cfg.SaveKey)
	err = g.Wait()
	log.Info("Session %s stopped", cfg.SaveKey)
	return err
}

// readClientMessages decodes one JSON message per line and applies it.
// It returns nil once the reader is exhausted.
func readClientMessages(ctx context.Context, r io.Reader, gm *game.GameManager, broadcastMessageChan chan<- workers.BroadcastMessage) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		msg := &messages.Message{}
		if err := json.Unmarshal(line, msg); err != nil {
			sendError(broadcastMessageChan, fmt.Errorf("failed to decode message: %v", err))
			continue
		}
		if err := handleClientMessage(ctx, gm, msg, broadcastMessageChan); err != nil {
			sendError(broadcastMessageChan, err)
		}
	}
	return scanner.Err()
}

func handleClientMessage(ctx context.Context, gm *game.GameManager, msg *messages.Message, broadcastMessageChan chan<- workers.BroadcastMessage) error {
	switch msg.Type {
	case messages.MessageTypeClientAnswer:
		answer, err := messages.DecodeAnswer(msg)
		if err != nil {
			return err
		}
		if !gm.SubmitAnswer(answer.Correct, answer.Category) {
			log.Debug("Ignored answer outside of combat")
		}
		return nil
	case messages.MessageTypeClientSnapshot:
		gameState, err := gm.StateManager().Get(ctx)
		if err != nil {
			return fmt.Errorf("failed to read game state: %v", err)
		}
		broadcastMessageChan <- workers.BroadcastMessage{
			Type:    messages.MessageTypeServerSessionUpdate,
			Message: game.SessionUpdateFromState(gameState, "", nil),
		}
		return nil
	}

	intent, err := messages.DecodeIntent(msg)
	if err != nil {
		return err
	}
	if _, outcome := gm.Dispatch(intent); !outcome.Applied {
		log.Debug("Intent %s had no effect", intent.IntentType())
	}
	return nil
}

func sendError(broadcastMessageChan chan<- workers.BroadcastMessage, err error) {
	log.Warn("Rejected client message: %v", err)
	broadcastMessageChan <- workers.BroadcastMessage{
		Type:    messages.MessageTypeServerError,
		Message: &messages.ServerError{Message: err.Error()},
	}
}
