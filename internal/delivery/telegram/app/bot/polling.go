// internal/delivery/telegram/app/bot/polling.go
package bot

import (
	"context"
	"fmt"
	"sync"
	"time"

	"stock-quote-bot/pkg/logger"
)

// pollRetryDelay пауза после ошибки getUpdates
var pollRetryDelay = time.Second

// PollingClient - цикл long-polling обновлений
type PollingClient struct {
	bot    *TelegramBot
	offset int

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewPollingClient создает новый polling клиент
func NewPollingClient(bot *TelegramBot) *PollingClient {
	return &PollingClient{bot: bot}
}

// Start запускает polling в отдельной горутине
func (pc *PollingClient) Start(ctx context.Context) error {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.running {
		return fmt.Errorf("polling already running")
	}

	ctx, cancel := context.WithCancel(ctx)
	pc.cancel = cancel
	pc.done = make(chan struct{})
	pc.running = true

	logger.Info("🔄 Starting Telegram bot polling...")
	go pc.pollLoop(ctx)

	return nil
}

// Stop останавливает polling и ждет выхода из цикла
func (pc *PollingClient) Stop() {
	pc.mu.Lock()
	if !pc.running {
		pc.mu.Unlock()
		return
	}
	cancel, done := pc.cancel, pc.done
	pc.mu.Unlock()

	cancel()
	<-done
	logger.Info("🛑 Telegram bot polling stopped")
}

// Done закрывается после выхода из цикла
func (pc *PollingClient) Done() <-chan struct{} {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.done
}

// IsRunning работает ли цикл
func (pc *PollingClient) IsRunning() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.running
}

// pollLoop основной цикл polling
func (pc *PollingClient) pollLoop(ctx context.Context) {
	defer func() {
		pc.mu.Lock()
		pc.running = false
		close(pc.done)
		pc.mu.Unlock()
	}()

	for ctx.Err() == nil {
		if err := pc.fetchUpdates(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error("❌ Error fetching updates: %v", err)

			select {
			case <-ctx.Done():
				return
			case <-time.After(pollRetryDelay):
			}
		}
	}
}

// fetchUpdates получает и последовательно обрабатывает пачку обновлений
func (pc *PollingClient) fetchUpdates(ctx context.Context) error {
	timeout := pc.bot.config.Telegram.PollingTimeout
	updates, err := pc.bot.GetPollingClient().GetUpdates(ctx, pc.offset, timeout)
	if err != nil {
		return err
	}

	for i := range updates {
		update := updates[i]
		if err := pc.bot.HandleUpdate(ctx, &update); err != nil {
			logger.Error("❌ Error handling update %d: %v", update.UpdateID, err)
		}
		pc.offset = update.UpdateID + 1
	}

	return nil
}
