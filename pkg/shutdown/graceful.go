// Package shutdown предоставляет функциональность для корректного завершения
// приложения по сигналам SIGINT/SIGTERM или по штатному окончанию работы.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// Wait блокирует выполнение до получения сигнала SIGINT/SIGTERM либо до
// закрытия канала done, затем выполняет все хуки в рамках заданного timeout.
func Wait(done <-chan struct{}, timeout time.Duration, hooks ...func(context.Context) error) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case <-sigCh:
	case <-done:
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var wgp sync.WaitGroup
	for _, hook := range hooks {
		wgp.Add(1)
		go func(fn func(context.Context) error) {
			defer wgp.Done()
			_ = fn(ctx)
		}(hook)
	}

	finished := make(chan struct{})
	go func() {
		wgp.Wait()
		close(finished)
	}()

	select {
	case <-finished:
	case <-ctx.Done():
	}
}
