package service

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

type TeardownManager struct {
	ctx       context.Context
	cancel    context.CancelFunc
	wg        *sync.WaitGroup
	mu        sync.Mutex
	teardowns []func()
}

var tdm *TeardownManager
var once sync.Once

func GetTeardownManager() *TeardownManager {
	once.Do(func() {
		ctx, cancel := context.WithCancel(context.Background())
		tdm = &TeardownManager{
			ctx:    ctx,
			cancel: cancel,
			wg:     &sync.WaitGroup{},
		}
	})
	return tdm
}

func (m *TeardownManager) Context() context.Context {
	return m.ctx
}

func (m *TeardownManager) WaitGroup() *sync.WaitGroup {
	return m.wg
}

func (m *TeardownManager) TeardownFunc(f func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.teardowns = append(m.teardowns, f)
}

// Wait blocks until SIGINT or SIGTERM, then cancels the service context,
// runs registered teardown functions, and waits for outstanding work.
func (m *TeardownManager) Wait() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs

	m.cancel()

	m.mu.Lock()
	teardowns := make([]func(), len(m.teardowns))
	copy(teardowns, m.teardowns)
	m.mu.Unlock()

	for _, f := range teardowns {
		f()
	}

	m.wg.Wait()
}
