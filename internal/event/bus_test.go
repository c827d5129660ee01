package event

import (
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusDeliversToAllSubscribers(t *testing.T) {
	bus, err := NewBus(2)
	require.NoError(t, err)
	defer bus.Close()

	var mu sync.Mutex
	got := make(map[int]string)
	var wg sync.WaitGroup
	wg.Add(2)

	for i := 0; i < 2; i++ {
		i := i
		bus.Subscribe(func(e Event) {
			mu.Lock()
			got[i] = e.Name()
			mu.Unlock()
			wg.Done()
		})
	}

	bus.Publish(Initialized{Admin: common.HexToAddress("0x01")})

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("subscribers were not called")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "vault.initialized", got[0])
	assert.Equal(t, "vault.initialized", got[1])
}

func TestNilBusPublishIsNoop(t *testing.T) {
	var bus *Bus
	assert.NotPanics(t, func() {
		bus.Publish(ContributorRegistered{})
		bus.Close()
	})
}
