package store

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyLocker_SerialisesSameKey(t *testing.T) {
	k := NewKeyLocker()

	unlock := k.Lock(KeyNotes)
	acquired := make(chan struct{})
	go func() {
		u := k.Lock(KeyNotes)
		close(acquired)
		u()
	}()

	select {
	case <-acquired:
		t.Fatal("second holder acquired a locked key")
	case <-time.After(50 * time.Millisecond):
	}

	unlock()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second holder never acquired the key")
	}
}

func TestKeyLocker_DifferentKeysDoNotBlock(t *testing.T) {
	k := NewKeyLocker()

	unlock := k.Lock(KeyNotes)
	defer unlock()

	done := make(chan struct{})
	go func() {
		k.Lock(KeyCredentialPIN)()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on another key blocked")
	}
}

func TestKeyLocker_CounterUnderContention(t *testing.T) {
	k := NewKeyLocker()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := k.Lock(KeyNotes)
			counter++
			unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}
