package services

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrFlowNotFound = errors.New("onboarding flow not found")
	ErrFlowExpired  = errors.New("onboarding flow expired")
)

type pendingFlow struct {
	flow      *Flow
	expiresAt time.Time
	timer     *time.Timer
}

// FlowStore keeps in-progress onboarding flows in memory, keyed by session ID
type FlowStore struct {
	flows   map[string]*pendingFlow
	mu      sync.RWMutex
	timeout time.Duration
	now     func() time.Time
}

func NewFlowStore(timeout time.Duration) *FlowStore {
	return &FlowStore{
		flows:   make(map[string]*pendingFlow),
		timeout: timeout,
		now:     time.Now,
	}
}

// Start creates a fresh flow at the signup step and returns its session ID
func (s *FlowStore) Start() (string, *Flow) {
	id := uuid.NewString()
	flow := NewFlow()

	s.mu.Lock()
	s.flows[id] = &pendingFlow{
		flow:      flow,
		expiresAt: s.now().Add(s.timeout),
		timer:     time.AfterFunc(s.timeout, func() { s.Remove(id) }),
	}
	s.mu.Unlock()

	log.Printf("Started onboarding flow %s", id)
	return id, flow
}

// Get returns the flow for a session ID
func (s *FlowStore) Get(id string) (*Flow, error) {
	s.mu.RLock()
	pending, exists := s.flows[id]
	s.mu.RUnlock()

	if !exists {
		return nil, ErrFlowNotFound
	}

	if s.now().After(pending.expiresAt) {
		s.Remove(id)
		return nil, ErrFlowExpired
	}

	return pending.flow, nil
}

// Remove drops a flow and stops its expiry timer
func (s *FlowStore) Remove(id string) {
	s.mu.Lock()
	pending, exists := s.flows[id]
	delete(s.flows, id)
	s.mu.Unlock()

	if exists {
		pending.timer.Stop()
	}
}

// Len reports how many flows are currently held
func (s *FlowStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.flows)
}
