package client

import (
	"fmt"
	"sync"
)

// MutationState is the lifecycle state of a dispatched mutation.
type MutationState string

const (
	StatePending    MutationState = "pending"
	StateApplied    MutationState = "applied"
	StateCommitted  MutationState = "committed"
	StateRolledBack MutationState = "rolled_back"
)

var allowedTransitions = map[MutationState][]MutationState{
	StatePending: {StateApplied, StateCommitted, StateRolledBack},
	StateApplied: {StateCommitted, StateRolledBack},
}

// Transaction tracks one dispatch of a Mutation.
type Transaction struct {
	id       string
	mutation Mutation

	mu      sync.Mutex
	state   MutationState
	payload map[string]any
	err     error
}

func newTransaction(id string, m Mutation) *Transaction {
	return &Transaction{id: id, mutation: m, state: StatePending}
}

// ID returns the clientMutationId sent with the request.
func (t *Transaction) ID() string { return t.id }

// Mutation returns the dispatched descriptor.
func (t *Transaction) Mutation() Mutation { return t.mutation }

// State returns the current state.
func (t *Transaction) State() MutationState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Payload returns the server payload once committed.
func (t *Transaction) Payload() map[string]any {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.payload
}

// Err returns the failure that rolled the transaction back.
func (t *Transaction) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

func (t *Transaction) transition(to MutationState) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, allowed := range allowedTransitions[t.state] {
		if allowed == to {
			t.state = to
			return nil
		}
	}
	return fmt.Errorf("client: invalid transition from %s to %s", t.state, to)
}

func (t *Transaction) commit(payload map[string]any) error {
	if err := t.transition(StateCommitted); err != nil {
		return err
	}
	t.mu.Lock()
	t.payload = payload
	t.mu.Unlock()
	return nil
}

func (t *Transaction) rollback(cause error) error {
	if err := t.transition(StateRolledBack); err != nil {
		return err
	}
	t.mu.Lock()
	t.err = cause
	t.mu.Unlock()
	return nil
}
