package fs

import (
	"slices"

	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	ReadOnly           bool                `json:"read_only"`
	EventBuffer        int                 `json:"event_buffer"`
	Watchers           int                 `json:"watchers"`
	ActiveTransactions []string            `json:"active_transactions,omitempty"`
	LastTransaction    *TransactionSummary `json:"last_transaction,omitempty"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.active))
	for id := range r.active {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	var last *TransactionSummary
	if r.lastTx != nil {
		copied := *r.lastTx
		last = &copied
	}

	return RepositoryState{
		ReadOnly:           r.config.ReadOnly,
		EventBuffer:        r.config.EventBuffer,
		Watchers:           r.watchers,
		ActiveTransactions: ids,
		LastTransaction:    last,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "fs-repository"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)
