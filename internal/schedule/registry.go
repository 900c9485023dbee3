package schedule

import "sync"

// Registry hands out at most one Planner per user so concurrent requests of
// the same session observe one state. The registry guards only the map; each
// Planner guards its own state.
type Registry struct {
	mu       sync.Mutex
	planners map[int]*Planner
}

func NewRegistry() *Registry {
	return &Registry{planners: make(map[int]*Planner)}
}

// Get returns the user's planner, creating it via create on first use.
func (r *Registry) Get(userID int, create func() *Planner) *Planner {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.planners[userID]
	if !ok {
		p = create()
		r.planners[userID] = p
	}
	return p
}

// Drop forgets a user's session, forcing the next request to rebuild it from
// persisted text.
func (r *Registry) Drop(userID int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.planners, userID)
}
