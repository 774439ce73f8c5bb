package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
)

type cloner[T any] interface {
	Clone() T
}

type entry[T any] struct {
	seq   uint64
	value T
}

// collection is a keyed container that remembers insertion order.
type collection[T cloner[T]] struct {
	items map[string]entry[T]
	next  uint64
}

func newCollection[T cloner[T]]() *collection[T] {
	return &collection[T]{items: make(map[string]entry[T])}
}

func (c *collection[T]) insert(id string, v T) {
	c.next++
	c.items[id] = entry[T]{seq: c.next, value: v.Clone()}
}

func (c *collection[T]) replace(id string, v T) {
	e := c.items[id]
	e.value = v.Clone()
	c.items[id] = e
}

func (c *collection[T]) get(id string) (T, bool) {
	e, ok := c.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	return e.value.Clone(), true
}

func (c *collection[T]) remove(id string) bool {
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	return true
}

// filter returns clones of the matching values in insertion order.
// A nil keep matches everything.
func (c *collection[T]) filter(keep func(T) bool) []T {
	matched := make([]entry[T], 0, len(c.items))
	for _, e := range c.items {
		if keep == nil || keep(e.value) {
			matched = append(matched, e)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].seq < matched[j].seq })

	out := make([]T, len(matched))
	for i, e := range matched {
		out[i] = e.value.Clone()
	}
	return out
}

// first returns the earliest inserted value accepted by keep.
func (c *collection[T]) first(keep func(T) bool) (T, bool) {
	var (
		best entry[T]
		ok   bool
	)
	for _, e := range c.items {
		if keep(e.value) && (!ok || e.seq < best.seq) {
			best, ok = e, true
		}
	}
	if !ok {
		var zero T
		return zero, false
	}
	return best.value.Clone(), true
}

type memoryState struct {
	mu    sync.RWMutex
	now   func() time.Time
	newID func() string

	users         *collection[models.User]
	profiles      *collection[models.Profile]
	gigs          *collection[models.Gig]
	orders        *collection[models.Order]
	connections   *collection[models.Connection]
	projects      *collection[models.Project]
	notifications *collection[models.Notification]
}

// MemoryOption customizes a memory store.
type MemoryOption func(*memoryState)

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) MemoryOption {
	return func(s *memoryState) {
		s.now = now
	}
}

// WithIDGenerator overrides the id source.
func WithIDGenerator(newID func() string) MemoryOption {
	return func(s *memoryState) {
		s.newID = newID
	}
}

// NewMemoryStore creates an empty store that keeps every collection in process
// memory. Its contents live as long as the returned value.
func NewMemoryStore(opts ...MemoryOption) *Store {
	state := &memoryState{
		now:           time.Now,
		newID:         uuid.NewString,
		users:         newCollection[models.User](),
		profiles:      newCollection[models.Profile](),
		gigs:          newCollection[models.Gig](),
		orders:        newCollection[models.Order](),
		connections:   newCollection[models.Connection](),
		projects:      newCollection[models.Project](),
		notifications: newCollection[models.Notification](),
	}
	for _, opt := range opts {
		opt(state)
	}

	return &Store{
		Users:         &memoryUserRepository{state},
		Profiles:      &memoryProfileRepository{state},
		Gigs:          &memoryGigRepository{state},
		Orders:        &memoryOrderRepository{state},
		Connections:   &memoryConnectionRepository{state},
		Projects:      &memoryProjectRepository{state},
		Notifications: &memoryNotificationRepository{state},
	}
}

func found[T any](v T, ok bool) (*T, error) {
	if !ok {
		return nil, ErrNotFound
	}
	return &v, nil
}

// Users

type memoryUserRepository struct {
	s *memoryState
}

func (r *memoryUserRepository) Create(user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	user.ID = r.s.newID()
	user.WalletAddress = nil
	user.CreatedAt = r.s.now()
	r.s.users.insert(user.ID, *user)
	return nil
}

func (r *memoryUserRepository) FindByID(id string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	v, ok := r.s.users.get(id)
	return found(v, ok)
}

func (r *memoryUserRepository) FindByEmail(email string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	v, ok := r.s.users.first(func(u models.User) bool { return u.Email == email })
	return found(v, ok)
}

func (r *memoryUserRepository) UpdateWallet(id, walletAddress string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	user, ok := r.s.users.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	user.WalletAddress = &walletAddress
	r.s.users.replace(id, user)
	return &user, nil
}

// Profiles

type memoryProfileRepository struct {
	s *memoryState
}

func (r *memoryProfileRepository) Create(profile *models.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	profile.ID = r.s.newID()
	profile.Normalize()
	r.s.profiles.insert(profile.ID, *profile)
	return nil
}

func (r *memoryProfileRepository) FindByID(id string) (*models.Profile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	v, ok := r.s.profiles.get(id)
	return found(v, ok)
}

func (r *memoryProfileRepository) FindByUserID(userID string) (*models.Profile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	v, ok := r.s.profiles.first(func(p models.Profile) bool { return p.UserID == userID })
	return found(v, ok)
}

func (r *memoryProfileRepository) Update(id string, patch models.ProfilePatch) (*models.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	profile, ok := r.s.profiles.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	profile.Apply(patch)
	r.s.profiles.replace(id, profile)
	return &profile, nil
}

func (r *memoryProfileRepository) ListFreelancers() ([]models.Profile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	freelancerIDs := make(map[string]struct{})
	for _, u := range r.s.users.filter(models.User.IsFreelancer) {
		freelancerIDs[u.ID] = struct{}{}
	}
	return r.s.profiles.filter(func(p models.Profile) bool {
		_, ok := freelancerIDs[p.UserID]
		return ok
	}), nil
}

// Gigs

type memoryGigRepository struct {
	s *memoryState
}

func (r *memoryGigRepository) Create(gig *models.Gig) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	gig.ID = r.s.newID()
	gig.Views = 0
	gig.CreatedAt = r.s.now()
	r.s.gigs.insert(gig.ID, *gig)
	return nil
}

func (r *memoryGigRepository) FindByID(id string) (*models.Gig, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	v, ok := r.s.gigs.get(id)
	return found(v, ok)
}

func (r *memoryGigRepository) List() ([]models.Gig, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.gigs.filter(nil), nil
}

func (r *memoryGigRepository) ListByFreelancer(freelancerID string) ([]models.Gig, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.gigs.filter(func(g models.Gig) bool { return g.FreelancerID == freelancerID }), nil
}

func (r *memoryGigRepository) Update(id string, patch models.GigPatch) (*models.Gig, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	gig, ok := r.s.gigs.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	gig.Apply(patch)
	r.s.gigs.replace(id, gig)
	return &gig, nil
}

func (r *memoryGigRepository) Delete(id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.gigs.remove(id), nil
}

// Orders

type memoryOrderRepository struct {
	s *memoryState
}

func (r *memoryOrderRepository) Create(order *models.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	order.ID = r.s.newID()
	order.Normalize()
	order.CreatedAt = r.s.now()
	order.CompletedAt = nil
	r.s.orders.insert(order.ID, *order)
	return nil
}

func (r *memoryOrderRepository) FindByID(id string) (*models.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	v, ok := r.s.orders.get(id)
	return found(v, ok)
}

func (r *memoryOrderRepository) ListByClient(clientID string) ([]models.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.orders.filter(func(o models.Order) bool { return o.ClientID == clientID }), nil
}

func (r *memoryOrderRepository) ListByFreelancer(freelancerID string) ([]models.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.orders.filter(func(o models.Order) bool { return o.FreelancerID == freelancerID }), nil
}

func (r *memoryOrderRepository) Update(id string, patch models.OrderPatch) (*models.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	order, ok := r.s.orders.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	order.Apply(patch)
	r.s.orders.replace(id, order)
	return &order, nil
}

// Connections

type memoryConnectionRepository struct {
	s *memoryState
}

func (r *memoryConnectionRepository) Create(connection *models.Connection) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	connection.ID = r.s.newID()
	connection.CreatedAt = r.s.now()
	r.s.connections.insert(connection.ID, *connection)
	return nil
}

func (r *memoryConnectionRepository) FindByID(id string) (*models.Connection, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	v, ok := r.s.connections.get(id)
	return found(v, ok)
}

func (r *memoryConnectionRepository) ListByClient(clientID string) ([]models.Connection, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.connections.filter(func(c models.Connection) bool { return c.ClientID == clientID }), nil
}

// Projects

type memoryProjectRepository struct {
	s *memoryState
}

func (r *memoryProjectRepository) Create(project *models.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	project.ID = r.s.newID()
	project.CreatedAt = r.s.now()
	r.s.projects.insert(project.ID, *project)
	return nil
}

func (r *memoryProjectRepository) FindByID(id string) (*models.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	v, ok := r.s.projects.get(id)
	return found(v, ok)
}

func (r *memoryProjectRepository) List() ([]models.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.projects.filter(nil), nil
}

func (r *memoryProjectRepository) ListByClient(clientID string) ([]models.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.projects.filter(func(p models.Project) bool { return p.ClientID == clientID }), nil
}

func (r *memoryProjectRepository) Update(id string, patch models.ProjectPatch) (*models.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	project, ok := r.s.projects.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	project.Apply(patch)
	r.s.projects.replace(id, project)
	return &project, nil
}

func (r *memoryProjectRepository) Delete(id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.projects.remove(id), nil
}

// Notifications

type memoryNotificationRepository struct {
	s *memoryState
}

func (r *memoryNotificationRepository) Create(notification *models.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	notification.ID = r.s.newID()
	notification.Normalize()
	notification.CreatedAt = r.s.now()
	r.s.notifications.insert(notification.ID, *notification)
	return nil
}

func (r *memoryNotificationRepository) FindByID(id string) (*models.Notification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	v, ok := r.s.notifications.get(id)
	return found(v, ok)
}

func (r *memoryNotificationRepository) ListByUser(userID string) ([]models.Notification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.notifications.filter(func(n models.Notification) bool { return n.UserID == userID }), nil
}

func (r *memoryNotificationRepository) MarkAsRead(id string) (*models.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	notification, ok := r.s.notifications.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	notification.Read = true
	r.s.notifications.replace(id, notification)
	return &notification, nil
}
