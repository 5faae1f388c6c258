// Package dashboard keeps the in-memory menu in step with the remote foods
// collection.
//
// The Dashboard owns the canonical list. Every mutation goes through the
// Remote and is reconciled into the list once the call returns:
//
//   - create appends the server's food, or changes nothing on failure;
//   - update replaces the entry with the returned id, or changes nothing;
//   - delete removes the entry whatever the remote outcome.
//
// Each Card keeps its own copy of the available flag, taken when the card
// is first rendered. It is not refreshed from the list afterwards.
package dashboard

import (
	"context"
	"io"
	"log"
	"sync"

	"go-restaurant/models"
)

// Remote is the foods collection as seen by the dashboard. *api.Client
// implements it.
type Remote interface {
	List(ctx context.Context) ([]models.Food, error)
	Create(ctx context.Context, food models.Food) (models.Food, error)
	Update(ctx context.Context, id int64, food models.Food) (models.Food, error)
	Delete(ctx context.Context, id int64) error
}

type Dashboard struct {
	remote   Remote
	logger   *log.Logger
	notifier Notifier

	mu                sync.Mutex
	items             []models.Food
	creationModalOpen bool
	editModalOpen     bool
	itemBeingEdited   models.Food
	cards             map[int64]*Card
}

type Option func(*Dashboard)

// WithLogger sets the developer log failures are written to.
func WithLogger(l *log.Logger) Option {
	return func(d *Dashboard) { d.logger = l }
}

// WithNotifier routes failures to n.
func WithNotifier(n Notifier) Option {
	return func(d *Dashboard) { d.notifier = n }
}

func New(remote Remote, opts ...Option) *Dashboard {
	d := &Dashboard{
		remote:   remote,
		logger:   log.New(io.Discard, "", 0),
		notifier: discard{},
		items:    []models.Food{},
		cards:    make(map[int64]*Card),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Dashboard) fail(op Op, err error) error {
	d.logger.Printf("%s: %v", op, err)
	d.notifier.Notify(newNotification(op, err))
	return err
}

// LoadAll replaces the list with the remote collection. On failure the
// list is left as it was.
func (d *Dashboard) LoadAll(ctx context.Context) error {
	foods, err := d.remote.List(ctx)
	if err != nil {
		return d.fail(OpLoad, err)
	}
	if foods == nil {
		foods = []models.Food{}
	}
	d.mu.Lock()
	d.items = foods
	d.mu.Unlock()
	return nil
}

// Create sends candidate as a new food, always available, and appends the
// server's copy to the list.
func (d *Dashboard) Create(ctx context.Context, candidate models.Food) (models.Food, error) {
	candidate.ID = 0
	candidate.Available = true
	created, err := d.remote.Create(ctx, candidate)
	if err != nil {
		return models.Food{}, d.fail(OpCreate, err)
	}
	d.mu.Lock()
	d.items = append(d.items, created)
	d.mu.Unlock()
	return created, nil
}

// Update merges partial over the item being edited and sends the result.
// The list entry whose id equals the returned id is replaced by the
// response.
func (d *Dashboard) Update(ctx context.Context, partial models.FoodPatch) (models.Food, error) {
	d.mu.Lock()
	editing := d.itemBeingEdited
	d.mu.Unlock()
	if editing.ID == 0 {
		return models.Food{}, d.fail(OpUpdate, ErrNoItemBeingEdited)
	}

	updated, err := d.remote.Update(ctx, editing.ID, partial.Apply(editing))
	if err != nil {
		return models.Food{}, d.fail(OpUpdate, err)
	}

	d.mu.Lock()
	found := false
	for i, f := range d.items {
		if f.ID == updated.ID {
			d.items[i] = updated
			found = true
		}
	}
	d.mu.Unlock()
	if !found {
		return models.Food{}, d.fail(OpUpdate, &MismatchError{ID: updated.ID})
	}
	return updated, nil
}

// Delete asks the remote to delete id and removes it from the list even
// when the request fails. The remote error is still returned.
func (d *Dashboard) Delete(ctx context.Context, id int64) error {
	err := d.remote.Delete(ctx, id)

	d.mu.Lock()
	kept := make([]models.Food, 0, len(d.items))
	for _, f := range d.items {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	d.items = kept
	d.mu.Unlock()

	if err != nil {
		return d.fail(OpDelete, err)
	}
	return nil
}

func (d *Dashboard) OpenCreationModal() {
	d.mu.Lock()
	d.creationModalOpen = true
	d.mu.Unlock()
}

func (d *Dashboard) ToggleCreationModal() {
	d.mu.Lock()
	d.creationModalOpen = !d.creationModalOpen
	d.mu.Unlock()
}

// OpenEditModal snapshots food as the item being edited.
func (d *Dashboard) OpenEditModal(food models.Food) {
	d.mu.Lock()
	d.itemBeingEdited = food
	d.editModalOpen = true
	d.mu.Unlock()
}

func (d *Dashboard) ToggleEditModal() {
	d.mu.Lock()
	d.editModalOpen = !d.editModalOpen
	d.mu.Unlock()
}

func (d *Dashboard) CreationModalOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.creationModalOpen
}

func (d *Dashboard) EditModalOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.editModalOpen
}

// ItemBeingEdited returns the snapshot taken by OpenEditModal, or the zero
// Food.
func (d *Dashboard) ItemBeingEdited() models.Food {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.itemBeingEdited
}

// Items returns a copy of the canonical list.
func (d *Dashboard) Items() []models.Food {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]models.Food(nil), d.items...)
}

// Find returns the list entry with the given id.
func (d *Dashboard) Find(id int64) (models.Food, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, f := range d.items {
		if f.ID == id {
			return f, true
		}
	}
	return models.Food{}, false
}

// Cards renders the list: one card per entry, in list order. A card is
// created the first time its id is rendered and reused afterwards, so its
// available flag survives re-renders and reloads. Cards whose id left the
// list are dropped. Rendering never calls the remote.
func (d *Dashboard) Cards() []*Card {
	d.mu.Lock()
	defer d.mu.Unlock()

	cards := make([]*Card, 0, len(d.items))
	seen := make(map[int64]bool, len(d.items))
	for _, f := range d.items {
		c, ok := d.cards[f.ID]
		if !ok {
			c = newCard(f, d)
			d.cards[f.ID] = c
		} else {
			c.setFood(f)
		}
		seen[f.ID] = true
		cards = append(cards, c)
	}
	for id := range d.cards {
		if !seen[id] {
			delete(d.cards, id)
		}
	}
	return cards
}
