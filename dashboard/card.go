package dashboard

import (
	"context"
	"sync"

	"go-restaurant/models"
)

// Card renders one food. Its available flag starts from the food and then
// only changes through ToggleAvailability.
type Card struct {
	dashboard *Dashboard

	mu             sync.Mutex
	food           models.Food
	localAvailable bool
}

func newCard(food models.Food, d *Dashboard) *Card {
	return &Card{dashboard: d, food: food, localAvailable: food.Available}
}

func (c *Card) setFood(food models.Food) {
	c.mu.Lock()
	c.food = food
	c.mu.Unlock()
}

// Food returns the food the card was last rendered with.
func (c *Card) Food() models.Food {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.food
}

// Available is the flag the card displays.
func (c *Card) Available() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.localAvailable
}

// ToggleAvailability sends the food with the displayed flag inverted and
// shows the sent value once the remote has accepted it. On failure the
// flag is unchanged.
func (c *Card) ToggleAvailability(ctx context.Context) error {
	c.mu.Lock()
	food := c.food
	food.Available = !c.localAvailable
	c.mu.Unlock()

	d := c.dashboard
	if _, err := d.remote.Update(ctx, food.ID, food); err != nil {
		return d.fail(OpToggle, err)
	}

	c.mu.Lock()
	c.localAvailable = food.Available
	c.mu.Unlock()
	return nil
}

// RequestEdit opens the edit modal on this card's food.
func (c *Card) RequestEdit() {
	c.dashboard.OpenEditModal(c.Food())
}

// RequestDelete deletes this card's food through the dashboard.
func (c *Card) RequestDelete(ctx context.Context) error {
	return c.dashboard.Delete(ctx, c.Food().ID)
}
