package models

// Food is one entry of the restaurant menu. An ID of zero marks a draft
// that the server has not assigned an identity to yet.
type Food struct {
	ID          int64   `json:"id,omitempty" bson:"_id"`
	Name        string  `json:"name" bson:"name"`
	Description string  `json:"description" bson:"description"`
	Price       float64 `json:"price" bson:"price"`
	Image       string  `json:"image" bson:"image"`
	Available   bool    `json:"available" bson:"available"`
}

// FoodPatch carries the fields an edit overrides. Nil fields keep the
// current value.
type FoodPatch struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Available   *bool    `json:"available,omitempty"`
}

// Apply returns food with every set field of the patch written over it.
func (p FoodPatch) Apply(food Food) Food {
	if p.Name != nil {
		food.Name = *p.Name
	}
	if p.Description != nil {
		food.Description = *p.Description
	}
	if p.Price != nil {
		food.Price = *p.Price
	}
	if p.Image != nil {
		food.Image = *p.Image
	}
	if p.Available != nil {
		food.Available = *p.Available
	}
	return food
}

// Empty reports whether the patch changes nothing.
func (p FoodPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil &&
		p.Image == nil && p.Available == nil
}
