package models

// CartItem is a pending, unpaid menu item in one user's cart.
type CartItem struct {
	ID         ID                     `bson:"_id,omitempty" json:"_id,omitempty"`
	MenuItemID ID                     `bson:"menuItemId" json:"menuItemId"`
	Name       string                 `bson:"name,omitempty" json:"name,omitempty"`
	Image      string                 `bson:"image,omitempty" json:"image,omitempty"`
	Price      float64                `bson:"price" json:"price"`
	Email      string                 `bson:"email" json:"email"`
	Extra      map[string]interface{} `bson:",inline" json:"-"`
}

func (c CartItem) MarshalJSON() ([]byte, error) {
	type cartItem CartItem
	return withExtra(cartItem(c), c.Extra)
}
