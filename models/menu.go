package models

// MenuItem is a dish offered by the restaurant. Fields the admin posted
// beyond the ones below are kept in Extra and returned as they were stored.
type MenuItem struct {
	ID       ID                     `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string                 `bson:"name" json:"name"`
	Recipe   string                 `bson:"recipe,omitempty" json:"recipe,omitempty"`
	Image    string                 `bson:"image,omitempty" json:"image,omitempty"`
	Category string                 `bson:"category" json:"category"`
	Price    float64                `bson:"price" json:"price"`
	Extra    map[string]interface{} `bson:",inline" json:"-"`
}

func (m MenuItem) MarshalJSON() ([]byte, error) {
	type menuItem MenuItem
	return withExtra(menuItem(m), m.Extra)
}

// Review is a customer testimonial. The collection is read-only.
type Review struct {
	ID      ID      `bson:"_id,omitempty" json:"_id,omitempty"`
	Name    string  `bson:"name" json:"name"`
	Details string  `bson:"details" json:"details"`
	Rating  float64 `bson:"rating" json:"rating"`
}
