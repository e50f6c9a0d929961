package models

// InsertResult mirrors the acknowledgement of a single insert.
type InsertResult struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   ID   `json:"insertedId"`
}

// UpdateResult mirrors the acknowledgement of a single update.
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
	UpsertedID    *ID   `json:"upsertedId"`
}

// DeleteResult mirrors the acknowledgement of a delete.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every 4xx/5xx answer.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// AdminStats is the body of GET /admin-stats.
type AdminStats struct {
	Customers int64  `json:"customers"`
	Products  int64  `json:"products"`
	Orders    int64  `json:"orders"`
	Revenue   string `json:"revinew"`
}

// CategoryStat is one row of GET /order-stats.
type CategoryStat struct {
	Category string  `bson:"category" json:"category"`
	Count    int64   `bson:"count" json:"count"`
	Total    float64 `bson:"total" json:"total"`
}
