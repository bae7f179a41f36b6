package models

// Movie event types published to Kafka.
const (
	MovieCreated = "movie_created"
	MovieUpdated = "movie_updated"
	MovieDeleted = "movie_deleted"
)

// MovieEvent is the payload published to Kafka on movie mutations.
type MovieEvent struct {
	EventID   string `json:"event_id"`  // Unique event id
	Type      string `json:"type"`      // One of MovieCreated/MovieUpdated/MovieDeleted
	Timestamp int64  `json:"timestamp"` // Unix time of the mutation
	UserID    string `json:"user_id"`   // Owning user
	MovieID   string `json:"movie_id"`  // Affected movie
	Title     string `json:"title"`     // Movie title at event time
}
