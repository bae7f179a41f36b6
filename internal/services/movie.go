package services

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/movie-catalog/internal/logger"
	"github.com/sbilibin2017/movie-catalog/internal/models"
)

// PageSize is the fixed page size for movie listings.
const PageSize = 12

var (
	// ErrMovieNotFound is returned when no movie matches the id for the caller.
	ErrMovieNotFound = errors.New("movie not found")
	// ErrNoFileUploaded is returned when movie creation lacks a poster file.
	ErrNoFileUploaded = errors.New("no file uploaded")
)

// MovieReader defines read-only operations for movies.
type MovieReader interface {
	GetByID(ctx context.Context, userID, movieID uuid.UUID) (*models.MovieDB, error)
	List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.MovieDB, error)
	Count(ctx context.Context, userID uuid.UUID) (int, error)
}

// MovieWriter defines write operations for movies.
type MovieWriter interface {
	Save(ctx context.Context, userID uuid.UUID, title string, publishingYear int, poster string) (*models.MovieDB, error)
	Update(ctx context.Context, userID, movieID uuid.UUID, title *string, publishingYear *int, poster *string) (*models.MovieDB, error)
	Delete(ctx context.Context, userID, movieID uuid.UUID) (bool, error)
}

// FileStorer persists poster bytes and returns retrieval references.
type FileStorer interface {
	Save(ctx context.Context, ext string, data []byte) (string, error)
	Delete(ctx context.Context, ref string) error
}

// EventWriter defines a Kafka writer abstraction.
type EventWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// MovieService handles movie CRUD, poster storage and event publishing.
type MovieService struct {
	reader      MovieReader
	writer      MovieWriter
	files       FileStorer
	eventWriter EventWriter
}

// NewMovieService creates a new MovieService.
func NewMovieService(reader MovieReader, writer MovieWriter, files FileStorer, eventWriter EventWriter) *MovieService {
	return &MovieService{
		reader:      reader,
		writer:      writer,
		files:       files,
		eventWriter: eventWriter,
	}
}

// publishEvent publishes a movie mutation event to Kafka.
// Publishing is best-effort: failures are logged, never surfaced to the caller.
func (s *MovieService) publishEvent(ctx context.Context, eventType string, movie *models.MovieDB) {
	if s.eventWriter == nil {
		return
	}

	event := models.MovieEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		UserID:    movie.UserID.String(),
		MovieID:   movie.MovieID.String(),
		Title:     movie.Title,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal movie event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(movie.MovieID.String()),
		Value: data,
	}

	if err := s.eventWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish movie event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("movie event published", "event_id", event.EventID, "type", eventType)
	}
}

// Create stores the poster and persists a new movie record. The poster is
// written first; if the record write fails the stored poster is removed again
// so no orphaned object remains.
func (s *MovieService) Create(ctx context.Context, userID uuid.UUID, title string, publishingYear int, upload *models.Upload) (*models.MovieDB, error) {
	if upload == nil || len(upload.Data) == 0 {
		return nil, ErrNoFileUploaded
	}
	if title == "" || publishingYear == 0 {
		return nil, ErrMissingFields
	}

	poster, err := s.files.Save(ctx, filepath.Ext(upload.Name), upload.Data)
	if err != nil {
		logger.Log.Errorw("failed to store poster", "err", err)
		return nil, err
	}

	movie, err := s.writer.Save(ctx, userID, title, publishingYear, poster)
	if err != nil {
		logger.Log.Errorw("failed to save movie", "err", err)
		// Compensating delete so the upload does not leak
		if delErr := s.files.Delete(ctx, poster); delErr != nil {
			logger.Log.Errorw("failed to remove orphaned poster", "ref", poster, "err", delErr)
		}
		return nil, err
	}

	s.publishEvent(ctx, models.MovieCreated, movie)

	return movie, nil
}

// Get returns the caller's movie with the given id.
func (s *MovieService) Get(ctx context.Context, userID, movieID uuid.UUID) (*models.MovieDB, error) {
	movie, err := s.reader.GetByID(ctx, userID, movieID)
	if err != nil {
		logger.Log.Errorw("failed to get movie", "movie_id", movieID, "err", err)
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	return movie, nil
}

// List returns one page of the caller's movies with pagination metadata.
func (s *MovieService) List(ctx context.Context, userID uuid.UUID, page int) ([]models.MovieDB, *models.MovieListMeta, error) {
	if page < 1 {
		page = 1
	}

	movies, err := s.reader.List(ctx, userID, (page-1)*PageSize, PageSize)
	if err != nil {
		logger.Log.Errorw("failed to list movies", "err", err)
		return nil, nil, err
	}

	total, err := s.reader.Count(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to count movies", "err", err)
		return nil, nil, err
	}

	meta := &models.MovieListMeta{
		Page:        page,
		Limit:       PageSize,
		TotalMovies: total,
		TotalPages:  (total + PageSize - 1) / PageSize,
	}

	return movies, meta, nil
}

// Update applies a partial merge to the caller's movie. When a new poster
// file is given it replaces the stored reference and the old object is
// removed best-effort; without a file the existing poster is retained.
func (s *MovieService) Update(ctx context.Context, userID, movieID uuid.UUID, title *string, publishingYear *int, upload *models.Upload) (*models.MovieDB, error) {
	// An absent title keeps the stored value; a present one must not blank it.
	if title != nil && *title == "" {
		return nil, ErrMissingFields
	}

	var posterRef *string
	var oldPoster string

	if upload != nil && len(upload.Data) > 0 {
		existing, err := s.reader.GetByID(ctx, userID, movieID)
		if err != nil {
			logger.Log.Errorw("failed to get movie", "movie_id", movieID, "err", err)
			return nil, err
		}
		if existing == nil {
			return nil, ErrMovieNotFound
		}
		oldPoster = existing.Poster

		ref, err := s.files.Save(ctx, filepath.Ext(upload.Name), upload.Data)
		if err != nil {
			logger.Log.Errorw("failed to store poster", "err", err)
			return nil, err
		}
		posterRef = &ref
	}

	movie, err := s.writer.Update(ctx, userID, movieID, title, publishingYear, posterRef)
	if err != nil {
		logger.Log.Errorw("failed to update movie", "movie_id", movieID, "err", err)
		if posterRef != nil {
			if delErr := s.files.Delete(ctx, *posterRef); delErr != nil {
				logger.Log.Errorw("failed to remove orphaned poster", "ref", *posterRef, "err", delErr)
			}
		}
		return nil, err
	}
	if movie == nil {
		if posterRef != nil {
			if delErr := s.files.Delete(ctx, *posterRef); delErr != nil {
				logger.Log.Errorw("failed to remove orphaned poster", "ref", *posterRef, "err", delErr)
			}
		}
		return nil, ErrMovieNotFound
	}

	// Replaced poster bytes are no longer referenced
	if posterRef != nil && oldPoster != "" {
		if delErr := s.files.Delete(ctx, oldPoster); delErr != nil {
			logger.Log.Errorw("failed to remove replaced poster", "ref", oldPoster, "err", delErr)
		}
	}

	s.publishEvent(ctx, models.MovieUpdated, movie)

	return movie, nil
}

// Delete removes the caller's movie and its poster object.
func (s *MovieService) Delete(ctx context.Context, userID, movieID uuid.UUID) error {
	movie, err := s.reader.GetByID(ctx, userID, movieID)
	if err != nil {
		logger.Log.Errorw("failed to get movie", "movie_id", movieID, "err", err)
		return err
	}
	if movie == nil {
		return ErrMovieNotFound
	}

	deleted, err := s.writer.Delete(ctx, userID, movieID)
	if err != nil {
		logger.Log.Errorw("failed to delete movie", "movie_id", movieID, "err", err)
		return err
	}
	if !deleted {
		return ErrMovieNotFound
	}

	if movie.Poster != "" {
		if delErr := s.files.Delete(ctx, movie.Poster); delErr != nil {
			logger.Log.Errorw("failed to remove poster of deleted movie", "ref", movie.Poster, "err", delErr)
		}
	}

	s.publishEvent(ctx, models.MovieDeleted, movie)

	return nil
}
