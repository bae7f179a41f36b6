package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/sbilibin2017/movie-catalog/internal/models"
)

// maxUploadBytes bounds a multipart movie request, poster included.
const maxUploadBytes = 32 << 20

var (
	errInvalidMovieID = errors.New("invalid movie id")
	errInvalidYear    = errors.New("invalid publishing year")
)

// movieForm is the typed multipart payload for movie create and update.
// Pointer fields distinguish an absent field from a zero value.
type movieForm struct {
	ID             *uuid.UUID
	Title          *string
	PublishingYear *int
	Upload         *models.Upload
}

// parseMovieForm reads a multipart movie request into a movieForm. The body
// is capped at maxUploadBytes before any parsing happens.
func parseMovieForm(w http.ResponseWriter, r *http.Request) (*movieForm, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, err
	}

	form := &movieForm{}

	if values, ok := r.MultipartForm.Value["id"]; ok && len(values) > 0 {
		id, err := uuid.Parse(values[0])
		if err != nil {
			return nil, errInvalidMovieID
		}
		form.ID = &id
	}

	if values, ok := r.MultipartForm.Value["title"]; ok && len(values) > 0 {
		title := values[0]
		form.Title = &title
	}

	if values, ok := r.MultipartForm.Value["publishingYear"]; ok && len(values) > 0 {
		year, err := strconv.Atoi(values[0])
		if err != nil {
			return nil, errInvalidYear
		}
		form.PublishingYear = &year
	}

	file, header, err := r.FormFile("file")
	if err == nil {
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return nil, err
		}
		form.Upload = &models.Upload{
			Name: header.Filename,
			Data: data,
		}
	} else if !errors.Is(err, http.ErrMissingFile) {
		return nil, err
	}

	return form, nil
}
