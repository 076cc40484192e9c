package web

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/QuaresmaHarygens/Talkam/models"
)

const maxFormMemory = 32 << 20

// parseDraftForm reads a multipart report form into draft data. Attached
// files are buffered whole; they are small phone captures, not streams.
func parseDraftForm(r *http.Request) (models.DraftData, error) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return models.DraftData{}, fmt.Errorf("failed to parse form: %w", err)
	}

	data := models.DraftData{
		Category:  r.FormValue("category"),
		Severity:  r.FormValue("severity"),
		Summary:   r.FormValue("summary"),
		Details:   r.FormValue("details"),
		County:    r.FormValue("county"),
		District:  r.FormValue("district"),
		Anonymous: r.FormValue("anonymous") == "true",
	}

	var err error
	if data.Latitude, err = formFloat(r, "latitude"); err != nil {
		return models.DraftData{}, err
	}
	if data.Longitude, err = formFloat(r, "longitude"); err != nil {
		return models.DraftData{}, err
	}
	if raw := r.FormValue("witness_count"); raw != "" {
		count, err := strconv.Atoi(raw)
		if err != nil {
			return models.DraftData{}, fmt.Errorf("invalid witness_count: %w", err)
		}
		data.WitnessCount = count
	}

	for _, header := range r.MultipartForm.File["media"] {
		file, err := header.Open()
		if err != nil {
			return models.DraftData{}, fmt.Errorf("failed to open attachment %s: %w", header.Filename, err)
		}
		content, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return models.DraftData{}, fmt.Errorf("failed to read attachment %s: %w", header.Filename, err)
		}
		data.Files = append(data.Files, models.DraftFile{
			Name: header.Filename,
			Type: header.Header.Get("Content-Type"),
			Size: header.Size,
			Data: content,
		})
	}
	return data, nil
}

func formFloat(r *http.Request, field string) (float64, error) {
	raw := r.FormValue(field)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", field, err)
	}
	return value, nil
}
