package client

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"gamelibrary-backend/internal/models"

	"github.com/gabriel-vasile/mimetype"
)

// MaxImageBytes caps the size of an image file attached to a game.
const MaxImageBytes = 5 << 20

// ValidationError lists the fields a game is missing before submission.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// ValidateGame checks a game before it is sent for creation. The server is
// more lenient; only the name is required there.
func ValidateGame(game *models.Game) error {
	if game == nil {
		return &ValidationError{Missing: []string{"Game"}}
	}

	var missing []string
	if strings.TrimSpace(game.Name) == "" {
		missing = append(missing, "Name")
	}
	if strings.TrimSpace(game.Description) == "" {
		missing = append(missing, "Description")
	}
	if game.GenreID == 0 {
		missing = append(missing, "GenreId")
	}
	if game.Price <= 0 {
		missing = append(missing, "Price")
	}
	if game.ReleasedDate.IsZero() {
		missing = append(missing, "ReleasedDate")
	}
	if strings.TrimSpace(game.Image) == "" {
		missing = append(missing, "Image")
	}

	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// EncodeImageFile reads an image from disk and returns it base64 encoded.
// Files that are too large or not images are rejected.
func EncodeImageFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to stat image: %w", err)
	}
	if info.Size() > MaxImageBytes {
		return "", fmt.Errorf("image %s is %d bytes, limit is %d", path, info.Size(), MaxImageBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", fmt.Errorf("%s is %s, not an image", path, mtype.String())
	}

	return base64.StdEncoding.EncodeToString(data), nil
}
