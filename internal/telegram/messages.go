package telegram

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Messages holds the operator-editable message templates loaded once at
// startup. The caption template takes three values: card name, deck name
// and card meaning.
type Messages struct {
	Welcome     string
	Stranger    string
	Farewell    string
	CardCaption string
}

const captionPlaceholders = 3

// LoadMessages reads the message templates from dir. All four files are
// required: welcome.txt, stranger.txt, farewell.txt and caption.txt.
func LoadMessages(dir string) (*Messages, error) {
	welcome, err := readTemplate(dir, "welcome.txt")
	if err != nil {
		return nil, err
	}
	stranger, err := readTemplate(dir, "stranger.txt")
	if err != nil {
		return nil, err
	}
	farewell, err := readTemplate(dir, "farewell.txt")
	if err != nil {
		return nil, err
	}
	caption, err := readTemplate(dir, "caption.txt")
	if err != nil {
		return nil, err
	}

	if got := strings.Count(caption, "%s"); got != captionPlaceholders {
		return nil, fmt.Errorf("caption template must contain %d %%s placeholders, got %d", captionPlaceholders, got)
	}

	return &Messages{
		Welcome:     welcome,
		Stranger:    stranger,
		Farewell:    farewell,
		CardCaption: caption,
	}, nil
}

func readTemplate(dir, name string) (string, error) {
	raw, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("read message template %q: %w", name, err)
	}
	return strings.TrimRight(string(raw), "\n"), nil
}
