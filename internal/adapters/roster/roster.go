// Package roster contains the file adapter for the line-oriented doctor
// roster.
package roster

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/bluezephyr/patients/internal/models"
)

// Reader implements secondary.DoctorSource over a plain text file holding
// one doctor name per line. Blank lines are skipped; trailing whitespace is
// stripped.
type Reader struct {
	path string
}

// NewReader creates a reader for the given roster file.
func NewReader(path string) *Reader {
	return &Reader{path: path}
}

// Load reads the roster in file order, duplicates included.
func (r *Reader) Load(ctx context.Context) (*models.Roster, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster file: %w", err)
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		name := strings.TrimRight(scanner.Text(), " \t\r")
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read roster file %s: %w", r.path, err)
	}

	return models.NewRoster(names), nil
}
