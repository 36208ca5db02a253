package repositories

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"github.com/nmakharadze/roster/internal/formatter"
	"github.com/nmakharadze/roster/internal/models"
	"github.com/nmakharadze/roster/internal/shared"
)

const (
	DefaultCSVPath  = "users.csv"
	DefaultJSONPath = "users.json"
)

// FileStore implements [Store] over two sibling files: an append-only CSV
// log (the source of truth for reads) and a JSON mirror holding the full
// record array, rewritten on every add.
//
// The two sinks are not written atomically. A crash after the CSV append but
// before the JSON rewrite leaves the CSV ahead by one record; this matches
// the documented failure model and is not repaired here.
type FileStore struct {
	csvPath  string
	jsonPath string
}

// NewFileStore creates a [FileStore] writing to the given paths.
// Empty paths fall back to [DefaultCSVPath] and [DefaultJSONPath].
func NewFileStore(csvPath, jsonPath string) *FileStore {
	if csvPath == "" {
		csvPath = DefaultCSVPath
	}
	if jsonPath == "" {
		jsonPath = DefaultJSONPath
	}
	return &FileStore{csvPath: csvPath, jsonPath: jsonPath}
}

// CSVPath returns the path of the CSV log.
func (s *FileStore) CSVPath() string { return s.csvPath }

// JSONPath returns the path of the JSON mirror.
func (s *FileStore) JSONPath() string { return s.jsonPath }

// Add appends the record to the CSV log, then rewrites the JSON mirror with
// the record appended to the existing array.
//
// A mirror file that exists but does not parse as a user array fails the add
// with an error wrapping [shared.ErrPersistence]; only a genuinely absent
// mirror is treated as an empty array. The CSV append has already happened
// at that point.
func (s *FileStore) Add(user models.User) error {
	if err := s.appendCSV(user); err != nil {
		return err
	}

	users, err := s.readMirror()
	if err != nil {
		return err
	}

	users = append(users, user)
	return s.writeMirror(users)
}

// ListAll reads the CSV log and rehydrates each row through [models.NewUser].
//
// The JSON mirror is never consulted on the read path. A missing CSV file
// yields an empty slice; a row that fails to parse or validate fails the
// whole listing with an error wrapping [shared.ErrPersistence], so a corrupt
// log surfaces instead of silently shrinking.
func (s *FileStore) ListAll() ([]models.User, error) {
	f, err := os.Open(s.csvPath)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.User{}, nil
		}
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read CSV file %s: %v", shared.ErrPersistence, s.csvPath, err)
	}

	users := make([]models.User, 0, len(rows))
	for i, row := range rows {
		user, err := formatter.ParseUserRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d of %s: %w", i+1, s.csvPath, err)
		}
		users = append(users, user)
	}

	return users, nil
}

// appendCSV writes a single record row to the CSV log, creating the file if absent.
func (s *FileStore) appendCSV(user models.User) error {
	f, err := os.OpenFile(s.csvPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(formatter.UserRow(user)); err != nil {
		return fmt.Errorf("failed to write CSV record: %w", err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("CSV writer error: %w", err)
	}

	return nil
}

// readMirror loads the JSON mirror array. A missing file is an empty array;
// malformed content is a persistence failure, never silently discarded.
func (s *FileStore) readMirror() ([]models.User, error) {
	data, err := os.ReadFile(s.jsonPath)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.User{}, nil
		}
		return nil, fmt.Errorf("failed to read JSON mirror: %w", err)
	}

	var users []models.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("%w: malformed JSON mirror %s: %v", shared.ErrPersistence, s.jsonPath, err)
	}

	return users, nil
}

// writeMirror rewrites the whole JSON mirror, pretty-printed with non-ASCII preserved.
func (s *FileStore) writeMirror(users []models.User) error {
	data, err := shared.MarshalJSON(users, true)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON mirror: %w", err)
	}

	if err := os.WriteFile(s.jsonPath, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write JSON mirror: %w", err)
	}

	return nil
}
