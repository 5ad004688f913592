package userrole

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// fileAssignmentData represents all role assignment data stored in the file
type fileAssignmentData struct {
	Assignments map[string]RoleAssignment `json:"assignments"` // keyed by user ID
}

// FileAssignmentRepository implements AssignmentRepository using file-based
// storage
type FileAssignmentRepository struct {
	dataDir string
	data    *fileAssignmentData
	mutex   sync.RWMutex
}

// NewFileAssignmentRepository creates a new file-based assignment repository
func NewFileAssignmentRepository(dataDir string) (*FileAssignmentRepository, error) {
	// Create data directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	repo := &FileAssignmentRepository{
		dataDir: dataDir,
		data: &fileAssignmentData{
			Assignments: make(map[string]RoleAssignment),
		},
	}

	// Load existing data
	if err := repo.load(); err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}

	return repo, nil
}

// CreateAssignment inserts a new assignment unless the user id or email is
// already taken
func (r *FileAssignmentRepository) CreateAssignment(ctx context.Context, params CreateAssignmentParams) (RoleAssignment, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.data.Assignments[params.UserID]; ok {
		return RoleAssignment{}, ErrAssignmentExists
	}
	for _, existing := range r.data.Assignments {
		if existing.Email == params.Email {
			return RoleAssignment{}, ErrAssignmentExists
		}
	}

	assignment := RoleAssignment{
		ID:        uuid.New(),
		UserID:    params.UserID,
		Email:     params.Email,
		Role:      params.Role,
		CreatedAt: time.Now(),
	}
	r.data.Assignments[params.UserID] = assignment

	if err := r.save(); err != nil {
		delete(r.data.Assignments, params.UserID)
		return RoleAssignment{}, err
	}
	return assignment, nil
}

// GetAssignmentByUserID looks up an assignment by user id
func (r *FileAssignmentRepository) GetAssignmentByUserID(ctx context.Context, userID string) (RoleAssignment, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	assignment, ok := r.data.Assignments[userID]
	if !ok {
		return RoleAssignment{}, ErrAssignmentNotFound
	}
	return assignment, nil
}

// FindAssignment returns an assignment matching the user id or the email
func (r *FileAssignmentRepository) FindAssignment(ctx context.Context, userID, email string) (RoleAssignment, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if assignment, ok := r.data.Assignments[userID]; ok {
		return assignment, nil
	}
	for _, assignment := range r.data.Assignments {
		if assignment.Email == email {
			return assignment, nil
		}
	}
	return RoleAssignment{}, ErrAssignmentNotFound
}

// load reads assignment data from file
func (r *FileAssignmentRepository) load() error {
	filePath := filepath.Join(r.dataDir, "assignments.json")

	// If file doesn't exist, start with empty data
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	// If file is empty, start with empty data
	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, r.data); err != nil {
		return fmt.Errorf("failed to unmarshal data: %w", err)
	}

	return nil
}

// save writes assignment data to file atomically
func (r *FileAssignmentRepository) save() error {
	data, err := json.MarshalIndent(r.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	// Write to temp file first
	tempFile := filepath.Join(r.dataDir, "assignments.json.tmp")
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	// Atomic rename
	finalFile := filepath.Join(r.dataDir, "assignments.json")
	if err := os.Rename(tempFile, finalFile); err != nil {
		return fmt.Errorf("failed to rename file: %w", err)
	}

	return nil
}
