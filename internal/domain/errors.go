package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrAmbiguousID        = errors.New("task id prefix matches more than one task")
	ErrNotInitialized     = errors.New("taskflow not initialized (run 'taskflow init' first)")
	ErrSnapshotCorrupted  = errors.New("task snapshot is corrupted")
	ErrSnapshotEncrypted  = errors.New("task snapshot is encrypted (set " + EncryptKeyEnv + ")")
	ErrHistoryUnsupported = errors.New("snapshot history requires the git store")
	ErrEmptyText          = errors.New("text cannot be empty")
	ErrNoFieldsToUpdate   = errors.New("no fields to update")
	ErrConfigExists       = errors.New("config file already exists")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidPriority    = errors.New("invalid priority")
	ErrInvalidRecurrence  = errors.New("invalid recurrence")
	ErrInvalidFilter      = errors.New("invalid filter")
	ErrInvalidSort        = errors.New("invalid sort mode")
	ErrInvalidDueDate     = errors.New("invalid due date (expected YYYY-MM-DD)")
	ErrInvalidFormat      = errors.New("invalid format")
	ErrInvalidStoreType   = errors.New("invalid store type")
	ErrInvalidEncryptKey  = errors.New("invalid encryption key")
	ErrEmptyFile          = errors.New("file is empty")
	ErrNoTasksInFile      = errors.New("no tasks found in file")
	ErrNoLogs             = errors.New("no log file found")
)
