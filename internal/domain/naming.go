package domain

import (
	"fmt"
	"path/filepath"
)

// ShortIDLength is the number of id characters shown in listings.
const ShortIDLength = 8

// ShortID returns the abbreviated form of a task id.
func ShortID(id string) string {
	if len(id) <= ShortIDLength {
		return id
	}
	return id[:ShortIDLength]
}

// TaskLogPath returns the path to the task log file.
func TaskLogPath(dataDir, taskID string) string {
	return filepath.Join(dataDir, "logs", fmt.Sprintf("task-%s.log", taskID))
}

// GlobalLogPath returns the path to the global log file.
func GlobalLogPath(dataDir string) string {
	return filepath.Join(dataDir, "logs", "taskflow.log")
}

// TasksStorePath returns the path to the tasks.json file.
func TasksStorePath(dataDir string) string {
	return filepath.Join(dataDir, "tasks.json")
}

// GitStoreDir returns the path of the repository used by the git store.
func GitStoreDir(dataDir string) string {
	return filepath.Join(dataDir, "repo.git")
}

// TaskRefName returns the git reference holding the task snapshot.
func TaskRefName(namespace string) string {
	return fmt.Sprintf("refs/%s/tasks", namespace)
}

// InitializedRefName returns the git reference marking an initialized store.
func InitializedRefName(namespace string) string {
	return fmt.Sprintf("refs/%s/initialized", namespace)
}
