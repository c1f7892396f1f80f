// Package domain contains core business entities and interfaces.
package domain

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// TaskFileEntry is one task in an import file.
// Ids and creation times in the file are ignored; Collection.Add assigns them.
// Fields are ordered to minimize memory padding.
type TaskFileEntry struct {
	Text      string            `yaml:"text"`
	Priority  string            `yaml:"priority"`
	DueDate   string            `yaml:"dueDate"`
	Category  string            `yaml:"category"`
	Notes     string            `yaml:"notes"`
	Status    string            `yaml:"status"`
	Assignee  string            `yaml:"assignee"`
	Recurring string            `yaml:"recurring"`
	Tags      []string          `yaml:"tags"`
	Subtasks  []TaskFileSubtask `yaml:"subtasks"`
	Completed bool              `yaml:"completed"`
}

// TaskFileSubtask is a subtask in an import file.
type TaskFileSubtask struct {
	Text      string `yaml:"text"`
	Completed bool   `yaml:"completed"`
}

// ParseTaskFile parses a YAML import file.
// The document is either a mapping with a "tasks" list or a bare list of
// the same entries:
//
//	tasks:
//	  - text: Write report
//	    priority: high
//	    dueDate: 2025-02-01
//	    subtasks:
//	      - text: Outline
//	  - text: Buy milk
//	    category: Shopping
//	    tags: [groceries]
func ParseTaskFile(content []byte) ([]TaskFileEntry, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, ErrEmptyFile
	}

	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, fmt.Errorf("parse task file: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, ErrNoTasksInFile
	}

	var entries []TaskFileEntry
	switch doc := root.Content[0]; doc.Kind {
	case yaml.SequenceNode:
		if err := doc.Decode(&entries); err != nil {
			return nil, fmt.Errorf("parse task file: %w", err)
		}
	case yaml.MappingNode:
		var wrapper struct {
			Tasks []TaskFileEntry `yaml:"tasks"`
		}
		if err := doc.Decode(&wrapper); err != nil {
			return nil, fmt.Errorf("parse task file: %w", err)
		}
		entries = wrapper.Tasks
	default:
		return nil, fmt.Errorf("%w: expected a list of tasks", ErrInvalidFormat)
	}

	if len(entries) == 0 {
		return nil, ErrNoTasksInFile
	}
	for i, e := range entries {
		if _, err := e.Draft(); err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
	}
	return entries, nil
}

// Draft converts the entry into a TaskDraft, validating its enumerations.
// Empty priority and status are left for Collection.Add to default.
func (e TaskFileEntry) Draft() (TaskDraft, error) {
	draft := TaskDraft{
		Text:     e.Text,
		DueDate:  e.DueDate,
		Category: e.Category,
		Notes:    e.Notes,
		Assignee: e.Assignee,
		Tags:     e.Tags,
	}
	if strings.TrimSpace(e.Priority) != "" {
		p, err := ParsePriority(e.Priority)
		if err != nil {
			return TaskDraft{}, err
		}
		draft.Priority = p
	}
	if strings.TrimSpace(e.Status) != "" {
		s, err := ParseStatus(e.Status)
		if err != nil {
			return TaskDraft{}, err
		}
		draft.Status = s
	}
	r, err := ParseRecurrence(e.Recurring)
	if err != nil {
		return TaskDraft{}, err
	}
	draft.Recurring = r
	return draft, nil
}
