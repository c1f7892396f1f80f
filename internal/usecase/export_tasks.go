package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/runoshun/taskflow/internal/domain"
	"github.com/runoshun/taskflow/internal/usecase/shared"
)

// Export formats.
const (
	ExportFormatJSON = "json"
	ExportFormatYAML = "yaml"
)

// ExportTasksInput contains the parameters for exporting tasks.
type ExportTasksInput struct {
	Query  *domain.Query // Projection to export (nil = whole collection in store order)
	Format string        // ExportFormatJSON or ExportFormatYAML
}

// ExportTasksOutput contains the encoded tasks.
type ExportTasksOutput struct {
	Data  []byte
	Count int
}

// exportDocument is the exported document. Its YAML form is accepted by ImportTasks.
type exportDocument struct {
	Tasks []domain.Task `json:"tasks" yaml:"tasks"`
}

// ExportTasks is the use case for writing tasks as JSON or YAML.
type ExportTasks struct {
	store  domain.TaskStore
	clock  domain.Clock
	logger domain.Logger
}

// NewExportTasks creates a new ExportTasks use case.
func NewExportTasks(store domain.TaskStore, clock domain.Clock, logger domain.Logger) *ExportTasks {
	return &ExportTasks{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

// Execute encodes the tasks in the requested format.
func (uc *ExportTasks) Execute(_ context.Context, in ExportTasksInput) (*ExportTasksOutput, error) {
	format := in.Format
	if format == "" {
		format = ExportFormatJSON
	}
	if format != ExportFormatJSON && format != ExportFormatYAML {
		return nil, fmt.Errorf("%w: %q (expected json or yaml)", domain.ErrInvalidFormat, in.Format)
	}

	col, err := shared.LoadCollection(uc.store, nil, uc.clock, uc.logger)
	if err != nil {
		return nil, err
	}
	tasks := col.Tasks()
	if in.Query != nil {
		tasks = domain.Project(tasks, *in.Query, uc.clock.Now())
	}
	doc := exportDocument{Tasks: tasks}

	var data []byte
	switch format {
	case ExportFormatYAML:
		data, err = yaml.Marshal(doc)
	default:
		data, err = json.MarshalIndent(doc, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return nil, fmt.Errorf("encode tasks: %w", err)
	}

	return &ExportTasksOutput{Data: data, Count: len(tasks)}, nil
}
