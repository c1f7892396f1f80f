package domain

// Column is one kanban column.
type Column struct {
	Status Status `json:"status" yaml:"status"`
	Title  string `json:"title" yaml:"title"`
	Tasks  []Task `json:"tasks" yaml:"tasks"`
}

// BoardStats counts tasks per column.
type BoardStats struct {
	Total      int `json:"total" yaml:"total"`
	Todo       int `json:"todo" yaml:"todo"`
	InProgress int `json:"inProgress" yaml:"inProgress"`
	Review     int `json:"review" yaml:"review"`
	Done       int `json:"done" yaml:"done"`
}

// Board groups tasks by status.
type Board struct {
	Columns []Column   `json:"columns" yaml:"columns"`
	Stats   BoardStats `json:"stats" yaml:"stats"`
}

// BuildBoard places each task in its status column, keeping input order
// within a column. Columns always appear in AllStatuses order, even when empty.
func BuildBoard(tasks []Task) Board {
	statuses := AllStatuses()
	columns := make([]Column, len(statuses))
	index := make(map[Status]int, len(statuses))
	for i, s := range statuses {
		columns[i] = Column{Status: s, Title: s.Display(), Tasks: []Task{}}
		index[s] = i
	}
	for _, t := range tasks {
		i := index[t.Status.Column()]
		columns[i].Tasks = append(columns[i].Tasks, t)
	}
	return Board{
		Columns: columns,
		Stats: BoardStats{
			Total:      len(tasks),
			Todo:       len(columns[index[StatusTodo]].Tasks),
			InProgress: len(columns[index[StatusInProgress]].Tasks),
			Review:     len(columns[index[StatusReview]].Tasks),
			Done:       len(columns[index[StatusDone]].Tasks),
		},
	}
}

// Column returns the column for a status.
func (b Board) Column(s Status) Column {
	for _, c := range b.Columns {
		if c.Status == s.Column() {
			return c
		}
	}
	return Column{Status: s, Title: s.Display()}
}
