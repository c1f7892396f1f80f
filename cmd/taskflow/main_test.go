package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataDirFromArgs(t *testing.T) {
	tests := []struct {
		name string
		want string
		args []string
	}{
		{name: "absent", args: []string{"list"}, want: ""},
		{name: "separate value", args: []string{"--data-dir", "/tmp/tasks", "list"}, want: "/tmp/tasks"},
		{name: "equals form", args: []string{"list", "--data-dir=/tmp/tasks"}, want: "/tmp/tasks"},
		{name: "missing value", args: []string{"list", "--data-dir"}, want: ""},
		{name: "after terminator", args: []string{"add", "--", "--data-dir", "x"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dataDirFromArgs(tt.args))
		})
	}
}

func TestCanRunWithoutContainer(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{name: "no args", args: nil, want: false},
		{name: "help flag", args: []string{"--help"}, want: true},
		{name: "help subcommand", args: []string{"help", "add"}, want: true},
		{name: "version flag", args: []string{"--version"}, want: true},
		{name: "config template", args: []string{"config", "template"}, want: true},
		{name: "config key", args: []string{"config", "key"}, want: true},
		{name: "config show", args: []string{"config", "show"}, want: false},
		{name: "task command", args: []string{"add", "Buy milk"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canRunWithoutContainer(tt.args))
		})
	}
}
