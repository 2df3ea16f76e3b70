package main

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want AppFlags
	}{
		{name: "no args", args: nil, want: AppFlags{}},
		{name: "long config", args: []string{"-config", "a.yaml"}, want: AppFlags{GlobalConfigFile: "a.yaml"}},
		{name: "alias config", args: []string{"-c", "b.yaml"}, want: AppFlags{GlobalConfigFile: "b.yaml"}},
		{name: "long wins over alias", args: []string{"-c", "b.yaml", "-config", "a.yaml"}, want: AppFlags{GlobalConfigFile: "a.yaml"}},
		{name: "verbose alias", args: []string{"-v"}, want: AppFlags{Verbose: true}},
		{name: "no color", args: []string{"-no-color", "-verbose"}, want: AppFlags{Verbose: true, NoColor: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFlags(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlags_Help(t *testing.T) {
	_, err := ParseFlags([]string{"-h"})
	assert.ErrorIs(t, err, flag.ErrHelp)
}
