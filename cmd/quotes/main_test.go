package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"
)

// newTestParser builds a Kong parser for parse-only tests. No database
// connection is made.
func newTestParser(t *testing.T, cli *CLI) *kong.Kong {
	t.Helper()

	var buf bytes.Buffer
	parser, err := kong.New(cli,
		kong.Name("quotes"),
		kong.Writers(&buf, &buf),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)
	return parser
}

func TestMain_Run_NoCommand(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	m := NewMain()

	err := m.Run(context.Background(), nil, bytes.NewReader(nil), &out, &errOut)

	require.Error(t, err)
	require.Contains(t, err.Error(), "no command specified")
}

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	m := NewMain()

	err := m.Run(context.Background(), []string{"--help"}, bytes.NewReader(nil), &out, &errOut)

	require.NoError(t, err)
	require.Contains(t, out.String(), "crawl")
	require.Contains(t, out.String(), "seed")
}
