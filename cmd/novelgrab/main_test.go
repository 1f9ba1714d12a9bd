package main_test

import (
	"bytes"
	"context"
	"testing"

	main "github.com/novelgrab/novelgrab/cmd/novelgrab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "novelgrab")
	assert.Contains(t, stdout.String(), "--url")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_RequiresURLSource(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--headless"}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--url or --url-file")
}

func TestMain_Run_RejectsBothURLSources(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(),
		[]string{"--url", "https://example.com", "--url-file", "urls.txt"}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestMain_Run_RejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(),
		[]string{"--url", "https://example.com", "--format", "pdf"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_MissingURLFile(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(),
		[]string{"--url-file", t.TempDir() + "/missing.txt"}, &stdout, &stderr)

	assert.Error(t, err)
}
