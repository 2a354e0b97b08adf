package main

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendwise-server/src/api"
	"spendwise-server/src/config"
	"spendwise-server/src/store/sqlite"
)

func startTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	st, err := sqlite.Open(":memory:")
	require.NoError(t, err)

	cfg := config.Config{JWTSecret: "cli-test-secret", TokenTTL: time.Hour}
	server := httptest.NewServer(api.NewRouter(st, cfg))
	t.Cleanup(func() {
		server.Close()
		st.Close()
	})
	return server
}

func TestRunQuit(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(nil, strings.NewReader("quit\n"), &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Commands:")
}

func TestRunEOF(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(nil, strings.NewReader(""), &stdout, &stderr)
	assert.NoError(t, err)
}

func TestRunUnknownCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(nil, strings.NewReader("frobnicate\nquit\n"), &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "unknown command: frobnicate")
}

func TestRunBadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-no-such-flag"}, strings.NewReader(""), &stdout, &stderr)
	assert.Error(t, err)
}

func TestRunFullFlow(t *testing.T) {
	server := startTestServer(t)

	input := strings.Join([]string{
		"register",
		"alice",
		"password123",
		"login",
		"alice",
		"password123",
		"add",
		"Coffee",
		"4.25",
		"2026-03-01",
		"Food",
		"list",
		"dashboard",
		"delete 1",
		"quit",
	}, "\n") + "\n"

	var stdout, stderr bytes.Buffer
	err := run([]string{"-server", server.URL}, strings.NewReader(input), &stdout, &stderr)
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, "Registered alice")
	assert.Contains(t, out, "Logged in as alice.")
	assert.Contains(t, out, "Coffee")
	assert.Contains(t, out, "4.25")
	assert.Contains(t, out, "Top category: Food")
	assert.Contains(t, out, "Deleted expense 1.")
}

func TestRunLoginFailure(t *testing.T) {
	server := startTestServer(t)

	input := strings.Join([]string{
		"login",
		"nobody",
		"password123",
		"quit",
	}, "\n") + "\n"

	var stdout, stderr bytes.Buffer
	err := run([]string{"-server", server.URL}, strings.NewReader(input), &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "error: invalid credentials")
}
