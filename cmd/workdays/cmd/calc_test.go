package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCommand()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCalc_Offline(t *testing.T) {
	out, _, err := execute(t, "calc", "--offline", "--days", "1", "--hours", "2", "--date", "2025-01-10T13:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-13T15:00:00Z\n", out)
}

func TestCalc_ExtraHolidays(t *testing.T) {
	out, _, err := execute(t, "calc", "--offline", "--days", "1",
		"--date", "2025-01-10T13:00:00Z", "--holiday", "2025-01-13", "--holiday", "2025-01-14")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-15T13:00:00Z\n", out)
}

func TestCalc_JSON(t *testing.T) {
	out, _, err := execute(t, "calc", "--offline", "--hours", "1", "--date", "2025-01-06T13:00:00Z", "--json")
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "2025-01-06T14:00:00Z", body["date"])
}

func TestCalc_Feed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`["2025-01-07"]`))
	}))
	t.Cleanup(srv.Close)

	out, stderr, err := execute(t, "calc", "--holidays-url", srv.URL, "--days", "1", "--date", "2025-01-06T13:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-08T13:00:00Z\n", out)
	assert.NotContains(t, stderr, "warning")
}

func TestCalc_FeedDownKeepsExtraHolidays(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	out, stderr, err := execute(t, "calc", "--holidays-url", srv.URL, "--log-level", "error",
		"--days", "1", "--date", "2025-01-06T13:00:00Z", "--holiday", "2025-01-07")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-08T13:00:00Z\n", out)
	assert.Contains(t, stderr, "warning: holiday feed unavailable")
}

func TestCalc_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no amounts", []string{"calc", "--offline"}},
		{"zero amounts", []string{"calc", "--offline", "--days", "0", "--hours", "0"}},
		{"negative days", []string{"calc", "--offline", "--days", "-1"}},
		{"bad date", []string{"calc", "--offline", "--days", "1", "--date", "someday"}},
		{"bad holiday", []string{"calc", "--offline", "--days", "1", "--holiday", "2025-02-30x"}},
		{"positional args", []string{"calc", "--offline", "--days", "1", "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}
