package app

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriFactor/internal/config"
	"github.com/Rorical/RoriFactor/internal/eventbus"
)

func writeProfiles(t *testing.T, active string, profiles map[string]config.Profile) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("RORIFACTOR_HOME", home)

	dir := filepath.Join(home, ".rorifactor")
	require.NoError(t, os.MkdirAll(dir, 0755))
	data, err := json.Marshal(map[string]any{"profiles": profiles, "active_profile": active})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), data, 0600))
}

func TestResolveClearOnReset(t *testing.T) {
	on, off := true, false
	assert.True(t, resolveClearOnReset(true, nil))
	assert.False(t, resolveClearOnReset(false, nil))
	assert.False(t, resolveClearOnReset(true, &off))
	assert.True(t, resolveClearOnReset(false, &on))
}

func TestNewApplication_UnknownModelReportsProfileError(t *testing.T) {
	writeProfiles(t, "typo", map[string]config.Profile{
		"typo": {Endpoint: config.DefaultEndpointName, Model: "gpt-35-turbo"},
	})

	application, err := NewApplication(Options{})
	require.NoError(t, err)
	defer application.Stop()

	am := application.model.appModel
	assert.False(t, am.CoreReady)
	assert.Contains(t, am.ProfileError, `unknown model "gpt-35-turbo"`)
	assert.Contains(t, am.Status, "Profile error")
	assert.NotContains(t, am.Status, "No valid endpoint")

	application.service.Start()
	require.NoError(t, application.eventBus.SendToCore(eventbus.SubmitEvent{}))
	require.Eventually(t, func() bool {
		return application.service.Snapshot().LastError != ""
	}, time.Second, 5*time.Millisecond)
	assert.Contains(t, application.service.Snapshot().LastError, "unknown model")
}

func TestNewApplication_ValidProfileIsReady(t *testing.T) {
	writeProfiles(t, "local", map[string]config.Profile{
		"local": {Endpoint: "http://127.0.0.1:9/refactor"},
	})

	application, err := NewApplication(Options{})
	require.NoError(t, err)
	defer application.Stop()

	am := application.model.appModel
	assert.True(t, am.CoreReady)
	assert.Empty(t, am.ProfileError)
	assert.Equal(t, "http://127.0.0.1:9/refactor", am.Endpoint)
	assert.Equal(t, "Ready", am.Status)
}
