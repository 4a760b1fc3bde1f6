package rconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vugu/vgnav"
)

type page struct{ name string }

type injectedPage struct {
	vgnav.NavigatorRef
}

const tomlConfig = `
use_fragment = true
log_level = "warn"

[[routes]]
path = "/"
view = "dashboard"

[[routes]]
path = "/feasibility"
view = "feasibility"

[[routes]]
path = "/schedule"
view = "gantt"
`

const yamlConfig = `
use_fragment: false
not_found: missing
routes:
  - path: /
    view: dashboard
  - path: /feasibility
    view: feasibility
`

const jsonConfig = `{"routes": [{"path": "/", "view": "dashboard"}, {"path": "/schedule", "view": "gantt"}]}`

func testViews() Views {
	return Views{
		"dashboard":   &page{"dashboard"},
		"feasibility": &page{"feasibility"},
		"gantt":       &injectedPage{},
		"missing":     &page{"missing"},
	}
}

func TestParseTOML(t *testing.T) {

	assert := assert.New(t)

	cfg, err := Parse([]byte(tomlConfig), FormatTOML)
	require.NoError(t, err)

	assert.True(cfg.UseFragment)
	assert.Equal("warn", cfg.LogLevel)
	assert.Equal([]RouteConfig{
		{Path: "/", View: "dashboard"},
		{Path: "/feasibility", View: "feasibility"},
		{Path: "/schedule", View: "gantt"},
	}, cfg.Routes)
}

func TestParseYAMLAndJSON(t *testing.T) {

	assert := assert.New(t)
	views := testViews()

	cfg, err := Parse([]byte(yamlConfig), FormatYAML)
	require.NoError(t, err)
	assert.False(cfg.UseFragment)
	assert.Equal("missing", cfg.NotFound)

	rl, err := cfg.Build(views)
	require.NoError(t, err)
	assert.Equal(2, rl.Len())
	assert.Equal(views["feasibility"], rl.Resolve("/feasibility"))
	assert.Equal(views["missing"], rl.Resolve("/nope"))

	cfg, err = Parse([]byte(jsonConfig), FormatYAML)
	require.NoError(t, err)
	assert.Len(cfg.Routes, 2)

	_, err = Parse([]byte("routes: []\nbogus: 1\n"), FormatYAML)
	assert.Error(err)
}

func TestParseRejectsUnknownKeys(t *testing.T) {

	_, err := Parse([]byte("bogus = 1\n\n[[routes]]\npath = \"/\"\nview = \"dashboard\"\n"), FormatTOML)
	assert.ErrorIs(t, err, ErrUnknownKey)

	_, err = Parse([]byte("[[routes]]\npath = \"/\"\nview = \"dashboard\"\ntitle = \"Home\"\n"), FormatTOML)
	assert.ErrorIs(t, err, ErrUnknownKey)

	_, err = Parse([]byte("routes:\n  - path: /\n    view: dashboard\n    title: Home\n"), FormatYAML)
	assert.Error(t, err)
}

func TestBuildErrors(t *testing.T) {

	cfg := &Config{Routes: []RouteConfig{{Path: "/", View: "nope"}}}
	_, err := cfg.Build(testViews())
	assert.ErrorIs(t, err, ErrUnknownView)

	cfg = &Config{Routes: []RouteConfig{{Path: "/", View: "dashboard"}, {Path: "/", View: "gantt"}}}
	_, err = cfg.Build(testViews())
	assert.ErrorIs(t, err, vgnav.ErrDuplicateRoute)

	cfg = &Config{NotFound: "nope"}
	_, err = cfg.Build(testViews())
	assert.ErrorIs(t, err, ErrUnknownView)
}

func TestLoad(t *testing.T) {

	dir := t.TempDir()

	p := filepath.Join(dir, "routes.toml")
	require.NoError(t, os.WriteFile(p, []byte(tomlConfig), 0644))
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Len(t, cfg.Routes, 3)

	p = filepath.Join(dir, "routes.yml")
	require.NoError(t, os.WriteFile(p, []byte(yamlConfig), 0644))
	cfg, err = Load(p)
	require.NoError(t, err)
	assert.Len(t, cfg.Routes, 2)

	_, err = Load(filepath.Join(dir, "routes.ini"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Load(filepath.Join(dir, "absent.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewRouter(t *testing.T) {

	views := testViews()
	cfg, err := Parse([]byte(jsonConfig), FormatYAML)
	require.NoError(t, err)

	r, err := cfg.NewRouter(views, nil)
	require.NoError(t, err)

	// outside the browser navigation still updates state
	r.Navigate("/schedule")
	assert.Equal(t, views["gantt"], r.View())
	r.Navigate("/unknown")
	assert.Equal(t, views["dashboard"], r.View())

	assert.Same(t, r, views["gantt"].(*injectedPage).Navigator)
}
