package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	htmlparser "github.com/custodia-labs/aroma-cli/internal/adapters/driven/parser/html"
	"github.com/custodia-labs/aroma-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/aroma-cli/internal/core/domain"
	"github.com/custodia-labs/aroma-cli/internal/core/services"
)

// testPage is a minimal product page rated "211" on the general names.
const testPage = `<html><head><title>Shop</title></head><body>
<h1 class="h-alt">Test Robusto</h1>
<div id="tab-pane-tasting"><p>Community rating (3)</p></div>
<canvas class="aromaimg" data-rub="f" data-content="211"></canvas>
</body></html>`

// mockFetcher serves pages from memory.
type mockFetcher struct {
	pages map[string]string
}

func (m *mockFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	page, ok := m.pages[url]
	if !ok {
		return nil, fmt.Errorf("%s: status 404: %w", url, domain.ErrNotFound)
	}
	return []byte(page), nil
}

// mockMetrics counts flushes.
type mockMetrics struct {
	mu          sync.Mutex
	extractions []string
	flushes     int
}

func (m *mockMetrics) RecordExtraction(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.extractions = append(m.extractions, outcome)
}

func (m *mockMetrics) RecordFetch(int) {}

func (m *mockMetrics) Flush() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flushes++
	return nil
}

// testServices gives tests access to the wired collaborators.
type testServices struct {
	profiles *services.ProfileService
	store    *memory.ProfileStore
	config   *memory.ConfigStore
	metrics  *mockMetrics
}

// setupTestServices wires in-memory services and returns a restore func.
func setupTestServices() (*testServices, func()) {
	oldProfile, oldNames, oldMetrics, oldBuilder := profileService, nameService, metricsRecorder, builder

	ts := &testServices{
		store:   memory.NewProfileStore(),
		config:  memory.NewConfigStore(nil),
		metrics: &mockMetrics{},
	}
	fetcher := &mockFetcher{pages: map[string]string{"https://shop.test/robusto": testPage}}
	names := services.NewNameService(ts.config)
	ts.profiles = services.NewProfileService(htmlparser.New(), fetcher, ts.store, names, ts.metrics)

	profileService = ts.profiles
	nameService = names
	metricsRecorder = ts.metrics
	builder = nil

	return ts, func() {
		profileService, nameService, metricsRecorder, builder = oldProfile, oldNames, oldMetrics, oldBuilder
	}
}

// executeCommand runs the root command with fresh flag values.
func executeCommand(args ...string) (string, error) {
	jsonOutput = false
	computeRub = ""
	importURL = ""
	verbose = false
	strict = false
	configDir = ""
	dataDir = ""
	rootCmd.PersistentFlags().Lookup("strict").Changed = false

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "aroma", rootCmd.Use)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	var names []string
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}

	for _, want := range []string{"compute", "fetch", "import", "profile", "names", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	for _, name := range []string{"verbose", "config-dir", "data-dir", "strict"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
}

func TestRootCmd_BuilderReceivesOptions(t *testing.T) {
	oldProfile, oldNames, oldMetrics, oldBuilder := profileService, nameService, metricsRecorder, builder
	defer func() {
		profileService, nameService, metricsRecorder, builder = oldProfile, oldNames, oldMetrics, oldBuilder
	}()

	var got Options
	closed := false
	metrics := &mockMetrics{}
	profileService = nil
	builder = func(opts Options) (*Services, error) {
		got = opts
		ps := services.NewProfileService(htmlparser.New(), nil, nil, nil, metrics)
		return &Services{
			Profile: ps,
			Names:   services.NewNameService(memory.NewConfigStore(nil)),
			Metrics: metrics,
			Close: func() error {
				closed = true
				return nil
			},
		}, nil
	}

	out, err := executeCommand("compute", "211", "--strict", "--config-dir", "/tmp/cfg", "--data-dir", "/tmp/data")

	require.NoError(t, err)
	assert.Contains(t, out, "Holz")
	assert.Equal(t, "/tmp/cfg", got.ConfigDir)
	assert.Equal(t, "/tmp/data", got.DataDir)
	require.NotNil(t, got.Strict)
	assert.True(t, *got.Strict)
	assert.True(t, closed)
	assert.Equal(t, 1, metrics.flushes)
}

func TestRootCmd_StrictUnsetIsNil(t *testing.T) {
	oldProfile, oldNames, oldMetrics, oldBuilder := profileService, nameService, metricsRecorder, builder
	defer func() {
		profileService, nameService, metricsRecorder, builder = oldProfile, oldNames, oldMetrics, oldBuilder
	}()

	var got Options
	profileService = nil
	builder = func(opts Options) (*Services, error) {
		got = opts
		return &Services{Profile: services.NewProfileService(htmlparser.New(), nil, nil, nil, nil)}, nil
	}

	_, err := executeCommand("compute", "1")

	require.NoError(t, err)
	assert.Nil(t, got.Strict)
}

func TestRootCmd_BuilderError(t *testing.T) {
	oldProfile, oldBuilder := profileService, builder
	defer func() { profileService, builder = oldProfile, oldBuilder }()

	profileService = nil
	builder = func(Options) (*Services, error) {
		return nil, errors.New("boom")
	}

	_, err := executeCommand("compute", "1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestRootCmd_VersionSkipsServices(t *testing.T) {
	oldProfile, oldBuilder := profileService, builder
	defer func() { profileService, builder = oldProfile, oldBuilder }()

	profileService = nil
	builder = func(Options) (*Services, error) {
		return nil, errors.New("should not be called")
	}

	out, err := executeCommand("version")

	require.NoError(t, err)
	assert.Contains(t, out, "aroma version")
}

func TestRootCmd_FlushesMetricsAfterCommand(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand("compute", "211")

	require.NoError(t, err)
	assert.Equal(t, 1, ts.metrics.flushes)
	assert.Equal(t, []string{"ok"}, ts.metrics.extractions)
}

func TestRootCmd_FlushesMetricsWhenCommandFails(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand("fetch", "https://shop.test/missing")

	require.Error(t, err)
	assert.Equal(t, []string{"not_found"}, ts.metrics.extractions)
	assert.Equal(t, 1, ts.metrics.flushes)
}

func TestRootCmd_ClosesStoreWhenCommandFails(t *testing.T) {
	oldProfile, oldNames, oldMetrics, oldBuilder := profileService, nameService, metricsRecorder, builder
	defer func() {
		profileService, nameService, metricsRecorder, builder = oldProfile, oldNames, oldMetrics, oldBuilder
	}()

	closed := 0
	metrics := &mockMetrics{}
	profileService = nil
	builder = func(Options) (*Services, error) {
		ps := services.NewProfileService(htmlparser.New(), nil, nil, nil, metrics)
		ps.SetStrict(true)
		return &Services{
			Profile: ps,
			Metrics: metrics,
			Close: func() error {
				closed++
				return nil
			},
		}, nil
	}

	_, err := executeCommand("compute", "000")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrZeroTotal)
	assert.Equal(t, []string{"invalid"}, metrics.extractions)
	assert.Equal(t, 1, metrics.flushes)
	assert.Equal(t, 1, closed)
}
