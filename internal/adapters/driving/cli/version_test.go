package cli

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_RunsWithoutServices(t *testing.T) {
	_, ok := versionCmd.Annotations[skipServicesAnnotation]
	assert.True(t, ok)
}

func TestVersion_LdflagsTarget(t *testing.T) {
	// The -X flag in the build must name this package.
	assert.Equal(t, "github.com/custodia-labs/aroma-cli/internal/adapters/driving/cli",
		reflect.TypeOf(Options{}).PkgPath())
	assert.Equal(t, "dev", version)
}

func TestVersionCmd_PrintsBuildVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    string
	}{
		{name: "development build", version: "dev", want: "aroma version dev\n"},
		{name: "release build", version: "v1.2.0", want: "aroma version v1.2.0\n"},
		{name: "snapshot build", version: "v1.2.0-3-gabc1234", want: "aroma version v1.2.0-3-gabc1234\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Release builds override version through ldflags.
			original := version
			version = tt.version
			defer func() { version = original }()

			out, err := executeCommand("version")

			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestVersionCmd_AcceptsGlobalFlags(t *testing.T) {
	out, err := executeCommand("version", "--strict")

	require.NoError(t, err)
	assert.Contains(t, out, "aroma version")
}
