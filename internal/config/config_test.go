package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRaw() map[string]any {
	return map[string]any{
		"volumes": []any{"/src:/src", "/out:/out"},
		"arches":  []any{"amd64", "arm64"},
		"image":   "debian:{arch}",
		"build":   "./build.sh",
	}
}

func schemaKind(name string) string {
	for _, f := range schema {
		if f.name == name {
			return f.kind.String()
		}
	}
	return ""
}

func TestValidate_DefaultsApplied(t *testing.T) {
	cfg, err := validate(validRaw())
	require.NoError(t, err)

	assert.Equal(t, []string{"/src:/src", "/out:/out"}, cfg.Volumes)
	assert.Equal(t, []string{"amd64", "arm64"}, cfg.Arches)
	assert.Equal(t, "debian:{arch}", cfg.Image)
	assert.Equal(t, "./build.sh", cfg.Build)

	// optional fields fall back to schema defaults
	assert.Equal(t, "", cfg.DockerArgs)
	assert.Equal(t, "{random}-{arch}", cfg.ContainerName)
	assert.True(t, cfg.RemoveContainers)
}

func TestValidate_ExplicitOptionals(t *testing.T) {
	raw := validRaw()
	raw["dockerargs"] = "--network host"
	raw["containername"] = "build-{arch}"
	raw["removecontainers"] = false

	cfg, err := validate(raw)
	require.NoError(t, err)
	assert.Equal(t, "--network host", cfg.DockerArgs)
	assert.Equal(t, "build-{arch}", cfg.ContainerName)
	assert.False(t, cfg.RemoveContainers)
}

func TestValidate_MissingRequired(t *testing.T) {
	tests := []struct {
		name  string
		strip string
	}{
		{"volumes missing", "volumes"},
		{"arches missing", "arches"},
		{"image missing", "image"},
		{"build missing", "build"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRaw()
			delete(raw, tt.strip)

			_, err := validate(raw)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.strip)
			assert.Contains(t, err.Error(), "required")
		})
	}
}

func TestValidate_WrongTypes(t *testing.T) {
	tests := []struct {
		name       string
		field      string
		value      any
		actualType string
	}{
		{"image as number", "image", float64(5), "number"},
		{"image as list", "image", []any{"a"}, "list"},
		{"volumes as string", "volumes", "/src:/src", "string"},
		{"volumes with non-string item", "volumes", []any{"/src:/src", 3.0}, "list"},
		{"removecontainers as string", "removecontainers", "yes", "string"},
		{"arches as object", "arches", map[string]any{}, "object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRaw()
			raw[tt.field] = tt.value

			_, err := validate(raw)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
			assert.Contains(t, err.Error(), tt.actualType)

			assert.Contains(t, err.Error(), schemaKind(tt.field), "error names the expected type")
		})
	}
}

func TestValidate_AccumulatesAllErrors(t *testing.T) {
	raw := map[string]any{
		"image":  7.0,  // wrong type
		"build":  true, // wrong type
		"arches": []any{"a"},
		// volumes missing entirely
	}

	_, err := validate(raw)
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Len(t, cfgErr.Errs, 3)
	assert.Contains(t, err.Error(), "image")
	assert.Contains(t, err.Error(), "build")
	assert.Contains(t, err.Error(), "volumes")
}

func TestLoad_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	doc := `{
		"volumes": ["/src:/src"],
		"arches": ["amd64"],
		"image": "debian:{arch}",
		"build": "./build.sh"
	}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"amd64"}, cfg.Arches)
	assert.True(t, cfg.RemoveContainers)
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := `
volumes:
  - /src:/src
arches:
  - amd64
  - arm64
image: debian:{arch}
build: ./build.sh
removecontainers: false
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"amd64", "arm64"}, cfg.Arches)
	assert.False(t, cfg.RemoveContainers)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorContains(t, err, "cannot open the config file")
}

func TestHelp_CoversEverySchemaField(t *testing.T) {
	help := Help()
	for _, f := range schema {
		assert.Contains(t, help, f.name+":")
		assert.Contains(t, help, f.help)
	}
	assert.Contains(t, help, "{arch}")
	assert.Contains(t, help, "{random}")
}
