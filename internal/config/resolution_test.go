package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/snipcheck/pkg/snippet"
	"github.com/dkoosis/snipcheck/pkg/testcase"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvDocsRoot, EnvBuildSources, EnvVersion, EnvLanguage,
		EnvKnownFailures, EnvDLLPath, EnvDebug,
	} {
		t.Setenv(key, "")
	}
}

func fileConfig(docsRoot string) *FileConfig {
	return &FileConfig{
		DocsRoot: docsRoot,
		Version:  "v1.0",
		Language: "csharp",
		Format:   DefaultFormat,
		Theme:    DefaultTheme,
	}
}

func TestResolve_UsesFileValues(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()

	s, err := Resolve(fileConfig(root), CliFlags{})
	require.NoError(t, err)

	assert.Equal(t, root, s.DocsRoot)
	assert.Equal(t, snippet.V1, s.Version)
	assert.Equal(t, snippet.CSharp, s.Language)
	assert.False(t, s.KnownFailures)
	assert.Equal(t, DefaultFormat, s.Format)
	assert.Equal(t, SourceFile, s.DocsRootSource)
	assert.Equal(t, SourceFile, s.LanguageSource)
	assert.Nil(t, s.Params.VersionPins)
}

func TestResolve_PriorityOrder(t *testing.T) {
	fileRoot := t.TempDir()
	envRoot := t.TempDir()
	buildRoot := t.TempDir()
	cliRoot := t.TempDir()

	tests := []struct {
		name       string
		env        map[string]string
		flags      CliFlags
		wantRoot   string
		wantSource string
	}{
		{
			name:       "file when nothing else is set",
			wantRoot:   fileRoot,
			wantSource: SourceFile,
		},
		{
			name:       "build sources directory beats file",
			env:        map[string]string{EnvBuildSources: buildRoot},
			wantRoot:   buildRoot,
			wantSource: SourceEnv,
		},
		{
			name:       "snipcheck variable beats build sources directory",
			env:        map[string]string{EnvBuildSources: buildRoot, EnvDocsRoot: envRoot},
			wantRoot:   envRoot,
			wantSource: SourceEnv,
		},
		{
			name:       "CLI beats env",
			env:        map[string]string{EnvDocsRoot: envRoot},
			flags:      CliFlags{DocsRoot: cliRoot},
			wantRoot:   cliRoot,
			wantSource: SourceCLI,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			s, err := Resolve(fileConfig(fileRoot), tt.flags)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRoot, s.DocsRoot)
			assert.Equal(t, tt.wantSource, s.DocsRootSource)
		})
	}
}

func TestResolve_TokensFromEnvAndCLI(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	t.Setenv(EnvVersion, "beta")
	t.Setenv(EnvLanguage, "java")

	s, err := Resolve(fileConfig(root), CliFlags{})
	require.NoError(t, err)
	assert.Equal(t, snippet.Beta, s.Version)
	assert.Equal(t, snippet.Java, s.Language)
	assert.Equal(t, SourceEnv, s.VersionSource)

	s, err = Resolve(fileConfig(root), CliFlags{Language: "JS"})
	require.NoError(t, err)
	assert.Equal(t, snippet.JavaScript, s.Language)
	assert.Equal(t, SourceCLI, s.LanguageSource)
}

func TestResolve_KnownFailures(t *testing.T) {
	root := t.TempDir()

	t.Run("env", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvKnownFailures, "true")
		s, err := Resolve(fileConfig(root), CliFlags{})
		require.NoError(t, err)
		assert.True(t, s.KnownFailures)
		assert.True(t, s.Options().KnownFailuresRequested)
	})

	t.Run("explicit CLI false beats env", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvKnownFailures, "true")
		s, err := Resolve(fileConfig(root), CliFlags{KnownFailures: false, KnownFailuresSet: true})
		require.NoError(t, err)
		assert.False(t, s.KnownFailures)
	})

	t.Run("unparsable env is ignored", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvKnownFailures, "maybe")
		cfg := fileConfig(root)
		cfg.KnownFailures = true
		s, err := Resolve(cfg, CliFlags{})
		require.NoError(t, err)
		assert.True(t, s.KnownFailures)
	})
}

func TestResolve_JavaPins(t *testing.T) {
	clearEnv(t)
	cfg := fileConfig(t.TempDir())
	cfg.Language = "java"
	cfg.JavaCoreVersion = "1.0.9"

	s, err := Resolve(cfg, CliFlags{JavaLibVersion: "5.0"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		testcase.PinJavaCore: "1.0.9",
		testcase.PinJavaLib:  "5.0",
	}, s.Params.VersionPins)

	opts := s.Options()
	opts.Params.VersionPins[testcase.PinJavaCore] = "changed"
	assert.Equal(t, "1.0.9", s.Params.VersionPins[testcase.PinJavaCore], "Options must not share pins")
}

func TestResolve_AlternateArtifact(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	dll := filepath.Join(t.TempDir(), "Microsoft.Graph.dll")
	require.NoError(t, os.WriteFile(dll, []byte("MZ"), 0o600))
	jars := t.TempDir()

	s, err := Resolve(fileConfig(root), CliFlags{DLLPath: dll})
	require.NoError(t, err)
	assert.Equal(t, dll, s.Params.AlternateArtifactPath)

	t.Setenv(EnvDLLPath, jars)
	cfg := fileConfig(root)
	cfg.Language = "java"
	s, err = Resolve(cfg, CliFlags{})
	require.NoError(t, err)
	assert.Equal(t, jars, s.Params.AlternateArtifactPath)

	_, err = Resolve(fileConfig(root), CliFlags{})
	require.ErrorIs(t, err, ErrInvalidSettings, "a directory is not a C# artifact")
}

func TestResolve_Validation(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		name    string
		mutate  func(*FileConfig)
		flags   CliFlags
		wantErr error
	}{
		{
			name:   "missing docs root",
			mutate: func(c *FileConfig) { c.DocsRoot = "" },
		},
		{
			name:   "docs root does not exist",
			mutate: func(c *FileConfig) { c.DocsRoot = filepath.Join(root, "missing") },
		},
		{
			name:    "unknown language",
			flags:   CliFlags{Language: "cobol"},
			wantErr: snippet.ErrUnknownLanguage,
		},
		{
			name:    "unknown version",
			flags:   CliFlags{Version: "v2.0"},
			wantErr: snippet.ErrUnknownVersion,
		},
		{
			name:   "invalid pin",
			mutate: func(c *FileConfig) { c.JavaCoreVersion = "latest" },
		},
		{
			name:  "negative concurrency",
			flags: CliFlags{Concurrency: -1, ConcurrencySet: true},
		},
		{
			name:  "unknown format",
			flags: CliFlags{Format: "html"},
		},
		{
			name:  "unknown theme",
			flags: CliFlags{Theme: "orca"},
		},
		{
			name:  "missing overlay",
			flags: CliFlags{Overlay: filepath.Join(root, "overlay.yaml")},
		},
		{
			name:  "missing dll",
			flags: CliFlags{DLLPath: filepath.Join(root, "missing.dll")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			cfg := fileConfig(root)
			if tt.mutate != nil {
				tt.mutate(cfg)
			}
			_, err := Resolve(cfg, tt.flags)
			require.ErrorIs(t, err, ErrInvalidSettings)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestResolve_NilFileConfigUsesDefaults(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()

	s, err := Resolve(nil, CliFlags{DocsRoot: root, Language: "objc"})
	require.NoError(t, err)
	assert.Equal(t, snippet.V1, s.Version)
	assert.Equal(t, snippet.ObjC, s.Language)
	assert.Equal(t, DefaultTheme, s.Theme)
}

func TestResolve_DebugFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvDebug, "1")

	s, err := Resolve(fileConfig(t.TempDir()), CliFlags{})
	require.NoError(t, err)
	assert.True(t, s.Debug)

	s, err = Resolve(fileConfig(t.TempDir()), CliFlags{Debug: false, DebugSet: true})
	require.NoError(t, err)
	assert.False(t, s.Debug)
}
