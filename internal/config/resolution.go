package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/blang/semver/v4"
	"github.com/go-playground/validator/v10"

	"github.com/dkoosis/snipcheck/pkg/snippet"
	"github.com/dkoosis/snipcheck/pkg/testcase"
)

// ErrInvalidSettings wraps every error produced while resolving settings.
var ErrInvalidSettings = errors.New("invalid settings")

// Environment variables.
const (
	EnvDocsRoot      = "SNIPCHECK_DOCS_ROOT"
	EnvBuildSources  = "BUILD_SOURCESDIRECTORY"
	EnvVersion       = "SNIPCHECK_VERSION"
	EnvLanguage      = "SNIPCHECK_LANGUAGE"
	EnvKnownFailures = "SNIPCHECK_KNOWN_FAILURES"
	EnvDLLPath       = "SNIPCHECK_DLL_PATH"
	EnvDebug         = "SNIPCHECK_DEBUG"
)

// Value sources, reported for debugging.
const (
	SourceCLI     = "cli"
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
)

// CliFlags holds the values of command-line flags. String flags count as set
// when non-empty; the *Set fields track the rest.
type CliFlags struct {
	DocsRoot        string
	Version         string
	Language        string
	KnownFailures   bool
	DLLPath         string
	JavaCoreVersion string
	JavaLibVersion  string
	Concurrency     int
	Format          string
	Theme           string
	Overlay         string
	Include         []string
	Exclude         []string
	Debug           bool

	KnownFailuresSet bool
	ConcurrencySet   bool
	DebugSet         bool
}

// Settings is the resolved configuration of one run.
type Settings struct {
	DocsRoot      string
	Version       snippet.Version
	Language      snippet.Language
	KnownFailures bool
	Params        testcase.BuildParams
	Concurrency   int
	Format        string
	Theme         string
	Overlay       string
	Include       []string
	Exclude       []string
	Debug         bool

	// Resolution metadata (for debugging)
	DocsRootSource string
	VersionSource  string
	LanguageSource string
	ConfigFile     string
}

// Options returns the generator options for these settings.
func (s Settings) Options() testcase.Options {
	return testcase.Options{
		Version:                s.Version,
		Language:               s.Language,
		KnownFailuresRequested: s.KnownFailures,
		Params:                 s.Params.Clone(),
	}
}

// values is the raw form validated before tokens are parsed.
type values struct {
	DocsRoot        string `validate:"required,dir"`
	Version         string `validate:"required"`
	Language        string `validate:"required"`
	JavaCoreVersion string `validate:"omitempty,semver"`
	JavaLibVersion  string `validate:"omitempty,semver"`
	Concurrency     int    `validate:"gte=0"`
	Format          string `validate:"oneof=auto terminal text json sarif"`
	Theme           string `validate:"oneof=default mono"`
	Overlay         string `validate:"omitempty,file"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// settingsValidator replaces the stock semver tag with blang/semver's tolerant
// parser so pins such as "5.0" are accepted.
func settingsValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("semver", validateSemver)
	})
	return validate
}

func validateSemver(fl validator.FieldLevel) bool {
	_, err := semver.ParseTolerant(fl.Field().String())
	return err == nil
}

// ResolveConfig loads .snipcheck.yaml and resolves it against the environment
// and the command line.
func ResolveConfig(cliFlags CliFlags) (*Settings, error) {
	fileCfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return Resolve(fileCfg, cliFlags)
}

// Resolve applies the priority order CLI > environment > file > default to a
// loaded file configuration and validates the result.
func Resolve(fileCfg *FileConfig, cliFlags CliFlags) (*Settings, error) {
	if fileCfg == nil {
		fileCfg = &FileConfig{Version: DefaultVersion, Format: DefaultFormat, Theme: DefaultTheme}
	}
	v := values{
		DocsRoot:        fileCfg.DocsRoot,
		Version:         fileCfg.Version,
		Language:        fileCfg.Language,
		JavaCoreVersion: fileCfg.JavaCoreVersion,
		JavaLibVersion:  fileCfg.JavaLibVersion,
		Concurrency:     fileCfg.Concurrency,
		Format:          orDefault(fileCfg.Format, DefaultFormat),
		Theme:           orDefault(fileCfg.Theme, DefaultTheme),
		Overlay:         fileCfg.Overlay,
	}
	s := &Settings{
		KnownFailures:  fileCfg.KnownFailures,
		Include:        fileCfg.Include,
		Exclude:        fileCfg.Exclude,
		Debug:          fileCfg.Debug,
		DocsRootSource: sourceOf(fileCfg.DocsRoot, SourceFile),
		VersionSource:  SourceFile,
		LanguageSource: sourceOf(fileCfg.Language, SourceFile),
		ConfigFile:     fileCfg.Path(),
	}
	if fileCfg.Path() == "" {
		s.VersionSource = SourceDefault
	}
	dllPath := fileCfg.DLLPath

	// Docs root: CLI > SNIPCHECK_DOCS_ROOT > BUILD_SOURCESDIRECTORY > file
	switch {
	case cliFlags.DocsRoot != "":
		v.DocsRoot, s.DocsRootSource = cliFlags.DocsRoot, SourceCLI
	case os.Getenv(EnvDocsRoot) != "":
		v.DocsRoot, s.DocsRootSource = os.Getenv(EnvDocsRoot), SourceEnv
	case os.Getenv(EnvBuildSources) != "":
		v.DocsRoot, s.DocsRootSource = os.Getenv(EnvBuildSources), SourceEnv
	}

	v.Version, s.VersionSource = pick(cliFlags.Version, EnvVersion, v.Version, s.VersionSource)
	v.Language, s.LanguageSource = pick(cliFlags.Language, EnvLanguage, v.Language, s.LanguageSource)
	dllPath, _ = pick(cliFlags.DLLPath, EnvDLLPath, dllPath, "")

	if cliFlags.KnownFailuresSet {
		s.KnownFailures = cliFlags.KnownFailures
	} else if b := getEnvBool(EnvKnownFailures); b != nil {
		s.KnownFailures = *b
	}

	if cliFlags.DebugSet {
		s.Debug = cliFlags.Debug
	} else if debugEnabled() {
		s.Debug = true
	}

	if cliFlags.JavaCoreVersion != "" {
		v.JavaCoreVersion = cliFlags.JavaCoreVersion
	}
	if cliFlags.JavaLibVersion != "" {
		v.JavaLibVersion = cliFlags.JavaLibVersion
	}
	if cliFlags.ConcurrencySet {
		v.Concurrency = cliFlags.Concurrency
	}
	if cliFlags.Format != "" {
		v.Format = cliFlags.Format
	}
	if cliFlags.Theme != "" {
		v.Theme = cliFlags.Theme
	}
	if cliFlags.Overlay != "" {
		v.Overlay = cliFlags.Overlay
	}
	if len(cliFlags.Include) > 0 {
		s.Include = cliFlags.Include
	}
	if len(cliFlags.Exclude) > 0 {
		s.Exclude = cliFlags.Exclude
	}

	if err := settingsValidator().Struct(v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}

	version, err := snippet.ParseVersion(v.Version)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	lang, err := snippet.ParseLanguage(v.Language)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	if err := validateArtifact(dllPath, lang); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}

	s.DocsRoot = v.DocsRoot
	s.Version = version
	s.Language = lang
	s.Concurrency = v.Concurrency
	s.Format = v.Format
	s.Theme = v.Theme
	s.Overlay = v.Overlay
	s.Params = testcase.BuildParams{
		AlternateArtifactPath: dllPath,
		VersionPins:           pins(v),
	}
	return s, nil
}

// validateArtifact checks the alternate artifact exists: a DLL for C#, a
// directory of preview jars for Java.
func validateArtifact(path string, lang snippet.Language) error {
	if path == "" {
		return nil
	}
	tag := "file"
	if lang == snippet.Java {
		tag = "dir"
	}
	if err := settingsValidator().Var(path, tag); err != nil {
		return fmt.Errorf("alternate artifact %q: not a %s", path, tag)
	}
	return nil
}

func pins(v values) map[string]string {
	out := make(map[string]string, 2)
	if v.JavaCoreVersion != "" {
		out[testcase.PinJavaCore] = v.JavaCoreVersion
	}
	if v.JavaLibVersion != "" {
		out[testcase.PinJavaLib] = v.JavaLibVersion
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// pick resolves a string setting with priority CLI > env > current.
func pick(cli, envKey, current, currentSource string) (string, string) {
	if cli != "" {
		return cli, SourceCLI
	}
	if env := strings.TrimSpace(os.Getenv(envKey)); env != "" {
		return env, SourceEnv
	}
	return current, currentSource
}

func sourceOf(val, source string) string {
	if val == "" {
		return SourceDefault
	}
	return source
}

func orDefault(val, def string) string {
	if val == "" {
		return def
	}
	return val
}

// getEnvBool reads a boolean from environment variables, trying multiple keys.
// Returns nil if none are set, or a pointer to the boolean value.
func getEnvBool(keys ...string) *bool {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			if b, err := strconv.ParseBool(val); err == nil {
				return &b
			}
		}
	}
	return nil
}
