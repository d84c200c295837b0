// Package config handles configuration loading and merging for snipcheck.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--docs-root, --version, --language, --known-failures, etc.)
//  2. Environment variables (SNIPCHECK_DOCS_ROOT, BUILD_SOURCESDIRECTORY, SNIPCHECK_VERSION, ...)
//  3. YAML config file (.snipcheck.yaml in local directory or ~/.config/snipcheck/.snipcheck.yaml)
//  4. Hardcoded defaults
//
// When a higher-priority source sets a value, it overrides any lower-priority values.
//
// # Validation
//
// The merged values are checked before a run starts: the docs root must be a
// directory, version and language tokens must be known, Java version pins
// must parse as semantic versions and the alternate artifact must exist (a
// DLL for C#, a directory of preview jars for Java). Every failure wraps
// ErrInvalidSettings.
//
// # Environment Variables
//
//   - SNIPCHECK_DOCS_ROOT: docs checkout root; BUILD_SOURCESDIRECTORY is used when unset
//   - SNIPCHECK_VERSION: "v1.0" or "beta"
//   - SNIPCHECK_LANGUAGE: "csharp", "java", "javascript" or "objc"
//   - SNIPCHECK_KNOWN_FAILURES: "true" selects the known-failures pipeline
//   - SNIPCHECK_DLL_PATH: alternate SDK artifact
//   - SNIPCHECK_DEBUG: set to any non-empty value to enable debug output
package config
