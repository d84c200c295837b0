package runner

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"text/template"

	"github.com/dkoosis/snipcheck/pkg/snippet"
	"github.com/dkoosis/snipcheck/pkg/testcase"
)

// Default published SDK versions used when no pin is configured.
const (
	DefaultJavaCoreVersion = "1.0.9"
	DefaultJavaLibVersion  = "2.10.0"
)

const buildGradleTemplate = `plugins {
    id 'java'
    id 'application'
}
repositories {
    mavenCentral()
{{- if .PreviewPath}}
    flatDir {
        dirs '{{.PreviewPath}}/msgraph-sdk-java-core/build/libs'
        dirs '{{.PreviewPath}}/msgraph-sdk-java/build/libs'
    }
{{- end}}
}
dependencies {
    implementation 'com.google.guava:guava:23.0'
{{- if .PreviewPath}}
    implementation 'com.google.code.gson:gson:2.8.6'
    implementation 'com.squareup.okhttp3:okhttp:4.9.0'
    implementation name: 'msgraph-sdk-java'
    implementation name: 'msgraph-sdk-java-core'
{{- else}}
    implementation 'com.microsoft.graph:microsoft-graph-core:{{.CoreVersion}}'
    implementation 'com.microsoft.graph:{{.Artifact}}:{{.LibVersion}}'
{{- end}}
}
application {
    mainClassName = 'com.microsoft.graph.raptor.App'
}
`

const settingsGradle = "rootProject.name = 'msgraph-sdk-java-raptor'\n"

var buildGradle = template.Must(template.New("build.gradle").Parse(buildGradleTemplate))

type gradleData struct {
	PreviewPath string
	Artifact    string
	CoreVersion string
	LibVersion  string
}

var javaSourceDir = filepath.Join("src", "main", "java", "com", "microsoft", "graph", "raptor")

func gradleToolchain() toolchain {
	return toolchain{
		language: snippet.Java,
		command:  "gradle",
		args:     []string{"build", "--console=plain"},
		project:  writeGradleProject,
		parse:    parseGradleOutput,
	}
}

func writeGradleProject(dir string, src Source) error {
	data := gradleData{
		PreviewPath: filepath.ToSlash(src.Params.AlternateArtifactPath),
		Artifact:    "microsoft-graph",
		CoreVersion: pin(src.Params, testcase.PinJavaCore, DefaultJavaCoreVersion),
		LibVersion:  pin(src.Params, testcase.PinJavaLib, DefaultJavaLibVersion),
	}
	if src.Version == snippet.Beta {
		data.Artifact = "microsoft-graph-beta"
	}

	var b strings.Builder
	if err := buildGradle.Execute(&b, data); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(dir, "build.gradle"), b.String()); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(dir, "settings.gradle"), settingsGradle); err != nil {
		return err
	}
	return writeFile(filepath.Join(dir, javaSourceDir, "App.java"), src.Code)
}

func pin(p testcase.BuildParams, name, fallback string) string {
	if v, ok := p.VersionPins[name]; ok && v != "" {
		return v
	}
	return fallback
}

// Gradle diagnostics codes.
const (
	codeJavaTimeout = "JAVA1000"
	codeJavaCompile = "JAVA1001"
	codeJavaDaemon  = "JAVA1002"
)

var (
	gradleNotes      = regexp.MustCompile(`(?m)^Note:\s[^\n]*$`)
	gradleErrorCount = regexp.MustCompile(`\d+ errors?`)
	gradleBlankRuns  = regexp.MustCompile(`\n{2,}`)
	// javacError captures "App.java:12: error: cannot find symbol".
	javacError = regexp.MustCompile(`:(\d+):([^/\\]+)`)
)

func parseGradleOutput(out toolOutput) Result {
	if out.Exited && out.ExitZero && strings.Contains(out.Stdout, "BUILD SUCCESSFUL") {
		return Result{Success: true}
	}

	var res Result
	if i := strings.Index(out.Stderr, "FAILURE"); i >= 0 {
		trace := gradleNotes.ReplaceAllString(out.Stderr[:i], "")
		trace = gradleErrorCount.ReplaceAllString(trace, "")
		trace = gradleBlankRuns.ReplaceAllString(trace, "\n")
		for _, m := range javacError.FindAllStringSubmatch(trace, -1) {
			line, _ := strconv.Atoi(m[1])
			msg := strings.TrimSpace(m[2])
			msg = strings.TrimPrefix(msg, "error: ")
			res.Diagnostics = append(res.Diagnostics, Diagnostic{Code: codeJavaCompile, Line: line, Message: msg})
		}
	}

	if strings.Contains(out.Stdout, gradleDaemonStarting) || strings.Contains(out.Stderr, gradleDaemonStarting) {
		res.Diagnostics = append(res.Diagnostics, Diagnostic{Code: codeJavaDaemon, Message: gradleDaemonStarting})
	}

	if !out.Exited {
		res.Diagnostics = append(res.Diagnostics,
			Diagnostic{Code: codeJavaTimeout, Message: "The compilation for that sample timed out"},
			Diagnostic{Code: codeJavaTimeout, Message: strings.TrimSpace(tail(out.Stderr, 2000))},
			Diagnostic{Code: codeJavaTimeout, Message: strings.TrimSpace(tail(out.Stdout, 2000))},
		)
	}
	return res
}
