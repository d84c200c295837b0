package runner

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"text/template"

	"github.com/dkoosis/snipcheck/pkg/snippet"
)

const csprojTemplate = `<Project Sdk="Microsoft.NET.Sdk">
  <PropertyGroup>
    <OutputType>Library</OutputType>
    <TargetFramework>net8.0</TargetFramework>
    <Nullable>disable</Nullable>
    <TreatWarningsAsErrors>false</TreatWarningsAsErrors>
  </PropertyGroup>
  <ItemGroup>
{{- if .ArtifactPath}}
    <Reference Include="{{.Package}}">
      <HintPath>{{.ArtifactPath}}</HintPath>
    </Reference>
{{- else}}
    <PackageReference Include="{{.Package}}" Version="{{.PackageVersion}}" />
{{- end}}
  </ItemGroup>
</Project>
`

var csproj = template.Must(template.New("csproj").Parse(csprojTemplate))

type csprojData struct {
	Package        string
	PackageVersion string
	ArtifactPath   string
}

func dotnetToolchain() toolchain {
	return toolchain{
		language: snippet.CSharp,
		command:  "dotnet",
		args:     []string{"build", "--nologo", "-consoleLoggerParameters:NoSummary"},
		project:  writeDotnetProject,
		parse:    parseDotnetOutput,
	}
}

func writeDotnetProject(dir string, src Source) error {
	data := csprojData{
		Package:        "Microsoft.Graph",
		PackageVersion: "*",
		ArtifactPath:   src.Params.AlternateArtifactPath,
	}
	if src.Version == snippet.Beta {
		data.Package = "Microsoft.Graph.Beta"
	}
	if data.ArtifactPath != "" {
		abs, err := filepath.Abs(data.ArtifactPath)
		if err != nil {
			return err
		}
		data.ArtifactPath = abs
	}

	var b strings.Builder
	if err := csproj.Execute(&b, data); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(dir, "Snippet.csproj"), b.String()); err != nil {
		return err
	}
	return writeFile(filepath.Join(dir, "Program.cs"), src.Code)
}

// dotnetDiagnostic matches MSBuild error lines such as
// "/tmp/x/Program.cs(12,9): error CS0246: The type 'Foo' could not be found [/tmp/x/Snippet.csproj]".
var dotnetDiagnostic = regexp.MustCompile(`(?m)^.*?\((\d+),(\d+)\): error (\w+): (.*?)(?: \[[^\]]*\])?\r?$`)

func parseDotnetOutput(out toolOutput) Result {
	if out.Exited && out.ExitZero {
		return Result{Success: true}
	}

	var res Result
	seen := make(map[Diagnostic]bool)
	for _, m := range dotnetDiagnostic.FindAllStringSubmatch(out.Stdout+"\n"+out.Stderr, -1) {
		line, _ := strconv.Atoi(m[1])
		col, _ := strconv.Atoi(m[2])
		d := Diagnostic{Code: m[3], Line: line, Column: max(col-1, 0), Message: m[4]}
		if seen[d] {
			continue
		}
		seen[d] = true
		res.Diagnostics = append(res.Diagnostics, d)
	}

	if !out.Exited {
		res.Diagnostics = append(res.Diagnostics, Diagnostic{Code: "CS_TIMEOUT", Message: "The compilation for that sample timed out"})
	}
	if len(res.Diagnostics) == 0 {
		res.Diagnostics = append(res.Diagnostics, Diagnostic{
			Code:    "MSBUILD",
			Message: strings.TrimSpace(tail(out.Stdout+out.Stderr, 2000)),
		})
	}
	return res
}
