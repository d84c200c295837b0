package runner

import (
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/dkoosis/snipcheck/pkg/snippet"
	"github.com/dkoosis/snipcheck/pkg/testcase"
)

// ErrNoTemplate is returned for languages without a shell template.
var ErrNoTemplate = errors.New("no shell template for language")

const csharpShell = `using System;
using System.Collections.Generic;
using System.IO;
using System.Linq;
using System.Net.Http;
using System.Threading.Tasks;
using Microsoft.Graph;

public class GraphSDKTest
{
    private async Task Main()
    {
        IAuthenticationProvider authProvider = null;
        {{.Code}}
    }
}
`

const javaShell = `package com.microsoft.graph.raptor;
{{- if .Preview}}
import com.microsoft.graph.httpcore.*;
import com.microsoft.graph.core.IGraphServiceClient;
import com.microsoft.graph.core.GraphServiceClient;
{{- else}}
import com.microsoft.graph.authentication.IAuthenticationProvider;
import com.microsoft.graph.models.extensions.IGraphServiceClient;
import com.microsoft.graph.requests.extensions.GraphServiceClient;
{{- end}}
import com.microsoft.graph.http.IHttpRequest;
import java.util.LinkedList;
import java.io.InputStream;
import java.util.UUID;
import java.util.Base64;
import java.util.EnumSet;
import javax.xml.datatype.DatatypeFactory;
import javax.xml.datatype.Duration;
import com.google.gson.JsonPrimitive;
import com.google.gson.JsonParser;
import com.google.gson.JsonElement;
import com.google.gson.JsonObject;
import okhttp3.Request;
import com.microsoft.graph.core.*;
import com.microsoft.graph.models.extensions.*;
import com.microsoft.graph.requests.extensions.*;
import com.microsoft.graph.models.generated.*;
import com.microsoft.graph.options.*;
import com.microsoft.graph.serializer.CalendarSerializer;
public class App
{
    public static void main(String[] args) throws Exception
    {
{{- if .Preview}}
        final ICoreAuthenticationProvider authProvider = new ICoreAuthenticationProvider() {
            @Override
            public Request authenticateRequest(Request request) {
                return request;
            }
        };
{{- else}}
        final IAuthenticationProvider authProvider = new IAuthenticationProvider() {
            @Override
            public void authenticateRequest(IHttpRequest request) {
            }
        };
{{- end}}
        {{.Code}}
    }
}
`

var shells = map[snippet.Language]*template.Template{
	snippet.CSharp: template.Must(template.New("csharp").Parse(csharpShell)),
	snippet.Java:   template.Must(template.New("java").Parse(javaShell)),
}

type shellData struct {
	Code string
	// Preview selects the preview library surface for Java, used when the
	// build points at a locally built SDK.
	Preview bool
}

// Wrap embeds a formatted snippet into the shell template of its language,
// producing a complete compilation unit.
func Wrap(code string, lang snippet.Language, params testcase.BuildParams) (string, error) {
	tmpl, ok := shells[lang]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNoTemplate, lang)
	}
	var b strings.Builder
	data := shellData{Code: code, Preview: lang == snippet.Java && params.UsesAlternateArtifact()}
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("rendering %s shell: %w", lang, err)
	}
	return b.String(), nil
}
