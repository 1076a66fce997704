// Package converter compiles a normalized curl request description into a
// statement tree describing equivalent C# HttpClient code.
//
// The engine is stateless: each Convert call builds and owns a private tree,
// so concurrent conversions over independent option models need no
// synchronization. There are no fatal error paths; every well-formed option
// model yields a structurally complete statement sequence, with unsupported
// features degraded to warnings.
package converter

import (
	"path"
	"slices"
	"strings"

	"github.com/Jerry809/curl-to-csharp/converter/model"
)

// Result aggregates the generated statement sequence with any non-fatal
// warnings produced during conversion. It is not mutated after return.
type Result struct {
	Statements []model.Statement
	Warnings   []string
}

// Convert compiles the request description into the statement sequence of a
// program issuing the equivalent HTTP request(s).
//
// Statements inside every request scope follow a fixed phase order:
// headers, then basic auth, then body construction, then send. Body
// construction is branched in strict priority: multipart data files win
// over the plain payload, which wins over raw upload files. Upload files
// produce one request scope each; every other shape produces exactly one.
func Convert(opts *model.RequestOptions) *Result {
	handlerStmts, warnings := encodeHandler(opts)

	base := encodeHeaders(opts)
	if opts.HasBasicAuth() {
		base = append(base, encodeBasicAuth(opts)...)
	}

	var scopes []model.Statement
	switch {
	case opts.HasDataFiles():
		scopes = append(scopes, requestScope(opts, opts.URL,
			append(base, encodeMultipartBody(opts)...)))
	case opts.HasPayload():
		scopes = append(scopes, requestScope(opts, opts.URL,
			append(base, encodeStringBody(opts)...)))
	case opts.HasUploadFiles():
		for _, file := range opts.UploadFiles {
			body := append(slices.Clone(base), encodeUploadBody(file))
			scopes = append(scopes, requestScope(opts, uploadURL(opts, file), body))
		}
	default:
		scopes = append(scopes, requestScope(opts, opts.URL, base))
	}

	var clientArgs []model.Expression
	if len(handlerStmts) > 0 {
		clientArgs = append(clientArgs, model.Ident{Name: handlerVar})
	}
	client := model.ScopedBlock{
		Name: clientVar,
		Type: "HttpClient",
		Args: clientArgs,
		Body: scopes,
	}

	return &Result{
		Statements: append(handlerStmts, client),
		Warnings:   warnings,
	}
}

// requestScope wraps the prepared body statements in a request scope and
// appends the send-and-await statement, always last.
func requestScope(opts *model.RequestOptions, requestURL string, body []model.Statement) model.ScopedBlock {
	send := model.Declaration{
		Name: responseVar,
		Init: model.Await{
			Expr: model.Invoke{
				Func: clientVar + ".SendAsync",
				Args: []model.Expression{model.Ident{Name: requestVar}},
			},
		},
	}
	return model.ScopedBlock{
		Name: requestVar,
		Type: "HttpRequestMessage",
		Args: []model.Expression{
			model.New{
				Type: "HttpMethod",
				Args: []model.Expression{model.StringLit{Value: opts.Method}},
			},
			model.StringLit{Value: requestURL},
		},
		Body: append(body, send),
	}
}

// uploadURL resolves the request URL for one upload file. A trailing path
// separator signals "directory, not explicit filename", so the file's name
// is appended; otherwise the original URL is reused unchanged for every
// file, matching curl's own trailing-slash convention even though repeated
// uploads then target the same remote resource.
func uploadURL(opts *model.RequestOptions, file string) string {
	if strings.HasSuffix(opts.PathAndQuery(), "/") {
		return opts.URL + path.Base(file)
	}
	return opts.URL
}
