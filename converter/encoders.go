package converter

import (
	"strings"

	"github.com/Jerry809/curl-to-csharp/converter/model"
)

// Variable names bound by the generated code. The assembly engine relies on
// the encoders and the scope builders agreeing on these.
const (
	handlerVar  = "handler"
	clientVar   = "httpClient"
	requestVar  = "request"
	responseVar = "response"
	contentVar  = "multipartContent"
	authVar     = "base64authorization"
)

const addHeaderMember = "Headers.TryAddWithoutValidation"

// encodeHeaders emits one header registration per non-content-type header
// value pair, plus one for the cookie header if cookies were requested.
// Content-Type is skipped whenever a body is present: body construction
// consumes it instead.
func encodeHeaders(opts *model.RequestOptions) []model.Statement {
	var stmts []model.Statement
	for _, name := range opts.HeaderNames() {
		if opts.HasBody() && strings.EqualFold(name, "Content-Type") {
			continue
		}
		stmts = append(stmts, model.Call{
			Receiver: model.Ident{Name: requestVar},
			Member:   addHeaderMember,
			Args: []model.Expression{
				model.StringLit{Value: name},
				model.StringLit{Value: opts.Header(name)},
			},
		})
	}
	if opts.HasCookies() {
		stmts = append(stmts, model.Call{
			Receiver: model.Ident{Name: requestVar},
			Member:   addHeaderMember,
			Args: []model.Expression{
				model.StringLit{Value: "Cookie"},
				model.StringLit{Value: opts.CookieValue},
			},
		})
	}
	return stmts
}

// encodeBasicAuth declares a base64 encoding of the ASCII bytes of
// "user:password" and registers an Authorization header interpolating it
// behind the "Basic " prefix.
func encodeBasicAuth(opts *model.RequestOptions) []model.Statement {
	return []model.Statement{
		model.Declaration{
			Name: authVar,
			Init: model.Invoke{
				Func: "Convert.ToBase64String",
				Args: []model.Expression{
					model.Invoke{
						Func: "Encoding.ASCII.GetBytes",
						Args: []model.Expression{model.StringLit{Value: opts.UserPassword}},
					},
				},
			},
		},
		model.Call{
			Receiver: model.Ident{Name: requestVar},
			Member:   addHeaderMember,
			Args: []model.Expression{
				model.StringLit{Value: "Authorization"},
				model.Interp{Chunks: []model.InterpChunk{
					{Text: "Basic "},
					{Expr: model.Ident{Name: authVar}},
				}},
			},
		},
	}
}

// encodeStringBody binds a StringContent built from the literal payload to
// the request's content slot. When a content-type header exists the content
// is constructed with a UTF-8 charset marker and the first comma-separated
// content-type value.
func encodeStringBody(opts *model.RequestOptions) []model.Statement {
	args := []model.Expression{model.StringLit{Value: opts.Payload}}
	if ct := opts.ContentType(); ct != "" {
		args = append(args,
			model.Ident{Name: "Encoding.UTF8"},
			model.StringLit{Value: ct},
		)
	}
	return []model.Statement{
		model.Assignment{
			Target: model.Ident{Name: requestVar},
			Member: "Content",
			Value:  model.New{Type: "StringContent", Args: args},
		},
	}
}

// encodeMultipartBody declares a multipart container, adds the payload as a
// string part (when present) followed by one byte-array part per data file,
// then binds the container to the request's content slot.
func encodeMultipartBody(opts *model.RequestOptions) []model.Statement {
	stmts := []model.Statement{
		model.Declaration{
			Name: contentVar,
			Init: model.New{Type: "MultipartFormDataContent"},
		},
	}
	if opts.HasPayload() {
		stmts = append(stmts, model.Call{
			Receiver: model.Ident{Name: contentVar},
			Member:   "Add",
			Args: []model.Expression{
				model.New{
					Type: "StringContent",
					Args: []model.Expression{model.StringLit{Value: opts.Payload}},
				},
			},
		})
	}
	for _, file := range opts.DataFiles {
		stmts = append(stmts, model.Call{
			Receiver: model.Ident{Name: contentVar},
			Member:   "Add",
			Args:     []model.Expression{fileContent(file)},
		})
	}
	stmts = append(stmts, model.Assignment{
		Target: model.Ident{Name: requestVar},
		Member: "Content",
		Value:  model.Ident{Name: contentVar},
	})
	return stmts
}

// encodeUploadBody binds a byte-array content read from one upload file to
// the request's content slot.
func encodeUploadBody(file string) model.Statement {
	return model.Assignment{
		Target: model.Ident{Name: requestVar},
		Member: "Content",
		Value:  fileContent(file),
	}
}

// fileContent builds `new ByteArrayContent(File.ReadAllBytes("<file>"))`.
// The read happens in the generated program, not here.
func fileContent(file string) model.Expression {
	return model.New{
		Type: "ByteArrayContent",
		Args: []model.Expression{
			model.Invoke{
				Func: "File.ReadAllBytes",
				Args: []model.Expression{model.StringLit{Value: file}},
			},
		},
	}
}
