package converter

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Jerry809/curl-to-csharp/converter/model"
)

// encodeHandler emits the client configuration handler when cookies or a
// usable proxy are requested. An unsupported proxy scheme never aborts the
// conversion: the proxy is omitted and a warning is recorded instead.
func encodeHandler(opts *model.RequestOptions) ([]model.Statement, []string) {
	var cfg []model.Statement
	var warnings []string

	if opts.HasCookies() {
		cfg = append(cfg, model.Assignment{
			Target: model.Ident{Name: handlerVar},
			Member: "UseCookies",
			Value:  model.BoolLit{Value: false},
		})
	}
	if opts.HasProxy() {
		scheme := proxyScheme(opts.ProxyURI)
		if scheme == "http" || scheme == "https" {
			cfg = append(cfg, model.Assignment{
				Target: model.Ident{Name: handlerVar},
				Member: "Proxy",
				Value: model.New{
					Type: "WebProxy",
					Args: []model.Expression{model.StringLit{Value: opts.ProxyURI}},
				},
			})
		} else {
			warnings = append(warnings, fmt.Sprintf("Proxy scheme %q is not supported", scheme))
		}
	}

	if len(cfg) == 0 {
		return nil, warnings
	}

	stmts := make([]model.Statement, 0, len(cfg)+1)
	stmts = append(stmts, model.Declaration{
		Name: handlerVar,
		Init: model.New{Type: "HttpClientHandler"},
	})
	return append(stmts, cfg...), warnings
}

// proxyScheme extracts the lowercased scheme of a proxy target. Falls back
// to the raw prefix before "://" when the URI does not parse.
func proxyScheme(proxyURI string) string {
	if u, err := url.Parse(proxyURI); err == nil && u.Scheme != "" {
		return strings.ToLower(u.Scheme)
	}
	scheme, _, _ := strings.Cut(proxyURI, "://")
	return strings.ToLower(scheme)
}
