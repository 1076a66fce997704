// Package parse turns a raw curl command line into the normalized request
// option model consumed by the converter. Tokenization follows shell quoting
// rules; option folding mirrors the subset of curl flags the converter can
// express. Unknown flags never fail the parse, they only produce warnings.
package parse

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/shlex"

	"github.com/Jerry809/curl-to-csharp/converter/model"
)

// flags curl accepts but the generated code has no use for; they are
// consumed silently instead of warning on every realistic command line.
var ignoredFlags = map[string]bool{
	"-s": true, "--silent": true,
	"-v": true, "--verbose": true,
	"-k": true, "--insecure": true,
	"-L": true, "--location": true,
	"-i": true, "--include": true,
	"-g": true, "--globoff": true,
	"--compressed": true,
}

// Command parses one curl invocation. The returned warnings list unknown or
// malformed options that were skipped; an error is returned only when no
// request URL can be found at all.
func Command(raw string) (*model.RequestOptions, []string, error) {
	tokens, err := shlex.Split(strings.TrimSpace(raw))
	if err != nil {
		return nil, nil, fmt.Errorf("tokenizing command: %w", err)
	}
	if len(tokens) > 0 && tokens[0] == "curl" {
		tokens = tokens[1:]
	}

	opts := &model.RequestOptions{Headers: http.Header{}}
	var warnings []string
	var dataParts []string
	var method string

	p := &parser{tokens: tokens}
	for p.next() {
		tok, inline, hasInline := p.current()

		switch tok {
		case "-X", "--request":
			method = strings.ToUpper(p.value(inline, hasInline))
		case "-H", "--header":
			name, value, ok := strings.Cut(p.value(inline, hasInline), ":")
			if !ok {
				warnings = append(warnings, fmt.Sprintf("ignoring malformed header %q", name))
				continue
			}
			opts.Headers.Add(strings.TrimSpace(name), strings.TrimSpace(value))
		case "-d", "--data", "--data-ascii", "--data-binary":
			v := p.value(inline, hasInline)
			if file, ok := strings.CutPrefix(v, "@"); ok {
				opts.DataFiles = append(opts.DataFiles, file)
			} else {
				dataParts = append(dataParts, v)
			}
		case "--data-raw":
			// raw data never treats @ as a file reference
			dataParts = append(dataParts, p.value(inline, hasInline))
		case "-F", "--form":
			name, value, ok := strings.Cut(p.value(inline, hasInline), "=")
			if !ok {
				warnings = append(warnings, fmt.Sprintf("ignoring malformed form field %q", name))
				continue
			}
			if file, isFile := strings.CutPrefix(value, "@"); isFile {
				opts.DataFiles = append(opts.DataFiles, file)
			} else {
				dataParts = append(dataParts, name+"="+value)
			}
		case "-T", "--upload-file":
			opts.UploadFiles = append(opts.UploadFiles, p.value(inline, hasInline))
		case "-u", "--user":
			opts.UserPassword = p.value(inline, hasInline)
		case "-b", "--cookie":
			opts.CookieValue = p.value(inline, hasInline)
		case "-x", "--proxy":
			opts.ProxyURI = ensureScheme(p.value(inline, hasInline))
		case "-A", "--user-agent":
			opts.Headers.Set("User-Agent", p.value(inline, hasInline))
		case "-e", "--referer":
			opts.Headers.Set("Referer", p.value(inline, hasInline))
		default:
			switch {
			case ignoredFlags[tok]:
				// no-op in generated code
			case strings.HasPrefix(tok, "-"):
				warnings = append(warnings, fmt.Sprintf("ignoring unsupported option %q", tok))
			case opts.URL == "":
				opts.URL = ensureScheme(tok)
			default:
				warnings = append(warnings, fmt.Sprintf("ignoring extra argument %q", tok))
			}
		}
	}
	if p.err != "" {
		warnings = append(warnings, p.err)
	}

	if opts.URL == "" {
		return nil, warnings, fmt.Errorf("no URL found in command")
	}

	opts.Payload = strings.Join(dataParts, "&")
	opts.Method = defaultMethod(method, opts)
	return opts, warnings, nil
}

// parser walks the token stream, handling both "--flag value" and
// "--flag=value" spellings.
type parser struct {
	tokens []string
	pos    int
	err    string
}

func (p *parser) next() bool {
	p.pos++
	return p.pos <= len(p.tokens)
}

func (p *parser) current() (tok, inline string, hasInline bool) {
	tok = p.tokens[p.pos-1]
	if strings.HasPrefix(tok, "--") {
		if flag, v, ok := strings.Cut(tok, "="); ok {
			return flag, v, true
		}
	}
	return tok, "", false
}

// value returns the inline "=value" when present, otherwise consumes the
// following token.
func (p *parser) value(inline string, hasInline bool) string {
	if hasInline {
		return inline
	}
	if p.pos < len(p.tokens) {
		v := p.tokens[p.pos]
		p.pos++
		return v
	}
	p.err = fmt.Sprintf("option %q is missing its value", p.tokens[p.pos-1])
	return ""
}

// defaultMethod applies curl's implied methods when -X was not given:
// PUT for uploads, POST for any body data, GET otherwise.
func defaultMethod(explicit string, opts *model.RequestOptions) string {
	if explicit != "" {
		return explicit
	}
	switch {
	case opts.HasUploadFiles():
		return "PUT"
	case opts.HasDataFiles() || opts.Payload != "":
		return "POST"
	default:
		return "GET"
	}
}

// ensureScheme prepends http:// the way curl assumes it for bare targets.
func ensureScheme(target string) string {
	if target == "" || strings.Contains(target, "://") {
		return target
	}
	return "http://" + target
}
