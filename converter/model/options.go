package model

import (
	"net/http"
	"net/url"
	"slices"
	"strings"
)

// RequestOptions is the normalized description of a parsed curl invocation.
// It is assembled by the command-line parser (or the HAR importer) and is
// never mutated by the converter.
type RequestOptions struct {
	// Method of the HTTP request, in caps, GET/POST/etc
	Method string

	// URL of the request (absolute)
	URL string

	// Headers collected from -H style options; values are multi-valued
	// and comma-joined on lookup
	Headers http.Header

	// Payload holds the merged -d body data
	Payload string

	// DataFiles are files embedded as multipart parts (-d @file, -F file=@path)
	DataFiles []string

	// UploadFiles are sent as raw bodies, one full request per file (-T)
	UploadFiles []string

	// CookieValue is the raw cookie header value (-b)
	CookieValue string

	// ProxyURI is the proxy target (-x), scheme included
	ProxyURI string

	// UserPassword is the "user:password" pair for basic auth (-u)
	UserPassword string
}

// HasHeaders reports whether any header was supplied.
func (o *RequestOptions) HasHeaders() bool {
	return len(o.Headers) > 0
}

// HasCookies reports whether a cookie header value was supplied.
func (o *RequestOptions) HasCookies() bool {
	return o.CookieValue != ""
}

// HasProxy reports whether a proxy target was supplied.
func (o *RequestOptions) HasProxy() bool {
	return o.ProxyURI != ""
}

// HasBasicAuth reports whether a user:password pair was supplied.
func (o *RequestOptions) HasBasicAuth() bool {
	return o.UserPassword != ""
}

// HasPayload reports whether the payload contains anything beyond whitespace.
func (o *RequestOptions) HasPayload() bool {
	return strings.TrimSpace(o.Payload) != ""
}

// HasDataFiles reports whether any multipart file parts were supplied.
func (o *RequestOptions) HasDataFiles() bool {
	return len(o.DataFiles) > 0
}

// HasUploadFiles reports whether any raw upload files were supplied.
func (o *RequestOptions) HasUploadFiles() bool {
	return len(o.UploadFiles) > 0
}

// HasBody reports whether any body source is active. Body construction
// follows a strict priority: multipart data files win over the plain
// payload, which wins over raw upload files.
func (o *RequestOptions) HasBody() bool {
	return o.HasDataFiles() || o.HasPayload() || o.HasUploadFiles()
}

// Header returns all values for the named header, comma-joined. Lookup is
// case-insensitive. Returns "" when the header is absent.
func (o *RequestOptions) Header(name string) string {
	return strings.Join(o.Headers.Values(name), ", ")
}

// ContentType returns the first comma-separated value of the Content-Type
// header, or "" when none was supplied.
func (o *RequestOptions) ContentType() string {
	ct := o.Header("Content-Type")
	if ct == "" {
		return ""
	}
	first, _, _ := strings.Cut(ct, ",")
	return strings.TrimSpace(first)
}

// PathAndQuery returns the path and query portion of the request URL.
// An empty path stays empty rather than being normalized to "/", so a
// bare host URL is not mistaken for a directory target. Returns "" when
// the URL cannot be parsed.
func (o *RequestOptions) PathAndQuery() string {
	u, err := url.Parse(o.URL)
	if err != nil {
		return ""
	}
	pq := u.EscapedPath()
	if u.RawQuery != "" {
		pq += "?" + u.RawQuery
	}
	return pq
}

// HeaderNames returns the header names in canonical form, sorted so the
// generated statements are deterministic.
func (o *RequestOptions) HeaderNames() []string {
	names := make([]string, 0, len(o.Headers))
	for name := range o.Headers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
