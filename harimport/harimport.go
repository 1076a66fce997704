// Package harimport maps HTTP Archive entries onto the converter's request
// option model, so recorded browser traffic can be converted entry by entry.
package harimport

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/pb33f/harhar"

	"github.com/Jerry809/curl-to-csharp/converter/model"
)

// File decodes a HAR document and returns one option model per entry,
// preserving entry order.
func File(path string) ([]*model.RequestOptions, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening HAR file: %w", err)
	}
	defer f.Close()

	var har harhar.HAR
	if err := json.NewDecoder(f).Decode(&har); err != nil {
		return nil, fmt.Errorf("decoding HAR file %s: %w", path, err)
	}

	requests := make([]*model.RequestOptions, 0, len(har.Log.Entries))
	for i := range har.Log.Entries {
		requests = append(requests, Request(&har.Log.Entries[i].Request))
	}
	return requests, nil
}

// Request maps one HAR request onto an option model. Cookie entries fold
// into a single cookie header value; post-data params carrying file names
// become multipart data files, plain params merge into the payload.
func Request(req *harhar.Request) *model.RequestOptions {
	opts := &model.RequestOptions{
		Method:  strings.ToUpper(req.Method),
		URL:     req.URL,
		Headers: http.Header{},
	}

	for _, h := range req.Headers {
		// HTTP/2 captures include pseudo headers; cookies arrive via the
		// dedicated cookie list
		if strings.HasPrefix(h.Name, ":") || strings.EqualFold(h.Name, "Cookie") {
			continue
		}
		opts.Headers.Add(h.Name, h.Value)
	}

	if len(req.Cookies) > 0 {
		pairs := make([]string, len(req.Cookies))
		for i, c := range req.Cookies {
			pairs[i] = c.Name + "=" + c.Value
		}
		opts.CookieValue = strings.Join(pairs, "; ")
	}

	var fields []string
	for _, p := range req.Body.Params {
		if p.FileName != "" {
			opts.DataFiles = append(opts.DataFiles, p.FileName)
			continue
		}
		field := p.Name
		if p.Value != "" {
			field += "=" + p.Value
		}
		fields = append(fields, field)
	}
	if len(fields) > 0 {
		opts.Payload = strings.Join(fields, "&")
	} else if req.Body.Content != "" {
		opts.Payload = req.Body.Content
	}

	if req.Body.MIMEType != "" && opts.Headers.Get("Content-Type") == "" {
		opts.Headers.Set("Content-Type", req.Body.MIMEType)
	}

	return opts
}
