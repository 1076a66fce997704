package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand_Minimal(t *testing.T) {
	opts, warnings, err := Command("curl https://example.com/")
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, "GET", opts.Method)
	assert.Equal(t, "https://example.com/", opts.URL)
	assert.Empty(t, opts.Headers)
}

func TestCommand_NoURL(t *testing.T) {
	_, _, err := Command("curl -X POST")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no URL")
}

func TestCommand_LeadingCurlOptional(t *testing.T) {
	opts, _, err := Command("https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", opts.URL)
}

func TestCommand_SchemeDefaulted(t *testing.T) {
	opts, _, err := Command("curl example.com/api")
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/api", opts.URL)
}

func TestCommand_ExplicitMethod(t *testing.T) {
	opts, _, err := Command("curl -X delete https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "DELETE", opts.Method)
}

func TestCommand_Headers(t *testing.T) {
	opts, warnings, err := Command(`curl -H "Accept: application/json" -H "X-Custom: a" -H "X-Custom: b" https://example.com`)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, []string{"a", "b"}, opts.Headers.Values("X-Custom"))
	assert.Equal(t, "application/json", opts.Headers.Get("Accept"))
}

func TestCommand_MalformedHeaderWarns(t *testing.T) {
	opts, warnings, err := Command(`curl -H "NotAHeader" https://example.com`)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "malformed header")
	assert.Empty(t, opts.Headers)
}

func TestCommand_DataMergesWithAmpersand(t *testing.T) {
	opts, _, err := Command(`curl -d a=1 -d b=2 https://example.com`)
	require.NoError(t, err)
	assert.Equal(t, "a=1&b=2", opts.Payload)
	assert.Equal(t, "POST", opts.Method, "data implies POST")
}

func TestCommand_DataFileReference(t *testing.T) {
	opts, _, err := Command(`curl -d @body.json https://example.com`)
	require.NoError(t, err)
	assert.Equal(t, []string{"body.json"}, opts.DataFiles)
	assert.Empty(t, opts.Payload)
}

func TestCommand_DataRawKeepsAtSign(t *testing.T) {
	opts, _, err := Command(`curl --data-raw @literal https://example.com`)
	require.NoError(t, err)
	assert.Empty(t, opts.DataFiles)
	assert.Equal(t, "@literal", opts.Payload)
}

func TestCommand_InlineValueSpelling(t *testing.T) {
	opts, _, err := Command(`curl --request=PATCH --data=a=1 https://example.com`)
	require.NoError(t, err)
	assert.Equal(t, "PATCH", opts.Method)
	assert.Equal(t, "a=1", opts.Payload)
}

func TestCommand_FormFields(t *testing.T) {
	opts, _, err := Command(`curl -F name=bob -F file=@photo.png https://example.com/upload`)
	require.NoError(t, err)
	assert.Equal(t, "name=bob", opts.Payload)
	assert.Equal(t, []string{"photo.png"}, opts.DataFiles)
}

func TestCommand_UploadFilesImplyPut(t *testing.T) {
	opts, _, err := Command(`curl -T a.bin -T b.bin https://example.com/files/`)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.bin", "b.bin"}, opts.UploadFiles)
	assert.Equal(t, "PUT", opts.Method)
}

func TestCommand_AuthCookieProxy(t *testing.T) {
	opts, _, err := Command(`curl -u user:pass -b "id=1; theme=dark" -x proxy.local:8080 https://example.com`)
	require.NoError(t, err)
	assert.Equal(t, "user:pass", opts.UserPassword)
	assert.Equal(t, "id=1; theme=dark", opts.CookieValue)
	assert.Equal(t, "http://proxy.local:8080", opts.ProxyURI, "bare proxy target assumes http")
}

func TestCommand_ProxySchemePreserved(t *testing.T) {
	opts, _, err := Command(`curl -x socks5://localhost:1080 https://example.com`)
	require.NoError(t, err)
	assert.Equal(t, "socks5://localhost:1080", opts.ProxyURI)
}

func TestCommand_UserAgentAndReferer(t *testing.T) {
	opts, _, err := Command(`curl -A "my-agent/1.0" -e https://other.example https://example.com`)
	require.NoError(t, err)
	assert.Equal(t, "my-agent/1.0", opts.Headers.Get("User-Agent"))
	assert.Equal(t, "https://other.example", opts.Headers.Get("Referer"))
}

func TestCommand_IgnoredFlagsStaySilent(t *testing.T) {
	_, warnings, err := Command(`curl -s -v -k -L --compressed https://example.com`)
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestCommand_UnknownFlagWarns(t *testing.T) {
	opts, warnings, err := Command(`curl --retry https://example.com`)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], `"--retry"`)
	assert.Equal(t, "https://example.com", opts.URL)
}

func TestCommand_ExtraArgumentWarns(t *testing.T) {
	_, warnings, err := Command(`curl https://example.com https://second.example`)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "extra argument")
}

func TestCommand_MissingValueWarns(t *testing.T) {
	_, _, err := Command(`curl -H`)
	require.Error(t, err, "a lone -H leaves no URL either")
}

func TestCommand_QuotedPayload(t *testing.T) {
	opts, _, err := Command(`curl -X POST -H 'Content-Type: application/json' -d '{"a":1}' https://example.com/api`)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, opts.Payload)
	assert.Equal(t, "application/json", opts.Headers.Get("Content-Type"))
	assert.Equal(t, "POST", opts.Method)
}
