package sas

import (
	"encoding/base64"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestNewAzureSignerNotConfigured(t *testing.T) {
	is := is.New(t)
	_, err := NewAzureSigner("", "", "")
	is.True(err == ErrNotConfigured)
	_, err = NewAzureSigner("acct", "", "files")
	is.True(err == ErrNotConfigured)
}

func TestSignReadURL(t *testing.T) {
	is := is.New(t)
	key := base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))
	signer, err := NewAzureSigner("acct", key, "files")
	is.NoErr(err)

	expiry := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	signed, err := signer.SignReadURL("subs/42/report.pdf", expiry)
	is.NoErr(err)
	is.True(strings.HasPrefix(signed, "https://acct.blob.core.windows.net/files/subs/42/report.pdf?"))

	u, err := url.Parse(signed)
	is.NoErr(err)
	q := u.Query()
	is.Equal(q.Get("sp"), "r")                       // read-only permission
	is.Equal(q.Get("se"), "2025-06-01T00:00:00Z")    // expiry bound
	is.True(q.Get("sig") != "")
}

func TestUnsignedURL(t *testing.T) {
	is := is.New(t)
	key := base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))
	signer, err := NewAzureSigner("acct", key, "files")
	is.NoErr(err)
	is.Equal(signer.URL("subs/42/report.pdf"), "https://acct.blob.core.windows.net/files/subs/42/report.pdf")
}
