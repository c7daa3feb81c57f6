package sas

import (
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	azsas "github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/sas"
)

// AzureSigner signs blob URLs with an Azure shared-key credential. The
// signature is computed locally, no network call is involved.
type AzureSigner struct {
	accountName string
	container   string
	credential  *azblob.SharedKeyCredential
}

var _ Signer = (*AzureSigner)(nil)

// NewAzureSigner returns a Signer for the given storage account and
// container. It returns ErrNotConfigured when any of the credentials is
// missing so callers can fall back to unsigned delivery.
func NewAzureSigner(accountName, accountKey, container string) (*AzureSigner, error) {
	if accountName == "" || accountKey == "" || container == "" {
		return nil, ErrNotConfigured
	}

	cred, err := azblob.NewSharedKeyCredential(accountName, accountKey)
	if err != nil {
		return nil, fmt.Errorf("shared key credential: %w", err)
	}

	return &AzureSigner{
		accountName: accountName,
		container:   container,
		credential:  cred,
	}, nil
}

// SignReadURL implements Signer. The signature covers the container, the
// blob path, the read-only permission set, and the validity window.
func (s *AzureSigner) SignReadURL(blobPath string, expiry time.Time) (string, error) {
	perms := azsas.BlobPermissions{Read: true}
	values := azsas.BlobSignatureValues{
		Protocol:      azsas.ProtocolHTTPS,
		StartTime:     time.Now().UTC(),
		ExpiryTime:    expiry.UTC(),
		Permissions:   perms.String(),
		ContainerName: s.container,
		BlobName:      blobPath,
	}

	qp, err := values.SignWithSharedKey(s.credential)
	if err != nil {
		return "", fmt.Errorf("sign blob url: %w", err)
	}

	return s.URL(blobPath) + "?" + qp.Encode(), nil
}

// URL implements Signer.
func (s *AzureSigner) URL(blobPath string) string {
	return fmt.Sprintf("https://%s.blob.core.windows.net/%s/%s", s.accountName, s.container, blobPath)
}
