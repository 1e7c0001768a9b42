package httpclient_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"io"
	"math/big"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/ssgclient/internal/httpclient"
)

// generateCertFiles writes a self-signed certificate and key to dir and
// returns their paths together with the parsed certificate.
func generateCertFiles(t *testing.T, dir string) (certFile, keyFile string, cert *x509.Certificate) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	template := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "test"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		ExtKeyUsage: []x509.ExtKeyUsage{
			x509.ExtKeyUsageServerAuth,
			x509.ExtKeyUsageClientAuth,
		},
		BasicConstraintsValid: true,
		IsCA:                  true,
		IPAddresses:           []net.IP{net.IPv4(127, 0, 0, 1)},
	}

	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)

	cert, err = x509.ParseCertificate(der)
	require.NoError(t, err)

	keyDER, err := x509.MarshalECPrivateKey(key)
	require.NoError(t, err)

	certFile = filepath.Join(dir, "cert.pem")
	keyFile = filepath.Join(dir, "key.pem")
	require.NoError(t, os.WriteFile(certFile,
		pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}), 0o600))
	require.NoError(t, os.WriteFile(keyFile,
		pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER}), 0o600))

	return certFile, keyFile, cert
}

func TestNewClientWithCertificate_MissingFiles(t *testing.T) {
	t.Parallel()

	_, err := httpclient.NewClientWithCertificate(httpclient.CertificateConfig{
		CertFile: "does/not/exist.pem",
		KeyFile:  "does/not/exist.key",
	}, time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load client certificate")
}

func TestNewClientWithCertificate_BadCABundle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	certFile, keyFile, _ := generateCertFiles(t, dir)

	notPEM := filepath.Join(dir, "ca.pem")
	require.NoError(t, os.WriteFile(notPEM, []byte("not a certificate"), 0o600))

	_, err := httpclient.NewClientWithCertificate(httpclient.CertificateConfig{
		CertFile: certFile,
		KeyFile:  keyFile,
		CAFile:   notPEM,
	}, time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no certificates found")
}

func TestNewClientWithCertificate_MutualTLS(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	certFile, keyFile, cert := generateCertFiles(t, dir)

	clientCAs := x509.NewCertPool()
	clientCAs.AddCert(cert)

	server := httptest.NewUnstartedServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NotEmpty(t, r.TLS.PeerCertificates, "server must see the client certificate")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	server.TLS = &tls.Config{
		ClientAuth: tls.RequireAndVerifyClientCert,
		ClientCAs:  clientCAs,
		MinVersion: tls.VersionTLS12,
	}
	server.StartTLS()
	defer server.Close()

	// The client trusts the test server through InsecureSkipVerify; the
	// server still requires and verifies the client certificate.
	client, err := httpclient.NewClientWithCertificate(httpclient.CertificateConfig{
		CertFile:           certFile,
		KeyFile:            keyFile,
		InsecureSkipVerify: true,
	}, 5*time.Second)
	require.NoError(t, err)

	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(body))
}

func TestNewClient_Defaults(t *testing.T) {
	t.Parallel()

	client := httpclient.NewClient(nil)
	require.NotNil(t, client)
	assert.Equal(t, httpclient.DefaultTimeout, client.Timeout)

	transport, ok := client.Transport.(*http.Transport)
	require.True(t, ok)
	assert.Equal(t, httpclient.DefaultMaxIdleConns, transport.MaxIdleConns)
	assert.Equal(t, httpclient.DefaultMaxIdleConnsPerHost, transport.MaxIdleConnsPerHost)
}
