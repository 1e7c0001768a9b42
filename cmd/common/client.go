package common

import (
	"fmt"

	"github.com/jonesrussell/ssgclient/internal/config"
	"github.com/jonesrussell/ssgclient/internal/httpclient"
	"github.com/jonesrussell/ssgclient/internal/logger"
	"github.com/jonesrussell/ssgclient/internal/ssg"
)

// NewAPIClient builds the certificate-authenticated SSG-WSG client from the
// application configuration.
func NewAPIClient(cfg config.Interface, log logger.Interface) (*ssg.Client, error) {
	apiCfg := cfg.GetAPIConfig()

	certOpt, err := ssg.WithCertificate(httpclient.CertificateConfig{
		CertFile:           apiCfg.TLS.CertFile,
		KeyFile:            apiCfg.TLS.KeyFile,
		CAFile:             apiCfg.TLS.CAFile,
		InsecureSkipVerify: apiCfg.TLS.InsecureSkipVerify,
	}, apiCfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("configure client certificate: %w", err)
	}

	return ssg.NewClient(
		certOpt,
		ssg.WithBaseURL(apiCfg.BaseURL),
		ssg.WithDefaultVersion(apiCfg.DefaultVersion),
		ssg.WithLogger(log.WithComponent("ssg")),
	), nil
}
