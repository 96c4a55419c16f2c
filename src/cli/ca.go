// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	x509issuer "github.com/H0llyW00dzZ/devca/src/internal/x509/issuer"
	x509pair "github.com/H0llyW00dzZ/devca/src/internal/x509/pair"
)

const (
	defaultTTL    = "365d"
	defaultCAName = "ca_cert"
)

// issuer issues every certificate created by the CLI. Tests replace it to
// inject a fixed clock or key source.
var issuer = x509issuer.Default

// caOptions holds the ca command flags.
type caOptions struct {
	ttl          string
	organization string
	commonName   string
	name         string
}

func newCACmd(a *app) *cobra.Command {
	opts := &caOptions{}
	cmd := &cobra.Command{
		Use:   "ca",
		Short: "Create a self-signed root certificate",
		Long: `Create a self-signed root certificate and its private key.

The certificate is written to <name>.pem and the PKCS#8 key to <name>.key.
Use the same name with "cert --ca" to issue leaf certificates.`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runCA(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.ttl, "ttl", defaultTTL, "validity duration, e.g. 90d, 2w, 10y, 1y12h")
	flags.StringVar(&opts.organization, "on", a.hostname, "organization name")
	flags.StringVar(&opts.commonName, "cn", a.hostname, "common name")
	flags.StringVar(&opts.name, "name", defaultCAName, "output file prefix")

	return cmd
}

// resolve merges flags over config file values into issuance parameters.
func (o *caOptions) resolve(cmd *cobra.Command, config *Config) (x509issuer.CaParameters, string, error) {
	ttl, err := ParseTTL(pick(cmd, "ttl", o.ttl, config.CA.TTL))
	if err != nil {
		return x509issuer.CaParameters{}, "", err
	}
	params := x509issuer.CaParameters{
		TTL:          ttl,
		Organization: pick(cmd, "on", o.organization, config.CA.Organization),
		CommonName:   pick(cmd, "cn", o.commonName, config.CA.CommonName),
	}
	return params, pick(cmd, "name", o.name, config.CA.Name), nil
}

func (a *app) runCA(cmd *cobra.Command, opts *caOptions) error {
	params, name, err := opts.resolve(cmd, a.config)
	if err != nil {
		return err
	}

	ca, err := issuer.GenerateCA(params)
	if err != nil {
		return fmt.Errorf("generating CA certificate: %w", err)
	}

	if err := write(cmd, ca, name); err != nil {
		return err
	}

	cert := ca.Certificate()
	a.log.Printf("Created CA certificate %q valid until %s", cert.Subject.String(), cert.NotAfter.UTC().Format(time.DateOnly))
	a.log.Printf("Certificate: %s", x509pair.CertPath(name))
	a.log.Printf("Private key: %s", x509pair.KeyPath(name))
	return nil
}

// write persists ckp under name unless the command has been cancelled.
func write(cmd *cobra.Command, ckp *x509pair.CertificateKeyPair, name string) error {
	if err := cmd.Context().Err(); err != nil {
		return err
	}
	return ckp.Write(name)
}
