// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	x509issuer "github.com/H0llyW00dzZ/devca/src/internal/x509/issuer"
	x509pair "github.com/H0llyW00dzZ/devca/src/internal/x509/pair"
)

const (
	defaultCertName = "cert"
	localhost       = "localhost"
)

// certOptions holds the cert command flags.
type certOptions struct {
	ttl          string
	organization string
	commonName   string
	ca           string
	name         string
	sans         []string
	noLocalhost  bool
	noHostname   bool
}

func newCertCmd(a *app) *cobra.Command {
	opts := &certOptions{}
	cmd := &cobra.Command{
		Use:   "cert",
		Short: "Issue a leaf certificate signed by a CA",
		Long: `Issue a leaf certificate signed by the CA stored as <ca>.pem and <ca>.key.

Subject alternative names are the --sans values in order, followed by the
local hostname and "localhost" unless --no-hostname or --no-localhost is set.`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runCert(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.ttl, "ttl", defaultTTL, "validity duration, e.g. 90d, 2w, 10y, 1y12h")
	flags.StringVar(&opts.organization, "on", a.hostname, "organization name")
	flags.StringVar(&opts.commonName, "cn", a.hostname, "common name")
	flags.StringVar(&opts.ca, "ca", defaultCAName, "file prefix of the signing CA")
	flags.StringVar(&opts.name, "name", defaultCertName, "output file prefix")
	flags.StringSliceVar(&opts.sans, "sans", nil, "DNS subject alternative names (repeatable, comma separated)")
	flags.BoolVar(&opts.noLocalhost, "no-localhost", false, `do not add "localhost" to the SANs`)
	flags.BoolVar(&opts.noHostname, "no-hostname", false, "do not add the hostname to the SANs")

	return cmd
}

// effectiveSANs returns explicit names, then hostname, then localhost.
// Entries are passed through as given; duplicates are kept.
func effectiveSANs(explicit []string, hostname string, noHostname, noLocalhost bool) []string {
	sans := make([]string, 0, len(explicit)+2)
	sans = append(sans, explicit...)
	if !noHostname {
		sans = append(sans, hostname)
	}
	if !noLocalhost {
		sans = append(sans, localhost)
	}
	return sans
}

// resolve merges flags over config file values. The CA field of the
// returned parameters is left for the caller to load.
func (o *certOptions) resolve(cmd *cobra.Command, config *Config, hostname string) (params x509issuer.CertParameters, ca, name string, err error) {
	ttl, err := ParseTTL(pick(cmd, "ttl", o.ttl, config.Cert.TTL))
	if err != nil {
		return params, "", "", err
	}

	explicit := o.sans
	if !cmd.Flags().Changed("sans") && len(config.Cert.SANs) > 0 {
		explicit = config.Cert.SANs
	}

	params = x509issuer.CertParameters{
		TTL:          ttl,
		Organization: pick(cmd, "on", o.organization, config.Cert.Organization),
		CommonName:   pick(cmd, "cn", o.commonName, config.Cert.CommonName),
		SANs: effectiveSANs(explicit, hostname,
			pickBool(cmd, "no-hostname", o.noHostname, config.Cert.NoHostname),
			pickBool(cmd, "no-localhost", o.noLocalhost, config.Cert.NoLocalhost)),
	}
	return params, pick(cmd, "ca", o.ca, config.Cert.CA), pick(cmd, "name", o.name, config.Cert.Name), nil
}

func (a *app) runCert(cmd *cobra.Command, opts *certOptions) error {
	params, caName, name, err := opts.resolve(cmd, a.config, a.hostname)
	if err != nil {
		return err
	}

	// Names are checked before the CA is read so a typo never touches the disk.
	if _, err := x509issuer.DNSNames(params.SANs); err != nil {
		return err
	}

	params.CA, err = x509pair.Reconstruct(caName)
	if err != nil {
		return err
	}

	leaf, err := issuer.GenerateCert(params)
	if err != nil {
		return fmt.Errorf("generating certificate: %w", err)
	}

	if err := write(cmd, leaf, name); err != nil {
		return err
	}

	cert := leaf.Certificate()
	a.log.Printf("Issued certificate %q signed by %q valid until %s",
		cert.Subject.String(), cert.Issuer.String(), cert.NotAfter.UTC().Format(time.DateOnly))
	if len(cert.DNSNames) > 0 {
		a.log.Printf("DNS names: %s", strings.Join(cert.DNSNames, ", "))
	}
	a.log.Printf("Certificate: %s", x509pair.CertPath(name))
	a.log.Printf("Private key: %s", x509pair.KeyPath(name))
	return nil
}
