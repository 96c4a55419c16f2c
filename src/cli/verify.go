// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	x509chain "github.com/H0llyW00dzZ/devca/src/internal/x509/chain"
)

func newVerifyCmd(a *app) *cobra.Command {
	var ca string
	cmd := &cobra.Command{
		Use:   "verify <name|file>",
		Short: "Check that a certificate was issued by a CA",
		Long: `Verify the signature and validity window of a certificate against a CA.

Both the certificate and --ca accept a file or a name prefix; for a prefix
<name>.pem is read. The CA private key is not needed.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runVerify(cmd, pick(cmd, "ca", ca, a.config.Cert.CA), args[0])
		},
	}

	cmd.Flags().StringVar(&ca, "ca", defaultCAName, "CA certificate file or name prefix")

	return cmd
}

func (a *app) runVerify(cmd *cobra.Command, caTarget, target string) error {
	caCerts, err := readCertificates(caTarget)
	if err != nil {
		return err
	}
	certs, err := readCertificates(target)
	if err != nil {
		return err
	}

	leaf := certs[0]
	chain := x509chain.New(leaf, caCerts[0])
	if err := chain.VerifyChain(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrNotVerified, target, err)
	}

	signer := chain.Issuer(leaf)
	if signer == nil {
		return fmt.Errorf("%w: %s: no signer found in %s", ErrNotVerified, target, caTarget)
	}
	a.log.Printf("Certificate %q is valid and issued by %q", leaf.Subject.String(), signer.Subject.String())
	return nil
}
