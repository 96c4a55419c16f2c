// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"crypto/x509"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/devca/src/internal/helper/gc"
	x509certs "github.com/H0llyW00dzZ/devca/src/internal/x509/certs"
	x509chain "github.com/H0llyW00dzZ/devca/src/internal/x509/chain"
	x509pair "github.com/H0llyW00dzZ/devca/src/internal/x509/pair"
)

// inspectOptions holds the inspect command flags.
type inspectOptions struct {
	json bool
	tree bool
}

func newInspectCmd(a *app) *cobra.Command {
	opts := &inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect <name|file>",
		Short: "Show a summary of a certificate",
		Long: `Show subject, issuer, validity, key and SANs of a certificate.

The argument is either a certificate file (PEM, DER or PKCS#7) or a name
prefix, in which case <name>.pem is read. A bundle shows every certificate.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInspect(cmd, opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.json, "json", "j", false, "output JSON")
	flags.BoolVarP(&opts.tree, "tree", "t", false, "output an ASCII tree")
	cmd.MarkFlagsMutuallyExclusive("json", "tree")

	return cmd
}

func (a *app) runInspect(cmd *cobra.Command, opts *inspectOptions, target string) error {
	certs, err := readCertificates(target)
	if err != nil {
		return err
	}

	chain := x509chain.New(certs...)
	out := cmd.OutOrStdout()
	switch {
	case opts.json:
		data, err := chain.ToVisualizationJSON()
		if err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case opts.tree:
		fmt.Fprint(out, chain.RenderASCIITree())
	default:
		fmt.Fprint(out, chain.RenderTable())
	}
	return nil
}

// readCertificates decodes every certificate in target. A target that does
// not exist as given is treated as a name prefix.
func readCertificates(target string) ([]*x509.Certificate, error) {
	path := target
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		path = x509pair.CertPath(target)
	}

	data, err := gc.ReadFile(path)
	if err != nil {
		return nil, &x509pair.LoadError{Path: path, Kind: x509pair.KindIO, Err: err}
	}

	codec := x509certs.New()
	certs, err := codec.DecodeMultiple(data)
	if err == nil && len(certs) > 0 {
		return certs, nil
	}

	// PKCS#7 bundles are only understood by the single-certificate decoder.
	cert, decodeErr := codec.Decode(data)
	if decodeErr != nil {
		if err == nil {
			err = decodeErr
		}
		return nil, &x509pair.LoadError{Path: path, Kind: x509pair.KindParse, Err: err}
	}
	return []*x509.Certificate{cert}, nil
}
