// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// devca is a command-line tool that issues X.509 certificates for local
// development: a self-signed root certificate and leaf certificates signed by it.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/devca/cmd/devca@latest
//
// # Usage
//
//	devca [--config FILE] [--log-format text|json] [--quiet] COMMAND [FLAGS]
//
// # Commands
//
//	ca       Create a self-signed root certificate (<name>.pem, <name>.key)
//	cert     Issue a leaf certificate signed by a stored root
//	inspect  Show a summary of a certificate file as a table, tree or JSON
//	verify   Check that a certificate was issued by a root
//
// # Flags
//
// ca:
//
//	--ttl   Validity duration, e.g. 90d, 2w, 10y, 1y12h (default: 365d)
//	--on    Organization name (default: hostname)
//	--cn    Common name (default: hostname)
//	--name  Output file prefix (default: ca_cert)
//
// cert:
//
//	--ttl, --on, --cn   As for ca
//	--ca                File prefix of the signing root (default: ca_cert)
//	--name              Output file prefix (default: cert)
//	--sans              DNS subject alternative names, repeatable or comma separated
//	--no-hostname       Do not add the hostname to the SANs
//	--no-localhost      Do not add "localhost" to the SANs
//
// # Examples
//
// Create a root and a certificate for a local site:
//
//	devca ca --on "Example Dev" --cn "Example Dev Root" --ttl 10y
//	devca cert --sans app.test,api.app.test --name app
//
// Inspect and verify the result:
//
//	devca inspect --tree app
//	devca verify --ca ca_cert app
//
// Verify with OpenSSL:
//
//	openssl verify -CAfile ca_cert.pem app.pem
//
// # Exit Codes
//
//	0   success
//	64  usage error
//	65  invalid input data (malformed file, SAN or TTL)
//	70  internal error while building a certificate
//	74  file could not be read or written
//	78  configuration file error
package main
