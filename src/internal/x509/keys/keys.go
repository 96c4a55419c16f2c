// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509keys

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
)

// Bits is the modulus size of every generated key.
const Bits = 2048

// ErrKeyGeneration indicates that a key pair could not be generated or encoded.
// It is fatal to the issuance that requested the key and is never retried.
var ErrKeyGeneration = errors.New("x509keys: key generation failed")

// internal variables for mocking in tests
var (
	generateKey            = rsa.GenerateKey
	marshalPKCS8PrivateKey = x509.MarshalPKCS8PrivateKey
)

// Generator produces RSA key pairs from a random source.
type Generator struct {
	random io.Reader
}

// NewGenerator returns a Generator reading entropy from random.
// A nil random uses [crypto/rand.Reader].
func NewGenerator(random io.Reader) *Generator {
	if random == nil {
		random = rand.Reader
	}
	return &Generator{random: random}
}

// Default draws from [crypto/rand.Reader].
var Default = NewGenerator(nil)

// Generate returns a fresh 2048-bit RSA key pair.
//
// The key is also encoded as PKCS#8 once so that a key which could not be
// persisted is rejected here rather than after a certificate was signed with it.
func (g *Generator) Generate() (*rsa.PrivateKey, error) {
	key, err := generateKey(g.random, Bits)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyGeneration, err)
	}

	if _, err := marshalPKCS8PrivateKey(key); err != nil {
		return nil, fmt.Errorf("%w: encode PKCS#8: %w", ErrKeyGeneration, err)
	}

	return key, nil
}

// Generate returns a fresh key pair from the Default generator.
func Generate() (*rsa.PrivateKey, error) { return Default.Generate() }
