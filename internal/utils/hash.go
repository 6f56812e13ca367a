// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"hash"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// hasherPool holds reusable SHA-256 instances for [Hash].
var hasherPool = sync.Pool{
	New: func() any {
		return sha256.New()
	},
}

// ErrPasswordMismatch is returned by [CheckPassword] when the password does
// not match the hash.
var ErrPasswordMismatch = errors.New("password does not match")

// HashPassword returns the bcrypt hash of password using the default cost.
//
// Example usage:
//
//	hash, err := utils.HashPassword("secret")
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares password with a hash produced by [HashPassword].
// A wrong password yields [ErrPasswordMismatch]; a malformed hash yields the
// bcrypt error.
func CheckPassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	return err
}

// Hash returns the SHA-256 digest of data using a pooled hasher.
//
// Example usage:
//
//	etag := hex.EncodeToString(utils.Hash(body))
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()
	h.Write(data)
	sum := h.Sum(nil)
	hasherPool.Put(h)
	return sum
}
