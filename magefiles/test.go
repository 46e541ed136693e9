// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Test groups test targets.
type Test mg.Namespace

// All runs every test, including the ones that read real puzzle input.
func (Test) All() error {
	return sh.RunV(binGo, "test", "-v", "./...")
}

// Unit runs the tests in short mode, skipping real puzzle input.
func (Test) Unit() error {
	return sh.RunV(binGo, "test", "-short", "./...")
}

// Race runs the tests with the race detector.
func (Test) Race() error {
	return sh.RunV(binGo, "test", "-short", "-race", "./...")
}

// Cover writes coverage.out and prints per-function coverage.
func (Test) Cover() error {
	if err := sh.RunV(binGo, "test", "-short", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return sh.RunV(binGo, "tool", "cover", "-func=coverage.out")
}

