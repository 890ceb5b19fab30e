//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - build the binary
var Default = Build

// Build builds the echoq binary
func Build() error {
	return sh.RunV("go", "build", "-o", "bin/echoq", "./cmd/echoq")
}

// Test runs the test suite
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// QA runs vet and the test suite
func QA() error {
	mg.SerialDeps(Vet, Test)
	return nil
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("bin")
}
