//go:build mage
// +build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binaryName = "rorifactor"

// Build builds the rorifactor binary
func Build() error {
	mg.Deps(Vet, Test)

	fmt.Printf("Building %s...\n", binaryName)
	return sh.RunV("go", "build",
		"-o", "bin/"+binaryName,
		"-ldflags", "-s -w",
		".")
}

// Test runs all Go tests with the race detector
func Test() error {
	fmt.Println("Running Go tests...")
	return sh.RunV("go", "test", "-race", "-coverprofile=coverage.out", "./...")
}

// Vet runs go vet
func Vet() error {
	fmt.Println("Running go vet...")
	return sh.RunV("go", "vet", "./...")
}

// Lint runs golangci-lint with the default configuration
func Lint() error {
	fmt.Println("Running linters...")
	return sh.RunV("golangci-lint", "run")
}

// Install installs rorifactor into GOBIN
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", ".")
}

// Clean removes build output
func Clean() error {
	return sh.Rm("bin")
}
