package main_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestGatePassManagement(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "GatePassManagement Suite")
}
