package packing_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestPacking(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Packing Suite")
}
