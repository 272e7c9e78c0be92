package rvnqueryx

import (
	"testing"

	"github.com/rvncorex/rvncorex/testutils"
)

func TestMain(m *testing.M) {
	testutils.SetupTests(m)
}
