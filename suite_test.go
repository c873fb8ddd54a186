package jsoncontract

import (
	"embed"
	"path"
	"testing"
)

//go:embed _testdata
var testdata embed.FS

func TestSuite(t *testing.T) {
	runSuite(t, testdata, path.Join("_testdata", "suite"))
}
