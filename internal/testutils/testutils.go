package testutils

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func NewTempDirectory(t *testing.T) (string, func()) {
	dir, err := ioutil.TempDir("", "colstore")
	if !assert.NoError(t, err) {
		panic(err)
	}
	return dir, func() {
		os.RemoveAll(dir)
	}
}
