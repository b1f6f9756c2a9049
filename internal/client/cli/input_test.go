package cli

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	t.Run("trims whitespace", func(t *testing.T) {
		scanner := bufio.NewScanner(strings.NewReader("  alice  \n"))
		var out bytes.Buffer

		text, err := GetSimpleText(scanner, "Enter login:", &out)
		require.NoError(t, err)
		assert.Equal(t, "alice", text)
		assert.Contains(t, out.String(), "Enter login:")
	})

	t.Run("eof", func(t *testing.T) {
		scanner := bufio.NewScanner(strings.NewReader(""))
		var out bytes.Buffer

		_, err := GetSimpleText(scanner, "Enter login:", &out)
		assert.ErrorIs(t, err, io.EOF)
	})
}

func TestGetAmount(t *testing.T) {
	t.Run("fractional", func(t *testing.T) {
		scanner := bufio.NewScanner(strings.NewReader("2.5\n"))
		var out bytes.Buffer

		amount, err := GetAmount(scanner, &out)
		require.NoError(t, err)
		assert.Equal(t, 2.5, amount)
	})

	t.Run("not a number", func(t *testing.T) {
		scanner := bufio.NewScanner(strings.NewReader("lots\n"))
		var out bytes.Buffer

		_, err := GetAmount(scanner, &out)
		assert.ErrorContains(t, err, "invalid amount")
	})
}

func TestGetPassword(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })

	readPassword = func(fd int) ([]byte, error) {
		return []byte("s3cret"), nil
	}

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", pw)
	assert.Contains(t, out.String(), "Enter password:")
}
