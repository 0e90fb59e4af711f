package iocli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStdio(t *testing.T) {
	stdio := NewStdio()
	assert.NotNil(t, stdio)
}

func TestPrintlnAndPrintf(t *testing.T) {
	var out bytes.Buffer
	stdio := NewStdioWithStreams(strings.NewReader(""), &out)

	stdio.Println("hello", "world")
	stdio.Printf("record %s v%d\n", "quote-1", 3)

	assert.Equal(t, "hello world\nrecord quote-1 v3\n", out.String())
}

func TestReadInput(t *testing.T) {
	var out bytes.Buffer
	stdio := NewStdioWithStreams(strings.NewReader("  user input\n"), &out)

	result, err := stdio.ReadInput("Prompt: ")
	require.NoError(t, err)

	assert.Equal(t, "user input", result, "Surrounding whitespace should be trimmed")
	assert.Equal(t, "Prompt: ", out.String())
}

func TestReadInput_EOF(t *testing.T) {
	stdio := NewStdioWithStreams(strings.NewReader(""), &bytes.Buffer{})

	_, err := stdio.ReadInput("Prompt: ")
	assert.Error(t, err)
}

// Вне терминала скрытый ввод недоступен: ReadPassword деградирует
// до построчного чтения
func TestReadPassword_NonTerminalFallsBackToPlainInput(t *testing.T) {
	var out bytes.Buffer
	stdio := NewStdioWithStreams(strings.NewReader("secret-token\n"), &out)

	token, err := stdio.ReadPassword("Token: ")
	require.NoError(t, err)

	assert.Equal(t, "secret-token", token)
	assert.Equal(t, "Token: ", out.String())
}
