package iocli

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStdio(t *testing.T) {
	stdio := NewStdio()
	assert.NotNil(t, stdio)
}

// Println/Printf переадресуют в fmt — проверяем что вызовы не падают
func TestPrintlnAndPrintf(t *testing.T) {
	stdio := NewStdio()

	assert.NotPanics(t, func() {
		stdio.Println("Планы на выходные:", 3)
	})
	assert.NotPanics(t, func() {
		stdio.Printf("%s [%s]\n", "Поход в горы", "pending")
	})
}

func TestWrite(t *testing.T) {
	stdio := NewStdio()

	// Команда fetch отдаёт тело ответа именно через Write
	body := []byte(`{"activities":[]}`)
	n, err := stdio.Write(body)
	require.NoError(t, err)
	assert.Equal(t, len(body), n)
}

// ReadInput читаем из pipe вместо os.Stdin
func TestReadInput(t *testing.T) {
	input := "weekend-planner\n"
	r, w, err := os.Pipe()
	require.NoError(t, err)

	// Пишем в pipe в отдельной горутине, имитируя ввод пользователя
	go func() {
		_, _ = w.Write([]byte(input))
		_ = w.Close()
	}()

	oldStdin := os.Stdin
	defer func() { os.Stdin = oldStdin }()
	os.Stdin = r

	stdio := NewStdio()
	result, err := stdio.ReadInput("Login: ")
	require.NoError(t, err)
	assert.Equal(t, strings.TrimSpace(input), result)
}
