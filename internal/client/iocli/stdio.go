package iocli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Stdio реализует IO поверх заданных потоков ввода-вывода.
type Stdio struct {
	in  *bufio.Reader
	out io.Writer

	// fd терминала для скрытого ввода; -1, когда ввод не терминал
	passwordFd int
}

// NewStdio создает IO поверх стандартных потоков процесса.
func NewStdio() IO {
	return &Stdio{
		in:         bufio.NewReader(os.Stdin),
		out:        os.Stdout,
		passwordFd: int(os.Stdin.Fd()),
	}
}

// NewStdioWithStreams создает IO поверх произвольных потоков (тесты,
// неинтерактивные запуски). Скрытого ввода нет: ReadPassword читает
// строку как обычный ввод.
func NewStdioWithStreams(in io.Reader, out io.Writer) IO {
	return &Stdio{
		in:         bufio.NewReader(in),
		out:        out,
		passwordFd: -1,
	}
}

func (s *Stdio) Println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	input, err := s.in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// ReadPassword читает секретный ввод (API токен) без эха в терминал.
func (s *Stdio) ReadPassword(prompt string) (string, error) {
	if s.passwordFd < 0 || !term.IsTerminal(s.passwordFd) {
		return s.ReadInput(prompt)
	}

	s.Printf("%s", prompt)
	pwBytes, err := term.ReadPassword(s.passwordFd)
	s.Println("")
	if err != nil {
		return "", err
	}
	return string(pwBytes), nil
}
