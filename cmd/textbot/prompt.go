package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fwojciec/textbot"
)

// Prompter reads the search term and prefix from the console.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter returns a Prompter reading from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// SearchTerm asks for the search term. An empty answer is EINVALID.
func (p *Prompter) SearchTerm() (string, error) {
	fmt.Fprint(p.out, "\nType a search term: ")
	term, err := p.readLine()
	if err != nil {
		return "", err
	}
	if term == "" {
		return "", textbot.Errorf(textbot.EINVALID, "search term required")
	}
	return term, nil
}

// Prefix shows the numbered prefix menu and returns the chosen prefix.
func (p *Prompter) Prefix() (textbot.Prefix, error) {
	fmt.Fprintln(p.out)
	for i, prefix := range textbot.Prefixes() {
		fmt.Fprintf(p.out, "[%d] %s\n", i+1, prefix)
	}
	fmt.Fprint(p.out, "Choose an option: ")

	answer, err := p.readLine()
	if err != nil {
		return "", err
	}
	i, err := strconv.Atoi(answer)
	if err != nil {
		return "", textbot.Errorf(textbot.EINVALID, "invalid option %q", answer)
	}
	return textbot.PrefixByIndex(i)
}

func (p *Prompter) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", textbot.Errorf(textbot.EINVALID, "no input")
	}
	return strings.TrimSpace(p.in.Text()), nil
}
