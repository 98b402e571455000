package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	props "github.com/zephyrtronium/propositions"
)

const prompt = "> "

// repl parses one formula per line of in, printing each result or error to
// out, until in is exhausted.
func repl(in io.Reader, out io.Writer, pr *printer, popts []props.ParseOption) error {
	sc := bufio.NewScanner(in)
	fmt.Fprint(out, prompt)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			x, err := props.ParseString(line, popts...)
			if err != nil {
				fmt.Fprintln(out, err)
			} else if err := pr.print(x); err != nil {
				return err
			}
		}
		fmt.Fprint(out, prompt)
	}
	fmt.Fprintln(out)
	return sc.Err()
}
