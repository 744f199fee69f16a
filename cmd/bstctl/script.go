package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	lru "github.com/hashicorp/golang-lru"

	"github.com/jrhy/bst"
)

type interpreter interface {
	do(cmd string, args []string) error
}

// runner feeds script lines to a session.
type runner struct {
	session interpreter
	out     io.Writer

	// echo prints each command before its output.
	echo bool
}

func newRunner(cfg config, out io.Writer) (*runner, error) {
	if cfg.MaxTrees < 1 {
		return nil, fmt.Errorf("max-trees must be at least 1, got %d", cfg.MaxTrees)
	}
	trees, err := lru.NewARC(cfg.MaxTrees)
	if err != nil {
		return nil, fmt.Errorf("creating tree cache: %w", err)
	}
	options := cfg.Options
	if options.Logger == nil {
		options.Logger = bst.DiscardLogger{}
	}
	options.AbsentValue = func(v string) bool { return v == absentValue }

	r := runner{out: out}
	if cfg.Numeric {
		r.session = newSession(out, trees, &options, parseIntKey)
	} else {
		r.session = newSession(out, trees, &options, parseStringKey)
	}
	return &r, nil
}

func (r *runner) runScript(in io.Reader, name string) error {
	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if r.echo {
			fmt.Fprintf(r.out, "> %s\n", text)
		}
		fields := strings.Fields(text)
		if err := r.session.do(fields[0], fields[1:]); err != nil {
			return fmt.Errorf("%s:%d: %w", name, line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	return nil
}

const demoScript = `# 5,3,8,1,4,7,9 in insertion order
put 5 five
put 3 three
put 8 eight
put 1 one
put 4 four
put 7 seven
put 9 nine
print
tree
size
height
rank 4
rank 6
select 5
median
get 7
get 6
# 5 has two children, so its node takes key 4 and keeps the value "five"
delete 5
print
get 4
check
`

func runDemoScript(r *runner) error {
	return r.runScript(strings.NewReader(demoScript), "demo")
}
