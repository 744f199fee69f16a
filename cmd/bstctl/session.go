package main

import (
	"cmp"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	lru "github.com/hashicorp/golang-lru"

	"github.com/jrhy/bst"
)

const (
	defaultTree = "main"

	// absentValue as the value of a put removes the key.
	absentValue = "-"
)

var notFound = color.New(color.FgYellow).SprintFunc()

type config struct {
	Numeric  bool
	MaxTrees int
	Options  bst.Options[string]
}

// A session holds the named trees a script works on, one of them current.
// Trees live in an ARC cache; one that falls out of it is gone.
type session[K cmp.Ordered] struct {
	out      io.Writer
	parseKey func(string) (K, error)
	options  *bst.Options[string]
	logger   bst.Logger
	trees    *lru.ARCCache
	created  map[string]bool
	name     string
	tree     *bst.Tree[K, string]
}

func newSession[K cmp.Ordered](out io.Writer, trees *lru.ARCCache, options *bst.Options[string], parseKey func(string) (K, error)) *session[K] {
	s := &session[K]{
		out:      out,
		parseKey: parseKey,
		options:  options,
		logger:   options.Logger,
		trees:    trees,
		created:  make(map[string]bool),
	}
	s.use(defaultTree)
	return s
}

func parseStringKey(s string) (string, error) {
	return s, nil
}

func parseIntKey(s string) (int64, error) {
	k, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid key %q: %w", s, err)
	}
	return k, nil
}

func (s *session[K]) use(name string) {
	if v, ok := s.trees.Get(name); ok {
		s.name, s.tree = name, v.(*bst.Tree[K, string])
		return
	}
	if s.created[name] {
		s.logger.Warn("tree was evicted, starting empty", "tree", name)
	}
	s.name, s.tree = name, bst.NewOrdered[K, string](s.options)
	s.trees.Add(name, s.tree)
	s.created[name] = true
}

func (s *session[K]) drop(name string) {
	s.trees.Remove(name)
	delete(s.created, name)
	if name == s.name {
		s.use(name)
	}
}

func arity(cmd string, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%s: want %d argument(s), got %d", cmd, n, len(args))
	}
	return nil
}

func (s *session[K]) do(cmd string, args []string) error {
	switch cmd {
	case "use", "drop":
		if err := arity(cmd, args, 1); err != nil {
			return err
		}
		if cmd == "use" {
			s.use(args[0])
		} else {
			s.drop(args[0])
		}
		return nil
	case "put":
		if len(args) < 2 {
			return fmt.Errorf("put: want a key and a value, got %d argument(s)", len(args))
		}
		key, err := s.parseKey(args[0])
		if err != nil {
			return err
		}
		s.tree.Put(key, strings.Join(args[1:], " "))
		return nil
	case "get", "delete", "contains", "rank":
		if err := arity(cmd, args, 1); err != nil {
			return err
		}
		key, err := s.parseKey(args[0])
		if err != nil {
			return err
		}
		return s.keyQuery(cmd, key)
	case "select":
		if err := arity(cmd, args, 1); err != nil {
			return err
		}
		rank, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid rank %q: %w", args[0], err)
		}
		s.printKey(s.tree.Select(rank))
		return nil
	}

	if err := arity(cmd, args, 0); err != nil {
		return err
	}
	switch cmd {
	case "median":
		s.printKey(s.tree.Median())
	case "min":
		s.printKey(s.tree.Min())
	case "max":
		s.printKey(s.tree.Max())
	case "size":
		fmt.Fprintln(s.out, s.tree.Size())
	case "height":
		fmt.Fprintln(s.out, s.tree.Height())
	case "print":
		if err := s.tree.WriteKeysInOrder(s.out); err != nil {
			return err
		}
		fmt.Fprintln(s.out)
	case "pretty":
		return s.tree.WritePrettyKeys(s.out)
	case "tree":
		fmt.Fprint(s.out, s.tree.DrawKeys())
	case "keys":
		keys := s.tree.Keys()
		words := make([]string, len(keys))
		for i, k := range keys {
			words[i] = fmt.Sprint(k)
		}
		fmt.Fprintln(s.out, strings.Join(words, " "))
	case "sig":
		fmt.Fprintln(s.out, s.tree.Signature())
	case "check":
		if err := s.tree.Validate(); err != nil {
			return fmt.Errorf("tree %s: %w", s.name, err)
		}
		fmt.Fprintln(s.out, "ok")
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func (s *session[K]) keyQuery(cmd string, key K) error {
	switch cmd {
	case "get":
		if v, ok := s.tree.Get(key); ok {
			fmt.Fprintln(s.out, v)
		} else {
			fmt.Fprintln(s.out, notFound("(not found)"))
		}
	case "delete":
		s.tree.Delete(key)
	case "contains":
		fmt.Fprintln(s.out, s.tree.Contains(key))
	case "rank":
		fmt.Fprintln(s.out, s.tree.Rank(key))
	}
	return nil
}

func (s *session[K]) printKey(key K, ok bool) {
	if !ok {
		fmt.Fprintln(s.out, notFound("(not found)"))
		return
	}
	fmt.Fprintln(s.out, key)
}
