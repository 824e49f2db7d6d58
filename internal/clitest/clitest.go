// Package clitest runs command-line golden tests described in YAML files.
//
// A file holds either a top-level sequence of cases or a mapping with a
// "tests" sequence:
//
//	tests:
//	  - name: inside
//	    cmd: inrange
//	    args: ["check", "10", "0", "19"]
//	    expect:
//	      stdout: "true\n"
//	      exitCode: 0
//
// Commands run in-process: os.Args, os.Stdout, os.Stderr and the listed
// environment variables are swapped for the duration of each case.
package clitest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"gopkg.in/yaml.v3"
)

// Case is a single command invocation and its expected result.
type Case struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Cmd         string            `yaml:"cmd"`
	Args        []string          `yaml:"args"`
	Env         map[string]string `yaml:"env"`
	Expect      Expect            `yaml:"expect"`
}

type Expect struct {
	Stdout   string `yaml:"stdout"`
	Stderr   string `yaml:"stderr"`
	ExitCode int    `yaml:"exitCode"`
}

// file is one parsed YAML file. The node tree is kept so that an update
// run can rewrite expectations without disturbing comments or layout.
type file struct {
	name  string
	path  string
	root  *yaml.Node
	nodes []*yaml.Node
	cases []Case
}

// Suite is every case found under one directory.
type Suite struct {
	files    []*file
	commands map[string]func() int
	mu       sync.Mutex
}

// Read loads every .yaml and .yml file under dir.
func Read(dir string) (*Suite, error) {
	s := &Suite{commands: make(map[string]func() int)}
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		if ext := strings.ToLower(filepath.Ext(path)); ext != ".yaml" && ext != ".yml" {
			return nil
		}
		f, err := readFile(path)
		if err != nil {
			return err
		}
		s.files = append(s.files, f)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func readFile(path string) (*file, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(root.Content) == 0 {
		return nil, fmt.Errorf("%s: empty yaml", path)
	}
	seq, err := casesNode(root.Content[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	var cases []Case
	if err := seq.Decode(&cases); err != nil {
		return nil, fmt.Errorf("%s: decode tests: %w", path, err)
	}
	return &file{
		name:  filepath.Base(path),
		path:  path,
		root:  &root,
		nodes: seq.Content,
		cases: cases,
	}, nil
}

func casesNode(doc *yaml.Node) (*yaml.Node, error) {
	switch doc.Kind {
	case yaml.SequenceNode:
		return doc, nil
	case yaml.MappingNode:
		if v := lookup(doc, "tests"); v != nil {
			if v.Kind != yaml.SequenceNode {
				return nil, fmt.Errorf("tests must be a sequence")
			}
			return v, nil
		}
		return nil, fmt.Errorf("missing 'tests' key")
	default:
		return nil, fmt.Errorf("unsupported top-level yaml kind: %v", doc.Kind)
	}
}

// Register binds the cmd name used in YAML to an in-process entry point
// returning the exit code.
func (s *Suite) Register(cmd string, run func() int) {
	s.commands[cmd] = run
}

// Run executes every case as a subtest. With update set, mismatching
// expectations are written back to the YAML files instead of failing.
func (s *Suite) Run(t *testing.T, update bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.files {
		t.Run(f.name, func(t *testing.T) {
			changed := false
			for i := range f.cases {
				name := f.cases[i].Name
				if name == "" {
					name = fmt.Sprintf("Case-%d", i)
				}
				t.Run(name, func(t *testing.T) {
					if s.runCase(t, f, i, update) {
						changed = true
					}
				})
			}
			if changed {
				if err := f.save(); err != nil {
					t.Fatalf("save %s: %v", f.path, err)
				}
				fmt.Printf("clitest: updated %s\n", f.path)
			}
		})
	}
}

type result struct {
	stdout   string
	stderr   string
	exitCode int
}

func (s *Suite) runCase(t *testing.T, f *file, idx int, update bool) bool {
	c := &f.cases[idx]
	run, ok := s.commands[c.Cmd]
	if !ok {
		t.Fatalf("command %q not registered", c.Cmd)
	}
	got := capture(t, append([]string{c.Cmd}, c.Args...), c.Env, run)

	expect := ensure(f.nodes[idx], "expect")
	changed := false
	if got.exitCode != c.Expect.ExitCode {
		if update {
			setInt(ensure(expect, "exitCode"), got.exitCode)
			changed = true
		} else {
			t.Errorf("exit code mismatch:\nExpected: %d\nActual:   %d", c.Expect.ExitCode, got.exitCode)
		}
	}
	if got.stdout != c.Expect.Stdout {
		if update {
			setString(ensure(expect, "stdout"), got.stdout)
			changed = true
		} else {
			t.Errorf("stdout mismatch:\nExpected:\n%s\nActual:\n%s", c.Expect.Stdout, got.stdout)
		}
	}
	if got.stderr != c.Expect.Stderr {
		if update {
			setString(ensure(expect, "stderr"), got.stderr)
			changed = true
		} else {
			t.Errorf("stderr mismatch:\nExpected:\n%s\nActual:\n%s", c.Expect.Stderr, got.stderr)
		}
	}
	return changed
}

// capture runs fn with args and env in place and collects its output.
func capture(t *testing.T, args []string, env map[string]string, fn func() int) result {
	oldArgs, oldStdout, oldStderr := os.Args, os.Stdout, os.Stderr
	type saved struct {
		value  string
		exists bool
	}
	oldEnv := make(map[string]saved, len(env))
	for k, v := range env {
		old, exists := os.LookupEnv(k)
		oldEnv[k] = saved{old, exists}
		os.Setenv(k, v)
	}

	rOut, wOut, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	rErr, wErr, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Args, os.Stdout, os.Stderr = args, wOut, wErr

	var res result
	var wg sync.WaitGroup
	drain := func(r io.Reader, dst *string) {
		defer wg.Done()
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		*dst = buf.String()
	}
	wg.Add(2)
	go drain(rOut, &res.stdout)
	go drain(rErr, &res.stderr)

	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("panic: %v", r)
				res.exitCode = -1
			}
		}()
		res.exitCode = fn()
	}()

	_ = wOut.Close()
	_ = wErr.Close()
	wg.Wait()
	_ = rOut.Close()
	_ = rErr.Close()

	os.Args, os.Stdout, os.Stderr = oldArgs, oldStdout, oldStderr
	for k, old := range oldEnv {
		if old.exists {
			os.Setenv(k, old.value)
		} else {
			os.Unsetenv(k)
		}
	}
	return res
}

func (f *file) save() error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f.root.Content[0]); err != nil {
		enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return os.WriteFile(f.path, buf.Bytes(), 0o644)
}

func lookup(m *yaml.Node, key string) *yaml.Node {
	if m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

// ensure returns the value under key, creating an empty mapping entry when
// it does not exist yet.
func ensure(m *yaml.Node, key string) *yaml.Node {
	if m.Kind != yaml.MappingNode {
		m.Kind = yaml.MappingNode
		m.Tag = "!!map"
		m.Content = nil
	}
	if v := lookup(m, key); v != nil {
		return v
	}
	k := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
	v := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	m.Content = append(m.Content, k, v)
	return v
}

func setString(n *yaml.Node, val string) {
	n.Kind = yaml.ScalarNode
	n.Tag = "!!str"
	n.Content = nil
	// go-yaml renders a lone line break as an empty literal block
	if val == "\n" || val == "\r\n" {
		n.Style = yaml.DoubleQuotedStyle
	} else {
		n.Style = 0
	}
	n.Value = val
}

func setInt(n *yaml.Node, val int) {
	n.Kind = yaml.ScalarNode
	n.Tag = "!!int"
	n.Style = 0
	n.Content = nil
	n.Value = strconv.Itoa(val)
}
