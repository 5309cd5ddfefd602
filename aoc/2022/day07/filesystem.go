package aoc2022day07

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMalformedEntry = errors.New("malformed listing entry")
)

type Node struct {
	Name     string
	IsDir    bool
	Size     int
	Parent   *Node
	Children map[string]*Node
}

func NewDir(name string, parent *Node) *Node {
	return &Node{
		Name:     name,
		IsDir:    true,
		Parent:   parent,
		Children: make(map[string]*Node),
	}
}

func NewFile(name string, size int, parent *Node) *Node {
	return &Node{
		Name:   name,
		Size:   size,
		Parent: parent,
	}
}

func (n *Node) TotalSize() int {
	if !n.IsDir {
		return n.Size
	}

	total := 0
	for _, child := range n.Children {
		total += child.TotalSize()
	}
	return total
}

// Path returns the absolute path of the node, "/" for the root.
func (n *Node) Path() string {
	if n.Parent == nil {
		return "/"
	}
	parent := n.Parent.Path()
	if parent == "/" {
		return parent + n.Name
	}
	return parent + "/" + n.Name
}

// Walk visits every directory below n, n included.
func (n *Node) Walk(visit func(dir *Node)) {
	if !n.IsDir {
		return
	}
	visit(n)
	for _, child := range n.Children {
		child.Walk(visit)
	}
}

func (n *Node) subDir(name string) *Node {
	if child, exists := n.Children[name]; exists && child.IsDir {
		return child
	}
	dir := NewDir(name, n)
	n.Children[name] = dir
	return dir
}

// BuildFileSystem replays a terminal transcript and returns the root.
func BuildFileSystem(lines []string) (*Node, error) {
	root := NewDir("/", nil)
	current := root

	for i, line := range lines {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue

		case strings.HasPrefix(line, "$ "):
			cmd := strings.TrimPrefix(line, "$ ")
			switch {
			case cmd == "ls":
			case cmd == "cd /":
				current = root
			case cmd == "cd ..":
				if current.Parent != nil {
					current = current.Parent
				}
			case strings.HasPrefix(cmd, "cd "):
				current = current.subDir(strings.TrimPrefix(cmd, "cd "))
			default:
				return nil, fmt.Errorf("line %d: %w: %q", i+1, ErrUnknownCommand, cmd)
			}

		case strings.HasPrefix(line, "dir "):
			current.subDir(strings.TrimPrefix(line, "dir "))

		default:
			sizeStr, name, ok := strings.Cut(line, " ")
			if !ok {
				return nil, fmt.Errorf("line %d: %w: %q", i+1, ErrMalformedEntry, line)
			}
			size, err := strconv.Atoi(sizeStr)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w: %q", i+1, ErrMalformedEntry, line)
			}
			current.Children[name] = NewFile(name, size, current)
		}
	}
	return root, nil
}
