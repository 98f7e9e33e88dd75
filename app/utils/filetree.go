package utils

import (
	"path/filepath"
	"sort"
	"strings"
)

// FileNode represents a node in the file tree.
type FileNode struct {
	Name     string
	Path     string // Full file path (only set on file nodes)
	IsFile   bool
	Children map[string]*FileNode
}

// addChild adds (or retrieves) a child node.
func (n *FileNode) addChild(name string, isFile bool) *FileNode {
	if n.Children == nil {
		n.Children = make(map[string]*FileNode)
	}
	if child, ok := n.Children[name]; ok {
		if isFile {
			child.IsFile = true
		}
		return child
	}
	child := &FileNode{Name: name, IsFile: isFile}
	n.Children[name] = child
	return child
}

// BuildFileTree builds a tree structure from slash or OS separated paths.
func BuildFileTree(paths []string) *FileNode {
	root := &FileNode{Children: make(map[string]*FileNode)}
	for _, fullPath := range paths {
		parts := strings.Split(strings.Trim(filepath.ToSlash(fullPath), "/"), "/")
		current := root
		for i, part := range parts {
			if part == "" {
				continue
			}
			isFile := i == len(parts)-1
			current = current.addChild(part, isFile)
			if isFile {
				current.Path = fullPath
			}
		}
	}
	return root
}

// MarkFunc returns a suffix for a file node, such as " (edited)", or "".
type MarkFunc func(path string) string

// RenderFileTree renders node and its children with branch characters.
// Directories with a single child directory are folded into one line.
func RenderFileTree(node *FileNode, mark MarkFunc) string {
	var b strings.Builder
	renderChildren(&b, node, "", mark)
	return b.String()
}

// RenderPaths is BuildFileTree followed by RenderFileTree.
func RenderPaths(paths []string, mark MarkFunc) string {
	return RenderFileTree(BuildFileTree(paths), mark)
}

func renderChildren(b *strings.Builder, node *FileNode, prefix string, mark MarkFunc) {
	names := make([]string, 0, len(node.Children))
	for name := range node.Children {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		child := node.Children[name]
		isLast := i == len(names)-1

		label := child.Name
		for !child.IsFile && len(child.Children) == 1 {
			only := onlyChild(child)
			if only.IsFile {
				break
			}
			child = only
			label += "/" + child.Name
		}

		branch := "┣ "
		if isLast {
			branch = "┗ "
		}
		if child.IsFile {
			if mark != nil {
				label += mark(child.Path)
			}
		} else {
			label += "/"
		}
		b.WriteString(prefix + branch + label + "\n")

		if len(child.Children) > 0 {
			next := prefix + "┃  "
			if isLast {
				next = prefix + "   "
			}
			renderChildren(b, child, next, mark)
		}
	}
}

func onlyChild(n *FileNode) *FileNode {
	for _, c := range n.Children {
		return c
	}
	return nil
}
