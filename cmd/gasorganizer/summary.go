// cmd/gasorganizer/summary.go
package main

import (
	"context" // Needed for slog.Enabled check
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
)

// FileInfo describes one copied gas file.
type FileInfo struct {
	Path     string // Destination path relative to the destination root, slash separated
	Source   string // Source path relative to the dataset root
	Size     int64
	IsManual bool
}

// TreeNode is a node of the destination tree shown in the summary.
type TreeNode struct {
	Name     string
	Children map[string]*TreeNode
	FileInfo *FileInfo
}

func buildTree(files []FileInfo) *TreeNode {
	root := &TreeNode{Name: ".", Children: make(map[string]*TreeNode)}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })

	for i := range files {
		file := &files[i]
		parts := strings.Split(file.Path, "/")
		currentNode := root

		for j, part := range parts {
			if part == "" {
				continue
			}
			childNode, exists := currentNode.Children[part]
			if !exists {
				childNode = &TreeNode{Name: part, Children: make(map[string]*TreeNode)}
				currentNode.Children[part] = childNode
			}
			if j == len(parts)-1 {
				if childNode.FileInfo != nil {
					slog.Warn("Tree building conflict: Node already has FileInfo, overwriting.",
						"nodeName", childNode.Name, "existingSource", childNode.FileInfo.Source, "newSource", file.Source)
				}
				childNode.FileInfo = file
			}
			currentNode = childNode
		}
	}
	return root
}

func sortedChildNames(node *TreeNode) []string {
	return mapsKeys(node.Children)
}

// printTreeRecursive - Conditionally add [M] marker based on log level
func printTreeRecursive(writer io.Writer, node *TreeNode, indent string, isLast bool) {
	if node.Name == "." {
		childNames := sortedChildNames(node)
		for i, name := range childNames {
			printTreeRecursive(writer, node.Children[name], indent, i == len(childNames)-1)
		}
		return
	}

	connector := tern(isLast, "└── ", "├── ")
	fileInfoStr := ""
	manualMarker := ""

	if node.FileInfo != nil {
		fileInfoStr = fmt.Sprintf(" (%s, from %s)", humanize.IBytes(uint64(node.FileInfo.Size)), node.FileInfo.Source)
		if node.FileInfo.IsManual && slog.Default().Enabled(context.Background(), slog.LevelDebug) {
			manualMarker = " [M]"
		}
	}

	fmt.Fprintf(writer, "%s%s%s%s%s\n", indent, connector, node.Name, manualMarker, fileInfoStr)

	childIndent := indent + tern(isLast, "    ", "│   ")
	childNames := sortedChildNames(node)
	for i, name := range childNames {
		printTreeRecursive(writer, node.Children[name], childIndent, i == len(childNames)-1)
	}
}

func printSummaryListSection[K comparable, V any](
	writer io.Writer,
	titleFormat string,
	items map[K]V,
	getPath func(K) string,
	getDetails func(K, V) string,
) {
	fmt.Fprintf(writer, titleFormat, len(items))
	if len(items) == 0 {
		return
	}
	keys := lo.Keys(items)
	sort.Slice(keys, func(i, j int) bool { return getPath(keys[i]) < getPath(keys[j]) })
	for _, k := range keys {
		pathStr := getPath(k)
		detailsStr := ""
		if getDetails != nil {
			detailsStr = getDetails(k, items[k])
		}
		if detailsStr != "" {
			fmt.Fprintf(writer, "- %s: %s\n", pathStr, detailsStr)
		} else {
			fmt.Fprintf(writer, "- %s\n", pathStr)
		}
	}
}

// printSummaryTree reports what restructureDataset did.
func printSummaryTree(
	copiedFiles []FileInfo,
	skippedFiles []string,
	errorFiles map[string]error,
	totalSize int64,
	destRoot string,
	outputWriter io.Writer,
) {
	fmt.Fprintln(outputWriter, "\n--- Restructure Summary ---")

	if len(copiedFiles) > 0 {
		base := filepath.Base(destRoot)
		destDisplay := tern(base != "." && base != string(filepath.Separator),
			fmt.Sprintf("'%s'", base), fmt.Sprintf("'%s'", destRoot))
		fmt.Fprintf(outputWriter, "Copied %d gas files (%s total) into %s:\n",
			len(copiedFiles), humanize.IBytes(uint64(totalSize)), destDisplay)
		printTreeRecursive(outputWriter, buildTree(copiedFiles), "", true)
	} else {
		fmt.Fprintln(outputWriter, "No gas files copied.")
	}

	skippedMap := lo.SliceToMap(skippedFiles, func(p string) (string, struct{}) { return p, struct{}{} })
	printSummaryListSection(outputWriter, "\nSkipped non-gas files (%d):\n",
		skippedMap, func(path string) string { return path }, nil)

	printSummaryListSection(outputWriter, "\nErrors encountered (%d):\n",
		errorFiles, func(path string) string { return path },
		func(path string, err error) string { return err.Error() })

	fmt.Fprintln(outputWriter, "---------------------------")
}
