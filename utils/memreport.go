package utils

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// MemReport provides a detailed, hierarchical memory usage report for a component.
type MemReport struct {
	Name       string      `json:"name"`
	TotalBytes int         `json:"total_bytes"`
	Children   []MemReport `json:"children,omitempty"`
}

// Print formats and prints the MemReport as a tree.
func (r MemReport) Print(indent int) {
	fmt.Print(r.tree(indent))
}

// JSON returns a JSON string representation of the MemReport.
func (r MemReport) JSON() string {
	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Sprintf(`{"error": "%s"}`, err.Error())
	}
	return string(b)
}

// String returns a string representation of the MemReport as a tree.
func (r MemReport) String() string {
	return r.tree(0)
}

// ChildrenBytes sums the direct children.
func (r MemReport) ChildrenBytes() int {
	total := 0
	for _, c := range r.Children {
		total += c.TotalBytes
	}
	return total
}

func (r MemReport) tree(indent int) string {
	var sb strings.Builder
	r.buildString(&sb, indent)
	return sb.String()
}

func (r MemReport) buildString(sb *strings.Builder, indent int) {
	prefix := strings.Repeat("  ", indent)
	sb.WriteString(fmt.Sprintf("%s- %s: %s\n", prefix, r.Name, humanize.IBytes(uint64(r.TotalBytes))))
	for _, child := range r.Children {
		child.buildString(sb, indent+1)
	}
}
