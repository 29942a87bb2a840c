package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TreeNode is one entry of a rendered tree. Muted nodes are drawn dim and
// a non-empty Badge is aligned in a column after the widest title.
type TreeNode struct {
	Title    string
	Badge    string
	Muted    bool
	Children []TreeNode
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
	treeBlank  = "   "
)

type treeLine struct {
	text  string
	badge string
}

// RenderTree draws roots and their descendants with box-drawing connectors.
// Roots are drawn flush left.
func RenderTree(roots []TreeNode) string {
	var lines []treeLine
	for _, n := range roots {
		lines = appendNode(lines, n, "", "")
	}

	width := 0
	for _, l := range lines {
		width = max(width, lipgloss.Width(l.text))
	}

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.text)
		if l.badge != "" {
			b.WriteString(strings.Repeat(" ", width-lipgloss.Width(l.text)+2))
			b.WriteString(StyleBlue.Render("[ " + l.badge + " ]"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func appendNode(lines []treeLine, n TreeNode, connector, indent string) []treeLine {
	title := n.Title
	if n.Muted {
		title = Dim(title)
	}
	lines = append(lines, treeLine{text: StyleDim.Render(indent+connector) + title, badge: n.Badge})

	// Children of a root hang directly under it; deeper levels carry the
	// parent's rail.
	childIndent := indent
	switch connector {
	case treeBranch:
		childIndent += treePipe
	case treeCorner:
		childIndent += treeBlank
	}
	for i, c := range n.Children {
		conn := treeBranch
		if i == len(n.Children)-1 {
			conn = treeCorner
		}
		lines = appendNode(lines, c, conn, childIndent)
	}
	return lines
}
