package mdw

import "strings"

// reformatTitle moves a trailing "module" qualifier in an auto-generated
// heading to the front, so the anchor the Markdown renderer generates from
// the heading matches the anchor the front end's cross-references expect
// ("mypackage.mymodule module" links target "module-mypackage.mymodule").
// Only a standalone word matches; "mymodule" stays intact. Headings that use
// the word "module" for unrelated reasons are still rewritten, a known
// limitation kept for output compatibility. Reference fragments get the
// matching dot-stripping half of the fix in enterReference.
func reformatTitle(n *Node) {
	if len(n.Children) == 0 {
		return
	}
	leaf := n.Children[0]
	if leaf.Kind != KindText {
		return
	}
	idx := wordIndex(leaf.Text, "module")
	if idx < 0 {
		return
	}
	cleaned := strings.TrimSpace(leaf.Text[:idx] + leaf.Text[idx+len("module"):])
	leaf.Text = "Module " + cleaned
}

// wordIndex finds word in s bounded by spaces or string edges.
func wordIndex(s, word string) int {
	for i := 0; ; {
		j := strings.Index(s[i:], word)
		if j < 0 {
			return -1
		}
		j += i
		startOK := j == 0 || s[j-1] == ' '
		endOK := j+len(word) == len(s) || s[j+len(word)] == ' '
		if startOK && endOK {
			return j
		}
		i = j + 1
	}
}
