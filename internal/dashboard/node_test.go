package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeEscapesTextAndAttributes(t *testing.T) {
	n := El("div", "card", Node{Tag: "p", Text: `<b>"hi"</b>`}).With("title", `a"b`).With("data-x", "1")
	assert.Equal(t, `<div class="card" data-x="1" title="a&#34;b"><p>&lt;b&gt;&#34;hi&#34;&lt;/b&gt;</p></div>`, string(n.HTML()))
	assert.Equal(t, `<b>"hi"</b>`, n.TextContent())
}

func TestNodeWithCopiesAttributes(t *testing.T) {
	base := El("span", "").With("id", "a")
	derived := base.With("id", "b")
	assert.Equal(t, "a", base.Attrs["id"])
	assert.Equal(t, "b", derived.Attrs["id"])
}

func TestTrustedMarkupIsNotEscaped(t *testing.T) {
	n := El("div", "", Trusted("<svg></svg>"))
	assert.Equal(t, "<div><svg></svg></div>", string(n.HTML()))
	assert.True(t, Node{}.IsZero())
	assert.False(t, Text("x").IsZero())
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "97.69", fixed(97.6949, 2))
	assert.Equal(t, "16.8", fixed(16.79, 1))
	assert.Equal(t, "19,735", grouped(19735))
	assert.Equal(t, "999", grouped(999))
	assert.Equal(t, "89.56%", percent(0.8956))
	assert.Equal(t, []int{3, 4}, tail([]int{1, 2, 3, 4}, 2))
	assert.Equal(t, []int{1, 2}, tail([]int{1, 2}, 30))
}
