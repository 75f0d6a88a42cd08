package svg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	assert.Equal(t, "a &lt;b&gt; &amp; &quot;c&quot; &#39;d&#39;", Escape(`a <b> & "c" 'd'`))
	assert.Equal(t, "plain", Escape("plain"))
}

func TestBuilderChaining(t *testing.T) {
	n := Element("tspan").Set("x", "0").Set("dy", "1.2em").Add(Text("hi"))
	assert.Equal(t, `<tspan x="0" dy="1.2em">hi</tspan>`, n.String())
}

func TestBuilderOverwritesAttr(t *testing.T) {
	n := Element("rect").Set("x", "0").Set("x", "5")
	assert.Equal(t, `<rect x="5"/>`, n.String())
}

func TestBuilderEscapesEverywhere(t *testing.T) {
	n := Element("text").Set("title", `a"b`).Add(Text("<script>"))
	out := n.String()
	assert.NotContains(t, out, `a"b"`)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestSelfClosingWhenEmpty(t *testing.T) {
	assert.Equal(t, `<rect fill="#fff"/>`, Element("rect").Set("fill", "#fff").String())
}
