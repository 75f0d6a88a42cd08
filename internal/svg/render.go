package svg

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/san-kum/scenacast/internal/engine"
	"github.com/san-kum/scenacast/internal/theme"
)

// The canvas is decorative: fixed pixel dimensions regardless of the
// session's width and height.
const (
	canvasWidth  = 824
	canvasHeight = 623
	maskID       = "bigterminal-mask"
	rowAdvance   = "1.2em"

	prolog = "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"
)

// Preview builds the SVG document for the accumulated preview lines: one
// visual row per line, stacked top to bottom and clipped to the canvas by
// a masking region.
func Preview(lines []engine.PreviewLine, th *theme.Theme) *Node {
	viewBox := fmt.Sprintf("0 0 %d %d", canvasWidth, canvasHeight)

	mask := Element("mask").Set("id", maskID).Add(
		Element("rect").
			Set("x", "0").
			Set("y", "0").
			Set("width", itoa(canvasWidth)).
			Set("height", itoa(canvasHeight)).
			Set("fill", "#fff"))

	background := Element("rect").
		Set("class", "background").
		Set("y", "0").
		Set("x", "0").
		Set("width", itoa(canvasWidth)).
		Set("height", itoa(canvasHeight))

	text := Element("text").
		Set("mask", "url(#"+maskID+")").
		Set("transform", "translate(0 0)").
		Set("y", "0").
		Set("x", "0").
		Set("xml:space", "preserve")

	for _, line := range lines {
		text.Add(row(line))
	}

	doc := Element("svg").
		Set("xmlns:dc", "http://purl.org/dc/elements/1.1/").
		Set("xmlns:cc", "http://creativecommons.org/ns#").
		Set("xmlns:rdf", "http://www.w3.org/1999/02/22-rdf-syntax-ns#").
		Set("xmlns:svg", "http://www.w3.org/2000/svg").
		Set("xmlns", "http://www.w3.org/2000/svg").
		Set("version", "1.1").
		Set("width", "100%").
		Set("viewBox", viewBox).
		Set("preserveAspectRatio", "xMidYMid meet")

	if th != nil {
		doc.Add(Element("style").Add(Text(th.CSS())))
	}
	return doc.Add(mask, background, text)
}

// row renders one preview line. An empty segment stands in for the bare
// prompt and renders as literal "$ ". A non-empty segment is split at the
// first mark character: the prefix renders unstyled, the suffix bright.
func row(line engine.PreviewLine) *Node {
	tspan := Element("tspan").Set("x", "0").Set("dy", rowAdvance)

	for _, seg := range line {
		if seg == "" {
			tspan.Add(Text("$ "))
			continue
		}
		prefix, suffix, marked := strings.Cut(seg, string(engine.Mark))
		if !marked {
			tspan.Add(Text(seg))
			continue
		}
		tspan.Add(
			Text(prefix),
			Element("tspan").Set("class", "fg-15").Add(Text(suffix)))
	}
	return tspan
}

// WritePreview writes the document to path. The target must not already
// exist; an existing file is never overwritten.
func WritePreview(path string, lines []engine.PreviewLine, th *theme.Theme) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}

	if _, err := f.WriteString(prolog + Preview(lines, th).String() + "\n"); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
