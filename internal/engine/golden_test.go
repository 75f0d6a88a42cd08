package engine_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/scenacast/internal/cast"
	"github.com/san-kum/scenacast/internal/engine"
	"github.com/san-kum/scenacast/internal/scenario"
)

// demoScript exercises every line role once.
const demoScript = `#! {"width": 80, "height": 24}
# setup
$ echo hello
(nix-shell) $ make #build

plain output
--
#timeout: 1.5
$ ok
`

// TestRenderGolden compares a complete rendered recording byte for byte.
// Regenerate with: go test ./internal/engine -update
func TestRenderGolden(t *testing.T) {
	header, err := scenario.ParseHeader(strings.SplitN(demoScript, "\n", 2)[0])
	require.NoError(t, err)

	var buf bytes.Buffer
	w := cast.NewWriter(&buf)
	require.NoError(t, w.WriteHeader(cast.Header{Width: header.Width, Height: header.Height}))

	res, err := engine.New(header, w).Run(strings.NewReader(demoScript))
	require.NoError(t, err)
	require.Equal(t, 33, res.Events)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "demo", buf.Bytes())
}
