package cast

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader(Header{Width: 77, Height: 20}))
	assert.Equal(t, `{"version":2,"width":77,"height":20}`+"\n", buf.String())
}

func TestWriterRoundsDisplayTime(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	// accumulated step arithmetic leaves residue the display must hide
	require.NoError(t, w.WriteEvent(Event{Time: 0.4000000000000001, Type: Output, Data: "$ "}))
	assert.Equal(t, `{"time":0.4,"event_type":"o","event_data":"$ "}`+"\n", buf.String())
}

func TestWriterEscapesControlBytes(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteEvent(Event{Time: 1, Type: Output, Data: "\x1b[1m"}))
	require.NoError(t, w.WriteEvent(Event{Time: 1.5, Type: Output, Data: "\r\n"}))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `{"time":1,"event_type":"o","event_data":"\u001b[1m"}`, lines[0])
	assert.Equal(t, `{"time":1.5,"event_type":"o","event_data":"\r\n"}`, lines[1])
}

func TestWriterKeepsShellSyntaxVerbatim(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteEvent(Event{Time: 2, Type: Output, Data: "a < b && c > d"}))
	assert.Contains(t, buf.String(), `"a < b && c > d"`)
}

func TestReadRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader(Header{Width: 80, Height: 24}))
	events := []Event{
		{Time: 0.4, Type: Output, Data: "$ "},
		{Time: 0.8, Type: Output, Data: "l"},
		{Time: 1.2, Type: Output, Data: "\r\n"},
	}
	for _, e := range events {
		require.NoError(t, w.WriteEvent(e))
	}

	h, got, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, Header{Version: 2, Width: 80, Height: 24}, h)
	assert.Equal(t, events, got)
}

func TestReadRejectsGarbage(t *testing.T) {
	_, _, err := Read(strings.NewReader(""))
	assert.True(t, errors.Is(err, ErrBadRecording))

	_, _, err = Read(strings.NewReader(`{"version":9,"width":1,"height":1}`))
	assert.True(t, errors.Is(err, ErrBadRecording))

	_, _, err = Read(strings.NewReader("{\"version\":2,\"width\":1,\"height\":1}\nnot json\n"))
	assert.True(t, errors.Is(err, ErrBadRecording))
}

func TestCollectorKeepsOrder(t *testing.T) {
	c := &Collector{}
	for i := 0; i < 5; i++ {
		require.NoError(t, c.WriteEvent(Event{Time: float64(i), Type: Output, Data: "x"}))
	}
	require.Len(t, c.Events, 5)
	for i, e := range c.Events {
		assert.Equal(t, float64(i), e.Time)
	}
}
