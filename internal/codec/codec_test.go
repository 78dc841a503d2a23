package codec

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/friendgraph/internal/model"
)

func sampleSnapshot() model.Snapshot {
	return model.Snapshot{
		HighWater: 7,
		Users: []model.SnapshotUser{
			{ID: 1, Name: "Alice", Interests: []string{"go", "chess"}},
			{ID: 2, Name: `Bob|the\builder`, Interests: []string{"a,b", "line\nbreak"}},
			{ID: 5, Name: "Carol"},
		},
		Edges: []model.Edge{{A: 1, B: 2}, {A: 2, B: 5}},
	}
}

func TestEncode(t *testing.T) {
	data, err := Marshal(sampleSnapshot())
	require.NoError(t, err)

	want := "FRIENDGRAPH 1\n" +
		"NEXT 7\n" +
		"USERS 3\n" +
		"1|Alice|go,chess\n" +
		`2|Bob\|the\\builder|a\,b,line\nbreak` + "\n" +
		"5|Carol|\n" +
		"EDGES 2\n" +
		"1 2\n" +
		"2 5\n"
	assert.Equal(t, want, string(data))
}

func TestRoundTrip(t *testing.T) {
	s := sampleSnapshot()
	data, err := Marshal(s)
	require.NoError(t, err)

	got, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestDecode_LegacyFormat(t *testing.T) {
	in := "USERS 2\n" +
		"1|Alice\n" +
		`2|Pipe\|Name` + "\n" +
		"EDGES\n" +
		"2 1\n" +
		"\n"

	got, err := Decode(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, model.Snapshot{
		Users: []model.SnapshotUser{{ID: 1, Name: "Alice"}, {ID: 2, Name: "Pipe|Name"}},
		Edges: []model.Edge{{A: 1, B: 2}},
	}, got)
}

func TestDecode_CRLF(t *testing.T) {
	in := "USERS 1\r\n1|Alice|go\r\nEDGES 0\r\n"
	got, err := Decode(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"go"}, got.Users[0].Interests)
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "empty", in: ""},
		{name: "bad version", in: "FRIENDGRAPH 2\nUSERS 0\nEDGES 0\n"},
		{name: "missing users header", in: "PEOPLE 1\n"},
		{name: "bad next", in: "NEXT x\nUSERS 0\nEDGES\n"},
		{name: "short user list", in: "USERS 2\n1|a|\n"},
		{name: "bad user id", in: "USERS 1\nx|a|\nEDGES\n"},
		{name: "zero user id", in: "USERS 1\n0|a|\nEDGES\n"},
		{name: "empty name", in: "USERS 1\n1| |\nEDGES\n"},
		{name: "duplicate user", in: "USERS 2\n1|a|\n1|b|\nEDGES\n"},
		{name: "missing edges header", in: "USERS 1\n1|a|\n"},
		{name: "unknown edge endpoint", in: "USERS 1\n1|a|\nEDGES\n1 2\n"},
		{name: "self loop", in: "USERS 1\n1|a|\nEDGES\n1 1\n"},
		{name: "garbage edge", in: "USERS 2\n1|a|\n2|b|\nEDGES\n1 2 3\n"},
		{name: "edge count mismatch", in: "USERS 2\n1|a|\n2|b|\nEDGES 2\n1 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.in))
			require.Error(t, err)
			assert.True(t, errors.Is(err, model.ErrIO), "got %v", err)
		})
	}
}

func TestEncodeDOT(t *testing.T) {
	var buf bytes.Buffer
	s := model.Snapshot{
		Users: []model.SnapshotUser{{ID: 1, Name: `Al "Ace"`}, {ID: 2, Name: "Bo"}},
		Edges: []model.Edge{{A: 1, B: 2}},
	}
	require.NoError(t, EncodeDOT(&buf, s))
	assert.Equal(t, "graph SocialNetwork {\n"+
		"  1 [label=\"Al \\\"Ace\\\"\"];\n"+
		"  2 [label=\"Bo\"];\n"+
		"  1 -- 2;\n"+
		"}\n", buf.String())
}
