package csvkit

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeCell(t *testing.T) {
	expires := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{name: "plain string", value: "hello", want: `"hello"`},
		{name: "embedded quote and comma", value: `She said "hi", ok`, want: `"She said ""hi"", ok"`},
		{name: "nil", value: nil, want: `""`},
		{name: "nil string pointer", value: (*string)(nil), want: `""`},
		{name: "bool true", value: true, want: `"Yes"`},
		{name: "bool false", value: false, want: `"No"`},
		{name: "int", value: 42, want: `"42"`},
		{name: "float drops trailing zeros", value: 250.00, want: `"250"`},
		{name: "float keeps cents", value: 2.50, want: `"2.5"`},
		{name: "time renders as date", value: expires, want: `"2026-03-15"`},
		{name: "nil time pointer", value: (*time.Time)(nil), want: `""`},
		{name: "embedded newline", value: "line1\nline2", want: "\"line1\nline2\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeCell(tt.value))
		})
	}
}

// Escaped output must survive a standard CSV parse and come back exactly.
func TestEscapeCellRoundTrip(t *testing.T) {
	inputs := []string{
		`She said "hi", ok`,
		"plain",
		"",
		"comma, separated, cells",
		`""double""`,
		"multi\nline\nvalue",
		`trailing quote"`,
		`"leading quote`,
	}

	// Seeded sweep over random strings built from hostile characters
	rng := rand.New(rand.NewSource(7))
	alphabet := []rune{'a', 'b', '"', ',', '\n', ' ', 'z', '\''}
	for i := 0; i < 200; i++ {
		n := rng.Intn(20)
		var sb strings.Builder
		for j := 0; j < n; j++ {
			sb.WriteRune(alphabet[rng.Intn(len(alphabet))])
		}
		inputs = append(inputs, sb.String())
	}

	for _, input := range inputs {
		doc := Document([]string{"value"}, [][]interface{}{{input}})

		r := csv.NewReader(strings.NewReader(doc))
		records, err := r.ReadAll()
		require.NoError(t, err, "input %q", input)
		require.Len(t, records, 2, "input %q", input)
		assert.Equal(t, input, records[1][0], "round trip mismatch for %q", input)
	}
}

func TestDocument(t *testing.T) {
	doc := Document(
		[]string{"Student Number", "Name", "Hours"},
		[][]interface{}{
			{"2026-0042", "Maya Okafor", 1200.0},
			{"2026-0043", nil, 0.0},
		},
	)

	want := `"Student Number","Name","Hours"` + "\n" +
		`"2026-0042","Maya Okafor","1200"` + "\n" +
		`"2026-0043","","0"`
	assert.Equal(t, want, doc)
}

func TestFileName(t *testing.T) {
	date := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "documents-2026-0042-2026-09-01.csv", FileName("documents", "2026-0042", date))
	assert.Equal(t, "students-cohort-2026-09-01.csv", FileName("students", "cohort", date))
}

func TestBundle(t *testing.T) {
	files := []File{
		{Name: "a.csv", Content: `"x"`},
		{Name: "b.csv", Content: `"y","z"`},
	}

	data, err := Bundle(files)
	require.NoError(t, err)

	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, r.File, 2)

	got := map[string]string{}
	for _, f := range r.File {
		rc, err := f.Open()
		require.NoError(t, err)
		var buf bytes.Buffer
		_, err = buf.ReadFrom(rc)
		require.NoError(t, err)
		rc.Close()
		got[f.Name] = buf.String()
	}

	assert.Equal(t, `"x"`, got["a.csv"])
	assert.Equal(t, `"y","z"`, got["b.csv"])
}
