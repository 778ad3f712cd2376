package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var out, errb bytes.Buffer
	code := run(args, strings.NewReader(stdin), &out, &errb)
	return code, out.String(), errb.String()
}

func TestRun_NoArgs(t *testing.T) {
	code, _, stderr := runCLI(t, "")
	require.Equal(t, 2, code)
	require.Contains(t, stderr, "Usage:")
}

func TestRun_Types(t *testing.T) {
	code, stdout, _ := runCLI(t, "", "types")
	require.Equal(t, 0, code)
	lines := strings.Fields(stdout)
	require.Contains(t, lines, "photo")
	require.Contains(t, lines, "photo_size")
	require.Contains(t, lines, "user_profile_photos")
}

func TestDecode_PhotoFromStdin(t *testing.T) {
	in := `[{"file_id":"a","width":10,"height":10},{"file_id":"b","width":100,"height":100,"file_size":2048}]`
	code, stdout, stderr := runCLI(t, in, "decode", "-type", "photo", "-v")
	require.Equal(t, 0, code, stderr)
	require.Contains(t, stderr, "file_id=b")

	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	require.Len(t, got, 2)
	require.Equal(t, "a", got[0]["file_id"])
	require.Equal(t, "b", got[1]["file_id"])
}

func TestDecode_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "loc.yaml")
	require.NoError(t, os.WriteFile(p, []byte("longitude: 12.5\nlatitude: 41.9\n"), 0o600))

	code, stdout, stderr := runCLI(t, "", "decode", "-type", "location", "-in", p)
	require.Equal(t, 0, code, stderr)
	require.Contains(t, stdout, `"latitude": 41.9`)
}

func TestDecode_ReportsIssues(t *testing.T) {
	code, _, stderr := runCLI(t, `{"width":"wide","height":1}`, "decode", "-type", "photo_size")
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "/file_id\tmissing_field")
	require.Contains(t, stderr, "/width\ttype_mismatch")
}

func TestDecode_StrictAndCoerceFlags(t *testing.T) {
	in := `{"file_id":"x","width":"4","height":2,"extra":true}`

	code, _, stderr := runCLI(t, in, "decode", "-type", "photo_size", "-coerce-strings", "-strict")
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "/extra\tunknown_key")

	code, stdout, stderr := runCLI(t, in, "decode", "-type", "photo_size", "-coerce-strings")
	require.Equal(t, 0, code, stderr)
	require.Contains(t, stdout, `"width": 4`)
	require.NotContains(t, stdout, "extra")
}

func TestDecode_UnknownType(t *testing.T) {
	code, _, stderr := runCLI(t, "{}", "decode", "-type", "nope")
	require.Equal(t, 2, code)
	require.Contains(t, stderr, `unknown type "nope"`)
}

func TestDecode_MalformedJSON(t *testing.T) {
	code, _, stderr := runCLI(t, `{"file_id":`, "decode", "-type", "file")
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "invalid_payload")
}

func TestSchema(t *testing.T) {
	code, stdout, _ := runCLI(t, "", "schema", "-type", "photo")
	require.Equal(t, 0, code)

	var s map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &s))
	require.Equal(t, "array", s["type"])
	require.EqualValues(t, 1, s["minItems"])
	items, ok := s["items"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, []any{"file_id", "width", "height"}, items["required"])
}

func TestDecode_StrictRejectsRepeatedKeys(t *testing.T) {
	code, _, stderr := runCLI(t, `{"file_id":"a","file_id":"b"}`, "decode", "-type", "file", "-strict")
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "/file_id\tduplicate_key")
}
