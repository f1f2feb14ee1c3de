package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/securezone/export"
	"github.com/osuushi/securezone/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtures = "../../internal/layout/fixtures"

func TestRun(t *testing.T) {
	dir := t.TempDir()
	args := runArgs{
		input:      filepath.Join(fixtures, "session.txt"),
		exportPath: filepath.Join(dir, "site.json"),
		pngPath:    filepath.Join(dir, "site.png"),
	}

	var out bytes.Buffer
	require.NoError(t, run(config.Default(), args, nil, &out, aurora.NewAurora(false)))

	output := out.String()
	assert.Contains(t, output, "No sensor within 10 of (12, 12)")
	assert.Contains(t, output, "Removed sensor #7(10, 10)")
	assert.Contains(t, output, "Sensors: 7  Beams: 21  Intersections: 27")
	assert.Contains(t, output, "Secure zone: 9 vertices, area 69796.12")

	file, err := os.Open(args.exportPath)
	require.NoError(t, err)
	defer file.Close()
	doc, err := export.Decode(file)
	require.NoError(t, err)
	assert.Equal(t, 7, doc.Statistics.SensorCount)
	assert.Len(t, doc.SecurePolygon, 9)

	assert.FileExists(t, args.pngPath)

	out.Reset()
	require.NoError(t, validate(args.exportPath, &out, aurora.NewAurora(false)))
	assert.Contains(t, out.String(), "is a valid export")
}

func TestRunStdinWithoutZone(t *testing.T) {
	var out bytes.Buffer
	stdin := strings.NewReader("150 100\n650 150\n200 500\n600 450\n")
	require.NoError(t, run(config.Default(), runArgs{input: "-"}, stdin, &out, aurora.NewAurora(false)))
	assert.Contains(t, out.String(), "Sensors: 4  Beams: 6  Intersections: 1")
	assert.Contains(t, out.String(), "No secure zone")
}

func TestRunHugeCoordinates(t *testing.T) {
	var out bytes.Buffer
	stdin := strings.NewReader("0 0\n1e160 1e160\n0 1e160\n1e160 0\n")
	require.NoError(t, run(config.Default(), runArgs{input: "-"}, stdin, &out, aurora.NewAurora(false)))
	assert.Contains(t, out.String(), "Sensors: 4  Beams: 6")
}

func TestRunBadInput(t *testing.T) {
	var out bytes.Buffer
	err := run(config.Default(), runArgs{input: "-"}, strings.NewReader("add 1\n"), &out, aurora.NewAurora(false))
	assert.Error(t, err)
}

func TestValidateRejects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"sensors": []}`), 0o644))
	var out bytes.Buffer
	assert.Error(t, validate(path, &out, aurora.NewAurora(false)))
}
