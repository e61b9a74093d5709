package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jonathan/portfolio-explorer/internal/catalog"
	"github.com/jonathan/portfolio-explorer/internal/config"
	"github.com/jonathan/portfolio-explorer/internal/db"
	"github.com/jonathan/portfolio-explorer/internal/query"
	"github.com/jonathan/portfolio-explorer/internal/terminal"
)

func builtinEngine() *query.Engine {
	c := catalog.Builtin()
	return query.NewEngine(c, query.WithCommandHandler(terminal.NewCommands(c, nil, nil)))
}

func TestPrintQuery(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printQuery(&out, builtinEngine(), "{ about { name nickname } }", true))

	text := out.String()
	assert.Contains(t, text, `"name": "Fahad Hossain"`)
	assert.Contains(t, text, `"__metadata"`)
	assert.Contains(t, text, "QUERY SUMMARY")
	assert.Contains(t, text, "nickname: hidden")
}

func TestPrintQuery_ErrorSkipsSummary(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printQuery(&out, builtinEngine(), "about { name }", true))

	var payload map[string]any
	jsonPart := out.String()
	require.NoError(t, json.Unmarshal([]byte(jsonPart), &payload), jsonPart)
	assert.Contains(t, payload, "__error")
	assert.NotContains(t, jsonPart, "QUERY SUMMARY")
}

func TestPrintTerminalQuery(t *testing.T) {
	theme, _ := terminal.LookupTheme("minimal")
	var out bytes.Buffer
	require.NoError(t, printTerminalQuery(&out, builtinEngine(), theme, "email gmail"))

	assert.Contains(t, out.String(), "email: fahadshuvo33@gmail.com")
	assert.Contains(t, out.String(), "gmail: fahadshuvo33@gmail.com")
	assert.Contains(t, out.String(), "✓ 2 valid")
}

func TestPrintFields(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printFields(&out, catalog.Builtin()))

	assert.True(t, strings.HasPrefix(out.String(), "about[]\n"))
	assert.Contains(t, out.String(), "projects[]\n  bots, frontend, fullStack\n")
}

func TestPrintCategory(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printCategory(&out, catalog.Builtin(), "Skills"))

	var info terminal.CategoryInfo
	require.NoError(t, json.Unmarshal(out.Bytes(), &info))
	assert.Equal(t, catalog.Skills, info.Name)

	out.Reset()
	require.NoError(t, printCategory(&out, catalog.Builtin(), "freestyle"))
	assert.Contains(t, out.String(), `"displayName": "Freestyle"`)

	assert.Error(t, printCategory(&out, catalog.Builtin(), "hobbies"))
}

func TestPrintSuggestions(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printSuggestions(&out, catalog.Builtin(), "linked"))
	assert.Contains(t, out.String(), "linkedin")

	out.Reset()
	require.NoError(t, printSuggestions(&out, catalog.Builtin(), "zzzz"))
	assert.Equal(t, "No fields match \"zzzz\"\n", out.String())
}

func TestReportCheck(t *testing.T) {
	doc := catalog.BuiltinDocument()
	doc.Aliases = catalog.AliasTable{
		{Canonical: "name", Aliases: []string{"email"}},
	}
	c, err := catalog.New(doc)
	require.NoError(t, err)

	var out bytes.Buffer
	err = reportCheck(&out, c)
	assert.ErrorIs(t, err, errIntegrity)
	assert.Contains(t, out.String(), "CATALOG INTEGRITY")
}

func TestExportCatalog_RoundTrip(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, exportCatalog(&out, catalog.BuiltinDocument()))

	doc, err := catalog.Decode(out.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "Fahad Hossain", doc.About.Name)
}

func TestRenderResume(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, renderResume(&out, catalog.BuiltinDocument(), ""))
	assert.Contains(t, out.String(), `\section*{Experience}`)

	err := renderResume(&out, catalog.BuiltinDocument(), filepath.Join(t.TempDir(), "missing.tex"))
	assert.ErrorContains(t, err, "template file not found")
}

func TestLoadCatalog_Sources(t *testing.T) {
	log := zap.NewNop()

	src, err := loadCatalog(context.Background(), &config.Config{CatalogSource: config.SourceBuiltin}, log)
	require.NoError(t, err)
	assert.Nil(t, src.DB)
	src.Close()

	var buf bytes.Buffer
	doc := catalog.BuiltinDocument()
	doc.About.Name = "From File"
	require.NoError(t, exportCatalog(&buf, doc))
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	src, err = loadCatalog(context.Background(), &config.Config{CatalogSource: config.SourceFile, CatalogPath: path}, log)
	require.NoError(t, err)
	assert.Equal(t, "From File", src.Catalog.Locate("name", catalog.About).Value)

	_, err = loadCatalog(context.Background(), &config.Config{CatalogSource: config.SourceFile, CatalogPath: "/nonexistent.json"}, log)
	assert.Error(t, err)
}

func TestPrintVersions(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printVersions(&out, nil))
	assert.Equal(t, "No catalog versions stored\n", out.String())

	out.Reset()
	id := uuid.New()
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, printVersions(&out, []db.CatalogRecord{{ID: id, Version: "v2", CreatedAt: created}}))
	assert.Contains(t, out.String(), "VERSION")
	assert.Contains(t, out.String(), "v2")
	assert.Contains(t, out.String(), id.String())
	assert.Contains(t, out.String(), "2024-05-01T10:00:00Z")
}

func TestNewLogger(t *testing.T) {
	log, err := newLogger(zapcore.WarnLevel)
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
}
