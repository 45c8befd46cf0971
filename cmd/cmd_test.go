package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"hotel-site/pkg/catalog"
	"hotel-site/pkg/config"
	"hotel-site/pkg/gallery"
	"hotel-site/pkg/services"
)

func testService() *services.Service {
	return services.NewService(&config.Config{CacheTTL: time.Minute}, log.New(io.Discard), catalog.Default())
}

func TestListCategories(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, listCategories(context.Background(), &buf, testService()))

	out := buf.String()
	assert.Contains(t, out, "Gallery Categories:")
	assert.Contains(t, out, "All\n  Items: 12\n")
	assert.Contains(t, out, "Dining\n  Items: 3\n")
	assert.Contains(t, out, "Total: 5 categories")
}

func TestListGallery(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, listGallery(context.Background(), &buf, testService(), "Terrace"))

	out := buf.String()
	assert.Contains(t, out, "1. Courtyard Pool\n")
	assert.Contains(t, out, "3. Dune Deck\n")
	assert.Contains(t, out, "Total: 3 items")

	err := listGallery(context.Background(), &buf, testService(), "Helipad")
	assert.ErrorIs(t, err, gallery.ErrUnknownCategory)
}

func TestShowItem(t *testing.T) {
	var buf bytes.Buffer
	steps := []string{"next", "ArrowLeft", "Escape", "next"}
	require.NoError(t, showItem(context.Background(), &buf, testService(), "Bedroom", "Reed Cabin", steps))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 5)
	assert.Contains(t, string(lines[1]), "3 of 3  Reed Cabin")
	assert.Contains(t, string(lines[2]), "1 of 3  Salt Room")
	assert.Contains(t, string(lines[3]), "3 of 3  Reed Cabin")
	assert.Contains(t, string(lines[4]), "closed")
}

func TestShowItem_UnknownStep(t *testing.T) {
	var buf bytes.Buffer
	err := showItem(context.Background(), &buf, testService(), "Bedroom", "Reed Cabin", []string{"Enter"})
	assert.ErrorContains(t, err, `unknown step "Enter"`)
}

func TestExport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, exportSite(context.Background(), &buf, testService(), "json"))

	var fromJSON exportData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fromJSON))
	assert.Equal(t, 12, fromJSON.Counts["All"])
	assert.Len(t, fromJSON.Gallery, 12)

	buf.Reset()
	require.NoError(t, exportSite(context.Background(), &buf, testService(), "yaml"))

	var fromYAML exportData
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))
	assert.Equal(t, fromJSON.Counts, fromYAML.Counts)
	assert.Equal(t, "Maison Sel", fromYAML.Brand.Name)

	assert.Error(t, exportSite(context.Background(), &buf, testService(), "csv"))
}
