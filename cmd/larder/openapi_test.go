package main

import (
	"path/filepath"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOpenAPIDocument validates the published API document, the same
// file the swagger middleware serves at /docs/api/v1.
func TestOpenAPIDocument(t *testing.T) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile(filepath.Join("..", "..", "public", "docs", "v1", "openapi.yml"))
	require.NoError(t, err)
	require.NoError(t, doc.Validate(loader.Context))

	for _, path := range []string{
		"/households",
		"/households/join",
		"/household/rotate-invite",
		"/recipes",
		"/recipes/{slug}",
		"/plan",
		"/plan/entries",
		"/plan/entries/{id}",
		"/plan/entries/{id}/move",
		"/plan/entries/{id}/notes",
		"/plan/cells/reorder",
		"/shopping",
		"/shopping/pantry",
		"/shopping/clear-checks",
		"/shopping/export",
		"/shopping/share",
	} {
		assert.NotNil(t, doc.Paths.Find(path), "path %s missing from the API document", path)
	}
}
