package openapi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const petstoreYAML = `openapi: 3.0.0
info:
  title: Petstore
  version: 1.0.0
paths: {}
components:
  schemas:
    Pet:
      type: object
      properties:
        id:
          type: string
        ownerId:
          type: string
    Owner:
      type: object
      properties:
        id:
          type: string
        name:
          type: string
          x-faker: person.name
    Address:
      type: object
      properties:
        street:
          type: string
`

const ordersJSON = `{
  "openapi": "3.0.0",
  "info": {"title": "Orders", "version": "1.0.0"},
  "paths": {},
  "components": {
    "schemas": {
      "Zebra": {"type": "string"},
      "Order": {
        "type": "object",
        "properties": {
          "id": {"type": "string", "format": "uuid"},
          "pet": {"$ref": "#/components/schemas/Pet"}
        }
      },
      "Pet": {"type": "object", "properties": {"id": {"type": "integer"}}}
    }
  }
}`

const noSchemasYAML = `openapi: 3.0.0
info:
  title: Empty
  version: 1.0.0
paths: {}
`

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}
