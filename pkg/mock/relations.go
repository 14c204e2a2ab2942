package mock

import (
	"math/rand"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/migudevelop/openapi-mock-generator/internal/types"
)

// idField is the field borrowed from a related record.
const idField = "id"

var nonRelationChars = regexp.MustCompile(`[^a-zA-Z0-9 ]`)

// Rand is the randomness source used to pick related records.
// *math/rand.Rand satisfies it.
type Rand = types.Intn

// Resolver rewrites foreign-key-looking fields to ids of generated records.
type Resolver struct {
	rnd Rand
}

// NewResolver creates a Resolver. A nil rnd uses a time-seeded source.
func NewResolver(rnd Rand) *Resolver {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Resolver{rnd: rnd}
}

// Resolve mutates and returns record.
//
// A string field named <entity>id (any case, any separators) whose entity matches
// a schema name case-insensitively gets the id of a random record from that schema's
// cache entry. The "id" field itself, non-string values and unmatched names are left
// as they are. No field is added or removed.
func (r *Resolver) Resolve(record map[string]any, schemas *Schemas, cache *Cache) map[string]any {
	if schemas == nil || cache == nil {
		return record
	}

	// sorted so an injected Rand gives the same picks on every run
	keys := make([]string, 0, len(record))
	for key := range record {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if _, ok := record[key].(string); !ok {
			continue
		}

		target := findRelatedSchema(key, schemas)
		if target == "" {
			continue
		}

		related, ok := cache.Get(target)
		if !ok || len(related) == 0 {
			continue
		}

		record[key] = recordID(related[r.rnd.Intn(len(related))])
	}

	return record
}

// RelationName derives the entity name a field refers to, or "" if the field is not a relation.
// The first "id" occurrence is removed, not necessarily the suffix: "validId" yields "valid".
func RelationName(key string) string {
	lower := strings.ToLower(key)
	if lower == idField || !strings.HasSuffix(lower, idField) {
		return ""
	}

	name := strings.TrimSpace(lower)
	name = strings.Replace(name, idField, "", 1)
	return nonRelationChars.ReplaceAllString(name, "")
}

// findRelatedSchema returns the first schema name matching the relation of key.
func findRelatedSchema(key string, schemas *Schemas) string {
	name := RelationName(key)
	if name == "" {
		return ""
	}

	for _, schemaName := range schemas.keys {
		if strings.ToLower(schemaName) == name {
			return schemaName
		}
	}
	return ""
}

func recordID(record any) any {
	obj, ok := record.(map[string]any)
	if !ok {
		return nil
	}
	return obj[idField]
}
