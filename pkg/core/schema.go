package core

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// collectionSchema is the minimal shape postdoc relies on: a collection
// envelope with named info and an item array. Collections are produced
// by the Postman API, so violations indicate an API change rather than
// user error and are surfaced as warnings only.
const collectionSchema = `{
	"type": "object",
	"required": ["collection"],
	"properties": {
		"collection": {
			"type": "object",
			"required": ["info", "item"],
			"properties": {
				"info": {
					"type": "object",
					"required": ["name"],
					"properties": {
						"name": {"type": "string"}
					}
				},
				"item": {"type": "array"}
			}
		}
	}
}`

// ValidateCollection checks a fetched collection document against the
// minimal schema and returns one message per violation. An error is
// returned only when the document cannot be validated at all.
func ValidateCollection(raw []byte) ([]string, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(collectionSchema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to validate collection document: %w", err)
	}

	if result.Valid() {
		return nil, nil
	}
	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return problems, nil
}
