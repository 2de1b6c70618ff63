package prefabs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

const sceneSchemaFile = "scene.schema.json"

var (
	sceneSchemaOnce sync.Once
	sceneSchema     *jsonschema.Schema
	sceneSchemaErr  error
)

func loadSceneSchema() (*jsonschema.Schema, error) {
	sceneSchemaOnce.Do(func() {
		data, err := PrefabsFS.ReadFile(sceneSchemaFile)
		if err != nil {
			sceneSchemaErr = fmt.Errorf("prefabs: read %s: %w", sceneSchemaFile, err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(sceneSchemaFile, bytes.NewReader(data)); err != nil {
			sceneSchemaErr = fmt.Errorf("prefabs: add %s: %w", sceneSchemaFile, err)
			return
		}
		sceneSchema, sceneSchemaErr = c.Compile(sceneSchemaFile)
	})
	return sceneSchema, sceneSchemaErr
}

// ValidateScene checks a YAML scene document against the embedded schema.
// The document goes through JSON so the validator sees plain JSON values.
func ValidateScene(data []byte) error {
	schema, err := loadSceneSchema()
	if err != nil {
		return err
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}
	if doc == nil {
		return fmt.Errorf("%w: empty document", ErrInvalidScene)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}
	return nil
}
