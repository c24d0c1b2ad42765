package content

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// ErrModuleNotFound is returned when a module id is not in the catalog.
var ErrModuleNotFound = errors.New("module not found")

//go:embed modules.yaml
var modulesYAML []byte

//go:embed catalog.schema.json
var catalogSchema []byte

const schemaURL = "schema://cyberquest/catalog.json"

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog embedded in the binary.
// It panics if the embedded content is invalid, which is a build defect.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(modulesYAML)
		if err != nil {
			panic(fmt.Sprintf("content: embedded catalog is invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Parse decodes a YAML catalog, validates it against the catalog schema
// and checks cross-field rules the schema cannot express.
func Parse(data []byte) (*Catalog, error) {
	if err := validateSchema(data); err != nil {
		return nil, err
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// validateSchema checks raw YAML against the embedded JSON schema.
func validateSchema(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse catalog yaml: %w", err)
	}

	// Round-trip through JSON so numbers and maps have the shapes
	// the validator expects.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("convert catalog to json: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("reparse catalog json: %w", err)
	}

	sch, err := compiledSchema()
	if err != nil {
		return err
	}
	if err := sch.Validate(inst); err != nil {
		return fmt.Errorf("catalog schema validation failed: %w", err)
	}
	return nil
}

var (
	schemaOnce     sync.Once
	schemaCompiled *jsonschema.Schema
	schemaErr      error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		def, err := jsonschema.UnmarshalJSON(bytes.NewReader(catalogSchema))
		if err != nil {
			schemaErr = fmt.Errorf("parse catalog schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		schemaCompiled, schemaErr = c.Compile(schemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile catalog schema: %w", schemaErr)
		}
	})
	return schemaCompiled, schemaErr
}

// validate enforces rules beyond the schema: unique ids, answer indices
// in range and a reachable flag for every terminal challenge.
func (c *Catalog) validate() error {
	seen := make(map[string]bool, len(c.Modules))
	for i := range c.Modules {
		m := &c.Modules[i]
		if seen[m.ID] {
			return fmt.Errorf("duplicate module id %q", m.ID)
		}
		seen[m.ID] = true

		if err := validateQuestions(m.ID, m.Questions); err != nil {
			return err
		}
		if m.Terminal != nil {
			if err := m.Terminal.validate(); err != nil {
				return fmt.Errorf("module %q: %w", m.ID, err)
			}
		}
	}
	return validateQuestions("final quiz", c.FinalQuiz)
}

func validateQuestions(owner string, qs []Question) error {
	ids := make(map[string]bool, len(qs))
	for _, q := range qs {
		if ids[q.ID] {
			return fmt.Errorf("%s: duplicate question id %q", owner, q.ID)
		}
		ids[q.ID] = true
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return fmt.Errorf("%s: question %q: correct answer %d out of range [0,%d)",
				owner, q.ID, q.CorrectAnswer, len(q.Options))
		}
	}
	return nil
}

func (t *TerminalChallenge) validate() error {
	for _, e := range t.Commands {
		if strings.Contains(e.Response, t.Flag) {
			return nil
		}
	}
	return fmt.Errorf("flag %q does not appear in any command response", t.Flag)
}

// Module returns the module with the given id.
func (c *Catalog) Module(id string) (*Module, error) {
	i := c.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrModuleNotFound, id)
	}
	return &c.Modules[i], nil
}

// NextModule returns the module after id in display order,
// or nil if id is the last module or unknown.
func (c *Catalog) NextModule(id string) *Module {
	i := c.indexOf(id)
	if i < 0 || i+1 >= len(c.Modules) {
		return nil
	}
	return &c.Modules[i+1]
}

// ModuleIDs returns every module id in display order.
func (c *Catalog) ModuleIDs() []string {
	ids := make([]string, len(c.Modules))
	for i, m := range c.Modules {
		ids[i] = m.ID
	}
	return ids
}

func (c *Catalog) indexOf(id string) int {
	for i := range c.Modules {
		if c.Modules[i].ID == id {
			return i
		}
	}
	return -1
}
