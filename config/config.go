// Package config is the YAML job description read by texcompgo.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/ispc-texcomp/go-texcomp/container"
	"github.com/ispc-texcomp/go-texcomp/texcomp"
)

type Impl string

const (
	ImplDefault Impl = ""
	ImplGo      Impl = "go"
	ImplNative  Impl = "native"
)

func (i Impl) IsValid() error {
	switch i {
	case ImplDefault, ImplGo, ImplNative:
		return nil
	default:
		return fmt.Errorf("invalid impl (%s): must be '%s' or '%s'", i, ImplGo, ImplNative)
	}
}

// Config describes one compression job.
type Config struct {
	// Format is the block format, e.g. "bc7" or "astc".
	Format string `yaml:"format" json:"format" jsonschema:"required,enum=bc1,enum=bc3,enum=bc4,enum=bc5,enum=bc6h,enum=bc7,enum=etc1,enum=astc"`
	// Profile names a preset of the format's settings family.
	Profile string `yaml:"profile" json:"profile,omitempty"`
	// Fields override individual settings by their C field names.
	Fields texcomp.Fields `yaml:"fields" json:"fields,omitempty"`
	// Container is the output file format. Empty selects the format's default.
	Container string `yaml:"container" json:"container,omitempty" jsonschema:"enum=raw,enum=dds,enum=astc,enum=pkm"`
	// PadToBlocks grows images to a whole number of blocks by replicating
	// their last row and column. Default: true
	PadToBlocks *bool `yaml:"padToBlocks" json:"padToBlocks,omitempty"`
	// Zstd wraps the output in a zstd frame.
	Zstd bool `yaml:"zstd" json:"zstd,omitempty"`
	// Impl selects the encoder backend.
	Impl Impl `yaml:"impl" json:"impl,omitempty" jsonschema:"enum=go,enum=native"`
}

func (c *Config) IsValid() error {
	f, err := c.TextureFormat()
	if err != nil {
		return fmt.Errorf("invalid 'format' field:\n%w", err)
	}

	if c.Profile != "" && !slices.Contains(texcomp.Profiles(f), c.Profile) {
		return fmt.Errorf("invalid 'profile' field: %q is not a %s profile (%s)",
			c.Profile, f, strings.Join(texcomp.Profiles(f), ", "))
	}

	if _, err := c.Settings(); err != nil {
		return fmt.Errorf("invalid 'fields' field:\n%w", err)
	}

	k, err := c.ContainerKind()
	if err != nil {
		return fmt.Errorf("invalid 'container' field:\n%w", err)
	}
	if !k.Supports(f) {
		return fmt.Errorf("invalid 'container' field: %s cannot hold %s", k, f)
	}

	if err := c.Impl.IsValid(); err != nil {
		return fmt.Errorf("invalid 'impl' field:\n%w", err)
	}
	return nil
}

// TextureFormat parses Format.
func (c *Config) TextureFormat() (texcomp.Format, error) {
	return texcomp.ParseFormat(c.Format)
}

// Settings builds the settings record for the format: nil for BC1-BC5,
// otherwise the profile with Fields applied over it.
func (c *Config) Settings() (any, error) {
	f, err := c.TextureFormat()
	if err != nil {
		return nil, err
	}
	return texcomp.NewSettings(f, c.Fields, c.Profile)
}

// ContainerKind returns the output container, defaulting by format.
func (c *Config) ContainerKind() (container.Kind, error) {
	if c.Container == "" {
		f, err := c.TextureFormat()
		if err != nil {
			return container.KindRaw, err
		}
		return container.DefaultKind(f), nil
	}
	return container.ParseKind(c.Container)
}

// GetPadToBlocks returns PadToBlocks, defaulting to true.
func (c *Config) GetPadToBlocks() bool {
	if c.PadToBlocks == nil {
		return true
	}
	return *c.PadToBlocks
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	c, err := UnmarshalFile(path)
	if err != nil {
		return nil, err
	}
	if err := c.IsValid(); err != nil {
		return nil, fmt.Errorf("%s:\n%w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a YAML config.
func Parse(data []byte) (*Config, error) {
	c, err := Unmarshal(data)
	if err != nil {
		return nil, err
	}
	if err := c.IsValid(); err != nil {
		return nil, err
	}
	return c, nil
}

// UnmarshalFile decodes a YAML config file without validating it.
func UnmarshalFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config (%s):\n%w", path, err)
	}
	return c, nil
}

// Unmarshal decodes a YAML config without validating it. Unknown keys are
// rejected.
func Unmarshal(data []byte) (*Config, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))

	// Ensure unknown fields result in an error.
	decoder.KnownFields(true)

	var c Config
	if err := decoder.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &c, nil
}

// Schema returns the JSON schema of Config.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
	}
	return reflector.Reflect(&Config{})
}

// SchemaJSON returns the indented JSON encoding of Schema.
func SchemaJSON() ([]byte, error) {
	schemaJSON, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return schemaJSON, nil
}
