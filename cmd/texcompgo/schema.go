package main

import (
	"fmt"
	"os"

	"github.com/ispc-texcomp/go-texcomp/config"
	"github.com/ispc-texcomp/go-texcomp/internal/logger"
)

type SchemaCmd struct {
	Output string `arg:"" name:"output" help:"Path of the JSON schema file to write."`
}

func (c *SchemaCmd) Run() error {
	schemaJSON, err := config.SchemaJSON()
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.Output, schemaJSON, 0o644); err != nil {
		return fmt.Errorf("failed to write schema to file: %w", err)
	}
	logger.Log.Infof("JSON schema has been written to %s", c.Output)
	return nil
}
