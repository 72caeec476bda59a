package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

var fixtureCmd = &cobra.Command{
	Use:   "fixture",
	Short: "Inspect or edit a YAML fixture document without round-tripping its AST",
	Long: `fixture operates on the raw YAML document (see internal/fixture for
the schema it is eventually decoded into) using a gjson/sjson path
addressed by dotted keys and array indices, e.g. classes.0.name.`,
}

var fixtureGetCmd = &cobra.Command{
	Use:   "get [fixture.yaml] [path]",
	Short: "Print the value at path in a fixture document",
	Args:  cobra.ExactArgs(2),
	RunE:  fixtureGet,
}

var fixtureSetCmd = &cobra.Command{
	Use:   "set [fixture.yaml] [path] [value]",
	Short: "Set the value at path in a fixture document and rewrite it",
	Args:  cobra.ExactArgs(3),
	RunE:  fixtureSet,
}

func init() {
	rootCmd.AddCommand(fixtureCmd)
	fixtureCmd.AddCommand(fixtureGetCmd)
	fixtureCmd.AddCommand(fixtureSetCmd)
}

// yamlFileToJSON loads a YAML fixture and re-encodes it as JSON so
// gjson/sjson (which only understand JSON) can address into it.
func yamlFileToJSON(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return json.Marshal(doc)
}

// jsonToYAMLFile re-decodes a JSON document (as produced/edited via
// gjson/sjson) and rewrites path as YAML.
func jsonToYAMLFile(path string, jsonDoc []byte) error {
	var doc any
	if err := json.Unmarshal(jsonDoc, &doc); err != nil {
		return fmt.Errorf("invalid JSON after edit: %w", err)
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("re-encoding YAML: %w", err)
	}
	return os.WriteFile(path, out, 0644)
}

func fixtureGet(_ *cobra.Command, args []string) error {
	path, gpath := args[0], args[1]

	jsonDoc, err := yamlFileToJSON(path)
	if err != nil {
		return err
	}

	result := gjson.GetBytes(jsonDoc, gpath)
	if !result.Exists() {
		return fmt.Errorf("path %q not found in %s", gpath, path)
	}
	fmt.Println(result.String())
	return nil
}

func fixtureSet(_ *cobra.Command, args []string) error {
	path, gpath, value := args[0], args[1], args[2]

	jsonDoc, err := yamlFileToJSON(path)
	if err != nil {
		return err
	}

	edited, err := sjson.SetBytes(jsonDoc, gpath, value)
	if err != nil {
		return fmt.Errorf("setting %q: %w", gpath, err)
	}

	if err := jsonToYAMLFile(path, edited); err != nil {
		return err
	}
	fmt.Printf("Updated %s at %s\n", path, gpath)
	return nil
}
