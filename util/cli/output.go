package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	OutputFormatYAML = "yaml"
	OutputFormatJSON = "json"
)

// AddOutputFlag adds the --output flag to cmd and its subcommands
func AddOutputFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP(FlagOutput, "o", OutputFormatYAML, "Output format (yaml|json)")
}

// PrintOutput renders obj in the format selected by --output. The YAML form
// keeps the JSON field names.
func PrintOutput(cmd *cobra.Command, obj interface{}) error {
	bz, err := json.Marshal(obj)
	if err != nil {
		return err
	}

	format := OutputFormatYAML
	if f := cmd.Flags().Lookup(FlagOutput); f != nil {
		format = f.Value.String()
	}

	switch format {
	case OutputFormatJSON:
		var out interface{}
		if err := json.Unmarshal(bz, &out); err != nil {
			return err
		}
		if bz, err = json.MarshalIndent(out, "", "  "); err != nil {
			return err
		}
		bz = append(bz, '\n')
	case OutputFormatYAML:
		var out interface{}
		if err := yaml.Unmarshal(bz, &out); err != nil {
			return err
		}
		if bz, err = yaml.Marshal(out); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown output format %q", format) // nolint: goerr113
	}

	_, err = cmd.OutOrStdout().Write(bz)
	return err
}
