package cmd

import (
	"encoding/json"
	"os"
	"reflect"

	"github.com/deepc-skill/deepc/inline"
	"github.com/deepc-skill/deepc/media"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().BoolP("result", "r", false, "Schema of a single result record instead of the search output")
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the json output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			return "deepc." + t.Name()
		}

		var schema *jsonschema.Schema
		if lo.Must(cmd.Flags().GetBool("result")) {
			schema = reflector.Reflect(&media.Result{})
		} else {
			schema = reflector.Reflect(&inline.Output{})
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(schema))
	},
}
