package cmd

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ABDULAAQILKHAN/solutions-with-aaqil/internal/content"
)

//nolint:gochecknoglobals // Cobra boilerplate
var contentFormat string

//nolint:gochecknoglobals // Cobra boilerplate
var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Print the compiled-in portfolio catalog",
	Long: `Print the profile, skills, projects and experience records compiled
into the binary.

Example:
  portfolio content
  portfolio content --format yaml`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return writeCatalog(cmd.OutOrStdout(), contentFormat)
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(contentCmd)
	contentCmd.Flags().StringVar(&contentFormat, "format", "json", "Output format: json or yaml")
}

func writeCatalog(w io.Writer, format string) error {
	catalog := content.All()
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(catalog), "encode catalog")
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(catalog); err != nil {
			return errors.Wrap(err, "encode catalog")
		}
		return errors.Wrap(enc.Close(), "encode catalog")
	default:
		return errors.Errorf("unknown format %q (want json or yaml)", format)
	}
}
