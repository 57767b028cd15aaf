package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ABDULAAQILKHAN/solutions-with-aaqil/internal/config"
	"github.com/ABDULAAQILKHAN/solutions-with-aaqil/internal/content"
)

//nolint:gochecknoglobals // Cobra boilerplate
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the catalog and the environment configuration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := content.Validate(); err != nil {
			return errors.Wrap(err, "catalog")
		}
		cfg, err := config.Load()
		if err != nil {
			return errors.Wrap(err, "config")
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "catalog ok: %d projects, %d experiences, %d skills\n",
			len(content.Projects()), len(content.Experiences()), len(content.Skills()))
		fmt.Fprintf(out, "mail transport: %s\n", cfg.MailTransport)
		for _, w := range configWarnings(cfg) {
			fmt.Fprintf(out, "warning: %s\n", w)
		}
		return nil
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(checkCmd)
}

// configWarnings lists settings that load fine but break a feature at
// runtime.
func configWarnings(cfg config.Config) []string {
	var warnings []string
	switch cfg.MailTransport {
	case config.TransportEmailJS:
		e := cfg.EmailJS
		if e.ServiceID == "" || e.TemplateID == "" || e.WelcomeTemplateID == "" || e.PublicKey == "" {
			warnings = append(warnings, "EmailJS identifiers are incomplete; contact submissions will fail")
		}
	case config.TransportSMTP:
		if cfg.SMTP.User == "" || cfg.SMTP.Pass == "" {
			warnings = append(warnings, "SMTP_USER/SMTP_PASS not set; contact submissions will fail")
		}
	}
	if _, err := os.Stat(cfg.ResumePath); err != nil {
		warnings = append(warnings, fmt.Sprintf("resume not found at %s", cfg.ResumePath))
	}
	return warnings
}
