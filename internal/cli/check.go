package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/restevesd/arnes/config"
	"github.com/restevesd/arnes/internal/models"
	"github.com/restevesd/arnes/internal/services"
	"github.com/spf13/cobra"
)

func newCheckCmd(cfg func() *config.Config) *cobra.Command {
	var (
		harness float64
		boot    string
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check a boot size against a harness measurement",
		Example: "  bootfit check --harness 30 --boot 7\n" +
			"  bootfit check --harness 42.5 --boot 31 --json",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := cfg()

			est, cleanup, err := newBackend(cmd.Context(), c)
			if err != nil {
				return err
			}
			defer cleanup()

			advisorSvc := services.NewAdvisorService(est, services.CatalogFor(c.MessageLocale))

			advisory, err := advisorSvc.Advise(cmd.Context(), harness, boot)
			if err != nil {
				if jsonOut {
					_ = writeJSON(cmd, models.ErrorResponse{
						Error:   services.ErrorCode(err),
						Message: advisorSvc.Catalog().ErrorMessage(err),
					})
				} else {
					fmt.Fprintln(cmd.ErrOrStderr(), advisorSvc.Catalog().ErrorMessage(err))
				}
				return &reportedError{err: err}
			}

			if jsonOut {
				return writeJSON(cmd, models.AdviceResponse{HarnessSize: harness, Advisory: advisory})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", strings.ToUpper(string(advisory.Severity)), advisory.Message)
			return nil
		},
	}

	cmd.Flags().Float64Var(&harness, "harness", 0, "harness size in cm (0 < size <= 100)")
	cmd.Flags().StringVar(&boot, "boot", "", "selected boot size")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the result as JSON")
	_ = cmd.MarkFlagRequired("harness")

	return cmd
}

func writeJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
