package token

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wavelink-comms/wavelink-auth/cmd/wavelink-auth/common"
	"github.com/wavelink-comms/wavelink-auth/internal/credentials"
	"github.com/wavelink-comms/wavelink-auth/internal/output"
	"github.com/wavelink-comms/wavelink-auth/pkg/logger"
)

func NewCommand(flags *common.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generate an application JWT",
		Long: `Generate a signed JWT for application-authenticated API calls.

The private key may be given as a file path or as literal PEM text.
Outputs a JSON envelope with the token on stdout.

Examples:
  # Key from a file
  wavelink-auth jwt --api-key=KEY --api-secret=SECRET --application-id=app-id --private-key=./private.key

  # Key and application id from the environment
  WAVELINK_APPLICATION_ID=app-id WAVELINK_PRIVATE_KEY=./private.key wavelink-auth jwt
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(flags)
		},
	}

	cmd.Flags().StringVar(&flags.ApplicationID, "application-id", "", "Application ID claim for the token")
	cmd.Flags().StringVar(&flags.PrivateKey, "private-key", "", "Private key file path or literal PEM text")
	cmd.Flags().StringVar(&flags.TokenTTL, "ttl", "", "Token lifetime (examples: 1h, 30m, 900s)")

	return cmd
}

func run(flags *common.Flags) error {
	ctx, cancel := common.SetupSignalHandler()
	defer cancel()

	log, err := common.CreateLogger(flags)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync()

	cfg, err := common.LoadConfig(flags)
	if err != nil {
		log.Error("Failed to load configuration", logger.Error(err))
		return err
	}

	creds, err := common.BuildCredentials(cfg, log)
	if err != nil {
		log.Error("Failed to build credentials", logger.Error(err))
		return err
	}

	token, err := creds.GenerateJWT(ctx, credentials.JWTOptions{})
	if err != nil {
		log.Error("Failed to generate JWT", logger.Error(err))
		return err
	}

	log.Info("JWT generated successfully",
		logger.String("application_id", creds.ApplicationID()),
	)

	writer := output.NewWriter(os.Stdout)
	if err := writer.WriteToken(output.NewTokenEnvelope(token)); err != nil {
		log.Error("Failed to write token output", logger.Error(err))
		return err
	}

	return nil
}
