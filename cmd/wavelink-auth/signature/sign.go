package signature

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wavelink-comms/wavelink-auth/cmd/wavelink-auth/common"
	"github.com/wavelink-comms/wavelink-auth/internal/credentials"
	"github.com/wavelink-comms/wavelink-auth/internal/generators"
	"github.com/wavelink-comms/wavelink-auth/internal/output"
	"github.com/wavelink-comms/wavelink-auth/pkg/logger"
)

func NewCommand(flags *common.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign key=value [key=value ...]",
		Short: "Sign request parameters",
		Long: `Compute a request signature over a set of request parameters.

Parameters are given as key=value arguments. The digest method defaults
to md5hash unless configured otherwise. Outputs a JSON envelope with the
signature on stdout.

Examples:
  wavelink-auth sign --signature-secret=SECRET to=14155550100 text=hello

  wavelink-auth sign --signature-secret=SECRET --signature-method=sha256 to=14155550100 text=hello
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(flags, args)
		},
	}

	cmd.Flags().StringVar(&flags.SignatureSecret, "signature-secret", "", "Shared signature secret")
	cmd.Flags().StringVar(&flags.SignatureMethod, "signature-method", "", "Digest method (md5hash, md5, sha1, sha256, sha512)")

	return cmd
}

func run(flags *common.Flags, args []string) error {
	ctx, cancel := common.SetupSignalHandler()
	defer cancel()

	log, err := common.CreateLogger(flags)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync()

	params, err := parseParams(args)
	if err != nil {
		return err
	}

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

	sig, err := creds.GenerateSignature(ctx, params, credentials.SignatureOptions{})
	if err != nil {
		log.Error("Failed to generate signature", logger.Error(err))
		return err
	}

	method := creds.SignatureMethod()
	if method == "" {
		method = generators.MethodMD5Hash
	}

	log.Info("Signature generated successfully",
		logger.String("method", method),
		logger.Int("params", len(params)),
	)

	writer := output.NewWriter(os.Stdout)
	if err := writer.WriteSignature(output.NewSignatureEnvelope(sig, method, params)); err != nil {
		log.Error("Failed to write signature output", logger.Error(err))
		return err
	}

	return nil
}

func parseParams(args []string) (map[string]string, error) {
	params := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q (expected key=value)", arg)
		}
		params[key] = value
	}
	return params, nil
}
