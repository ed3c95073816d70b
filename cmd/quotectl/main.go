package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/yanqian/insurance-quotes/internal/infra/config"
	"github.com/yanqian/insurance-quotes/pkg/logger"
)

var (
	cfg *config.Config
	log *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "quotectl",
	Short: "Run quote and discovery operations from the shell",
	Long: `quotectl exercises the same quote pipeline and discovery engine as the HTTP
service. Configuration is read from configs/config.yaml (or CONFIG_PATH), the
environment and an optional .env file. Results are printed as JSON on stdout;
logs go to stderr.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		c, err := config.Load()
		if err != nil {
			return eris.Wrap(err, "load config")
		}
		cfg = c
		log = logger.NewWithWriter(cmd.ErrOrStderr())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(discoverCmd, cancerCmd, quoteCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return eris.Wrap(err, "encode output")
	}
	return nil
}

// readJSONFile decodes path into v; "-" reads stdin.
func readJSONFile(cmd *cobra.Command, path string, v any) error {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return eris.Wrapf(err, "open %s", path)
		}
		defer f.Close()
		r = f
	}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return eris.Wrapf(err, "decode %s", path)
	}
	return nil
}

func requireFileFlag(cmd *cobra.Command) (string, error) {
	path, _ := cmd.Flags().GetString("file")
	if path == "" {
		return "", fmt.Errorf("%s: --file is required", cmd.Name())
	}
	return path, nil
}
