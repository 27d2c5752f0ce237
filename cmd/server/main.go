// Command server exposes the ubigkas engine as a JSON REST API.
//
// Endpoints:
//
//	POST /api/correct        body: {"tokens":[...],"tags":[...],"scores":[...]} or {"text":"..."}
//	POST /api/correct/batch  body: {"sentences":["...", ...]}
//	POST /api/explain        body: {"tokens":[...],"tags":[...],"scores":[...]}
//	POST /api/normalize      body: {"text":"..."}
//	GET  /api/conjugate?root=<root>&class=<MAG|UM|IN|AN>&tense=<past|present|future|base>
//	GET  /api/conjugation?root=<root>
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ubigkas/ubigkas"
	"github.com/ubigkas/ubigkas/internal/config"
)

var cfgFile string

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "server",
		Short: "Serve the ubigkas marker reconstruction engine over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg.Verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			return serve(cfg, logger)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./ubigkas.yaml)")
	flags.String("addr", ":8080", "listen address")
	flags.String("data", "", "directory with replacement table files")
	flags.Float64("threshold", ubigkas.DefaultConfidenceThreshold, "minimum tag confidence")
	flags.Int("workers", 4, "sentences corrected in parallel per batch request")
	flags.Bool("verbose", false, "log per-token decisions")

	_ = v.BindPFlag(config.KeyAddr, flags.Lookup("addr"))
	_ = v.BindPFlag(config.KeyDataDir, flags.Lookup("data"))
	_ = v.BindPFlag(config.KeyThreshold, flags.Lookup("threshold"))
	_ = v.BindPFlag(config.KeyWorkers, flags.Lookup("workers"))
	_ = v.BindPFlag(config.KeyVerbose, flags.Lookup("verbose"))

	root.AddCommand(newConjugateCmd(v))
	return root
}

// newConjugateCmd prints the conjugation table of each root argument.
func newConjugateCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "conjugate ROOT...",
		Short: "Print the future, present and past forms of verb roots",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}
			eng, err := newEngine(cfg, zap.NewNop())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, root := range args {
				table, ok := eng.ConjugationTable(root)
				if !ok {
					fmt.Fprintf(out, "%s: unknown verb root\n", root)
					continue
				}
				fmt.Fprintf(out, "%s (%s)\n  future:  %s\n  present: %s\n  past:    %s\n",
					table.Root, table.Class, table.Future, table.Present, table.Past)
			}
			return nil
		},
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func newEngine(cfg *config.Config, logger *zap.Logger) (*ubigkas.Engine, error) {
	opts := []ubigkas.Option{
		ubigkas.WithLogger(logger),
		ubigkas.WithConfidenceThreshold(cfg.ConfidenceThreshold),
	}
	if cfg.DataDir != "" {
		opts = append(opts, ubigkas.WithDataDir(cfg.DataDir))
	}
	return ubigkas.New(opts...)
}

func serve(cfg *config.Config, logger *zap.Logger) error {
	eng, err := newEngine(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to load tables: %w", err)
	}
	pipe := ubigkas.NewPipeline(eng, nil, ubigkas.WithWorkers(cfg.Workers))
	srv := &server{engine: eng, pipeline: pipe, logger: logger}

	handler := cors.Default().Handler(srv.routes())
	logger.Info("listening", zap.String("addr", cfg.Addr))
	return http.ListenAndServe(cfg.Addr, handler)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
