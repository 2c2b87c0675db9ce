package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"textcatalog/internal/config"
	"textcatalog/internal/infrastructure/i18n"
	"textcatalog/internal/logging"
)

const name = "msgcat"

// NewCommand builds the msgcat command tree. Flag defaults come from cfg.
func NewCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: "Resolve and manage localized text editor messages",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "source",
				Value: cfg.Source,
				Usage: "bundle source: properties, toml, postgres or sqlite",
			},
			&cli.StringFlag{
				Name:  "bundle",
				Value: cfg.BundleID,
				Usage: "dotted bundle identifier",
			},
			&cli.StringFlag{
				Name:  "locale",
				Value: cfg.Locale,
				Usage: "locale (e.g. fr_CA); detected from LC_ALL/LC_MESSAGES/LANG when empty",
			},
			&cli.StringFlag{
				Name:  "dir",
				Value: cfg.BundleDir,
				Usage: "directory holding properties/toml bundles; embedded bundles when empty",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: cfg.LogLevel,
				Usage: "log level (debug, info, warn, error)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			slog.SetDefault(logging.New(cmd.Root().ErrWriter, cmd.String("log-level"), false))
			return ctx, nil
		},
		Commands: []*cli.Command{
			getCmd(cfg),
			listCmd(cfg),
			importCmd(cfg),
			migrateCmd(cfg),
			localesCmd(cfg),
		},
	}
}

// settings returns cfg with the command line overrides applied.
func settings(cmd *cli.Command, cfg *config.Config) (*config.Config, error) {
	s := *cfg
	s.Source = cmd.String("source")
	s.BundleID = cmd.String("bundle")
	s.Locale = cmd.String("locale")
	s.BundleDir = cmd.String("dir")
	s.LogLevel = cmd.String("log-level")
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// openCatalog builds and loads the catalog described by the command line.
// A load failure is logged by the catalog and does not stop the command.
func openCatalog(ctx context.Context, cmd *cli.Command, cfg *config.Config, reg prometheus.Registerer) (*i18n.Catalog, func(), error) {
	s, err := settings(cmd, cfg)
	if err != nil {
		return nil, nil, err
	}
	locale := i18n.DetectLocale(os.Getenv)
	if s.Locale != "" {
		locale = i18n.ParseLocale(s.Locale)
	}

	src, closeFn, err := openSource(ctx, s, locale)
	if err != nil {
		return nil, nil, err
	}
	opts := []i18n.Option{i18n.WithLocale(locale), i18n.WithLogger(slog.Default())}
	if reg != nil {
		opts = append(opts, i18n.WithMetrics(i18n.NewMetrics(reg)))
	}
	c := i18n.NewCatalog(s.BundleID, src, opts...)
	_ = c.Load(ctx)
	return c, closeFn, nil
}

func printMetrics(cmd *cli.Command, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	w := cmd.Root().Writer
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := ""
			for i, l := range m.GetLabel() {
				if i > 0 {
					labels += ","
				}
				labels += fmt.Sprintf("%s=%q", l.GetName(), l.GetValue())
			}
			fmt.Fprintf(w, "%s{%s} %g\n", mf.GetName(), labels, m.GetCounter().GetValue())
		}
	}
	return nil
}
