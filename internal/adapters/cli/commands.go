package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"textcatalog/internal/application"
	"textcatalog/internal/config"
	"textcatalog/internal/infrastructure/i18n"
)

func getCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Print the localized string of each key, one per line",
		ArgsUsage: "KEY...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "metrics",
				Usage: "print catalog counters after the strings",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			keys := cmd.Args().Slice()
			if len(keys) == 0 {
				return errors.New("get: at least one key is required")
			}
			reg := prometheus.NewRegistry()
			c, closeFn, err := openCatalog(ctx, cmd, cfg, reg)
			if err != nil {
				return err
			}
			defer closeFn()

			w := cmd.Root().Writer
			for _, k := range keys {
				fmt.Fprintln(w, c.GetString(k))
			}
			if cmd.Bool("metrics") {
				return printMetrics(cmd, reg)
			}
			return nil
		},
	}
}

func listCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Print every key=value of the bundle, sorted by key",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			c, closeFn, err := openCatalog(ctx, cmd, cfg, nil)
			if err != nil {
				return err
			}
			defer closeFn()

			w := cmd.Root().Writer
			for k, v := range c.Catalog().All() {
				fmt.Fprintf(w, "%s=%s\n", k, v)
			}
			return nil
		},
	}
}

func importCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "Copy properties bundles from a directory into the postgres or sqlite store",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "from",
				Required: true,
				Usage:    "directory holding <bundle path>[_<locale>].properties files",
			},
			&cli.StringSliceFlag{
				Name:  "locales",
				Usage: "locales to import besides the root file (e.g. fr,fr_CA,de)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := settings(cmd, cfg)
			if err != nil {
				return err
			}
			repo, closeFn, err := openStore(ctx, s)
			if err != nil {
				return err
			}
			defer closeFn()

			from := *s
			from.BundleDir = cmd.String("from")
			svc := application.NewImportService(i18n.NewPropertiesSource(bundleFS(&from)), repo, slog.Default())
			n, err := svc.Import(ctx, s.BundleID, cmd.StringSlice("locales"))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.Root().Writer, "imported %d messages into %s\n", n, s.BundleID)
			return nil
		},
	}
}

func migrateCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply the message store schema",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := settings(cmd, cfg)
			if err != nil {
				return err
			}
			return migrate(s)
		},
	}
}

func localesCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "locales",
		Usage: "Print the locales stored for the bundle in the postgres or sqlite store",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := settings(cmd, cfg)
			if err != nil {
				return err
			}
			repo, closeFn, err := openStore(ctx, s)
			if err != nil {
				return err
			}
			defer closeFn()

			locales, err := repo.Locales(ctx, s.BundleID)
			if err != nil {
				return err
			}
			w := cmd.Root().Writer
			for _, l := range locales {
				if l == "" {
					l = "(root)"
				}
				fmt.Fprintln(w, l)
			}
			return nil
		},
	}
}
