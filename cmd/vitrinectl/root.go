package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/vitrine/internal/config"
	vitrine "github.com/kailas-cloud/vitrine/pkg/sdk"
)

// globalFlags select the catalog. With no --driver, the catalog section of
// config/<ENV>.yaml is used.
type globalFlags struct {
	driver    string
	path      string
	addr      string
	password  string
	dsn       string
	keyPrefix string
	jsonOut   bool
	verbose   bool
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:           "vitrinectl",
		Short:         "Seed and query a vitrine catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&g.driver, "driver", "", "catalog driver: file, redis, valkey, postgres, sqlite (default: from config)")
	pf.StringVar(&g.path, "path", "", "catalog fixture path (file driver)")
	pf.StringVar(&g.addr, "addr", "localhost:6379", "redis/valkey address")
	pf.StringVar(&g.password, "password", "", "redis/valkey password")
	pf.StringVar(&g.dsn, "dsn", "", "postgres/sqlite DSN")
	pf.StringVar(&g.keyPrefix, "key-prefix", "", "redis/valkey key prefix")
	pf.BoolVar(&g.jsonOut, "json", false, "print JSON instead of tables")
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "log SDK operations to stderr")

	root.AddCommand(
		newSeedCmd(g),
		newSearchCmd(g),
		newColorsCmd(g),
		newHealthCmd(g),
		newAliasesCmd(g),
		newVersionCmd(g),
	)
	return root
}

// catalogConfig resolves flags, falling back to the environment's config file.
func (g *globalFlags) catalogConfig() (config.CatalogConfig, error) {
	if g.driver == "" {
		cfg, err := config.Load(config.GetEnv())
		if err != nil {
			return config.CatalogConfig{}, fmt.Errorf("load config: %w", err)
		}
		return cfg.Catalog, nil
	}
	return config.CatalogConfig{
		Driver:    g.driver,
		Path:      g.path,
		Addrs:     []string{g.addr},
		Password:  g.password,
		DSN:       g.dsn,
		KeyPrefix: g.keyPrefix,
	}, nil
}

func (g *globalFlags) connect(ctx context.Context, cmd *cobra.Command) (*vitrine.Client, error) {
	cc, err := g.catalogConfig()
	if err != nil {
		return nil, err
	}

	var opts []vitrine.Option
	switch cc.Driver {
	case config.DriverFile:
		opts = append(opts, vitrine.WithCatalogFile(cc.Path))
	case config.DriverRedis, config.DriverValkey:
		if len(cc.Addrs) == 0 {
			return nil, fmt.Errorf("catalog addrs required for %s", cc.Driver)
		}
		if cc.Driver == config.DriverValkey {
			opts = append(opts, vitrine.WithValkey(cc.Addrs[0], cc.Password))
		} else {
			opts = append(opts, vitrine.WithRedis(cc.Addrs[0], cc.Password))
		}
		if cc.KeyPrefix != "" {
			opts = append(opts, vitrine.WithKeyPrefix(cc.KeyPrefix))
		}
	case config.DriverPostgres:
		opts = append(opts, vitrine.WithPostgres(cc.DSN))
	case config.DriverSQLite:
		opts = append(opts, vitrine.WithSQLite(cc.DSN))
	default:
		return nil, fmt.Errorf("unknown driver %q", cc.Driver)
	}
	if g.verbose {
		opts = append(opts, vitrine.WithLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(),
			&slog.HandlerOptions{Level: slog.LevelDebug}))))
	}

	client, err := vitrine.New(ctx, opts...)
	if err != nil {
		return nil, err //nolint:wrapcheck // SDK errors carry their own prefix
	}
	return client, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
