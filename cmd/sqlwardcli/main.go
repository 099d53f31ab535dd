// Command sqlwardcli is a smoke-test CLI for the driver adapter: it
// connects, runs the given statement through the one query method chosen
// by --shape, and prints the shaped result. Grounded on cowsql-demo's cobra command
// structure (cowsql-go-cowsql/cmd/cowsql-demo/cowsql-demo.go) and its
// retry-with-backoff connect loop (internal/protocol/connector.go).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Rican7/retry"
	"github.com/Rican7/retry/backoff"
	"github.com/Rican7/retry/strategy"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sqlward/sqlward"
	"github.com/sqlward/sqlward/arrays"
	"github.com/sqlward/sqlward/hstore"
	"github.com/sqlward/sqlward/json"
	"github.com/sqlward/sqlward/netaddr"
	"github.com/sqlward/sqlward/ranges"
)

func main() {
	var dsn string
	var shape string
	var retryLimit uint
	var richTypes bool

	cmd := &cobra.Command{
		Use:   "sqlwardcli SQL",
		Short: "Run a statement through sqlward and print the shaped result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), dsn, shape, retryLimit, richTypes, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&dsn, "dsn", "d", "", "postgres:// connection URI")
	flags.StringVarP(&shape, "shape", "s", "any", "shape method: any, many, one, maybeOne, anyFirst, manyFirst, oneFirst, maybeOneFirst")
	flags.UintVarP(&retryLimit, "retry-limit", "r", 5, "maximum connect attempts before giving up")
	flags.BoolVar(&richTypes, "rich-types", false, "decode hstore/json/jsonb/cidr/inet/macaddr/range columns into native Go values instead of raw text")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// richTypeParsers registers the extra-package decoders (hstore, json,
// netaddr, ranges, arrays) as sqlward.TypeParsers, keyed by the pg_type
// name the type-parser registry resolves them against.
func richTypeParsers() []sqlward.TypeParser {
	return []sqlward.TypeParser{
		{Name: "hstore", Parse: hstore.Parser},
		{Name: "json", Parse: json.Parser},
		{Name: "jsonb", Parse: json.Parser},
		{Name: "cidr", Parse: netaddr.CidrParser},
		{Name: "inet", Parse: netaddr.InetParser},
		{Name: "macaddr", Parse: netaddr.MacaddrParser},
		{Name: "int4range", Parse: ranges.Int32RangeParser},
		{Name: "int8range", Parse: ranges.Int64RangeParser},
		{Name: "numrange", Parse: ranges.Float64RangeParser},
		{Name: "daterange", Parse: ranges.DateRangeParser},
		{Name: "_text", Parse: arrays.StringSliceParser},
	}
}

func run(ctx context.Context, dsn, shape string, retryLimit uint, richTypes bool, sql string) error {
	logger := sqlward.NewDefaultLogger(nil)
	cfg := sqlward.ClientConfiguration{ConnectionURI: dsn}
	if richTypes {
		cfg.TypeParsers = richTypeParsers()
	}
	factory := sqlward.NewDriverFactory(cfg, nil, nil)

	conn, err := connectWithRetry(ctx, factory, retryLimit)
	if err != nil {
		return fmt.Errorf("connecting: %w", err)
	}
	defer conn.End(ctx)

	return printShaped(ctx, logger, conn, shape, sql)
}

// connectWithRetry never retries inside the core itself (spec §7: "No
// retry is performed inside the core"); this loop lives entirely in the
// CLI, the caller-side policy spec calls for.
func connectWithRetry(ctx context.Context, factory *sqlward.DriverFactory, retryLimit uint) (*sqlward.Connection, error) {
	var conn *sqlward.Connection
	strategies := []strategy.Strategy{
		strategy.Limit(retryLimit),
		strategy.Backoff(backoff.BinaryExponential(100 * time.Millisecond)),
	}

	err := retry.Retry(func(attempt uint) error {
		c, err := factory.NewConnection(ctx)
		if err != nil {
			return err
		}
		if err := c.Connect(ctx); err != nil {
			logrus.WithError(err).WithField("attempt", attempt).Warn("connect attempt failed")
			return err
		}
		conn = c
		return nil
	}, strategies...)
	return conn, err
}

func printShaped(ctx context.Context, logger sqlward.Logger, conn *sqlward.Connection, shape, sql string) error {
	switch shape {
	case "any":
		rows, err := sqlward.Any(ctx, logger, conn, sql, nil, nil)
		return printRows(rows, err)
	case "many":
		rows, err := sqlward.Many(ctx, logger, conn, sql, nil, nil)
		return printRows(rows, err)
	case "one":
		row, err := sqlward.One(ctx, logger, conn, sql, nil, nil)
		if err != nil {
			return err
		}
		fmt.Println(row.Values)
		return nil
	case "maybeOne":
		row, ok, err := sqlward.MaybeOne(ctx, logger, conn, sql, nil, nil)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("<no row>")
			return nil
		}
		fmt.Println(row.Values)
		return nil
	case "anyFirst":
		vals, err := sqlward.AnyFirst(ctx, logger, conn, sql, nil, nil)
		return printValues(vals, err)
	case "manyFirst":
		vals, err := sqlward.ManyFirst(ctx, logger, conn, sql, nil, nil)
		return printValues(vals, err)
	case "oneFirst":
		v, err := sqlward.OneFirst(ctx, logger, conn, sql, nil, nil)
		if err != nil {
			return err
		}
		fmt.Println(v)
		return nil
	case "maybeOneFirst":
		v, ok, err := sqlward.MaybeOneFirst(ctx, logger, conn, sql, nil, nil)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("<no row>")
			return nil
		}
		fmt.Println(v)
		return nil
	default:
		return fmt.Errorf("unknown shape %q", shape)
	}
}

func printRows(rows []sqlward.Row, err error) error {
	if err != nil {
		return err
	}
	for _, r := range rows {
		fmt.Println(r.Values)
	}
	return nil
}

func printValues(vals []any, err error) error {
	if err != nil {
		return err
	}
	for _, v := range vals {
		fmt.Println(v)
	}
	return nil
}
