package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/light-bringer/invoicing/internal/app/invoice/usecases/issue_invoice"
	"github.com/light-bringer/invoicing/internal/pkg/sequence"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invoice: %v\n", err)
		os.Exit(1)
	}

	// The process-wide counter is seeded exactly once, before any invoice exists.
	numbers := sequence.Shared()
	numbers.Reset(cfg.StartNumber)

	if err := newApp(os.Stdout, numbers).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "invoice: %v\n", err)
		os.Exit(1)
	}
}

// newApp builds the CLI. Every invoice it issues draws from numbers, so runs
// sharing one generator never repeat a number.
func newApp(out io.Writer, numbers sequence.Generator) *cli.App {
	return &cli.App{
		Name:  "invoice",
		Usage: "build an invoice from products and print it",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "item",
				Aliases: []string{"i"},
				Usage:   "product as name:rate:price[:qty], rate is taxfree, other, dairy or a fraction",
			},
			&cli.BoolFlag{
				Name:  "totals",
				Usage: "append net, tax and gross totals",
			},
		},
		Writer: out,
		Action: func(c *cli.Context) error {
			return run(c, out, numbers)
		},
	}
}

func run(c *cli.Context, out io.Writer, numbers sequence.Generator) error {
	// 1. Load configuration from environment variables
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// 2. Initialize logger
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck
	zap.ReplaceGlobals(logger)

	// 3. Parse items
	req := &issue_invoice.Request{}
	for _, raw := range c.StringSlice("item") {
		line, err := parseItem(raw)
		if err != nil {
			return err
		}
		req.Lines = append(req.Lines, line)
	}

	// 4. Issue the invoice
	inv, err := issue_invoice.NewInteractor(numbers).Execute(req)
	if err != nil {
		zap.S().Errorw("invoice rejected", "error", err)
		return err
	}
	zap.S().Infow("invoice issued",
		"number", inv.Number,
		"lines", len(inv.Lines),
		"gross", inv.GrossTotal,
	)

	// 5. Print
	if _, err := fmt.Fprintln(out, inv.Printed); err != nil {
		return errors.Wrap(err, "failed to write invoice")
	}
	if c.Bool("totals") {
		_, err := fmt.Fprintf(out, "Netto: %s\nPodatek: %s\nBrutto: %s\n",
			inv.NetTotal, inv.TaxTotal, inv.GrossTotal)
		if err != nil {
			return errors.Wrap(err, "failed to write totals")
		}
	}

	return nil
}
