package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/WJQSERVER/kaleido"
)

const defaultPrompt = "ready> "

// flag names
const (
	promptFlagName        = "prompt"
	jsonFlagName          = "json"
	tokensFlagName        = "tokens"
	verboseFlagName       = "verbose"
	styleFlagName         = "style"
	strictNumbersFlagName = "strict-numbers"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	app := newApp(os.Stdin, os.Stdout, os.Stderr, interactive)
	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(stdin io.Reader, stdout, stderr io.Writer, interactive bool) *cli.App {
	return &cli.App{
		Name:      "kparse",
		Usage:     "parse Kaleidoscope source and report each top-level form",
		ArgsUsage: "[file ...]",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    promptFlagName,
				Usage:   "prompt printed before each top-level form (default \"" + defaultPrompt + "\" when stdin is a terminal)",
				EnvVars: []string{"KALEIDO_PROMPT"},
			},
			&cli.BoolFlag{
				Name:    jsonFlagName,
				Usage:   "write results as one JSON object per line on stdout",
				EnvVars: []string{"KALEIDO_JSON"},
			},
			&cli.BoolFlag{
				Name:    tokensFlagName,
				Usage:   "print the token stream instead of parsing",
				EnvVars: []string{"KALEIDO_TOKENS"},
			},
			&cli.BoolFlag{
				Name:    verboseFlagName,
				Aliases: []string{"v"},
				Usage:   "print the AST of every parsed form on stdout",
				EnvVars: []string{"KALEIDO_VERBOSE"},
			},
			&cli.StringFlag{
				Name:  styleFlagName,
				Value: "sexpr",
				Usage: "AST output style (sexpr, tree)",
			},
			&cli.BoolFlag{
				Name:    strictNumbersFlagName,
				Usage:   "reject number literals such as 1.2.3 instead of truncating them",
				EnvVars: []string{"KALEIDO_STRICT_NUMBERS"},
			},
		},
		Action: func(c *cli.Context) error {
			return run(c, stdin, stdout, stderr, interactive)
		},
	}
}

func run(c *cli.Context, stdin io.Reader, stdout, stderr io.Writer, interactive bool) error {
	style, err := kaleido.ParseOutputStyle(c.String(styleFlagName))
	if err != nil {
		return err
	}

	prompt := c.String(promptFlagName)
	if !c.IsSet(promptFlagName) && interactive && c.NArg() == 0 {
		prompt = defaultPrompt
	}

	opts := []kaleido.DriverOption{
		kaleido.WithOutput(stdout),
		kaleido.WithDiagnostics(stderr),
		kaleido.WithPrompt(prompt),
		kaleido.WithJSON(c.Bool(jsonFlagName)),
		kaleido.WithVerbose(c.Bool(verboseFlagName)),
		kaleido.WithFormatOptions(kaleido.FormatOptions{Style: style}),
	}
	if c.Bool(strictNumbersFlagName) {
		opts = append(opts, kaleido.WithParserOptions(kaleido.WithStrictNumbers()))
	}
	dumpTokens := c.Bool(tokensFlagName)

	if c.NArg() == 0 {
		return process(c.Context, stdin, dumpTokens, opts)
	}

	var allErrors []error
	for _, path := range c.Args().Slice() {
		if err := processFile(c.Context, path, dumpTokens, opts); err != nil {
			allErrors = append(allErrors, err)
		}
	}
	return errors.Join(allErrors...)
}

func processFile(ctx context.Context, path string, dumpTokens bool, opts []kaleido.DriverOption) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not read file %s: %w", path, err)
	}
	defer f.Close()
	if err := process(ctx, f, dumpTokens, opts); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func process(ctx context.Context, r io.Reader, dumpTokens bool, opts []kaleido.DriverOption) error {
	d := kaleido.NewDriver(r, opts...)
	if dumpTokens {
		return d.DumpTokens(ctx)
	}
	_, err := d.Run(ctx)
	return err
}
