package cli

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vaultpass/passforge/internal/model"
	"github.com/vaultpass/passforge/internal/service"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

func newGenerateCommand(a *app) *cobra.Command {
	var (
		quiet  bool
		toClip bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more random passwords",
		Long: fmt.Sprintf(`Generate random passwords from the enabled character classes.

Length must be between %d and %d. If every class is disabled, lowercase
letters are used.`, service.MinLength, service.MaxLength),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := a.cfg.Generator
			req := model.GenerateRequest{
				Length:    g.Length,
				Uppercase: &g.Uppercase,
				Lowercase: &g.Lowercase,
				Numbers:   &g.Numbers,
				Symbols:   &g.Symbols,
			}

			resps, err := a.svc.GenerateBatch(req, g.Count)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range resps {
				fmt.Fprintln(out, r.Password)
				if !quiet {
					fmt.Fprintln(out, renderMeter(r.Strength))
				}
			}

			log.Info().
				Int("count", len(resps)).
				Int("length", resps[0].Length).
				Strs("classes", resps[0].Classes).
				Msg("passwords generated")

			if toClip {
				if err := writeClipboard(resps[len(resps)-1].Password); err != nil {
					return errors.Wrap(err, "failed to copy password to clipboard")
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard")
			}

			return nil
		},
	}

	f := cmd.Flags()
	f.IntP("length", "l", service.DefaultLength, "password length")
	f.Bool("upper", true, "include uppercase letters (A-Z)")
	f.Bool("lower", true, "include lowercase letters (a-z)")
	f.Bool("numbers", true, "include digits (0-9)")
	f.Bool("symbols", true, "include symbols (!@#$...)")
	f.IntP("count", "c", 1, "number of passwords to generate")
	f.BoolVarP(&quiet, "quiet", "q", false, "print passwords only")
	f.BoolVar(&toClip, "copy", false, "copy the last password to the clipboard")

	_ = a.v.BindPFlag("generator.length", f.Lookup("length"))
	_ = a.v.BindPFlag("generator.uppercase", f.Lookup("upper"))
	_ = a.v.BindPFlag("generator.lowercase", f.Lookup("lower"))
	_ = a.v.BindPFlag("generator.numbers", f.Lookup("numbers"))
	_ = a.v.BindPFlag("generator.symbols", f.Lookup("symbols"))
	_ = a.v.BindPFlag("generator.count", f.Lookup("count"))

	return cmd
}
