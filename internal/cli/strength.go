package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	zxcvbn "github.com/ccojocar/zxcvbn-go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newStrengthCommand(a *app) *cobra.Command {
	var guessability bool

	cmd := &cobra.Command{
		Use:   "strength [password]",
		Short: "Rate the strength of a password",
		Long: `Rate a password by the character classes it contains and its length.

A password given as an argument is visible in shell history and process
listings. Omit the argument to type it at a prompt that does not echo, or pipe
it on standard input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd, args)
			if err != nil {
				return err
			}

			res := a.svc.Estimate(password)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderMeter(res))
			fmt.Fprintf(out, "Pool size: %d\n", res.PoolSize)
			fmt.Fprintf(out, "Entropy: %.1f bits\n", res.Entropy)

			if guessability && password != "" {
				m := zxcvbn.PasswordStrength(password, nil)
				fmt.Fprintf(out, "Guessability: %d/4 (crack time %s)\n", m.Score, m.CrackTimeDisplay)
			}

			log.Info().Int("score", res.Score).Str("label", res.Label).Msg("password rated")

			return nil
		},
	}

	cmd.Flags().BoolVar(&guessability, "guessability", false, "also show the zxcvbn guessability estimate")

	return cmd
}

// readPassword takes the password from args, a no-echo terminal prompt, or the
// first line of piped input.
func readPassword(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", errors.Wrap(err, "failed to read password")
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", errors.Wrap(err, "failed to read password")
	}

	return strings.TrimRight(line, "\r\n"), nil
}
