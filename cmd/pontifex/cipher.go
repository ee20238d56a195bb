package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dcrodman/pontifex/internal/solitaire"
)

var PerLineFlag bool

func newEncryptCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encrypt [message...]",
		Short: "Encrypts a message (arguments, or stdin line by line)",
		Long: "Encrypts the letters of a message with the key deck. Letters are uppercased and\n" +
			"everything that is not a letter is dropped.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCipher(cmd, args, (*solitaire.Cipher).Encrypt)
		},
	}
	addPerLineFlag(cmd)
	return cmd
}

func newDecryptCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decrypt [message...]",
		Short: "Decrypts a message (arguments, or stdin line by line)",
		Long: "Decrypts a message produced by encrypt. The message must consist of uppercase\n" +
			"letters only and the key deck must be the one it was encrypted with.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCipher(cmd, args, (*solitaire.Cipher).Decrypt)
		},
	}
	addPerLineFlag(cmd)
	return cmd
}

func addPerLineFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&PerLineFlag, "per-line", false, "Start every input line from the key deck instead of one continuous session")
}

type cipherFunc func(c *solitaire.Cipher, message string) string

// runCipher applies fn to every input line. Lines share one cipher session
// unless --per-line is set, in which case each starts from the key deck.
func runCipher(cmd *cobra.Command, args []string, fn cipherFunc) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	in := cmd.InOrStdin()
	if len(args) > 0 {
		in = strings.NewReader(strings.Join(args, " "))
	}

	var c *solitaire.Cipher
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(in)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		if c == nil || PerLineFlag {
			d, err := e.loadDeck()
			if err != nil {
				return err
			}
			c = solitaire.New(d, solitaire.WithLogger(e.logger.With("line", lineNum)))
		}
		fmt.Fprintln(out, fn(c, scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading message: %w", err)
	}
	if c != nil {
		e.logger.Debugw("session finished", "deck", c.Deck())
	}
	return nil
}
