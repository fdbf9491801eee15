package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// -----------------------------------------------------------------------------

const about = "A command-line RC5 encryption/decryption tool"

const longAbout = `rc5 is a flexible tool that provides RC5 encryption and decryption using
multiple block modes like ECB, CBC, and CTR. It supports variable word sizes
and key lengths for advanced cryptographic workflows.`

// -----------------------------------------------------------------------------

type cliOptions struct {
	secret   string
	rounds   int
	wordBits int
	action   string
	file     string
	dest     string

	iv      string
	nonce   string
	counter string
}

// -----------------------------------------------------------------------------

func newRootCmd() *cobra.Command {
	opts := cliOptions{}

	rootCmd := &cobra.Command{
		Use:          "rc5",
		Short:        about,
		Long:         longAbout,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if opts.action != actionEncrypt && opts.action != actionDecrypt {
				return fmt.Errorf("invalid action %q, must be %q or %q", opts.action, actionEncrypt, actionDecrypt)
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.secret, "secret", "s", "", "secret key to be used by the RC5 control block")
	flags.IntVarP(&opts.rounds, "rounds", "r", 12, "number of encryption/decryption rounds to perform")
	flags.IntVarP(&opts.wordBits, "word", "w", 32, "word size in bits (16, 32, 64 or 128)")
	flags.StringVarP(&opts.action, "action", "a", "", "what action to perform, either encrypt or decrypt")
	flags.StringVarP(&opts.file, "file", "f", "", "source file path to load")
	flags.StringVarP(&opts.dest, "dest", "d", defaultDestPath, "destination file path to store the processed file")
	_ = rootCmd.MarkPersistentFlagRequired("secret")
	_ = rootCmd.MarkPersistentFlagRequired("action")
	_ = rootCmd.MarkPersistentFlagRequired("file")

	ecbCmd := &cobra.Command{
		Use:   "ecb",
		Short: "Electronic-Code-Book operation mode",
		RunE: func(_ *cobra.Command, _ []string) error {
			return opts.run(modeECB)
		},
	}

	cbcCmd := &cobra.Command{
		Use:   "cbc",
		Short: "Cipher-Block-Chaining operation mode",
		RunE: func(_ *cobra.Command, _ []string) error {
			return opts.run(modeCBC)
		},
	}
	cbcCmd.Flags().StringVar(&opts.iv, "iv", "", "initialization vector, provided as a hex string")

	ctrCmd := &cobra.Command{
		Use:   "ctr",
		Short: "Counter operation mode",
		RunE: func(_ *cobra.Command, _ []string) error {
			return opts.run(modeCTR)
		},
	}
	ctrCmd.Flags().StringVarP(&opts.nonce, "nonce", "n", "", "a unique nonce for counter encryption, provided as a hex string")
	ctrCmd.Flags().StringVarP(&opts.counter, "counter", "c", "", "an arbitrary initial counter value, provided as a hex string")

	rootCmd.AddCommand(ecbCmd, cbcCmd, ctrCmd)

	// Done
	return rootCmd
}

// -----------------------------------------------------------------------------

var errUnsupportedWordSize = errors.New("unsupported word size, must be 16, 32, 64 or 128")
