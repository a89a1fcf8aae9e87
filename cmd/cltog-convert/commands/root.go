package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maruel/cltog/internal/i18n"
	"github.com/maruel/cltog/internal/substance"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	lang           string
	substancesPath string

	// Resolved in PersistentPreRunE.
	l   i18n.Lang
	cat *substance.Catalog
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd returns the command tree.
func NewRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:           "cltog-convert",
		Short:         "Convert between volume and mass using a substance density",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, ok := i18n.Parse(o.lang)
			if !ok {
				return fmt.Errorf("unsupported language %q", o.lang)
			}
			o.l = l
			if o.substancesPath == "" {
				o.cat = substance.Default()
				return nil
			}
			cat, err := substance.Load(o.substancesPath)
			if err != nil {
				return err
			}
			o.cat = cat
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&o.lang, "lang", "l", string(i18n.Default), "output language")
	root.PersistentFlags().StringVar(&o.substancesPath, "substances", "", "substance catalog YAML file (default built-in)")

	root.AddCommand(massCmd(o), volumeCmd(o), substancesCmd(o))
	return root
}
