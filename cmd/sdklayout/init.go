package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bundlekit/sdklayout/application/validation"
	"github.com/bundlekit/sdklayout/domain/entities"
	"github.com/bundlekit/sdklayout/domain/ports"
	"github.com/bundlekit/sdklayout/infrastructure/configstore"
	"github.com/bundlekit/sdklayout/infrastructure/prompter"
	"github.com/spf13/cobra"
)

type initParams struct {
	stdout   io.Writer
	prompter ports.Prompter
	path     string
	version  string
	cfg      entities.SdkModulesConfig
	yes      bool
}

func newInitCommand() *cobra.Command {
	p := initParams{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write an SDK modules config file",
		Example: `  sdklayout init --sdk-package com.example.sdk --sdk-version 1.2.0
  sdklayout init --sdk-package com.example.sdk --path build/sdk.yaml --yes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p.stdout = cmd.OutOrStdout()
			p.prompter = prompter.NewCliPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
			return runInit(p)
		},
	}

	cmd.Flags().StringVar(&p.path, "path", configstore.DefaultFileName, "file to write")
	cmd.Flags().StringVar(&p.cfg.SdkPackageName, "sdk-package", "", "SDK package name")
	cmd.Flags().StringVar(&p.version, "sdk-version", "", "SDK version (major.minor.patch)")
	cmd.Flags().StringVar(&p.cfg.SdkProviderClassName, "provider-class", "", "SDK provider class name")
	cmd.Flags().StringVar(&p.cfg.CompatSdkProviderClassName, "compat-provider-class", "", "compat SDK provider class name")
	cmd.Flags().BoolVarP(&p.yes, "yes", "y", false, "overwrite an existing file without asking")
	_ = cmd.MarkFlagRequired("sdk-package")
	return cmd
}

func runInit(p initParams) error {
	cfg := p.cfg
	if p.version != "" {
		v, err := entities.ParseSdkVersion(p.version)
		if err != nil {
			return err
		}
		cfg.SdkVersion = v
	}

	if _, err := os.Stat(p.path); err == nil && !p.yes {
		if !p.prompter.IsInteractive() {
			return fmt.Errorf("%s already exists; pass --yes to overwrite", p.path)
		}
		ok, err := p.prompter.Confirm(fmt.Sprintf("Overwrite %s?", p.path))
		if err != nil {
			return err
		}
		if !ok {
			slog.Info("sdk modules config left unchanged", "path", p.path)
			return nil
		}
	}

	store := configstore.NewFileStore(
		configstore.WithPath(p.path),
		configstore.WithValidator(validation.NewConfigValidator()),
	)
	if err := store.Save(&cfg); err != nil {
		return err
	}
	_, err := fmt.Fprintln(p.stdout, store.ConfigPath())
	return err
}
