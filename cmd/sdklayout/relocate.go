package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bundlekit/sdklayout/application/extractor"
	"github.com/bundlekit/sdklayout/application/mutation"
	"github.com/bundlekit/sdklayout/application/sdkmodule"
	"github.com/bundlekit/sdklayout/application/template"
	"github.com/bundlekit/sdklayout/application/validation"
	"github.com/bundlekit/sdklayout/domain/entities"
	"github.com/bundlekit/sdklayout/domain/errors"
	"github.com/bundlekit/sdklayout/infrastructure/configstore"
	"github.com/bundlekit/sdklayout/infrastructure/parser"
	"github.com/bundlekit/sdklayout/wireformat"
	"github.com/spf13/cobra"
)

// relocateParams bundles the inputs of the relocate command so runRelocate
// can be tested without cobra.
type relocateParams struct {
	stdout      io.Writer
	sdkConfig   string
	modules     []string
	parallelism int
}

func newRelocateCommand(a *app) *cobra.Command {
	p := relocateParams{}

	cmd := &cobra.Command{
		Use:   "relocate",
		Short: "Move Java resources of SDK modules under assets/",
		Long: `Relocate every root/ entry of the given SDK modules to
assets/RuntimeEnabledSdk-<sdk package>/javaresources/ and print one
relocation plan per module as JSON.`,
		Example: `  sdklayout relocate --sdk-config sdk-modules-config.yaml --module module.yaml`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p.stdout = cmd.OutOrStdout()
			p.parallelism = a.cfg.EffectiveParallelism()
			return runRelocate(cmd.Context(), p)
		},
	}

	cmd.Flags().StringVar(&p.sdkConfig, "sdk-config", "", "SdkModulesConfig YAML file")
	cmd.Flags().StringArrayVar(&p.modules, "module", nil, "module descriptor YAML file (repeatable)")
	_ = cmd.MarkFlagRequired("sdk-config")
	_ = cmd.MarkFlagRequired("module")
	return cmd
}

func runRelocate(ctx context.Context, p relocateParams) error {
	store := configstore.NewFileStore(
		configstore.WithPath(p.sdkConfig),
		configstore.WithValidator(validation.NewConfigValidator()),
	)
	cfg, err := store.Load()
	if err != nil {
		return err
	}

	repackager, err := sdkmodule.NewJavaResourceRepackager(cfg)
	if err != nil {
		return err
	}

	modules, err := loadModules(p.modules, cfg)
	if err != nil {
		return err
	}

	m := repackager.Mutation()
	relocated, err := mutation.ApplyAll(ctx, modules, m, p.parallelism)
	if err != nil {
		var mutErr *errors.MutationError
		if stderrors.As(err, &mutErr) {
			plan := wireformat.FailedRelocationPlan(m.Name, mutErr.Module, errors.ToErrorDetail(err))
			if werr := writeJSON(p.stdout, []wireformat.RelocationPlanWire{plan}); werr != nil {
				return werr
			}
		}
		return err
	}

	plans := make([]wireformat.RelocationPlanWire, len(modules))
	for i := range modules {
		plans[i] = wireformat.NewRelocationPlan(m.Name, modules[i], relocated[i])
		slog.InfoContext(ctx, "module relocated",
			"module", modules[i].Name,
			"moves", len(plans[i].Moves),
			"target", repackager.JavaResourceDirectory())
	}
	return writeJSON(p.stdout, plans)
}

func loadModules(paths []string, cfg *entities.SdkModulesConfig) ([]*entities.BundleModule, error) {
	yamlParser := parser.NewYamlConfigParser()
	engine := template.NewGoTemplateEngine()
	modules := make([]*entities.BundleModule, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading module descriptor: %w", err)
		}
		module, err := extractor.NewModuleExtractor(data,
			extractor.WithParser(yamlParser),
			extractor.WithTemplateEngine(engine),
		).Extract(cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		modules = append(modules, module)
	}
	return modules, nil
}
