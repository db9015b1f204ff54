package catalogpromo

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/catalogpromo/internal/version"
	"github.com/arthur-debert/catalogpromo/pkg/actions"
	"github.com/arthur-debert/catalogpromo/pkg/element"
	"github.com/arthur-debert/catalogpromo/pkg/errors"
	"github.com/arthur-debert/catalogpromo/pkg/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// pricesPage is the element definitions page read by the prices command
const pricesPage = "catalog_promotion"

func handlerName(a actions.Action) string {
	return a.Name()
}

func newActionsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "actions",
		Short:   MsgActionsShort,
		Long:    MsgActionsLong,
		Example: MsgActionsExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := a.catalog(cmd.Context())
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			return r.Render(output.NewCatalogView(catalog, handlerName))
		},
	}

	cmd.AddCommand(newActionsShowCmd(a))
	cmd.AddCommand(newActionsCheckCmd(a))
	return cmd
}

// actionTypesCompletion provides shell completion for registered action types
func actionTypesCompletion(a *app) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		cfg, err := a.loadConfig()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		catalog, err := cfg.Catalog(cmd.Context())
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return catalog.SortedTypes(), cobra.ShellCompDirectiveNoFileComp
	}
}

func newActionsShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:               "show <type>",
		Short:             MsgActionsShowShort,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: actionTypesCompletion(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := a.catalog(cmd.Context())
			if err != nil {
				return err
			}
			action, err := catalog.Lookup(args[0])
			if err != nil {
				return err
			}

			view := output.ActionView{
				Type:        args[0],
				Handler:     action.Name(),
				Description: action.Description(),
			}
			view.Label, _ = catalog.Label(args[0])
			view.Provider, _ = catalog.Provider(args[0])

			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			return r.Render(view)
		},
	}
}

func newActionsCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:               "check <type> [key=value...]",
		Short:             MsgActionsCheckShort,
		Long:              MsgActionsCheckLong,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: actionTypesCompletion(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			configuration, err := parseAssignments(args[1:])
			if err != nil {
				return err
			}
			catalog, err := a.catalog(cmd.Context())
			if err != nil {
				return err
			}
			action, err := catalog.Lookup(args[0])
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}

			view := output.CheckView{Type: args[0], Configuration: configuration, Valid: true}
			validationErr := action.ValidateConfiguration(configuration)
			if validationErr != nil {
				view.Valid = false
				view.Error = validationErr.Error()
			}
			if err := r.Render(view); err != nil {
				return err
			}
			if validationErr != nil {
				return errors.Wrapf(validationErr, errors.ErrActionConfigInvalid, MsgErrInvalidConfig, args[0]).
					WithDetail("type", args[0])
			}
			return nil
		},
	}
}

// parseAssignments reads key=value arguments, decoding each value as a
// YAML scalar
func parseAssignments(args []string) (map[string]interface{}, error) {
	configuration := make(map[string]interface{}, len(args))
	for _, arg := range args {
		key, raw, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, MsgErrAssignment, arg).
				WithDetail("argument", arg)
		}

		var value interface{}
		if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
			value = raw
		}
		switch value.(type) {
		case nil, map[string]interface{}, []interface{}:
			value = raw
		}
		configuration[key] = value
	}
	return configuration, nil
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "validate",
		Short:   MsgValidateShort,
		Long:    MsgValidateLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := a.catalog(cmd.Context())
			if err != nil {
				return err
			}

			pages := make([]string, 0, len(a.cfg.Elements))
			for page := range a.cfg.Elements {
				pages = append(pages, page)
			}
			sort.Strings(pages)
			for _, page := range pages {
				if _, err := element.ParseDefinitions(a.cfg.Page(page)); err != nil {
					return errors.Wrapf(err, errors.GetErrorCode(err), MsgErrElementConfig, page).
						WithDetail("page", page)
				}
			}

			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			return r.Render(output.ValidateView{
				Actions:   catalog.Len(),
				Strict:    a.cfg.Registry.Strict,
				Overrides: catalog.Overrides(),
			})
		},
	}
}

func newPricesCmd(a *app) *cobra.Command {
	var page string

	cmd := &cobra.Command{
		Use:     "prices <file>",
		Short:   MsgPricesShort,
		Long:    MsgPricesLong,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			definitions, err := element.ParseDefinitions(a.cfg.Page(page))
			if err != nil {
				return errors.Wrapf(err, errors.GetErrorCode(err), MsgErrElementConfig, page).
					WithDetail("page", page)
			}

			promotion := element.NewCatalogPromotionElement(element.NewFileSession(args[0]), definitions)
			view := output.PriceView{Source: args[0]}
			if view.CrossedOutPrice, err = promotion.CrossedOutPrice(); err != nil {
				return errors.Wrapf(err, errors.GetErrorCode(err), MsgErrReadPagePrices, args[0])
			}
			if view.NewPrice, err = promotion.NewPrice(); err != nil {
				return errors.Wrapf(err, errors.GetErrorCode(err), MsgErrReadPagePrices, args[0])
			}

			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			return r.Render(view)
		},
	}

	cmd.Flags().StringVar(&page, "page", pricesPage, MsgFlagPage)
	return cmd
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       MsgVersionShort,
		GroupID:     "misc",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationSkipConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			if r.Format().Structured() {
				return r.RenderMessage(fmt.Sprintf(MsgVersionFormat, version.Version, version.Commit, version.Date))
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat+"\n", version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		Annotations:           map[string]string{annotationSkipConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
