package main

import (
	"github.com/bundlekit/sdklayout/domain/entities"
	"github.com/bundlekit/sdklayout/domain/manifest"
	"github.com/bundlekit/sdklayout/wireformat"
	"github.com/spf13/cobra"
)

func newReceiverCommand() *cobra.Command {
	var (
		name       string
		exported   bool
		actions    []string
		categories []string
	)

	cmd := &cobra.Command{
		Use:   "receiver",
		Short: "Print a <receiver> manifest element as JSON",
		Long: `Build a <receiver> element from flags and print its attribute tree.
Fields whose flag is not given are left out of the element; in particular
--exported=false is emitted while an omitted --exported is not.`,
		Example: `  sdklayout receiver --name com.example.PingReceiver --exported=false --action com.example.PING`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b := manifest.NewReceiverBuilder()
			if cmd.Flags().Changed("name") {
				b.SetName(name)
			}
			if cmd.Flags().Changed("exported") {
				b.SetExported(exported)
			}
			if len(actions) > 0 || len(categories) > 0 {
				fb := manifest.NewIntentFilterBuilder()
				for _, a := range actions {
					fb.AddAction(a)
				}
				for _, c := range categories {
					fb.AddCategory(c)
				}
				filter, err := fb.Build()
				if err != nil {
					return err
				}
				b.SetIntentFilter(filter)
			}

			r, err := b.Build()
			if err != nil {
				return err
			}
			el := r.AsXMLElement(entities.NewAndroidSchema())
			return writeJSON(cmd.OutOrStdout(), wireformat.FromXMLElement(el))
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "android:name of the receiver class")
	cmd.Flags().BoolVar(&exported, "exported", false, "android:exported")
	cmd.Flags().StringArrayVar(&actions, "action", nil, "intent-filter action (repeatable)")
	cmd.Flags().StringArrayVar(&categories, "category", nil, "intent-filter category (repeatable)")
	return cmd
}
