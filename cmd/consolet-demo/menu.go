package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/consolet/consolet"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Render numbered menus in a few configurations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		choices := []consolet.Choice[string]{
			{Value: "FO", Label: "Foo"},
			{Value: "BA", Label: "Bar"},
			{Value: "BZ", Label: "Baz"},
			{Value: "FA", Label: "Fam"},
		}

		val, err := consolet.Menu(cn, choices, nil)
		if err != nil {
			return err
		}
		cn.Std("Got value %s", val)

		val, err = consolet.Menu(cn, choices, &consolet.MenuConfig[string]{
			Prompt: "Tell us what you want [1-4]:",
			Intro:  "Once upon a time, there was a menu.",
		})
		if err != nil {
			return err
		}
		cn.Std("Got value %s", val)

		val, err = consolet.Menu(cn, choices, &consolet.MenuConfig[string]{
			Numerator: func(n int) []string {
				keys := make([]string, n)
				for i := range keys {
					keys[i] = string(rune('a' + i))
				}
				return keys
			},
			Clean: strings.TrimSpace,
		})
		if err != nil {
			return err
		}
		cn.Std("Got value %s", val)

		fallback := "FO"
		val, err = consolet.Menu(cn, choices, &consolet.MenuConfig[string]{
			Prompt:   "Choose an item [1]:",
			Fallback: &fallback,
		})
		if err != nil {
			return err
		}
		cn.Std("Got value %s", val)
		return nil
	},
}
