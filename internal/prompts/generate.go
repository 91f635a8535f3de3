// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The quicktype Authors

package prompts

import "github.com/charmbracelet/huh"

// RunGenerateForm prompts for any generation settings still missing after
// flags and config: the target language, and the top-level type name.
// Fields that already have a value are skipped.
func RunGenerateForm(lang, topLevel *string, languages []string) error {
	var fields []huh.Field

	if *lang == "" {
		options := make([]huh.Option[string], len(languages))
		for i, l := range languages {
			options[i] = huh.NewOption(l, l)
		}
		fields = append(fields, huh.NewSelect[string]().
			Title("Target language").
			Options(options...).
			Value(lang))
	}

	if *topLevel == "" {
		fields = append(fields, huh.NewInput().
			Title("Top-level type name").
			Placeholder("TopLevel").
			Validate(identifierValidator).
			Value(topLevel))
	}

	if len(fields) == 0 {
		return nil
	}

	form := huh.NewForm(huh.NewGroup(fields...)).WithTheme(Theme())
	return form.Run()
}
