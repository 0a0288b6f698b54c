/*
Copyright © 2025 Ambor <saltbo@foxmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/loftafi/praxis-go/internal/lexicon"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <word>",
	Short: "Look a word up across the form, gloss and transliteration indexes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfigAndLogger()
		if err != nil {
			return err
		}
		dict, err := openDictionary(cfg, logger)
		if err != nil {
			return fmt.Errorf("open dictionary: %w", err)
		}

		query := args[0]
		found := false

		if result, ok := dict.ByForm(query); ok {
			found = true
			printFormResult(cmd, "form", result.ExactAccented)
			printFormResult(cmd, "form (unaccented)", result.ExactUnaccented)
		}
		if result, ok := dict.ByGloss(query); ok {
			found = true
			printFormResult(cmd, "gloss", result.ExactAccented)
		}
		if result, ok := dict.ByTransliteration(query); ok {
			found = true
			printFormResult(cmd, "transliteration", result.ExactAccented)
		}

		if !found {
			cmd.Printf("no match for %q\n", query)
		}
		return nil
	},
}

func printFormResult(cmd *cobra.Command, label string, forms []*lexicon.Form) {
	for _, f := range forms {
		headword := f.Word
		if f.Lexeme != nil {
			headword = f.Lexeme.Word
		}
		cmd.Printf("[%s] %s (%s)\n", label, f.Word, headword)
	}
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}
