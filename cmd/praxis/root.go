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
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/loftafi/praxis-go/dictionary"
	"github.com/loftafi/praxis-go/internal/config"
	"github.com/loftafi/praxis-go/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "praxis",
	Short: "Look up and convert a Koine Greek lexical dictionary",
}

// Execute runs the root command, exiting the process on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("dictionary", "", "path to the dictionary file (text or binary)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (panic, fatal, error, warn, info, debug, trace)")

	_ = viper.BindPFlag("dictionary.path", rootCmd.PersistentFlags().Lookup("dictionary"))
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// loadConfigAndLogger reads CLI configuration and builds the logger every
// subcommand shares, translating viper-bound values into plain Go values
// before anything in the dictionary package is constructed.
func loadConfigAndLogger() (*config.Config, *logrus.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := logging.NewLogger(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("configure logger: %w", err)
	}
	return cfg, logger, nil
}

// openDictionary loads cfg.Dictionary.Path, wiring the resolved logger and
// stopwords file (if any) into the dictionary's construction options.
func openDictionary(cfg *config.Config, logger *logrus.Logger) (*dictionary.Dictionary, error) {
	opts := []dictionary.Option{dictionary.WithLogger(logger)}
	if cfg.Search.MaxResultSize > 0 {
		opts = append(opts, dictionary.WithMaxResultSize(cfg.Search.MaxResultSize))
	}
	if cfg.Search.StopwordsPath != "" {
		stopwords, err := loadStopwords(cfg.Search.StopwordsPath)
		if err != nil {
			return nil, fmt.Errorf("load stopwords: %w", err)
		}
		opts = append(opts, dictionary.WithStopwords(stopwords))
	}
	return dictionary.LoadFile(cfg.Dictionary.Path, opts...)
}

// openDictionaryAt loads an explicit path, overriding cfg.Dictionary.Path.
// Used by convert, which names its input/output files as positional
// arguments rather than through the configured dictionary path.
func openDictionaryAt(path string, logger *logrus.Logger) (*dictionary.Dictionary, error) {
	return dictionary.LoadFile(path, dictionary.WithLogger(logger))
}

func loadStopwords(path string) (map[string]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stopwords := make(map[string]bool)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		stopwords[word] = true
	}
	return stopwords, scanner.Err()
}
