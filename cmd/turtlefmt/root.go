package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	turtlemode "github.com/riverfjs/turtlemode-go"
)

var (
	cfgFile string
	cfg     cliConfig
)

// cliConfig mirrors the viper keys the commands consume.
type cliConfig struct {
	IndentWidth int  `mapstructure:"indent_width"`
	Color       bool `mapstructure:"color"`
}

var rootCmd = &cobra.Command{
	Use:     "turtlefmt [files...]",
	Short:   "Reindent Turtle files",
	Long:    `Reindent Turtle (.ttl, .n3) files line by line, and reformat Turtle code blocks embedded in Markdown. With no arguments, reads stdin and writes stdout.`,
	Version: version,
	Args:    cobra.ArbitraryArgs,
	RunE:    runFmt,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .turtlefmt.yaml, then ~/.config/turtlefmt/config.yaml)")
	rootCmd.PersistentFlags().IntP("indent-width", "i", 0,
		"columns per indentation unit")
	rootCmd.Flags().BoolP("write", "w", false,
		"write result back to source files instead of stdout")

	_ = viper.BindPFlag("indent_width", rootCmd.PersistentFlags().Lookup("indent-width"))
}

func initConfig() {
	viper.SetDefault("indent_width", turtlemode.DefaultIndentWidth)
	viper.SetDefault("color", true)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .turtlefmt.yaml (current directory)
		// 2. ~/.config/turtlefmt/config.yaml (user config)
		if _, err := os.Stat(".turtlefmt.yaml"); err == nil {
			viper.SetConfigFile(".turtlefmt.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "turtlefmt"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file anywhere: run on defaults.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "turtlefmt: reading config: %v\n", err)
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "turtlefmt: parsing config: %v\n", err)
	}
	if cfg.IndentWidth <= 0 {
		cfg.IndentWidth = turtlemode.DefaultIndentWidth
	}
}

// indentOptions translates the CLI config into library options.
func indentOptions() []turtlemode.Option {
	return []turtlemode.Option{turtlemode.WithIndentWidth(cfg.IndentWidth)}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
