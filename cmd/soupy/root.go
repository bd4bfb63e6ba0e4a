package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "v0.1.0"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:     "soupy",
	Short:   "Soupy saves web pages as Markdown files.",
	Long:    `Soupy is a CLI tool that fetches a web page, extracts its readable content, and writes it to a Markdown file.`,
	Version: version,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("soupy %s\n", version)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.soupy/config.yaml)")
	rootCmd.PersistentFlags().StringP("out", "o", "output", "Directory to save Markdown files into")
	rootCmd.PersistentFlags().Duration("timeout", 15*time.Second, "HTTP request timeout")
	rootCmd.PersistentFlags().String("user-agent", "", "User-Agent header override")

	rootCmd.AddCommand(versionCmd)

	viper.BindPFlag("out", rootCmd.PersistentFlags().Lookup("out"))
	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	viper.BindPFlag("user-agent", rootCmd.PersistentFlags().Lookup("user-agent"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		viper.AddConfigPath(filepath.Join(home, ".soupy"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Missing config file is fine; flags and defaults apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			fmt.Println("Error reading config file:", err)
			os.Exit(1)
		}
	}
}
