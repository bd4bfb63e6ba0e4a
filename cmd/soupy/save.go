package main

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/soupyhq/soupy"
	"github.com/soupyhq/soupy/internal/scraper"
)

var saveCmd = &cobra.Command{
	Use:   "save [url]...",
	Short: "Scrapes one or more URLs and saves each as a Markdown file",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name, _ := cmd.Flags().GetString("name")
		verbose, _ := cmd.Flags().GetBool("verbose")
		outputDir := viper.GetString("out")

		if name != "" && len(args) > 1 {
			log.Fatal("--name can only be used with a single URL")
		}

		config := scraper.DefaultConfig()
		config.Timeout = viper.GetDuration("timeout")
		if ua := viper.GetString("user-agent"); ua != "" {
			config.UserAgent = ua
		}
		config.Verbose = verbose

		s := soupy.NewWithConfig(config)
		ctx := context.Background()

		failed := 0
		for _, target := range args {
			filename := name
			if filename == "" {
				filename = slugFromURL(target)
			}

			path, err := s.SaveAsMarkdown(ctx, target, filename, outputDir)
			if err != nil {
				failed++
				fmt.Printf("%s %s: %v\n", color.RedString("✗"), target, err)
				continue
			}
			fmt.Printf("%s %s -> %s\n", color.GreenString("✔"), target, path)
		}

		if failed > 0 {
			log.Fatalf("%d of %d scrapes failed", failed, len(args))
		}
	},
}

// slugFromURL derives a filesystem-safe filename from a URL, e.g.
// "https://go.dev/doc/faq" becomes "go.dev-doc-faq".
func slugFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		rawURL = strings.TrimPrefix(strings.TrimPrefix(rawURL, "https://"), "http://")
		return sanitize(rawURL)
	}

	slug := u.Host
	if path := strings.Trim(u.Path, "/"); path != "" {
		slug += "-" + path
	}
	return sanitize(slug)
}

func sanitize(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteByte('-')
		}
	}
	return strings.Trim(sb.String(), "-")
}

func init() {
	rootCmd.AddCommand(saveCmd)
	saveCmd.Flags().StringP("name", "n", "", "Filename for the Markdown file (without extension)")
	saveCmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
}
