package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// savedFile describes one Markdown file found in the output directory.
type savedFile struct {
	Path     string
	Size     int64
	Modified time.Time
}

// savedFiles scans outputDir for .md files, in directory order. A missing
// directory means nothing has been saved yet and is not an error.
func savedFiles(outputDir string) ([]savedFile, error) {
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read output directory: %w", err)
	}

	var files []savedFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, savedFile{
			Path:     filepath.Join(outputDir, entry.Name()),
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
	}
	return files, nil
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists saved Markdown files in the output directory",
	Run: func(cmd *cobra.Command, args []string) {
		files, err := savedFiles(viper.GetString("out"))
		if err != nil {
			log.Fatalf("Failed to list documents: %v", err)
		}

		if len(files) == 0 {
			fmt.Println("No documents found.")
			return
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"File", "Size", "Modified"})
		t.SetColumnConfigs([]table.ColumnConfig{
			{Number: 1, Align: text.AlignLeft},
			{Number: 2, Align: text.AlignRight},
			{Number: 3, Align: text.AlignLeft},
		})

		for _, f := range files {
			t.AppendRow(table.Row{
				f.Path,
				strconv.FormatInt(f.Size, 10),
				f.Modified.Format(time.RFC3339),
			})
		}
		t.Render()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
