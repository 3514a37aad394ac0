package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vidfetch/ytex/client"
)

func newClient() *client.Client {
	return client.New(client.Config{
		APIKey:            apiKey,
		ClientVersion:     clientVersion,
		ProxyURL:          proxyURL,
		RequestTimeout:    time.Duration(timeoutSec) * time.Second,
		RequestsPerMinute: rpm,
		Logger:            newSlogLogger(verbose, uuid.NewString()),
	})
}

func runInfo(cmd *cobra.Command, args []string) error {
	info, err := newClient().ExtractVideoInfo(context.Background(), args[0])
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(info)
	}

	fmt.Printf("ID:        %s\n", info.ID)
	fmt.Printf("Title:     %s\n", info.Title)
	fmt.Printf("Uploader:  %s\n", info.Uploader)
	fmt.Printf("Duration:  %s\n", formatDuration(info.Duration))
	if info.Thumbnail != "" {
		fmt.Printf("Thumbnail: %s\n", info.Thumbnail)
	}
	fmt.Println()
	printFormatTable(info.Formats)
	return nil
}

func runFormats(cmd *cobra.Command, args []string) error {
	info, err := newClient().ExtractVideoInfo(context.Background(), args[0])
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(info.Formats)
	}
	printFormatTable(info.Formats)
	return nil
}

func runID(cmd *cobra.Command, args []string) error {
	id, err := client.ExtractVideoID(args[0])
	if err != nil {
		return err
	}
	fmt.Println(id)
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printFormatTable(formats []client.Format) {
	if len(formats) == 0 {
		fmt.Println("No formats returned.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEXT\tRESOLUTION\tFPS\tVCODEC\tACODEC\tSIZE\tNOTE")
	for _, f := range formats {
		size := "-"
		if f.Filesize != nil {
			size = formatSize(*f.Filesize)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
			f.FormatID, f.Ext, f.Resolution, f.FPS, f.VCodec, f.ACodec, size, f.FormatNote)
	}
	w.Flush()
}

func formatDuration(seconds int) string {
	d := time.Duration(seconds) * time.Second
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

func formatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%dB", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f%ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
