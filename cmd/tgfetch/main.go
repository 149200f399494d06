// tgfetch downloads a file stored on Telegram's servers by its file_id.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/ravix/tgram/pkg/config"
	"github.com/ravix/tgram/pkg/telegram"
)

func main() {
	output := flag.String("o", "", "output path (default: server-side file name in TGRAM_DOWNLOAD_DIR)")
	verbose := flag.Bool("v", false, "log API calls")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: tgfetch [-o path] [-v] <file_id>")
		os.Exit(2)
	}
	fileID := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tgfetch: %v\n", err)
		os.Exit(1)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	client := telegram.NewClient(cfg.BotToken,
		telegram.WithAPIURL(cfg.APIURL),
		telegram.WithLogger(log),
	)

	ctx := context.Background()
	savePath := *output
	if savePath == "" {
		info, err := client.GetFileInfo(ctx, fileID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "tgfetch: %v\n", err)
			os.Exit(1)
		}
		name := "file"
		if info.FilePath != "" {
			name = path.Base(info.FilePath)
		}
		savePath = filepath.Join(cfg.DownloadDir, name)
	}

	if err := client.DownloadToFile(ctx, fileID, savePath); err != nil {
		fmt.Fprintf(os.Stderr, "tgfetch: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(savePath)
}
