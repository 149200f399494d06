package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"unicode/utf8"
)

// previewLimit bounds how much of an error response body is echoed back in
// download error messages.
const previewLimit = 200

// GetFileInfo resolves Bot API metadata for a stored file, wrapping any
// failure with a stable prefix.
func (c *Client) GetFileInfo(ctx context.Context, fileID string) (*File, error) {
	file, err := c.GetFile(ctx, fileID)
	if err != nil {
		return nil, fmt.Errorf("Failed to get file info: %w", err)
	}
	return file, nil
}

// DownloadFile fetches the content of a stored file by its file_id: one
// metadata round trip, then one content round trip. No retries, no caching.
func (c *Client) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	info, err := c.GetFileInfo(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if info.FilePath == "" {
		return nil, errors.New("File path not available")
	}
	return c.DownloadByPath(ctx, info.FilePath)
}

// DownloadByPath fetches file content from the Bot API file endpoint for a
// server-side path already known from getFile.
func (c *Client) DownloadByPath(ctx context.Context, filePath string) ([]byte, error) {
	url := c.FileURL(filePath)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("Failed to download file from: %s, error: %v", url, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Failed to download file from: %s, error: %v", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("Failed to download file from: %s, error: %v", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		c.log.Warn("download failed",
			slog.Int("status", resp.StatusCode),
			slog.String("file_path", filePath),
		)
		return nil, errors.New("Download failed with status: " + strconv.Itoa(resp.StatusCode) + bodyPreview(body))
	}
	return body, nil
}

// DownloadToFile downloads a stored file and writes it to savePath.
func (c *Client) DownloadToFile(ctx context.Context, fileID, savePath string) error {
	data, err := c.DownloadFile(ctx, fileID)
	if err != nil {
		return err
	}
	if err := os.WriteFile(savePath, data, 0644); err != nil {
		return fmt.Errorf("Failed to save file: %v", err)
	}
	return nil
}

// bodyPreview renders up to previewLimit characters of an error response
// body, or a placeholder when the body is not valid text.
func bodyPreview(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	if !utf8.Valid(body) {
		return ", body: <binary data>"
	}
	text := string(body)
	if runes := []rune(text); len(runes) > previewLimit {
		text = string(runes[:previewLimit])
	}
	return ", body: " + text
}
