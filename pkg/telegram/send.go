package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// SendMessageParams are the fields for the sendMessage method.
type SendMessageParams struct {
	ChatID              int64  `json:"chat_id"`
	Text                string `json:"text"`
	ParseMode           string `json:"parse_mode,omitempty"`
	ReplyToMessageID    int    `json:"reply_to_message_id,omitempty"`
	DisableNotification bool   `json:"disable_notification,omitempty"`
}

// SendDocumentParams are the fields for the sendDocument method. Document
// decides the transport shape: upload inputs switch the request to
// multipart, URL and file_id inputs keep it plain JSON.
type SendDocumentParams struct {
	ChatID    int64
	Document  MediaInput
	Caption   string
	ParseMode string
}

// SendPhotoParams are the fields for the sendPhoto method.
type SendPhotoParams struct {
	ChatID    int64
	Photo     MediaInput
	Caption   string
	ParseMode string
}

// SendVideoParams are the fields for the sendVideo method.
type SendVideoParams struct {
	ChatID    int64
	Video     MediaInput
	Caption   string
	ParseMode string
}

// SendAudioParams are the fields for the sendAudio method.
type SendAudioParams struct {
	ChatID    int64
	Audio     MediaInput
	Caption   string
	ParseMode string
}

// SendMessage sends a plain text message.
func (c *Client) SendMessage(ctx context.Context, params SendMessageParams) (*Message, error) {
	result, err := c.callJSON(ctx, "sendMessage", params)
	if err != nil {
		return nil, err
	}
	return decodeMessage("sendMessage", result)
}

// SendDocument sends a generic file.
func (c *Client) SendDocument(ctx context.Context, params SendDocumentParams) (*Message, error) {
	fields := mediaFields(params.ChatID, params.Caption, params.ParseMode)
	fields["document"] = params.Document.SendData()
	return c.sendMedia(ctx, "sendDocument", fields, params.Document)
}

// SendPhoto sends an image.
func (c *Client) SendPhoto(ctx context.Context, params SendPhotoParams) (*Message, error) {
	fields := mediaFields(params.ChatID, params.Caption, params.ParseMode)
	fields["photo"] = params.Photo.SendData()
	return c.sendMedia(ctx, "sendPhoto", fields, params.Photo)
}

// SendVideo sends a video file.
func (c *Client) SendVideo(ctx context.Context, params SendVideoParams) (*Message, error) {
	fields := mediaFields(params.ChatID, params.Caption, params.ParseMode)
	fields["video"] = params.Video.SendData()
	return c.sendMedia(ctx, "sendVideo", fields, params.Video)
}

// SendAudio sends an audio file.
func (c *Client) SendAudio(ctx context.Context, params SendAudioParams) (*Message, error) {
	fields := mediaFields(params.ChatID, params.Caption, params.ParseMode)
	fields["audio"] = params.Audio.SendData()
	return c.sendMedia(ctx, "sendAudio", fields, params.Audio)
}

func mediaFields(chatID int64, caption, parseMode string) map[string]string {
	fields := map[string]string{
		"chat_id": strconv.FormatInt(chatID, 10),
	}
	if caption != "" {
		fields["caption"] = caption
	}
	if parseMode != "" {
		fields["parse_mode"] = parseMode
	}
	return fields
}

// sendMedia routes a media method through multipart when the input carries
// content to upload, and through plain JSON otherwise.
func (c *Client) sendMedia(ctx context.Context, method string, fields map[string]string, input MediaInput) (*Message, error) {
	var result json.RawMessage
	var err error
	if input.NeedsUpload() {
		file, uerr := UploadData(input)
		if uerr != nil {
			return nil, uerr
		}
		result, err = c.callMultipart(ctx, method, fields, []*MultipartFile{file})
	} else {
		result, err = c.callJSON(ctx, method, fields)
	}
	if err != nil {
		return nil, err
	}
	return decodeMessage(method, result)
}

func decodeMessage(method string, result json.RawMessage) (*Message, error) {
	var msg Message
	if err := json.Unmarshal(result, &msg); err != nil {
		return nil, fmt.Errorf("decode %s result: %w", method, err)
	}
	return &msg, nil
}
