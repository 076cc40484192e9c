package client

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/QuaresmaHarygens/Talkam/models"
)

// RequestUpload asks the server for a presigned upload target for one media
// file. The server picks the storage key when none is supplied.
func (c *Client) RequestUpload(ctx context.Context, mediaType, key string) (*models.PresignedUpload, error) {
	body := models.MediaRef{Key: key, Type: mediaType}
	var upload models.PresignedUpload
	if err := c.do(ctx, http.MethodPost, "/media/upload", nil, body, &upload); err != nil {
		return nil, err
	}
	return &upload, nil
}

// UploadMedia pushes file content directly to the presigned target with a
// multipart form POST. The presigned fields must precede the file part. No
// bearer token is attached; the signature in the fields is the credential.
func (c *Client) UploadMedia(ctx context.Context, target *models.PresignedUpload, filename string, content []byte) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for field, value := range target.Fields {
		if err := writer.WriteField(field, value); err != nil {
			return fmt.Errorf("failed to write presigned field %s: %w", field, err)
		}
	}
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return fmt.Errorf("failed to write file content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.UploadURL, &buf)
	if err != nil {
		return fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", filename, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &APIError{StatusCode: resp.StatusCode, Detail: "upload failed: HTTP " + resp.Status}
	}
	return nil
}
