package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// File is one file to upload. Content is read fully when the request is built.
type File struct {
	Name    string
	Content io.Reader
}

// Upload sends files to the bulk upload endpoint and returns their public
// URLs in the same order.
func (c *Client) Upload(ctx context.Context, files []File) ([]string, error) {
	req, err := c.multipartRequest(ctx, "/uploads", files)
	if err != nil {
		return nil, err
	}

	var out struct {
		URLs []string `json:"urls"`
	}
	if err := c.send(req, &out); err != nil {
		return nil, fmt.Errorf("upload %d files: %w", len(files), err)
	}

	return out.URLs, nil
}

// UploadSingle sends one file and returns its public URL.
func (c *Client) UploadSingle(ctx context.Context, file File) (string, error) {
	req, err := c.multipartRequest(ctx, "/uploads/single", []File{file})
	if err != nil {
		return "", err
	}

	var out struct {
		URL string `json:"url"`
	}
	if err := c.send(req, &out); err != nil {
		return "", fmt.Errorf("upload %s: %w", file.Name, err)
	}

	return out.URL, nil
}

func (c *Client) multipartRequest(ctx context.Context, path string, files []File) (*http.Request, error) {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	for _, file := range files {
		part, err := writer.CreateFormFile("images", file.Name)
		if err != nil {
			return nil, fmt.Errorf("create form file %s: %w", file.Name, err)
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return nil, fmt.Errorf("read file %s: %w", file.Name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return req, nil
}
