package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"siteadmin/internal/domain/content"
)

// ListServices загружает полную коллекцию записей сервисов.
// Пагинации нет: админка сайта всегда работает с коллекцией целиком.
func (c *Client) ListServices(ctx context.Context) ([]content.Content, error) {
	resp, err := c.doRequest(ctx, "GET", c.publicURL+"/services", nil)
	if err != nil {
		return nil, err
	}

	var listResp struct {
		Data []content.Payload `json:"data"`
	}
	if err := c.parseResponse(resp, &listResp); err != nil {
		return nil, err
	}

	records := make([]content.Content, 0, len(listResp.Data))
	for _, p := range listResp.Data {
		rec, err := content.Decode(p)
		if err != nil {
			return nil, fmt.Errorf("запись id=%d: %w", p.ID, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// StoreService создает новую запись и возвращает каноническую копию сервера
func (c *Client) StoreService(ctx context.Context, rec content.Content) (content.Content, error) {
	payload, err := content.Encode(rec)
	if err != nil {
		return content.Content{}, err
	}

	resp, err := c.doRequest(ctx, "POST", c.adminURL+"/store-product", payload)
	if err != nil {
		return content.Content{}, err
	}

	return c.parseServiceResponse(resp, rec)
}

// EditService обновляет существующую запись
func (c *Client) EditService(ctx context.Context, id int, rec content.Content) (content.Content, error) {
	payload, err := content.Encode(rec)
	if err != nil {
		return content.Content{}, err
	}

	resp, err := c.doRequest(ctx, "PUT", c.adminURL+"/edit-product/"+strconv.Itoa(id), payload)
	if err != nil {
		return content.Content{}, err
	}

	return c.parseServiceResponse(resp, rec)
}

// DeleteService удаляет запись по идентификатору
func (c *Client) DeleteService(ctx context.Context, id int) error {
	resp, err := c.doRequest(ctx, "DELETE", c.adminURL+"/delete-product/"+strconv.Itoa(id), nil)
	if err != nil {
		return err
	}

	return c.parseResponse(resp, nil)
}

// parseServiceResponse разбирает ответ store/edit. Если сервер не вернул
// запись, за каноническую принимается отправленный черновик.
func (c *Client) parseServiceResponse(resp *http.Response, sent content.Content) (content.Content, error) {
	var saveResp struct {
		Data *content.Payload `json:"data"`
	}
	if err := c.parseResponse(resp, &saveResp); err != nil {
		return content.Content{}, err
	}

	if saveResp.Data == nil {
		return sent, nil
	}

	rec, err := content.Decode(*saveResp.Data)
	if err != nil {
		return content.Content{}, fmt.Errorf("ответ сервера: %w", err)
	}

	return rec, nil
}

// Upload отправляет файл изображения и возвращает ссылку на сохраненный ресурс
func (c *Client) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return "", fmt.Errorf("ошибка формирования запроса: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("ошибка чтения файла: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("ошибка формирования запроса: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.adminURL+"/upload", &buf)
	if err != nil {
		return "", fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("User-Agent", c.userAgent)
	if token, ok := c.tokens.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ошибка выполнения запроса: %w", err)
	}

	var uploadResp struct {
		URL string `json:"url"`
	}
	if err := c.parseResponse(resp, &uploadResp); err != nil {
		return "", err
	}

	if uploadResp.URL == "" {
		return "", fmt.Errorf("сервер не вернул ссылку на файл")
	}

	return uploadResp.URL, nil
}

// DeleteImage удаляет загруженный файл на сервере. Вызывается как
// best-effort очистка при удалении строки галереи.
func (c *Client) DeleteImage(ctx context.Context, imageName string) error {
	resp, err := c.doRequest(ctx, "POST", c.adminURL+"/delete-image", map[string]string{
		"imageName": imageName,
	})
	if err != nil {
		return err
	}

	return c.parseResponse(resp, nil)
}
