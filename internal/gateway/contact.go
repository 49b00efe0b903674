package gateway

import (
	"context"
	"strconv"

	"siteadmin/internal/domain/contact"
)

// Contacts загружает контактную информацию сайта
func (c *Client) Contacts(ctx context.Context) ([]contact.SiteInfo, error) {
	resp, err := c.doRequest(ctx, "GET", c.publicURL+"/contacts", nil)
	if err != nil {
		return nil, err
	}

	var listResp struct {
		Data []contact.SiteInfo `json:"data"`
	}
	if err := c.parseResponse(resp, &listResp); err != nil {
		return nil, err
	}

	return listResp.Data, nil
}

// AddContact создает запись контактной информации
func (c *Client) AddContact(ctx context.Context, info contact.SiteInfo) (contact.SiteInfo, error) {
	resp, err := c.doRequest(ctx, "POST", c.adminURL+"/add-contact", info)
	if err != nil {
		return contact.SiteInfo{}, err
	}

	var addResp struct {
		Data contact.SiteInfo `json:"data"`
	}
	if err := c.parseResponse(resp, &addResp); err != nil {
		return contact.SiteInfo{}, err
	}

	return addResp.Data, nil
}

// EditContactField отправляет патч одного поля записи.
// Имя поля уже проверено по белому списку на стороне представления.
func (c *Client) EditContactField(ctx context.Context, id int, field, value string) error {
	resp, err := c.doRequest(ctx, "PUT", c.adminURL+"/edit-contact/"+strconv.Itoa(id), map[string]string{
		field: value,
	})
	if err != nil {
		return err
	}

	return c.parseResponse(resp, nil)
}
