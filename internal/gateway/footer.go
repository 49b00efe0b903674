package gateway

import (
	"context"
	"strconv"

	"siteadmin/internal/domain/footer"
)

// FooterLinks загружает группы ссылок подвала
func (c *Client) FooterLinks(ctx context.Context) ([]footer.LinkGroup, error) {
	resp, err := c.doRequest(ctx, "GET", c.publicURL+"/show-footer-links", nil)
	if err != nil {
		return nil, err
	}

	var listResp struct {
		Data []footer.LinkGroup `json:"data"`
	}
	if err := c.parseResponse(resp, &listResp); err != nil {
		return nil, err
	}

	return listResp.Data, nil
}

// StoreFooterLink создает группу ссылок
func (c *Client) StoreFooterLink(ctx context.Context, group footer.LinkGroup) error {
	resp, err := c.doRequest(ctx, "POST", c.adminURL+"/store-links", group)
	if err != nil {
		return err
	}

	return c.parseResponse(resp, nil)
}

// EditFooterLink обновляет группу ссылок
func (c *Client) EditFooterLink(ctx context.Context, id int, group footer.LinkGroup) error {
	resp, err := c.doRequest(ctx, "PUT", c.adminURL+"/edit-links/"+strconv.Itoa(id), group)
	if err != nil {
		return err
	}

	return c.parseResponse(resp, nil)
}

// DeleteFooterLink удаляет группу ссылок. Исторически этот вызов
// живет на публичной базе API, а не на админской.
func (c *Client) DeleteFooterLink(ctx context.Context, id int) error {
	resp, err := c.doRequest(ctx, "DELETE", c.publicURL+"/delete-links/"+strconv.Itoa(id), nil)
	if err != nil {
		return err
	}

	return c.parseResponse(resp, nil)
}
