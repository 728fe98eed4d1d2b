package remote

import "context"

// Operation names of the app configuration endpoints.
const (
	OpListApps       = "apps/list"
	OpGetAppConfig   = "apps/config/get"
	OpSetAppConfig   = "apps/config/set"
	OpGetSessionInfo = "user/session/get"
)

// ListApps returns the names of installed apps.
func (c *Client) ListApps(ctx context.Context, s Session) ([]string, error) {
	resp, err := c.Call(ctx, s, OpListApps, nil)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, name := range resp.Get("apps.#.name").Array() {
		names = append(names, name.String())
	}
	return names, nil
}

// GetAppConfig returns the configuration text of app. An app without
// configuration returns an empty string.
func (c *Client) GetAppConfig(ctx context.Context, s Session, app string) (string, error) {
	resp, err := c.Call(ctx, s, OpGetAppConfig, map[string]string{"name": app})
	if err != nil {
		return "", err
	}
	return resp.Get("config").String(), nil
}

// SetAppConfig replaces the configuration text of app.
func (c *Client) SetAppConfig(ctx context.Context, s Session, app, text string) error {
	_, err := c.Call(ctx, s, OpSetAppConfig, map[string]string{"name": app, "config": text})
	return err
}

// ServerVersion returns the version the server reports for the session.
func (c *Client) ServerVersion(ctx context.Context, s Session) (string, error) {
	resp, err := c.Call(ctx, s, OpGetSessionInfo, nil)
	if err != nil {
		return "", err
	}
	return resp.Get("info.version").String(), nil
}
