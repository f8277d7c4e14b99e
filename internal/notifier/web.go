package notifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/julianstephens/energycoach/internal/constants"
)

// WebChannel posts notifications as JSON to a user configured webhook.
type WebChannel struct {
	url    string
	client *http.Client
}

type webPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	App   string `json:"app"`
}

func NewWebChannel(rawURL string) *WebChannel {
	return &WebChannel{url: rawURL, client: &http.Client{Timeout: constants.WebhookTimeout}}
}

func (w *WebChannel) Name() string {
	return "web"
}

// RequestPermission accepts absolute http(s) URLs only.
func (w *WebChannel) RequestPermission() Permission {
	u, err := url.Parse(w.url)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return PermissionUnsupported
	}
	return PermissionGranted
}

func (w *WebChannel) Deliver(title, body string) error {
	data, err := json.Marshal(webPayload{Title: title, Body: body, App: constants.AppName})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, w.url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := w.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 200 && res.StatusCode < 300 {
		return nil
	}
	msg, _ := io.ReadAll(io.LimitReader(res.Body, 512))
	return fmt.Errorf("webhook failed with status %d: %s", res.StatusCode, string(msg))
}
