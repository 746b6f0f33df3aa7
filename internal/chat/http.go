package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	listPath   = "/api/chat/manage/getAll"
	renamePath = "/api/chat/manage/updateChatName"

	codeOK = 200
)

// lastTime values are rendered by the server in its local zone without an offset.
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// HTTPClient talks to the chat management API.
type HTTPClient struct {
	base    *url.URL
	token   string
	agentID int
	http    *http.Client
}

// NewHTTPClient validates baseURL and returns a client scoped to agentID.
// A zero agentID lists the conversations of every agent.
func NewHTTPClient(baseURL, token string, agentID int, timeout time.Duration) (*HTTPClient, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		return nil, fmt.Errorf("api url required")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("api url must be http or https (got %q)", parsed.Scheme)
	}
	parsed.Path = strings.TrimRight(parsed.Path, "/")
	return &HTTPClient{
		base:    parsed,
		token:   strings.TrimSpace(token),
		agentID: agentID,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

type chatRecord struct {
	ChatID       flexibleID `json:"chatId"`
	ChatName     string     `json:"chatName"`
	AgentID      int        `json:"agentId"`
	Creator      string     `json:"creator"`
	LastQuestion string     `json:"lastQuestion"`
	LastTime     string     `json:"lastTime"`
	CreateTime   string     `json:"createTime"`
}

// flexibleID accepts both numeric and string ids.
type flexibleID string

func (f *flexibleID) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexibleID(n.String())
	return nil
}

// ListConversations fetches every conversation visible to the configured agent.
func (c *HTTPClient) ListConversations(ctx context.Context) ([]Conversation, error) {
	query := url.Values{}
	if c.agentID != 0 {
		query.Set("agentId", strconv.Itoa(c.agentID))
	}
	var records []chatRecord
	if err := c.do(ctx, http.MethodGet, listPath, query, &records); err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	conversations := make([]Conversation, 0, len(records))
	for _, rec := range records {
		id := strings.TrimSpace(string(rec.ChatID))
		if id == "" {
			continue
		}
		updated := parseTime(rec.LastTime)
		if updated.IsZero() {
			updated = parseTime(rec.CreateTime)
		}
		conversations = append(conversations, Conversation{
			ID:           id,
			Name:         rec.ChatName,
			AgentID:      rec.AgentID,
			Creator:      rec.Creator,
			LastQuestion: rec.LastQuestion,
			UpdatedAt:    updated,
		})
	}
	return conversations, nil
}

// RenameConversation updates the display name of conversationID.
func (c *HTTPClient) RenameConversation(ctx context.Context, name, conversationID string) error {
	id := strings.TrimSpace(conversationID)
	if id == "" {
		return fmt.Errorf("rename conversation: id required")
	}
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	query := url.Values{}
	query.Set("chatName", name)
	query.Set("chatId", id)
	if err := c.do(ctx, http.MethodPost, renamePath, query, nil); err != nil {
		return fmt.Errorf("rename conversation %s: %w", id, err)
	}
	return nil
}

// Close releases idle connections.
func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, out interface{}) error {
	endpoint := *c.base
	endpoint.Path = c.base.Path + path
	endpoint.RawQuery = query.Encode()

	var body io.Reader
	if method == http.MethodPost {
		body = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, snippet(payload))
	}

	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if env.Code != codeOK {
		msg := strings.TrimSpace(env.Msg)
		if msg == "" {
			msg = "request rejected"
		}
		return fmt.Errorf("server error %d: %s", env.Code, msg)
	}
	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}

func parseTime(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}

func snippet(payload []byte) string {
	text := strings.TrimSpace(string(payload))
	if len(text) > 120 {
		return text[:120] + "…"
	}
	return text
}
