package slack

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/napoleonai/waitlist-api/internal/infra/queue"
)

type Client struct {
	webhookURL string
	http       *http.Client
}

func NewClient(webhookURL string) *Client {
	return &Client{
		webhookURL: webhookURL,
		http:       &http.Client{Timeout: 10 * time.Second},
	}
}

// PostHighValueAlert pings the sales channel about a signup worth a manual
// follow-up. Fire-and-forget from the caller's point of view.
func (c *Client) PostHighValueAlert(payload queue.SignupAlertPayload) error {
	msg := message{
		Text: fmt.Sprintf("High-value signup: %s %s (%s at %s)",
			payload.FirstName, payload.LastName, payload.Role, payload.Company),
		Blocks: []block{
			{
				Type: "section",
				Text: &text{
					Type: "mrkdwn",
					Text: fmt.Sprintf(
						"*High-value waitlist signup*\n*%s %s* — %s at *%s*\nLevel: `%s` | Priority: `%s` (score %d)\nEstimated value: *$%d*\nEmail: %s",
						payload.FirstName, payload.LastName, payload.Role, payload.Company,
						payload.ExecutiveLevel, payload.Priority, payload.PriorityScore,
						payload.EstimatedValue, payload.Email,
					),
				},
			},
		},
	}

	jsonBody, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal slack message: %w", err)
	}

	req, err := http.NewRequest("POST", c.webhookURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("slack webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("slack webhook rejected message (status %d): %s", resp.StatusCode, string(body))
	}

	return nil
}
